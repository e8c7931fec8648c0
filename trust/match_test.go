package trust

import "testing"

func TestScoreMatchTitleAndLocation(t *testing.T) {
	// "blue" and "backpack" overlap (both >3 chars), location matches:
	// 2*20 + 20 = 60.
	got := ScoreMatch(MatchInput{
		Title:       "Blue Backpack",
		Location:    "Central Park",
		Description: "I lost my blue backpack near central park yesterday",
	})
	if got != 60 {
		t.Errorf("score = %d, want 60", got)
	}
}

func TestScoreMatchFloor(t *testing.T) {
	// "Key" is too short to count and the location never appears, so the raw
	// score is 0 and the floor applies.
	got := ScoreMatch(MatchInput{
		Title:       "Key",
		Location:    "Library",
		Description: "unrelated text",
	})
	if got != 20 {
		t.Errorf("score = %d, want floor of 20", got)
	}
}

func TestScoreMatchCeiling(t *testing.T) {
	got := ScoreMatch(MatchInput{
		Title:       "black leather wallet cards license",
		Location:    "airport",
		Description: "black leather wallet with my cards and license lost at the airport",
	})
	if got != 100 {
		t.Errorf("score = %d, want ceiling of 100", got)
	}
}

func TestScoreMatchRange(t *testing.T) {
	inputs := []MatchInput{
		{},
		{Title: "a b c", Description: "a b c"},
		{Title: "Phone", Description: "phone phone phone"},
		{Title: "Red Bicycle Helmet", Location: "Main Street", Description: "red bicycle helmet on main street"},
	}
	for i, in := range inputs {
		got := ScoreMatch(in)
		if got < 20 || got > 100 {
			t.Errorf("input %d: score %d outside [20,100]", i, got)
		}
	}
}

func TestScoreMatchCaseInsensitive(t *testing.T) {
	a := ScoreMatch(MatchInput{Title: "BLUE BACKPACK", Location: "PARK", Description: "blue backpack in the park"})
	b := ScoreMatch(MatchInput{Title: "blue backpack", Location: "park", Description: "BLUE BACKPACK IN THE PARK"})
	if a != b {
		t.Errorf("case changed the score: %d vs %d", a, b)
	}
}

func TestScoreMatchIdempotent(t *testing.T) {
	in := MatchInput{Title: "Silver Watch", Location: "Station", Description: "silver watch left at the station"}
	first := ScoreMatch(in)
	for i := 0; i < 5; i++ {
		if got := ScoreMatch(in); got != first {
			t.Fatalf("run %d: score %d != %d", i, got, first)
		}
	}
}
