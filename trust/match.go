package trust

import "strings"

const (
	pointsPerWord   = 20
	pointsLocation  = 20
	matchFloor      = 20 // every submitted claim stays reviewable by the finder
	matchCeiling    = 100
	minMatchWordLen = 4 // words of 3 letters or fewer carry no signal
)

// MatchInput pairs a found item's title and location with a loss report's
// description.
type MatchInput struct {
	Title       string
	Location    string
	Description string
}

// ScoreMatch computes a coarse keyword-overlap confidence that the report
// describes the item. Deliberately favors false positives: the floor of 20
// means a claim is never auto-rejected, it just scores low.
func ScoreMatch(in MatchInput) int {
	desc := strings.ToLower(in.Description)

	overlap := 0
	for _, w := range strings.Fields(strings.ToLower(in.Title)) {
		if len(w) >= minMatchWordLen && strings.Contains(desc, w) {
			overlap++
		}
	}
	score := overlap * pointsPerWord

	if loc := strings.ToLower(in.Location); loc != "" && strings.Contains(desc, loc) {
		score += pointsLocation
	}

	if score > matchCeiling {
		score = matchCeiling
	}
	if score < matchFloor {
		score = matchFloor
	}
	return score
}
