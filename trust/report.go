// Package trust holds the heuristic scoring used to arbitrate ownership:
// a confidence score for a submitted loss report, and a match score between
// a found item and a claimant's report. Both are pure functions so they can
// be tested without a database.
package trust

import "strings"

// Signals and their point values. The sum of all four is exactly 100, so no
// upper clamp is needed on the report score.
const (
	pointsPoliceTerm   = 30
	pointsNationalTerm = 20
	pointsReportNumber = 30
	pointsImage        = 20
)

const (
	thresholdVerified    = 80
	thresholdLikelyValid = 50
)

var policeTerms = []string{"jeshi", "police"}

const nationalTerm = "tanzania"

// ReportInput carries the fields of a loss report that contribute to its
// confidence score. Image content is never inspected; presence alone counts.
type ReportInput struct {
	Description   string
	PoliceStation string
	ReportNumber  string
	ImageURL      string
}

type Assessment struct {
	Score  int
	Status string // needs_review, likely_valid or verified
	Notes  []string
}

// ScoreReport computes the additive confidence heuristic for a loss report.
// Checks are case-insensitive substring matches, order-independent, and each
// signal contributes at most once.
func ScoreReport(in ReportInput) Assessment {
	desc := strings.ToLower(in.Description)
	station := strings.ToLower(in.PoliceStation)

	a := Assessment{Notes: []string{}}

	for _, term := range policeTerms {
		if strings.Contains(desc, term) || strings.Contains(station, term) {
			a.Score += pointsPoliceTerm
			a.Notes = append(a.Notes, "Police terminology detected")
			break
		}
	}
	if strings.Contains(desc, nationalTerm) || strings.Contains(station, nationalTerm) {
		a.Score += pointsNationalTerm
		a.Notes = append(a.Notes, "National context detected")
	}
	if in.ReportNumber != "" {
		a.Score += pointsReportNumber
		a.Notes = append(a.Notes, "Report Reference Number provided")
	}
	if in.ImageURL != "" {
		a.Score += pointsImage
		a.Notes = append(a.Notes, "Document image attached")
	}

	switch {
	case a.Score >= thresholdVerified:
		a.Status = "verified"
	case a.Score >= thresholdLikelyValid:
		a.Status = "likely_valid"
	default:
		a.Status = "needs_review"
	}
	return a
}
