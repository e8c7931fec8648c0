package models

import "time"

const ClaimTable = "lf_claims"

const (
	ClaimPending  = "pending"
	ClaimAccepted = "accepted"
	ClaimRejected = "rejected"
	ClaimReturned = "returned"
)

// Claim is a request by ClaimantID to be recognized as owner of ItemID,
// backed by LossReportID. FinderID snapshots the item's owner at claim time;
// only that user may adjudicate.
type Claim struct {
	ID           string `gorm:"type:uuid;primaryKey" json:"id"`
	ItemID       string `gorm:"type:uuid;uniqueIndex:idx_claim_item_claimant;not null" json:"itemId"`
	FinderID     string `gorm:"type:uuid;index;not null" json:"finderId"`
	ClaimantID   string `gorm:"type:uuid;uniqueIndex:idx_claim_item_claimant;index;not null" json:"claimantId"`
	LossReportID string `gorm:"type:uuid;not null" json:"lossReportId"`
	Status       string `gorm:"size:20;not null;default:'pending'" json:"status"`
	MatchScore   int    `gorm:"not null" json:"matchScore"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Claim) TableName() string { return ClaimTable }

// ValidClaimTransition reports whether a claim may move from one status to
// another. rejected and returned are terminal.
func ValidClaimTransition(from, to string) bool {
	switch from {
	case ClaimPending:
		return to == ClaimAccepted || to == ClaimRejected
	case ClaimAccepted:
		return to == ClaimReturned
	}
	return false
}
