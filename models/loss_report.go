package models

import "time"

const LossReportTable = "lf_loss_reports"

const (
	VerificationPending     = "pending"
	VerificationNeedsReview = "needs_review"
	VerificationLikelyValid = "likely_valid"
	VerificationVerified    = "verified"
)

// LossReport is a user's attestation that they lost something, typically
// referencing a police filing. Immutable after creation; one report can back
// any number of claims.
type LossReport struct {
	ID            string    `gorm:"type:uuid;primaryKey" json:"id"`
	OwnerID       string    `gorm:"type:uuid;index;not null" json:"owner"`
	ReportType    string    `gorm:"size:50;not null" json:"reportType"` // e.g. "Theft", "Lost"
	IncidentDate  time.Time `gorm:"not null" json:"incidentDate"`
	PoliceStation string    `gorm:"size:255" json:"policeStation"`
	ReportNumber  string    `gorm:"size:100" json:"reportNumber,omitempty"`
	Description   string    `gorm:"type:text;not null" json:"description"`
	ImageURL      string    `gorm:"size:500" json:"imageUrl,omitempty"`

	VerificationStatus string   `gorm:"size:20;not null;default:'pending'" json:"verificationStatus"`
	ConfidenceScore    int      `gorm:"not null;default:0" json:"confidenceScore"`
	VerificationNotes  []string `gorm:"serializer:json" json:"verificationNotes"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (LossReport) TableName() string { return LossReportTable }
