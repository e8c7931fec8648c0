package db

import (
	"context"
	"testing"
	"time"

	"lostfound/models"

	"github.com/google/uuid"
)

func TestLossReportRoundtrip(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	owner := seedUser(t, ctx, r, "Owner", "owner@example.com")

	lr := &models.LossReport{
		ID:                 uuid.NewString(),
		OwnerID:            owner.ID,
		ReportType:         "Theft",
		IncidentDate:       time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		PoliceStation:      "Jeshi la Polisi Dar es Salaam, Tanzania",
		ReportNumber:       "RB/44/2024",
		Description:        "stolen phone",
		VerificationStatus: models.VerificationVerified,
		ConfidenceScore:    100,
		VerificationNotes: []string{
			"Police terminology detected",
			"National context detected",
			"Report Reference Number provided",
		},
	}
	if err := r.CreateLossReport(ctx, lr); err != nil {
		t.Fatalf("CreateLossReport: %v", err)
	}

	got, err := r.FindLossReportByID(ctx, lr.ID)
	if err != nil {
		t.Fatalf("FindLossReportByID: %v", err)
	}
	if got.ConfidenceScore != 100 || got.VerificationStatus != models.VerificationVerified {
		t.Errorf("score/status = %d/%q", got.ConfidenceScore, got.VerificationStatus)
	}
	if len(got.VerificationNotes) != 3 || got.VerificationNotes[0] != "Police terminology detected" {
		t.Errorf("notes = %v, order must be preserved", got.VerificationNotes)
	}
}

func TestListLossReportsNewestFirst(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	owner := seedUser(t, ctx, r, "Owner", "owner@example.com")
	other := seedUser(t, ctx, r, "Other", "other@example.com")

	older := seedLossReport(t, ctx, r, owner.ID, "first report")
	if err := r.DB.Model(older).Update("created_at", time.Now().Add(-time.Hour)).Error; err != nil {
		t.Fatalf("backdate: %v", err)
	}
	newer := seedLossReport(t, ctx, r, owner.ID, "second report")
	seedLossReport(t, ctx, r, other.ID, "someone else's report")

	reports, err := r.ListLossReportsByOwner(ctx, owner.ID)
	if err != nil {
		t.Fatalf("ListLossReportsByOwner: %v", err)
	}
	if len(reports) != 2 {
		t.Fatalf("reports = %d, want 2", len(reports))
	}
	if reports[0].ID != newer.ID || reports[1].ID != older.ID {
		t.Errorf("order = [%s %s], want newest first", reports[0].Description, reports[1].Description)
	}
}
