package db

import (
	"context"
	"testing"
	"time"

	"lostfound/models"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

func newTestRepo(tb testing.TB) *Repo {
	tb.Helper()
	conn, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormLogger.Default.LogMode(gormLogger.Silent),
	})
	if err != nil {
		tb.Fatalf("open test db: %v", err)
	}
	if err := Migrate(conn); err != nil {
		tb.Fatalf("migrate: %v", err)
	}
	return NewRepo(conn)
}

func seedUser(tb testing.TB, ctx context.Context, r *Repo, name, email string) *models.User {
	tb.Helper()
	u := &models.User{ID: uuid.NewString(), Name: name, Email: email, Password: "hash"}
	if err := r.CreateUser(ctx, u); err != nil {
		tb.Fatalf("seed user %s: %v", email, err)
	}
	return u
}

func seedItem(tb testing.TB, ctx context.Context, r *Repo, ownerID, title, location string) *models.Item {
	tb.Helper()
	it := &models.Item{
		ID:          uuid.NewString(),
		Title:       title,
		Description: "description of " + title,
		Category:    "misc",
		Location:    location,
		Status:      models.ItemStatusFound,
		OwnerID:     ownerID,
		State:       models.ItemStateActive,
	}
	if err := r.CreateItem(ctx, it); err != nil {
		tb.Fatalf("seed item %s: %v", title, err)
	}
	return it
}

func seedLossReport(tb testing.TB, ctx context.Context, r *Repo, ownerID, description string) *models.LossReport {
	tb.Helper()
	lr := &models.LossReport{
		ID:                 uuid.NewString(),
		OwnerID:            ownerID,
		ReportType:         "Lost",
		IncidentDate:       time.Now().UTC(),
		PoliceStation:      "Central",
		Description:        description,
		VerificationStatus: models.VerificationNeedsReview,
		VerificationNotes:  []string{},
	}
	if err := r.CreateLossReport(ctx, lr); err != nil {
		tb.Fatalf("seed loss report: %v", err)
	}
	return lr
}
