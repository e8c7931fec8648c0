package db

import (
	"context"
	"errors"
	"testing"

	"lostfound/models"

	"github.com/google/uuid"
)

func TestCreateUserDuplicateEmail(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	seedUser(t, ctx, r, "First", "same@example.com")
	err := r.CreateUser(ctx, &models.User{
		ID:       uuid.NewString(),
		Name:     "Second",
		Email:    "same@example.com",
		Password: "hash",
	})
	if !errors.Is(err, ErrEmailTaken) {
		t.Errorf("err = %v, want ErrEmailTaken", err)
	}
}

func TestUpdateUserProfile(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	u := seedUser(t, ctx, r, "Old Name", "old@example.com")
	seedUser(t, ctx, r, "Taken", "taken@example.com")

	updated, err := r.UpdateUserProfile(ctx, u.ID, "New Name", "")
	if err != nil {
		t.Fatalf("UpdateUserProfile: %v", err)
	}
	if updated.Name != "New Name" || updated.Email != "old@example.com" {
		t.Errorf("got %q/%q, want name changed and email untouched", updated.Name, updated.Email)
	}

	if _, err := r.UpdateUserProfile(ctx, u.ID, "", "taken@example.com"); !errors.Is(err, ErrEmailTaken) {
		t.Errorf("err = %v, want ErrEmailTaken", err)
	}
}
