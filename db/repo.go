package db

import (
	"context"
	"errors"

	"lostfound/models"

	"gorm.io/gorm"
)

// Sentinel errors surfaced to controllers; everything else is a storage
// failure and comes back as-is.
var (
	ErrNotFound          = errors.New("not found")
	ErrDuplicateClaim    = errors.New("claim already exists for this item and claimant")
	ErrNotFinder         = errors.New("only the finder may update this claim")
	ErrNotOwner          = errors.New("only the owner may modify this item")
	ErrInvalidTransition = errors.New("invalid claim status transition")
	ErrConcurrentUpdate  = errors.New("claim was updated concurrently")
	ErrEmailTaken        = errors.New("email already in use")
)

type Repo struct{ DB *gorm.DB }

func NewRepo(db *gorm.DB) *Repo { return &Repo{DB: db} }

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// Users

func (r *Repo) CreateUser(ctx context.Context, u *models.User) error {
	err := r.DB.WithContext(ctx).Create(u).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrEmailTaken
	}
	return err
}

func (r *Repo) FindUserByID(ctx context.Context, id string) (*models.User, error) {
	var u models.User
	if err := r.DB.WithContext(ctx).First(&u, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	return &u, nil
}

func (r *Repo) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	if err := r.DB.WithContext(ctx).First(&u, "email = ?", email).Error; err != nil {
		return nil, notFound(err)
	}
	return &u, nil
}

// UpdateUserProfile changes name and/or email; empty fields are left alone.
func (r *Repo) UpdateUserProfile(ctx context.Context, id, name, email string) (*models.User, error) {
	updates := map[string]interface{}{}
	if name != "" {
		updates["name"] = name
	}
	if email != "" {
		updates["email"] = email
	}
	if len(updates) > 0 {
		err := r.DB.WithContext(ctx).Model(&models.User{}).
			Where("id = ?", id).
			Updates(updates).Error
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		if err != nil {
			return nil, err
		}
	}
	return r.FindUserByID(ctx, id)
}

func (r *Repo) TouchUserSeen(ctx context.Context, userID string) error {
	return r.DB.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", userID).
		Update("last_seen_at", gorm.Expr("CURRENT_TIMESTAMP")).Error
}
