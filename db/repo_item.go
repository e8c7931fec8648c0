package db

import (
	"context"
	"strings"

	"lostfound/models"
)

// ItemRow is an item enriched with its owner's public fields for listing.
type ItemRow struct {
	models.Item
	OwnerName  string `json:"ownerName"`
	OwnerEmail string `json:"ownerEmail"`
}

type ItemsQuery struct {
	Status   string // "", "lost", "found"
	Category string
	Search   string // matches title/description
}

func (r *Repo) CreateItem(ctx context.Context, it *models.Item) error {
	return r.DB.WithContext(ctx).Create(it).Error
}

func (r *Repo) FindItemByID(ctx context.Context, id string) (*models.Item, error) {
	var it models.Item
	if err := r.DB.WithContext(ctx).First(&it, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	return &it, nil
}

func (r *Repo) FindItemRowByID(ctx context.Context, id string) (*ItemRow, error) {
	var row ItemRow
	err := r.DB.WithContext(ctx).
		Table(models.ItemTable+" i").
		Select("i.*, u.name AS owner_name, u.email AS owner_email").
		Joins("LEFT JOIN "+models.UserTable+" u ON u.id = i.owner_id").
		Where("i.id = ?", id).
		Scan(&row).Error
	if err != nil {
		return nil, err
	}
	if row.ID == "" {
		return nil, ErrNotFound
	}
	return &row, nil
}

func (r *Repo) ListItems(ctx context.Context, q ItemsQuery) ([]ItemRow, error) {
	qry := r.DB.WithContext(ctx).
		Table(models.ItemTable + " i").
		Select("i.*, u.name AS owner_name, u.email AS owner_email").
		Joins("LEFT JOIN " + models.UserTable + " u ON u.id = i.owner_id")

	if q.Status != "" {
		qry = qry.Where("i.status = ?", q.Status)
	}
	if q.Category != "" {
		qry = qry.Where("i.category = ?", q.Category)
	}
	if s := strings.TrimSpace(q.Search); s != "" {
		pat := "%" + strings.ToLower(s) + "%"
		qry = qry.Where("LOWER(i.title) LIKE ? OR LOWER(i.description) LIKE ?", pat, pat)
	}

	var rows []ItemRow
	if err := qry.Order("i.created_at DESC").Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *Repo) ListItemsByOwner(ctx context.Context, ownerID string) ([]models.Item, error) {
	var items []models.Item
	err := r.DB.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&items).Error
	return items, err
}

// UpdateItemState moves an item through its lifecycle (mark recovered,
// returned, archived, or re-activate). Only the owner may do this.
func (r *Repo) UpdateItemState(ctx context.Context, itemID, actorID, state string) (*models.Item, error) {
	it, err := r.FindItemByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if it.OwnerID != actorID {
		return nil, ErrNotOwner
	}
	if err := r.DB.WithContext(ctx).Model(it).Update("state", state).Error; err != nil {
		return nil, err
	}
	return it, nil
}

func (r *Repo) DeleteItem(ctx context.Context, itemID, actorID string) error {
	it, err := r.FindItemByID(ctx, itemID)
	if err != nil {
		return err
	}
	if it.OwnerID != actorID {
		return ErrNotOwner
	}
	return r.DB.WithContext(ctx).Delete(&models.Item{}, "id = ?", itemID).Error
}
