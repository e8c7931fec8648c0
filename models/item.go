package models

import "time"

const ItemTable = "lf_items"

// Status is whether the item was posted as lost or found. It is fixed at
// creation; the lifecycle lives in State.
const (
	ItemStatusLost  = "lost"
	ItemStatusFound = "found"
)

const (
	ItemStateActive    = "active"
	ItemStateRecovered = "recovered" // owner got their lost item back themselves
	ItemStateReturned  = "returned"  // found item handed back, manually or via a claim
	ItemStateArchived  = "archived"
)

type Item struct {
	ID          string `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string `gorm:"size:200;not null" json:"title"`
	Description string `gorm:"type:text;not null" json:"description"`
	Category    string `gorm:"size:100;not null;index" json:"category"`
	Location    string `gorm:"size:255;not null" json:"location"`
	Status      string `gorm:"size:20;not null;index" json:"status"`
	ImageURL    string `gorm:"size:500" json:"imageUrl,omitempty"`
	OwnerID     string `gorm:"type:uuid;index;not null" json:"owner"`
	State       string `gorm:"size:20;not null;default:'active'" json:"state"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Item) TableName() string { return ItemTable }

func ValidItemStatus(s string) bool {
	return s == ItemStatusLost || s == ItemStatusFound
}

func ValidItemState(s string) bool {
	switch s {
	case ItemStateActive, ItemStateRecovered, ItemStateReturned, ItemStateArchived:
		return true
	}
	return false
}
