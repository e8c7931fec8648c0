package db

import (
	"context"
	"errors"
	"time"

	"lostfound/models"
	"lostfound/trust"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Claim listing direction: claims the user filed, or claims filed against
// the user's found items.
const (
	ClaimsFiled    = "filed"
	ClaimsReceived = "received"
)

// ClaimRow is a claim enriched with the related item and the counterparty
// (the finder when listing filed claims, the claimant when listing received
// ones). Credential fields are never selected.
type ClaimRow struct {
	models.Claim
	ItemTitle    string `json:"itemTitle"`
	ItemCategory string `json:"itemCategory"`
	ItemLocation string `json:"itemLocation"`
	ItemStatus   string `json:"itemStatus"`
	ItemState    string `json:"itemState"`
	ItemImageURL string `json:"itemImageUrl,omitempty"`

	OtherPartyID    string `json:"otherPartyId"`
	OtherPartyName  string `json:"otherPartyName"`
	OtherPartyEmail string `json:"otherPartyEmail"`
}

// CreateClaim scores the claimant's report against the item and persists a
// pending claim with the item's owner snapshotted as finder.
//
// The duplicate pre-check gives a clean error on the common path; the unique
// index on (item_id, claimant_id) is what actually closes the race when two
// requests arrive together.
func (r *Repo) CreateClaim(ctx context.Context, itemID, lossReportID, claimantID string) (*models.Claim, error) {
	var claim *models.Claim
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var it models.Item
		if err := tx.First(&it, "id = ?", itemID).Error; err != nil {
			return notFound(err)
		}
		var lr models.LossReport
		if err := tx.First(&lr, "id = ?", lossReportID).Error; err != nil {
			return notFound(err)
		}

		var n int64
		if err := tx.Model(&models.Claim{}).
			Where("item_id = ? AND claimant_id = ?", itemID, claimantID).
			Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return ErrDuplicateClaim
		}

		score := trust.ScoreMatch(trust.MatchInput{
			Title:       it.Title,
			Location:    it.Location,
			Description: lr.Description,
		})

		c := &models.Claim{
			ID:           uuid.NewString(),
			ItemID:       it.ID,
			FinderID:     it.OwnerID,
			ClaimantID:   claimantID,
			LossReportID: lr.ID,
			Status:       models.ClaimPending,
			MatchScore:   score,
		}
		if err := tx.Create(c).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrDuplicateClaim
			}
			return err
		}
		claim = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return claim, nil
}

func (r *Repo) FindClaimByID(ctx context.Context, id string) (*models.Claim, error) {
	var c models.Claim
	if err := r.DB.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	return &c, nil
}

func (r *Repo) ListClaims(ctx context.Context, userID, direction string) ([]ClaimRow, error) {
	who := "c.claimant_id"
	other := "c.finder_id"
	if direction == ClaimsReceived {
		who = "c.finder_id"
		other = "c.claimant_id"
	}

	var rows []ClaimRow
	err := r.DB.WithContext(ctx).
		Table(models.ClaimTable+" c").
		Select(`c.*,
			i.title     AS item_title,
			i.category  AS item_category,
			i.location  AS item_location,
			i.status    AS item_status,
			i.state     AS item_state,
			i.image_url AS item_image_url,
			u.id        AS other_party_id,
			u.name      AS other_party_name,
			u.email     AS other_party_email`).
		Joins("JOIN "+models.ItemTable+" i ON i.id = c.item_id").
		Joins("JOIN "+models.UserTable+" u ON u.id = "+other).
		Where(who+" = ?", userID).
		Order("c.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// UpdateClaimStatus applies a lifecycle transition. Only the finder may
// adjudicate, and only the transitions pending→accepted, pending→rejected
// and accepted→returned are allowed. A returned claim also moves the item to
// its returned state, in the same transaction.
//
// The status change is a conditional update on the previously read status, so
// two concurrent adjudications cannot both win: the loser sees
// ErrConcurrentUpdate.
func (r *Repo) UpdateClaimStatus(ctx context.Context, claimID, newStatus, actorID string) (*models.Claim, error) {
	var claim models.Claim
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&claim, "id = ?", claimID).Error; err != nil {
			return notFound(err)
		}
		if claim.FinderID != actorID {
			return ErrNotFinder
		}
		if !models.ValidClaimTransition(claim.Status, newStatus) {
			return ErrInvalidTransition
		}

		res := tx.Model(&models.Claim{}).
			Where("id = ? AND status = ?", claimID, claim.Status).
			Updates(map[string]interface{}{
				"status":     newStatus,
				"updated_at": time.Now().UTC(),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrConcurrentUpdate
		}
		claim.Status = newStatus

		if newStatus == models.ClaimReturned {
			if err := tx.Model(&models.Item{}).
				Where("id = ?", claim.ItemID).
				Update("state", models.ItemStateReturned).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &claim, nil
}
