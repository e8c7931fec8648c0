package controllers

import (
	"errors"
	"net/http"

	"lostfound/app"
	"lostfound/db"
	"lostfound/models"

	"github.com/gin-gonic/gin"
)

type ClaimController struct{ *Srv }

func NewClaimController(s *Srv) *ClaimController { return &ClaimController{Srv: s} }

// POST /claims
func (cc *ClaimController) CreateClaim(c *gin.Context) {
	uid, ok := app.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, app.H{"error": "unauthorized"})
		return
	}

	var in struct {
		ItemID       string `json:"itemId" binding:"required"`
		LossReportID string `json:"lossReportId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}

	claim, err := cc.Repo.CreateClaim(c.Request.Context(), in.ItemID, in.LossReportID, uid)
	if err != nil {
		switch {
		case errors.Is(err, db.ErrNotFound):
			c.JSON(http.StatusNotFound, app.H{"error": "item or report not found"})
		case errors.Is(err, db.ErrDuplicateClaim):
			c.JSON(http.StatusBadRequest, app.H{"error": "you have already claimed this item"})
		default:
			cc.Log.Error("create claim failed", "error", err)
			c.JSON(http.StatusInternalServerError, app.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, app.H{
		"id":         claim.ID,
		"matchScore": claim.MatchScore,
		"status":     claim.Status,
	})
}

// GET /claims?type=filed|received
func (cc *ClaimController) ListMyClaims(c *gin.Context) {
	uid, ok := app.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, app.H{"error": "unauthorized"})
		return
	}

	direction := c.DefaultQuery("type", db.ClaimsFiled)
	if direction != db.ClaimsFiled && direction != db.ClaimsReceived {
		c.JSON(http.StatusBadRequest, app.H{"error": "type must be filed or received"})
		return
	}

	rows, err := cc.Repo.ListClaims(c.Request.Context(), uid, direction)
	if err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, app.H{"claims": rows})
}

// PATCH /claims/:id/status
func (cc *ClaimController) UpdateClaimStatus(c *gin.Context) {
	uid, ok := app.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, app.H{"error": "unauthorized"})
		return
	}

	var in struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}
	switch in.Status {
	case models.ClaimAccepted, models.ClaimRejected, models.ClaimReturned:
	default:
		c.JSON(http.StatusBadRequest, app.H{"error": "status must be accepted, rejected or returned"})
		return
	}

	claim, err := cc.Repo.UpdateClaimStatus(c.Request.Context(), c.Param("id"), in.Status, uid)
	if err != nil {
		switch {
		case errors.Is(err, db.ErrNotFound):
			c.JSON(http.StatusNotFound, app.H{"error": "claim not found"})
		case errors.Is(err, db.ErrNotFinder):
			c.JSON(http.StatusUnauthorized, app.H{"error": "not authorized to update this claim"})
		case errors.Is(err, db.ErrInvalidTransition):
			c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		case errors.Is(err, db.ErrConcurrentUpdate):
			c.JSON(http.StatusConflict, app.H{"error": err.Error()})
		default:
			cc.Log.Error("update claim status failed", "claim", c.Param("id"), "error", err)
			c.JSON(http.StatusInternalServerError, app.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, claim)
}
