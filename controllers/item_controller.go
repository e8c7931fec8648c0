package controllers

import (
	"errors"
	"net/http"

	"lostfound/app"
	"lostfound/db"
	"lostfound/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ItemController struct{ *Srv }

func NewItemController(s *Srv) *ItemController { return &ItemController{Srv: s} }

// POST /items
func (ic *ItemController) CreateItem(c *gin.Context) {
	uid, ok := app.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, app.H{"error": "unauthorized"})
		return
	}

	var in struct {
		Title       string `json:"title" binding:"required"`
		Description string `json:"description" binding:"required"`
		Category    string `json:"category" binding:"required"`
		Status      string `json:"status" binding:"required"`
		Location    string `json:"location" binding:"required"`
		ImageURL    string `json:"imageUrl"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}
	if !models.ValidItemStatus(in.Status) {
		c.JSON(http.StatusBadRequest, app.H{"error": "status must be lost or found"})
		return
	}

	it := &models.Item{
		ID:          uuid.NewString(),
		Title:       in.Title,
		Description: in.Description,
		Category:    in.Category,
		Status:      in.Status,
		Location:    in.Location,
		ImageURL:    in.ImageURL,
		OwnerID:     uid,
		State:       models.ItemStateActive,
	}
	if err := ic.Repo.CreateItem(c.Request.Context(), it); err != nil {
		ic.Log.Error("create item failed", "error", err)
		c.JSON(http.StatusInternalServerError, app.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, it)
}

// GET /items?status=&category=&search=
func (ic *ItemController) ListItems(c *gin.Context) {
	q := db.ItemsQuery{
		Status:   c.Query("status"),
		Category: c.Query("category"),
		Search:   c.Query("search"),
	}
	rows, err := ic.Repo.ListItems(c.Request.Context(), q)
	if err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, app.H{"items": rows})
}

// GET /items/me
func (ic *ItemController) ListMyItems(c *gin.Context) {
	uid, ok := app.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, app.H{"error": "unauthorized"})
		return
	}
	items, err := ic.Repo.ListItemsByOwner(c.Request.Context(), uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, app.H{"items": items})
}

// GET /items/:id
func (ic *ItemController) GetItem(c *gin.Context) {
	row, err := ic.Repo.FindItemRowByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			c.JSON(http.StatusNotFound, app.H{"error": "item not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, app.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, row)
}

// PATCH /items/:id
func (ic *ItemController) UpdateItemState(c *gin.Context) {
	uid, ok := app.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, app.H{"error": "unauthorized"})
		return
	}

	var in struct {
		State string `json:"state" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}
	if !models.ValidItemState(in.State) {
		c.JSON(http.StatusBadRequest, app.H{"error": "invalid state"})
		return
	}

	it, err := ic.Repo.UpdateItemState(c.Request.Context(), c.Param("id"), uid, in.State)
	if err != nil {
		switch {
		case errors.Is(err, db.ErrNotFound):
			c.JSON(http.StatusNotFound, app.H{"error": "item not found"})
		case errors.Is(err, db.ErrNotOwner):
			c.JSON(http.StatusUnauthorized, app.H{"error": "not authorized"})
		default:
			c.JSON(http.StatusInternalServerError, app.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, it)
}

// DELETE /items/:id
func (ic *ItemController) DeleteItem(c *gin.Context) {
	uid, ok := app.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, app.H{"error": "unauthorized"})
		return
	}

	err := ic.Repo.DeleteItem(c.Request.Context(), c.Param("id"), uid)
	if err != nil {
		switch {
		case errors.Is(err, db.ErrNotFound):
			c.JSON(http.StatusNotFound, app.H{"error": "item not found"})
		case errors.Is(err, db.ErrNotOwner):
			c.JSON(http.StatusUnauthorized, app.H{"error": "not authorized"})
		default:
			c.JSON(http.StatusInternalServerError, app.H{"error": err.Error()})
		}
		return
	}
	c.Status(http.StatusNoContent)
}
