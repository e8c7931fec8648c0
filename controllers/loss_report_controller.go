package controllers

import (
	"net/http"
	"time"

	"lostfound/app"
	"lostfound/models"
	"lostfound/trust"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type LossReportController struct{ *Srv }

func NewLossReportController(s *Srv) *LossReportController {
	return &LossReportController{Srv: s}
}

// POST /loss-reports
func (lc *LossReportController) CreateLossReport(c *gin.Context) {
	uid, ok := app.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, app.H{"error": "unauthorized"})
		return
	}

	var in struct {
		ReportType    string `json:"reportType" binding:"required"`
		IncidentDate  string `json:"incidentDate" binding:"required"`
		PoliceStation string `json:"policeStation"`
		ReportNumber  string `json:"reportNumber"`
		Description   string `json:"description" binding:"required"`
		ImageURL      string `json:"imageUrl"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}

	incident, err := parseIncidentDate(in.IncidentDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": "incidentDate must be RFC3339 or YYYY-MM-DD"})
		return
	}

	a := trust.ScoreReport(trust.ReportInput{
		Description:   in.Description,
		PoliceStation: in.PoliceStation,
		ReportNumber:  in.ReportNumber,
		ImageURL:      in.ImageURL,
	})

	lr := &models.LossReport{
		ID:                 uuid.NewString(),
		OwnerID:            uid,
		ReportType:         in.ReportType,
		IncidentDate:       incident,
		PoliceStation:      in.PoliceStation,
		ReportNumber:       in.ReportNumber,
		Description:        in.Description,
		ImageURL:           in.ImageURL,
		VerificationStatus: a.Status,
		ConfidenceScore:    a.Score,
		VerificationNotes:  a.Notes,
	}
	if err := lc.Repo.CreateLossReport(c.Request.Context(), lr); err != nil {
		lc.Log.Error("create loss report failed", "error", err)
		c.JSON(http.StatusInternalServerError, app.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, app.H{
		"id":     lr.ID,
		"status": lr.VerificationStatus,
		"score":  lr.ConfidenceScore,
	})
}

// GET /loss-reports
func (lc *LossReportController) ListMyLossReports(c *gin.Context) {
	uid, ok := app.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, app.H{"error": "unauthorized"})
		return
	}
	reports, err := lc.Repo.ListLossReportsByOwner(c.Request.Context(), uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, app.H{"reports": reports})
}

func parseIncidentDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
