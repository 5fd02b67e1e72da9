package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/agenda-saas/internal/capacity"
	domain "github.com/BruksfildServices01/agenda-saas/internal/domain/scheduling"
	"github.com/BruksfildServices01/agenda-saas/internal/httperr"
	"github.com/BruksfildServices01/agenda-saas/internal/httpresp"
	"github.com/BruksfildServices01/agenda-saas/internal/timezone"
	ucScheduling "github.com/BruksfildServices01/agenda-saas/internal/usecase/scheduling"
)

// ======================================================
// HANDLER
// ======================================================

type SchedulingHandler struct {
	createLocal *ucScheduling.CreateFromLocalTime
	utilization *ucScheduling.GetUtilization
	transition  *ucScheduling.TransitionStatus
	listDay     *ucScheduling.ListDay
	invalidate  *ucScheduling.InvalidateSnapshots
}

func NewSchedulingHandler(
	createLocal *ucScheduling.CreateFromLocalTime,
	utilization *ucScheduling.GetUtilization,
	transition *ucScheduling.TransitionStatus,
	listDay *ucScheduling.ListDay,
	invalidate *ucScheduling.InvalidateSnapshots,
) *SchedulingHandler {
	return &SchedulingHandler{
		createLocal: createLocal,
		utilization: utilization,
		transition:  transition,
		listDay:     listDay,
		invalidate:  invalidate,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	UserID          string `json:"user_id" binding:"required"`
	Date            string `json:"date" binding:"required"`
	Time            string `json:"time" binding:"required"`
	Timezone        string `json:"timezone" binding:"required"`
	PartySize       int    `json:"party_size" binding:"required"`
	DurationMinutes int    `json:"duration_minutes"`
}

type TransitionRequest struct {
	Status  string `json:"status" binding:"required"`
	ActorID string `json:"actor_id"`
}

// ======================================================
// HELPERS
// ======================================================

func businessIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("businessID"), 10, 32)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "invalid_business_id", "Identificador de negócio inválido.")
		return 0, false
	}
	return uint(id), true
}

func utilizationBand(snap capacity.Snapshot) capacity.Band {
	return capacity.BandFor(snap.Percentage)
}

// civilFromRequest monta o CivilTime a partir de "2006-01-02" + "15:04".
func civilFromRequest(dateStr, timeStr string) (timezone.CivilTime, error) {
	d, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return timezone.CivilTime{}, err
	}

	t, err := time.Parse("15:04", timeStr)
	if err != nil {
		return timezone.CivilTime{}, err
	}

	return timezone.CivilTime{
		Year:   d.Year(),
		Month:  d.Month(),
		Day:    d.Day(),
		Hour:   t.Hour(),
		Minute: t.Minute(),
	}, nil
}

// ======================================================
// CREATE (horário de parede explícito)
// ======================================================

func (h *SchedulingHandler) Create(c *gin.Context) {
	businessID, ok := businessIDParam(c)
	if !ok {
		return
	}

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	civil, err := civilFromRequest(req.Date, req.Time)
	if err != nil {
		httperr.BadRequest(c, "invalid_date_or_time", "Data ou hora inválida.")
		return
	}

	ap, err := h.createLocal.Execute(c.Request.Context(), ucScheduling.CreateFromLocalTimeInput{
		BusinessID:      businessID,
		UserID:          req.UserID,
		Civil:           civil,
		Timezone:        req.Timezone,
		PartySize:       req.PartySize,
		DurationMinutes: req.DurationMinutes,
	})
	if err != nil {
		httperr.FromDomain(c, err)
		return
	}

	httpresp.Created(c, ap)
}

// ======================================================
// LIST (dia-calendário local)
// ======================================================

func (h *SchedulingHandler) ListByDay(c *gin.Context) {
	businessID, ok := businessIDParam(c)
	if !ok {
		return
	}

	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Data obrigatória.")
		return
	}

	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	out, err := h.listDay.Execute(c.Request.Context(), businessID, date, c.Query("tz"))
	if err != nil {
		httperr.FromDomain(c, err)
		return
	}

	httpresp.List(c, out)
}

// ======================================================
// UTILIZATION (leitura cache-aside)
// ======================================================

func (h *SchedulingHandler) GetUtilization(c *gin.Context) {
	businessID, ok := businessIDParam(c)
	if !ok {
		return
	}

	date := timezone.Now()
	if dateStr := c.Query("date"); dateStr != "" {
		parsed, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Data inválida.")
			return
		}
		date = parsed
	}

	rng := ucScheduling.RangeDay
	if c.Query("range") == string(ucScheduling.RangeWeek) {
		rng = ucScheduling.RangeWeek
	}

	snap, err := h.utilization.Execute(c.Request.Context(), ucScheduling.GetUtilizationInput{
		BusinessID: businessID,
		Date:       date,
		Range:      rng,
		Timezone:   c.Query("tz"),
	})
	if err != nil {
		httperr.FromDomain(c, err)
		return
	}

	c.JSON(200, gin.H{
		"snapshot": snap,
		"band":     utilizationBand(snap),
	})
}

// ======================================================
// STATUS TRANSITION
// ======================================================

func (h *SchedulingHandler) UpdateStatus(c *gin.Context) {
	businessID, ok := businessIDParam(c)
	if !ok {
		return
	}

	publicID := c.Param("id")

	var req TransitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.transition.Execute(
		c.Request.Context(),
		businessID,
		publicID,
		domain.Status(req.Status),
		req.ActorID,
	)
	if err != nil {
		httperr.FromDomain(c, err)
		return
	}

	c.JSON(200, ap)
}

// ======================================================
// CACHE INVALIDATION
// ======================================================

func (h *SchedulingHandler) InvalidateCache(c *gin.Context) {
	businessID, ok := businessIDParam(c)
	if !ok {
		return
	}

	var period *time.Time
	if p := c.Query("period"); p != "" {
		parsed, err := time.Parse("2006-01-02", p)
		if err != nil {
			httperr.BadRequest(c, "invalid_period", "Período inválido.")
			return
		}
		period = &parsed
	}

	cleared := h.invalidate.Execute(businessID, period)
	c.JSON(200, gin.H{"cleared": cleared})
}
