package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/agenda-saas/internal/httperr"
	"github.com/BruksfildServices01/agenda-saas/internal/httpresp"
	ucScheduling "github.com/BruksfildServices01/agenda-saas/internal/usecase/scheduling"
)

// ======================================================
// HANDLER — borda pública (agente de voz / chatbot)
// ======================================================

type PublicHandler struct {
	createLocal *ucScheduling.CreateFromLocalTime
	createText  *ucScheduling.CreateFromNaturalLanguage
}

func NewPublicHandler(
	createLocal *ucScheduling.CreateFromLocalTime,
	createText *ucScheduling.CreateFromNaturalLanguage,
) *PublicHandler {
	return &PublicHandler{
		createLocal: createLocal,
		createText:  createText,
	}
}

// ======================================================
// REQUEST
// ======================================================

// Aceita OU horário estruturado (date+time) OU texto livre (text) — nunca
// os dois. timezone e party_size sempre obrigatórios.
type PublicCreateRequest struct {
	UserID    string `json:"user_id" binding:"required"`
	Timezone  string `json:"timezone" binding:"required"`
	PartySize int    `json:"party_size" binding:"required"`

	Date string `json:"date"`
	Time string `json:"time"`

	Text string `json:"text"`

	DurationMinutes int `json:"duration_minutes"`
}

// ======================================================
// CREATE
// ======================================================

func (h *PublicHandler) CreateAppointment(c *gin.Context) {
	businessID, ok := businessIDParam(c)
	if !ok {
		return
	}

	var req PublicCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	// --------------------------------------------------
	// Texto livre → parser de linguagem natural
	// --------------------------------------------------
	if req.Text != "" {
		ap, err := h.createText.Execute(c.Request.Context(), ucScheduling.CreateFromNaturalLanguageInput{
			BusinessID:      businessID,
			UserID:          req.UserID,
			Text:            req.Text,
			Timezone:        req.Timezone,
			PartySize:       req.PartySize,
			DurationMinutes: req.DurationMinutes,
		})
		if err != nil {
			httperr.FromDomain(c, err)
			return
		}

		httpresp.Created(c, ap)
		return
	}

	// --------------------------------------------------
	// Horário estruturado
	// --------------------------------------------------
	if req.Date == "" || req.Time == "" {
		httperr.BadRequest(c, "missing_time", "Informe text ou date+time.")
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
