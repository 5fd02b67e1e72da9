package dto

import "time"

// Resposta de listagem: instantes UTC crus + renderização de parede pronta,
// para a UI nunca refazer conta de fuso.
type AppointmentListDTO struct {
	PublicID string `json:"public_id"`

	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`

	StartLocal string `json:"start_local"`
	EndLocal   string `json:"end_local"`
	TzAbbr     string `json:"tz_abbr"`

	Status    string `json:"status"`
	PartySize int    `json:"party_size"`
	UserID    string `json:"user_id"`
}
