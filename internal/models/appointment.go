package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// Id público exposto na API (o sequencial fica interno)
	PublicID string `gorm:"size:36;uniqueIndex" json:"public_id"`

	BusinessID uint     `json:"business_id"`
	Business   Business `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"business"`

	UserID string `gorm:"size:64;index" json:"user_id"`

	// Sempre UTC-normalizado antes de chegar aqui (invariante do core)
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`

	PartySize int `json:"party_size"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`

	// Informativo apenas: zona que o usuário usou ao agendar
	UserTimezone string `gorm:"size:64" json:"user_timezone"`

	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
