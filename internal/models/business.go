package models

import "time"

type Business struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:100;not null" json:"name"`
	Slug string `gorm:"size:100;uniqueIndex;not null" json:"slug"`

	Phone string `gorm:"size:20" json:"phone"`

	// Zona IANA oficial do negócio; todo horário de parede é interpretado nela
	Timezone string `gorm:"size:64;default:'UTC'" json:"timezone"`

	// Unidades reserváveis por dia (mesas, cadeiras, atendentes...)
	TotalCapacity int `gorm:"default:0" json:"total_capacity"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
