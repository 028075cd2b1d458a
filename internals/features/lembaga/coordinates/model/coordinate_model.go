package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CoordinateModel menyimpan titik geofence milik tenant:
// lat/long pusat area + radius (meter). Disimpan saja, enforcement
// posisi live dilakukan di sisi klien.
type CoordinateModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Latitude  float64   `gorm:"not null" json:"latitude"`
	Longitude float64   `gorm:"not null" json:"longitude"`
	Radius    int       `gorm:"not null" json:"radius"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (CoordinateModel) TableName() string {
	return "coordinates"
}

func (m *CoordinateModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
