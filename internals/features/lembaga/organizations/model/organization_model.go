package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	coordinateModel "hadirku_backend/internals/features/lembaga/coordinates/model"
)

// OrganizationModel merepresentasikan tabel organizations (tenant perusahaan)
type OrganizationModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name         string    `gorm:"size:100;uniqueIndex;not null" json:"name"`
	CoordinateID uuid.UUID `gorm:"type:uuid;not null" json:"coordinate_id"`

	Coordinate *coordinateModel.CoordinateModel `gorm:"foreignKey:CoordinateID" json:"coordinate,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (OrganizationModel) TableName() string {
	return "organizations"
}

func (m *OrganizationModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
