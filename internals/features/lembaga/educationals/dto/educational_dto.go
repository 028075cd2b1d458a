package dto

import (
	"time"

	"github.com/google/uuid"

	model "hadirku_backend/internals/features/lembaga/educationals/model"
	organizationDTO "hadirku_backend/internals/features/lembaga/organizations/dto"
)

type EducationalResponse struct {
	ID         uuid.UUID                           `json:"id"`
	Name       string                              `json:"name"`
	Coordinate *organizationDTO.CoordinateResponse `json:"coordinate,omitempty"`
	CreatedAt  time.Time                           `json:"created_at"`
}

func FromEducationalModel(m model.EducationalModel) EducationalResponse {
	resp := EducationalResponse{
		ID:        m.ID,
		Name:      m.Name,
		CreatedAt: m.CreatedAt,
	}
	if m.Coordinate != nil {
		coordinate := organizationDTO.FromCoordinateModel(*m.Coordinate)
		resp.Coordinate = &coordinate
	}
	return resp
}
