package dto

import (
	"time"

	"github.com/google/uuid"

	coordinateModel "hadirku_backend/internals/features/lembaga/coordinates/model"
	model "hadirku_backend/internals/features/lembaga/organizations/model"
)

type CoordinateResponse struct {
	ID        uuid.UUID `json:"id"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Radius    int       `json:"radius"`
}

func FromCoordinateModel(m coordinateModel.CoordinateModel) CoordinateResponse {
	return CoordinateResponse{
		ID:        m.ID,
		Latitude:  m.Latitude,
		Longitude: m.Longitude,
		Radius:    m.Radius,
	}
}

type OrganizationResponse struct {
	ID         uuid.UUID           `json:"id"`
	Name       string              `json:"name"`
	Coordinate *CoordinateResponse `json:"coordinate,omitempty"`
	CreatedAt  time.Time           `json:"created_at"`
}

func FromOrganizationModel(m model.OrganizationModel) OrganizationResponse {
	resp := OrganizationResponse{
		ID:        m.ID,
		Name:      m.Name,
		CreatedAt: m.CreatedAt,
	}
	if m.Coordinate != nil {
		coordinate := FromCoordinateModel(*m.Coordinate)
		resp.Coordinate = &coordinate
	}
	return resp
}
