package dto

import (
	"time"

	"github.com/google/uuid"

	model "hadirku_backend/internals/features/users/user/model"
)

type UserResponse struct {
	ID             uuid.UUID  `json:"id"`
	Name           string     `json:"name"`
	UserName       string     `json:"username"`
	Email          *string    `json:"email,omitempty"`
	Phone          *string    `json:"phone,omitempty"`
	Role           string     `json:"role"`
	OrganizationID *uuid.UUID `json:"organization_id,omitempty"`
	EducationalID  *uuid.UUID `json:"educational_id,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

func FromUserModel(m model.UserModel) UserResponse {
	return UserResponse{
		ID:             m.ID,
		Name:           m.Name,
		UserName:       m.UserName,
		Email:          m.Email,
		Phone:          m.Phone,
		Role:           m.Role,
		OrganizationID: m.OrganizationID,
		EducationalID:  m.EducationalID,
		CreatedAt:      m.CreatedAt,
	}
}

func FromUserModels(ms []model.UserModel) []UserResponse {
	out := make([]UserResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromUserModel(m))
	}
	return out
}
