package dto

import (
	"strings"
	"time"

	"autismcare_backend/internals/features/schools/therapists/model"
)

type TherapistRequest struct {
	Name           string `json:"name" validate:"required,max=200"`
	Specialization string `json:"specialization" validate:"required,max=200"`
	Phone          string `json:"phone" validate:"omitempty,max=30"`
	Email          string `json:"email" validate:"omitempty,email,max=254"`
	SchoolID       *uint  `json:"school_id" validate:"omitempty,gt=0"`
}

func (r *TherapistRequest) ToModel() *model.TherapistModel {
	m := &model.TherapistModel{}
	r.ApplyTo(m)
	return m
}

func (r *TherapistRequest) ApplyTo(m *model.TherapistModel) {
	m.Name = strings.TrimSpace(r.Name)
	m.Specialization = strings.TrimSpace(r.Specialization)
	m.Phone = strings.TrimSpace(r.Phone)
	m.Email = strings.ToLower(strings.TrimSpace(r.Email))
	m.SchoolID = r.SchoolID
}

type TherapistResponse struct {
	ID             uint      `json:"id"`
	Name           string    `json:"name"`
	Specialization string    `json:"specialization"`
	Phone          string    `json:"phone"`
	Email          string    `json:"email"`
	SchoolID       *uint     `json:"school_id"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func ToTherapistResponse(m *model.TherapistModel) TherapistResponse {
	return TherapistResponse{
		ID:             m.ID,
		Name:           m.Name,
		Specialization: m.Specialization,
		Phone:          m.Phone,
		Email:          m.Email,
		SchoolID:       m.SchoolID,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

func ToTherapistResponses(rows []model.TherapistModel) []TherapistResponse {
	out := make([]TherapistResponse, 0, len(rows))
	for i := range rows {
		out = append(out, ToTherapistResponse(&rows[i]))
	}
	return out
}
