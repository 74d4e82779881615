package dto

import (
	"strings"
	"time"

	"autismcare_backend/internals/features/care/sessions/model"
	helper "autismcare_backend/internals/helpers"
	"autismcare_backend/internals/helpers/dbtime"
)

type SessionRequest struct {
	ProfileID   uint   `json:"profile_id" validate:"required,gt=0"`
	SessionDate string `json:"session_date" validate:"required,datetime=2006-01-02"`
	Therapist   string `json:"therapist" validate:"required,max=100"`
	TherapistID *uint  `json:"therapist_id" validate:"omitempty,gt=0"`
	Notes       string `json:"notes"`
	Goals       string `json:"goals"`
}

func (r *SessionRequest) ToModel() (*model.SessionModel, error) {
	m := &model.SessionModel{}
	if err := r.ApplyTo(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (r *SessionRequest) ApplyTo(m *model.SessionModel) error {
	day, err := dbtime.ParseDate(r.SessionDate)
	if err != nil {
		return helper.FieldError("session_date", "Date has wrong format. Use YYYY-MM-DD.")
	}
	m.ProfileID = r.ProfileID
	m.SessionDate = day
	m.Therapist = strings.TrimSpace(r.Therapist)
	m.TherapistID = r.TherapistID
	m.Notes = r.Notes
	m.Goals = r.Goals
	return nil
}

type SessionResponse struct {
	ID          uint      `json:"id"`
	ProfileID   uint      `json:"profile_id"`
	SessionDate string    `json:"session_date"`
	Therapist   string    `json:"therapist"`
	TherapistID *uint     `json:"therapist_id"`
	Notes       string    `json:"notes"`
	Goals       string    `json:"goals"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func ToSessionResponse(m *model.SessionModel) SessionResponse {
	return SessionResponse{
		ID:          m.ID,
		ProfileID:   m.ProfileID,
		SessionDate: dbtime.FormatDate(m.SessionDate),
		Therapist:   m.Therapist,
		TherapistID: m.TherapistID,
		Notes:       m.Notes,
		Goals:       m.Goals,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func ToSessionResponses(rows []model.SessionModel) []SessionResponse {
	out := make([]SessionResponse, 0, len(rows))
	for i := range rows {
		out = append(out, ToSessionResponse(&rows[i]))
	}
	return out
}
