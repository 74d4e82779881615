package dto

import (
	"strings"
	"time"

	"autismcare_backend/internals/features/care/profiles/model"
	helper "autismcare_backend/internals/helpers"
	"autismcare_backend/internals/helpers/dbtime"
)

// ProfileRequest is the payload for create and full update.
type ProfileRequest struct {
	UserID             uint   `json:"user_id" validate:"required,gt=0"`
	FirstName          string `json:"first_name" validate:"required,max=100"`
	LastName           string `json:"last_name" validate:"required,max=100"`
	DateOfBirth        string `json:"date_of_birth" validate:"required,datetime=2006-01-02"`
	DiagnosisDate      string `json:"diagnosis_date" validate:"required,datetime=2006-01-02"`
	Severity           string `json:"severity" validate:"required,max=50"`
	CommunicationLevel string `json:"communication_level" validate:"required,max=50"`
}

func (r *ProfileRequest) ToModel() (*model.ProfileModel, error) {
	m := &model.ProfileModel{}
	if err := r.ApplyTo(m); err != nil {
		return nil, err
	}
	return m, nil
}

// ApplyTo replaces every writable column of m.
func (r *ProfileRequest) ApplyTo(m *model.ProfileModel) error {
	dob, err := dbtime.ParseDate(r.DateOfBirth)
	if err != nil {
		return helper.FieldError("date_of_birth", "Date has wrong format. Use YYYY-MM-DD.")
	}
	diag, err := dbtime.ParseDate(r.DiagnosisDate)
	if err != nil {
		return helper.FieldError("diagnosis_date", "Date has wrong format. Use YYYY-MM-DD.")
	}
	if time.Time(diag).Before(time.Time(dob)) {
		return helper.FieldError("diagnosis_date", "Diagnosis date cannot be before date of birth.")
	}

	m.UserID = r.UserID
	m.FirstName = strings.TrimSpace(r.FirstName)
	m.LastName = strings.TrimSpace(r.LastName)
	m.DateOfBirth = dob
	m.DiagnosisDate = diag
	m.Severity = strings.TrimSpace(r.Severity)
	m.CommunicationLevel = strings.TrimSpace(r.CommunicationLevel)
	return nil
}

type ProfileResponse struct {
	ID                 uint      `json:"id"`
	UserID             uint      `json:"user_id"`
	FirstName          string    `json:"first_name"`
	LastName           string    `json:"last_name"`
	DateOfBirth        string    `json:"date_of_birth"`
	DiagnosisDate      string    `json:"diagnosis_date"`
	Severity           string    `json:"severity"`
	CommunicationLevel string    `json:"communication_level"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func ToProfileResponse(m *model.ProfileModel) ProfileResponse {
	return ProfileResponse{
		ID:                 m.ID,
		UserID:             m.UserID,
		FirstName:          m.FirstName,
		LastName:           m.LastName,
		DateOfBirth:        dbtime.FormatDate(m.DateOfBirth),
		DiagnosisDate:      dbtime.FormatDate(m.DiagnosisDate),
		Severity:           m.Severity,
		CommunicationLevel: m.CommunicationLevel,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}

func ToProfileResponses(rows []model.ProfileModel) []ProfileResponse {
	out := make([]ProfileResponse, 0, len(rows))
	for i := range rows {
		out = append(out, ToProfileResponse(&rows[i]))
	}
	return out
}
