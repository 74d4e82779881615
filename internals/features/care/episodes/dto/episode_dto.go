package dto

import (
	"strings"
	"time"

	"autismcare_backend/internals/features/care/episodes/model"
	helper "autismcare_backend/internals/helpers"
	"autismcare_backend/internals/helpers/dbtime"
)

// EpisodeRequest: start_time and end_time are RFC3339, episode_date is YYYY-MM-DD.
type EpisodeRequest struct {
	ProfileID   uint   `json:"profile_id" validate:"required,gt=0"`
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description"`
	StartTime   string `json:"start_time" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	EndTime     string `json:"end_time" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	EpisodeDate string `json:"episode_date" validate:"required,datetime=2006-01-02"`
	Severity    string `json:"severity" validate:"required,oneof=Low Medium High"`
	Notes       string `json:"notes"`
}

func (r *EpisodeRequest) ToModel() (*model.EpisodeModel, error) {
	m := &model.EpisodeModel{}
	if err := r.ApplyTo(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (r *EpisodeRequest) ApplyTo(m *model.EpisodeModel) error {
	fe := helper.FieldErrors{}
	start, err := dbtime.ParseDateTime(r.StartTime)
	if err != nil {
		fe.Add("start_time", "Datetime has wrong format. Use RFC3339.")
	}
	end, err := dbtime.ParseDateTime(r.EndTime)
	if err != nil {
		fe.Add("end_time", "Datetime has wrong format. Use RFC3339.")
	}
	day, err := dbtime.ParseDate(r.EpisodeDate)
	if err != nil {
		fe.Add("episode_date", "Date has wrong format. Use YYYY-MM-DD.")
	}
	if fe.Empty() && end.Before(start) {
		fe.Add("end_time", "End time must not be before start time.")
	}
	if !fe.Empty() {
		return fe
	}

	m.ProfileID = r.ProfileID
	m.Title = strings.TrimSpace(r.Title)
	m.Description = r.Description
	m.StartTime = start
	m.EndTime = end
	m.EpisodeDate = day
	m.Severity = r.Severity
	m.Notes = r.Notes
	return nil
}

type EpisodeResponse struct {
	ID              uint      `json:"id"`
	ProfileID       uint      `json:"profile_id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	StartTime       time.Time `json:"start_time"`
	EndTime         time.Time `json:"end_time"`
	EpisodeDate     string    `json:"episode_date"`
	Severity        string    `json:"severity"`
	Notes           string    `json:"notes"`
	Duration        string    `json:"duration"`
	DurationSeconds float64   `json:"duration_seconds"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func ToEpisodeResponse(m *model.EpisodeModel) EpisodeResponse {
	d := m.Duration()
	return EpisodeResponse{
		ID:              m.ID,
		ProfileID:       m.ProfileID,
		Title:           m.Title,
		Description:     m.Description,
		StartTime:       m.StartTime.UTC(),
		EndTime:         m.EndTime.UTC(),
		EpisodeDate:     dbtime.FormatDate(m.EpisodeDate),
		Severity:        m.Severity,
		Notes:           m.Notes,
		Duration:        d.String(),
		DurationSeconds: d.Seconds(),
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func ToEpisodeResponses(rows []model.EpisodeModel) []EpisodeResponse {
	out := make([]EpisodeResponse, 0, len(rows))
	for i := range rows {
		out = append(out, ToEpisodeResponse(&rows[i]))
	}
	return out
}
