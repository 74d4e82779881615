package dto

import (
	"strings"
	"time"

	"autismcare_backend/internals/features/care/triggers/model"
)

type TriggerRequest struct {
	ProfileID          uint   `json:"profile_id" validate:"required,gt=0"`
	EpisodeID          *uint  `json:"episode_id" validate:"omitempty,gt=0"`
	TriggerType        string `json:"trigger_type" validate:"required,max=100"`
	Description        string `json:"description"`
	Severity           string `json:"severity" validate:"required,max=50"`
	ManagementStrategy string `json:"management_strategy"`
}

func (r *TriggerRequest) ToModel() *model.TriggerModel {
	m := &model.TriggerModel{}
	r.ApplyTo(m)
	return m
}

// ApplyTo overwrites every writable column, clearing episode_id when absent.
func (r *TriggerRequest) ApplyTo(m *model.TriggerModel) {
	m.ProfileID = r.ProfileID
	m.EpisodeID = r.EpisodeID
	m.TriggerType = strings.TrimSpace(r.TriggerType)
	m.Description = r.Description
	m.Severity = strings.TrimSpace(r.Severity)
	m.ManagementStrategy = r.ManagementStrategy
}

type TriggerResponse struct {
	ID                 uint      `json:"id"`
	ProfileID          uint      `json:"profile_id"`
	EpisodeID          *uint     `json:"episode_id"`
	TriggerType        string    `json:"trigger_type"`
	Description        string    `json:"description"`
	Severity           string    `json:"severity"`
	ManagementStrategy string    `json:"management_strategy"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func ToTriggerResponse(m *model.TriggerModel) TriggerResponse {
	return TriggerResponse{
		ID:                 m.ID,
		ProfileID:          m.ProfileID,
		EpisodeID:          m.EpisodeID,
		TriggerType:        m.TriggerType,
		Description:        m.Description,
		Severity:           m.Severity,
		ManagementStrategy: m.ManagementStrategy,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}

func ToTriggerResponses(rows []model.TriggerModel) []TriggerResponse {
	out := make([]TriggerResponse, 0, len(rows))
	for i := range rows {
		out = append(out, ToTriggerResponse(&rows[i]))
	}
	return out
}
