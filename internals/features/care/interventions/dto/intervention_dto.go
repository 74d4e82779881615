package dto

import (
	"strings"
	"time"

	"autismcare_backend/internals/features/care/interventions/model"
)

// InterventionRequest: profile_id may be omitted and is then taken from the behavior.
type InterventionRequest struct {
	BehaviorID       uint   `json:"behavior_id" validate:"required,gt=0"`
	ProfileID        *uint  `json:"profile_id" validate:"omitempty,gt=0"`
	EpisodeID        *uint  `json:"episode_id" validate:"omitempty,gt=0"`
	InterventionType string `json:"intervention_type" validate:"required,max=100"`
	Description      string `json:"description"`
	Effectiveness    string `json:"effectiveness" validate:"required,max=100"`
}

// ApplyTo writes the request onto m; profileID is the resolved owner.
func (r *InterventionRequest) ApplyTo(m *model.InterventionModel, profileID uint) {
	m.BehaviorID = r.BehaviorID
	m.ProfileID = profileID
	m.EpisodeID = r.EpisodeID
	m.InterventionType = strings.TrimSpace(r.InterventionType)
	m.Description = r.Description
	m.Effectiveness = strings.TrimSpace(r.Effectiveness)
}

type InterventionResponse struct {
	ID               uint      `json:"id"`
	BehaviorID       uint      `json:"behavior_id"`
	ProfileID        uint      `json:"profile_id"`
	EpisodeID        *uint     `json:"episode_id"`
	InterventionType string    `json:"intervention_type"`
	Description      string    `json:"description"`
	Effectiveness    string    `json:"effectiveness"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func ToInterventionResponse(m *model.InterventionModel) InterventionResponse {
	return InterventionResponse{
		ID:               m.ID,
		BehaviorID:       m.BehaviorID,
		ProfileID:        m.ProfileID,
		EpisodeID:        m.EpisodeID,
		InterventionType: m.InterventionType,
		Description:      m.Description,
		Effectiveness:    m.Effectiveness,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

func ToInterventionResponses(rows []model.InterventionModel) []InterventionResponse {
	out := make([]InterventionResponse, 0, len(rows))
	for i := range rows {
		out = append(out, ToInterventionResponse(&rows[i]))
	}
	return out
}
