package dto

import (
	"strings"
	"time"

	"autismcare_backend/internals/features/care/behaviors/model"
)

type BehaviorRequest struct {
	ProfileID    uint   `json:"profile_id" validate:"required,gt=0"`
	EpisodeID    *uint  `json:"episode_id" validate:"omitempty,gt=0"`
	BehaviorType string `json:"behavior_type" validate:"required,max=100"`
	Description  string `json:"description"`
	// pointer so an explicit 0 passes "required"
	Frequency *int   `json:"frequency" validate:"required,gte=0"`
	Context   string `json:"context"`
}

func (r *BehaviorRequest) ToModel() *model.BehaviorModel {
	m := &model.BehaviorModel{}
	r.ApplyTo(m)
	return m
}

func (r *BehaviorRequest) ApplyTo(m *model.BehaviorModel) {
	m.ProfileID = r.ProfileID
	m.EpisodeID = r.EpisodeID
	m.BehaviorType = strings.TrimSpace(r.BehaviorType)
	m.Description = r.Description
	m.Frequency = *r.Frequency
	m.Context = r.Context
}

type BehaviorResponse struct {
	ID           uint      `json:"id"`
	ProfileID    uint      `json:"profile_id"`
	EpisodeID    *uint     `json:"episode_id"`
	BehaviorType string    `json:"behavior_type"`
	Description  string    `json:"description"`
	Frequency    int       `json:"frequency"`
	Context      string    `json:"context"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func ToBehaviorResponse(m *model.BehaviorModel) BehaviorResponse {
	return BehaviorResponse{
		ID:           m.ID,
		ProfileID:    m.ProfileID,
		EpisodeID:    m.EpisodeID,
		BehaviorType: m.BehaviorType,
		Description:  m.Description,
		Frequency:    m.Frequency,
		Context:      m.Context,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func ToBehaviorResponses(rows []model.BehaviorModel) []BehaviorResponse {
	out := make([]BehaviorResponse, 0, len(rows))
	for i := range rows {
		out = append(out, ToBehaviorResponse(&rows[i]))
	}
	return out
}
