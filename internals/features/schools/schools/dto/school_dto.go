package dto

import (
	"strings"
	"time"

	"autismcare_backend/internals/features/schools/schools/model"
)

type SchoolRequest struct {
	Name     string `json:"name" validate:"required,max=200"`
	Address  string `json:"address"`
	Phone    string `json:"phone" validate:"omitempty,max=30"`
	Email    string `json:"email" validate:"omitempty,email,max=254"`
	Capacity *int   `json:"capacity" validate:"omitempty,gte=0"`
	Ratio    string `json:"ratio" validate:"omitempty,max=20,ratio"`
}

func (r *SchoolRequest) ToModel() *model.SchoolModel {
	m := &model.SchoolModel{}
	r.ApplyTo(m)
	return m
}

// ApplyTo replaces every writable column; an omitted capacity becomes 0.
func (r *SchoolRequest) ApplyTo(m *model.SchoolModel) {
	m.Name = strings.TrimSpace(r.Name)
	m.Address = r.Address
	m.Phone = strings.TrimSpace(r.Phone)
	m.Email = strings.ToLower(strings.TrimSpace(r.Email))
	m.Capacity = 0
	if r.Capacity != nil {
		m.Capacity = *r.Capacity
	}
	m.Ratio = strings.ReplaceAll(r.Ratio, " ", "")
}

type SchoolResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	Capacity  int       `json:"capacity"`
	Ratio     string    `json:"ratio"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ToSchoolResponse(m *model.SchoolModel) SchoolResponse {
	return SchoolResponse{
		ID:        m.ID,
		Name:      m.Name,
		Address:   m.Address,
		Phone:     m.Phone,
		Email:     m.Email,
		Capacity:  m.Capacity,
		Ratio:     m.Ratio,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func ToSchoolResponses(rows []model.SchoolModel) []SchoolResponse {
	out := make([]SchoolResponse, 0, len(rows))
	for i := range rows {
		out = append(out, ToSchoolResponse(&rows[i]))
	}
	return out
}
