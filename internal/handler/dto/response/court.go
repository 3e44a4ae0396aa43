package response

import (
	"time"

	"courtbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type CourtResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	OpenHour  int       `json:"openHour"`
	CloseHour int       `json:"closeHour"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

func FromCourtView(view *queries.CourtView) *CourtResponse {
	return &CourtResponse{
		ID:        view.ID,
		Name:      view.Name,
		OpenHour:  view.OpenHour,
		CloseHour: view.CloseHour,
		IsActive:  view.IsActive,
		CreatedAt: view.CreatedAt,
	}
}
