package response

import (
	"courtbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type SlotResponse struct {
	Hour      int   `json:"hour"`
	Available bool  `json:"available"`
	Rate      int64 `json:"rate"`
}

type AvailabilityResponse struct {
	CourtID uuid.UUID      `json:"courtId"`
	Date    string         `json:"date"`
	Slots   []SlotResponse `json:"slots"`
}

func FromAvailabilityView(view *queries.AvailabilityView) *AvailabilityResponse {
	slots := make([]SlotResponse, len(view.Slots))
	for i, s := range view.Slots {
		slots[i] = SlotResponse{Hour: s.Hour, Available: s.Available, Rate: s.Rate}
	}
	return &AvailabilityResponse{
		CourtID: view.CourtID,
		Date:    view.Date.Format("2006-01-02"),
		Slots:   slots,
	}
}
