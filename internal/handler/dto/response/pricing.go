package response

import (
	"courtbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type RuleResponse struct {
	ID        uuid.UUID `json:"id"`
	CourtID   uuid.UUID `json:"courtId"`
	StartDay  int       `json:"startDay"`
	EndDay    int       `json:"endDay"`
	StartHour int       `json:"startHour"`
	EndHour   int       `json:"endHour"`
	Rate      int64     `json:"rate"`
}

func FromRuleView(rm *queries.RuleView) *RuleResponse {
	return &RuleResponse{
		ID:        rm.ID,
		CourtID:   rm.CourtID,
		StartDay:  rm.StartDay,
		EndDay:    rm.EndDay,
		StartHour: rm.StartHour,
		EndHour:   rm.EndHour,
		Rate:      rm.Rate,
	}
}
