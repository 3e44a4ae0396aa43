package readstore

import (
	"context"

	"courtbook/internal/infra/db"
	"courtbook/internal/infra/uow"
	"courtbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type PricingReadStore struct {
	uow uow.UnitOfWork
}

func NewPricingReadStore(unitOfWork uow.UnitOfWork) *PricingReadStore {
	return &PricingReadStore{uow: unitOfWork}
}

func (s *PricingReadStore) ListByCourt(ctx context.Context, courtID uuid.UUID) ([]*queries.RuleView, error) {
	var views []*queries.RuleView

	err := s.uow.WithinReadOnly(ctx, func(ctx context.Context, tx db.DBTX) error {
		rules, err := listRules(ctx, tx, courtID)
		if err != nil {
			return err
		}
		views = make([]*queries.RuleView, 0, len(rules))
		for _, r := range rules {
			views = append(views, &queries.RuleView{
				ID:        r.ID(),
				CourtID:   r.CourtID(),
				StartDay:  int(r.StartDay()),
				EndDay:    int(r.EndDay()),
				StartHour: r.StartHour(),
				EndHour:   r.EndHour(),
				Rate:      r.Rate(),
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return views, nil
}
