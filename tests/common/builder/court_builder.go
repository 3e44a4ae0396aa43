package builder

import (
	"courtbook/internal/domain/court"
)

type CourtBuilder struct {
	name  string
	open  int
	close int
}

func NewCourtBuilder() *CourtBuilder {
	return &CourtBuilder{
		name:  "Court 1",
		open:  8,
		close: 22,
	}
}

func (b *CourtBuilder) WithName(name string) *CourtBuilder {
	b.name = name
	return b
}

func (b *CourtBuilder) WithHours(open, close int) *CourtBuilder {
	b.open = open
	b.close = close
	return b
}

func (b *CourtBuilder) BuildDomain() (*court.Court, error) {
	hours, err := court.NewOperatingHours(b.open, b.close)
	if err != nil {
		return nil, err
	}
	return court.NewCourt(b.name, hours)
}
