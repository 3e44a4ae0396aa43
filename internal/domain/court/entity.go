package court

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName             = errors.New("court name cannot be empty")
	ErrInvalidOperatingHours = errors.New("invalid operating hours")
	ErrInactive              = errors.New("court is inactive")
)

// OperatingHours is the displayed open window, [Open, Close) in whole hours.
type OperatingHours struct {
	Open  int
	Close int
}

func NewOperatingHours(open, close int) (OperatingHours, error) {
	if open < 0 || close > 24 || open >= close {
		return OperatingHours{}, ErrInvalidOperatingHours
	}
	return OperatingHours{Open: open, Close: close}, nil
}

func (h OperatingHours) Contains(hour int) bool {
	return hour >= h.Open && hour < h.Close
}

type Court struct {
	id        uuid.UUID
	name      string
	hours     OperatingHours
	isActive  bool
	createdAt time.Time
	updatedAt time.Time
}

func NewCourt(name string, hours OperatingHours) (*Court, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	return &Court{
		id:       uuid.New(),
		name:     name,
		hours:    hours,
		isActive: true,
	}, nil
}

func ReconstructCourt(id uuid.UUID, name string, hours OperatingHours, isActive bool, createdAt, updatedAt time.Time) *Court {
	return &Court{
		id:        id,
		name:      name,
		hours:     hours,
		isActive:  isActive,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (c *Court) ID() uuid.UUID         { return c.id }
func (c *Court) Name() string          { return c.name }
func (c *Court) Hours() OperatingHours { return c.hours }
func (c *Court) IsActive() bool        { return c.isActive }
func (c *Court) CreatedAt() time.Time  { return c.createdAt }
func (c *Court) UpdatedAt() time.Time  { return c.updatedAt }
