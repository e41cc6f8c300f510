package horse

import (
	"strings"
	"time"

	"stablebook/internal/domain/booking"
	"stablebook/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrInvalidName = errs.New("horse name required")

// Horse is a roster entry selectable on a booking. Inactive horses are
// kept for history but rejected by admission.
type Horse struct {
	id        uuid.UUID
	name      string
	breed     string
	minLevel  booking.ExperienceLevel
	active    bool
	createdAt time.Time
	updatedAt time.Time
}

func NewHorse(name, breed string, minLevel booking.ExperienceLevel) (*Horse, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidName
	}
	return &Horse{
		id:       uuid.New(),
		name:     name,
		breed:    strings.TrimSpace(breed),
		minLevel: minLevel,
		active:   true,
	}, nil
}

func ReconstructHorse(id uuid.UUID, name, breed string, minLevel booking.ExperienceLevel, active bool, createdAt, updatedAt time.Time) *Horse {
	return &Horse{
		id:        id,
		name:      name,
		breed:     breed,
		minLevel:  minLevel,
		active:    active,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (h *Horse) Retire() {
	h.active = false
}

func (h *Horse) ID() uuid.UUID                     { return h.id }
func (h *Horse) Name() string                      { return h.name }
func (h *Horse) Breed() string                     { return h.breed }
func (h *Horse) MinLevel() booking.ExperienceLevel { return h.minLevel }
func (h *Horse) Active() bool                      { return h.active }
func (h *Horse) CreatedAt() time.Time              { return h.createdAt }
func (h *Horse) UpdatedAt() time.Time              { return h.updatedAt }
