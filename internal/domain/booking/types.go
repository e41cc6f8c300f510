package booking

import "stablebook/internal/pkg/errs"

var (
	ErrInvalidStatus     = errs.New("invalid booking status")
	ErrInvalidService    = errs.New("invalid service type")
	ErrInvalidExperience = errs.New("invalid experience level")
)

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusConfirmed Status = "CONFIRMED"
	StatusCompleted Status = "COMPLETED"
	StatusCancelled Status = "CANCELLED"
)

func NewStatus(value string) (Status, error) {
	switch Status(value) {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return Status(value), nil
	default:
		return "", ErrInvalidStatus
	}
}

func (s Status) String() string {
	return string(s)
}

// CanTransitionTo encodes PENDING → CONFIRMED → COMPLETED with
// cancellation allowed from PENDING or CONFIRMED. COMPLETED and
// CANCELLED are terminal.
func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case StatusPending:
		return next == StatusConfirmed || next == StatusCompleted || next == StatusCancelled
	case StatusConfirmed:
		return next == StatusCompleted || next == StatusCancelled
	default:
		return false
	}
}

type ServiceType string

const (
	ServiceLesson  ServiceType = "LESSON"
	ServiceSafari  ServiceType = "SAFARI"
	ServicePrivate ServiceType = "PRIVATE_SESSION"
	ServiceEvent   ServiceType = "EVENT"
)

func NewServiceType(value string) (ServiceType, error) {
	switch ServiceType(value) {
	case ServiceLesson, ServiceSafari, ServicePrivate, ServiceEvent:
		return ServiceType(value), nil
	default:
		return "", ErrInvalidService
	}
}

func (s ServiceType) String() string {
	return string(s)
}

type ExperienceLevel string

const (
	ExperienceBeginner     ExperienceLevel = "BEGINNER"
	ExperienceIntermediate ExperienceLevel = "INTERMEDIATE"
	ExperienceAdvanced     ExperienceLevel = "ADVANCED"
)

func NewExperienceLevel(value string) (ExperienceLevel, error) {
	switch ExperienceLevel(value) {
	case ExperienceBeginner, ExperienceIntermediate, ExperienceAdvanced:
		return ExperienceLevel(value), nil
	default:
		return "", ErrInvalidExperience
	}
}

func (e ExperienceLevel) String() string {
	return string(e)
}
