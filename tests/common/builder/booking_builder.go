//go:build unit || e2e

package builder

import (
	"time"

	"stablebook/internal/domain/booking"
	reqdto "stablebook/internal/handler/dto/request"
	"stablebook/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	Service      string
	Day          time.Time
	SlotTime     string
	GroupSize    int32
	ContactName  string
	ContactPhone string
	ContactEmail string
	Experience   string
	HorseIDs     []uuid.UUID
	AccountID    *uuid.UUID
	Notes        string
	Now          time.Time
}

func NewBookingBuilder() *BookingBuilder {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	return &BookingBuilder{
		Service:      "LESSON",
		Day:          time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		SlotTime:     "10:00",
		GroupSize:    2,
		ContactName:  "Test Rider",
		ContactPhone: "555-0100",
		ContactEmail: "rider@example.com",
		Experience:   "BEGINNER",
		Now:          now,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	service, err := booking.NewServiceType(b.Service)
	if err != nil {
		return nil, err
	}

	slot, err := booking.NewSlotTime(b.SlotTime)
	if err != nil {
		return nil, err
	}

	size, err := booking.NewGroupSize(b.GroupSize)
	if err != nil {
		return nil, err
	}

	contact, err := booking.NewContact(b.ContactName, b.ContactPhone, b.ContactEmail)
	if err != nil {
		return nil, err
	}

	experience, err := booking.NewExperienceLevel(b.Experience)
	if err != nil {
		return nil, err
	}

	return booking.NewBooking(service, b.Day, slot, size, contact, experience, b.HorseIDs, b.AccountID, b.Notes, b.Now)
}

func (b *BookingBuilder) BuildDTO() reqdto.SubmitBookingRequest {
	return reqdto.SubmitBookingRequest{
		Service:      b.Service,
		Day:          b.Day,
		SlotTime:     b.SlotTime,
		GroupSize:    b.GroupSize,
		ContactName:  b.ContactName,
		ContactPhone: b.ContactPhone,
		ContactEmail: b.ContactEmail,
		Experience:   b.Experience,
		HorseIDs:     b.HorseIDs,
		Notes:        b.Notes,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	now := time.Now()
	return &queries.BookingView{
		ID:           uuid.New(),
		Service:      b.Service,
		Day:          b.Day,
		SlotTime:     b.SlotTime,
		GroupSize:    b.GroupSize,
		ContactName:  b.ContactName,
		ContactPhone: b.ContactPhone,
		ContactEmail: b.ContactEmail,
		Experience:   b.Experience,
		Status:       "PENDING",
		AccountID:    b.AccountID,
		Notes:        b.Notes,
		Horses:       []*queries.BookingHorseView{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func (b *BookingBuilder) WithService(service string) *BookingBuilder {
	b.Service = service
	return b
}

func (b *BookingBuilder) WithSlotTime(slot string) *BookingBuilder {
	b.SlotTime = slot
	return b
}

func (b *BookingBuilder) WithGroupSize(size int32) *BookingBuilder {
	b.GroupSize = size
	return b
}

func (b *BookingBuilder) WithDay(day time.Time) *BookingBuilder {
	b.Day = day
	return b
}

func (b *BookingBuilder) WithHorseIDs(ids ...uuid.UUID) *BookingBuilder {
	b.HorseIDs = ids
	return b
}

func (b *BookingBuilder) WithAccountID(id uuid.UUID) *BookingBuilder {
	b.AccountID = &id
	return b
}
