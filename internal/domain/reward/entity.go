package reward

import (
	"time"

	"stablebook/internal/domain/booking"
	"stablebook/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidType             = errs.New("invalid reward type")
	ErrInvalidPointCost        = errs.New("point cost must be positive")
	ErrInvalidDiscountPercent  = errs.New("discount percent must be in (0,100]")
	ErrMissingDiscountPercent  = errs.New("discount percent required for DISCOUNT rewards")
	ErrMissingFreeService      = errs.New("free service required for FREE_SERVICE rewards")
	ErrFieldsMutuallyExclusive = errs.New("discount percent and free service are mutually exclusive")
	ErrInvalidStock            = errs.New("stock cannot be negative")
)

type Type string

const (
	TypeDiscount    Type = "DISCOUNT"
	TypeFreeService Type = "FREE_SERVICE"
)

func NewType(value string) (Type, error) {
	switch Type(value) {
	case TypeDiscount, TypeFreeService:
		return Type(value), nil
	default:
		return "", ErrInvalidType
	}
}

func (t Type) String() string {
	return string(t)
}

// Reward is a catalog entry redeemable for points. Stock nil means
// unlimited.
type Reward struct {
	id              uuid.UUID
	title           string
	description     string
	rewardType      Type
	pointCost       int64
	discountPercent *int32
	freeService     *booking.ServiceType
	stock           *int32
	active          bool
	createdAt       time.Time
	updatedAt       time.Time
}

func NewReward(
	title, description string,
	rewardType Type,
	pointCost int64,
	discountPercent *int32,
	freeService *booking.ServiceType,
	stock *int32,
	active bool,
) (*Reward, error) {
	if pointCost <= 0 {
		return nil, ErrInvalidPointCost
	}
	if stock != nil && *stock < 0 {
		return nil, ErrInvalidStock
	}

	switch rewardType {
	case TypeDiscount:
		if freeService != nil {
			return nil, ErrFieldsMutuallyExclusive
		}
		if discountPercent == nil {
			return nil, ErrMissingDiscountPercent
		}
		if *discountPercent <= 0 || *discountPercent > 100 {
			return nil, ErrInvalidDiscountPercent
		}
	case TypeFreeService:
		if discountPercent != nil {
			return nil, ErrFieldsMutuallyExclusive
		}
		if freeService == nil {
			return nil, ErrMissingFreeService
		}
	default:
		return nil, ErrInvalidType
	}

	return &Reward{
		id:              uuid.New(),
		title:           title,
		description:     description,
		rewardType:      rewardType,
		pointCost:       pointCost,
		discountPercent: discountPercent,
		freeService:     freeService,
		stock:           stock,
		active:          active,
	}, nil
}

func ReconstructReward(
	id uuid.UUID,
	title, description string,
	rewardType Type,
	pointCost int64,
	discountPercent *int32,
	freeService *booking.ServiceType,
	stock *int32,
	active bool,
	createdAt, updatedAt time.Time,
) *Reward {
	return &Reward{
		id:              id,
		title:           title,
		description:     description,
		rewardType:      rewardType,
		pointCost:       pointCost,
		discountPercent: discountPercent,
		freeService:     freeService,
		stock:           stock,
		active:          active,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

func (r *Reward) ID() uuid.UUID                     { return r.id }
func (r *Reward) Title() string                     { return r.title }
func (r *Reward) Description() string               { return r.description }
func (r *Reward) RewardType() Type                  { return r.rewardType }
func (r *Reward) PointCost() int64                  { return r.pointCost }
func (r *Reward) DiscountPercent() *int32           { return r.discountPercent }
func (r *Reward) FreeService() *booking.ServiceType { return r.freeService }
func (r *Reward) Stock() *int32                     { return r.stock }
func (r *Reward) Active() bool                      { return r.active }
func (r *Reward) CreatedAt() time.Time              { return r.createdAt }
func (r *Reward) UpdatedAt() time.Time              { return r.updatedAt }

// InStock reports whether at least one redemption remains. Untracked
// stock is always in stock.
func (r *Reward) InStock() bool {
	return r.stock == nil || *r.stock > 0
}
