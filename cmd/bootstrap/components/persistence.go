package components

import (
	"stablebook/internal/infra/cache"
	"stablebook/internal/infra/db"
	"stablebook/internal/infra/readstore"
	"stablebook/internal/infra/uow"
	"stablebook/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		uow.NewPostgresUoW,
		// Account
		fx.Annotate(
			readstore.NewAccountReadStore,
			fx.As(new(queries.AccountReadStore)),
		),
		// Calendar
		fx.Annotate(
			readstore.NewCalendarReadStore,
			fx.As(new(queries.CalendarReadStore)),
		),
		// Booking
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		// Reward
		fx.Annotate(
			readstore.NewRewardReadStore,
			fx.As(new(queries.RewardReadStore)),
		),
		// Horse
		fx.Annotate(
			readstore.NewHorseReadStore,
			fx.As(new(queries.HorseReadStore)),
		),
		// Availability cache
		fx.Annotate(
			cache.NewAvailabilityCache,
			fx.As(new(queries.AvailabilityCache)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
