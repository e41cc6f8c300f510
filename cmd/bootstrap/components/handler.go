package components

import (
	"stablebook/internal/handler"
	"stablebook/internal/handler/api"
	"stablebook/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewAccountHandler,
		api.NewBookingHandler,
		api.NewCalendarHandler,
		api.NewLoyaltyHandler,
		api.NewRewardHandler,
		api.NewHorseHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	auth *api.AuthHandler,
	account *api.AccountHandler,
	booking *api.BookingHandler,
	calendar *api.CalendarHandler,
	loyalty *api.LoyaltyHandler,
	reward *api.RewardHandler,
	horse *api.HorseHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:     auth,
		Account:  account,
		Booking:  booking,
		Calendar: calendar,
		Loyalty:  loyalty,
		Reward:   reward,
		Horse:    horse,
	}
}
