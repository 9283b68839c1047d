package fx

import (
	"time"

	"Carteira/internal/domain/investment"
	"Carteira/internal/middleware"
	"Carteira/internal/routes"

	"go.uber.org/fx"
)

// RoutesModule fornece handlers e rate limiters
var RoutesModule = fx.Module("routes",
	fx.Provide(
		newHandler,
		newRateLimiter,
	),
)

func newHandler(investmentSvc *investment.Service) *routes.Handler {
	return &routes.Handler{
		InvestmentService: *investmentSvc,
	}
}

func newRateLimiter() *middleware.RateLimiter {
	return middleware.NewRateLimiter(100, time.Minute)
}
