package components

import (
	"stagenight/internal/handler"
	"stagenight/internal/handler/api"
	"stagenight/internal/handler/middleware"
	"stagenight/internal/pkg/jwt"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewTicketsHandler,
		func(s *jwt.Service) middleware.TokenValidator { return s },
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
