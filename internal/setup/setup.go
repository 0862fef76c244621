package setup

import (
	"github.com/rideon-dev/rideon/internal/config"
	"github.com/rideon-dev/rideon/internal/handler"
	"github.com/rideon-dev/rideon/internal/jwt"
	"github.com/rideon-dev/rideon/internal/middleware"
	"github.com/rideon-dev/rideon/internal/password"
	"github.com/rideon-dev/rideon/internal/service"
	"github.com/rideon-dev/rideon/internal/storage/pg"
)

// Dependencies struct to hold all initialized dependencies.
type Dependencies struct {
	Config         *config.Config
	Storage        *pg.Storage
	Handler        *handler.Handler
	AuthMiddleware *middleware.Auth
	Sweeper        *service.BlacklistSweeper
}

// SetupDependencies initializes all dependencies required for the application.
func SetupDependencies(cfg *config.Config) (*Dependencies, error) {
	storage, err := pg.New(cfg)
	if err != nil {
		return nil, err
	}

	jwtService := jwt.New(cfg.JwtKey(), cfg.JwtTTL())
	hasher := password.New(cfg.Public.BcryptCost)
	revoker := service.NewRevoker(jwtService, storage)

	users := service.NewUser(storage, hasher, jwtService, revoker)
	captains := service.NewCaptain(storage, hasher, jwtService, revoker)

	h := handler.New(users, captains, cfg, storage)
	authMw := middleware.NewAuth(jwtService, storage, storage, storage, cfg.Public.SecureCookies)
	sweeper := service.NewBlacklistSweeper(storage)

	return &Dependencies{
		Config:         cfg,
		Storage:        storage,
		Handler:        h,
		AuthMiddleware: authMw,
		Sweeper:        sweeper,
	}, nil
}
