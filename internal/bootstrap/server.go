package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/avdeevra/equiprent/api"
	"github.com/avdeevra/equiprent/config"
	"github.com/avdeevra/equiprent/internal/service/auth"
	"github.com/avdeevra/equiprent/internal/service/booking"
	"github.com/avdeevra/equiprent/internal/service/equipment"
	"github.com/avdeevra/equiprent/internal/service/users"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Services struct {
	Auth      auth.AuthUseCase
	Equipment equipment.EquipmentUseCase
	Booking   booking.BookingUseCase
	Users     users.UserUseCase
}

// Run starts the HTTP server and blocks until the context is canceled or
// the server fails.
func Run(ctx context.Context, cfg *config.Config, logger *zap.Logger, svcs Services) error {
	httpServer := &http.Server{
		Addr:    cfg.HTTP.Address,
		Handler: NewRouter(cfg, svcs),
	}

	errCh := make(chan error, 1)
	go func() { errCh <- httpServer.ListenAndServe() }()
	logger.Info("http server started", zap.String("address", cfg.HTTP.Address))

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}

func NewRouter(cfg *config.Config, svcs Services) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()

	authMW := api.JWTAuth(cfg.Auth.JWTSecret)

	root := router.Group("/api")

	api.NewAuthHandler(svcs.Auth).Register(root.Group("/auth"))

	equipmentHandler := api.NewEquipmentHandler(svcs.Equipment)
	equipmentHandler.Register(root.Group("/equipment"))
	equipmentHandler.RegisterAdmin(root.Group("/equipment", authMW, api.AdminOnly()))

	api.NewBookingHandler(svcs.Booking).Register(root.Group("/booking", authMW))
	api.NewUserHandler(svcs.Users).Register(root.Group("/users", authMW))

	return router
}
