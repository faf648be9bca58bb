package app

import (
	"context"
	"fmt"
	"net/http"

	"fanation-admin/app/controller"
	"fanation-admin/app/router"
	"fanation-admin/client"
	"fanation-admin/config"
	"fanation-admin/service"
	"fanation-admin/state"
	"fanation-admin/store"

	"go.uber.org/zap"
)

// Initialize wires the application and returns the HTTP handler plus a
// cleanup function for shutdown.
func Initialize(cfg *config.Config, logger *zap.Logger) (http.Handler, func(), error) {
	// Open the durable session store (bearer token only)
	sessionStore, err := store.Open(cfg.Storage.Dir, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open session store: %w", err)
	}

	// Initialize remote API client
	api := client.New(cfg.API.BaseURL, cfg.API.Timeout, sessionStore, logger)

	// Initialize services
	sessions := service.NewSessionService(api, sessionStore, logger)
	composer := service.NewComposerService(api, cfg.API.ImageTimeout, logger)
	export := service.NewExportService(api, cfg.Export.BaseURL, cfg.Export.ChromePath, logger)

	// Any 401 from the remote API tears the session down globally.
	api.OnUnauthorized(sessions.ForceTeardown)

	// Validate the stored token before the guard takes decisions.
	go sessions.InitValidate(context.Background())

	// Per-view state containers
	pieceList := state.NewPieceListState(api, logger)
	userList := state.NewUserListState(api, logger)
	composition := state.NewComposition(api, composer, logger)

	// Create controllers
	controllers := &router.Controllers{
		Auth:        controller.NewAuthController(sessions),
		Piece:       controller.NewPieceController(api, pieceList),
		User:        controller.NewUserController(api, userList),
		Composition: controller.NewCompositionController(composition),
		Export:      controller.NewExportController(api, export),
	}

	handler := router.New(controllers, sessions, logger)

	cleanup := func() {
		if err := sessionStore.Close(); err != nil {
			logger.Error("failed to close session store", zap.Error(err))
		}
	}

	return handler, cleanup, nil
}
