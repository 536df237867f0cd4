package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	handlers "github.com/de-tools/aws-billing/pkg/handlers/billing"
	awsbillingmiddleware "github.com/de-tools/aws-billing/pkg/server/middleware"
	"github.com/de-tools/aws-billing/pkg/services/billing"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

type WebAPI struct {
	router *chi.Mux
	logger *zerolog.Logger
	server *http.Server
}

type Dependencies struct {
	Explorer   billing.Explorer
	DateFormat string
}

type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
	Dependencies    Dependencies
}

func NewWebAPI(logger zerolog.Logger, config Config) *WebAPI {
	billingHandler := handlers.NewHandler(config.Dependencies.Explorer, config.Dependencies.DateFormat)

	router := chi.NewRouter()

	router.Use(awsbillingmiddleware.Logger(&logger))
	router.Use(middleware.Recoverer)

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/costs", billingHandler.GetCosts)
		r.Get("/costs/services", billingHandler.GetCostsByService)
		r.Get("/costs/accounts", billingHandler.GetCostsByAccount)
		r.Get("/costs/regions", billingHandler.GetCostsByRegion)
		r.Get("/costs/resources", billingHandler.GetCostsByResource)
		r.Get("/costs/tags/{key}", billingHandler.GetCostsByTag)
		r.Get("/forecast", billingHandler.GetForecast)
		r.Get("/summary", billingHandler.GetSummary)
	})

	return &WebAPI{
		router: router,
		logger: &logger,
		server: &http.Server{
			Addr:    config.Addr,
			Handler: router,
		},
	}
}

func (w *WebAPI) Start() error {
	serverErrors := make(chan error, 1)
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	go func() {
		w.logger.Info().Str("addr", w.server.Addr).Msg("starting server")
		serverErrors <- w.server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-shutdown:
		w.logger.Info().Msg("shutdown initiated")

		// Give outstanding requests a deadline for completion.
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		err := w.server.Shutdown(ctx)
		if err != nil {
			w.logger.Error().Err(err).Msg("graceful shutdown failed")
			err = w.server.Close()
		}

		if err != nil {
			return err
		}
	}

	return nil
}
