package main

import (
	"context"
	"errors"
	"expvar"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"reviewapi/docs" //this is required to generate swagger docs
	"reviewapi/internal/domain/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"
)

type pinger interface {
	Ping(ctx context.Context) error
}

type application struct {
	config config
	store  *storage.Container
	logger *zap.SugaredLogger
	pinger pinger
}

func (app *application) mount() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(app.logRequest)
	r.Use(app.collectMetrics)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))

	r.Get("/", app.homeHandler)
	r.Get("/health", app.healthCheckHandler)
	r.Get("/debug/vars", expvar.Handler().ServeHTTP)
	r.Handle("/metrics", promhttp.Handler())

	docsURL := fmt.Sprintf("http://%s/swagger/doc.json", app.config.apiURL)
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(docsURL)))

	r.Route("/api", func(r chi.Router) {
		r.Post("/products", app.createProductHandler)
		r.Get("/products", app.listProductsHandler)
		r.Route("/product/{productID:[0-9]+}", func(r chi.Router) {
			r.Get("/", app.getProductInfoHandler)
			r.Put("/", app.renameProductHandler)
			r.Delete("/", app.deleteProductHandler)
		})

		r.Post("/reviews", app.createReviewHandler)
		r.Get("/reviews/{productID:[0-9]+}", app.getProductReviewsHandler)
		r.Get("/total-reviews", app.totalReviewsHandler)
	})

	return r
}

func (app *application) run(mux http.Handler) error {
	// Docs
	docs.SwaggerInfo.Version = version
	docs.SwaggerInfo.Host = app.config.apiURL
	docs.SwaggerInfo.BasePath = "/"

	srv := &http.Server{
		Addr:         app.config.addr,
		Handler:      mux,
		WriteTimeout: time.Second * 30,
		ReadTimeout:  time.Second * 10,
		IdleTimeout:  time.Minute,
	}

	shutdown := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)

		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		app.logger.Infow("signal caught", "signal", s.String())

		shutdown <- srv.Shutdown(ctx)
	}()

	app.logger.Infow("server has started", "addr", app.config.addr, "env", app.config.env)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdown
	if err != nil {
		return err
	}

	app.logger.Infow("server has stopped", "addr", app.config.addr, "env", app.config.env)

	return nil
}
