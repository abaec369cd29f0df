package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/govseva/govseva/internal/infrastructure/configs"
	applicationsHandler "github.com/govseva/govseva/internal/presentation/handler/applications"
	chatHandler "github.com/govseva/govseva/internal/presentation/handler/chat"
	complaintsHandler "github.com/govseva/govseva/internal/presentation/handler/complaints"
	healthHandler "github.com/govseva/govseva/internal/presentation/handler/health"
	servicesHandler "github.com/govseva/govseva/internal/presentation/handler/services"
	translationHandler "github.com/govseva/govseva/internal/presentation/handler/translation"
	voiceHandler "github.com/govseva/govseva/internal/presentation/handler/voice"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
)

type Application struct {
	config       configs.Config
	chat         *chatHandler.Handler
	translation  *translationHandler.Handler
	complaints   *complaintsHandler.Handler
	applications *applicationsHandler.Handler
	services     *servicesHandler.Handler
	voice        *voiceHandler.Handler
	health       *healthHandler.Handler
	logger       *zap.SugaredLogger
}

func NewApplication(
	config configs.Config,
	chat *chatHandler.Handler,
	translation *translationHandler.Handler,
	complaints *complaintsHandler.Handler,
	applications *applicationsHandler.Handler,
	services *servicesHandler.Handler,
	voice *voiceHandler.Handler,
	health *healthHandler.Handler,
	logger *zap.SugaredLogger,
) *Application {
	return &Application{
		config:       config,
		chat:         chat,
		translation:  translation,
		complaints:   complaints,
		applications: applications,
		services:     services,
		voice:        voice,
		health:       health,
		logger:       logger,
	}
}

func (app *Application) Mount() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Use(app.enableCors)

	r.Get("/", app.rootHandler)

	r.Route("/api", func(r chi.Router) {
		r.Post("/chat", app.chat.ChatHandler)
		r.Get("/history", app.chat.HistoryHandler)
		r.Post("/translate", app.translation.TranslateHandler)

		r.Route("/complaints", func(r chi.Router) {
			r.Post("/", app.complaints.CreateComplaintHandler)
			r.Get("/", app.complaints.ListComplaintsHandler)
			r.Get("/{id}", app.complaints.GetComplaintHandler)
			r.Patch("/{id}", app.complaints.UpdateComplaintHandler)
		})

		r.Route("/applications", func(r chi.Router) {
			r.Post("/", app.applications.CreateApplicationHandler)
			r.Get("/", app.applications.ListApplicationsHandler)
			r.Get("/{id}", app.applications.GetApplicationHandler)
			r.Patch("/{id}", app.applications.UpdateApplicationHandler)
		})

		r.Post("/apply", app.applications.ApplyHandler)
		r.Get("/services", app.services.ListServicesHandler)
		r.Get("/saved_files", app.applications.SavedFilesHandler)
		r.Get("/download/{id}", app.applications.DownloadHandler)

		r.Post("/voice-to-text", app.voice.VoiceToTextHandler)
		r.Post("/text-to-speech", app.voice.TextToSpeechHandler)

		r.Get("/health", app.health.GetHealth)
	})

	// Generated speech clips are served back outside the /api envelope.
	r.Get("/tts/{filename}", app.voice.ServeAudioHandler)

	return r
}

func (app *Application) rootHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintln(w, "Citizen services backend running. API is mounted under /api.")
}

func (app *Application) Run(mux http.Handler) error {
	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", app.config.HTTP.Host, app.config.HTTP.Port),
		Handler:      otelhttp.NewHandler(mux, "govseva-api"),
		WriteTimeout: app.config.HTTP.WriteTimeout,
		ReadTimeout:  app.config.HTTP.ReadTimeout,
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

	app.logger.Infow("server has started", "addr", srv.Addr)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdown
	if err != nil {
		return err
	}

	app.logger.Infow("server has stopped", "addr", srv.Addr)

	return nil
}
