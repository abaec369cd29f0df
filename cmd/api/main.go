package main

import (
	"context"
	"expvar"
	"log"
	"os"
	"runtime"

	"github.com/govseva/govseva/internal/adapter/chat"
	"github.com/govseva/govseva/internal/adapter/speech"
	"github.com/govseva/govseva/internal/adapter/translate"
	"github.com/govseva/govseva/internal/infrastructure/configs"
	"github.com/govseva/govseva/internal/infrastructure/llm"
	"github.com/govseva/govseva/internal/infrastructure/persistence"
	"github.com/govseva/govseva/internal/infrastructure/repository"
	"github.com/govseva/govseva/internal/infrastructure/tracing"
	"github.com/govseva/govseva/internal/presentation/api"
	applicationsHandler "github.com/govseva/govseva/internal/presentation/handler/applications"
	chatHandler "github.com/govseva/govseva/internal/presentation/handler/chat"
	complaintsHandler "github.com/govseva/govseva/internal/presentation/handler/complaints"
	healthHandler "github.com/govseva/govseva/internal/presentation/handler/health"
	servicesHandler "github.com/govseva/govseva/internal/presentation/handler/services"
	translationHandler "github.com/govseva/govseva/internal/presentation/handler/translation"
	voiceHandler "github.com/govseva/govseva/internal/presentation/handler/voice"
	"go.uber.org/zap"
)

func main() {
	logger := zap.Must(zap.NewProduction()).Sugar()
	defer logger.Sync()

	shutdownTracer, err := tracing.InitTracer(tracing.NewDefaultConfig("govseva-api"))
	if err != nil {
		logger.Warnw("tracing disabled", "error", err)
	} else {
		defer shutdownTracer(context.Background())
	}

	configPath := configs.DetermineConfigPath()
	cfg, err := configs.Load(configPath)
	if err != nil {
		log.Fatal(err)
	}

	db, err := persistence.Open(cfg.Store.Path)
	if err != nil {
		logger.Fatalw("failed to open store", "path", cfg.Store.Path, "error", err)
	}

	for _, dir := range []string{cfg.Store.UploadDir, cfg.Store.TTSDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			logger.Fatalw("failed to create directory", "dir", dir, "error", err)
		}
	}

	chatRepository := repository.NewChatRepository(db)
	complaintRepository := repository.NewComplaintRepository(db)
	applicationRepository := repository.NewApplicationRepository(db)
	serviceRepository := repository.NewServiceRepository(db)

	var completer translate.Completer
	if cfg.Translate.APIKey != "" {
		client, err := llm.New(llm.Config{
			BaseURL: cfg.Translate.BaseURL,
			APIKey:  cfg.Translate.APIKey,
			Model:   cfg.Translate.Model,
			Timeout: cfg.Translate.Timeout,
		})
		if err != nil {
			logger.Fatalw("failed to build translation client", "error", err)
		}
		completer = client
	}
	translator := translate.New(completer, logger)

	assistant := chat.New(chat.Config{
		BaseURL: cfg.Chat.BaseURL,
		APIKey:  cfg.Chat.APIKey,
		Model:   cfg.Chat.Model,
		Timeout: cfg.Chat.Timeout,
	}, logger)

	engine := speech.New(speech.Config{
		APIKey:        cfg.Speech.APIKey,
		RecognizeURL:  cfg.Speech.RecognizeURL,
		SynthesizeURL: cfg.Speech.SynthesizeURL,
		Timeout:       cfg.Speech.Timeout,
	}, logger)

	logger.Infow("store ready", "path", cfg.Store.Path)
	logger.Infow("adapters configured",
		"assistant", assistant.Configured(),
		"translator", translator.Configured(),
	)

	app := api.NewApplication(
		*cfg,
		chatHandler.NewHandler(assistant, translator, chatRepository, logger),
		translationHandler.NewHandler(translator),
		complaintsHandler.NewHandler(complaintRepository, logger),
		applicationsHandler.NewHandler(applicationRepository, serviceRepository, logger),
		servicesHandler.NewHandler(serviceRepository),
		voiceHandler.NewHandler(engine, cfg.Store.UploadDir, cfg.Store.TTSDir, logger),
		healthHandler.NewHandler(),
		logger,
	)

	expvar.Publish("goroutines", expvar.Func(func() any {
		return runtime.NumGoroutine()
	}))

	mux := app.Mount()
	logger.Fatal(app.Run(mux))
}
