package main

import (
	"context"
	"fmt"

	"mango-alerts-srv/config"
	configMongo "mango-alerts-srv/config/mongo"
	"mango-alerts-srv/internal/alert"
	alertMongo "mango-alerts-srv/internal/alert/repository/mongo"
	alertUsecase "mango-alerts-srv/internal/alert/usecase"
	announcementMongo "mango-alerts-srv/internal/announcement/repository/mongo"
	announcementUsecase "mango-alerts-srv/internal/announcement/usecase"
	"mango-alerts-srv/internal/httpserver"
	"mango-alerts-srv/internal/model"
	"mango-alerts-srv/internal/notifier"
	"mango-alerts-srv/internal/watcher"
	"mango-alerts-srv/pkg/log"
	"mango-alerts-srv/pkg/mailer"
	"mango-alerts-srv/pkg/mango"
	"mango-alerts-srv/pkg/notifi"
	"mango-alerts-srv/pkg/twilio"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx := context.Background()

	// Initialize MongoDB
	db, err := configMongo.Connect(ctx, cfg.Mongo)
	if err != nil {
		logger.Error(ctx, "Failed to connect to MongoDB: ", err)
		return
	}
	defer configMongo.Disconnect(ctx)
	logger.Infof(ctx, "MongoDB connected, database %s", cfg.Mongo.DBName)

	// Initialize chain client
	chainClient, err := mango.New(logger, mango.Config{
		Cluster:     cfg.Mango.Cluster,
		Group:       cfg.Mango.Group,
		EndpointURL: cfg.Mango.EndpointURL,
		Timeout:     cfg.Mango.Timeout,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize chain client: ", err)
		return
	}

	// Initialize notification providers
	providers := map[model.Provider]notifier.Provider{
		model.ProviderMail: notifier.NewMailProvider(
			mailer.New(logger, mailer.Config{
				Host:     cfg.Mail.SMTPHost,
				Port:     cfg.Mail.SMTPPort,
				Username: cfg.Mail.APIKey,
				Password: cfg.Mail.APISecret,
				From:     cfg.Mail.From(),
			}),
			cfg.Mail.Subject,
		),
	}

	var phones twilio.Client
	if cfg.Twilio.Enabled() {
		phones = twilio.New(logger, twilio.Config{
			AccountSID: cfg.Twilio.AccountSID,
			AuthToken:  cfg.Twilio.AuthToken,
			FromNumber: cfg.Twilio.FromNumber,
		})
		providers[model.ProviderSMS] = notifier.NewSMSProvider(phones)
		logger.Info(ctx, "SMS provider enabled")
	}

	if cfg.Notifi.Enabled() {
		providers[model.ProviderPush] = notifier.NewPushProvider(
			notifi.New(logger, notifi.Config{
				SID:     cfg.Notifi.SID,
				Secret:  cfg.Notifi.Secret,
				BaseURL: cfg.Notifi.BaseURL,
			}),
		)
		logger.Info(ctx, "Push provider enabled")
	}

	dispatcher := notifier.New(logger, providers)

	// Wire usecases
	alertUC := alertUsecase.New(logger, alertUsecase.Config{
		Repository: alertMongo.New(logger, db),
		Chain:      chainClient,
		Dispatcher: dispatcher,
		Phones:     phones,
		Policy:     alert.TriggerPolicy(cfg.Watcher.TriggerPolicy),
	})
	annUC := announcementUsecase.New(logger, announcementMongo.New(logger, db), cfg.Updates.Password)

	// Background watcher
	w := watcher.New(logger, watcher.Config{
		AlertUC:         alertUC,
		AnnouncementUC:  annUC,
		Interval:        cfg.Watcher.Interval,
		WorkerLimit:     cfg.Watcher.WorkerLimit,
		EvaluateTimeout: cfg.Watcher.EvaluateTimeout,
	})

	// Initialize HTTP server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		AlertUC:        alertUC,
		AnnouncementUC: annUC,
		Watcher:        w,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}
}
