package service_provider

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"AccelMailBot/internal/adapters/config"
	tgcontroller "AccelMailBot/internal/adapters/controller/telegram"
	"AccelMailBot/internal/adapters/geocode"
	"AccelMailBot/internal/adapters/remoteconfig"
	"AccelMailBot/internal/adapters/repository/firebasestore"
	"AccelMailBot/internal/adapters/repository/postgres"
	"AccelMailBot/internal/adapters/repository/redisstate"
	"AccelMailBot/internal/adapters/telegramfile"
	"AccelMailBot/internal/domain/service/access"
	ratesvc "AccelMailBot/internal/domain/service/rates"
	"AccelMailBot/internal/domain/service/submit"
	"AccelMailBot/internal/domain/service/wizard"
)

type ServiceProvider struct {
	config config.Config

	pgPool      *pgxpool.Pool
	redisClient *redis.Client
	firebase    *firebasestore.Connector

	accessService *access.Service
	submitService *submit.Service
	wizardService *wizard.Service
	rateService   *ratesvc.Service

	botRunner *tgcontroller.Runner
}

func New() (*ServiceProvider, error) {
	sp := &ServiceProvider{}
	if err := sp.init(); err != nil {
		return nil, err
	}
	return sp, nil
}

func (sp *ServiceProvider) BotRunner() *tgcontroller.Runner {
	return sp.botRunner
}

func (sp *ServiceProvider) Close() {
	if sp.firebase != nil {
		_ = sp.firebase.Close()
	}
	if sp.redisClient != nil {
		_ = sp.redisClient.Close()
	}
	if sp.pgPool != nil {
		sp.pgPool.Close()
	}
}

func (sp *ServiceProvider) init() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	sp.config = cfg

	ctx := context.Background()

	pgPool, err := pgxpool.New(ctx, cfg.PostgresDSN)
	if err != nil {
		return fmt.Errorf("connect postgres: %w", err)
	}
	if err := pgPool.Ping(ctx); err != nil {
		return fmt.Errorf("ping postgres: %w", err)
	}
	sp.pgPool = pgPool

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("ping redis: %w", err)
	}
	sp.redisClient = redisClient

	firebase, err := firebasestore.NewConnector(ctx, cfg.FirebaseProjectID, cfg.StorageBucket, cfg.CredentialsFile)
	if err != nil {
		return fmt.Errorf("connect firebase: %w", err)
	}
	sp.firebase = firebase

	rateRepo := postgres.NewRateRepo(sp.pgPool)
	if err := rateRepo.Migrate(ctx); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	sessionRepo := redisstate.NewSessionRepo(sp.redisClient)
	campaignRepo := firebasestore.NewCampaignRepo(firebase, cfg.AppID)
	uploadStore := firebasestore.NewUploadStore(firebase)
	fileFetcher := telegramfile.New(cfg.BotToken)

	sp.accessService = access.New(cfg.AdminSet())
	sp.submitService = submit.New(campaignRepo, uploadStore, fileFetcher, cfg.AppID)
	sp.wizardService = wizard.New(sessionRepo, sp.submitService)
	sp.rateService = ratesvc.New(rateRepo)

	configFetcher := remoteconfig.New(cfg.ConfigScriptURL)
	geocoder := geocode.New(cfg.GeocoderBaseURL)

	botRunner, err := tgcontroller.New(cfg.BotToken, sp.accessService, sp.wizardService, sp.rateService, configFetcher, geocoder)
	if err != nil {
		return fmt.Errorf("create telegram controller: %w", err)
	}
	sp.botRunner = botRunner

	log.Info().Msg("service provider initialized")
	return nil
}
