package telegram

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"

	tgbot "github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"AccelMailBot/internal/domain/repository"
	"AccelMailBot/internal/domain/schema"
	"AccelMailBot/internal/domain/service/access"
	ratesvc "AccelMailBot/internal/domain/service/rates"
	wizardsvc "AccelMailBot/internal/domain/service/wizard"
)

type Runner struct {
	bot *tgbot.Bot
}

type Controller struct {
	bot    *tgbot.Bot
	access *access.Service
	wizard *wizardsvc.Service
	rates  *ratesvc.Service
	config repository.ConfigFetcher
	geo    repository.Geocoder

	// catalog caches the remote configuration fetched at wizard start.
	mu      sync.Mutex
	catalog *schema.RemoteConfig
}

func New(token string, accessSvc *access.Service, wizardSvc *wizardsvc.Service, rateSvc *ratesvc.Service, configFetcher repository.ConfigFetcher, geocoder repository.Geocoder) (*Runner, error) {
	ctrl := &Controller{
		access: accessSvc,
		wizard: wizardSvc,
		rates:  rateSvc,
		config: configFetcher,
		geo:    geocoder,
	}

	b, err := tgbot.New(token, tgbot.WithDefaultHandler(ctrl.defaultHandler))
	if err != nil {
		return nil, err
	}
	ctrl.bot = b

	b.RegisterHandler(tgbot.HandlerTypeMessageText, "/start", tgbot.MatchTypeExact, ctrl.start)
	b.RegisterHandler(tgbot.HandlerTypeMessageText, "/menu", tgbot.MatchTypeExact, ctrl.menu)
	b.RegisterHandler(tgbot.HandlerTypeMessageText, "/template", tgbot.MatchTypeExact, ctrl.template)

	return &Runner{bot: b}, nil
}

func (r *Runner) Start(ctx context.Context) {
	log.Info().Msg("telegram bot started")
	r.bot.Start(ctx)
}

func (c *Controller) defaultHandler(ctx context.Context, b *tgbot.Bot, upd *models.Update) {
	switch {
	case upd.CallbackQuery != nil:
		c.handleCallback(ctx, upd)
	case upd.Message != nil && upd.Message.Document != nil:
		c.handleDocument(ctx, upd)
	case upd.Message != nil && upd.Message.Text != "":
		c.handleText(ctx, upd)
	}
}

// remoteCatalog returns the cached remote configuration, fetching it on
// first use and falling back to the built-in catalog on any failure.
func (c *Controller) remoteCatalog(ctx context.Context) schema.RemoteConfig {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.catalog != nil {
		return *c.catalog
	}

	cfg, err := c.config.Fetch(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("remote config unavailable, using fallback")
		cfg = schema.FallbackRemoteConfig()
	}
	c.catalog = &cfg
	return cfg
}
