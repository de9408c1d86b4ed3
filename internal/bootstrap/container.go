package bootstrap

import (
	"context"
	"fmt"
	"time"

	"mindwell-be/internal/config"
	"mindwell-be/internal/constant"
	"mindwell-be/internal/controller"
	"mindwell-be/internal/events"
	"mindwell-be/internal/pkg/auth"
	"mindwell-be/internal/pkg/logger"
	"mindwell-be/internal/pkg/mailer"
	"mindwell-be/internal/pkg/ratelimit"
	"mindwell-be/internal/pkg/serverutils"
	"mindwell-be/internal/repository/memory"
	"mindwell-be/internal/repository/unitofwork"
	"mindwell-be/internal/service"
	"mindwell-be/pkg/completion"
	pkgEvents "mindwell-be/pkg/events"
	"mindwell-be/pkg/llm"
	"mindwell-be/pkg/llm/factory"
	pktNats "mindwell-be/pkg/nats"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const (
	topicCacheTTL     = 5 * time.Minute
	auditDurableName  = "mindwell-audit"
	auditSubjectMatch = "events.>"

	developmentJwtSecret = "mindwell-development-secret"
)

type Container struct {
	// Controllers
	HealthController   controller.IHealthController
	AuthController     controller.IAuthController
	CategoryController controller.ICategoryController
	SessionController  controller.ISessionController
	ChatController     controller.IChatController

	Logger logger.ILogger

	closers []func()
}

type options struct {
	provider    llm.StructuredProvider
	logger      logger.ILogger
	auditLogger logger.ILogger
}

type Option func(*options)

// WithCompletionProvider replaces the provider selected by LLM_PROVIDER.
func WithCompletionProvider(p llm.StructuredProvider) Option {
	return func(o *options) { o.provider = p }
}

func WithLoggers(sys, audit logger.ILogger) Option {
	return func(o *options) {
		o.logger = sys
		o.auditLogger = audit
	}
}

func NewContainer(ctx context.Context, db *gorm.DB, cfg *config.Config, opts ...Option) (*Container, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	c := &Container{}

	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	if o.logger == nil {
		o.logger = logger.NewZapLogger(cfg.App.LogFilePath, cfg.IsProduction())
	}
	if o.auditLogger == nil {
		o.auditLogger = logger.NewIsolatedLogger(cfg.App.AuditLogFilePath)
	}
	sysLogger := o.logger
	c.Logger = sysLogger
	c.closers = append(c.closers, func() { sysLogger.Sync(); o.auditLogger.Sync() })

	tokens, err := newTokenIssuer(cfg, sysLogger)
	if err != nil {
		c.Close()
		return nil, err
	}

	var emailService mailer.IEmailService
	if cfg.SMTP.Host != "" {
		emailService = mailer.NewEmailService(
			cfg.SMTP.Host,
			cfg.SMTP.Port,
			cfg.SMTP.Email,
			cfg.SMTP.Password,
			cfg.SMTP.Email,
			cfg.SMTP.SenderName,
		)
	} else {
		sysLogger.Info("BOOTSTRAP", "SMTP not configured, welcome emails disabled", nil)
		emailService = mailer.NewNoopEmailService()
	}

	// 2. Infrastructure
	limiter := c.newLimiter(ctx, cfg, sysLogger)

	bus := c.newEventBus(ctx, cfg, sysLogger, service.NewAuditConsumer(o.auditLogger))
	publisher := events.NewBusPublisher(bus, sysLogger)

	provider := o.provider
	if provider == nil {
		var err error
		provider, err = factory.NewStructuredProvider(ctx, factory.Config{
			Provider:     cfg.Ai.LLMProvider,
			Model:        cfg.Ai.LLMModel,
			GeminiAPIKey: cfg.Keys.GoogleGemini,
			OllamaURL:    cfg.Ai.OllamaBaseURL,
		})
		if err != nil {
			c.Close()
			return nil, fmt.Errorf("failed to initialize LLM provider: %w", err)
		}
	}
	sysLogger.Info("BOOTSTRAP", "Completion provider ready", map[string]interface{}{
		"provider": provider.Name(),
		"model":    cfg.Ai.LLMModel,
	})
	requestor := completion.NewRequestor(provider, llm.WithTemperature(cfg.Ai.Temperature))

	// 3. Services
	authService := service.NewAuthService(uowFactory, tokens, limiter, emailService, publisher, sysLogger)
	categoryService := service.NewCategoryService(uowFactory, memory.NewTopicCache(topicCacheTTL), publisher, sysLogger)
	sessionService := service.NewSessionService(uowFactory, sysLogger)
	chatLogService := service.NewChatLogService(uowFactory)
	chatService := service.NewChatService(uowFactory, categoryService, requestor, publisher, sysLogger)

	// 4. Controllers
	authMw := serverutils.JwtMiddleware(tokens)
	adminMw := serverutils.AdminMiddleware(authService)

	c.HealthController = controller.NewHealthController(db)
	c.AuthController = controller.NewAuthController(authService, authMw)
	c.CategoryController = controller.NewCategoryController(categoryService, authMw, adminMw)
	c.SessionController = controller.NewSessionController(sessionService, authMw)
	c.ChatController = controller.NewChatController(chatService, chatLogService, authMw)

	return c, nil
}

// Close releases infrastructure in reverse order of creation.
func (c *Container) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
	c.closers = nil
}

func (c *Container) newLimiter(ctx context.Context, cfg *config.Config, log logger.ILogger) ratelimit.Limiter {
	limitCfg := ratelimit.Config{
		MaxAttempts: cfg.Auth.LoginMaxAttempts,
		Window:      cfg.Auth.LoginWindow,
	}
	if cfg.App.RedisURL == "" {
		return ratelimit.NewMemoryLimiter(limitCfg)
	}

	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Warn("BOOTSTRAP", "Failed to parse Redis URL, using direct Addr", map[string]interface{}{"error": err.Error()})
		opt = &redis.Options{Addr: cfg.App.RedisURL}
	}
	rdb := redis.NewClient(opt)

	limiter, distributed := ratelimit.New(ctx, rdb, limitCfg)
	if !distributed {
		log.Warn("BOOTSTRAP", "Redis unreachable, login limiter kept in memory", nil)
		rdb.Close()
		return limiter
	}
	c.closers = append(c.closers, func() { rdb.Close() })
	return limiter
}

// newEventBus prefers NATS JetStream and falls back to the in-process channel
// bus. Either way the audit consumer receives every event.
func (c *Container) newEventBus(ctx context.Context, cfg *config.Config, log logger.ILogger, audit *service.AuditConsumer) pkgEvents.Publisher {
	if cfg.App.NatsURL != "" {
		nc, js, err := pktNats.Connect(cfg.App.NatsURL)
		if err == nil {
			c.closers = append(c.closers, func() { nc.Drain() })

			sub := pktNats.NewSubscriber(js)
			if err := sub.Subscribe(ctx, auditSubjectMatch, auditDurableName, audit.Handle); err != nil {
				log.Warn("BOOTSTRAP", "Audit consumer not started", map[string]interface{}{"error": err.Error()})
			} else {
				c.closers = append(c.closers, sub.Stop)
			}
			return pktNats.NewPublisher(js)
		}
		log.Warn("BOOTSTRAP", "NATS unavailable, using in-process event bus", map[string]interface{}{
			"url":   cfg.App.NatsURL,
			"error": err.Error(),
		})
	}

	bus := pkgEvents.NewChannelBus(constant.EventTopic)
	if err := bus.Subscribe(ctx, audit.Handle); err != nil {
		log.Warn("BOOTSTRAP", "Audit consumer not started", map[string]interface{}{"error": err.Error()})
	}
	c.closers = append(c.closers, func() { bus.Close() })
	return bus
}

// newTokenIssuer refuses to start a production server without JWT_SECRET.
// Other environments fall back to a fixed development secret.
func newTokenIssuer(cfg *config.Config, log logger.ILogger) (*auth.TokenIssuer, error) {
	secret := cfg.Auth.JwtSecret
	if secret == "" {
		if cfg.IsProduction() {
			return nil, fmt.Errorf("JWT_SECRET must be set when GO_ENV is production")
		}
		log.Warn("AUTH", "JWT_SECRET is not set, signing tokens with the development secret", nil)
		secret = developmentJwtSecret
	}
	return auth.NewTokenIssuer(secret, cfg.Auth.TokenTTL), nil
}
