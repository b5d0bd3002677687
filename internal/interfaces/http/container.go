package http

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/estatedesk/estatedesk/internal/application/intake"
	jobcardUsecases "github.com/estatedesk/estatedesk/internal/application/jobcard/usecases"
	"github.com/estatedesk/estatedesk/internal/infrastructure/auth"
	"github.com/estatedesk/estatedesk/internal/infrastructure/cache"
	"github.com/estatedesk/estatedesk/internal/infrastructure/config"
	"github.com/estatedesk/estatedesk/internal/infrastructure/email"
	"github.com/estatedesk/estatedesk/internal/infrastructure/permission"
	"github.com/estatedesk/estatedesk/internal/infrastructure/ratelimit"
	"github.com/estatedesk/estatedesk/internal/infrastructure/whatsapp"
	"github.com/estatedesk/estatedesk/internal/interfaces/http/middleware"
	"github.com/estatedesk/estatedesk/internal/shared/logger"
)

// Seen message IDs outlive any retry window WhatsApp uses.
const messageSeenTTL = 24 * time.Hour

var loginLimits = ratelimit.RateLimitConfig{RequestsPerMinute: 10, RequestsPerHour: 60}

// Container holds all infrastructure components, repositories, use cases and
// handlers, and closes what needs closing on Shutdown.
type Container struct {
	// Core infrastructure
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client

	repos *repositories
	ucs   *allUseCases
	hdlrs *allHandlers

	// Middlewares
	authMiddleware       *middleware.AuthMiddleware
	permissionMiddleware *middleware.PermissionMiddleware
	loginRateLimiter     *middleware.RateLimiter

	// Infrastructure services
	hasher      *auth.BcryptPasswordHasher
	jwtSvc      *auth.JWTService
	enforcer    *permission.Enforcer
	limiter     ratelimit.RateLimiter
	mailer      jobcardUsecases.SignoffMailer
	whatsapp    *whatsapp.Client
	intakeStore *intake.StateStore
}

// NewContainer creates a Container with all dependencies wired together.
// Redis is optional; without it dedup and rate limits stay in process.
func NewContainer(ctx context.Context, cfg *config.Config, db *gorm.DB, log logger.Interface) (*Container, error) {
	c := &Container{
		engine: gin.New(),
		db:     db,
		cfg:    cfg,
		log:    log,
	}

	// Section 1: Infrastructure - Redis, Auth, Policies, Outbound channels
	if err := c.initInfrastructure(ctx); err != nil {
		c.Shutdown()
		return nil, err
	}

	// Section 2: Repositories
	c.repos = newRepositories(db, c)

	// Section 3: Use cases
	c.initUseCases()

	// Section 4: Handlers and middlewares
	c.initHandlers()
	c.authMiddleware = middleware.NewAuthMiddleware(c.jwtSvc, log.Named("auth"))
	c.permissionMiddleware = middleware.NewPermissionMiddleware(c.enforcer, log.Named("permission"))
	c.loginRateLimiter = middleware.NewRateLimiter(c.limiter, "login", loginLimits, log)

	return c, nil
}

func (c *Container) initInfrastructure(ctx context.Context) error {
	var dedup intake.MessageDeduplicator
	if c.cfg.Redis.Enabled() {
		client, err := cache.NewRedisClient(ctx, &c.cfg.Redis)
		if err != nil {
			return err
		}
		c.redis = client
		c.limiter = ratelimit.NewRedisRateLimiter(client)
		dedup = cache.NewRedisMessageDeduplicator(client)
		c.log.Infow("redis connected", "addr", c.cfg.Redis.GetAddr())
	} else {
		c.limiter = ratelimit.NewMemoryRateLimiter()
		c.log.Warnw("redis not configured, using in-process rate limits and dedup")
	}
	c.intakeStore = intake.NewStateStore(dedup, messageSeenTTL, c.log.Named("intake"))

	c.hasher = auth.NewBcryptPasswordHasher(c.cfg.Auth.Password.BcryptCost)
	c.jwtSvc = auth.NewJWTService(c.cfg.Auth.JWT.Secret, c.cfg.Auth.JWT.AccessExpMinutes)

	enforcer, err := permission.NewEnforcer(c.db, c.log.Named("permission"))
	if err != nil {
		return fmt.Errorf("failed to create permission enforcer: %w", err)
	}
	if err := enforcer.SyncDefaultPolicies(); err != nil {
		return fmt.Errorf("failed to sync permission policies: %w", err)
	}
	c.enforcer = enforcer

	if smtp := email.NewSMTPMailer(c.cfg.Email, c.log.Named("email")); smtp.Configured() {
		c.mailer = smtp
	} else {
		c.log.Warnw("smtp not configured, sign-off notices disabled")
	}

	c.whatsapp = whatsapp.NewClient(c.cfg.WhatsApp, c.log.Named("whatsapp"))
	if !c.whatsapp.Configured() {
		c.log.Warnw("whatsapp not configured, outbound messages will fail")
	}
	if c.cfg.WhatsApp.AppSecret == "" {
		c.log.Warnw("whatsapp.app_secret not set, inbound webhook callbacks will be rejected")
	}
	return nil
}

// Engine returns the configured gin engine.
func (c *Container) Engine() *gin.Engine {
	return c.engine
}

// Shutdown stops timers and closes the Redis connection.
func (c *Container) Shutdown() {
	if c.intakeStore != nil {
		c.intakeStore.Close()
	}
	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			c.log.Warnw("failed to close redis", "error", err)
		}
	}
}
