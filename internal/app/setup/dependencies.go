package setup

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/brigatacurvasud/bcs-service/internal/config"
	"github.com/brigatacurvasud/bcs-service/internal/domain"
	publisher "github.com/brigatacurvasud/bcs-service/internal/infrastructure/kafka"
	"github.com/brigatacurvasud/bcs-service/internal/infrastructure/metrics"
	"github.com/brigatacurvasud/bcs-service/internal/infrastructure/migrate"
	"github.com/brigatacurvasud/bcs-service/internal/infrastructure/postgres"
	"github.com/brigatacurvasud/bcs-service/internal/infrastructure/postgres/repository"
	"github.com/brigatacurvasud/bcs-service/internal/infrastructure/ratelimit"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// EventPublisher is the outbound event stream: order events and raw topic
// messages for content invalidation.
type EventPublisher interface {
	domain.PublisherPort
	domain.OrderEventPublisher
	Close() error
}

type Dependencies struct {
	Config       *config.ServiceConfig
	DB           *gorm.DB
	Redis        *redis.Client
	Publisher    EventPublisher
	Limiter      domain.RateLimiter
	Registry     *prometheus.Registry
	Metrics      *metrics.StoreMetrics
	Repositories *Repositories
}

type Repositories struct {
	UserRepo       domain.UserRepository
	CartRepo       domain.CartRepository
	CatalogRepo    domain.CatalogRepository
	CouponRepo     domain.CouponRepository
	CheckoutRepo   domain.CheckoutRepository
	OrderRepo      domain.OrderRepository
	PollRepo       domain.PollRepository
	CommentRepo    domain.CommentRepository
	TargetResolver domain.TargetResolver
	NewsletterRepo domain.NewsletterRepository
	VolunteerRepo  domain.VolunteerRepository
	ArticleRepo    domain.ArticleRepository
	MatchRepo      domain.MatchRepository
	PageRepo       domain.PageRepository
	MediaRepo      domain.MediaRepository
	AuditLogRepo   domain.AuditLogRepository
}

func InitializeDependencies(cfg *config.ServiceConfig) (*Dependencies, error) {
	db := postgres.MustInitDB(cfg)

	if cfg.DB.MigrationsPath != "" {
		if err := migrate.RunMigrations(db, cfg.DB.MigrationsPath); err != nil {
			return nil, fmt.Errorf("migrations: %w", err)
		}
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	deps := &Dependencies{
		Config:       cfg,
		DB:           db,
		Publisher:    initPublisher(cfg),
		Registry:     reg,
		Metrics:      metrics.NewStoreMetrics(reg),
		Repositories: initRepositories(db),
	}

	limiter, client, err := initLimiter(cfg)
	if err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}
	deps.Limiter = limiter
	deps.Redis = client

	return deps, nil
}

// Ping checks the database connection.
func (d *Dependencies) Ping(ctx context.Context) error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (d *Dependencies) Close() {
	if err := d.Publisher.Close(); err != nil {
		slog.Error("failed to close publisher", "error", err)
	}
	if d.Redis != nil {
		if err := d.Redis.Close(); err != nil {
			slog.Error("failed to close redis client", "error", err)
		}
	}
	if sqlDB, err := d.DB.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			slog.Error("failed to close database", "error", err)
		}
	}
}

func initRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		UserRepo:       repository.NewDefaultUserRepository(db),
		CartRepo:       repository.NewDefaultCartRepository(db),
		CatalogRepo:    repository.NewDefaultCatalogRepository(db),
		CouponRepo:     repository.NewDefaultCouponRepository(db),
		CheckoutRepo:   repository.NewDefaultCheckoutRepository(db),
		OrderRepo:      repository.NewDefaultOrderRepository(db),
		PollRepo:       repository.NewDefaultPollRepository(db),
		CommentRepo:    repository.NewDefaultCommentRepository(db),
		TargetResolver: repository.NewDefaultTargetResolver(db),
		NewsletterRepo: repository.NewDefaultNewsletterRepository(db),
		VolunteerRepo:  repository.NewDefaultVolunteerRepository(db),
		ArticleRepo:    repository.NewDefaultArticleRepository(db),
		MatchRepo:      repository.NewDefaultMatchRepository(db),
		PageRepo:       repository.NewDefaultPageRepository(db),
		MediaRepo:      repository.NewDefaultMediaRepository(db),
		AuditLogRepo:   repository.NewDefaultAuditLogRepository(db),
	}
}

func initPublisher(cfg *config.ServiceConfig) EventPublisher {
	if !cfg.Kafka.Enabled() {
		slog.Warn("no kafka brokers configured, events are dropped")
		return publisher.NoopPublisher{}
	}
	return publisher.NewDefaultKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.OrderTopic)
}

// initLimiter returns the redis client only for the redis backend.
func initLimiter(cfg *config.ServiceConfig) (domain.RateLimiter, *redis.Client, error) {
	switch cfg.RateLimit.Backend {
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := client.Ping(context.Background()).Err(); err != nil {
			return nil, nil, fmt.Errorf("redis ping: %w", err)
		}
		return ratelimit.NewRedisLimiter(client, cfg.RateLimit.Window), client, nil
	case "memory", "":
		limiter, err := ratelimit.NewMemoryLimiter(cfg.RateLimit.CacheSize, cfg.RateLimit.Window)
		return limiter, nil, err
	default:
		return nil, nil, fmt.Errorf("unknown backend %q", cfg.RateLimit.Backend)
	}
}
