package setup

import (
	"github.com/brigatacurvasud/bcs-service/internal/delivery/http/handlers"
	"github.com/brigatacurvasud/bcs-service/internal/infrastructure/auth"
	publisher "github.com/brigatacurvasud/bcs-service/internal/infrastructure/kafka"
	"github.com/brigatacurvasud/bcs-service/internal/infrastructure/logger"
	"github.com/brigatacurvasud/bcs-service/internal/usecase"
)

func InitializeUseCases(deps *Dependencies) (handlers.Usecases, error) {
	cfg := deps.Config
	repos := deps.Repositories

	effects := usecase.AdminEffects{
		Audit:       logger.NewAuditLogger(repos.AuditLogRepo, deps.Metrics),
		Invalidator: publisher.NewKafkaContentInvalidator(deps.Publisher, cfg.Kafka.ContentTopic),
	}

	checkoutUsecase, err := usecase.NewDefaultCheckoutUsecase(
		repos.CartRepo,
		repos.CouponRepo,
		repos.CheckoutRepo,
		deps.Publisher,
		deps.Metrics,
	)
	if err != nil {
		return handlers.Usecases{}, err
	}

	return handlers.Usecases{
		Auth: usecase.NewDefaultAuthUsecase(
			repos.UserRepo,
			auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL),
			auth.NewBcryptHasher(),
		),
		Cart:     usecase.NewDefaultCartUsecase(repos.CartRepo, repos.CatalogRepo),
		Checkout: checkoutUsecase,
		Orders:   usecase.NewDefaultOrderUsecase(repos.OrderRepo, deps.Publisher, deps.Metrics, effects),
		Catalog:  usecase.NewDefaultCatalogUsecase(repos.CatalogRepo, repos.CommentRepo, effects),
		Coupons:  usecase.NewDefaultCouponUsecase(repos.CouponRepo, effects),
		Polls: usecase.NewDefaultPollUsecase(
			repos.PollRepo,
			auth.NewIPHasher(cfg.Auth.IPHashSalt),
			deps.Metrics,
			effects,
		),
		Comments: usecase.NewDefaultCommentUsecase(
			repos.CommentRepo,
			repos.TargetResolver,
			deps.Limiter,
			cfg.RateLimit.CommentLimit,
			deps.Metrics,
			effects,
		),
		Community: usecase.NewDefaultCommunityUsecase(repos.NewsletterRepo, repos.VolunteerRepo, effects),
		Articles:  usecase.NewDefaultArticleUsecase(repos.ArticleRepo, effects),
		Matches:   usecase.NewDefaultMatchUsecase(repos.MatchRepo, effects),
		Pages:     usecase.NewDefaultPageUsecase(repos.PageRepo, effects),
		Media: usecase.NewDefaultMediaUsecase(
			repos.MediaRepo,
			deps.Limiter,
			cfg.RateLimit.MediaLimit,
			deps.Metrics,
			effects,
		),
		Audit: usecase.NewDefaultAuditUsecase(repos.AuditLogRepo),
		Dashboard: usecase.NewDefaultDashboardUsecase(usecase.DashboardRepositories{
			Articles:    repos.ArticleRepo,
			Comments:    repos.CommentRepo,
			Matches:     repos.MatchRepo,
			Catalog:     repos.CatalogRepo,
			Orders:      repos.OrderRepo,
			Volunteers:  repos.VolunteerRepo,
			Newsletters: repos.NewsletterRepo,
		}),
	}, nil
}
