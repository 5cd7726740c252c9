package usecase

import (
	"context"
	"time"

	"github.com/brigatacurvasud/bcs-service/internal/domain"
	"golang.org/x/sync/errgroup"
)

const (
	dashboardWindow      = 30 * 24 * time.Hour
	dashboardRecentLimit = 5
	LowStockThreshold    = 5
)

type DashboardUsecase interface {
	Snapshot(ctx context.Context, actor *domain.Principal) (*domain.DashboardSnapshot, error)
}

type DashboardRepositories struct {
	Articles    domain.ArticleRepository
	Comments    domain.CommentRepository
	Matches     domain.MatchRepository
	Catalog     domain.CatalogRepository
	Orders      domain.OrderRepository
	Volunteers  domain.VolunteerRepository
	Newsletters domain.NewsletterRepository
}

type DefaultDashboardUsecase struct {
	repos DashboardRepositories
	now   func() time.Time
}

func NewDefaultDashboardUsecase(repos DashboardRepositories) *DefaultDashboardUsecase {
	return &DefaultDashboardUsecase{repos: repos, now: time.Now}
}

// Snapshot runs its counters concurrently and fails on the first error.
func (uc *DefaultDashboardUsecase) Snapshot(ctx context.Context, actor *domain.Principal) (*domain.DashboardSnapshot, error) {
	if err := authorize(actor, domain.DashboardRoles); err != nil {
		return nil, err
	}

	now := uc.now()
	since := now.Add(-dashboardWindow)
	snap := &domain.DashboardSnapshot{}
	t := &snap.Totals

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		t.Articles, err = uc.repos.Articles.CountArticles(ctx, "")
		return err
	})
	g.Go(func() (err error) {
		t.PublishedArticles, err = uc.repos.Articles.CountArticles(ctx, domain.ArticlePublished)
		return err
	})
	g.Go(func() (err error) {
		t.PendingComments, err = uc.repos.Comments.CountCommentsByStatus(ctx, domain.CommentPending)
		return err
	})
	g.Go(func() (err error) {
		_, t.UpcomingMatches, err = uc.repos.Matches.ListMatches(ctx, domain.MatchFilter{
			Statuses: []domain.MatchStatus{domain.MatchScheduled, domain.MatchLive},
			From:     &now,
			Page:     1,
			PageSize: 1,
		})
		return err
	})
	g.Go(func() (err error) {
		t.Products, err = uc.repos.Catalog.CountProducts(ctx)
		return err
	})
	g.Go(func() (err error) {
		t.PendingOrders, err = uc.repos.Orders.CountOrdersByStatus(ctx, domain.OrderStatusPending)
		return err
	})
	g.Go(func() (err error) {
		t.NewVolunteers, err = uc.repos.Volunteers.CountVolunteersSince(ctx, since)
		return err
	})
	g.Go(func() (err error) {
		t.NewSubscribers, err = uc.repos.Newsletters.CountSubscribersSince(ctx, since)
		return err
	})
	g.Go(func() (err error) {
		snap.RevenueLast30Days, err = uc.repos.Orders.SumRevenueSince(ctx, domain.RevenueStatuses, since)
		return err
	})
	g.Go(func() (err error) {
		snap.RecentOrders, err = uc.repos.Orders.ListOrders(ctx, domain.OrderFilter{Limit: dashboardRecentLimit})
		return err
	})
	g.Go(func() (err error) {
		snap.LowStockVariants, err = uc.repos.Catalog.ListLowStockVariants(ctx, LowStockThreshold, dashboardRecentLimit)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return snap, nil
}
