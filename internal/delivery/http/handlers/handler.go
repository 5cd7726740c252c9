package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/brigatacurvasud/bcs-service/internal/usecase"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Usecases are the application services exposed over HTTP.
type Usecases struct {
	Auth      usecase.AuthUsecase
	Cart      usecase.CartUsecase
	Checkout  usecase.CheckoutUsecase
	Orders    usecase.OrderUsecase
	Catalog   usecase.CatalogUsecase
	Coupons   usecase.CouponUsecase
	Polls     usecase.PollUsecase
	Comments  usecase.CommentUsecase
	Community usecase.CommunityUsecase
	Articles  usecase.ArticleUsecase
	Matches   usecase.MatchUsecase
	Pages     usecase.PageUsecase
	Media     usecase.MediaUsecase
	Audit     usecase.AuditUsecase
	Dashboard usecase.DashboardUsecase
}

type Handler struct {
	auth      usecase.AuthUsecase
	cart      usecase.CartUsecase
	checkout  usecase.CheckoutUsecase
	orders    usecase.OrderUsecase
	catalog   usecase.CatalogUsecase
	coupons   usecase.CouponUsecase
	polls     usecase.PollUsecase
	comments  usecase.CommentUsecase
	community usecase.CommunityUsecase
	articles  usecase.ArticleUsecase
	matches   usecase.MatchUsecase
	pages     usecase.PageUsecase
	media     usecase.MediaUsecase
	audit     usecase.AuditUsecase
	dashboard usecase.DashboardUsecase

	ping    func(ctx context.Context) error
	metrics http.Handler
}

// NewHandler builds the HTTP layer. ping backs /healthz and metrics is
// served on /metrics; either may be nil.
func NewHandler(uc Usecases, ping func(ctx context.Context) error, metrics http.Handler) *Handler {
	return &Handler{
		auth:      uc.Auth,
		cart:      uc.Cart,
		checkout:  uc.Checkout,
		orders:    uc.Orders,
		catalog:   uc.Catalog,
		coupons:   uc.Coupons,
		polls:     uc.Polls,
		comments:  uc.Comments,
		community: uc.Community,
		articles:  uc.Articles,
		matches:   uc.Matches,
		pages:     uc.Pages,
		media:     uc.Media,
		audit:     uc.Audit,
		dashboard: uc.Dashboard,
		ping:      ping,
		metrics:   metrics,
	}
}

func (h *Handler) Router() *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(15 * time.Second))

	r.Get("/healthz", h.healthz)
	if h.metrics != nil {
		r.Method(http.MethodGet, "/metrics", h.metrics)
	}

	r.Route("/api", func(r chi.Router) {
		r.Use(h.authenticate)

		r.Post("/auth/login", h.login)

		r.Get("/products", h.listProducts)
		r.Get("/products/{slug}", h.getProduct)
		r.Get("/articles", h.listArticles)
		r.Get("/articles/{slug}", h.getArticle)
		r.Get("/categories", h.listCategories)
		r.Get("/matches/upcoming", h.listUpcomingMatches)
		r.Get("/matches/past", h.listPastMatches)
		r.Get("/matches/{id}", h.getMatch)
		r.Get("/pages/{slug}", h.getPage)

		r.Get("/polls/active", h.activePoll)
		r.Get("/polls/{id}/results", h.pollResults)
		r.Post("/polls/{id}/vote", h.vote)
		r.Get("/comments", h.listComments)
		r.Post("/newsletter/subscribe", h.subscribe)
		r.Post("/volunteer", h.submitVolunteer)

		r.Group(func(r chi.Router) {
			r.Use(requireUser(writeError))

			r.Post("/comments", h.submitComment)

			r.Get("/cart", h.getCart)
			r.Post("/cart/items", h.addCartItem)
			r.Patch("/cart/items/{id}", h.updateCartItem)
			r.Delete("/cart/items/{id}", h.removeCartItem)
			r.Post("/checkout", h.placeOrder)
			r.Get("/orders", h.listOrders)
			r.Get("/orders/{id}", h.getOrder)
		})

		r.Route("/admin", h.adminRoutes)
	})
	return r
}

func (h *Handler) adminRoutes(r chi.Router) {
	r.Use(requireUser(writeAdminError))

	r.Get("/dashboard", h.adminDashboard)
	r.Get("/audit-logs", h.adminAuditLogs)

	r.Get("/articles", h.adminListArticles)
	r.Post("/articles", h.adminUpsertArticle)
	r.Get("/articles/{id}", h.adminGetArticle)
	r.Put("/articles/{id}", h.adminUpsertArticle)
	r.Delete("/articles/{id}", h.adminDeleteArticle)

	r.Get("/matches", h.adminListMatches)
	r.Post("/matches", h.adminUpsertMatch)
	r.Put("/matches/{id}", h.adminUpsertMatch)
	r.Delete("/matches/{id}", h.adminDeleteMatch)

	r.Get("/pages", h.adminListPages)
	r.Post("/pages", h.adminUpsertPage)
	r.Get("/pages/{id}", h.adminGetPage)
	r.Put("/pages/{id}", h.adminUpsertPage)
	r.Delete("/pages/{id}", h.adminDeletePage)

	r.Get("/media", h.adminListMedia)
	r.Post("/media", h.adminCreateMedia)
	r.Delete("/media/{id}", h.adminDeleteMedia)

	r.Get("/products", h.adminListProducts)
	r.Post("/products", h.adminUpsertProduct)
	r.Get("/products/{id}", h.adminGetProduct)
	r.Put("/products/{id}", h.adminUpsertProduct)

	r.Get("/coupons", h.adminListCoupons)
	r.Post("/coupons", h.adminUpsertCoupon)
	r.Put("/coupons/{id}", h.adminUpsertCoupon)

	r.Get("/orders", h.adminListOrders)
	r.Get("/orders/{id}", h.adminGetOrder)
	r.Patch("/orders/{id}/status", h.adminUpdateOrderStatus)
	r.Put("/orders/{id}/shipment", h.adminUpsertShipment)

	r.Get("/polls", h.adminListPolls)
	r.Post("/polls", h.adminUpsertPoll)
	r.Put("/polls/{id}", h.adminUpsertPoll)
	r.Patch("/polls/{id}/status", h.adminUpdatePollStatus)
	r.Delete("/polls/{id}", h.adminDeletePoll)

	r.Get("/comments", h.adminListComments)
	r.Patch("/comments/{id}", h.adminModerateComment)

	r.Get("/newsletter", h.adminListSubscribers)
	r.Get("/newsletter/export", h.adminExportSubscribers)
	r.Get("/volunteers", h.adminListVolunteers)
	r.Patch("/volunteers/{id}", h.adminUpdateVolunteerStatus)
}

func (h *Handler) healthz(w http.ResponseWriter, r *http.Request) {
	if h.ping != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := h.ping(ctx); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
