package handlers

import (
	"net/http"

	"github.com/brigatacurvasud/bcs-service/internal/delivery/http/dto/response"
	"github.com/brigatacurvasud/bcs-service/internal/domain"
	catalogdto "github.com/brigatacurvasud/bcs-service/internal/usecase/dto/catalog"
	orderdto "github.com/brigatacurvasud/bcs-service/internal/usecase/dto/order"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) adminListProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	products, err := h.catalog.ListAdminProducts(r.Context(), principalFrom(r), &catalogdto.ListAdminProductsInput{
		Query:  q.Get("q"),
		Status: q.Get("status"),
	})
	if err != nil {
		writeAdminError(w, r, err)
		return
	}
	writeAdminOK(w, http.StatusOK, "products", response.NewProducts(products))
}

func (h *Handler) adminGetProduct(w http.ResponseWriter, r *http.Request) {
	product, err := h.catalog.GetProductByID(r.Context(), principalFrom(r), chi.URLParam(r, "id"))
	if err != nil {
		writeAdminError(w, r, err)
		return
	}
	writeAdminOK(w, http.StatusOK, "product", response.NewProduct(product))
}

func (h *Handler) adminUpsertProduct(w http.ResponseWriter, r *http.Request) {
	var input catalogdto.UpsertProductInput
	if err := decodeJSON(r, &input); err != nil {
		writeAdminError(w, r, err)
		return
	}
	input.ID = chi.URLParam(r, "id")
	product, err := h.catalog.UpsertProduct(r.Context(), principalFrom(r), &input)
	if err != nil {
		writeAdminError(w, r, err)
		return
	}
	writeAdminOK(w, upsertStatus(input.ID), "product", response.NewProduct(product))
}

func (h *Handler) adminListCoupons(w http.ResponseWriter, r *http.Request) {
	coupons, err := h.coupons.ListCoupons(r.Context(), principalFrom(r))
	if err != nil {
		writeAdminError(w, r, err)
		return
	}
	writeAdminOK(w, http.StatusOK, "coupons", response.NewCoupons(coupons))
}

func (h *Handler) adminUpsertCoupon(w http.ResponseWriter, r *http.Request) {
	var input catalogdto.UpsertCouponInput
	if err := decodeJSON(r, &input); err != nil {
		writeAdminError(w, r, err)
		return
	}
	input.ID = chi.URLParam(r, "id")
	coupon, err := h.coupons.UpsertCoupon(r.Context(), principalFrom(r), &input)
	if err != nil {
		writeAdminError(w, r, err)
		return
	}
	writeAdminOK(w, upsertStatus(input.ID), "coupon", response.NewCoupon(coupon))
}

func (h *Handler) adminListOrders(w http.ResponseWriter, r *http.Request) {
	actor := principalFrom(r)
	// the shared listing falls back to own orders; the back-office does not
	if err := domain.RequireRole(domain.OrderRoles, actor.Role); err != nil {
		writeAdminError(w, r, err)
		return
	}
	orders, err := h.orders.ListOrders(r.Context(), actor, r.URL.Query().Get("status"))
	if err != nil {
		writeAdminError(w, r, err)
		return
	}
	writeAdminOK(w, http.StatusOK, "orders", response.NewOrders(orders))
}

func (h *Handler) adminGetOrder(w http.ResponseWriter, r *http.Request) {
	actor := principalFrom(r)
	if err := domain.RequireRole(domain.OrderRoles, actor.Role); err != nil {
		writeAdminError(w, r, err)
		return
	}
	order, err := h.orders.GetOrder(r.Context(), actor, chi.URLParam(r, "id"))
	if err != nil {
		writeAdminError(w, r, err)
		return
	}
	writeAdminOK(w, http.StatusOK, "order", response.NewOrder(order))
}

func (h *Handler) adminUpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	var input orderdto.UpdateStatusInput
	if err := decodeJSON(r, &input); err != nil {
		writeAdminError(w, r, err)
		return
	}
	input.OrderID = chi.URLParam(r, "id")
	order, err := h.orders.UpdateOrderStatus(r.Context(), principalFrom(r), &input)
	if err != nil {
		writeAdminError(w, r, err)
		return
	}
	writeAdminOK(w, http.StatusOK, "order", response.NewOrder(order))
}

func (h *Handler) adminUpsertShipment(w http.ResponseWriter, r *http.Request) {
	var input orderdto.ShipmentInput
	if err := decodeJSON(r, &input); err != nil {
		writeAdminError(w, r, err)
		return
	}
	input.OrderID = chi.URLParam(r, "id")
	shipment, err := h.orders.UpsertShipment(r.Context(), principalFrom(r), &input)
	if err != nil {
		writeAdminError(w, r, err)
		return
	}
	writeAdminOK(w, http.StatusOK, "shipment", response.NewShipment(shipment))
}

func (h *Handler) adminDashboard(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.dashboard.Snapshot(r.Context(), principalFrom(r))
	if err != nil {
		writeAdminError(w, r, err)
		return
	}
	writeAdminOK(w, http.StatusOK, "dashboard", response.NewDashboard(snapshot))
}

func (h *Handler) adminAuditLogs(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, err := h.audit.ListAuditLogs(r.Context(), principalFrom(r), domain.AuditLogFilter{
		ActorID:    q.Get("actorId"),
		Action:     q.Get("action"),
		TargetType: q.Get("targetType"),
		Page:       queryInt(r, "page"),
		PageSize:   queryInt(r, "pageSize"),
	})
	if err != nil {
		writeAdminError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"ok":       true,
		"logs":     response.NewAuditLogs(page.Items),
		"total":    page.Total,
		"page":     page.Page,
		"pageSize": page.PageSize,
	})
}
