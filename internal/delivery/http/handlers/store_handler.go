package handlers

import (
	"net/http"

	"github.com/brigatacurvasud/bcs-service/internal/delivery/http/dto/response"
	authdto "github.com/brigatacurvasud/bcs-service/internal/usecase/dto/auth"
	cartdto "github.com/brigatacurvasud/bcs-service/internal/usecase/dto/cart"
	catalogdto "github.com/brigatacurvasud/bcs-service/internal/usecase/dto/catalog"
	checkoutdto "github.com/brigatacurvasud/bcs-service/internal/usecase/dto/checkout"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var input authdto.LoginInput
	if err := decodeJSON(r, &input); err != nil {
		writeError(w, r, err)
		return
	}
	out, err := h.auth.Login(r.Context(), &input)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, response.LoginResponse{
		Token:     out.Token,
		ExpiresAt: out.ExpiresAt,
		User:      response.NewUser(out.User),
	})
}

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	page, err := h.catalog.ListProducts(r.Context(), &catalogdto.ListProductsInput{
		Query:    r.URL.Query().Get("q"),
		Page:     queryInt(r, "page"),
		PageSize: queryInt(r, "pageSize"),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, response.PageOf[*response.ProductResponse]{
		Items:    response.NewProducts(page.Items),
		Total:    page.Total,
		Page:     page.Page,
		PageSize: page.PageSize,
	})
}

func (h *Handler) getProduct(w http.ResponseWriter, r *http.Request) {
	detail, err := h.catalog.GetProductBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, response.ProductDetailResponse{
		ProductResponse: response.NewProduct(detail.Product),
		Comments:        response.NewComments(detail.Comments),
	})
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	cart, err := h.cart.GetOrCreateCart(r.Context(), userID(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, response.NewCart(cart))
}

func (h *Handler) addCartItem(w http.ResponseWriter, r *http.Request) {
	var input cartdto.AddItemInput
	if err := decodeJSON(r, &input); err != nil {
		writeError(w, r, err)
		return
	}
	cart, err := h.cart.AddItem(r.Context(), userID(r), &input)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, response.NewCart(cart))
}

func (h *Handler) updateCartItem(w http.ResponseWriter, r *http.Request) {
	var input cartdto.UpdateItemInput
	if err := decodeJSON(r, &input); err != nil {
		writeError(w, r, err)
		return
	}
	cart, err := h.cart.UpdateItem(r.Context(), userID(r), chi.URLParam(r, "id"), &input)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, response.NewCart(cart))
}

func (h *Handler) removeCartItem(w http.ResponseWriter, r *http.Request) {
	cart, err := h.cart.RemoveItem(r.Context(), userID(r), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, response.NewCart(cart))
}

func (h *Handler) placeOrder(w http.ResponseWriter, r *http.Request) {
	var input checkoutdto.CheckoutInput
	if err := decodeJSON(r, &input); err != nil {
		writeError(w, r, err)
		return
	}
	order, err := h.checkout.Checkout(r.Context(), userID(r), &input)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, response.NewOrder(order))
}

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orders.ListOrders(r.Context(), principalFrom(r), r.URL.Query().Get("status"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, response.NewOrders(orders))
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.orders.GetOrder(r.Context(), principalFrom(r), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, response.NewOrder(order))
}
