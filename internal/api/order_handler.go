package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"cafeteria-be/internal/order"
	"cafeteria-be/internal/utils"
)

type OrderHandler struct {
	orderSvc order.Service
}

func NewOrderHandler(orderSvc order.Service) *OrderHandler {
	return &OrderHandler{orderSvc: orderSvc}
}

func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var params order.CreateOrderParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		WriteErrorResponse(w, http.StatusBadRequest, "bad_request", "invalid JSON body")
		return
	}

	o, err := h.orderSvc.CreateOrder(r.Context(), params)
	if err != nil {
		// Bad table or item references on creation are caller input errors.
		if errors.Is(err, order.ErrTableNotFound) || errors.Is(err, order.ErrMenuItemNotFound) {
			WriteValidationError(w, err)
			return
		}
		WriteDomainError(w, err)
		return
	}

	WriteJSONResponse(w, http.StatusCreated, o)
}

func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ToInt(r.PathValue("id"))
	if err != nil {
		WriteErrorResponse(w, http.StatusNotFound, "not_found", "order not found")
		return
	}

	o, err := h.orderSvc.GetOrder(r.Context(), id)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	WriteJSONResponse(w, http.StatusOK, o)
}

func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	var filter order.OrderFilter

	if v := r.URL.Query().Get("status"); v != "" {
		status := order.OrderStatus(v)
		filter.Status = &status
	}
	if v := r.URL.Query().Get("table_id"); v != "" {
		tableID, err := utils.ToInt(v)
		if err != nil {
			WriteErrorResponse(w, http.StatusUnprocessableEntity, "validation_failed", "table_id must be an integer")
			return
		}
		filter.TableID = &tableID
	}

	orders, err := h.orderSvc.ListOrders(r.Context(), filter)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	WriteJSONResponse(w, http.StatusOK, orders)
}

type updateStatusRequest struct {
	OrderStatus string `json:"order_status"`
}

func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ToInt(r.PathValue("id"))
	if err != nil {
		WriteErrorResponse(w, http.StatusNotFound, "not_found", "order not found")
		return
	}

	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteErrorResponse(w, http.StatusBadRequest, "bad_request", "invalid JSON body")
		return
	}

	o, err := h.orderSvc.UpdateStatus(r.Context(), id, order.OrderStatus(req.OrderStatus))
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	WriteJSONResponse(w, http.StatusOK, o)
}
