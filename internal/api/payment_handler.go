package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"cafeteria-be/internal/payment"
	"cafeteria-be/internal/utils"
)

type PaymentHandler struct {
	paymentSvc payment.Service
}

func NewPaymentHandler(paymentSvc payment.Service) *PaymentHandler {
	return &PaymentHandler{paymentSvc: paymentSvc}
}

func (h *PaymentHandler) Record(w http.ResponseWriter, r *http.Request) {
	var params payment.RecordPaymentParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		WriteErrorResponse(w, http.StatusBadRequest, "bad_request", "invalid JSON body")
		return
	}

	p, err := h.paymentSvc.RecordPayment(r.Context(), params)
	if err != nil {
		// A payment naming a missing order is bad input on the caller's side.
		if errors.Is(err, payment.ErrOrderNotFound) {
			WriteValidationError(w, err)
			return
		}
		WriteDomainError(w, err)
		return
	}

	WriteJSONResponse(w, http.StatusCreated, p)
}

type paymentWithOrder struct {
	*payment.Payment
	Order *payment.OrderSummary `json:"order"`
}

func (h *PaymentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ToInt(r.PathValue("id"))
	if err != nil {
		WriteErrorResponse(w, http.StatusNotFound, "not_found", "payment not found")
		return
	}

	p, o, err := h.paymentSvc.GetPayment(r.Context(), id)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	WriteJSONResponse(w, http.StatusOK, paymentWithOrder{Payment: p, Order: o})
}
