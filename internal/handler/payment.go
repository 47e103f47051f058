package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"comanda/internal/model"
	"comanda/internal/service"
)

type checkoutRequest struct {
	OrderID       string `json:"order_id"`
	PaymentMethod string `json:"payment_method"`
	WithInvoice   bool   `json:"with_invoice"`
	NIT           string `json:"nit"`
	RazonSocial   string `json:"razon_social"`
}

func CheckoutHandler(paymentSvc *service.PaymentService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req checkoutRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json")
			return
		}

		intent, err := paymentSvc.Checkout(req.OrderID, req.PaymentMethod, req.WithInvoice, req.NIT, req.RazonSocial)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrMissingOrderID), errors.Is(err, service.ErrInvalidMethod):
				writeError(w, http.StatusBadRequest, err.Error())
			case errors.Is(err, service.ErrOrderNotFound):
				writeError(w, http.StatusNotFound, "order not found")
			default:
				slog.Error("checkout failed", "error", err)
				writeError(w, http.StatusInternalServerError, "internal error")
			}
			return
		}

		resp := map[string]any{
			"ok":         true,
			"payment_id": intent.ID,
			"method":     intent.Method,
			"amount":     intent.Amount,
			"currency":   intent.Currency,
		}

		switch intent.Method {
		case model.MethodQR:
			resp["pay_reference"] = intent.PayReference
			resp["pay_url"] = "/pay/qr/" + intent.ID
		case model.MethodCard:
			resp["redirect_url"] = "/pay/card/" + intent.ID
		case model.MethodCash:
			resp["voucher"] = intent.Voucher
			resp["expires_at"] = intent.ExpiresAt
		}

		writeJSON(w, http.StatusCreated, resp)
	}
}

func ListPaymentsHandler(paymentSvc *service.PaymentService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"ok":       true,
			"payments": paymentSvc.List(),
		})
	}
}

// MarkPaidHandler is the mock gateway confirmation called by the payment
// page. Repeat calls succeed without changing anything.
func MarkPaidHandler(paymentSvc *service.PaymentService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		paymentID := chi.URLParam(r, "paymentID")

		intent, err := paymentSvc.ConfirmPaid(paymentID)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrPaymentNotFound):
				writeError(w, http.StatusNotFound, "payment not found")
			default:
				slog.Error("mark paid failed", "error", err)
				writeError(w, http.StatusInternalServerError, "internal error")
			}
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"ok":         true,
			"payment_id": intent.ID,
			"status":     intent.Status,
		})
	}
}
