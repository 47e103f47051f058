package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"comanda/internal/mw"
	"comanda/internal/service"
)

type createOrderRequest struct {
	Item     string          `json:"item"`
	Quantity json.RawMessage `json:"quantity"`
	Notes    string          `json:"notes"`
	Price    json.RawMessage `json:"price"`
}

func ListOrdersHandler(orderSvc *service.OrderService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"ok":     true,
			"orders": orderSvc.List(),
		})
	}
}

func CreateOrderHandler(orderSvc *service.OrderService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createOrderRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json")
			return
		}

		quantity := rawString(req.Quantity)
		if quantity == "" {
			quantity = "1"
		}

		order, err := orderSvc.Create(req.Item, quantity, req.Notes, rawString(req.Price))
		if err != nil {
			switch {
			case errors.Is(err, service.ErrMissingItem), errors.Is(err, service.ErrInvalidQuantity):
				writeError(w, http.StatusBadRequest, err.Error())
			default:
				slog.Error("order create failed", "error", err)
				writeError(w, http.StatusInternalServerError, "internal error")
			}
			return
		}

		writeJSON(w, http.StatusCreated, map[string]any{"ok": true, "order": order})
	}
}

func DeliverOrderHandler(orderSvc *service.OrderService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orderID := chi.URLParam(r, "orderID")

		id, err := orderSvc.Deliver(orderID)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrOrderNotFound):
				writeError(w, http.StatusNotFound, "id not found")
			default:
				slog.Error("order deliver failed", "error", err)
				writeError(w, http.StatusInternalServerError, "internal error")
			}
			return
		}

		waiterID, _ := r.Context().Value(mw.WaiterCtxKey).(string)
		slog.Info("order delivered", "id", id, "waiter", waiterID)

		writeJSON(w, http.StatusOK, map[string]any{"ok": true, "id": id})
	}
}
