package service

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"comanda/internal/model"
	"comanda/internal/store"
)

var (
	ErrMissingItem     = errors.New("missing item")
	ErrInvalidQuantity = errors.New("invalid quantity")
	ErrOrderNotFound   = errors.New("order not found")
)

const orderIDLen = 8

// OrderNotifier receives every freshly created order. Must not block.
type OrderNotifier interface {
	Notify(model.Order)
}

type OrderService struct {
	store    *store.Store
	notifier OrderNotifier
}

// NewOrderService wires the pending queue; notifier may be nil.
func NewOrderService(st *store.Store, notifier OrderNotifier) *OrderService {
	return &OrderService{store: st, notifier: notifier}
}

// List returns the pending queue in FIFO service order.
func (s *OrderService) List() []model.Order {
	return s.store.Orders()
}

// Create validates the fields, appends the order to the tail of the queue
// and persists it. Quantity arrives as raw text and must parse to an
// integer greater than zero.
func (s *OrderService) Create(item, quantity, notes, price string) (model.Order, error) {
	item = strings.TrimSpace(item)
	if item == "" {
		return model.Order{}, ErrMissingItem
	}

	qty, err := strconv.Atoi(strings.TrimSpace(quantity))
	if err != nil || qty <= 0 {
		return model.Order{}, ErrInvalidQuantity
	}

	order := model.Order{
		ID:        newID(orderIDLen),
		CreatedAt: time.Now(),
		Item:      item,
		Quantity:  qty,
		Notes:     strings.TrimSpace(notes),
		Price:     strings.TrimSpace(price),
	}

	s.store.AppendOrder(order)

	if s.notifier != nil {
		s.notifier.Notify(order)
	}

	return order, nil
}

// Deliver removes the order from the queue. One-way: there is no
// undelivered state to return to.
func (s *OrderService) Deliver(id string) (string, error) {
	if !s.store.RemoveOrder(id) {
		return "", ErrOrderNotFound
	}
	return id, nil
}
