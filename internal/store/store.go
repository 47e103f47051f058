package store

import (
	"log/slog"
	"sync"
	"time"

	"comanda/internal/model"
)

// Repository loads and saves one persisted JSON document.
type Repository interface {
	Load(v any) error
	Save(v any) error
}

// Store owns all mutable state: the pending-order queue, the payment ledger
// and the waiter accounts. One mutex guards everything; every operation runs
// to completion, persistence included, inside its critical section.
//
// Persistence failures are logged and swallowed: the in-memory state stays
// authoritative for the rest of the process lifetime.
type Store struct {
	mu      sync.Mutex
	orders  []model.Order
	intents []model.PaymentIntent
	waiters []model.Waiter

	ordersRepo  Repository
	intentsRepo Repository
	waitersRepo Repository
}

func New(orders, intents, waiters Repository) *Store {
	s := &Store{
		ordersRepo:  orders,
		intentsRepo: intents,
		waitersRepo: waiters,
	}

	if err := orders.Load(&s.orders); err != nil {
		slog.Error("failed to load pending queue, starting empty", "error", err)
		s.orders = nil
	}
	if err := intents.Load(&s.intents); err != nil {
		slog.Error("failed to load payment ledger, starting empty", "error", err)
		s.intents = nil
	}
	if err := waiters.Load(&s.waiters); err != nil {
		slog.Error("failed to load waiters, starting empty", "error", err)
		s.waiters = nil
	}

	return s
}

// Orders returns a copy of the pending queue in service order.
func (s *Store) Orders() []model.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.Order, len(s.orders))
	copy(out, s.orders)
	return out
}

func (s *Store) FindOrder(id string) (model.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, o := range s.orders {
		if o.ID == id {
			return o, true
		}
	}
	return model.Order{}, false
}

// AppendOrder puts o at the tail of the queue and persists the whole queue.
func (s *Store) AppendOrder(o model.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.orders = append(s.orders, o)
	s.persistOrders()
}

// RemoveOrder deletes the order with the given id, keeping the relative
// order of the rest. It reports whether the id was present.
func (s *Store) RemoveOrder(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, o := range s.orders {
		if o.ID == id {
			s.orders = append(s.orders[:i], s.orders[i+1:]...)
			s.persistOrders()
			return true
		}
	}
	return false
}

func (s *Store) Payments() []model.PaymentIntent {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.PaymentIntent, len(s.intents))
	copy(out, s.intents)
	return out
}

func (s *Store) FindPayment(id string) (model.PaymentIntent, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.intents {
		if p.ID == id {
			return p, true
		}
	}
	return model.PaymentIntent{}, false
}

func (s *Store) AppendPayment(p model.PaymentIntent) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.intents = append(s.intents, p)
	s.persistPayments()
}

// MarkPaymentPaid transitions a PENDING intent to PAID and stamps updated_at.
// Calling it again for an already-paid intent is a no-op; it reports whether
// the id was present.
func (s *Store) MarkPaymentPaid(id string, now time.Time) (model.PaymentIntent, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.intents {
		if s.intents[i].ID != id {
			continue
		}
		if s.intents[i].Status != model.PaymentPaid {
			s.intents[i].Status = model.PaymentPaid
			s.intents[i].UpdatedAt = now
			s.persistPayments()
		}
		return s.intents[i], true
	}
	return model.PaymentIntent{}, false
}

func (s *Store) FindWaiter(login string) (model.Waiter, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, w := range s.waiters {
		if w.Login == login {
			return w, true
		}
	}
	return model.Waiter{}, false
}

// AppendWaiter registers a new account; it reports false if the login is
// already taken.
func (s *Store) AppendWaiter(w model.Waiter) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.waiters {
		if existing.Login == w.Login {
			return false
		}
	}

	s.waiters = append(s.waiters, w)
	if err := s.waitersRepo.Save(s.waiters); err != nil {
		slog.Error("failed to persist waiters", "error", err)
	}
	return true
}

// persistOrders must be called with the lock held.
func (s *Store) persistOrders() {
	if s.orders == nil {
		s.orders = []model.Order{}
	}
	if err := s.ordersRepo.Save(s.orders); err != nil {
		slog.Error("failed to persist pending queue", "error", err)
	}
}

// persistPayments must be called with the lock held.
func (s *Store) persistPayments() {
	if s.intents == nil {
		s.intents = []model.PaymentIntent{}
	}
	if err := s.intentsRepo.Save(s.intents); err != nil {
		slog.Error("failed to persist payment ledger", "error", err)
	}
}
