package service

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"comanda/internal/config"
	"comanda/internal/model"
	"comanda/internal/store"
)

var (
	ErrMissingOrderID  = errors.New("missing order_id")
	ErrInvalidMethod   = errors.New("invalid payment method")
	ErrPaymentNotFound = errors.New("payment not found")
)

const (
	paymentIDLen    = 12
	payReferenceLen = 16
	voucherLen      = 6
	voucherTTL      = time.Hour
)

type PaymentService struct {
	store    *store.Store
	merchant config.Merchant
}

func NewPaymentService(st *store.Store, merchant config.Merchant) *PaymentService {
	return &PaymentService{store: st, merchant: merchant}
}

// Checkout creates a PENDING payment intent for an order still in the queue.
// It does not touch the order itself: delivery is a separate action.
func (s *PaymentService) Checkout(orderID, method string, withInvoice bool, taxID, businessName string) (model.PaymentIntent, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return model.PaymentIntent{}, ErrMissingOrderID
	}

	switch method {
	case model.MethodQR, model.MethodCard, model.MethodCash:
	default:
		return model.PaymentIntent{}, ErrInvalidMethod
	}

	order, ok := s.store.FindOrder(orderID)
	if !ok {
		return model.PaymentIntent{}, ErrOrderNotFound
	}

	now := time.Now()
	intent := model.PaymentIntent{
		ID:        newID(paymentIDLen),
		OrderID:   order.ID,
		Amount:    checkoutAmount(order.Price, order.Quantity),
		Currency:  config.Currency,
		Method:    method,
		Status:    model.PaymentPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if withInvoice {
		intent.TaxID = strings.TrimSpace(taxID)
		intent.BusinessName = strings.TrimSpace(businessName)
	}

	switch method {
	case model.MethodQR:
		intent.PayReference = newID(payReferenceLen)
	case model.MethodCash:
		intent.Voucher = strings.ToUpper(newID(voucherLen))
		expires := now.Add(voucherTTL)
		intent.ExpiresAt = &expires
	}

	s.store.AppendPayment(intent)

	return intent, nil
}

// List returns the full payment ledger.
func (s *PaymentService) List() []model.PaymentIntent {
	return s.store.Payments()
}

// ConfirmPaid is the mock gateway callback: PENDING becomes PAID, repeat
// calls are no-ops.
func (s *PaymentService) ConfirmPaid(paymentID string) (model.PaymentIntent, error) {
	intent, ok := s.store.MarkPaymentPaid(paymentID, time.Now())
	if !ok {
		return model.PaymentIntent{}, ErrPaymentNotFound
	}
	return intent, nil
}

// PaymentPage is everything the payment page needs to render.
type PaymentPage struct {
	PaymentID       string
	Amount          float64
	Currency        string
	Status          string
	Method          string
	QRData          string
	MerchantName    string
	MerchantBank    string
	MerchantAccount string
	MerchantTaxID   string
}

// Present assembles the page data for a payment intent.
func (s *PaymentService) Present(paymentID string) (PaymentPage, error) {
	intent, ok := s.store.FindPayment(paymentID)
	if !ok {
		return PaymentPage{}, ErrPaymentNotFound
	}

	qrData := intent.PayReference
	if qrData == "" {
		qrData = intent.ID
	}

	return PaymentPage{
		PaymentID:       intent.ID,
		Amount:          intent.Amount,
		Currency:        intent.Currency,
		Status:          intent.Status,
		Method:          intent.Method,
		QRData:          qrData,
		MerchantName:    s.merchant.Name,
		MerchantBank:    s.merchant.Bank,
		MerchantAccount: s.merchant.Account,
		MerchantTaxID:   s.merchant.TaxID,
	}, nil
}

// checkoutAmount is unit price times quantity, rounded to 2 decimals.
// Unparsable price coerces to zero instead of failing the checkout,
// matching the original behavior.
func checkoutAmount(price string, quantity int) float64 {
	p, err := decimal.NewFromString(strings.TrimSpace(price))
	if err != nil {
		p = decimal.Zero
	}
	return p.Mul(decimal.NewFromInt(int64(quantity))).Round(2).InexactFloat64()
}
