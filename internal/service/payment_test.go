package service_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"comanda/internal/config"
	"comanda/internal/model"
	"comanda/internal/service"
	"comanda/internal/store"
)

var testMerchant = config.Merchant{
	Name:    "La Comanda",
	Bank:    "Banco Unión",
	Account: "10000012345",
	TaxID:   "1023456011",
}

func newPaymentFixture(t *testing.T) (*service.OrderService, *service.PaymentService, *store.Store) {
	t.Helper()
	st := newTestStore(t, t.TempDir())
	return service.NewOrderService(st, nil), service.NewPaymentService(st, testMerchant), st
}

func TestCheckoutAmount(t *testing.T) {
	orderSvc, paymentSvc, _ := newPaymentFixture(t)

	order, err := orderSvc.Create("silpancho", "3", "", "12.50")
	require.NoError(t, err)

	intent, err := paymentSvc.Checkout(order.ID, model.MethodQR, false, "", "")
	require.NoError(t, err)
	require.InDelta(t, 37.50, intent.Amount, 1e-9)
	require.Equal(t, config.Currency, intent.Currency)
	require.Equal(t, model.PaymentPending, intent.Status)
	require.Len(t, intent.ID, 12)
}

func TestCheckoutUnparsablePriceChargesZero(t *testing.T) {
	orderSvc, paymentSvc, _ := newPaymentFixture(t)

	order, err := orderSvc.Create("misterio", "2", "", "abc")
	require.NoError(t, err)

	intent, err := paymentSvc.Checkout(order.ID, model.MethodCard, false, "", "")
	require.NoError(t, err)
	require.Equal(t, 0.0, intent.Amount)
}

func TestCheckoutValidation(t *testing.T) {
	orderSvc, paymentSvc, _ := newPaymentFixture(t)

	order, err := orderSvc.Create("salteña", "1", "", "8")
	require.NoError(t, err)

	_, err = paymentSvc.Checkout("", model.MethodQR, false, "", "")
	require.ErrorIs(t, err, service.ErrMissingOrderID)

	_, err = paymentSvc.Checkout(order.ID, "crypto", false, "", "")
	require.ErrorIs(t, err, service.ErrInvalidMethod)

	_, err = paymentSvc.Checkout("no-such-order", model.MethodQR, false, "", "")
	require.ErrorIs(t, err, service.ErrOrderNotFound)
}

func TestCheckoutCashIssuesVoucher(t *testing.T) {
	orderSvc, paymentSvc, _ := newPaymentFixture(t)

	order, err := orderSvc.Create("Pollo broaster", "2", "", "25")
	require.NoError(t, err)

	intent, err := paymentSvc.Checkout(order.ID, model.MethodCash, false, "", "")
	require.NoError(t, err)
	require.InDelta(t, 50.00, intent.Amount, 1e-9)
	require.Len(t, intent.Voucher, 6)
	require.NotNil(t, intent.ExpiresAt)
	require.WithinDuration(t, time.Now().Add(time.Hour), *intent.ExpiresAt, 5*time.Second)
}

func TestCheckoutQRIssuesPayReference(t *testing.T) {
	orderSvc, paymentSvc, _ := newPaymentFixture(t)

	order, err := orderSvc.Create("salteña", "1", "", "8")
	require.NoError(t, err)

	intent, err := paymentSvc.Checkout(order.ID, model.MethodQR, false, "", "")
	require.NoError(t, err)
	require.Len(t, intent.PayReference, 16)
	require.Empty(t, intent.Voucher)
	require.Nil(t, intent.ExpiresAt)
}

func TestCheckoutInvoiceFieldsOnlyWhenRequested(t *testing.T) {
	orderSvc, paymentSvc, _ := newPaymentFixture(t)

	order, err := orderSvc.Create("silpancho", "1", "", "25")
	require.NoError(t, err)

	plain, err := paymentSvc.Checkout(order.ID, model.MethodCash, false, "123456", "ACME SRL")
	require.NoError(t, err)
	require.Empty(t, plain.TaxID)
	require.Empty(t, plain.BusinessName)

	invoiced, err := paymentSvc.Checkout(order.ID, model.MethodCash, true, "123456", "ACME SRL")
	require.NoError(t, err)
	require.Equal(t, "123456", invoiced.TaxID)
	require.Equal(t, "ACME SRL", invoiced.BusinessName)
}

func TestCheckoutDoesNotTouchQueue(t *testing.T) {
	orderSvc, paymentSvc, _ := newPaymentFixture(t)

	order, err := orderSvc.Create("salteña", "1", "", "8")
	require.NoError(t, err)

	_, err = paymentSvc.Checkout(order.ID, model.MethodQR, false, "", "")
	require.NoError(t, err)

	orders := orderSvc.List()
	require.Len(t, orders, 1)
	require.Equal(t, order.ID, orders[0].ID)
}

func TestConfirmPaid(t *testing.T) {
	orderSvc, paymentSvc, _ := newPaymentFixture(t)

	order, err := orderSvc.Create("salteña", "1", "", "8")
	require.NoError(t, err)
	intent, err := paymentSvc.Checkout(order.ID, model.MethodQR, false, "", "")
	require.NoError(t, err)

	paid, err := paymentSvc.ConfirmPaid(intent.ID)
	require.NoError(t, err)
	require.Equal(t, model.PaymentPaid, paid.Status)
	require.True(t, paid.UpdatedAt.After(paid.CreatedAt) || paid.UpdatedAt.Equal(paid.CreatedAt))

	again, err := paymentSvc.ConfirmPaid(intent.ID)
	require.NoError(t, err)
	require.Equal(t, paid.UpdatedAt, again.UpdatedAt)

	_, err = paymentSvc.ConfirmPaid("ghost")
	require.ErrorIs(t, err, service.ErrPaymentNotFound)
}

func TestPresent(t *testing.T) {
	orderSvc, paymentSvc, _ := newPaymentFixture(t)

	order, err := orderSvc.Create("silpancho", "2", "", "25")
	require.NoError(t, err)
	intent, err := paymentSvc.Checkout(order.ID, model.MethodQR, false, "", "")
	require.NoError(t, err)

	page, err := paymentSvc.Present(intent.ID)
	require.NoError(t, err)
	require.Equal(t, intent.ID, page.PaymentID)
	require.InDelta(t, 50.00, page.Amount, 1e-9)
	require.Equal(t, config.Currency, page.Currency)
	require.Equal(t, intent.PayReference, page.QRData)
	require.Equal(t, testMerchant.Name, page.MerchantName)
	require.Equal(t, testMerchant.Account, page.MerchantAccount)

	_, err = paymentSvc.Present("ghost")
	require.ErrorIs(t, err, service.ErrPaymentNotFound)
}
