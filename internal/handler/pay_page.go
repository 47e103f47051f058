package handler

import (
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"comanda/internal/service"
)

var payPageTmpl = template.Must(template.New("pay").Parse(`<!doctype html>
<html lang="es">
<head><meta charset="utf-8"><title>Pago QR</title></head>
<body>
  <h1>{{.MerchantName}}</h1>
  <p>{{.MerchantBank}} — Cuenta {{.MerchantAccount}} — NIT {{.MerchantTaxID}}</p>
  <h2>Total: {{printf "%.2f" .Amount}} {{.Currency}}</h2>
  <img src="/qr?data={{.QRDataEscaped}}" alt="QR" width="256" height="256">
  <p>Pago: <strong id="status">{{.Status}}</strong></p>
  <button id="paid" onclick="markPaid()">Ya pagué</button>
  <script>
    async function markPaid() {
      const res = await fetch("/api/payments/{{.PaymentID}}/paid", {method: "POST"});
      const data = await res.json().catch(() => ({ok: false}));
      if (data.ok) document.getElementById("status").textContent = data.status;
    }
  </script>
</body>
</html>
`))

type payPageData struct {
	service.PaymentPage
	QRDataEscaped string
}

func PaymentPageHandler(paymentSvc *service.PaymentService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		paymentID := chi.URLParam(r, "paymentID")

		page, err := paymentSvc.Present(paymentID)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrPaymentNotFound):
				http.Error(w, "payment not found", http.StatusNotFound)
			default:
				slog.Error("payment page failed", "error", err)
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		data := payPageData{
			PaymentPage:   page,
			QRDataEscaped: url.QueryEscape(page.QRData),
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := payPageTmpl.Execute(w, data); err != nil {
			slog.Error("render payment page failed", "error", err)
		}
	}
}
