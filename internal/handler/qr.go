package handler

import (
	"log/slog"
	"net/http"

	qrcode "github.com/skip2/go-qrcode"
)

const qrSize = 256

func QRImageHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data := r.URL.Query().Get("data")
		if data == "" {
			writeError(w, http.StatusBadRequest, "missing data")
			return
		}

		png, err := qrcode.Encode(data, qrcode.Medium, qrSize)
		if err != nil {
			slog.Error("qr encode failed", "error", err)
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		w.Header().Set("Content-Type", "image/png")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(png); err != nil {
			slog.Error("qr write failed", "error", err)
		}
	}
}
