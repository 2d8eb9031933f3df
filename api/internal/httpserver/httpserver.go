package httpserver

import (
	"context"
	"log"
	"net/http"
	"time"
)

// StartHTTP поднимает /healthz на DefaultServeMux (ListenForWebhook
// телеграм-бота регистрируется там же) и блокируется на ListenAndServe.
func StartHTTP(addr string, check func(ctx context.Context) error) error {
	http.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		if check != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()
			if err := check(ctx); err != nil {
				w.WriteHeader(http.StatusServiceUnavailable)
				_, _ = w.Write([]byte("not ok\n" + err.Error()))
				return
			}
		}
		_, _ = w.Write([]byte("ok"))
	})
	log.Printf("listening on %s", addr)
	return http.ListenAndServe(addr, nil)
}
