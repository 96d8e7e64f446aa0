package http

import "net/http"

const (
	allowedOrigin  = "*"
	allowedMethods = "OPTIONS, POST"
)

// withCORS lets the browser form read import responses, successful or not.
func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", allowedOrigin)
		w.Header().Set("Access-Control-Allow-Methods", allowedMethods)
		next.ServeHTTP(w, r)
	})
}
