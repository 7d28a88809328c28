package handler

import "net/http"

// SecurityHeaders adds security response headers (X-Frame-Options, nosniff, etc.)
// The CSP allows the embedded site's own script and stylesheet only.
func SecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		h.Set("X-XSS-Protection", "0")
		h.Set("Content-Security-Policy", "default-src 'self'; script-src 'self'; connect-src 'self' https:; frame-ancestors 'none'")
		next.ServeHTTP(w, r)
	})
}
