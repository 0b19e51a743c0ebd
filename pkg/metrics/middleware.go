package metrics

import "net/http"

// CountRequests increments the total-request counter after each request has
// been served. It sits outside routing and auth so 404s and 401s count too.
func CountRequests(reg *Registry) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r)
			reg.RequestCompleted()
		})
	}
}
