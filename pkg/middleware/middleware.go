package middleware

import "net/http"

// RoundTripperFunc позволяет использовать функцию как http.RoundTripper.
type RoundTripperFunc func(req *http.Request) (*http.Response, error)

func (f RoundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

// Middleware оборачивает транспорт HTTP-клиента.
type Middleware func(next http.RoundTripper) http.RoundTripper

// Chain применяет middlewares так, что первый в списке выполняется первым.
func Chain(base http.RoundTripper, middlewares ...Middleware) http.RoundTripper {
	if base == nil {
		base = http.DefaultTransport
	}
	for i := len(middlewares) - 1; i >= 0; i-- {
		base = middlewares[i](base)
	}
	return base
}
