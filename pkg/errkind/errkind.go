// Package errkind классифицирует ошибки синхронизации для логирования на верхнем уровне.
package errkind

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"syscall"
)

type Kind int

const (
	Unexpected Kind = iota
	Timeout
	Connection
)

func (k Kind) String() string {
	switch k {
	case Timeout:
		return "timeout"
	case Connection:
		return "connection"
	default:
		return "unexpected"
	}
}

// StatusError описывает ответ площадки с кодом, отличным от 2xx.
type StatusError struct {
	Method   string
	Endpoint string
	Code     int
	Body     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: unexpected status code %d: %s", e.Method, e.Endpoint, e.Code, e.Body)
}

func Classify(err error) Kind {
	if err == nil {
		return Unexpected
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return Timeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return Timeout
	}

	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return Unexpected
	}

	var opErr *net.OpError
	var dnsErr *net.DNSError
	switch {
	case errors.As(err, &opErr),
		errors.As(err, &dnsErr),
		errors.Is(err, syscall.ECONNREFUSED),
		errors.Is(err, syscall.ECONNRESET),
		errors.Is(err, io.ErrUnexpectedEOF):
		return Connection
	}

	return Unexpected
}
