package errkind

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify_Wrapped(t *testing.T) {
	assert.Equal(t, Timeout, Classify(fmt.Errorf("listing: %w", context.DeadlineExceeded)))
	assert.Equal(t, Connection, Classify(fmt.Errorf("upload: %w", syscall.ECONNREFUSED)))
	assert.Equal(t, Connection, Classify(&net.OpError{Op: "dial", Err: errors.New("refused")}))
	assert.Equal(t, Unexpected, Classify(&StatusError{Code: 500}))
	assert.Equal(t, Unexpected, Classify(errors.New("bad quantity")))
}

func TestClassify_ClientTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	client := &http.Client{Timeout: 20 * time.Millisecond}
	_, err := client.Get(srv.URL)
	require.Error(t, err)

	assert.Equal(t, Timeout, Classify(err))
}

func TestClassify_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	addr := srv.URL
	srv.Close()

	_, err := http.Get(addr)
	require.Error(t, err)

	assert.Equal(t, Connection, Classify(err))
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "timeout", Timeout.String())
	assert.Equal(t, "connection", Connection.String())
	assert.Equal(t, "unexpected", Unexpected.String())
}
