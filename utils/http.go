// utils/http.go
package utils

import (
	"net/http"
	"time"
)

// DefaultRemoteTimeout bounds every call to the shared trial store.
const DefaultRemoteTimeout = 5 * time.Second

// NewHTTPClient returns a client with the given timeout, or the default when zero.
func NewHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = DefaultRemoteTimeout
	}
	return &http.Client{Timeout: timeout}
}
