// Package network provides the HTTP client shared by every outbound request of the application.
package network

import (
	"net/http"
	"time"
)

// Client is the HTTP client used to reach python.org.
// The release helper makes a single request per run, so the pool is kept small.
var Client = &http.Client{
	Timeout:   time.Minute,
	Transport: newTransport(),
}

// newTransport clones the default transport with bounded idle pooling and header timeouts.
func newTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = 4
	t.MaxIdleConnsPerHost = 2
	t.IdleConnTimeout = 30 * time.Second
	t.ResponseHeaderTimeout = 30 * time.Second
	t.ExpectContinueTimeout = 30 * time.Second
	return t
}
