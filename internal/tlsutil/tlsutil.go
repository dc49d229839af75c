// Package tlsutil builds the hardened HTTP transport every client in
// this module rides on. TLS 1.2+, AEAD-only cipher suites.
package tlsutil

import (
	"crypto/tls"
	"net"
	"net/http"
	"time"
)

// aeadCipherSuites is the TLS 1.2 allow-list. TLS 1.3 suites are not
// configurable and are always AEAD.
var aeadCipherSuites = []uint16{
	tls.TLS_ECDHE_ECDSA_WITH_AES_256_GCM_SHA384,
	tls.TLS_ECDHE_RSA_WITH_AES_256_GCM_SHA384,
	tls.TLS_ECDHE_ECDSA_WITH_AES_128_GCM_SHA256,
	tls.TLS_ECDHE_RSA_WITH_AES_128_GCM_SHA256,
	tls.TLS_ECDHE_ECDSA_WITH_CHACHA20_POLY1305,
	tls.TLS_ECDHE_RSA_WITH_CHACHA20_POLY1305,
}

// DefaultTLSConfig returns the TLS settings used for API connections.
// The returned config owns its cipher suite slice.
func DefaultTLSConfig() *tls.Config {
	return &tls.Config{
		MinVersion:   tls.VersionTLS12,
		CipherSuites: append([]uint16(nil), aeadCipherSuites...),
	}
}

// SecureTransport returns a pooled transport for a client that talks
// to one API host for its whole lifetime, so the per-host idle pool
// is sized up from the stdlib default. Proxy settings come from the
// environment.
func SecureTransport() *http.Transport {
	return &http.Transport{
		Proxy:           http.ProxyFromEnvironment,
		TLSClientConfig: DefaultTLSConfig(),
		DialContext: (&net.Dialer{
			Timeout:   30 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		MaxIdleConnsPerHost:   32,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}
}

// SecureHTTPClient returns an http.Client over SecureTransport. A
// zero timeout sets no client deadline; cancellation then comes from
// each request's context.
func SecureHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout:   timeout,
		Transport: SecureTransport(),
	}
}
