package openai

import (
	"net/http"
	"net/url"
	"time"
)

// DefaultBaseURL is the API root every Config starts from.
const DefaultBaseURL = "https://api.openai.com/v1/"

// Config carries the connection settings shared by every request a
// Client makes. It is a value type: the WithX setters return an
// updated copy and never mutate the receiver, so a Config handed to
// NewClient cannot change underneath it.
type Config struct {
	apiKey       string
	baseURL      *url.URL
	headers      http.Header
	organization string
	timeout      time.Duration
}

// NewConfig returns a Config for the given API key, pointing at
// DefaultBaseURL with no extra headers and no organization.
func NewConfig(apiKey string) Config {
	return Config{
		apiKey:  apiKey,
		baseURL: mustParseURL(DefaultBaseURL),
		headers: http.Header{},
	}
}

// WithBaseURL points the Config at a different API root, usually a
// proxy or a compatible self-hosted endpoint. A nil URL is ignored so
// the base URL is always valid.
func (c Config) WithBaseURL(base *url.URL) Config {
	if base != nil {
		u := *base
		c.baseURL = &u
	}
	return c
}

// WithHeaders replaces the extra headers sent with every request.
// The map is cloned, later mutation of the argument does not leak in.
func (c Config) WithHeaders(h http.Header) Config {
	c.headers = h.Clone()
	if c.headers == nil {
		c.headers = http.Header{}
	}
	return c
}

// WithHeader adds a single extra header to every request.
func (c Config) WithHeader(key, value string) Config {
	h := c.headers.Clone()
	if h == nil {
		h = http.Header{}
	}
	h.Add(key, value)
	c.headers = h
	return c
}

// WithOrganization sets the OpenAI-Organization header value for
// accounts that belong to multiple organizations.
func (c Config) WithOrganization(org string) Config {
	c.organization = org
	return c
}

// WithTimeout bounds each request end to end. Zero, the default,
// leaves timeout policy to the transport and the caller's context.
func (c Config) WithTimeout(d time.Duration) Config {
	c.timeout = d
	return c
}

// APIKey returns the configured API key.
func (c Config) APIKey() string { return c.apiKey }

// BaseURL returns a copy of the configured API root.
func (c Config) BaseURL() *url.URL {
	if c.baseURL == nil {
		return mustParseURL(DefaultBaseURL)
	}
	u := *c.baseURL
	return &u
}

// Headers returns a copy of the extra headers.
func (c Config) Headers() http.Header {
	if c.headers == nil {
		return http.Header{}
	}
	return c.headers.Clone()
}

// Organization returns the configured organization ID.
func (c Config) Organization() string { return c.organization }

// Timeout returns the configured per-request timeout.
func (c Config) Timeout() time.Duration { return c.timeout }

func mustParseURL(raw string) *url.URL {
	u, err := url.Parse(raw)
	if err != nil {
		panic("openai: invalid base URL " + raw + ": " + err.Error())
	}
	return u
}
