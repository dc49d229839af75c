/*
Package metrics provides Prometheus instrumentation for the API
client. It is internal: applications opt in through
Client.EnableMetrics and never import this package directly.

# Overview

A Collector owns four metric vectors, created through a promauto
factory bound to the registerer the caller supplies. Passing
prometheus.DefaultRegisterer exposes them alongside the application's
own metrics; passing nil keeps them entirely private, so an embedded
client never pollutes a registry it does not own.

# Metrics

  - api_requests_total: counter by resource/method/status, with the
    status folded to 2xx/3xx/4xx/5xx.
  - api_request_duration_seconds: histogram by resource/method with
    buckets sized for model inference latencies.
  - api_request_errors_total: counter by resource and error code.
  - api_tokens_used_total: counter by model and token type
    (prompt, completion).
*/
package metrics
