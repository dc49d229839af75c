// Package observability wires API requests into OpenTelemetry.
//
// Attach it to a client and every request runs inside its own span,
// named after the resource it touches, with request totals, error
// totals, in-flight counts, latencies and token usage recorded
// against the global meter provider:
//
//	obs, err := observability.NewMetrics()
//	if err != nil {
//		return err
//	}
//	client.SetObservability(obs)
//
// The package creates instruments only; exporting is the
// application's business, configured through the usual otel SDK
// setup.
package observability
