// Package instrumentation provides OpenTelemetry instrumentation for the
// meetfewer CLI and MCP server.
//
// This package enables production-grade observability through:
//   - OpenTelemetry metrics for suggestion requests, Google API calls and MCP tools
//   - Distributed tracing for request flows and API calls
//   - Prometheus metrics export via /metrics endpoint on a dedicated port
//   - OTLP export support for modern observability platforms
//
// # Metrics
//
// The package exposes the following metric categories:
//
// Suggestion Metrics:
//   - suggest_requests_total: Counter of suggestion requests by status
//   - suggest_request_duration_seconds: Histogram of end-to-end suggestion durations
//   - suggest_slots_returned: Histogram of slots returned per request
//   - suggest_candidates_found: Histogram of eligible candidates per request
//
// Google API Metrics:
//   - google_api_operations_total: Counter of Google API operations by operation, status
//   - google_api_operation_duration_seconds: Histogram of Google API operation durations
//
// OAuth Authentication Metrics:
//   - oauth_auth_total: Counter of OAuth authentication events by result
//   - oauth_token_refresh_total: Counter of token refresh attempts by result
//
// MCP Tool Metrics:
//   - mcp_tool_invocations_total: Counter of MCP tool invocations by tool name and status
//   - mcp_tool_duration_seconds: Histogram of MCP tool execution durations
//
// HTTP Metrics (serve command):
//   - http_requests_total, http_request_duration_seconds
//
// # Tracing
//
// Distributed tracing spans are created for:
//   - Suggestion requests (schedule.suggest_slots)
//   - MCP tool invocations (tool.<name>)
//   - Google API calls (google.calendar.<operation>)
//
// # Configuration
//
// Instrumentation can be configured via environment variables:
//   - INSTRUMENTATION_ENABLED: Enable/disable instrumentation (default: true)
//   - METRICS_EXPORTER: Metrics exporter type (prometheus, otlp, stdout, default: prometheus)
//   - TRACING_EXPORTER: Tracing exporter type (otlp, stdout, none, default: none)
//   - OTEL_EXPORTER_OTLP_ENDPOINT: OTLP endpoint for traces/metrics
//   - OTEL_TRACES_SAMPLER_ARG: Sampling rate (0.0 to 1.0, default: 0.1)
//   - OTEL_SERVICE_NAME: Service name (default: meetfewer)
//
// # Example Usage
//
//	provider, err := instrumentation.NewProvider(ctx, instrumentation.DefaultConfig())
//	if err != nil {
//		return err
//	}
//	defer provider.Shutdown(ctx)
//
//	recorder := provider.Metrics()
//	recorder.RecordSuggestion(ctx, instrumentation.StatusSuccess, 3, 42, time.Since(start))
package instrumentation
