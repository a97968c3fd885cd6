// Package server provides the MCP server context, health checks and the
// dedicated metrics listener.
//
// ServerContext manages Google Calendar clients with lazy initialization and
// caching. It supports multiple accounts through the google.TokenProvider
// abstraction, so one server instance can answer availability questions for
// several authorized accounts.
//
// HealthChecker serves Kubernetes-style liveness and readiness probes.
// MetricsServer exposes Prometheus metrics on a port separate from the MCP
// transport.
package server
