package common

import (
	"context"
	"log/slog"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/teemow/meetfewer/internal/instrumentation"
	"github.com/teemow/meetfewer/internal/logging"
	"github.com/teemow/meetfewer/internal/server"
)

// InstrumentedToolHandler wraps a tool handler with tracing and metrics.
// Each invocation runs inside its own span, and the outcome is recorded
// against the tool name and, when detailed labels are enabled, the account.
//
// Usage:
//
//	s.AddTool(myTool, common.InstrumentedToolHandler("my_tool", sc, handler))
func InstrumentedToolHandler(
	toolName string,
	sc *server.ServerContext,
	handler func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error),
) func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		metrics := sc.Metrics()
		if metrics == nil {
			return handler(ctx, request)
		}

		spanCtx, span := instrumentation.StartToolSpan(ctx, toolName)
		defer span.End()

		account := GetAccountFromArgs(request.GetArguments())

		start := time.Now()
		result, err := handler(spanCtx, request)
		duration := time.Since(start)

		status := instrumentation.StatusSuccess
		if err != nil || (result != nil && result.IsError) {
			status = instrumentation.StatusError
			if err != nil {
				instrumentation.SetSpanError(span, err)
			}
		} else {
			instrumentation.SetSpanSuccess(span)
		}

		metrics.RecordToolInvocationWithAccount(spanCtx, toolName, status, account, duration)
		logging.WithTool(slog.Default(), toolName).Debug("tool invocation complete",
			logging.Status(status),
			slog.Duration(logging.KeyDuration, duration),
		)

		return result, err
	}
}
