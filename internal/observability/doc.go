// Package observability provides logging, metrics, and request-context
// support for the paper check service.
//
// # Logging
//
// Create a logger from configuration:
//
//	logger := observability.NewLogger(observability.LoggingConfig{
//	    Level:  "info",
//	    Format: "json",
//	    Output: "stdout",
//	})
//	logger.Info().Str("paper", paperCode).Msg("validation started")
//
// # Metrics
//
//	metrics := observability.NewMetrics("paper_check", prometheus.DefaultRegisterer)
//	metrics.RecordValidation(summary.OK, elapsed)
//
// # Context Helpers
//
//	ctx = observability.WithRunID(ctx, runID)
//	runID := observability.RunIDFromContext(ctx)
//
// All components are safe for concurrent use from multiple goroutines.
package observability
