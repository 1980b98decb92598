// Package logger builds the slog loggers used by the bridge.
//
// Loggers write JSON records and can enrich every record with values taken
// from the context, such as the portlet window being rendered:
//
//	log := logger.New(slog.LevelInfo, logger.WindowIDExtractor())
//
//	ctx := logger.WithWindowID(ctx, "_books_WAR_app_")
//	log.WarnContext(ctx, "invalid keyword after 'portlet:'", slog.String("url", raw))
//	// {"level":"WARN","msg":"invalid keyword after 'portlet:'","url":"portlet:foo","window_id":"_books_WAR_app_"}
//
// NewWithSentry additionally forwards warnings and errors to Sentry. With
// an empty DSN, or when the SDK fails to start, it logs to stderr only.
//
// NewNope returns a logger that drops everything; it is the default of
// every component that accepts a logger option.
package logger
