// Package logger builds *slog.Logger instances with functional options,
// context attribute injection and optional redaction of sensitive values.
//
// New selects slog.NewJSONHandler or slog.NewTextHandler, optionally wraps it
// with redact.NewHandler, applies static attributes and finally wraps the
// result in a ContextHandler that runs every registered ContextExtractor on
// each record.
//
//	log := logger.New(
//	    logger.WithEnvironment(os.Getenv("APP_ENV"), "cms"),
//	    logger.WithContextValue("request_id", requestIDKey),
//	    logger.WithRedaction("pin"),
//	)
//	log.InfoContext(ctx, "project config applied", logger.Document("project.yaml"))
//
// WithEnvironment picks text output at debug level for development and JSON at
// info level for staging and production, where redaction is always enabled.
//
// Attribute helpers (Error, Errors, Document, Path, Queue, JobID, …) keep key
// names consistent across packages. Error and Errors return an empty Attr for
// nil errors so they can be passed unconditionally.
package logger
