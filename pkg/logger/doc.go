// Package logger builds *slog.Logger values from functional options.
//
// New picks a text or JSON handler, applies the minimum level and static
// attributes, and wraps the handler in a decorator that copies values from
// context.Context into every record (see WithContextValue).
//
//	log := logger.New(
//	    logger.WithEnvironment("production", "signupcheck"),
//	    logger.WithOutput(os.Stderr),
//	    logger.WithContextValue("run_id", runIDKey),
//	)
//	log.InfoContext(ctx, "records checked", logger.Count(n))
//
// Attribute helpers in attr.go keep key names consistent. Error and Errors
// return an empty attribute for nil errors, which slog drops, so they can be
// passed without a nil check.
package logger
