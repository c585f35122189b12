// Package logger wraps log/slog with functional options, attribute helper
// constructors, and transparent injection of context values into records.
//
// New builds a *slog.Logger from Option values: output format (text or
// json), minimum level, static attributes stamped on every record, and
// ContextExtractor callbacks that pull request-scoped values (a user id,
// a request id) out of the context at log time.
//
// Attribute helpers in attr.go keep key naming consistent across the
// codebase: logger.UserID, logger.SessionID, logger.Tier, logger.Amount
// and friends.
//
// Usage:
//
//	log := logger.New(
//		logger.WithEnvironment(os.Getenv("APP_ENV"), "ubora"),
//		logger.WithContextValue("request_id", requestIDKey),
//	)
//
//	svc := session.NewService(store, cat, session.WithLogger(log))
package logger
