package logger

import (
	"log/slog"
	"strconv"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Error records a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// UserID records the user identifier under the key "user_id".
func UserID(id string) slog.Attr {
	return slog.String("user_id", id)
}

// SessionID records the session identifier under the key "session_id".
func SessionID(id string) slog.Attr {
	return slog.String("session_id", id)
}

// Tier records a package tier under the key "tier".
func Tier(tier any) slog.Attr {
	return slog.Any("tier", tier)
}

// SessionType records the session type under the key "session_type".
func SessionType(t any) slog.Attr {
	return slog.Any("session_type", t)
}

// Resource records a resource name under the key "resource".
func Resource(res any) slog.Attr {
	return slog.Any("resource", res)
}

// Amount records a monetary amount under the key "amount".
func Amount(v int64) slog.Attr {
	return slog.Int64("amount", v)
}

// Tokens records a token quantity under the key "tokens".
func Tokens(v int64) slog.Attr {
	return slog.Int64("tokens", v)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Event records the event name under the key "event".
func Event(name string) slog.Attr {
	return slog.String("event", name)
}

// Duration records a duration under the key "duration".
func Duration(d any) slog.Attr {
	return slog.Any("duration", d)
}
