package session

import "time"

// TimeCarrier is implemented by provider-specific timestamp wrappers that
// can surface their value as a time.Time.
type TimeCarrier interface {
	Time() time.Time
}

// epochMillisThreshold separates second-resolution epoch values from
// millisecond-resolution ones. Anything above it is treated as millis.
const epochMillisThreshold = int64(1) << 40

// ToInstantAt normalizes the timestamp shapes found in stored session data
// to a single UTC instant: time.Time, RFC 3339 strings, date-only strings,
// numeric epoch values (seconds or milliseconds) and TimeCarrier wrappers.
//
// Unrecognized or malformed values fall back to the supplied reference
// time. The fallback keeps reads total but silently masks bad data; callers
// that care should validate shapes before storing.
func ToInstantAt(v any, now time.Time) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t.UTC()
	case *time.Time:
		if t != nil {
			return t.UTC()
		}
	case TimeCarrier:
		return t.Time().UTC()
	case string:
		for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02"} {
			if parsed, err := time.Parse(layout, t); err == nil {
				return parsed.UTC()
			}
		}
	case int64:
		return epochToInstant(t)
	case int:
		return epochToInstant(int64(t))
	case float64:
		return epochToInstant(int64(t))
	}
	return now.UTC()
}

// ToInstant is ToInstantAt with the current time as fallback.
func ToInstant(v any) time.Time {
	return ToInstantAt(v, time.Now())
}

func epochToInstant(v int64) time.Time {
	if v > epochMillisThreshold {
		return time.UnixMilli(v).UTC()
	}
	return time.Unix(v, 0).UTC()
}
