package timeutil

import "time"

// protocolLayout is the gateway's RequestTime format: sender-local wall
// clock, second resolution, no zone designator.
const protocolLayout = "2006-01-02T15:04:05"

// Now returns the current time in UTC
// Always use this instead of time.Now() to ensure timezone consistency
func Now() time.Time {
	return time.Now().UTC()
}

// ProtocolTimestamp renders t in the gateway's RequestTime representation.
// The protocol wants the sender's local clock, so t is formatted as given,
// not converted to UTC.
func ProtocolTimestamp(t time.Time) string {
	return t.Format(protocolLayout)
}

// ToUTC converts a time.Time to UTC if it isn't already
func ToUTC(t time.Time) time.Time {
	return t.UTC()
}
