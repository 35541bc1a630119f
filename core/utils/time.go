package utils

import "time"

// NowUTC returns the current time truncated to seconds in UTC. Timestamps
// persisted to the audit log all go through here.
func NowUTC() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}
