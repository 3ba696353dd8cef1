package interfaces

import "time"

// Clock provides the current time. Injecting it lets tests control cache
// timestamps and TTL expiry deterministically.
type Clock interface {
	Now() time.Time
}
