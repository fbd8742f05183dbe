package endpoint

import "time"

/* Endpoint represents an inbound webhook inbox owned by a single user
 * Uses value semantics as it represents data, not behavior
 */
type Endpoint struct {
	ID      string
	OwnerID string
	// Token is the routing secret embedded in the public webhook URL.
	// It is the only credential admitting anonymous deliveries, so it
	// must be generated from a cryptographic random source.
	Token     string
	CreatedAt time.Time
}
