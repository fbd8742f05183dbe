package capture

import "time"

/* Request is a single captured webhook delivery
 * Append-only: a request is never mutated after capture and is only
 * removed in bulk when its endpoint is deleted
 */
type Request struct {
	ID         string
	EndpointID string
	Method     string
	// Headers holds one value per header name; duplicate names in the
	// inbound delivery collapse last-write-wins.
	Headers   map[string]string
	Body      string
	CreatedAt time.Time
}
