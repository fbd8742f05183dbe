package endpoint

import "context"

/* Small, focused interfaces following "The Go Way"
 * Interfaces abstract behavior, not things
 * Written for users of the API, not just for testing
 */

// Reader provides read operations for endpoints
type Reader interface {
	/* Context is always the first parameter in functions that do I/O
	 * This allows for cancellation, timeouts, and shared values
	 */
	Get(ctx context.Context, id string) (Endpoint, error)
	/* GetByToken resolves the routing secret used by anonymous webhook
	 * deliveries. Returns ErrNotFound for unknown tokens.
	 */
	GetByToken(ctx context.Context, token string) (Endpoint, error)
	ListByOwner(ctx context.Context, ownerID string) ([]Endpoint, error)
}

// Writer provides write operations for endpoints
type Writer interface {
	Insert(ctx context.Context, e Endpoint) error
	Delete(ctx context.Context, id string) error
}

/* Interface composition - combining small interfaces into larger ones
 * This is preferred over large monolithic interfaces
 */
type Repository interface {
	Reader
	Writer
	Close(ctx context.Context) error
}

/* RequestPurger is the slice of the request store the delete cascade needs.
 * Declared here, on the consumer side, so this package does not depend on
 * the capture package. capture/redis.Repository satisfies it.
 */
type RequestPurger interface {
	/* PageKeysByEndpoint returns up to limit opaque request keys for the
	 * endpoint plus a continuation cursor; an empty cursor means no
	 * further pages. Keys go back into DeleteBatch unmodified.
	 */
	PageKeysByEndpoint(ctx context.Context, endpointID, cursor string, limit int) ([]string, string, error)
	/* DeleteBatch removes up to the store's batch ceiling of requests
	 * in one call. Callers must respect the ceiling.
	 */
	DeleteBatch(ctx context.Context, endpointID string, keys []string) error
}
