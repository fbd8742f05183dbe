package capture

import "context"

/* DeleteBatchLimit is the maximum number of requests the store removes
 * in a single DeleteBatch call. The delete cascade sizes its pages to
 * this ceiling so every page maps to one batch-delete.
 */
const DeleteBatchLimit = 25

// Reader provides paginated read access to captured requests
type Reader interface {
	/* PageByEndpoint returns up to limit requests for the endpoint in
	 * capture order, plus an opaque continuation cursor. Pass the
	 * cursor back to fetch the next page; an empty returned cursor
	 * means there are no further pages. An empty input cursor starts
	 * from the beginning.
	 */
	PageByEndpoint(ctx context.Context, endpointID, cursor string, limit int) ([]Request, string, error)
}

// Writer provides the append-only capture path
type Writer interface {
	Append(ctx context.Context, req Request) error
}

/* Purger provides the bulk-deletion primitives the endpoint cascade
 * drives. Same cursor semantics as Reader, but opaque keys only - the
 * cascade never needs full records in memory.
 */
type Purger interface {
	PageKeysByEndpoint(ctx context.Context, endpointID, cursor string, limit int) ([]string, string, error)
	/* DeleteBatch removes at most DeleteBatchLimit requests per call
	 * and fails fast on oversized batches. Deleting an already-deleted
	 * key is not an error, which keeps retried cascades idempotent.
	 */
	DeleteBatch(ctx context.Context, endpointID string, keys []string) error
}

type Repository interface {
	Reader
	Writer
	Purger
	Close(ctx context.Context) error
}
