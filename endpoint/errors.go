package endpoint

import "errors"

/* Sentinel errors for the ownership and existence checks.
 * Handlers map these to 404/403; everything else is a store failure
 * and surfaces as 500.
 */

// ErrNotFound is returned when no endpoint exists for the given id or token.
// Lookups by token deliberately do not distinguish "deleted" from "never
// existed" so anonymous senders cannot probe endpoint lifecycles.
var ErrNotFound = errors.New("endpoint not found")

// ErrForbidden is returned when the endpoint exists but belongs to a
// different owner than the caller.
var ErrForbidden = errors.New("endpoint belongs to another owner")
