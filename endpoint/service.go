package endpoint

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

/* Service represents the business logic layer
 * Uses pointer semantics as it's an API, not data
 */

/* purgeBatchSize matches the request store's delete-batch ceiling.
 * Pages and batches share the size so each page maps to exactly one
 * batch-delete call.
 */
const purgeBatchSize = 25

// UseCase defines the business operations for endpoint management
type UseCase interface {
	Create(ctx context.Context, ownerID string) (Endpoint, error)
	List(ctx context.Context, ownerID string) ([]Endpoint, error)
	/* Authorize loads an endpoint and enforces ownership.
	 * Returns ErrNotFound when the endpoint does not exist and
	 * ErrForbidden when it belongs to a different owner.
	 */
	Authorize(ctx context.Context, ownerID, id string) (Endpoint, error)
	Delete(ctx context.Context, ownerID, id string) error
}

type Service struct {
	Repo     Repository
	Requests RequestPurger
}

// NewService creates a new endpoint service with dependency injection
func NewService(repo Repository, requests RequestPurger) *Service {
	return &Service{
		Repo:     repo,
		Requests: requests,
	}
}

// Create provisions a new endpoint for the given owner
func (s *Service) Create(ctx context.Context, ownerID string) (Endpoint, error) {
	/* uuid.NewString draws from crypto/rand, which keeps the token
	 * unguessable - it is the only credential on the capture path
	 */
	e := Endpoint{
		ID:        uuid.NewString(),
		OwnerID:   ownerID,
		Token:     uuid.NewString(),
		CreatedAt: time.Now(),
	}

	if err := s.Repo.Insert(ctx, e); err != nil {
		return Endpoint{}, fmt.Errorf("inserting endpoint: %w", err)
	}

	return e, nil
}

// List returns every endpoint owned by ownerID, in store order
func (s *Service) List(ctx context.Context, ownerID string) ([]Endpoint, error) {
	endpoints, err := s.Repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("listing endpoints: %w", err)
	}
	return endpoints, nil
}

// Authorize loads the endpoint and checks it belongs to ownerID
func (s *Service) Authorize(ctx context.Context, ownerID, id string) (Endpoint, error) {
	e, err := s.Repo.Get(ctx, id)
	if err != nil {
		return Endpoint{}, err
	}
	if e.OwnerID != ownerID {
		return Endpoint{}, ErrForbidden
	}
	return e, nil
}

/* Delete removes an endpoint and every request captured for it.
 *
 * The cascade pages through request IDs and batch-deletes one page at a
 * time, children before parent: a crash mid-cascade leaves the endpoint
 * row in place with residual requests, and re-invoking Delete with the
 * same arguments resumes and finishes the job. The reverse ordering
 * would leave requests dangling under an endpoint that no longer exists.
 *
 * There is no transaction here. The store's batch primitives are not
 * transactional, so correctness rests on resumability: transient store
 * failures propagate to the caller, who retries by calling Delete again.
 */
func (s *Service) Delete(ctx context.Context, ownerID, id string) error {
	e, err := s.Authorize(ctx, ownerID, id)
	if err != nil {
		return err
	}

	for {
		/* Always page from the start: the previous page was just
		 * deleted, so the first page is always the next unprocessed
		 * one. This is also what makes an interrupted cascade
		 * trivially resumable.
		 */
		keys, cursor, err := s.Requests.PageKeysByEndpoint(ctx, e.ID, "", purgeBatchSize)
		if err != nil {
			return fmt.Errorf("paging requests for delete: %w", err)
		}

		if len(keys) > 0 {
			if err := s.Requests.DeleteBatch(ctx, e.ID, keys); err != nil {
				return fmt.Errorf("batch-deleting requests: %w", err)
			}
		}

		// Done once a short page arrives with no continuation cursor
		if len(keys) < purgeBatchSize && cursor == "" {
			break
		}
	}

	if err := s.Repo.Delete(ctx, e.ID); err != nil {
		return fmt.Errorf("deleting endpoint: %w", err)
	}

	return nil
}
