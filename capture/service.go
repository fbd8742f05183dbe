package capture

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hookvault/hookvault/endpoint"
)

/* Service is the capture path: it resolves an inbound routing token to
 * its endpoint and appends one request record per delivery.
 *
 * There is no authentication here. The token is the sole admission
 * control, which is why endpoint tokens come from a cryptographic
 * random source.
 */

// Delivery carries the raw parts of an inbound webhook call
type Delivery struct {
	Method  string
	Headers map[string]string
	Body    string
}

// UseCase defines the business operations for captured requests
type UseCase interface {
	Capture(ctx context.Context, token string, d Delivery) (Request, error)
	ListByEndpoint(ctx context.Context, endpointID, cursor string, limit int) ([]Request, string, error)
}

type Service struct {
	Repo      Repository
	Endpoints endpoint.Reader
}

// NewService creates a new capture service with dependency injection
func NewService(repo Repository, endpoints endpoint.Reader) *Service {
	return &Service{
		Repo:      repo,
		Endpoints: endpoints,
	}
}

/* Capture stores one request under the endpoint the token resolves to.
 * Unknown tokens fail with endpoint.ErrNotFound whether the endpoint
 * was deleted or never existed - anonymous senders get no signal either
 * way.
 */
func (s *Service) Capture(ctx context.Context, token string, d Delivery) (Request, error) {
	e, err := s.Endpoints.GetByToken(ctx, token)
	if err != nil {
		return Request{}, err
	}

	req := Request{
		ID:         uuid.NewString(),
		EndpointID: e.ID,
		Method:     d.Method,
		Headers:    d.Headers,
		Body:       d.Body,
		CreatedAt:  time.Now(),
	}

	if err := s.Repo.Append(ctx, req); err != nil {
		return Request{}, fmt.Errorf("appending request: %w", err)
	}

	return req, nil
}

/* ListByEndpoint returns one page of captured requests. Ownership of
 * the endpoint must already have been checked by the caller - this
 * service only knows about requests.
 */
func (s *Service) ListByEndpoint(ctx context.Context, endpointID, cursor string, limit int) ([]Request, string, error) {
	requests, next, err := s.Repo.PageByEndpoint(ctx, endpointID, cursor, limit)
	if err != nil {
		return nil, "", fmt.Errorf("paging requests: %w", err)
	}
	return requests, next, nil
}
