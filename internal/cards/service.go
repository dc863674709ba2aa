package cards

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	pkgerrors "github.com/riftbounddb/backend/pkg/errors"
	"github.com/riftbounddb/backend/pkg/pagination"
)

// ListParams carries the (already lenient-parsed) pagination inputs plus the
// optional search text.
type ListParams struct {
	Page   int
	Limit  int
	Search string
}

// Page is the envelope returned by the list operation.
type Page struct {
	Page       int    `json:"page"`
	Limit      int    `json:"limit"`
	Total      int64  `json:"total"`
	TotalPages int    `json:"totalPages"`
	Data       []Card `json:"data"`
}

// Service defines the read-only card query surface used by the controllers.
type Service interface {
	List(ctx context.Context, params ListParams) (*Page, error)
	GetByRemoteID(ctx context.Context, remoteID string) (*Card, error)
}

type repository interface {
	Count(ctx context.Context, filter bson.M) (int64, error)
	Find(ctx context.Context, filter bson.M, skip, limit int64) ([]Card, error)
	FindByRemoteID(ctx context.Context, game, remoteID string) (*Card, error)
}

type service struct {
	repo repository
}

// NewService constructs the card query service.
func NewService(repo repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("card repository is required")
	}
	return &service{repo: repo}, nil
}

func (s *service) List(ctx context.Context, params ListParams) (*Page, error) {
	if params.Page < 1 {
		params.Page = 1
	}
	params.Limit = pagination.NormalizeLimit(params.Limit)

	filter := ListFilter(Game, params.Search)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "Failed to fetch cards")
	}

	window := pagination.Params{Page: params.Page, Limit: params.Limit}
	data, err := s.repo.Find(ctx, filter, window.Offset(), int64(params.Limit))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "Failed to fetch cards")
	}

	return &Page{
		Page:       params.Page,
		Limit:      params.Limit,
		Total:      total,
		TotalPages: pagination.TotalPages(total, params.Limit),
		Data:       data,
	}, nil
}

func (s *service) GetByRemoteID(ctx context.Context, remoteID string) (*Card, error) {
	card, err := s.repo.FindByRemoteID(ctx, Game, remoteID)
	if errors.Is(err, ErrNotFound) {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Card not found")
	}
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "Failed to fetch card")
	}
	return card, nil
}
