package ingest

import (
	"context"
	"fmt"

	"github.com/riftbounddb/backend/internal/cards"
	"github.com/riftbounddb/backend/pkg/logger"
)

type pageFetcher interface {
	FetchPage(ctx context.Context, page int) (*CatalogPage, error)
}

type cardUpserter interface {
	Upsert(ctx context.Context, card *cards.Card) error
}

// Runner walks the remote catalog sequentially and upserts every card. There
// is no retry and no partial-failure recovery: the first error aborts the run
// and the next run starts over from page one.
type Runner struct {
	fetcher pageFetcher
	repo    cardUpserter
	logg    *logger.Logger
}

// NewRunner wires the catalog client to the card store.
func NewRunner(fetcher pageFetcher, repo cardUpserter, logg *logger.Logger) (*Runner, error) {
	if fetcher == nil {
		return nil, fmt.Errorf("catalog fetcher is required")
	}
	if repo == nil {
		return nil, fmt.Errorf("card repository is required")
	}
	return &Runner{fetcher: fetcher, repo: repo, logg: logg}, nil
}

// Run fetches pages 1..N, where N comes from each response's totalPages
// field, and upserts every record by (game, remoteId). Returns the number of
// upserts performed.
func (r *Runner) Run(ctx context.Context) (int, error) {
	page := 1
	totalPages := 1
	totalUpserts := 0

	for page <= totalPages {
		payload, err := r.fetcher.FetchPage(ctx, page)
		if err != nil {
			return totalUpserts, err
		}

		if payload.TotalPages > 0 {
			totalPages = payload.TotalPages
		}

		if r.logg != nil {
			logCtx := r.logg.WithFields(ctx, map[string]any{
				"page":        page,
				"total_pages": totalPages,
				"cards":       len(payload.Data),
			})
			r.logg.Info(logCtx, "seed.page")
		}

		for _, src := range payload.Data {
			card := MapCard(src)
			if card.RemoteID == "" {
				return totalUpserts, fmt.Errorf("catalog card on page %d has no id", page)
			}
			if err := r.repo.Upsert(ctx, card); err != nil {
				return totalUpserts, fmt.Errorf("upsert card %s: %w", card.RemoteID, err)
			}
			totalUpserts++
		}

		page++
	}

	return totalUpserts, nil
}
