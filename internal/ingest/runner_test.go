package ingest

import (
	"context"
	"fmt"
	"testing"

	"github.com/riftbounddb/backend/internal/cards"
)

type fakeFetcher struct {
	pages   map[int]*CatalogPage
	failOn  int
	fetched []int
}

func (f *fakeFetcher) FetchPage(ctx context.Context, page int) (*CatalogPage, error) {
	f.fetched = append(f.fetched, page)
	if f.failOn != 0 && page == f.failOn {
		return nil, fmt.Errorf("upstream 500")
	}
	payload, ok := f.pages[page]
	if !ok {
		return nil, fmt.Errorf("unexpected page %d", page)
	}
	return payload, nil
}

type fakeUpserter struct {
	upserted []string
	failOn   string
}

func (f *fakeUpserter) Upsert(ctx context.Context, card *cards.Card) error {
	if f.failOn != "" && card.RemoteID == f.failOn {
		return fmt.Errorf("write conflict")
	}
	f.upserted = append(f.upserted, card.RemoteID)
	return nil
}

func catalogCard(id string) CatalogCard {
	return CatalogCard{ID: id, Name: "Card " + id}
}

func TestRunnerWalksAllPages(t *testing.T) {
	fetcher := &fakeFetcher{pages: map[int]*CatalogPage{
		1: {Page: 1, TotalPages: 3, Data: []CatalogCard{catalogCard("a"), catalogCard("b")}},
		2: {Page: 2, TotalPages: 3, Data: []CatalogCard{catalogCard("c")}},
		3: {Page: 3, TotalPages: 3, Data: []CatalogCard{catalogCard("d")}},
	}}
	repo := &fakeUpserter{}

	runner, err := NewRunner(fetcher, repo, nil)
	if err != nil {
		t.Fatalf("new runner: %v", err)
	}

	total, err := runner.Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if total != 4 {
		t.Fatalf("expected 4 upserts, got %d", total)
	}
	if len(fetcher.fetched) != 3 {
		t.Fatalf("expected 3 page fetches, got %v", fetcher.fetched)
	}
	if repo.upserted[0] != "a" || repo.upserted[3] != "d" {
		t.Fatalf("unexpected upsert order %v", repo.upserted)
	}
}

func TestRunnerSinglePage(t *testing.T) {
	fetcher := &fakeFetcher{pages: map[int]*CatalogPage{
		1: {Page: 1, TotalPages: 1, Data: []CatalogCard{catalogCard("a")}},
	}}
	runner, _ := NewRunner(fetcher, &fakeUpserter{}, nil)

	total, err := runner.Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if total != 1 {
		t.Fatalf("expected 1 upsert, got %d", total)
	}
	if len(fetcher.fetched) != 1 {
		t.Fatalf("expected a single fetch, got %v", fetcher.fetched)
	}
}

func TestRunnerAbortsOnFetchError(t *testing.T) {
	fetcher := &fakeFetcher{
		failOn: 2,
		pages: map[int]*CatalogPage{
			1: {Page: 1, TotalPages: 3, Data: []CatalogCard{catalogCard("a")}},
		},
	}
	repo := &fakeUpserter{}
	runner, _ := NewRunner(fetcher, repo, nil)

	total, err := runner.Run(context.Background())
	if err == nil {
		t.Fatal("expected fetch failure to abort the run")
	}
	if total != 1 {
		t.Fatalf("expected 1 upsert before abort, got %d", total)
	}
	if len(fetcher.fetched) != 2 {
		t.Fatalf("expected no fetches past the failure, got %v", fetcher.fetched)
	}
}

func TestRunnerAbortsOnUpsertError(t *testing.T) {
	fetcher := &fakeFetcher{pages: map[int]*CatalogPage{
		1: {Page: 1, TotalPages: 2, Data: []CatalogCard{catalogCard("a"), catalogCard("b")}},
	}}
	repo := &fakeUpserter{failOn: "b"}
	runner, _ := NewRunner(fetcher, repo, nil)

	total, err := runner.Run(context.Background())
	if err == nil {
		t.Fatal("expected upsert failure to abort the run")
	}
	if total != 1 {
		t.Fatalf("expected count to stop at the failure, got %d", total)
	}
}

func TestRunnerRejectsCardWithoutID(t *testing.T) {
	fetcher := &fakeFetcher{pages: map[int]*CatalogPage{
		1: {Page: 1, TotalPages: 1, Data: []CatalogCard{{Name: "nameless"}}},
	}}
	runner, _ := NewRunner(fetcher, &fakeUpserter{}, nil)

	if _, err := runner.Run(context.Background()); err == nil {
		t.Fatal("expected a card without id to abort the run")
	}
}
