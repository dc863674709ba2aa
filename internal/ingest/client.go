package ingest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/riftbounddb/backend/pkg/config"
)

var errAPIKeyRequired = errors.New("catalog api key is required")

// CatalogPage is one page of the remote catalog response. The first page's
// totalPages field tells the runner how far to walk.
type CatalogPage struct {
	Page       int           `json:"page"`
	TotalPages int           `json:"totalPages"`
	Data       []CatalogCard `json:"data"`
}

// CatalogCard holds the fields of a source record we map into the card shape,
// plus the raw payload kept verbatim.
type CatalogCard struct {
	ID          string         `json:"id"`
	Code        string         `json:"code"`
	Number      string         `json:"number"`
	Name        string         `json:"name"`
	CleanName   string         `json:"cleanName"`
	Rarity      string         `json:"rarity"`
	CardType    string         `json:"cardType"`
	Domain      string         `json:"domain"`
	EnergyCost  string         `json:"energyCost"`
	PowerCost   string         `json:"powerCost"`
	Might       string         `json:"might"`
	Description string         `json:"description"`
	FlavorText  string         `json:"flavorText"`
	Images      *catalogImages `json:"images"`
	Set         *catalogSet    `json:"set"`
	TCGPlayer   *catalogTCG    `json:"tcgplayer"`
	PresaleInfo *catalogSale   `json:"presaleInfo"`
	ModifiedOn  string         `json:"modifiedOn"`

	raw map[string]any
}

type catalogImages struct {
	Small string `json:"small"`
	Large string `json:"large"`
}

type catalogSet struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	ReleaseDate string `json:"releaseDate"`
}

type catalogTCG struct {
	ID  int    `json:"id"`
	URL string `json:"url"`
}

type catalogSale struct {
	IsPresale  *bool  `json:"isPresale"`
	ReleasedOn string `json:"releasedOn"`
	Note       string `json:"note"`
}

// Client fetches pages from the apitcg.com Riftbound catalog.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// NewClient validates the credentials and builds the catalog client.
func NewClient(cfg config.CatalogConfig) (*Client, error) {
	apiKey := strings.TrimSpace(cfg.APIKey)
	if apiKey == "" {
		return nil, errAPIKeyRequired
	}
	return &Client{
		baseURL: cfg.APIURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: cfg.Timeout},
	}, nil
}

// FetchPage requests one page of the catalog. Any transport or non-2xx
// failure is returned as-is; the runner aborts rather than retrying.
func (c *Client) FetchPage(ctx context.Context, page int) (*CatalogPage, error) {
	endpoint, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse catalog url: %w", err)
	}
	query := endpoint.Query()
	query.Set("page", strconv.Itoa(page))
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("build catalog request: %w", err)
	}
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch catalog page %d: %w", page, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("catalog page %d: unexpected status %d", page, resp.StatusCode)
	}

	// Decode twice: once into the typed shape, once into raw maps so the
	// verbatim payload survives fields we do not model.
	var envelope struct {
		Page       json.Number       `json:"page"`
		TotalPages int               `json:"totalPages"`
		Data       []json.RawMessage `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("decode catalog page %d: %w", page, err)
	}

	out := &CatalogPage{Page: page, TotalPages: envelope.TotalPages}
	for _, rawCard := range envelope.Data {
		var card CatalogCard
		if err := json.Unmarshal(rawCard, &card); err != nil {
			return nil, fmt.Errorf("decode catalog card: %w", err)
		}
		if err := json.Unmarshal(rawCard, &card.raw); err != nil {
			return nil, fmt.Errorf("decode catalog card payload: %w", err)
		}
		out.Data = append(out.Data, card)
	}
	return out, nil
}
