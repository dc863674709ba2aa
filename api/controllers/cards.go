package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/riftbounddb/backend/api/responses"
	cardsvc "github.com/riftbounddb/backend/internal/cards"
	pkgerrors "github.com/riftbounddb/backend/pkg/errors"
	"github.com/riftbounddb/backend/pkg/logger"
	"github.com/riftbounddb/backend/pkg/pagination"
)

// CardsList serves the paginated, optionally filtered card listing. Page and
// limit inputs are lenient: garbage falls back to defaults rather than 400s.
func CardsList(svc cardsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "Card service unavailable"))
			return
		}

		query := r.URL.Query()
		params := cardsvc.ListParams{
			Page:   pagination.ParsePage(query.Get("page")),
			Limit:  pagination.ParseLimit(query.Get("limit")),
			Search: strings.TrimSpace(query.Get("search")),
		}

		page, err := svc.List(r.Context(), params)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, page)
	}
}

// CardDetail serves a single card by its upstream identifier.
func CardDetail(svc cardsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "Card service unavailable"))
			return
		}

		remoteID := strings.TrimSpace(chi.URLParam(r, "remoteId"))
		if remoteID == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "Card not found"))
			return
		}

		card, err := svc.GetByRemoteID(r.Context(), remoteID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, card)
	}
}
