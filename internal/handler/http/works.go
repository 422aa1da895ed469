package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/MKhiriev/spotted-relay/internal/utils"
	"github.com/MKhiriev/spotted-relay/models"
	"github.com/go-chi/chi/v5"
)

// listWorks handles GET /api/praca?limit=&cursor=.
func (h *Handler) listWorks(w http.ResponseWriter, r *http.Request) {
	limit, _ := lastQueryValue(r, "limit")
	var cursor *string
	if c, ok := lastQueryValue(r, "cursor"); ok {
		cursor = &c
	}

	query, err := h.catalogValidator.ParseListQuery(limit, cursor)
	if err != nil {
		writeError(w, r, "*Handler.listWorks", err)
		return
	}

	page, err := h.services.CatalogService.List(r.Context(), query)
	if err != nil {
		writeError(w, r, "*Handler.listWorks", err)
		return
	}

	_, _ = utils.WriteJSON(w, page, http.StatusOK)
}

func (h *Handler) getWork(w http.ResponseWriter, r *http.Request) {
	work, err := h.services.CatalogService.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, "*Handler.getWork", err)
		return
	}

	_, _ = utils.WriteJSON(w, work, http.StatusOK)
}

func (h *Handler) getWorkContact(w http.ResponseWriter, r *http.Request) {
	contact, err := h.services.CatalogService.GetContact(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, "*Handler.getWorkContact", err)
		return
	}

	_, _ = utils.WriteJSON(w, models.ContactResponse{Contact: contact}, http.StatusOK)
}

// checkFavorites handles POST /api/praca/favorites with {"ids": [...]}.
func (h *Handler) checkFavorites(w http.ResponseWriter, r *http.Request) {
	var request models.FavoritesRequest
	if err := decodeJSONBody(r, &request); err != nil {
		writeError(w, r, "*Handler.checkFavorites", err)
		return
	}
	if request.IDs == nil {
		request.IDs = []string{}
	}

	result, err := h.services.CatalogService.CheckFavorites(r.Context(), request.IDs)
	if err != nil {
		writeError(w, r, "*Handler.checkFavorites", err)
		return
	}

	_, _ = utils.WriteJSON(w, result, http.StatusOK)
}

// lastQueryValue returns the last occurrence of a repeated query parameter
// and whether the parameter was present at all.
func lastQueryValue(r *http.Request, key string) (string, bool) {
	values := r.URL.Query()[key]
	if len(values) == 0 {
		return "", false
	}
	return values[len(values)-1], true
}

func decodeJSONBody(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var maxBytesErr *http.MaxBytesError
		switch {
		case errors.As(err, &maxBytesErr):
			return errors.Join(ErrJSONBodyTooLarge, err)
		case errors.Is(err, io.EOF):
			return ErrInvalidJSONBody
		default:
			return errors.Join(ErrInvalidJSONBody, err)
		}
	}
	return nil
}
