package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/HBortolim/btg-challenge/models"
	"github.com/HBortolim/btg-challenge/utils"
)

// decodeAndValidate decodes the JSON request body into dst and runs
// struct validation on it
func decodeAndValidate(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return utils.ValidateStruct(dst)
}

// pageRequest builds a PageRequest from the ?page= and ?size= query
// parameters, applying defaults and bounds
func pageRequest(r *http.Request) models.PageRequest {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	size, _ := strconv.Atoi(r.URL.Query().Get("size"))
	return models.NewPageRequest(page, size)
}

// idParam parses the {id} URL parameter as an int64
func idParam(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", raw)
	}
	return id, nil
}
