// README: Suggestion handler: one-shot merged search over local datasets and the geocoder.
package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"wayfind/internal/modules/location"
	"wayfind/internal/modules/search"
)

type SearchHandler struct {
	cfg      search.Config
	index    *location.Index
	geocoder search.Geocoder
}

func NewSearchHandler(cfg search.Config, index *location.Index, geocoder search.Geocoder) *SearchHandler {
	return &SearchHandler{cfg: cfg, index: index, geocoder: geocoder}
}

// Suggest runs one query through the full merge pipeline. Each request gets
// its own coordinator; HTTP requests carry no session to debounce against.
func (h *SearchHandler) Suggest(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		writeError(c, http.StatusBadRequest, "missing query parameter q")
		return
	}

	var result search.Result
	coord := search.NewCoordinator(h.cfg, h.index, h.geocoder, func(r search.Result) {
		result = r
	})
	coord.Search(c.Request.Context(), query)

	suggestions := result.Locations
	if suggestions == nil {
		suggestions = []location.Location{}
	}
	writeJSON(c, http.StatusOK, gin.H{
		"query":       query,
		"suggestions": suggestions,
		"noResults":   result.NoResults,
		"fallback":    result.Fallback,
	})
}
