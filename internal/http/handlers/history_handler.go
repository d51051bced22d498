// README: Search history handlers: list, record, lookup, clear.
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"wayfind/internal/modules/history"
	"wayfind/internal/types"
)

type HistoryHandler struct {
	history *history.Service
}

func NewHistoryHandler(svc *history.Service) *HistoryHandler {
	return &HistoryHandler{history: svc}
}

func (h *HistoryHandler) List(c *gin.Context) {
	entries, err := h.history.List(c.Request.Context())
	if err != nil {
		writeHistoryError(c, err)
		return
	}
	if entries == nil {
		entries = []history.Entry{}
	}
	writeJSON(c, http.StatusOK, gin.H{"searches": entries})
}

type recordHistoryReq struct {
	LocationID     string       `json:"locationId"`
	LocationName   string       `json:"locationName"`
	Address        string       `json:"address"`
	Latitude       float64      `json:"latitude"`
	Longitude      float64      `json:"longitude"`
	LatitudeRange  *types.Range `json:"latitudeRange"`
	LongitudeRange *types.Range `json:"longitudeRange"`
	Area           string       `json:"area"`
	Pincode        string       `json:"pincode"`
	Timestamp      time.Time    `json:"timestamp"`
}

func (h *HistoryHandler) Record(c *gin.Context) {
	var req recordHistoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if req.LocationName == "" {
		writeError(c, http.StatusBadRequest, "missing locationName")
		return
	}
	entry, err := h.history.RecordEntry(c.Request.Context(), history.Entry{
		LocationID:     req.LocationID,
		LocationName:   req.LocationName,
		Address:        req.Address,
		Latitude:       req.Latitude,
		Longitude:      req.Longitude,
		LatitudeRange:  req.LatitudeRange,
		LongitudeRange: req.LongitudeRange,
		Area:           req.Area,
		Pincode:        req.Pincode,
		Timestamp:      req.Timestamp,
	})
	if err != nil {
		writeHistoryError(c, err)
		return
	}
	writeJSON(c, http.StatusCreated, gin.H{"success": true, "data": entry})
}

func (h *HistoryHandler) Get(c *gin.Context) {
	entry, err := h.history.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeHistoryError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"search": entry})
}

func (h *HistoryHandler) Clear(c *gin.Context) {
	if err := h.history.Clear(c.Request.Context()); err != nil {
		writeHistoryError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"success": true})
}
