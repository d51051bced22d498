// README: Location handlers: listing, lookup, coordinates, customer selections.
package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"wayfind/internal/modules/location"
)

type LocationHandler struct {
	location *location.Service
}

func NewLocationHandler(svc *location.Service) *LocationHandler {
	return &LocationHandler{location: svc}
}

func (h *LocationHandler) List(c *gin.Context) {
	writeJSON(c, http.StatusOK, gin.H{"locations": h.location.All()})
}

func (h *LocationHandler) Search(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		writeError(c, http.StatusBadRequest, "missing query parameter q")
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"locations": h.location.Search(query)})
}

func (h *LocationHandler) Get(c *gin.Context) {
	loc, err := h.location.Get(c.Param("id"))
	if err != nil {
		writeLocationError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"location": loc})
}

func (h *LocationHandler) Coordinates(c *gin.Context) {
	point, latRange, lngRange, err := h.location.Coordinates(c.Param("id"))
	if err != nil {
		writeLocationError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{
		"latitude":       point.Lat,
		"longitude":      point.Lng,
		"latitudeRange":  latRange,
		"longitudeRange": lngRange,
	})
}

type saveCustomerLocationReq struct {
	CustomerID string   `json:"customerId"`
	LocationID string   `json:"locationId"`
	Address    string   `json:"address"`
	Latitude   *float64 `json:"latitude"`
	Longitude  *float64 `json:"longitude"`
}

func (h *LocationHandler) SaveCustomerLocation(c *gin.Context) {
	var req saveCustomerLocationReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	cl, err := h.location.SaveCustomerLocation(c.Request.Context(), location.SaveCustomerLocationCommand{
		CustomerID: req.CustomerID,
		LocationID: req.LocationID,
		Address:    req.Address,
		Latitude:   req.Latitude,
		Longitude:  req.Longitude,
	})
	if err != nil {
		writeLocationError(c, err)
		return
	}
	writeJSON(c, http.StatusCreated, gin.H{
		"success": true,
		"message": "customer location saved",
		"data":    cl,
	})
}
