// README: Search history model: one entry per selected location.
package history

import (
	"time"

	"wayfind/internal/modules/location"
	"wayfind/internal/types"

	"github.com/google/uuid"
)

// Retention caps: in-memory session stores keep fewer entries than the
// server-side store.
const (
	MemoryLimit = 50
	ServerLimit = 100
)

// Entry is one recorded search. SearchDate is a pre-rendered display
// string alongside the machine-readable timestamp.
type Entry struct {
	ID             string       `json:"id"`
	LocationID     string       `json:"locationId"`
	LocationName   string       `json:"locationName"`
	Address        string       `json:"address"`
	Latitude       float64      `json:"latitude"`
	Longitude      float64      `json:"longitude"`
	LatitudeRange  *types.Range `json:"latitudeRange,omitempty"`
	LongitudeRange *types.Range `json:"longitudeRange,omitempty"`
	Area           string       `json:"area"`
	Pincode        string       `json:"pincode"`
	Timestamp      time.Time    `json:"timestamp"`
	SearchDate     string       `json:"searchDate"`
}

// NewEntry builds an entry for a selected location at the given instant.
func NewEntry(loc location.Location, now time.Time) Entry {
	loc.EnsureRanges()
	return Entry{
		ID:             uuid.NewString(),
		LocationID:     loc.ID,
		LocationName:   loc.Name,
		Address:        loc.Address,
		Latitude:       loc.Latitude,
		Longitude:      loc.Longitude,
		LatitudeRange:  loc.LatitudeRange,
		LongitudeRange: loc.LongitudeRange,
		Area:           loc.Area,
		Pincode:        loc.Pincode,
		Timestamp:      now,
		SearchDate:     now.Format("1/2/2006, 3:04:05 PM"),
	}
}
