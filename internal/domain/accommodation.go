package domain

import "time"

// Cluster names a geographic/thematic accommodation zone. It drives map
// marker coloring and legend labels.
type Cluster string

const (
	ClusterVenue      Cluster = "venue"
	ClusterOsniOrtiga Cluster = "osni_ortiga"
	ClusterCentro     Cluster = "centro"
	ClusterRendeiras  Cluster = "rendeiras"
	ClusterRetiro     Cluster = "retiro"
)

type Coords struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Location is a single geocoding result. Immutable once created;
// re-resolution replaces it wholesale.
type Location struct {
	Lat              float64   `json:"lat"`
	Lng              float64   `json:"lng"`
	FormattedAddress string    `json:"formattedAddress,omitempty"`
	ResolvedAt       time.Time `json:"resolvedAt"`
}

type Accommodation struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Address     string   `json:"address"` // free text; source of the cache lookup key
	Lat         float64  `json:"lat"`     // static fallback until resolution overwrites it
	Lng         float64  `json:"lng"`
	Cluster     Cluster  `json:"cluster"`
	Rating      *float64 `json:"rating,omitempty"`
	RatingLabel *string  `json:"ratingLabel,omitempty"`
	PriceRange  *string  `json:"priceRange,omitempty"`
	Amenities   []string `json:"amenities,omitempty"`
	ImageURL    string   `json:"imageUrl,omitempty"`
	BookingURL  *string  `json:"bookingUrl,omitempty"`
	IsVenue     bool     `json:"isVenue"`
}

// ResolutionState is the progressively-updated snapshot of one pipeline run.
// Error is advisory only; per-item failures never abort the run.
type ResolutionState struct {
	IsLoading   bool   `json:"isLoading"`
	Progress    int    `json:"progress"`
	Total       int    `json:"total"`
	Error       string `json:"error,omitempty"`
	FailedCount int    `json:"failedCount"`
}
