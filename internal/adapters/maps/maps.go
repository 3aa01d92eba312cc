// Package maps renders the accommodation map through interchangeable
// backend providers sharing one prop contract. The backend is picked
// once at startup from configuration, never per-request.
package maps

import "wedding_site/internal/domain"

// Static fallback applied when no venue record supplies a center.
var DefaultCenter = domain.Coords{Lat: -27.5954, Lng: -48.4580}

const DefaultZoom = 14

// Style is the immutable cluster color/label configuration passed into
// providers rather than referenced as ambient globals.
type Style struct {
	Colors map[domain.Cluster]string
	Labels map[domain.Cluster]string
}

func DefaultStyle() Style {
	return Style{
		Colors: map[domain.Cluster]string{
			domain.ClusterVenue:      "#d4a574", // gold, the venue itself
			domain.ClusterOsniOrtiga: "#22c55e", // green, walk to venue
			domain.ClusterCentro:     "#3b82f6", // blue, urban area
			domain.ClusterRendeiras:  "#f97316", // orange, tourist zone
			domain.ClusterRetiro:     "#8b5cf6", // purple, retreat
		},
		Labels: map[domain.Cluster]string{
			domain.ClusterVenue:      "Local da festa",
			domain.ClusterOsniOrtiga: "A pé até a festa",
			domain.ClusterCentro:     "Centrinho da Lagoa",
			domain.ClusterRendeiras:  "Avenida das Rendeiras",
			domain.ClusterRetiro:     "Retiro / Paz",
		},
	}
}

// View is the uniform prop surface every provider accepts.
type View struct {
	Accommodations []domain.Accommodation
	SelectedID     string
	Center         domain.Coords
	Zoom           int
}

type Marker struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	Position domain.Coords `json:"position"`
	Color    string        `json:"color"`
	Label    string        `json:"label,omitempty"`
	Venue    bool          `json:"venue"`
	Selected bool          `json:"selected"`
}

type LegendEntry struct {
	Cluster domain.Cluster `json:"cluster"`
	Color   string         `json:"color"`
	Label   string         `json:"label,omitempty"`
}

// Document is a provider's rendered map: everything the page needs to
// draw it. A degraded provider fills Placeholder instead of crashing.
type Document struct {
	Provider    string        `json:"provider"`
	Center      domain.Coords `json:"center"`
	Zoom        int           `json:"zoom"`
	Markers     []Marker      `json:"markers,omitempty"`
	Legend      []LegendEntry `json:"legend,omitempty"`
	TileURL     string        `json:"tileUrl,omitempty"`
	ScriptURL   string        `json:"scriptUrl,omitempty"`
	Attribution string        `json:"attribution,omitempty"`
	Placeholder string        `json:"placeholder,omitempty"`
}

type Provider interface {
	Name() string
	Render(v View) Document
}

// New selects a backend by configuration value. Unknown names fall back
// to leaflet, which needs no credential.
func New(provider, googleKey string, style Style) Provider {
	if provider == "google" {
		return NewGoogle(googleKey, style)
	}
	return NewLeaflet(style)
}

// render builds the provider-independent part of the document: one
// marker per accommodation, the venue visually distinguished, and the
// viewport recentered on a non-empty selection.
func render(v View, style Style) Document {
	doc := Document{Center: v.Center, Zoom: v.Zoom}
	if doc.Zoom == 0 {
		doc.Zoom = DefaultZoom
	}
	if doc.Center == (domain.Coords{}) {
		doc.Center = DefaultCenter
	}

	for _, a := range v.Accommodations {
		m := Marker{
			ID:       a.ID,
			Name:     a.Name,
			Position: domain.Coords{Lat: a.Lat, Lng: a.Lng},
			Color:    style.Colors[a.Cluster],
			Label:    style.Labels[a.Cluster],
			Venue:    a.IsVenue,
			Selected: v.SelectedID != "" && v.SelectedID == a.ID,
		}
		if m.Selected {
			doc.Center = m.Position
		}
		doc.Markers = append(doc.Markers, m)
	}

	for _, c := range []domain.Cluster{
		domain.ClusterVenue, domain.ClusterOsniOrtiga, domain.ClusterCentro,
		domain.ClusterRendeiras, domain.ClusterRetiro,
	} {
		if color, ok := style.Colors[c]; ok {
			doc.Legend = append(doc.Legend, LegendEntry{Cluster: c, Color: color, Label: style.Labels[c]})
		}
	}
	return doc
}
