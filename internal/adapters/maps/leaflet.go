package maps

// Leaflet renders through OpenStreetMap tiles. No credential required.
type Leaflet struct {
	style Style
}

func NewLeaflet(style Style) *Leaflet { return &Leaflet{style: style} }

func (l *Leaflet) Name() string { return "leaflet" }

func (l *Leaflet) Render(v View) Document {
	doc := render(v, l.style)
	doc.Provider = l.Name()
	doc.TileURL = "https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png"
	doc.Attribution = "© OpenStreetMap contributors"
	return doc
}
