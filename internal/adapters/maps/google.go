package maps

import "net/url"

const googleScriptBase = "https://maps.googleapis.com/maps/api/js"

// Google renders through the Google Maps JS API. Without a key it
// degrades to a static explanatory placeholder instead of crashing.
type Google struct {
	key   string
	style Style
}

func NewGoogle(key string, style Style) *Google {
	return &Google{key: key, style: style}
}

func (g *Google) Name() string { return "google" }

func (g *Google) Render(v View) Document {
	doc := render(v, g.style)
	doc.Provider = g.Name()
	if g.key == "" {
		doc.Markers = nil
		doc.Placeholder = "Mapa indisponível: configure GOOGLE_MAPS_API_KEY para habilitar o Google Maps."
		return doc
	}
	q := url.Values{}
	q.Set("key", g.key)
	doc.ScriptURL = googleScriptBase + "?" + q.Encode()
	return doc
}
