package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"wedding_site/internal/adapters/maps"
	"wedding_site/internal/app"
	"wedding_site/internal/domain"
	"wedding_site/internal/gallery"
	"wedding_site/internal/pix"
)

type Handlers struct {
	Acc   *app.AccommodationService
	Map   maps.Provider
	Pix   pix.Config
	Gifts []domain.GiftOption
}

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Get("/", h.site)
	s.mux.Get("/v1/gifts", h.listGifts)
	s.mux.Get("/v1/gifts/{id}", h.getGift)
	s.mux.Get("/v1/gallery/{item}/{slide}", h.gallerySlide)
	s.mux.Get("/v1/pix/{amount}", h.pixCode)
	s.mux.Get("/v1/accommodations", h.listAccommodations)
	s.mux.Get("/v1/accommodations/map", h.mapDocument)
}

// The three public hosts. Subdomains dispatch straight to a section;
// anything else (localhost) falls back to path routing on the client.
var siteDomains = map[string]string{
	"root":       "https://yoshaemark.com",
	"presentes":  "https://presentes.yoshaemark.com",
	"hospedagem": "https://hospedagem.yoshaemark.com",
}

func hostSection(host string) string {
	if i := strings.IndexByte(host, ':'); i >= 0 {
		host = host[:i]
	}
	switch {
	case strings.HasPrefix(host, "presentes."):
		return "presentes"
	case strings.HasPrefix(host, "hospedagem."):
		return "hospedagem"
	case host == "yoshaemark.com", host == "www.yoshaemark.com":
		return "root"
	}
	return ""
}

// selectLang picks the response language: explicit ?lang= wins, then
// Accept-Language, defaulting to pt.
func selectLang(r *http.Request) string {
	al := r.URL.Query().Get("lang")
	if al == "" {
		al = r.Header.Get("Accept-Language")
	}
	if strings.HasPrefix(strings.ToLower(al), "en") {
		return "en"
	}
	return "pt"
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

// calcETagAndBody marshals once and hashes once, returning both ETag
// and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`
	return etag, body
}

func writeWithETag(w http.ResponseWriter, r *http.Request, v any) {
	etag, body := calcETagAndBody(v)
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write response body")
	}
}

func (h *Handlers) site(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, struct {
		Section string            `json:"section,omitempty"`
		Domains map[string]string `json:"domains"`
	}{Section: hostSection(r.Host), Domains: siteDomains})
}

func (h *Handlers) listGifts(w http.ResponseWriter, r *http.Request) {
	writeWithETag(w, r, h.Gifts)
}

func (h *Handlers) getGift(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid ID", "id must be a number")
		return
	}
	for _, g := range h.Gifts {
		if g.ID == id {
			writeWithETag(w, r, g)
			return
		}
	}
	writeProblem(w, http.StatusNotFound, "Not Found", "gift not found")
}

// gallerySlide serves the carousel statelessly: the cursor lives in the
// URL, the machine computes the view and the neighboring cursors.
func (h *Handlers) gallerySlide(w http.ResponseWriter, r *http.Request) {
	item, err := strconv.Atoi(chi.URLParam(r, "item"))
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid item", "item must be a number")
		return
	}
	slideIdx, err := strconv.Atoi(chi.URLParam(r, "slide"))
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid slide", "slide must be a number")
		return
	}

	m := gallery.New(h.Gifts)
	if m.Empty() {
		// Empty catalog renders nothing rather than failing.
		w.WriteHeader(http.StatusNoContent)
		return
	}
	if !m.SetStartingItem(item) {
		writeProblem(w, http.StatusNotFound, "Not Found", "gallery item out of range")
		return
	}
	if slideIdx != 0 && !m.JumpToSlide(slideIdx) {
		writeProblem(w, http.StatusNotFound, "Not Found", "slide out of range")
		return
	}
	s, _ := m.Slide()

	resp := struct {
		gallery.Slide
		Prev *[2]int `json:"prev,omitempty"`
		Next *[2]int `json:"next,omitempty"`
	}{Slide: s}

	// Neighboring cursors come from the machine itself, so the
	// previous-item's-last-slide rule stays in one place.
	if prev := *m; prev.Prev() {
		i, sl := prev.Cursor()
		resp.Prev = &[2]int{i, sl}
	}
	if next := *m; next.Next() {
		i, sl := next.Cursor()
		resp.Next = &[2]int{i, sl}
	}
	writeWithETag(w, r, resp)
}

func (h *Handlers) pixCode(w http.ResponseWriter, r *http.Request) {
	amount, err := strconv.Atoi(chi.URLParam(r, "amount"))
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid amount", "amount must be a number")
		return
	}
	lang := selectLang(r)

	resp := struct {
		Amount     int    `json:"amount"`
		Configured bool   `json:"configured"`
		Code       string `json:"code,omitempty"`
		QRImageURL string `json:"qrImageUrl,omitempty"`
		Message    string `json:"message,omitempty"`
	}{Amount: amount}

	// An unconfigured amount is a handled state, never an error.
	if h.Pix.Has(amount) {
		resp.Configured = true
		resp.Code = h.Pix.Code(amount)
		resp.QRImageURL = pix.QRImageURL(resp.Code)
	} else if lang == "en" {
		resp.Message = "PIX code not configured yet for this amount."
	} else {
		resp.Message = "Código PIX ainda não configurado para esse valor."
	}
	w.Header().Set("Content-Language", lang)
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handlers) listAccommodations(w http.ResponseWriter, r *http.Request) {
	accoms, st, center := h.Acc.Snapshot()
	writeWithETag(w, r, struct {
		Accommodations []domain.Accommodation `json:"accommodations"`
		State          domain.ResolutionState `json:"state"`
		VenueCenter    *domain.Coords         `json:"venueCenter,omitempty"`
	}{Accommodations: accoms, State: st, VenueCenter: center})
}

func (h *Handlers) mapDocument(w http.ResponseWriter, r *http.Request) {
	accoms, _, center := h.Acc.Snapshot()
	v := maps.View{
		Accommodations: accoms,
		SelectedID:     r.URL.Query().Get("selected"),
	}
	if center != nil {
		v.Center = *center
	}
	writeWithETag(w, r, h.Map.Render(v))
}
