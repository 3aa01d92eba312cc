package domain

type GallerySlide struct {
	ImageURL string `json:"imageUrl"`
	Caption  string `json:"caption"`
	Emoji    string `json:"emoji,omitempty"`
}

// GiftOption is one contribution tier. Static, read-only at runtime.
// Gallery holds the narrative slides only; the terminal contribution
// slide is appended by the gallery machine.
type GiftOption struct {
	ID          int            `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Amount      int            `json:"amount"`
	ImageURL    string         `json:"imageUrl"`
	Gallery     []GallerySlide `json:"gallery"`
}
