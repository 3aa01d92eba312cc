package gallery

// Slide is the view of the machine's current position. The terminal
// slide of every item is the contribution panel, never a narrative
// image.
type Slide struct {
	Item     int    `json:"item"`
	Index    int    `json:"index"`
	Total    int    `json:"total"`
	Terminal bool   `json:"terminal"`
	ImageURL string `json:"imageUrl,omitempty"`
	Caption  string `json:"caption,omitempty"`
	Emoji    string `json:"emoji,omitempty"`
	Message  string `json:"message,omitempty"`
	Amounts  []int  `json:"amounts,omitempty"`
	HasPrev  bool   `json:"hasPrev"`
	HasNext  bool   `json:"hasNext"`
}

// Slide renders the current cursor position. ok is false for an empty
// catalog.
func (m *Machine) Slide() (s Slide, ok bool) {
	if m.Empty() {
		return Slide{}, false
	}
	total := m.SlideCount(m.item)
	s = Slide{
		Item:    m.item,
		Index:   m.slide,
		Total:   total,
		HasPrev: m.HasPrev(),
		HasNext: m.HasNext(),
	}
	if m.slide == total-1 {
		s.Terminal = true
		s.Message = m.messages[m.item%len(m.messages)]
		s.Amounts = m.amounts
		return s, true
	}
	g := m.gifts[m.item].Gallery[m.slide]
	s.ImageURL = g.ImageURL
	s.Caption = g.Caption
	s.Emoji = g.Emoji
	return s, true
}
