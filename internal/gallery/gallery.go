// Package gallery holds the modal carousel's navigation state: a
// two-level cursor (gift item × slide within item) with named
// transitions, replacing boundary arithmetic scattered across callers.
package gallery

import (
	"sort"

	"wedding_site/internal/domain"
)

// SwipeThreshold is the horizontal drag distance, in pixels, below
// which a gesture is ignored.
const SwipeThreshold = 50

// defaultMessages rotate on the terminal contribution slide, one per
// gift index.
var defaultMessages = []string{
	"Ajude esse momento a acontecer",
	"Contribua de acordo com a sua realidade",
	"Torne esse sonho realidade",
	"Financie essa aventura",
	"Seja parte dessa história",
	"Faça essa viagem sair do papel",
}

// Machine navigates an immutable gift catalog. The cursor is always in
// bounds; there is no representable invalid position. An empty catalog
// yields a machine that renders nothing.
type Machine struct {
	gifts    []domain.GiftOption
	messages []string
	amounts  []int

	item  int
	slide int
	tick  int // animation trigger only; no effect on navigation
}

func New(gifts []domain.GiftOption) *Machine {
	m := &Machine{gifts: gifts, messages: defaultMessages}

	// The contribution tiers offered on the terminal slide are the
	// catalog's own amounts, deduplicated and sorted.
	seen := map[int]bool{}
	for _, g := range gifts {
		if g.Amount > 0 && !seen[g.Amount] {
			seen[g.Amount] = true
			m.amounts = append(m.amounts, g.Amount)
		}
	}
	sort.Ints(m.amounts)
	return m
}

func (m *Machine) Empty() bool { return len(m.gifts) == 0 }

// Cursor reports the current (item, slide) position.
func (m *Machine) Cursor() (item, slide int) { return m.item, m.slide }

// Tick is the monotonically increasing animation counter, bumped on
// every effective transition.
func (m *Machine) Tick() int { return m.tick }

// SlideCount is the item's narrative slides plus the fixed terminal
// contribution slide.
func (m *Machine) SlideCount(item int) int {
	if item < 0 || item >= len(m.gifts) {
		return 0
	}
	return len(m.gifts[item].Gallery) + 1
}

// HasPrev is false only at the exact global initial slide (0, 0).
func (m *Machine) HasPrev() bool {
	if m.Empty() {
		return false
	}
	return !(m.item == 0 && m.slide == 0)
}

// HasNext is false only at the exact global terminal slide: the last
// slide of the last item. Item boundaries never hide the affordance.
func (m *Machine) HasNext() bool {
	if m.Empty() {
		return false
	}
	return !(m.item == len(m.gifts)-1 && m.slide == m.SlideCount(m.item)-1)
}

// Next advances one slide, crossing into the next item's first slide at
// an item boundary. No-op at the global terminal slide.
func (m *Machine) Next() bool {
	switch {
	case m.Empty():
		return false
	case m.slide+1 < m.SlideCount(m.item):
		m.slide++
	case m.item+1 < len(m.gifts):
		m.item++
		m.slide = 0
	default:
		return false
	}
	m.tick++
	return true
}

// Prev steps back one slide. From an item's first slide it lands on the
// previous item's last slide, not its first. No-op at (0, 0).
func (m *Machine) Prev() bool {
	switch {
	case m.Empty():
		return false
	case m.slide > 0:
		m.slide--
	case m.item > 0:
		m.item--
		m.slide = m.SlideCount(m.item) - 1
	default:
		return false
	}
	m.tick++
	return true
}

// JumpToSlide moves within the current item only (dot-indicator
// navigation); out-of-range targets are ignored.
func (m *Machine) JumpToSlide(n int) bool {
	if m.Empty() || n < 0 || n >= m.SlideCount(m.item) || n == m.slide {
		return false
	}
	m.slide = n
	m.tick++
	return true
}

// SetStartingItem resets the machine to (i, 0), used when the modal
// opens from a specific catalog entry. Out-of-range items are ignored.
func (m *Machine) SetStartingItem(i int) bool {
	if i < 0 || i >= len(m.gifts) {
		return false
	}
	m.item = i
	m.slide = 0
	m.tick = 0
	return true
}

// Swipe maps a drag gesture to a transition: horizontal motion past the
// threshold navigates, vertical or sub-threshold motion is ignored.
// dx is end minus start, so a leftward drag (negative dx) advances.
func (m *Machine) Swipe(dx, dy float64) bool {
	abs := func(v float64) float64 {
		if v < 0 {
			return -v
		}
		return v
	}
	if abs(dx) < SwipeThreshold || abs(dx) <= abs(dy) {
		return false
	}
	if dx < 0 {
		if !m.HasNext() {
			return false
		}
		return m.Next()
	}
	if !m.HasPrev() {
		return false
	}
	return m.Prev()
}
