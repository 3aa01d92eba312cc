package gallery_test

import (
	"testing"

	"wedding_site/internal/catalog"
	"wedding_site/internal/domain"
	"wedding_site/internal/gallery"
)

// testGifts builds a catalog whose items carry the given narrative slide
// counts, with one fixed amount per item.
func testGifts(narratives ...int) []domain.GiftOption {
	gifts := make([]domain.GiftOption, len(narratives))
	for i, n := range narratives {
		g := domain.GiftOption{ID: i + 1, Amount: (i + 1) * 100}
		for s := 0; s < n; s++ {
			g.Gallery = append(g.Gallery, domain.GallerySlide{
				ImageURL: "/img.jpg",
				Caption:  "legenda",
			})
		}
		gifts[i] = g
	}
	return gifts
}

func TestSlideCount_IncludesContributionSlide(t *testing.T) {
	m := gallery.New(testGifts(3, 1, 0))
	for i, want := range []int{4, 2, 1} {
		if got := m.SlideCount(i); got != want {
			t.Fatalf("SlideCount(%d) = %d, want %d", i, got, want)
		}
	}
	if m.SlideCount(-1) != 0 || m.SlideCount(3) != 0 {
		t.Fatalf("out-of-range items must count 0 slides")
	}
}

// A forward walk visits every slide of every item exactly once:
// sum(narratives+1) positions, so sum-1 effective Next calls.
func TestNext_TraversesWholeCatalog(t *testing.T) {
	m := gallery.New(testGifts(3, 2, 4))
	wantPositions := (3 + 1) + (2 + 1) + (4 + 1)

	steps := 0
	for m.Next() {
		steps++
	}
	if steps != wantPositions-1 {
		t.Fatalf("traversal took %d steps, want %d", steps, wantPositions-1)
	}
	if item, slide := m.Cursor(); item != 2 || slide != 4 {
		t.Fatalf("terminal cursor = (%d,%d), want (2,4)", item, slide)
	}
	if m.HasNext() {
		t.Fatalf("HasNext must be false at the global terminal slide")
	}
	if m.Next() {
		t.Fatalf("Next at the terminal slide must be a no-op")
	}
}

func TestNext_CrossesItemBoundaryToFirstSlide(t *testing.T) {
	m := gallery.New(testGifts(2, 3))
	m.JumpToSlide(2) // terminal slide of item 0
	if !m.HasNext() {
		t.Fatalf("item boundary must not hide the next affordance")
	}
	if !m.Next() {
		t.Fatalf("Next across the boundary failed")
	}
	if item, slide := m.Cursor(); item != 1 || slide != 0 {
		t.Fatalf("cursor = (%d,%d), want (1,0)", item, slide)
	}
}

// Prev from an item's first slide lands on the previous item's LAST
// slide, so Next and Prev are inverses across boundaries.
func TestPrev_LandsOnPreviousItemsLastSlide(t *testing.T) {
	m := gallery.New(testGifts(3, 2))
	m.SetStartingItem(1)
	if !m.HasPrev() {
		t.Fatalf("(1,0) must offer prev")
	}
	if !m.Prev() {
		t.Fatalf("Prev across the boundary failed")
	}
	if item, slide := m.Cursor(); item != 0 || slide != 3 {
		t.Fatalf("cursor = (%d,%d), want (0,3)", item, slide)
	}
}

// Opening at item 2 and stepping back three times walks through item 1
// in reverse and ends on item 0's terminal contribution slide.
func TestPrev_SequenceFromStartingItem(t *testing.T) {
	m := gallery.New(testGifts(2, 1, 3))
	if !m.SetStartingItem(2) {
		t.Fatalf("SetStartingItem(2) rejected")
	}
	want := [][2]int{{1, 1}, {1, 0}, {0, 2}}
	for i, w := range want {
		if !m.Prev() {
			t.Fatalf("Prev %d failed", i)
		}
		if item, slide := m.Cursor(); item != w[0] || slide != w[1] {
			t.Fatalf("after Prev %d: cursor = (%d,%d), want (%d,%d)", i, item, slide, w[0], w[1])
		}
	}
	s, ok := m.Slide()
	if !ok || !s.Terminal {
		t.Fatalf("expected item 0's contribution slide, got %+v", s)
	}
}

func TestAffordances_HiddenOnlyAtGlobalEdges(t *testing.T) {
	m := gallery.New(testGifts(1, 1))
	if m.HasPrev() {
		t.Fatalf("(0,0) must hide prev")
	}
	if !m.HasNext() {
		t.Fatalf("(0,0) must offer next")
	}
	for m.Next() {
		if !m.HasPrev() {
			item, slide := m.Cursor()
			t.Fatalf("prev hidden away from the origin at (%d,%d)", item, slide)
		}
	}
	if m.HasNext() {
		t.Fatalf("terminal slide must hide next")
	}
	m.Prev()
	if !m.HasNext() {
		t.Fatalf("next hidden away from the terminal slide")
	}
}

func TestPrevAtOrigin_NoOp(t *testing.T) {
	m := gallery.New(testGifts(2))
	if m.Prev() {
		t.Fatalf("Prev at (0,0) must be a no-op")
	}
	if m.Tick() != 0 {
		t.Fatalf("rejected transition must not bump the tick")
	}
}

func TestJumpToSlide_WithinItemOnly(t *testing.T) {
	m := gallery.New(testGifts(3, 2))

	if !m.JumpToSlide(3) {
		t.Fatalf("jump to the terminal slide rejected")
	}
	if _, slide := m.Cursor(); slide != 3 {
		t.Fatalf("slide = %d, want 3", slide)
	}
	if m.JumpToSlide(4) || m.JumpToSlide(-1) {
		t.Fatalf("out-of-range jumps must be ignored")
	}
	if item, slide := m.Cursor(); item != 0 || slide != 3 {
		t.Fatalf("ignored jump moved the cursor to (%d,%d)", item, slide)
	}
	if m.JumpToSlide(3) {
		t.Fatalf("jump to the current slide must report no transition")
	}
}

func TestSetStartingItem(t *testing.T) {
	m := gallery.New(testGifts(2, 2, 2))
	m.Next()
	m.Next()

	if !m.SetStartingItem(1) {
		t.Fatalf("SetStartingItem(1) rejected")
	}
	if item, slide := m.Cursor(); item != 1 || slide != 0 {
		t.Fatalf("cursor = (%d,%d), want (1,0)", item, slide)
	}
	if m.Tick() != 0 {
		t.Fatalf("opening an item must reset the animation tick")
	}
	if m.SetStartingItem(3) || m.SetStartingItem(-1) {
		t.Fatalf("out-of-range starting items must be rejected")
	}
}

func TestSwipe(t *testing.T) {
	cases := []struct {
		name     string
		dx, dy   float64
		moved    bool
		wantItem int
		wantSlde int
	}{
		{"left past threshold advances", -60, 0, true, 0, 1},
		{"right past threshold from origin ignored", 60, 0, false, 0, 0},
		{"below threshold ignored", -49, 0, false, 0, 0},
		{"vertical dominant ignored", -80, 120, false, 0, 0},
		{"threshold boundary advances", -gallery.SwipeThreshold, 0, true, 0, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := gallery.New(testGifts(2, 2))
			if got := m.Swipe(tc.dx, tc.dy); got != tc.moved {
				t.Fatalf("Swipe(%v,%v) = %v, want %v", tc.dx, tc.dy, got, tc.moved)
			}
			if item, slide := m.Cursor(); item != tc.wantItem || slide != tc.wantSlde {
				t.Fatalf("cursor = (%d,%d), want (%d,%d)", item, slide, tc.wantItem, tc.wantSlde)
			}
		})
	}

	t.Run("right swipe steps back", func(t *testing.T) {
		m := gallery.New(testGifts(2, 2))
		m.Next()
		if !m.Swipe(75, 10) {
			t.Fatalf("rightward swipe should step back")
		}
		if item, slide := m.Cursor(); item != 0 || slide != 0 {
			t.Fatalf("cursor = (%d,%d), want (0,0)", item, slide)
		}
	})
}

func TestEmptyCatalog(t *testing.T) {
	m := gallery.New(nil)
	if !m.Empty() {
		t.Fatalf("nil catalog must read as empty")
	}
	if m.Next() || m.Prev() || m.JumpToSlide(0) || m.Swipe(-100, 0) {
		t.Fatalf("empty machine must reject every transition")
	}
	if m.HasPrev() || m.HasNext() {
		t.Fatalf("empty machine must hide both affordances")
	}
	if _, ok := m.Slide(); ok {
		t.Fatalf("empty machine must render nothing")
	}
}

func TestTerminalSlide_MessageRotatesAndAmountsSorted(t *testing.T) {
	gifts := testGifts(1, 1, 1, 1, 1, 1, 1) // seven items, messages wrap at six
	m := gallery.New(gifts)

	var messages []string
	for i := range gifts {
		m.SetStartingItem(i)
		m.JumpToSlide(1)
		s, ok := m.Slide()
		if !ok || !s.Terminal {
			t.Fatalf("item %d: expected the contribution slide, got %+v", i, s)
		}
		if s.ImageURL != "" || s.Caption != "" {
			t.Fatalf("item %d: contribution slide must carry no narrative content", i)
		}
		messages = append(messages, s.Message)
	}
	if messages[0] == "" || messages[0] != messages[6] {
		t.Fatalf("messages must rotate by item index modulo the pool: %q vs %q", messages[0], messages[6])
	}
	if messages[0] == messages[1] {
		t.Fatalf("adjacent items must draw different messages")
	}

	m.SetStartingItem(0)
	m.JumpToSlide(1)
	s, _ := m.Slide()
	for i := 1; i < len(s.Amounts); i++ {
		if s.Amounts[i] <= s.Amounts[i-1] {
			t.Fatalf("amounts must be sorted and unique: %v", s.Amounts)
		}
	}
}

func TestNarrativeSlide_CarriesGiftContent(t *testing.T) {
	gifts := catalog.Gifts()
	m := gallery.New(gifts)
	s, ok := m.Slide()
	if !ok {
		t.Fatalf("catalog machine must render")
	}
	if s.Terminal {
		t.Fatalf("(0,0) is a narrative slide for the real catalog")
	}
	if s.ImageURL != gifts[0].Gallery[0].ImageURL || s.Caption != gifts[0].Gallery[0].Caption {
		t.Fatalf("slide content diverges from the catalog: %+v", s)
	}
	if s.Total != len(gifts[0].Gallery)+1 {
		t.Fatalf("total = %d, want %d", s.Total, len(gifts[0].Gallery)+1)
	}
}
