package catalog

import (
	"reflect"
	"testing"
)

func TestViewCardsPreserveOrder(t *testing.T) {
	v := NewView("Fishllet", Default())

	cards := v.Cards()
	wantNames := []string{"Udang Kupas", "Cumi Tube/Cumi Ring", "Ikan Nila", "Ikan Dori"}
	if len(cards) != len(wantNames) {
		t.Fatalf("got %d cards, want %d", len(cards), len(wantNames))
	}
	for i, c := range cards {
		if c.Name != wantNames[i] {
			t.Errorf("card %d name = %q, want %q", i, c.Name, wantNames[i])
		}
		if c.Price != "Harga menyusul" {
			t.Errorf("card %d price = %q", i, c.Price)
		}
	}
}

func TestViewIsIdempotent(t *testing.T) {
	c := Default()
	m := DefaultMetrics(40, 26, 20)

	first := NewView("Fishllet", c)
	second := NewView("Fishllet", c)

	if !reflect.DeepEqual(first.Cards(), second.Cards()) {
		t.Fatal("cards differ between renders")
	}
	if !reflect.DeepEqual(first.Layout(640, m), first.Layout(640, m)) {
		t.Fatal("layout differs between renders of the same view")
	}
	if !reflect.DeepEqual(first.Layout(640, m), second.Layout(640, m)) {
		t.Fatal("layout differs between views of the same catalog")
	}
}

func TestLayoutGeometry(t *testing.T) {
	m := DefaultMetrics(40, 26, 20)
	l := NewView("Fishllet", Default()).Layout(640, m)

	if l.Header != (Rect{X: 16, Y: 40, W: 608, H: 40}) {
		t.Fatalf("header = %+v", l.Header)
	}
	if l.ListTop != 40+40+24 {
		t.Fatalf("ListTop = %d", l.ListTop)
	}

	cardHeight := int32(20 + 26 + 8 + 20 + 20)
	if m.CardHeight() != cardHeight {
		t.Fatalf("CardHeight() = %d, want %d", m.CardHeight(), cardHeight)
	}

	for i, c := range l.Cards {
		wantY := int32(i) * (cardHeight + 16)
		if c.Box.Y != wantY || c.Box.H != cardHeight || c.Box.W != 608 {
			t.Errorf("card %d box = %+v", i, c.Box)
		}
		if c.Name.Y != wantY+20 || c.Price.Y != c.Name.Bottom()+8 {
			t.Errorf("card %d text rects name=%+v price=%+v", i, c.Name, c.Price)
		}
	}
	if l.ContentHeight != 4*(cardHeight+16) {
		t.Fatalf("ContentHeight = %d", l.ContentHeight)
	}
}

func TestLayoutScrolling(t *testing.T) {
	m := DefaultMetrics(40, 26, 20)
	l := NewView("Fishllet", Default()).Layout(640, m)
	step := m.CardHeight() + m.CardSpacing

	if got := l.MaxScroll(10_000); got != 0 {
		t.Errorf("MaxScroll(large) = %d, want 0", got)
	}
	if got := l.MaxScroll(step); got != l.ContentHeight-step {
		t.Errorf("MaxScroll(step) = %d", got)
	}
	if got := l.ClampScroll(-5, step); got != 0 {
		t.Errorf("ClampScroll(-5) = %d", got)
	}
	if got := l.ClampScroll(1 << 20, step); got != l.MaxScroll(step) {
		t.Errorf("ClampScroll(huge) = %d", got)
	}

	if got := l.Visible(0, step); !reflect.DeepEqual(got, []int{0}) {
		t.Errorf("Visible(0, step) = %v", got)
	}
	if got := l.Visible(step/2, step); !reflect.DeepEqual(got, []int{0, 1}) {
		t.Errorf("Visible(step/2, step) = %v", got)
	}
	if got := l.Visible(0, l.ContentHeight); !reflect.DeepEqual(got, []int{0, 1, 2, 3}) {
		t.Errorf("Visible(all) = %v", got)
	}

	if got := l.ScrollToCard(3, 0, step); got != l.Cards[3].Box.Bottom()-step {
		t.Errorf("ScrollToCard(3) = %d", got)
	}
	if got := l.ScrollToCard(0, 2*step, step); got != 0 {
		t.Errorf("ScrollToCard(0) = %d", got)
	}
}
