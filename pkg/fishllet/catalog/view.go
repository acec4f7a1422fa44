package catalog

// Card is the render model for a single product.
type Card struct {
	ID    string
	Name  string
	Price string
}

// View is the render model for the catalog screen: a header title followed
// by one card per product, in catalog order.
type View struct {
	title string
	cards []Card
}

// NewView builds the render model for c.
func NewView(title string, c *Catalog) View {
	products := c.Products()
	cards := make([]Card, len(products))
	for i, p := range products {
		cards[i] = Card{ID: p.ID, Name: p.Name, Price: p.Price}
	}
	return View{title: title, cards: cards}
}

// Title returns the header text.
func (v View) Title() string {
	return v.title
}

// Cards returns the cards in display order.
func (v View) Cards() []Card {
	out := make([]Card, len(v.cards))
	copy(out, v.cards)
	return out
}

// Len returns the number of cards.
func (v View) Len() int {
	return len(v.cards)
}

// Rect is an axis-aligned rectangle in pixels.
type Rect struct {
	X, Y, W, H int32
}

// Bottom returns the y coordinate just past the rectangle.
func (r Rect) Bottom() int32 {
	return r.Y + r.H
}

// Metrics describes the spacing used to lay out the catalog screen.
// Text heights are measured from the loaded fonts by the caller.
type Metrics struct {
	PaddingX     int32 // Horizontal screen padding
	PaddingTop   int32 // Space above the header
	HeaderHeight int32 // Height of the rendered title text
	HeaderMargin int32 // Space between header and first card
	CardPadding  int32 // Inner padding of each card
	CardSpacing  int32 // Space below each card
	CardRadius   int32 // Corner radius used when drawing cards
	NameHeight   int32 // Height of the product name line
	PriceGap     int32 // Space between name and price
	PriceHeight  int32 // Height of the price line
}

// DefaultMetrics returns the storefront's spacing with the given text heights.
func DefaultMetrics(headerHeight, nameHeight, priceHeight int32) Metrics {
	return Metrics{
		PaddingX:     16,
		PaddingTop:   40,
		HeaderHeight: headerHeight,
		HeaderMargin: 24,
		CardPadding:  20,
		CardSpacing:  16,
		CardRadius:   12,
		NameHeight:   nameHeight,
		PriceGap:     8,
		PriceHeight:  priceHeight,
	}
}

// CardHeight returns the height of a single card.
func (m Metrics) CardHeight() int32 {
	return 2*m.CardPadding + m.NameHeight + m.PriceGap + m.PriceHeight
}

// CardLayout positions one card. Card, Name and Price are in list
// coordinates: y = 0 is the top of the scrollable list area.
type CardLayout struct {
	Card  Card
	Box   Rect
	Name  Rect
	Price Rect
}

// Layout is the computed geometry of a View for a given width.
type Layout struct {
	Header        Rect
	ListTop       int32
	Cards         []CardLayout
	ContentHeight int32
	Metrics       Metrics
}

// Layout computes card geometry for a screen of the given width.
func (v View) Layout(width int32, m Metrics) Layout {
	innerWidth := width - 2*m.PaddingX
	if innerWidth < 0 {
		innerWidth = 0
	}

	textWidth := innerWidth - 2*m.CardPadding
	if textWidth < 0 {
		textWidth = 0
	}

	l := Layout{
		Header:  Rect{X: m.PaddingX, Y: m.PaddingTop, W: innerWidth, H: m.HeaderHeight},
		ListTop: m.PaddingTop + m.HeaderHeight + m.HeaderMargin,
		Cards:   make([]CardLayout, len(v.cards)),
		Metrics: m,
	}

	cardHeight := m.CardHeight()
	y := int32(0)
	for i, c := range v.cards {
		box := Rect{X: m.PaddingX, Y: y, W: innerWidth, H: cardHeight}
		name := Rect{X: box.X + m.CardPadding, Y: box.Y + m.CardPadding, W: textWidth, H: m.NameHeight}
		price := Rect{X: name.X, Y: name.Bottom() + m.PriceGap, W: textWidth, H: m.PriceHeight}
		l.Cards[i] = CardLayout{Card: c, Box: box, Name: name, Price: price}
		y += cardHeight + m.CardSpacing
	}
	l.ContentHeight = y

	return l
}

// MaxScroll returns the largest useful scroll offset for a list viewport of
// the given height.
func (l Layout) MaxScroll(viewport int32) int32 {
	if l.ContentHeight <= viewport {
		return 0
	}
	return l.ContentHeight - viewport
}

// ClampScroll limits scroll to [0, MaxScroll(viewport)].
func (l Layout) ClampScroll(scroll, viewport int32) int32 {
	if scroll < 0 {
		return 0
	}
	if limit := l.MaxScroll(viewport); scroll > limit {
		return limit
	}
	return scroll
}

// Visible returns the indices of cards that intersect the viewport
// [scroll, scroll+viewport).
func (l Layout) Visible(scroll, viewport int32) []int {
	var visible []int
	for i, c := range l.Cards {
		if c.Box.Bottom() > scroll && c.Box.Y < scroll+viewport {
			visible = append(visible, i)
		}
	}
	return visible
}

// ScrollToCard returns the smallest scroll change that brings card i fully
// into the viewport.
func (l Layout) ScrollToCard(i int, scroll, viewport int32) int32 {
	if i < 0 || i >= len(l.Cards) {
		return l.ClampScroll(scroll, viewport)
	}
	box := l.Cards[i].Box
	switch {
	case box.Y < scroll:
		scroll = box.Y
	case box.Bottom() > scroll+viewport:
		scroll = box.Bottom() - viewport
	}
	return l.ClampScroll(scroll, viewport)
}
