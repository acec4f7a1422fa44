package fishllet

import (
	"time"

	"github.com/fishllet/storefront/pkg/fishllet/catalog"
	"github.com/fishllet/storefront/pkg/fishllet/constants"
	"github.com/fishllet/storefront/pkg/fishllet/internal"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// CatalogAction is how the user left the catalog screen.
type CatalogAction int

const (
	CatalogActionNone     CatalogAction = iota
	CatalogActionRegister               // Register button (Y)
	CatalogActionExit                   // Menu button or window closed
	catalogActionCancelled
)

// CatalogScreenSettings configures the catalog screen.
type CatalogScreenSettings struct {
	FooterHelpItems []FooterHelpItem
	EmptyMessage    string // Shown when the catalog has no products
	InitialScroll   int32  // Restored scroll offset
	InitialFocus    int    // Restored focused card
	RegisterButton  constants.VirtualButton
	ExitButton      constants.VirtualButton
}

// CatalogScreenResult is returned when the user leaves the catalog.
type CatalogScreenResult struct {
	Action  CatalogAction
	Scroll  int32 // Scroll offset to restore on return
	Focused int   // Focused card to restore on return
}

type catalogScreenState struct {
	window        *internal.Window
	renderer      *sdl.Renderer
	view          catalog.View
	settings      CatalogScreenSettings
	cache         *internal.TextCache
	layout        catalog.Layout
	layoutWidth   int32
	focused       int
	scrollY       float32
	targetScrollY int32
	scrollRepeat  internal.ScrollRepeat
	inputDelay    time.Duration
	lastInputTime time.Time
	action        CatalogAction
}

// CatalogScreen shows the catalog as a scrollable list of product cards,
// one per product, in catalog order.
// Returns ErrCancelled if the user presses the back button.
func CatalogScreen(view catalog.View, settings CatalogScreenSettings) (*CatalogScreenResult, error) {
	window := internal.GetWindow()
	if window == nil {
		return nil, NewInfrastructureError("catalog_screen", errNotInitialized)
	}

	if settings.RegisterButton == constants.VirtualButtonUnassigned {
		settings.RegisterButton = constants.VirtualButtonY
	}
	if settings.ExitButton == constants.VirtualButtonUnassigned {
		settings.ExitButton = constants.VirtualButtonMenu
	}

	s := &catalogScreenState{
		window:        window,
		renderer:      window.Renderer,
		view:          view,
		settings:      settings,
		cache:         internal.NewTextCache(window.Renderer),
		focused:       settings.InitialFocus,
		scrollY:       float32(settings.InitialScroll),
		targetScrollY: settings.InitialScroll,
		scrollRepeat:  internal.NewScrollRepeat(),
		inputDelay:    constants.DefaultInputDelay,
		lastInputTime: time.Now(),
	}
	defer s.cache.Destroy()

	if s.focused < 0 || s.focused >= view.Len() {
		s.focused = 0
	}
	s.relayout()
	s.targetScrollY = s.layout.ClampScroll(s.targetScrollY, s.viewportHeight())
	s.scrollY = float32(s.targetScrollY)

	internal.GetInternalLogger().Debug("Showing catalog", "products", view.Len(), "scroll", s.targetScrollY)

	for s.action == CatalogActionNone {
		s.handleEvents()
		s.update()
		s.render()
	}

	if s.action == catalogActionCancelled {
		return nil, ErrCancelled
	}
	return &CatalogScreenResult{Action: s.action, Scroll: s.targetScrollY, Focused: s.focused}, nil
}

func (s *catalogScreenState) relayout() {
	width := s.window.GetWidth()
	if width == s.layoutWidth && s.layout.Cards != nil {
		return
	}
	m := catalog.DefaultMetrics(
		int32(internal.Fonts.HeaderFont.Height()),
		int32(internal.Fonts.NameFont.Height()),
		int32(internal.Fonts.PriceFont.Height()),
	)
	s.layout = s.view.Layout(width, m)
	s.layoutWidth = width
}

func (s *catalogScreenState) viewportHeight() int32 {
	return internal.Max32(0, s.window.GetHeight()-s.layout.ListTop-constants.DefaultFooterHeight)
}

func (s *catalogScreenState) handleEvents() {
	processor := internal.GetInputProcessor()

	for event := sdl.WaitEventTimeout(constants.DefaultFrameDelay); event != nil; event = sdl.PollEvent() {
		switch event.(type) {
		case *sdl.QuitEvent:
			s.action = CatalogActionExit
			return
		case *sdl.WindowEvent:
			s.relayout()
			s.targetScrollY = s.layout.ClampScroll(s.targetScrollY, s.viewportHeight())
		default:
			inputEvent := processor.ProcessSDLEvent(event)
			if inputEvent == nil {
				continue
			}
			if inputEvent.Pressed {
				s.handleInputEvent(inputEvent)
			} else {
				s.scrollRepeat.Release(inputEvent.Button)
			}
		}
		if s.action != CatalogActionNone {
			return
		}
	}
}

func (s *catalogScreenState) handleInputEvent(inputEvent *internal.Event) {
	if inputEvent.Repeat || time.Since(s.lastInputTime) < s.inputDelay {
		return
	}
	s.lastInputTime = time.Now()

	if s.scrollRepeat.Press(inputEvent.Button) {
		s.move(inputEvent.Button)
		return
	}

	switch inputEvent.Button {
	case constants.VirtualButtonL1:
		s.page(-1)
	case constants.VirtualButtonR1:
		s.page(1)
	case constants.VirtualButtonB:
		s.action = catalogActionCancelled
	case s.settings.RegisterButton:
		s.action = CatalogActionRegister
	case s.settings.ExitButton:
		s.action = CatalogActionExit
	}
}

// move shifts focus one card up or down and scrolls it into view.
func (s *catalogScreenState) move(button constants.VirtualButton) {
	if s.view.Len() == 0 {
		return
	}
	switch button {
	case constants.VirtualButtonUp:
		if s.focused > 0 {
			s.focused--
		}
	case constants.VirtualButtonDown:
		if s.focused < s.view.Len()-1 {
			s.focused++
		}
	}
	s.targetScrollY = s.layout.ScrollToCard(s.focused, s.targetScrollY, s.viewportHeight())
}

func (s *catalogScreenState) page(direction int32) {
	viewport := s.viewportHeight()
	s.targetScrollY = s.layout.ClampScroll(s.targetScrollY+direction*viewport, viewport)
	if visible := s.layout.Visible(s.targetScrollY, viewport); len(visible) > 0 {
		s.focused = visible[0]
	}
}

func (s *catalogScreenState) update() {
	if button := s.scrollRepeat.Update(); button != constants.VirtualButtonUnassigned {
		s.move(button)
	}

	diff := float32(s.targetScrollY) - s.scrollY
	if diff > -1 && diff < 1 {
		s.scrollY = float32(s.targetScrollY)
		return
	}
	s.scrollY += diff * 0.25
}

func (s *catalogScreenState) render() {
	theme := internal.GetTheme()
	s.window.Clear()

	s.renderHeader(theme)

	viewport := s.viewportHeight()
	scroll := int32(s.scrollY)
	listTop := s.layout.ListTop

	clip := sdl.Rect{X: 0, Y: listTop, W: s.window.GetWidth(), H: viewport}
	s.renderer.SetClipRect(&clip)

	if s.view.Len() == 0 && s.settings.EmptyMessage != "" {
		internal.RenderMultilineText(s.cache, s.settings.EmptyMessage, internal.Fonts.PriceFont,
			s.layout.Header.W, s.window.GetWidth()/2, listTop+20, theme.HeaderColor, constants.TextAlignCenter)
	}

	for _, i := range s.layout.Visible(scroll, viewport) {
		s.renderCard(theme, s.layout.Cards[i], listTop-scroll, i == s.focused)
	}

	s.renderer.SetClipRect(nil)

	renderFooter(s.renderer, s.cache, s.settings.FooterHelpItems, internal.SymmetricPadding(s.layout.Metrics.PaddingX, 10))

	s.window.Present()
}

func (s *catalogScreenState) renderHeader(theme internal.Theme) {
	header := s.layout.Header
	title, err := s.cache.Get(s.view.Title(), internal.Fonts.HeaderFont, theme.HeaderColor)
	if err != nil {
		internal.GetInternalLogger().Error("Failed to render header", "error", err)
		return
	}

	logoSize := header.H
	gap := logoSize / 4
	total := logoSize + gap + title.W
	x := header.X + (header.W-total)/2

	if tex := logoTextureFor(s.renderer, logoSize); tex != nil {
		s.renderer.Copy(tex, nil, &sdl.Rect{X: x, Y: header.Y, W: logoSize, H: logoSize})
	}
	s.renderer.Copy(title.Texture, nil, &sdl.Rect{X: x + logoSize + gap, Y: header.Y + (header.H-title.H)/2, W: title.W, H: title.H})
}

func (s *catalogScreenState) renderCard(theme internal.Theme, card catalog.CardLayout, offsetY int32, focused bool) {
	box := toSDLRect(card.Box, offsetY)

	if focused {
		internal.DrawOutline(s.renderer, sdl.Rect{X: box.X - 1, Y: box.Y - 1, W: box.W + 2, H: box.H + 2}, 3, theme.FocusColor)
	}
	internal.FillRoundedRect(s.renderer, box, s.layout.Metrics.CardRadius, theme.CardColor)

	s.renderLine(card.Card.Name, internal.Fonts.NameFont, theme.AccentColor, toSDLRect(card.Name, offsetY))
	s.renderLine(card.Card.Price, internal.Fonts.PriceFont, theme.PriceColor, toSDLRect(card.Price, offsetY))
}

// renderLine draws text at rect's origin, cropping it to rect's width.
func (s *catalogScreenState) renderLine(text string, font *ttf.Font, color sdl.Color, rect sdl.Rect) {
	if text == "" {
		return
	}
	t, err := s.cache.Get(text, font, color)
	if err != nil {
		internal.GetInternalLogger().Error("Failed to render card text", "error", err)
		return
	}
	w := internal.Min32(t.W, rect.W)
	s.renderer.Copy(t.Texture, &sdl.Rect{X: 0, Y: 0, W: w, H: t.H}, &sdl.Rect{X: rect.X, Y: rect.Y, W: w, H: t.H})
}

func toSDLRect(r catalog.Rect, offsetY int32) sdl.Rect {
	return sdl.Rect{X: r.X, Y: r.Y + offsetY, W: r.W, H: r.H}
}
