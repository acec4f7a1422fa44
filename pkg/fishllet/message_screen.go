package fishllet

import (
	"time"

	"github.com/fishllet/storefront/pkg/fishllet/constants"
	"github.com/fishllet/storefront/pkg/fishllet/internal"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// MessageScreenSettings configures the message screen.
type MessageScreenSettings struct {
	// ConfirmButton is the button used to confirm the selection (default: VirtualButtonA)
	ConfirmButton constants.VirtualButton
	// BackButton is the button used to go back/cancel (default: VirtualButtonB)
	BackButton constants.VirtualButton
	// InitialSelection is the index of the initially selected option (default: 0)
	InitialSelection int
	// FooterHelpItems are shown along the bottom edge
	FooterHelpItems []FooterHelpItem
}

// MessageOption is a selectable choice below the message.
type MessageOption struct {
	DisplayName string
	Value       interface{}
}

// MessageScreenResult is the option the user confirmed.
type MessageScreenResult struct {
	SelectedIndex int
	SelectedValue interface{}
}

type messageScreenController struct {
	title         string
	message       string
	options       []MessageOption
	selectedIndex int
	settings      MessageScreenSettings
	cache         *internal.TextCache
	inputDelay    time.Duration
	lastInputTime time.Time
	cancelled     bool
}

// MessageScreen shows a title, a wrapped message and a row of options the
// user moves between with left/right and confirms with the confirm button.
// Returns ErrCancelled if the user presses the back button or closes the window.
// Closing the window also leaves a quit event queued for the next screen.
func MessageScreen(title, message string, options []MessageOption, settings MessageScreenSettings) (*MessageScreenResult, error) {
	window := internal.GetWindow()
	if window == nil {
		return nil, NewInfrastructureError("message_screen", errNotInitialized)
	}
	if len(options) == 0 {
		return nil, ErrCancelled
	}

	if settings.ConfirmButton == constants.VirtualButtonUnassigned {
		settings.ConfirmButton = constants.VirtualButtonA
	}
	if settings.BackButton == constants.VirtualButtonUnassigned {
		settings.BackButton = constants.VirtualButtonB
	}

	c := &messageScreenController{
		title:         title,
		message:       message,
		options:       options,
		selectedIndex: settings.InitialSelection,
		settings:      settings,
		cache:         internal.NewTextCache(window.Renderer),
		inputDelay:    constants.DefaultInputDelay,
		lastInputTime: time.Now(),
	}
	defer c.cache.Destroy()

	if c.selectedIndex < 0 || c.selectedIndex >= len(options) {
		c.selectedIndex = 0
	}

	for c.handleEvents() {
		c.render(window)
	}

	if c.cancelled {
		return nil, ErrCancelled
	}

	return &MessageScreenResult{
		SelectedIndex: c.selectedIndex,
		SelectedValue: c.options[c.selectedIndex].Value,
	}, nil
}

// handleEvents returns false once the user has confirmed or cancelled.
func (c *messageScreenController) handleEvents() bool {
	processor := internal.GetInputProcessor()

	for event := sdl.WaitEventTimeout(constants.DefaultFrameDelay); event != nil; event = sdl.PollEvent() {
		if _, ok := event.(*sdl.QuitEvent); ok {
			// Re-post so the screens underneath close as well.
			sdl.PushEvent(&sdl.QuitEvent{Type: sdl.QUIT, Timestamp: sdl.GetTicks()})
			c.cancelled = true
			return false
		}

		inputEvent := processor.ProcessSDLEvent(event)
		if inputEvent == nil || !inputEvent.Pressed {
			continue
		}

		if time.Since(c.lastInputTime) < c.inputDelay {
			continue
		}
		c.lastInputTime = time.Now()

		switch inputEvent.Button {
		case constants.VirtualButtonLeft:
			c.navigateLeft()
		case constants.VirtualButtonRight:
			c.navigateRight()
		case c.settings.ConfirmButton, constants.VirtualButtonStart:
			return false
		case c.settings.BackButton:
			c.cancelled = true
			return false
		}
	}
	return true
}

func (c *messageScreenController) navigateLeft() {
	c.selectedIndex--
	if c.selectedIndex < 0 {
		c.selectedIndex = len(c.options) - 1
	}
}

func (c *messageScreenController) navigateRight() {
	c.selectedIndex++
	if c.selectedIndex >= len(c.options) {
		c.selectedIndex = 0
	}
}

func (c *messageScreenController) render(window *internal.Window) {
	renderer := window.Renderer
	theme := internal.GetTheme()
	window.Clear()

	windowWidth := window.GetWidth()
	windowHeight := window.GetHeight()
	centerX := windowWidth / 2

	maxMessageWidth := internal.Min32(windowWidth*3/4, 800)
	titleHeight := int32(internal.Fonts.HeaderFont.Height())
	optionHeight := int32(internal.Fonts.NameFont.Height()) + 16
	spacing := int32(30)

	lines := internal.WrapText(c.message, internal.Fonts.PriceFont, maxMessageWidth)
	lineHeight := int32(internal.Fonts.PriceFont.Height())
	messageHeight := int32(len(lines))*lineHeight + int32(len(lines)-1)*(lineHeight/5)

	totalHeight := titleHeight + spacing + messageHeight + spacing + optionHeight
	y := (windowHeight - totalHeight - constants.DefaultFooterHeight) / 2

	logoSize := titleHeight
	if tex := logoTextureFor(renderer, logoSize); tex != nil {
		renderer.Copy(tex, nil, &sdl.Rect{X: centerX - logoSize/2, Y: y - logoSize - spacing/2, W: logoSize, H: logoSize})
	}

	internal.RenderMultilineText(c.cache, c.title, internal.Fonts.HeaderFont, maxMessageWidth, centerX, y, theme.HeaderColor, constants.TextAlignCenter)
	y += titleHeight + spacing

	internal.RenderMultilineText(c.cache, c.message, internal.Fonts.PriceFont, maxMessageWidth, centerX, y, theme.HintColor, constants.TextAlignCenter)
	y += messageHeight + spacing

	c.renderOptions(renderer, theme, centerX, y, optionHeight, internal.Fonts.NameFont)

	renderFooter(renderer, c.cache, c.settings.FooterHelpItems, internal.SymmetricPadding(16, 10))

	window.Present()
}

// renderOptions draws the options as pills centered on centerX; the
// selected one uses the card color, the others are outlined.
func (c *messageScreenController) renderOptions(renderer *sdl.Renderer, theme internal.Theme, centerX, y, height int32, font *ttf.Font) {
	const gap = int32(16)
	const padX = int32(24)

	textures := make([]internal.TextTexture, len(c.options))
	total := int32(0)
	for i, opt := range c.options {
		color := theme.HeaderColor
		if i == c.selectedIndex {
			color = theme.AccentColor
		}
		t, err := c.cache.Get(opt.DisplayName, font, color)
		if err != nil {
			internal.GetInternalLogger().Error("Failed to render option", "error", err)
			continue
		}
		textures[i] = t
		total += t.W + 2*padX
	}
	total += gap * int32(len(c.options)-1)

	x := centerX - total/2
	for i, t := range textures {
		if t.Texture == nil {
			continue
		}
		pill := sdl.Rect{X: x, Y: y, W: t.W + 2*padX, H: height}
		if i == c.selectedIndex {
			internal.FillRoundedRect(renderer, pill, height/2, theme.CardColor)
		} else {
			internal.DrawOutline(renderer, pill, 2, theme.HeaderColor)
		}
		renderer.Copy(t.Texture, nil, &sdl.Rect{X: x + padX, Y: y + (height-t.H)/2, W: t.W, H: t.H})
		x += pill.W + gap
	}
}
