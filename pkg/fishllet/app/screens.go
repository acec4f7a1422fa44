// Package app wires the storefront's screens into a router: the closed set
// of screens, the data each one takes and returns, and the transitions
// between them.
package app

import (
	"github.com/fishllet/storefront/pkg/fishllet/catalog"
	"github.com/fishllet/storefront/pkg/fishllet/router"
)

const (
	ScreenLogin router.Screen = iota
	ScreenRegister
	ScreenHome
)

// InitialScreen is shown at launch, before any navigation.
const InitialScreen = ScreenLogin

// Screens returns every screen the application can show.
func Screens() []router.Screen {
	return []router.Screen{ScreenLogin, ScreenRegister, ScreenHome}
}

// ScreenName returns the display name of a screen.
func ScreenName(s router.Screen) string {
	switch s {
	case ScreenLogin:
		return "Login"
	case ScreenRegister:
		return "Register"
	case ScreenHome:
		return "Home"
	case router.ScreenExit:
		return "Exit"
	default:
		return "Unknown"
	}
}

type LoginAction int

const (
	LoginActionBack     LoginAction = iota // Leave the application
	LoginActionContinue                    // Enter the storefront
	LoginActionRegister                    // Open the registration screen
)

type RegisterAction int

const (
	RegisterActionBack      RegisterAction = iota // Return to the previous screen
	RegisterActionSubmitted                       // Registration placeholder confirmed
)

type HomeAction int

const (
	HomeActionBack     HomeAction = iota // Return to the previous screen
	HomeActionRegister                   // Open the registration screen
	HomeActionExit                       // Leave the application
)

type LoginInput struct{}

type LoginResult struct {
	Action LoginAction
}

type RegisterInput struct {
	// From is the screen the user came from.
	From router.Screen
}

type RegisterResult struct {
	Action RegisterAction
}

type HomeInput struct {
	View   catalog.View
	Resume *HomeResume // nil on first visit
}

type HomeResult struct {
	Action HomeAction
	Resume *HomeResume
}

// HomeResume is the catalog list position kept while the user is on another screen.
type HomeResume struct {
	Scroll  int32
	Focused int
}

// Views holds the function that draws each screen. Every field must be set;
// Mount rejects a Views with a nil field.
type Views struct {
	Login    func(LoginInput) (LoginResult, error)
	Register func(RegisterInput) (RegisterResult, error)
	Home     func(HomeInput) (HomeResult, error)
}
