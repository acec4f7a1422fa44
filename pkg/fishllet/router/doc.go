// Package router provides screen navigation with explicit data flow.
//
// Each screen is a function from a screen-specific input to a
// screen-specific result. A single transition function decides where to go
// next, pushing the current screen on the navigation stack when moving
// forward and popping it when going back.
//
// # Basic Usage
//
//	const (
//	    ScreenLogin router.Screen = iota
//	    ScreenHome
//	)
//
//	r := router.New().Require(ScreenLogin, ScreenHome)
//
//	r.Register(ScreenLogin, func(input any) (any, error) {
//	    return loginScreen(input.(LoginInput))
//	})
//
//	r.Register(ScreenHome, func(input any) (any, error) {
//	    return homeScreen(input.(HomeInput))
//	})
//
//	r.OnTransition(func(from router.Screen, result any, stack *router.Stack) (router.Screen, any) {
//	    switch from {
//	    case ScreenLogin:
//	        stack.Push(from, LoginInput{}, nil)
//	        return ScreenHome, HomeInput{Catalog: c}
//	    case ScreenHome:
//	        if entry := stack.Pop(); entry != nil {
//	            return entry.Screen, entry.Input
//	        }
//	    }
//	    return router.ScreenExit, nil
//	})
//
//	err := r.Run(ScreenLogin, LoginInput{})
//
// # Completeness
//
// Screens passed to Require form the closed set the application may show.
// Run validates the registry before the first screen is shown and returns a
// *ConfigurationError naming every required screen without a function, so a
// missing view is a startup failure rather than a blank screen later on.
//
// # Resume State
//
// Screens can return resume state (like scroll position) that gets stored
// on the stack when navigating forward. When navigating back, this state
// is passed back to the screen via its input, allowing it to restore position.
//
// The Resume field should be nil for stateless screens (dialogs, confirmations).
package router
