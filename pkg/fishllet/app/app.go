package app

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/fishllet/storefront/pkg/fishllet/catalog"
	"github.com/fishllet/storefront/pkg/fishllet/router"
)

// App is the storefront application: a catalog view behind a login screen.
type App struct {
	view   catalog.View
	views  Views
	logger *slog.Logger
}

// New creates an App showing view with the given screen implementations.
func New(view catalog.View, views Views, logger *slog.Logger) *App {
	if logger == nil {
		logger = slog.Default()
	}
	return &App{view: view, views: views, logger: logger}
}

// Mount builds the router for the application and validates it.
// A nil entry in Views is reported as a *router.ConfigurationError.
func (a *App) Mount(logger *slog.Logger) (*router.Router, error) {
	if logger == nil {
		logger = a.logger
	}

	r := router.New().
		Require(Screens()...).
		WithNames(ScreenName).
		WithLogger(logger)

	if a.views.Login != nil {
		r.Register(ScreenLogin, func(input any) (any, error) {
			res, err := a.views.Login(input.(LoginInput))
			if router.IsCancelled(err) {
				return LoginResult{Action: LoginActionBack}, nil
			}
			return res, err
		})
	}
	if a.views.Register != nil {
		r.Register(ScreenRegister, func(input any) (any, error) {
			res, err := a.views.Register(input.(RegisterInput))
			if router.IsCancelled(err) {
				return RegisterResult{Action: RegisterActionBack}, nil
			}
			return res, err
		})
	}
	if a.views.Home != nil {
		r.Register(ScreenHome, func(input any) (any, error) {
			in := input.(HomeInput)
			res, err := a.views.Home(in)
			if router.IsCancelled(err) {
				return HomeResult{Action: HomeActionBack, Resume: in.Resume}, nil
			}
			return res, err
		})
	}

	r.OnTransition(a.transition)

	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}

// Run mounts the application and shows the initial screen. It returns when
// the user leaves the application or a screen fails.
func (a *App) Run() error {
	logger := a.logger.With("session", uuid.NewString())

	r, err := a.Mount(logger)
	if err != nil {
		logger.Error("Application wiring is incomplete", "error", err)
		return err
	}

	logger.Info("Starting storefront", "initial_screen", ScreenName(InitialScreen), "products", a.view.Len())

	if err := r.Run(InitialScreen, LoginInput{}); err != nil {
		logger.Error("Storefront stopped", "error", err)
		return err
	}

	logger.Info("Storefront closed")
	return nil
}

func (a *App) transition(from router.Screen, result any, stack *router.Stack) (router.Screen, any) {
	switch from {
	case ScreenLogin:
		res := result.(LoginResult)
		switch res.Action {
		case LoginActionContinue:
			stack.Push(from, LoginInput{}, nil)
			return ScreenHome, HomeInput{View: a.view}
		case LoginActionRegister:
			stack.Push(from, LoginInput{}, nil)
			return ScreenRegister, RegisterInput{From: from}
		}
		return back(stack)

	case ScreenRegister:
		res := result.(RegisterResult)
		if res.Action == RegisterActionSubmitted {
			in := RegisterInput{From: InitialScreen}
			if prev := stack.Peek(); prev != nil {
				in.From = prev.Screen
			}
			stack.Push(from, in, nil)
			return ScreenHome, HomeInput{View: a.view}
		}
		return back(stack)

	case ScreenHome:
		res := result.(HomeResult)
		switch res.Action {
		case HomeActionRegister:
			stack.Push(from, HomeInput{View: a.view}, res.Resume)
			return ScreenRegister, RegisterInput{From: from}
		case HomeActionExit:
			return router.ScreenExit, nil
		}
		return back(stack)
	}

	return router.ScreenExit, nil
}

// back pops the previous screen, restoring its input and resume state.
// At the root of the stack it exits.
func back(stack *router.Stack) (router.Screen, any) {
	entry := stack.Pop()
	if entry == nil {
		return router.ScreenExit, nil
	}

	if in, ok := entry.Input.(HomeInput); ok {
		if resume, ok := entry.Resume.(*HomeResume); ok {
			in.Resume = resume
		}
		return entry.Screen, in
	}
	return entry.Screen, entry.Input
}
