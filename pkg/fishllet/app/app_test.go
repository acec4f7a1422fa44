package app

import (
	"bytes"
	"errors"
	"log/slog"
	"reflect"
	"strings"
	"testing"

	"github.com/fishllet/storefront/pkg/fishllet/catalog"
	"github.com/fishllet/storefront/pkg/fishllet/router"
)

// script drives the fake views: each call pops the next scripted result for
// its screen and records the visit.
type script struct {
	visits    []router.Screen
	login     []LoginResult
	register  []RegisterResult
	home      []HomeResult
	homeSeen  []HomeInput
	regFrom   []router.Screen
	loginErrs []error
}

func (s *script) views() Views {
	return Views{
		Login: func(LoginInput) (LoginResult, error) {
			s.visits = append(s.visits, ScreenLogin)
			if len(s.loginErrs) > 0 {
				err := s.loginErrs[0]
				s.loginErrs = s.loginErrs[1:]
				return LoginResult{}, err
			}
			res := s.login[0]
			s.login = s.login[1:]
			return res, nil
		},
		Register: func(in RegisterInput) (RegisterResult, error) {
			s.visits = append(s.visits, ScreenRegister)
			s.regFrom = append(s.regFrom, in.From)
			res := s.register[0]
			s.register = s.register[1:]
			return res, nil
		},
		Home: func(in HomeInput) (HomeResult, error) {
			s.visits = append(s.visits, ScreenHome)
			s.homeSeen = append(s.homeSeen, in)
			res := s.home[0]
			s.home = s.home[1:]
			return res, nil
		},
	}
}

func newTestApp(s *script) *App {
	view := catalog.NewView("Fishllet", catalog.Default())
	return New(view, s.views(), slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))
}

func TestLaunchShowsLoginFirst(t *testing.T) {
	s := &script{login: []LoginResult{{Action: LoginActionBack}}}

	if err := newTestApp(s).Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if want := []router.Screen{ScreenLogin}; !reflect.DeepEqual(s.visits, want) {
		t.Fatalf("visits = %v, want %v", s.visits, want)
	}
}

func TestEveryRunStartsAtLogin(t *testing.T) {
	s := &script{
		login: []LoginResult{{Action: LoginActionContinue}, {Action: LoginActionBack}},
		home:  []HomeResult{{Action: HomeActionExit}},
	}
	a := newTestApp(s)

	if err := a.Run(); err != nil {
		t.Fatalf("first Run() error = %v", err)
	}
	if err := a.Run(); err != nil {
		t.Fatalf("second Run() error = %v", err)
	}

	want := []router.Screen{ScreenLogin, ScreenHome, ScreenLogin}
	if !reflect.DeepEqual(s.visits, want) {
		t.Fatalf("visits = %v, want %v", s.visits, want)
	}
}

func TestMountRejectsMissingViews(t *testing.T) {
	tests := []struct {
		name    string
		drop    func(*Views)
		missing string
	}{
		{name: "login", drop: func(v *Views) { v.Login = nil }, missing: "Login"},
		{name: "register", drop: func(v *Views) { v.Register = nil }, missing: "Register"},
		{name: "home", drop: func(v *Views) { v.Home = nil }, missing: "Home"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &script{}
			views := s.views()
			tt.drop(&views)

			a := New(catalog.NewView("Fishllet", catalog.Default()), views, nil)

			_, err := a.Mount(nil)
			var cfgErr *router.ConfigurationError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("Mount() error = %v, want *router.ConfigurationError", err)
			}
			if !reflect.DeepEqual(cfgErr.Missing, []string{tt.missing}) {
				t.Fatalf("Missing = %v, want [%s]", cfgErr.Missing, tt.missing)
			}

			if err := a.Run(); !router.IsConfigurationError(err) {
				t.Fatalf("Run() error = %v, want configuration error", err)
			}
			if len(s.visits) != 0 {
				t.Fatalf("screens shown before failing: %v", s.visits)
			}
		})
	}
}

func TestHomeRegisterRoundTripKeepsCatalog(t *testing.T) {
	resume := &HomeResume{Scroll: 120, Focused: 2}
	s := &script{
		login: []LoginResult{{Action: LoginActionContinue}, {Action: LoginActionBack}},
		home: []HomeResult{
			{Action: HomeActionRegister, Resume: resume},
			{Action: HomeActionBack},
		},
		register: []RegisterResult{{Action: RegisterActionBack}},
	}

	if err := newTestApp(s).Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	wantVisits := []router.Screen{ScreenLogin, ScreenHome, ScreenRegister, ScreenHome, ScreenLogin}
	if !reflect.DeepEqual(s.visits, wantVisits) {
		t.Fatalf("visits = %v, want %v", s.visits, wantVisits)
	}
	if !reflect.DeepEqual(s.regFrom, []router.Screen{ScreenHome}) {
		t.Fatalf("register opened from %v", s.regFrom)
	}

	first, second := s.homeSeen[0], s.homeSeen[1]
	if first.Resume != nil {
		t.Fatalf("first Home visit had resume state %+v", first.Resume)
	}
	if second.Resume != resume {
		t.Fatalf("second Home visit resume = %+v, want %+v", second.Resume, resume)
	}
	if !reflect.DeepEqual(first.View.Cards(), second.View.Cards()) {
		t.Fatal("catalog changed across the Register round trip")
	}
	if second.View.Len() != 4 {
		t.Fatalf("Home shows %d cards, want 4", second.View.Len())
	}
}

func TestLoginToRegisterAndBack(t *testing.T) {
	s := &script{
		login:    []LoginResult{{Action: LoginActionRegister}, {Action: LoginActionBack}},
		register: []RegisterResult{{Action: RegisterActionBack}},
	}

	if err := newTestApp(s).Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	want := []router.Screen{ScreenLogin, ScreenRegister, ScreenLogin}
	if !reflect.DeepEqual(s.visits, want) {
		t.Fatalf("visits = %v, want %v", s.visits, want)
	}
}

func TestRegisterSubmitGoesHome(t *testing.T) {
	s := &script{
		login:    []LoginResult{{Action: LoginActionRegister}},
		register: []RegisterResult{{Action: RegisterActionSubmitted}},
		home:     []HomeResult{{Action: HomeActionExit}},
	}

	if err := newTestApp(s).Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	want := []router.Screen{ScreenLogin, ScreenRegister, ScreenHome}
	if !reflect.DeepEqual(s.visits, want) {
		t.Fatalf("visits = %v, want %v", s.visits, want)
	}
}

func TestBackFromHomeAfterSubmitRestoresRegister(t *testing.T) {
	s := &script{
		login: []LoginResult{{Action: LoginActionRegister}, {Action: LoginActionBack}},
		register: []RegisterResult{
			{Action: RegisterActionSubmitted},
			{Action: RegisterActionBack},
		},
		home: []HomeResult{{Action: HomeActionBack}},
	}

	if err := newTestApp(s).Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	want := []router.Screen{ScreenLogin, ScreenRegister, ScreenHome, ScreenRegister, ScreenLogin}
	if !reflect.DeepEqual(s.visits, want) {
		t.Fatalf("visits = %v, want %v", s.visits, want)
	}
	if want := []router.Screen{ScreenLogin, ScreenLogin}; !reflect.DeepEqual(s.regFrom, want) {
		t.Fatalf("register opened from %v, want %v", s.regFrom, want)
	}
}

func TestCancelledScreenGoesBack(t *testing.T) {
	s := &script{loginErrs: []error{router.ErrCancelled}}

	if err := newTestApp(s).Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(s.visits) != 1 {
		t.Fatalf("visits = %v", s.visits)
	}
}

func TestScreenFailureStopsRun(t *testing.T) {
	boom := errors.New("font missing")
	s := &script{loginErrs: []error{boom}}

	var logs bytes.Buffer
	a := New(catalog.NewView("Fishllet", catalog.Default()), s.views(), slog.New(slog.NewTextHandler(&logs, nil)))

	if err := a.Run(); !errors.Is(err, boom) {
		t.Fatalf("Run() error = %v, want %v", err, boom)
	}
	if !strings.Contains(logs.String(), "session=") {
		t.Fatalf("log lines missing session attribute: %s", logs.String())
	}
}

func TestScreenName(t *testing.T) {
	names := map[router.Screen]string{
		ScreenLogin:       "Login",
		ScreenRegister:    "Register",
		ScreenHome:        "Home",
		router.ScreenExit: "Exit",
		router.Screen(42): "Unknown",
	}
	for s, want := range names {
		if got := ScreenName(s); got != want {
			t.Errorf("ScreenName(%d) = %q, want %q", s, got, want)
		}
	}
	if len(Screens()) != 3 {
		t.Fatalf("Screens() = %v", Screens())
	}
}
