package fishllet

import (
	"github.com/fishllet/storefront/pkg/fishllet/app"
	"github.com/fishllet/storefront/pkg/fishllet/constants"
	"github.com/fishllet/storefront/pkg/fishllet/locale"
)

// NewViews returns the SDL implementation of every application screen,
// with interface text from loc.
func NewViews(loc *locale.Localizer) app.Views {
	return app.Views{
		Login:    loginView(loc),
		Register: registerView(loc),
		Home:     homeView(loc),
	}
}

func loginView(loc *locale.Localizer) func(app.LoginInput) (app.LoginResult, error) {
	return func(app.LoginInput) (app.LoginResult, error) {
		res, err := MessageScreen(
			loc.T(locale.LoginTitle),
			loc.T(locale.LoginMessage),
			[]MessageOption{
				{DisplayName: loc.T(locale.LoginContinue), Value: app.LoginActionContinue},
				{DisplayName: loc.T(locale.LoginRegister), Value: app.LoginActionRegister},
			},
			MessageScreenSettings{
				FooterHelpItems: []FooterHelpItem{
					footerItem(constants.VirtualButtonB, loc.T(locale.FooterExit)),
					footerItem(constants.VirtualButtonA, loc.T(locale.LoginContinue)),
				},
			},
		)
		if err != nil {
			return app.LoginResult{}, err
		}
		return app.LoginResult{Action: res.SelectedValue.(app.LoginAction)}, nil
	}
}

func registerView(loc *locale.Localizer) func(app.RegisterInput) (app.RegisterResult, error) {
	return func(app.RegisterInput) (app.RegisterResult, error) {
		_, err := MessageScreen(
			loc.T(locale.RegisterTitle),
			loc.T(locale.RegisterMessage),
			[]MessageOption{
				{DisplayName: loc.T(locale.RegisterSubmit), Value: app.RegisterActionSubmitted},
			},
			MessageScreenSettings{
				FooterHelpItems: []FooterHelpItem{
					footerItem(constants.VirtualButtonB, loc.T(locale.FooterBack)),
					footerItem(constants.VirtualButtonA, loc.T(locale.RegisterSubmit)),
				},
			},
		)
		if err != nil {
			return app.RegisterResult{}, err
		}
		return app.RegisterResult{Action: app.RegisterActionSubmitted}, nil
	}
}

func homeView(loc *locale.Localizer) func(app.HomeInput) (app.HomeResult, error) {
	return func(in app.HomeInput) (app.HomeResult, error) {
		settings := CatalogScreenSettings{
			EmptyMessage:   loc.T(locale.HomeEmpty),
			RegisterButton: constants.VirtualButtonY,
			ExitButton:     constants.VirtualButtonMenu,
			FooterHelpItems: []FooterHelpItem{
				footerItem(constants.VirtualButtonB, loc.T(locale.FooterBack)),
				footerItem(constants.VirtualButtonY, loc.T(locale.HomeRegister)),
				footerItem(constants.VirtualButtonMenu, loc.T(locale.FooterExit)),
			},
		}
		if in.Resume != nil {
			settings.InitialScroll = in.Resume.Scroll
			settings.InitialFocus = in.Resume.Focused
		}

		res, err := CatalogScreen(in.View, settings)
		if err != nil {
			return app.HomeResult{}, err
		}

		resume := &app.HomeResume{Scroll: res.Scroll, Focused: res.Focused}
		switch res.Action {
		case CatalogActionRegister:
			return app.HomeResult{Action: app.HomeActionRegister, Resume: resume}, nil
		case CatalogActionExit:
			return app.HomeResult{Action: app.HomeActionExit, Resume: resume}, nil
		}
		return app.HomeResult{Action: app.HomeActionBack, Resume: resume}, nil
	}
}
