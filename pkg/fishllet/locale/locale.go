// Package locale provides the storefront's translated interface strings.
// Product data is shown as configured and is never translated.
package locale

import (
	"embed"
	"fmt"
	"path"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed messages/*.toml
var messageFS embed.FS

// Message IDs.
const (
	LoginTitle      = "LoginTitle"
	LoginMessage    = "LoginMessage"
	LoginContinue   = "LoginContinue"
	LoginRegister   = "LoginRegister"
	RegisterTitle   = "RegisterTitle"
	RegisterMessage = "RegisterMessage"
	RegisterSubmit  = "RegisterSubmit"
	HomeEmpty       = "HomeEmpty"
	HomeRegister    = "HomeRegister"
	FooterBack      = "FooterBack"
	FooterExit      = "FooterExit"
	ProductCount    = "ProductCount"
)

// MessageIDs lists every message the interface uses.
func MessageIDs() []string {
	return []string{
		LoginTitle, LoginMessage, LoginContinue, LoginRegister,
		RegisterTitle, RegisterMessage, RegisterSubmit,
		HomeEmpty, HomeRegister,
		FooterBack, FooterExit,
		ProductCount,
	}
}

// DefaultLanguage is used when the requested locale is not supported.
var DefaultLanguage = language.Indonesian

// Supported lists the languages with a message file.
var Supported = []language.Tag{language.Indonesian, language.English}

var matcher = language.NewMatcher(Supported)

// Localizer translates interface strings for one language.
type Localizer struct {
	tag       language.Tag
	localizer *i18n.Localizer
}

// NewBundle loads the embedded message files.
func NewBundle() (*i18n.Bundle, error) {
	bundle := i18n.NewBundle(DefaultLanguage)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	entries, err := messageFS.ReadDir("messages")
	if err != nil {
		return nil, fmt.Errorf("locale: read messages: %w", err)
	}
	for _, e := range entries {
		if _, err := bundle.LoadMessageFileFS(messageFS, path.Join("messages", e.Name())); err != nil {
			return nil, fmt.Errorf("locale: load %s: %w", e.Name(), err)
		}
	}
	return bundle, nil
}

// New returns a Localizer for the closest supported match of tag.
// Unparseable or unsupported tags fall back to DefaultLanguage.
func New(tag string) (*Localizer, error) {
	bundle, err := NewBundle()
	if err != nil {
		return nil, err
	}

	matched := Match(tag)
	return &Localizer{
		tag:       matched,
		localizer: i18n.NewLocalizer(bundle, matched.String()),
	}, nil
}

// Match returns the supported language closest to tag.
func Match(tag string) language.Tag {
	requested, _, err := language.ParseAcceptLanguage(tag)
	if err != nil || len(requested) == 0 {
		return DefaultLanguage
	}
	_, index, confidence := matcher.Match(requested...)
	if confidence == language.No {
		return DefaultLanguage
	}
	return Supported[index]
}

// Language returns the language in use.
func (l *Localizer) Language() language.Tag {
	return l.tag
}

// T returns the translation of id, or id itself if it has no translation.
func (l *Localizer) T(id string) string {
	msg, err := l.localizer.Localize(&i18n.LocalizeConfig{MessageID: id})
	if err != nil {
		return id
	}
	return msg
}

// Plural returns the translation of id for count.
func (l *Localizer) Plural(id string, count int) string {
	msg, err := l.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    id,
		PluralCount:  count,
		TemplateData: map[string]any{"Count": count},
	})
	if err != nil {
		return id
	}
	return msg
}
