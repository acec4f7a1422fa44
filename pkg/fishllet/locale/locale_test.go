package locale

import (
	"testing"

	"golang.org/x/text/language"
)

func TestEveryMessageTranslated(t *testing.T) {
	for _, tag := range Supported {
		l, err := New(tag.String())
		if err != nil {
			t.Fatalf("New(%s) error = %v", tag, err)
		}
		for _, id := range MessageIDs() {
			if got := l.T(id); got == id || got == "" {
				t.Errorf("%s: message %s not translated", tag, id)
			}
		}
	}
}

func TestMatch(t *testing.T) {
	tests := []struct {
		in   string
		want language.Tag
	}{
		{in: "id", want: language.Indonesian},
		{in: "id-ID", want: language.Indonesian},
		{in: "en", want: language.English},
		{in: "en-US,en;q=0.9", want: language.English},
		{in: "fr", want: language.Indonesian},
		{in: "", want: language.Indonesian},
		{in: "!!", want: language.Indonesian},
	}
	for _, tt := range tests {
		if got := Match(tt.in); got != tt.want {
			t.Errorf("Match(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestTranslations(t *testing.T) {
	id, err := New("id")
	if err != nil {
		t.Fatal(err)
	}
	en, err := New("en")
	if err != nil {
		t.Fatal(err)
	}

	if got := id.T(LoginTitle); got != "Masuk" {
		t.Errorf("id LoginTitle = %q", got)
	}
	if got := en.T(LoginTitle); got != "Sign in" {
		t.Errorf("en LoginTitle = %q", got)
	}
	if got := en.Plural(ProductCount, 1); got != "1 product" {
		t.Errorf("en ProductCount(1) = %q", got)
	}
	if got := en.Plural(ProductCount, 4); got != "4 products" {
		t.Errorf("en ProductCount(4) = %q", got)
	}
	if got := id.Plural(ProductCount, 4); got != "4 produk" {
		t.Errorf("id ProductCount(4) = %q", got)
	}
	if got := en.T("NoSuchMessage"); got != "NoSuchMessage" {
		t.Errorf("unknown id = %q", got)
	}
	if en.Language() != language.English {
		t.Errorf("Language() = %s", en.Language())
	}
}
