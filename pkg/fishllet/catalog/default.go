package catalog

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

//go:embed default_catalog.toml
var defaultCatalogTOML []byte

// File is the on-disk shape of a catalog document.
//
//	title = "Fishllet"
//
//	[[products]]
//	id = "1"
//	name = "Udang Kupas"
//	price = "Harga menyusul"
type File struct {
	Title    string    `toml:"title"`
	Products []Product `toml:"products"`
}

// Default returns the built-in storefront catalog.
func Default() *Catalog {
	_, c, err := Decode(defaultCatalogTOML)
	if err != nil {
		panic(fmt.Sprintf("catalog: embedded default catalog is invalid: %v", err))
	}
	return c
}

// DefaultTitle returns the header title shipped with the built-in catalog.
func DefaultTitle() string {
	title, _, err := Decode(defaultCatalogTOML)
	if err != nil {
		return ""
	}
	return title
}

// Decode parses a TOML catalog document. Unknown keys are rejected.
func Decode(data []byte) (string, *Catalog, error) {
	var f File

	md, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&f)
	if err != nil {
		return "", nil, fmt.Errorf("catalog: decode: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return "", nil, fmt.Errorf("catalog: unknown keys %v", undecoded)
	}

	c, err := New(f.Products)
	if err != nil {
		return "", nil, err
	}
	return f.Title, c, nil
}

// Load reads a catalog document from path.
func Load(path string) (string, *Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", nil, fmt.Errorf("catalog: read %s: %w", path, err)
	}
	return Decode(data)
}
