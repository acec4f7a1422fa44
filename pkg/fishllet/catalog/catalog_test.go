package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestDefaultCatalogOrder(t *testing.T) {
	c := Default()

	want := []Product{
		{ID: "1", Name: "Udang Kupas", Price: "Harga menyusul"},
		{ID: "2", Name: "Cumi Tube/Cumi Ring", Price: "Harga menyusul"},
		{ID: "3", Name: "Ikan Nila", Price: "Harga menyusul"},
		{ID: "4", Name: "Ikan Dori", Price: "Harga menyusul"},
	}

	if got := c.Products(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Products() = %+v, want %+v", got, want)
	}
	if c.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", c.Len())
	}
	if DefaultTitle() != "Fishllet" {
		t.Fatalf("DefaultTitle() = %q, want Fishllet", DefaultTitle())
	}
}

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name     string
		products []Product
		wantErr  error
	}{
		{
			name:     "empty catalog",
			products: nil,
		},
		{
			name:     "empty id",
			products: []Product{{ID: " ", Name: "Ikan Nila"}},
			wantErr:  ErrEmptyID,
		},
		{
			name:     "empty name",
			products: []Product{{ID: "1", Name: ""}},
			wantErr:  ErrEmptyName,
		},
		{
			name: "duplicate id",
			products: []Product{
				{ID: "1", Name: "Udang Kupas"},
				{ID: "1", Name: "Ikan Dori"},
			},
			wantErr: ErrDuplicateID,
		},
		{
			name: "empty price allowed",
			products: []Product{
				{ID: "1", Name: "Udang Kupas"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.products)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("New() error = %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("New() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestCatalogIsImmutable(t *testing.T) {
	in := []Product{{ID: "1", Name: "Udang Kupas", Price: "Harga menyusul"}}
	c, err := New(in)
	if err != nil {
		t.Fatal(err)
	}

	in[0].Name = "changed"
	out := c.Products()
	out[0].Price = "changed"

	got, ok := c.Lookup("1")
	if !ok {
		t.Fatal("Lookup(1) not found")
	}
	if got.Name != "Udang Kupas" || got.Price != "Harga menyusul" {
		t.Fatalf("catalog mutated: %+v", got)
	}
	if _, ok := c.Lookup("missing"); ok {
		t.Fatal("Lookup(missing) found a product")
	}
}

func TestDecodeRejectsUnknownKeys(t *testing.T) {
	doc := []byte(`
title = "Fishllet"

[[products]]
id = "1"
name = "Udang Kupas"
price = "Harga menyusul"
weight = "1kg"
`)
	if _, _, err := Decode(doc); err == nil {
		t.Fatal("Decode() accepted an unknown key")
	}
}

func TestDecodeRejectsDuplicateIDs(t *testing.T) {
	doc := []byte(`
[[products]]
id = "1"
name = "Udang Kupas"

[[products]]
id = "1"
name = "Ikan Nila"
`)
	_, _, err := Decode(doc)
	if !errors.Is(err, ErrDuplicateID) {
		t.Fatalf("Decode() error = %v, want %v", err, ErrDuplicateID)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.toml")
	doc := []byte(`
title = "Toko Ikan"

[[products]]
id = "a"
name = "Ikan Kakap"
price = "Rp 50.000"
`)
	if err := os.WriteFile(path, doc, 0o644); err != nil {
		t.Fatal(err)
	}

	title, c, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if title != "Toko Ikan" {
		t.Errorf("title = %q", title)
	}
	if p, _ := c.Lookup("a"); p.Price != "Rp 50.000" {
		t.Errorf("price = %q", p.Price)
	}

	if _, _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Fatal("Load() of a missing file succeeded")
	}
}
