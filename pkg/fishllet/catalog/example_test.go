package catalog_test

import (
	"fmt"

	"github.com/fishllet/storefront/pkg/fishllet/catalog"
)

// Example prints the built-in catalog the way the home screen shows it.
func Example() {
	view := catalog.NewView(catalog.DefaultTitle(), catalog.Default())

	fmt.Println(view.Title())
	for _, card := range view.Cards() {
		fmt.Printf("%s: %s\n", card.Name, card.Price)
	}

	// Output:
	// Fishllet
	// Udang Kupas: Harga menyusul
	// Cumi Tube/Cumi Ring: Harga menyusul
	// Ikan Nila: Harga menyusul
	// Ikan Dori: Harga menyusul
}
