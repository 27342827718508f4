// Package text holds the game's message catalog. Game code refers to messages by
// key; the catalog turns them into player-facing text.
package text

import (
	_ "embed"

	"github.com/leonelquinteros/gotext"
)

//go:embed locales/en/default.po
var defaultCatalog []byte

var catalog = parse(defaultCatalog)

// Keys are looked up at runtime, so Po.Get is called through a variable to keep
// vet from reading them as format strings.
var lookup = (*gotext.Po).Get

func parse(buf []byte) *gotext.Po {
	po := gotext.NewPo()
	po.Parse(buf)
	return po
}

// Get returns the message for key. Messages taking arguments contain fmt verbs
// and are formatted by the caller.
// Unknown keys are returned as they are, so plain text passes through unchanged.
func Get(key string) string {
	return lookup(catalog, key)
}

// Load replaces the active catalog with the given PO data
func Load(buf []byte) {
	catalog = parse(buf)
}

// Reset restores the built-in English catalog
func Reset() {
	catalog = parse(defaultCatalog)
}
