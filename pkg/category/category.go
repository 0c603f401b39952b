// Package category holds the fixed registry of shopping categories.
package category

import "strings"

// Key identifies a category. Keys outside the registry are still valid and
// render verbatim.
type Key string

// Definition describes how a category is presented.
type Definition struct {
	Key   Key
	Label string
	// Color is an ANSI-256 colour code used for the group header.
	Color string
}

const (
	Frescos        Key = "frescos"
	Frigorifico    Key = "frigorifico"
	Padaria        Key = "padaria"
	TalhoPeixaria  Key = "talho-peixaria"
	Despensa       Key = "despensa"
	LimpezaHigiene Key = "limpeza-higiene"
	Congelados     Key = "congelados"
	Outros         Key = "outros"
)

var definitions = []Definition{
	{Key: Frescos, Label: "🍎 Frescos", Color: "114"},
	{Key: Frigorifico, Label: "❄️ Frigorífico", Color: "117"},
	{Key: Padaria, Label: "🥖 Padaria", Color: "180"},
	{Key: TalhoPeixaria, Label: "🥩 Talho & Peixaria", Color: "174"},
	{Key: Despensa, Label: "🥫 Despensa", Color: "179"},
	{Key: LimpezaHigiene, Label: "🧼 Limpeza & Higiene", Color: "152"},
	{Key: Congelados, Label: "🧊 Congelados", Color: "153"},
	{Key: Outros, Label: "📦 Outros", Color: "250"},
}

var byKey = func() map[Key]Definition {
	m := make(map[Key]Definition, len(definitions))
	for _, d := range definitions {
		m[d.Key] = d
	}
	return m
}()

// All returns the registered categories in display order.
func All() []Definition {
	out := make([]Definition, len(definitions))
	copy(out, definitions)
	return out
}

// Keys returns the registered keys in display order.
func Keys() []Key {
	keys := make([]Key, 0, len(definitions))
	for _, d := range definitions {
		keys = append(keys, d.Key)
	}
	return keys
}

// Known reports whether key is part of the registry.
func Known(key Key) bool {
	_, ok := byKey[key]
	return ok
}

// Label returns the display label for key, or the key itself when unknown.
func Label(key Key) string {
	if d, ok := byKey[key]; ok {
		return d.Label
	}
	return string(key)
}

// Color returns the header colour for key, or "" when unknown.
func Color(key Key) string {
	return byKey[key].Color
}

// Parse normalises user input into a Key. It never rejects input; use Known
// to check membership.
func Parse(raw string) Key {
	return Key(strings.ToLower(strings.TrimSpace(raw)))
}

func (k Key) String() string {
	return string(k)
}
