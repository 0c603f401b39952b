package category

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLabelKnownAndFallback(t *testing.T) {
	assert.Equal(t, "🍎 Frescos", Label(Frescos))
	assert.Equal(t, "🧼 Limpeza & Higiene", Label("limpeza-higiene"))
	assert.Equal(t, "bebidas", Label("bebidas"), "unknown keys render verbatim")
}

func TestColorFallback(t *testing.T) {
	assert.Equal(t, "117", Color(Frigorifico))
	assert.Equal(t, "", Color("bebidas"))
}

func TestKeysOrderAndKnown(t *testing.T) {
	keys := Keys()
	assert.Len(t, keys, 8)
	assert.Equal(t, Frescos, keys[0])
	assert.Equal(t, Outros, keys[len(keys)-1])
	for _, k := range keys {
		assert.True(t, Known(k), k)
	}
	assert.False(t, Known("bebidas"))
}

func TestAllReturnsCopy(t *testing.T) {
	all := All()
	all[0].Label = "changed"
	assert.Equal(t, "🍎 Frescos", Label(Frescos))
}

func TestParse(t *testing.T) {
	assert.Equal(t, Padaria, Parse("  Padaria "))
	assert.Equal(t, Key("x"), Parse("X"))
}
