package snake

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"

	"tableflip.dev/shoplist/pkg/category"
)

func TestSearcherMatchesKeyAndLabel(t *testing.T) {
	defs := category.All()
	match := searcher(defs)

	var hits []category.Key
	for i := range defs {
		if match("Frigo", i) {
			hits = append(hits, defs[i].Key)
		}
	}
	assert.Equal(t, []category.Key{category.Frigorifico}, hits)

	hits = nil
	for i := range defs {
		if match("talho &peix", i) {
			hits = append(hits, defs[i].Key)
		}
	}
	assert.Equal(t, []category.Key{category.TalhoPeixaria}, hits)
}

func TestValidateName(t *testing.T) {
	assert.Error(t, validateName("   "))
	assert.NoError(t, validateName("Leite"))
}

func TestPromptsRequireTerminal(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.SetIn(bytes.NewBufferString("Leite\n"))
	cmd.SetOut(&bytes.Buffer{})

	assert.False(t, Interactive(cmd))

	_, err := PromptName(cmd)
	assert.ErrorIs(t, err, ErrNotInteractive)

	_, err = SelectCategory(cmd)
	assert.ErrorIs(t, err, ErrNotInteractive)
}
