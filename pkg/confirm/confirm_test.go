package confirm

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfirmInvokesOnceWithTrue(t *testing.T) {
	p := New()
	var calls []bool
	p.Show("delete?", func(ok bool) { calls = append(calls, ok) })

	msg, pending := p.Pending()
	assert.True(t, pending)
	assert.Equal(t, "delete?", msg)

	p.Confirm()
	p.Confirm()
	p.Cancel()

	assert.Equal(t, []bool{true}, calls)
	_, pending = p.Pending()
	assert.False(t, pending)
}

func TestCancelInvokesWithFalse(t *testing.T) {
	p := New()
	var got *bool
	p.Show("clear?", func(ok bool) { got = &ok })
	p.Cancel()
	if assert.NotNil(t, got) {
		assert.False(t, *got)
	}
}

func TestSecondShowOverwritesFirst(t *testing.T) {
	p := New()
	first, second := 0, 0
	p.Show("first", func(bool) { first++ })
	p.Show("second", func(bool) { second++ })

	msg, _ := p.Pending()
	assert.Equal(t, "second", msg)

	p.Confirm()
	assert.Equal(t, 0, first)
	assert.Equal(t, 1, second)
}

func TestHideDropsWithoutCalling(t *testing.T) {
	p := New()
	called := false
	p.Show("x", func(bool) { called = true })
	p.Hide()
	p.Confirm()
	assert.False(t, called)
}

func TestContinuationMayShowAgain(t *testing.T) {
	p := New()
	var order []string
	p.Show("one", func(bool) {
		order = append(order, "one")
		p.Show("two", func(bool) { order = append(order, "two") })
	})
	p.Confirm()
	msg, pending := p.Pending()
	assert.True(t, pending)
	assert.Equal(t, "two", msg)
	p.Cancel()
	assert.Equal(t, []string{"one", "two"}, order)
}

func TestOnChangeReportsVisibility(t *testing.T) {
	p := New()
	var seen []bool
	p.OnChange = func(_ string, visible bool) { seen = append(seen, visible) }
	p.Show("x", nil)
	p.Cancel()
	assert.Equal(t, []bool{true, false}, seen)
}

func TestAskReadsAnswer(t *testing.T) {
	for answer, want := range map[string]bool{"s\n": true, "sim\n": true, "y\n": true, "n\n": false, "\n": false, "": false} {
		p := New()
		var got bool
		p.Show("apagar?", func(ok bool) { got = ok })
		var out bytes.Buffer
		confirmed := Ask(p, strings.NewReader(answer), &out, false)
		assert.Equal(t, want, got, "answer %q", answer)
		assert.Equal(t, want, confirmed, "answer %q", answer)
		assert.Contains(t, out.String(), "apagar?")
	}
}

func TestAskAssumeYes(t *testing.T) {
	p := New()
	var got bool
	p.Show("limpar?", func(ok bool) { got = ok })
	assert.True(t, Ask(p, strings.NewReader(""), &bytes.Buffer{}, true))
	assert.True(t, got)
}

func TestAskWithoutPendingIsNoop(t *testing.T) {
	var out bytes.Buffer
	assert.False(t, Ask(New(), strings.NewReader("s\n"), &out, false))
	assert.Empty(t, out.String())
}
