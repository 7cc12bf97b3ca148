package subcmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageNew(t *testing.T) {
	t.Parallel()

	msg := NewMessage()
	assert.Equal(t, "", msg.Get())
	assert.False(t, msg.IsError())
}

func TestMessageAdd(t *testing.T) {
	t.Parallel()

	msg := NewMessage()
	msg.Add("Some text")
	assert.Equal(t, "Some text", msg.Get())

	msg = NewMessage()
	msg.AddLine("Some new line")
	assert.Equal(t, "Some new line\n", msg.Get())
}

func TestMessageRoundTrip(t *testing.T) {
	t.Parallel()

	// Get returns the appended fragments verbatim, in call order, and is
	// idempotent between mutations.
	msg := NewMessage()
	msg.Add("a")
	msg.AddLine("b")
	msg.Add("c\n")
	msg.AddLine("")
	require.Equal(t, "ab\nc\n\n", msg.Get())
	require.Equal(t, msg.Get(), msg.Get())

	msg.SetError(true)
	msg.color = true
	assert.Equal(t, "ab\nc\n\n", msg.Get(), "coloring must not mutate the raw buffer")
}

func TestMessageColorEnabled(t *testing.T) {
	t.Parallel()

	msg := NewMessage()
	msg.color = true
	assert.True(t, msg.ColorEnabled())
	msg.color = false
	assert.False(t, msg.ColorEnabled())
}

func TestMessageSetError(t *testing.T) {
	t.Parallel()

	msg := NewMessage()
	msg.SetError(true)
	assert.True(t, msg.IsError())
	msg.SetError(false)
	assert.False(t, msg.IsError())
}

func TestMessageRender(t *testing.T) {
	t.Parallel()

	t.Run("plain message renders verbatim", func(t *testing.T) {
		t.Parallel()
		msg := NewMessage()
		msg.color = true
		msg.Add("hello")
		assert.Equal(t, "hello", msg.Render())
	})
	t.Run("error without color renders verbatim", func(t *testing.T) {
		t.Parallel()
		msg := NewMessage()
		msg.color = false
		msg.SetError(true)
		msg.Add("boom")
		assert.Equal(t, "boom", msg.Render())
	})
	t.Run("error with color is painted", func(t *testing.T) {
		t.Parallel()
		msg := NewMessage()
		msg.color = true
		msg.SetError(true)
		msg.Add("boom")
		assert.Contains(t, msg.Render(), "\x1b[")
		assert.Contains(t, msg.Render(), "boom")
		assert.Equal(t, "boom", msg.Get())
	})
}

func TestMessagePrint(t *testing.T) {
	t.Parallel()

	msg := NewMessage()
	msg.color = false
	msg.Add("line")

	var buf bytes.Buffer
	msg.Print(&buf)
	assert.Equal(t, "line\n", buf.String())
}
