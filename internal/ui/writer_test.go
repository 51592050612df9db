package ui

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriter(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriterTo(&buf)

	_, err := w.Printf("%s=%d\n", "a", 1)
	require.NoError(t, err)
	_, err = w.Println("b", 2)
	require.NoError(t, err)
	_, err = w.Write([]byte("c"))
	require.NoError(t, err)

	require.Equal(t, "a=1\nb 2\nc", buf.String())
}

func TestWriter_Capture(t *testing.T) {
	var outer, inner bytes.Buffer
	w := NewWriter(WithOutput(&outer))

	w.Capture(&inner, func() {
		_, _ = w.Println("captured")
	})
	_, _ = w.Println("after")

	require.Equal(t, "captured\n", inner.String())
	require.Equal(t, "after\n", outer.String())
}
