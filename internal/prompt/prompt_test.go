package prompt

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsYes(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		answer string
		want   bool
	}{
		{"y", true},
		{"Y", true},
		{"yes", true},
		{"YES please", true},
		{"yup", true},
		{"", false},
		{"n", false},
		{"no", false},
		{" y", false},
		{"maybe", false},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.want, IsYes(tc.answer), "answer %q", tc.answer)
	}
}

func TestTerminal_Continue(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	in := strings.NewReader("yes\r\nY\n\nno\n")
	var out bytes.Buffer
	term := NewTerminal(in, &out)
	ctx := context.Background()

	// --- Act ---
	var got []bool
	for i := 0; i < 5; i++ {
		ok, err := term.Continue(ctx)
		require.NoError(t, err)
		got = append(got, ok)
	}

	// --- Assert ---
	assert.Equal(t, []bool{true, true, false, false, false}, got, "EOF must read as no")
	assert.Equal(t, strings.Repeat(Question, 5), out.String())
}

func TestTerminal_FinalLineWithoutNewline(t *testing.T) {
	t.Parallel()

	term := NewTerminal(strings.NewReader("y"), &bytes.Buffer{})
	ok, err := term.Continue(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)
}

type brokenReader struct{}

func (brokenReader) Read([]byte) (int, error) { return 0, errors.New("tty gone") }

func TestTerminal_ReadError(t *testing.T) {
	t.Parallel()

	term := NewTerminal(brokenReader{}, &bytes.Buffer{})
	ok, err := term.Continue(context.Background())
	assert.False(t, ok)
	assert.ErrorContains(t, err, "tty gone")
}

func TestCounted(t *testing.T) {
	t.Parallel()

	c := NewCounted(2)
	ctx := context.Background()
	for _, want := range []bool{true, true, false, false} {
		ok, err := c.Continue(ctx)
		require.NoError(t, err)
		assert.Equal(t, want, ok)
	}
}
