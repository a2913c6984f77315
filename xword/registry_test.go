package xword

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

//----------------------------------------------------------------------------//
// newWords: input contract
//----------------------------------------------------------------------------//

// TestNewWords_Errors verifies the Generate input contract sentinels.
func TestNewWords_Errors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		texts []string
		err   error
	}{
		{"EmptyList", []string{}, ErrEmptyWordList},
		{"NilList", nil, ErrEmptyWordList},
		{"EmptyToken", []string{"cat", ""}, ErrEmptyWord},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := newWords(tc.texts)
			require.Truef(t, errors.Is(err, tc.err), "newWords(%v) error = %v; want %v", tc.texts, err, tc.err)
		})
	}
}

// TestNewWords_Identity checks that indices follow input order and that
// duplicate texts stay distinct entities.
func TestNewWords_Identity(t *testing.T) {
	t.Parallel()

	ws, err := newWords([]string{"cat", "cat", "dog"})
	require.NoError(t, err)
	require.Len(t, ws, 3)
	for i, w := range ws {
		require.Equal(t, i, w.Index)
	}
	require.Equal(t, ws[0].Text, ws[1].Text)
	require.NotEqual(t, ws[0].Index, ws[1].Index)
}

//----------------------------------------------------------------------------//
// orderWords: constraint-first ordering
//----------------------------------------------------------------------------//

// TestOrderWords_LongestFirst pins the primary length ordering.
func TestOrderWords_LongestFirst(t *testing.T) {
	t.Parallel()

	ws, err := newWords([]string{"ant", "elephant", "lion", "hippopotamus"})
	require.NoError(t, err)
	ordered := orderWords(ws)

	got := make([]string, len(ordered))
	for i, w := range ordered {
		got[i] = w.Text
	}
	require.Equal(t, []string{"hippopotamus", "elephant", "lion", "ant"}, got)
}

// TestOrderWords_RichnessTie breaks equal lengths by distinct-letter count.
func TestOrderWords_RichnessTie(t *testing.T) {
	t.Parallel()

	// "aaa" has 1 distinct letter, "aab" 2, "abc" 3; all length 3.
	ws, err := newWords([]string{"aaa", "aab", "abc"})
	require.NoError(t, err)
	ordered := orderWords(ws)

	require.Equal(t, "abc", ordered[0].Text)
	require.Equal(t, "aab", ordered[1].Text)
	require.Equal(t, "aaa", ordered[2].Text)
}

// TestOrderWords_InputIndexTie keeps original order for full ties and
// never mutates the input slice.
func TestOrderWords_InputIndexTie(t *testing.T) {
	t.Parallel()

	ws, err := newWords([]string{"tab", "bat", "cat"})
	require.NoError(t, err)
	ordered := orderWords(ws)

	// "tab" and "bat" share length and richness; input order decides.
	require.Equal(t, 0, ordered[0].Index)
	require.Equal(t, 1, ordered[1].Index)
	// Input slice untouched.
	require.Equal(t, "tab", ws[0].Text)
	require.Equal(t, "bat", ws[1].Text)

	// Stable for repeated calls on the same input.
	require.Equal(t, ordered, orderWords(ws))
}
