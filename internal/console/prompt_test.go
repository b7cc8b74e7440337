package console

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLineReportsEndOfInput(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("hello\n"), &out)

	require.Equal(t, "hello", p.Line("> "))
	require.False(t, p.EOF())

	require.Equal(t, "", p.Line("> "))
	require.True(t, p.EOF())
	require.Equal(t, "", p.Line("> "))
}

func TestIntInRangeStopsAtEndOfInput(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader(""), &out)

	require.Equal(t, 1, p.IntInRange("Enter choice: ", 1, 3))
	require.True(t, p.EOF())
	// One prompt, no retry output.
	require.Equal(t, "Enter choice: ", out.String())
}

func TestIntInRangeRetriesThenStopsAtEndOfInput(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("abc\n"), &out)

	require.Equal(t, 2, p.IntInRange("Enter choice: ", 2, 5))
	require.True(t, p.EOF())
	require.Contains(t, out.String(), "Invalid input. Please enter a number.")
}

func TestDateStopsAtEndOfInput(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("not-a-date\n"), &out)

	require.Equal(t, "", p.Date("Enter Opening Date (yyyy-MM-dd): "))
	require.True(t, p.EOF())
}

func TestSelectCancelsAtEndOfInput(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader(""), &out)

	_, ok := p.Select("Enter number (0 to cancel): ", 3)
	require.False(t, ok)
}
