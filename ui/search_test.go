package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestSearchBarOnlyTakesInputWhenFocused(t *testing.T) {
	s := NewSearchBar()
	s.SetWidth(40)

	changed, _ := s.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("f")})
	assert.False(t, changed)
	assert.Equal(t, "", s.Value())

	s.Focus()
	assert.True(t, s.Focused())
	for _, r := range "fal" {
		changed, _ = s.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		assert.True(t, changed)
	}
	assert.Equal(t, "fal", s.Value())

	changed, _ = s.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	assert.True(t, changed)
	assert.Equal(t, "fa", s.Value())

	s.Blur()
	assert.False(t, s.Focused())
	assert.Contains(t, s.String(), "fa")

	s.Reset()
	assert.Equal(t, "", s.Value())
	assert.Contains(t, s.String(), searchPlaceholder)
}
