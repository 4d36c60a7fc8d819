package bubbletea_test

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stevenrichter16/mypoem/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestDefaultKeyMap_HasExpectedBindings(t *testing.T) {
	t.Parallel()

	km := bubbletea.DefaultKeyMap()

	t.Run("Up binding", func(t *testing.T) {
		t.Parallel()
		msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}}
		assert.True(t, key.Matches(msg, km.Up), "k should match Up binding")

		msg = tea.KeyMsg{Type: tea.KeyUp}
		assert.True(t, key.Matches(msg, km.Up), "arrow up should match Up binding")
	})

	t.Run("Down binding", func(t *testing.T) {
		t.Parallel()
		msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}}
		assert.True(t, key.Matches(msg, km.Down), "j should match Down binding")
	})

	t.Run("PrevRevision binding", func(t *testing.T) {
		t.Parallel()
		msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'h'}}
		assert.True(t, key.Matches(msg, km.PrevRevision), "h should match PrevRevision binding")

		msg = tea.KeyMsg{Type: tea.KeyLeft}
		assert.True(t, key.Matches(msg, km.PrevRevision), "arrow left should match PrevRevision binding")
	})

	t.Run("NextRevision binding", func(t *testing.T) {
		t.Parallel()
		msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'l'}}
		assert.True(t, key.Matches(msg, km.NextRevision), "l should match NextRevision binding")
	})

	t.Run("Copy binding", func(t *testing.T) {
		t.Parallel()
		msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'c'}}
		assert.True(t, key.Matches(msg, km.Copy), "c should match Copy binding")
	})

	t.Run("Quit binding", func(t *testing.T) {
		t.Parallel()
		msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}
		assert.True(t, key.Matches(msg, km.Quit), "q should match Quit binding")

		msg = tea.KeyMsg{Type: tea.KeyCtrlC}
		assert.True(t, key.Matches(msg, km.Quit), "ctrl+c should match Quit binding")
	})

	t.Run("HalfPage bindings", func(t *testing.T) {
		t.Parallel()
		assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyCtrlU}, km.HalfPageUp))
		assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyCtrlD}, km.HalfPageDown))
	})

	t.Run("Goto bindings", func(t *testing.T) {
		t.Parallel()
		assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'g'}}, km.GotoTop))
		assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'G'}}, km.GotoBottom))
	})
}
