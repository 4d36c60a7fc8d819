package lipgloss_test

import (
	"testing"

	"github.com/stevenrichter16/mypoem"
	"github.com/stevenrichter16/mypoem/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestDefaultTheme(t *testing.T) {
	t.Parallel()

	t.Run("implements Theme interface", func(t *testing.T) {
		t.Parallel()

		var _ mypoem.Theme = lipgloss.DefaultTheme()
	})

	t.Run("distinguishes added and deleted words", func(t *testing.T) {
		t.Parallel()

		styles := lipgloss.DefaultTheme().Styles()

		assert.NotEmpty(t, styles.Added.Background)
		assert.NotEmpty(t, styles.Deleted.Background)
		assert.NotEqual(t, styles.Added.Background, styles.Deleted.Background)
	})

	t.Run("styles unchanged text", func(t *testing.T) {
		t.Parallel()

		styles := lipgloss.DefaultTheme().Styles()

		assert.NotEmpty(t, styles.Unchanged.Foreground)
	})
}

func TestLightTheme(t *testing.T) {
	t.Parallel()

	styles := lipgloss.LightTheme().Styles()

	assert.NotEmpty(t, styles.Added.Background)
	assert.NotEmpty(t, styles.Deleted.Background)
	assert.NotEmpty(t, styles.Header.Foreground)
	assert.NotEmpty(t, styles.Summary.Foreground)
}
