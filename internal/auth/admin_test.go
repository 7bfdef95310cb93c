package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdminClassifier(t *testing.T) {
	c := NewAdminClassifier([]string{"editor@inkwell.press", " Admin@Inkwell.Press "})

	t.Run("allowlisted email passes", func(t *testing.T) {
		assert.True(t, c.IsAdminEmail("editor@inkwell.press"))
	})

	t.Run("comparison is case-insensitive", func(t *testing.T) {
		assert.True(t, c.IsAdminEmail("EDITOR@inkwell.press"))
		assert.True(t, c.IsAdminEmail("admin@inkwell.press"))
	})

	t.Run("unknown email fails", func(t *testing.T) {
		assert.False(t, c.IsAdminEmail("reader@example.com"))
	})

	t.Run("empty email fails", func(t *testing.T) {
		assert.False(t, c.IsAdminEmail(""))
	})

	t.Run("empty allowlist rejects everyone", func(t *testing.T) {
		empty := NewAdminClassifier(nil)
		assert.False(t, empty.IsAdminEmail("editor@inkwell.press"))
	})
}
