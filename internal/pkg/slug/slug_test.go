package slug

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	t.Run("strips punctuation and lowercases", func(t *testing.T) {
		assert.Equal(t, "hello-world", Slugify("Hello, World!!"))
	})

	t.Run("collapses whitespace runs", func(t *testing.T) {
		assert.Equal(t, "multiple-spaces", Slugify("  Multiple   Spaces  "))
	})

	t.Run("folds accents", func(t *testing.T) {
		assert.Equal(t, "ecole-dete", Slugify("École d'été"))
	})

	t.Run("collapses repeated hyphens", func(t *testing.T) {
		assert.Equal(t, "a-b", Slugify("a --- b"))
	})

	t.Run("empty and all-punctuation input", func(t *testing.T) {
		assert.Equal(t, "", Slugify(""))
		assert.Equal(t, "", Slugify("!!! ??? ..."))
	})

	t.Run("truncates long input", func(t *testing.T) {
		long := strings.Repeat("abcde ", 20) // 120 chars
		out := Slugify(long)
		assert.LessOrEqual(t, len(out), MaxLength)
		assert.False(t, strings.HasSuffix(out, "-"), "truncation must not leave a trailing hyphen")
	})

	t.Run("no edge or consecutive hyphens", func(t *testing.T) {
		out := Slugify("--Summer   Reading -- List--")
		assert.Equal(t, "summer-reading-list", out)
	})
}

func TestUnique(t *testing.T) {
	t.Run("returns base when free", func(t *testing.T) {
		assert.Equal(t, "math", Unique("Math", []string{}))
	})

	t.Run("appends numeric suffix on collision", func(t *testing.T) {
		assert.Equal(t, "math-1", Unique("Math", []string{"math"}))
	})

	t.Run("walks suffixes in order", func(t *testing.T) {
		existing := []string{"math", "math-1", "math-2"}
		assert.Equal(t, "math-3", Unique("Math", existing))
	})

	t.Run("never collides with existing", func(t *testing.T) {
		existing := []string{"math", "math-1", "math-3"}
		out := Unique("Math", existing)
		assert.Equal(t, "math-2", out)
		assert.NotContains(t, existing, out)
	})
}
