package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListParamsNormalize(t *testing.T) {
	t.Run("defaults applied", func(t *testing.T) {
		p := ListParams{}
		p.Normalize()
		assert.Equal(t, 1, p.Page)
		assert.Equal(t, 10, p.Limit)
	})

	t.Run("explicit values kept", func(t *testing.T) {
		p := ListParams{Page: 3, Limit: 25}
		p.Normalize()
		assert.Equal(t, 3, p.Page)
		assert.Equal(t, 25, p.Limit)
	})
}
