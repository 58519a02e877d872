package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseQuery(t *testing.T) {
	page, limit := ParseQuery("3", "25")
	assert.Equal(t, 3, page)
	assert.Equal(t, 25, limit)

	page, limit = ParseQuery("", "")
	assert.Equal(t, 1, page)
	assert.Equal(t, 10, limit)

	page, limit = ParseQuery("abc", "9999")
	assert.Equal(t, 1, page)
	assert.Equal(t, 100, limit)
}
