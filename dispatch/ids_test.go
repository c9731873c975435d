package dispatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRandomIDSource(t *testing.T) {
	ids := randomIDSource{}

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := ids.DocumentID("media-bucket", "docs/report.pdf")
		assert.NotEmpty(t, id)
		assert.False(t, seen[id], "random source produced a duplicate identifier")
		seen[id] = true
	}
}

func TestDerivedIDSource(t *testing.T) {
	ids := derivedIDSource{}

	first := ids.DocumentID("media-bucket", "docs/report.pdf")
	second := ids.DocumentID("media-bucket", "docs/report.pdf")
	assert.Equal(t, first, second)

	other := ids.DocumentID("media-bucket", "docs/other.pdf")
	assert.NotEqual(t, first, other)
}
