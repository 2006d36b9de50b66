package requirements

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeClampsNegatives(t *testing.T) {
	t.Parallel()

	reqs := Requirements{
		Categories:       map[string]int{"Mathematics": -3, "English": 6},
		TotalCredits:     -120,
		CompletedCredits: -10,
	}

	normalized := reqs.Normalize()

	assert.Equal(t, 0, normalized.Categories["Mathematics"])
	assert.Equal(t, 6, normalized.Categories["English"])
	assert.Equal(t, 0, normalized.TotalCredits)
	assert.Equal(t, 0, normalized.CompletedCredits)

	// Input map untouched.
	assert.Equal(t, -3, reqs.Categories["Mathematics"])
}

func TestNormalizeNilCategories(t *testing.T) {
	t.Parallel()

	normalized := Requirements{}.Normalize()
	assert.NotNil(t, normalized.Categories)
	assert.Empty(t, normalized.Categories)
}

func TestCreditsForAbsentCategory(t *testing.T) {
	t.Parallel()

	reqs := Requirements{Categories: map[string]int{"Physics": 8}}
	assert.Equal(t, 8, reqs.CreditsFor("Physics"))
	assert.Equal(t, 0, reqs.CreditsFor("Basket Weaving"))
}

func TestRemaining(t *testing.T) {
	t.Parallel()

	reqs := Requirements{TotalCredits: 120, CompletedCredits: 45}
	assert.Equal(t, 75, reqs.Remaining())

	over := Requirements{TotalCredits: 120, CompletedCredits: 130}
	assert.Equal(t, 0, over.Remaining())
}
