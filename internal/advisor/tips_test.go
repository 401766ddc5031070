package advisor

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTipSourceDeterministicWithSeed(t *testing.T) {
	a := NewTipSource(rand.New(rand.NewSource(42)))
	b := NewTipSource(rand.New(rand.NewSource(42)))

	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Pick(), b.Pick())
	}
}

func TestTipSourcePicksFromList(t *testing.T) {
	source := NewTipSource(rand.New(rand.NewSource(1)))
	all := source.All()
	require.NotEmpty(t, all)

	for i := 0; i < 50; i++ {
		assert.Contains(t, all, source.Pick())
	}
}

func TestAllReturnsCopy(t *testing.T) {
	source := NewTipSource(rand.New(rand.NewSource(1)))

	first := source.All()
	first[0] = "mutated"
	assert.NotEqual(t, "mutated", source.All()[0])
}
