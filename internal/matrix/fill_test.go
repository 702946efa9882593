package matrix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFillZero(t *testing.T) {
	m, err := New[float64](7, 5, FillZero)
	require.NoError(t, err)
	for i, v := range m.Data() {
		assert.Zero(t, v, "element %d", i)
	}
}

func TestFillSequential(t *testing.T) {
	m, err := New[float32](6, 9, FillSequential)
	require.NoError(t, err)
	for k := 0; k < m.Len(); k++ {
		v, err := m.At(k)
		require.NoError(t, err)
		assert.Equal(t, float32(k), v)
	}

	mi, err := New[int64](3, 2, FillSequential)
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 1, 2, 3, 4, 5}, mi.Data())
}

func TestFillRandom_Range(t *testing.T) {
	m, err := New[float32](64, 64, FillRandom, WithRand(NewRand(1)))
	require.NoError(t, err)

	nonZero := 0
	for _, v := range m.Data() {
		assert.GreaterOrEqual(t, v, float32(0))
		assert.Less(t, v, float32(1))
		if v != 0 {
			nonZero++
		}
	}
	assert.Greater(t, nonZero, m.Len()/2, "random fill should be mostly non-zero")
}

func TestFillRandom_Float64Range(t *testing.T) {
	m, err := New[float64](32, 16, FillRandom, WithRand(NewRand(3)))
	require.NoError(t, err)
	for _, v := range m.Data() {
		assert.GreaterOrEqual(t, v, 0.0)
		assert.Less(t, v, 1.0)
	}
}

func TestFillRandom_Seeded(t *testing.T) {
	a, err := New[float32](16, 8, FillRandom, WithRand(NewRand(42)))
	require.NoError(t, err)
	b, err := New[float32](16, 8, FillRandom, WithRand(NewRand(42)))
	require.NoError(t, err)
	c, err := New[float32](16, 8, FillRandom, WithRand(NewRand(43)))
	require.NoError(t, err)

	assert.True(t, a.Equal(b), "same seed must give the same matrix")
	assert.False(t, a.Equal(c), "different seeds should differ")
}

func TestFillRandom_DefaultGenerator(t *testing.T) {
	m, err := New[float32](8, 8, FillRandom)
	require.NoError(t, err)
	for _, v := range m.Data() {
		assert.Less(t, v, float32(1))
	}
}

func TestFillRandom_IntegerTruncates(t *testing.T) {
	m, err := New[int32](4, 4, FillRandom, WithRand(NewRand(5)))
	require.NoError(t, err)
	for _, v := range m.Data() {
		assert.Equal(t, int32(0), v)
	}
}

func TestParseFill(t *testing.T) {
	for _, f := range []Fill{FillZero, FillRandom, FillSequential} {
		parsed, err := ParseFill(f.String())
		require.NoError(t, err)
		assert.Equal(t, f, parsed)
	}

	_, err := ParseFill("ones")
	assert.ErrorIs(t, err, ErrUnknownFill)
	assert.Equal(t, "unknown", Fill(9).String())
}
