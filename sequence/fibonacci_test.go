package sequence

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/golden-spiral/parameter"
)

func TestGenerate(t *testing.T) {
	tests := []struct {
		name string
		n    int
		want []int
	}{
		{"Single", 1, []int{1}},
		{"Pair", 2, []int{1, 1}},
		{"Five", 5, []int{1, 1, 2, 3, 5}},
		{"Eight", 8, []int{1, 1, 2, 3, 5, 8, 13, 21}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Generate(tt.n)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGenerateRecurrence(t *testing.T) {
	for n := 1; n <= 40; n++ {
		seq, err := Generate(n)
		require.NoError(t, err)
		require.Len(t, seq, n)
		for i := 2; i < n; i++ {
			assert.Equal(t, seq[i-1]+seq[i-2], seq[i], "n=%d i=%d", n, i)
		}
	}
}

// The thirteenth magnitude is 233; 144 is the twelfth
func TestGenerateThirteenth(t *testing.T) {
	seq, err := Generate(13)
	require.NoError(t, err)
	assert.Equal(t, 233, seq[12])
	assert.Equal(t, 144, seq[11])
}

func TestGenerateRejectsNonPositive(t *testing.T) {
	for _, n := range []int{0, -1, -100} {
		seq, err := Generate(n)
		assert.ErrorIs(t, err, ErrInvalidArgument)
		assert.Nil(t, seq)
	}
}

func TestGenerateLargestRepresentable(t *testing.T) {
	seq, err := Generate(parameter.MaxMagnitudes)
	require.NoError(t, err)
	require.Len(t, seq, parameter.MaxMagnitudes)
	assert.Equal(t, 7540113804746346429, seq[len(seq)-1])
	for i, v := range seq {
		assert.Positive(t, v, "term %d", i)
	}

	for _, n := range []int{parameter.MaxMagnitudes + 1, 100} {
		seq, err := Generate(n)
		assert.ErrorIs(t, err, ErrInvalidArgument, "n=%d", n)
		assert.Nil(t, seq)
	}
}

func TestFloats(t *testing.T) {
	assert.Equal(t, []float64{1, 1, 2, 3}, Floats([]int{1, 1, 2, 3}))
	assert.Empty(t, Floats(nil))
}
