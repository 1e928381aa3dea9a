package sequence

import (
	"testing"

	"github.com/KirkDiggler/eidetic/internal/random"
	"github.com/KirkDiggler/eidetic/internal/random/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestGenerate_IsPermutation(t *testing.T) {
	gen := random.New(&random.Config{Seed: 42})

	for i := 0; i < 500; i++ {
		seq := Generate(gen)
		require.NoError(t, Validate(seq), "round %d produced %v", i, seq)
	}
}

func TestGenerate_UsesSourceShuffle(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := mocks.NewMockSource(ctrl)

	// Reverse the slice through the supplied swap function
	src.EXPECT().
		Shuffle(9, gomock.Any()).
		Do(func(n int, swap func(i, j int)) {
			for i := 0; i < n/2; i++ {
				swap(i, n-1-i)
			}
		})

	seq := Generate(src)

	assert.Equal(t, []int{9, 8, 7, 6, 5, 4, 3, 2, 1}, seq)
}

func TestGenerate_CoversEveryPosition(t *testing.T) {
	gen := random.New(&random.Config{Seed: 7})

	// Every value should show up in the first position eventually
	firsts := make(map[int]bool)
	for i := 0; i < 1000; i++ {
		firsts[Generate(gen)[0]] = true
	}

	assert.Len(t, firsts, 9)
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name    string
		seq     []int
		wantErr error
	}{
		{
			name: "identity",
			seq:  []int{1, 2, 3, 4, 5, 6, 7, 8, 9},
		},
		{
			name: "shuffled",
			seq:  []int{3, 1, 4, 2, 5, 9, 7, 6, 8},
		},
		{
			name:    "repeated one",
			seq:     []int{3, 1, 4, 1, 5, 9, 2, 6, 8},
			wantErr: ErrDuplicateValue,
		},
		{
			name:    "too short",
			seq:     []int{1, 2, 3},
			wantErr: ErrWrongLength,
		},
		{
			name:    "zero",
			seq:     []int{0, 1, 2, 3, 4, 5, 6, 7, 8},
			wantErr: ErrValueOutOfRange,
		},
		{
			name:    "ten",
			seq:     []int{1, 2, 3, 4, 5, 6, 7, 8, 10},
			wantErr: ErrValueOutOfRange,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate(tc.seq)
			if tc.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}
