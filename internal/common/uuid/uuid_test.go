package uuid

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomIssuesDistinctUUIDs(t *testing.T) {
	gen := New()

	a := gen.NewID()
	b := gen.NewID()

	_, err := uuid.Parse(a)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestShort(t *testing.T) {
	assert.Equal(t, "0123abcd", Short("0123abcd-ffff-4000-8000-000000000000"))
	assert.Equal(t, "abc", Short("abc"))
}
