package idgen

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnowflakeGenerator_Increasing(t *testing.T) {
	gen, err := NewSnowflakeGenerator(1)
	require.NoError(t, err)

	prev := gen.GenerateID()
	for i := 0; i < 1000; i++ {
		next := gen.GenerateID()
		assert.Greater(t, next, prev)
		prev = next
	}
}

func TestSnowflakeGenerator_InvalidNode(t *testing.T) {
	_, err := NewSnowflakeGenerator(4096)
	assert.Error(t, err)
}

func TestParseID(t *testing.T) {
	gen, err := NewSnowflakeGenerator(1)
	require.NoError(t, err)

	id := gen.GenerateID()
	parsed, err := ParseID(strconv.FormatInt(id, 10))
	require.NoError(t, err)
	assert.Equal(t, id, parsed)

	_, err = ParseID("not-a-number")
	assert.Error(t, err)
}
