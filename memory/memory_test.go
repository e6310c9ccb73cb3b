package memory

import (
	"maps"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseKind(t *testing.T) {
	assert := assert.New(t)

	kind, err := ParseKind("dense")
	assert.NoError(err)
	assert.Equal(KIND_DENSE, kind)

	kind, err = ParseKind("sparse")
	assert.NoError(err)
	assert.Equal(KIND_SPARSE, kind)

	_, err = ParseKind("stack")
	assert.Equal(ErrKind("stack"), err)
}

func TestNew(t *testing.T) {
	assert := assert.New(t)

	mem, err := New(KIND_DENSE, 32, 8)
	assert.NoError(err)
	assert.IsType(&Dense{}, mem)
	assert.Equal(uint32(32), mem.Capacity())

	mem, err = New(KIND_SPARSE, 32, 8)
	assert.NoError(err)
	assert.IsType(&Sparse{}, mem)
	assert.Equal(uint(32), mem.Width())

	_, err = New(KIND_DENSE, 32, 7)
	assert.ErrorIs(err, ErrWidth)

	_, err = New(Kind(9), 32, 8)
	assert.Error(err)
}

func TestDefines(t *testing.T) {
	assert := assert.New(t)

	mem, err := NewDense(DEFAULT_CAPACITY, DEFAULT_WIDTH)
	assert.NoError(err)

	defines := maps.Collect(Defines(mem))
	assert.Equal("256", defines["MEMORY_CAPACITY"])
	assert.Equal("16", defines["MEMORY_WIDTH"])
}
