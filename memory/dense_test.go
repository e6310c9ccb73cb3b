package memory

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDense_New(t *testing.T) {
	assert := assert.New(t)

	mem, err := NewDense(DEFAULT_CAPACITY, DEFAULT_WIDTH)
	assert.NoError(err)
	assert.Equal(uint32(256), mem.Capacity())
	assert.Equal(uint(16), mem.Width())

	_, err = NewDense(16, 12)
	assert.ErrorIs(err, ErrWidth)

	_, err = NewDense(16, 32)
	assert.ErrorIs(err, ErrWidth)
}

func TestDense_StoreLoad(t *testing.T) {
	assert := assert.New(t)

	mem, err := NewDense(DEFAULT_CAPACITY, DEFAULT_WIDTH)
	require.NoError(t, err)

	err = mem.Store(0x00, 0x01)
	assert.NoError(err)

	value, err := mem.Load(0x00)
	assert.NoError(err)
	assert.Equal(uint32(0x01), value)

	for addr := range mem.Capacity() {
		err = mem.Store(addr, 0xffff-addr)
		assert.NoError(err)
	}
	for addr := range mem.Capacity() {
		value, err = mem.Load(addr)
		assert.NoError(err)
		assert.Equal(0xffff-addr, value)
	}
}

func TestDense_LoadDefault(t *testing.T) {
	assert := assert.New(t)

	mem, err := NewDense(8, 8)
	require.NoError(t, err)

	value, err := mem.Load(7)
	assert.NoError(err)
	assert.Equal(uint32(0), value)
}

func TestDense_AddressRange(t *testing.T) {
	assert := assert.New(t)

	mem, err := NewDense(DEFAULT_CAPACITY, DEFAULT_WIDTH)
	require.NoError(t, err)

	table := []uint32{mem.Capacity(), mem.Capacity() + 1, 0xfff, 0xffffffff}

	for _, addr := range table {
		err = mem.Store(addr, 0x00)
		assert.ErrorIs(err, ErrAddressRange(0))
		assert.Equal(ErrAddressRange(addr), err)

		_, err = mem.Load(addr)
		assert.ErrorIs(err, ErrAddressRange(0))
		assert.Equal(ErrAddressRange(addr), err)
	}

	assert.Empty(mem.String())
}

func TestDense_ValueRange(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		name  string
		width uint
		ok    uint32
		bad   uint32
	}{
		{"byte", 8, 0xff, 0x100},
		{"word", 16, 0xffff, 0x10000},
		{"u32", 16, 0xffff, 0xffffffff},
	}

	for _, entry := range table {
		mem, err := NewDense(0x100, entry.width)
		require.NoError(t, err)

		err = mem.Store(0xff, entry.ok)
		assert.NoError(err, entry.name)

		err = mem.Store(0xff, entry.bad)
		assert.Equal(ErrValueRange(entry.bad), err, entry.name)

		value, err := mem.Load(0xff)
		assert.NoError(err, entry.name)
		assert.Equal(entry.ok, value, entry.name)
	}
}

func TestDense_AddressCheckedFirst(t *testing.T) {
	assert := assert.New(t)

	mem, err := NewDense(4, 8)
	require.NoError(t, err)

	err = mem.Store(4, 0x1000)
	assert.True(errors.Is(err, ErrAddressRange(0)))
	assert.False(errors.Is(err, ErrValueRange(0)))
}

func TestDense_Slots(t *testing.T) {
	assert := assert.New(t)

	mem, err := NewDense(16, 16)
	require.NoError(t, err)

	assert.NoError(mem.Store(9, 0x90))
	assert.NoError(mem.Store(2, 0x20))
	assert.NoError(mem.Store(5, 0x00))

	var addrs []uint32
	var values []uint32
	for addr, value := range mem.Slots() {
		addrs = append(addrs, addr)
		values = append(values, value)
	}

	assert.Equal([]uint32{2, 9}, addrs)
	assert.Equal([]uint32{0x20, 0x90}, values)
	assert.Equal("\t0x02\t0x0020\n\t0x09\t0x0090\n", mem.String())

	mem.Reset()
	assert.Empty(mem.String())
}
