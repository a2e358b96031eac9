package tuple

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAndUnpack(t *testing.T) {
	t.Parallel()

	a, b := New2("2", true).Unpack()
	assert.Equal(t, "2", a)
	assert.True(t, b)

	x, y, z := New3(4, true, "").Unpack()
	assert.Equal(t, 4, x)
	assert.True(t, y)
	assert.Equal(t, "", z)

	p, q, r, s := New4(1, 2.5, "three", []int{4}).Unpack()
	assert.Equal(t, 1, p)
	assert.Equal(t, 2.5, q)
	assert.Equal(t, "three", r)
	assert.Equal(t, []int{4}, s)
}

func TestStructuralEquality(t *testing.T) {
	t.Parallel()

	assert.Equal(t, T2[int, string]{First: 1, Second: "a"}, New2(1, "a"))
	assert.True(t, New3(1, "a", false) == New3(1, "a", false))
	assert.False(t, New4(1, 2, 3, 4) == New4(1, 2, 3, 5))
}
