package nullable

import (
	"io"
	"strconv"
	"testing"

	"github.com/PalmZE/adt/pkg/adt/tuple"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[A any](v A) *A { return &v }

func isOne(n int) bool { return n == 1 }

type stringer struct{}

func (*stringer) String() string { return "stringer" }

func TestOf(t *testing.T) {
	t.Parallel()

	var nilPtr *int
	var nilMap map[string]int
	var nilSlice []int
	var nilFunc func()
	var nilReader io.Reader
	var typedNil *stringer
	var holdsTypedNil interface{ String() string } = typedNil

	assert.Nil(t, Of(nilPtr))
	assert.Nil(t, Of(nilMap))
	assert.Nil(t, Of(nilSlice))
	assert.Nil(t, Of(nilFunc))
	assert.Nil(t, Of(nilReader))
	assert.Nil(t, Of(holdsTypedNil))

	for _, present := range []*int{Of(0), Of(1)} {
		require.NotNil(t, present)
	}
	assert.Equal(t, "", *Of(""))
	assert.Equal(t, false, *Of(false))
	assert.Equal(t, []int{}, *Of([]int{}))
}

func TestFromOk(t *testing.T) {
	t.Parallel()

	m := map[string]int{"a": 0}

	v, ok := m["a"]
	got := FromOk(v, ok)
	require.NotNil(t, got)
	assert.Equal(t, 0, *got)

	v, ok = m["b"]
	assert.Nil(t, FromOk(v, ok))
}

func TestGuards(t *testing.T) {
	t.Parallel()

	assert.True(t, IsNonNullable(ptr(0)))
	assert.False(t, IsNonNullable[int](nil))
	assert.True(t, IsNullOrUndefined[int](nil))
	assert.False(t, IsNullOrUndefined(ptr("")))
}

func TestMap(t *testing.T) {
	t.Parallel()

	inc := func(n int) int { return n + 1 }

	assert.Equal(t, ptr(2), Map(ptr(1), inc))
	assert.Nil(t, Map(nil, inc))
	assert.Equal(t, ptr("0"), Map(ptr(0), strconv.Itoa))
}

func TestMap_OneLevelOnly(t *testing.T) {
	t.Parallel()

	var inner *int
	outer := Map(ptr(1), func(int) *int { return inner })

	// a present pointer to an absent value is still present
	require.NotNil(t, outer)
	assert.Nil(t, *outer)
}

func TestFilter(t *testing.T) {
	t.Parallel()

	one := ptr(1)
	assert.Same(t, one, Filter(one, isOne))
	assert.Nil(t, Filter(ptr(2), isOne))
	assert.Nil(t, Filter(nil, isOne))
}

func TestExists(t *testing.T) {
	t.Parallel()

	assert.True(t, Exists(ptr(1), isOne))
	assert.False(t, Exists(ptr(2), isOne))
	assert.False(t, Exists(nil, isOne))
}

func TestGetOrElse(t *testing.T) {
	t.Parallel()

	calls := 0
	fallback := func() int {
		calls++
		return 42
	}

	assert.Equal(t, 0, GetOrElse(ptr(0), fallback))
	assert.Equal(t, 0, calls)
	assert.Equal(t, 42, GetOrElse(nil, fallback))
	assert.Equal(t, 1, calls)
}

func TestMatch(t *testing.T) {
	t.Parallel()

	ifPresent := func(n int) string { return "present " + strconv.Itoa(n) }
	ifAbsent := func() string { return "absent" }

	assert.Equal(t, "present 0", Match(ptr(0), ifPresent, ifAbsent))
	assert.Equal(t, "absent", Match(nil, ifPresent, ifAbsent))
}

func TestToUndefinedAndToNull(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, ToUndefined(ptr(0)))
	assert.Equal(t, 7, ToUndefined(ptr(7)))
	assert.Equal(t, 0, ToUndefined[int](nil))

	p := ptr(0)
	assert.Same(t, p, ToNull(p))
	assert.Nil(t, ToNull[int](nil))
}

func TestCombineTuple(t *testing.T) {
	t.Parallel()

	if diff := cmp.Diff(ptr([]int{1, 0, 3}), CombineTuple(ptr(1), ptr(0), ptr(3))); diff != "" {
		t.Fatalf("CombineTuple mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(ptr([]string{"a"}), CombineTuple(ptr("a"))); diff != "" {
		t.Fatalf("CombineTuple mismatch (-want +got):\n%s", diff)
	}
	assert.Nil(t, CombineTuple(ptr(1), nil, ptr(3)))
}

func TestCombineTupleN(t *testing.T) {
	t.Parallel()

	if diff := cmp.Diff(ptr(tuple.New2("2", true)), CombineTuple2(ptr("2"), ptr(true))); diff != "" {
		t.Fatalf("CombineTuple2 mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(ptr(tuple.New3(4, true, "")), CombineTuple3(ptr(4), ptr(true), ptr(""))); diff != "" {
		t.Fatalf("CombineTuple3 mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(ptr(tuple.New4(0, false, "", 0.0)), CombineTuple4(ptr(0), ptr(false), ptr(""), ptr(0.0))); diff != "" {
		t.Fatalf("CombineTuple4 mismatch (-want +got):\n%s", diff)
	}

	assert.Nil(t, CombineTuple2[string, bool](ptr("2"), nil))
	assert.Nil(t, CombineTuple3[int, bool, string](nil, ptr(true), ptr("")))
	assert.Nil(t, CombineTuple4[int, bool, string, float64](ptr(0), ptr(false), ptr(""), nil))
}

func TestWith_MatchesEager(t *testing.T) {
	t.Parallel()

	inc := func(n int) int { return n + 1 }
	fallback := func() int { return -1 }
	ifPresent := strconv.Itoa
	ifAbsent := func() string { return "absent" }

	for _, in := range []*int{ptr(1), ptr(2), ptr(0), nil} {
		assert.Equal(t, Map(in, inc), MapWith(inc)(in))
		assert.Equal(t, Filter(in, isOne), FilterWith(isOne)(in))
		assert.Equal(t, Exists(in, isOne), ExistsWith(isOne)(in))
		assert.Equal(t, GetOrElse(in, fallback), GetOrElseWith(fallback)(in))
		assert.Equal(t, Match(in, ifPresent, ifAbsent), MatchWith(ifPresent, ifAbsent)(in))
	}
}
