package config

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orx/orx-sub008/internal/value"
	"github.com/orx/orx-sub008/pkg/types"
)

func TestValues_NoCurrentSection(t *testing.T) {
	s, _ := newTestStore(t, nil)

	assert.False(t, s.HasValue("X"))
	assert.Equal(t, int32(0), s.GetS32("X"))
	assert.Equal(t, "", s.GetString("X"))
	assert.Equal(t, 0, s.GetListCounter("X"))
	assert.Equal(t, 0, s.GetKeyCounter())
	assert.ErrorIs(t, s.SetS32("X", 1), types.ErrNoSection)
	assert.ErrorIs(t, s.ClearValue("X"), types.ErrNoSection)
	assert.ErrorIs(t, s.AppendListString("X", []string{"a"}), types.ErrNoSection)
}

func TestValues_SetGet(t *testing.T) {
	s, _ := newTestStore(t, nil)
	require.NoError(t, s.SelectSection("Typed"))

	require.NoError(t, s.SetS32("S32", -42))
	require.NoError(t, s.SetU32("U32", 4000000000))
	require.NoError(t, s.SetS64("S64", -1<<40))
	require.NoError(t, s.SetU64("U64", 1<<63))
	require.NoError(t, s.SetFloat("Float", 1.5))
	require.NoError(t, s.SetBool("Bool", true))
	require.NoError(t, s.SetVector("Vector", types.Vector{X: 1, Y: 2.5, Z: -3}))
	require.NoError(t, s.SetString("String", "  hello world  "))

	assert.Equal(t, int32(-42), s.GetS32("S32"))
	assert.Equal(t, uint32(4000000000), s.GetU32("U32"))
	assert.Equal(t, int64(-1<<40), s.GetS64("S64"))
	assert.Equal(t, uint64(1<<63), s.GetU64("U64"))
	assert.Equal(t, 1.5, s.GetFloat("Float"))
	assert.True(t, s.GetBool("Bool"))
	assert.Equal(t, types.Vector{X: 1, Y: 2.5, Z: -3}, s.GetVector("Vector"))
	assert.Equal(t, "hello world", s.GetString("String"))

	assert.Equal(t, 8, s.GetKeyCounter())
	assert.Equal(t, "S32", s.GetKey(0))
	assert.Equal(t, "", s.GetKey(8))
	assert.Equal(t, uint32(0), s.GetU32("S32"), "negative numbers are not unsigned")
	assert.ErrorIs(t, s.SetString("", "x"), types.ErrEmptyName)
}

func TestValues_OverwriteMovesToEnd(t *testing.T) {
	s, _ := newTestStore(t, nil)
	require.NoError(t, s.SelectSection("S"))
	require.NoError(t, s.SetS32("A", 1))
	require.NoError(t, s.SetS32("B", 2))
	require.NoError(t, s.SetS32("A", 3))

	assert.Equal(t, 2, s.GetKeyCounter())
	assert.Equal(t, "B", s.GetKey(0))
	assert.Equal(t, "A", s.GetKey(1))
	assert.Equal(t, int32(3), s.GetS32("A"))
}

func TestValues_StringList(t *testing.T) {
	s, _ := newTestStore(t, nil)
	require.NoError(t, s.SelectSection("S"))
	require.NoError(t, s.SetStringList("K", []string{"a", "b", "c"}))

	assert.Equal(t, 3, s.GetListCounter("K"))
	assert.True(t, s.IsList("K"))
	assert.Equal(t, "a", s.GetListString("K", 0))
	assert.Equal(t, "b", s.GetListString("K", 1))
	assert.Equal(t, "c", s.GetListString("K", 2))
	assert.Equal(t, "", s.GetListString("K", 3))
	for range 100 {
		assert.Contains(t, []string{"a", "b", "c"}, s.GetListString("K", -1))
	}

	assert.ErrorIs(t, s.SetStringList("K", nil), errEmptyList)
}

func TestValues_AppendList(t *testing.T) {
	s, _ := newTestStore(t, nil)
	require.NoError(t, s.SelectSection("S"))

	require.NoError(t, s.AppendListString("K", []string{"1"}))
	require.NoError(t, s.AppendListString("K", []string{"2", "3"}))

	assert.Equal(t, 3, s.GetListCounter("K"))
	assert.Equal(t, int32(3), s.GetListS32("K", 2))
}

func TestValues_ListOverflowLogged(t *testing.T) {
	s, logs := newLoggedStore(t, nil)
	require.NoError(t, s.SelectSection("S"))

	items := make([]string, value.MaxListItems+45)
	for i := range items {
		items[i] = strconv.Itoa(i)
	}
	require.NoError(t, s.SetStringList("K", items))

	assert.Equal(t, value.MaxListItems, s.GetListCounter("K"))
	assert.Contains(t, logs.String(), "list truncated")
	assert.Contains(t, logs.String(), "key=K")

	logs.Reset()
	require.NoError(t, s.SetStringList("Short", items[:3]))
	assert.NotContains(t, logs.String(), "list truncated")
}

func TestValues_Typed_Lists(t *testing.T) {
	s, _ := newTestStore(t, nil)
	require.NoError(t, s.LoadFromMemory([]byte(`[S]
Ints   = 1 # 0x10 # 010
Floats = 0.5 # 1e2
Bools  = true # 0 # FALSE
Vecs   = (1, 2, 3) # {4, 5}
`)))
	require.NoError(t, s.SelectSection("S"))

	assert.Equal(t, int32(16), s.GetListS32("Ints", 1))
	assert.Equal(t, int64(8), s.GetListS64("Ints", 2))
	assert.Equal(t, uint64(1), s.GetListU64("Ints", 0))
	assert.Equal(t, uint32(16), s.GetListU32("Ints", 1))
	assert.Equal(t, 100.0, s.GetListFloat("Floats", 1))
	assert.True(t, s.GetListBool("Bools", 0))
	assert.False(t, s.GetListBool("Bools", 1))
	assert.False(t, s.GetListBool("Bools", 2))
	assert.Equal(t, types.Vector{X: 4, Y: 5}, s.GetListVector("Vecs", 1))
}

func TestValues_Random(t *testing.T) {
	s, _ := newTestStore(t, nil)
	require.NoError(t, s.SelectSection("S"))
	require.NoError(t, s.SetString("K", "5~10"))

	assert.True(t, s.IsRandomValue("K"))
	seen := map[int32]bool{}
	for range 1000 {
		v := s.GetS32("K")
		require.GreaterOrEqual(t, v, int32(5))
		require.LessOrEqual(t, v, int32(10))
		seen[v] = true
	}
	assert.True(t, seen[5], "lower bound is inclusive")
	assert.True(t, seen[10], "upper bound is inclusive")
}

func TestValues_Block(t *testing.T) {
	s, _ := newTestStore(t, nil)
	require.NoError(t, s.LoadFromMemory([]byte("[S]\nK = \"a#b~c\"\n")))
	require.NoError(t, s.SelectSection("S"))

	assert.Equal(t, "a#b~c", s.GetString("K"))
	assert.False(t, s.IsList("K"))
	assert.False(t, s.IsRandomValue("K"))

	require.NoError(t, s.SetStringBlock("Raw", "  @Other  "))
	assert.Equal(t, "  @Other  ", s.GetString("Raw"))
	assert.False(t, s.IsInheritedValue("Raw"))
}

func TestClearValue(t *testing.T) {
	s, _ := newTestStore(t, nil)
	require.NoError(t, s.LoadFromMemory([]byte("[Base]\nX = 1\n[Child@Base]\nX = 2\n")))
	require.NoError(t, s.SelectSection("Child"))

	require.NoError(t, s.ClearValue("X"))
	assert.Equal(t, int32(1), s.GetS32("X"), "parent value shows through")
	assert.ErrorIs(t, s.ClearValue("X"), types.ErrNotFound)
}
