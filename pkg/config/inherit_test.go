package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const inheritFixture = `
[A]
X = 1
Y = 2

[B@A]
Z = 3

[C]
Y    = @A@
W    = @A.X
Same = @.Z

[Base]
Name      = @
Speed     = @.BaseSpeed
BaseSpeed = 1

[Fast@Base]
BaseSpeed = 10
`

func TestInherit_Parent(t *testing.T) {
	s, _ := newTestStore(t, nil)
	require.NoError(t, s.LoadFromMemory([]byte(inheritFixture)))

	require.NoError(t, s.PushSection("B"))
	assert.Equal(t, int32(1), s.GetS32("X"))
	assert.Equal(t, "A", s.GetOrigin("X"))
	assert.Equal(t, "B", s.GetOrigin("Z"))
	assert.False(t, s.IsInheritedValue("X"), "only local references count")
	require.NoError(t, s.PopSection())
}

func TestInherit_References(t *testing.T) {
	s, _ := newTestStore(t, nil)
	require.NoError(t, s.LoadFromMemory([]byte(inheritFixture)))
	require.NoError(t, s.SelectSection("C"))

	assert.Equal(t, int32(2), s.GetS32("Y"))
	assert.Equal(t, int32(1), s.GetS32("W"))
	assert.True(t, s.IsInheritedValue("W"))
	assert.Equal(t, "A", s.GetOrigin("W"))
	assert.False(t, s.HasValue("Same"), "C has no Z")
}

func TestInherit_OriginRelative(t *testing.T) {
	s, _ := newTestStore(t, nil)
	require.NoError(t, s.LoadFromMemory([]byte(inheritFixture)))

	require.NoError(t, s.SelectSection("Fast"))
	assert.Equal(t, int32(10), s.GetS32("Speed"))
	assert.Equal(t, "Fast", s.GetString("Name"))

	require.NoError(t, s.SelectSection("Base"))
	assert.Equal(t, int32(1), s.GetS32("Speed"))
	assert.Equal(t, "Base", s.GetString("Name"))
}

func TestInherit_DefaultParent(t *testing.T) {
	s, _ := newTestStore(t, nil)
	require.NoError(t, s.LoadFromMemory([]byte("[Defaults]\nVolume = 5\n[Any]\n[Solo@@]\n[Named@Other]\n[Other]\n")))
	s.SetDefaultParent("Defaults")

	require.NoError(t, s.SelectSection("Any"))
	assert.Equal(t, int32(5), s.GetS32("Volume"))

	require.NoError(t, s.SelectSection("Solo"))
	assert.False(t, s.HasValue("Volume"))

	require.NoError(t, s.SelectSection("Named"))
	assert.Equal(t, int32(5), s.GetS32("Volume"), "Other falls back to the default parent")

	s.SetDefaultParent("")
	require.NoError(t, s.SelectSection("Any"))
	assert.False(t, s.HasValue("Volume"))
}

func TestInherit_MissingTarget(t *testing.T) {
	s, _ := newTestStore(t, nil)
	require.NoError(t, s.LoadFromMemory([]byte("[S]\nX = @Nowhere\n[T@Nowhere]\n")))

	require.NoError(t, s.SelectSection("S"))
	assert.False(t, s.HasValue("X"))
	require.NoError(t, s.SelectSection("T"))
	assert.False(t, s.HasValue("X"))
	assert.False(t, s.HasSection("Nowhere"))
}

func TestInherit_Cycles(t *testing.T) {
	tests := []struct {
		name string
		text string
		sec  string
	}{
		{name: "value references", text: "[A]\nX = @B\n[B]\nX = @A\n", sec: "A"},
		{name: "parents", text: "[A@B]\n[B@A]\n", sec: "A"},
		{name: "self key", text: "[A]\nX = @.X\n", sec: "A"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, logs := newLoggedStore(t, nil)
			require.NoError(t, s.LoadFromMemory([]byte(tt.text)))
			require.NoError(t, s.SelectSection(tt.sec))

			assert.False(t, s.HasValue("X"))
			assert.Equal(t, int32(0), s.GetS32("X"))
			assert.Contains(t, logs.String(), "inheritance cycle")
		})
	}
}

func TestInherit_DepthOption(t *testing.T) {
	s, _ := newTestStore(t, nil)
	s.maxDepth = 2
	require.NoError(t, s.LoadFromMemory([]byte("[A]\nX = 1\n[B@A]\n[C@B]\n[D@C]\n")))

	require.NoError(t, s.SelectSection("C"))
	assert.Equal(t, int32(1), s.GetS32("X"))
	require.NoError(t, s.SelectSection("D"))
	assert.False(t, s.HasValue("X"))
}
