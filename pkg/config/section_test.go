package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orx/orx-sub008/pkg/types"
)

func TestSelectSection(t *testing.T) {
	s, _ := newTestStore(t, nil)

	require.NoError(t, s.SelectSection("  Player  "))
	assert.Equal(t, "Player", s.GetCurrentSection())
	assert.True(t, s.HasSection("Player"))
	assert.False(t, s.HasSection("player"), "names are case-sensitive")

	require.NoError(t, s.SelectSection("Enemy"))
	require.NoError(t, s.SelectSection("Player"))
	assert.Equal(t, 2, s.GetSectionCount())
	assert.Equal(t, "Player", s.GetSection(0))
	assert.Equal(t, "Enemy", s.GetSection(1))
	assert.Equal(t, "", s.GetSection(2))

	assert.ErrorIs(t, s.SelectSection(""), types.ErrEmptyName)
	assert.ErrorIs(t, s.SelectSection("@Parent"), types.ErrEmptyName)
}

func TestSelectSection_ParentOnlyWhileLoading(t *testing.T) {
	s, _ := newTestStore(t, nil)

	require.NoError(t, s.SelectSection("Child@Base"))
	assert.Equal(t, "Child", s.GetCurrentSection())
	_, ok := s.GetParent("Child")
	assert.False(t, ok)

	require.NoError(t, s.LoadFromMemory([]byte("[Child@Base]\n")))
	parent, ok := s.GetParent("Child")
	require.True(t, ok)
	assert.Equal(t, "Base", parent)
	assert.False(t, s.HasSection("Base"), "parents are not created")
}

func TestSelfParentIgnored(t *testing.T) {
	s, logs := newLoggedStore(t, nil)
	require.NoError(t, s.LoadFromMemory([]byte("[Loop@Loop]\nX = 1\n")))

	_, ok := s.GetParent("Loop")
	assert.False(t, ok)
	assert.Contains(t, logs.String(), "cannot inherit from itself")
}

func TestSetParent(t *testing.T) {
	s, _ := newTestStore(t, nil)

	require.NoError(t, s.SetParent("Child", "Base"))
	parent, ok := s.GetParent("Child")
	require.True(t, ok)
	assert.Equal(t, "Base", parent)

	require.NoError(t, s.SetParent("Child", ParentNone))
	parent, ok = s.GetParent("Child")
	require.True(t, ok)
	assert.Equal(t, ParentNone, parent)

	require.NoError(t, s.SetParent("Child", ""))
	_, ok = s.GetParent("Child")
	assert.False(t, ok)

	assert.ErrorIs(t, s.SetParent("", "Base"), types.ErrEmptyName)
	assert.ErrorIs(t, s.SetParent("A@B", "Base"), types.ErrInvalidName)
	assert.ErrorIs(t, s.SetParent("Self", "Self"), types.ErrInvalidName)
}

func TestProtectSection(t *testing.T) {
	s, _ := newTestStore(t, nil)
	require.NoError(t, s.SelectSection("S"))
	require.NoError(t, s.SetS32("X", 1))

	require.NoError(t, s.ProtectSection("S", true))
	require.NoError(t, s.ClearSection("S"))
	assert.True(t, s.HasSection("S"))
	assert.True(t, s.IsProtected("S"))
	require.NoError(t, s.SelectSection("S"))
	assert.Equal(t, 0, s.GetKeyCounter(), "protected sections are still emptied")

	require.NoError(t, s.ProtectSection("S", false))
	require.NoError(t, s.ClearSection("S"))
	assert.False(t, s.HasSection("S"))
	assert.Equal(t, "", s.GetCurrentSection())

	assert.ErrorIs(t, s.ProtectSection("S", true), types.ErrNotFound)
}

func TestProtectSection_Unbalanced(t *testing.T) {
	s, logs := newLoggedStore(t, nil)
	require.NoError(t, s.SelectSection("S"))

	err := s.ProtectSection("S", false)
	assert.ErrorIs(t, err, types.ErrProtected)
	kind, _ := types.KindOf(err)
	assert.Equal(t, types.ErrKindState, kind)
	assert.Contains(t, logs.String(), "unbalanced section protection")
}

func TestClear_KeepsProtected(t *testing.T) {
	s, _ := newTestStore(t, nil)
	for _, name := range []string{"A", "B", "C"} {
		require.NoError(t, s.SelectSection(name))
		require.NoError(t, s.SetString("Key", name))
	}
	require.NoError(t, s.ProtectSection("B", true))

	require.NoError(t, s.Clear())

	assert.Equal(t, 1, s.GetSectionCount())
	assert.Equal(t, "B", s.GetSection(0))
}

func TestRenameSection(t *testing.T) {
	s, _ := newTestStore(t, nil)
	require.NoError(t, s.LoadFromMemory([]byte("[Base]\nX = 7\n[Child@Base]\n[Other]\n")))
	s.SetDefaultParent("Base")

	require.NoError(t, s.RenameSection("Base", "Template"))

	assert.False(t, s.HasSection("Base"))
	assert.Equal(t, "Template", s.GetSection(0))
	assert.Equal(t, "Template", s.GetDefaultParent())
	parent, _ := s.GetParent("Child")
	assert.Equal(t, "Template", parent)

	require.NoError(t, s.SelectSection("Child"))
	assert.Equal(t, int32(7), s.GetS32("X"))

	assert.ErrorIs(t, s.RenameSection("Child", "Other"), types.ErrSectionExists)
	assert.ErrorIs(t, s.RenameSection("Missing", "New"), types.ErrNotFound)
	assert.ErrorIs(t, s.RenameSection("Child", "A@B"), types.ErrInvalidName)
	assert.ErrorIs(t, s.RenameSection("", "New"), types.ErrEmptyName)
}
