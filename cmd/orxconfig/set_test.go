package main

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orx/orx-sub008/internal/cipher"
	"github.com/orx/orx-sub008/pkg/config"
)

// loadFrom reads name from fs into a new store with the default key.
func loadFrom(t *testing.T, fs afero.Fs, name string) *config.Store {
	t.Helper()
	s := config.New(config.Options{Fs: fs})
	require.NoError(t, s.Load(name))
	return s
}

func TestSetCommand(t *testing.T) {
	fs := useMemFs(t, map[string]string{"game.ini": gameINI})

	out, err := captureOutput(t, func() error {
		return runSet([]string{"game.ini", "Player", "Speed", "25"})
	})
	require.NoError(t, err)
	assert.Contains(t, out, "Player.Speed set")

	s := loadFrom(t, fs, "game.ini")
	require.NoError(t, s.SelectSection("Player"))
	assert.Equal(t, int32(25), s.GetS32("Speed"))
	require.NoError(t, s.SelectSection("Base"))
	assert.Equal(t, int32(10), s.GetS32("Speed"), "parent untouched")
}

func TestSetCommand_ListAppendBlock(t *testing.T) {
	fs := useMemFs(t, map[string]string{"game.ini": gameINI})
	quiet = true

	_, err := captureOutput(t, func() error {
		return runSet([]string{"game.ini", "Enemy", "Loot", "Gold", "Gem"})
	})
	require.NoError(t, err)

	setAppend = true
	_, err = captureOutput(t, func() error {
		return runSet([]string{"game.ini", "Enemy", "Loot", "Key"})
	})
	require.NoError(t, err)

	setAppend, setBlock = false, true
	_, err = captureOutput(t, func() error {
		return runSet([]string{"game.ini", "Enemy", "Motto", "a # b ~ c"})
	})
	require.NoError(t, err)

	s := loadFrom(t, fs, "game.ini")
	require.NoError(t, s.SelectSection("Enemy"))
	assert.Equal(t, 3, s.GetListCounter("Loot"))
	assert.Equal(t, "Key", s.GetListString("Loot", 2))
	assert.Equal(t, "a # b ~ c", s.GetString("Motto"))
	assert.False(t, s.IsList("Motto"))
}

func TestSetCommand_DeleteAndParent(t *testing.T) {
	fs := useMemFs(t, map[string]string{"game.ini": gameINI})
	quiet = true
	setDelete = true
	setParent = "@"

	_, err := captureOutput(t, func() error {
		return runSet([]string{"game.ini", "Player", "Name"})
	})
	require.NoError(t, err)

	s := loadFrom(t, fs, "game.ini")
	require.NoError(t, s.SelectSection("Player"))
	assert.False(t, s.HasValue("Name"))
	assert.False(t, s.HasValue("Speed"), "no parent any more")
	parent, ok := s.GetParent("Player")
	assert.True(t, ok)
	assert.Equal(t, config.ParentNone, parent)
}

func TestSetCommand_CreatesEncryptedFile(t *testing.T) {
	fs := useMemFs(t, nil)
	quiet = true
	setEncrypt = true

	_, err := captureOutput(t, func() error {
		return runSet([]string{"new.ini", "Fresh", "Value", "1"})
	})
	require.NoError(t, err)

	raw, err := afero.ReadFile(fs, "new.ini")
	require.NoError(t, err)
	assert.True(t, cipher.HasTag(raw))

	s := loadFrom(t, fs, "new.ini")
	require.NoError(t, s.SelectSection("Fresh"))
	assert.Equal(t, int32(1), s.GetS32("Value"))
}

func TestSetCommand_BadArgs(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		setup func()
	}{
		{name: "missing value", args: []string{"game.ini", "A", "K"}},
		{name: "delete with value", args: []string{"game.ini", "A", "K", "v"}, setup: func() { setDelete = true }},
		{name: "block list", args: []string{"game.ini", "A", "K", "a", "b"}, setup: func() { setBlock = true }},
		{name: "block append", args: []string{"game.ini", "A", "K", "a"}, setup: func() { setBlock, setAppend = true, true }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			useMemFs(t, map[string]string{"game.ini": gameINI})
			if tt.setup != nil {
				tt.setup()
			}
			require.Error(t, runSet(tt.args))
		})
	}
}

func TestSetCommand_KeepsIncludes(t *testing.T) {
	fs := useMemFs(t, map[string]string{
		"game.ini":   "@common.ini@\n[Player]\nSpeed = 1\n",
		"common.ini": "[Common]\nGravity = 9.8\n",
	})
	quiet = true

	_, err := captureOutput(t, func() error {
		return runSet([]string{"game.ini", "Player", "Speed", "2"})
	})
	require.NoError(t, err)

	data, err := afero.ReadFile(fs, "game.ini")
	require.NoError(t, err)
	assert.Contains(t, string(data), "@common.ini@")
	assert.NotContains(t, string(data), "[Common]", "included sections are not flattened")

	s := loadFrom(t, fs, "game.ini")
	require.NoError(t, s.SelectSection("Player"))
	assert.Equal(t, int32(2), s.GetS32("Speed"))
	require.NoError(t, s.SelectSection("Common"))
	assert.InDelta(t, 9.8, s.GetFloat("Gravity"), 1e-6)

	common, err := afero.ReadFile(fs, "common.ini")
	require.NoError(t, err)
	assert.Equal(t, "[Common]\nGravity = 9.8\n", string(common))
}
