package main

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orx/orx-sub008/internal/cipher"
	"github.com/orx/orx-sub008/pkg/config"
	"github.com/orx/orx-sub008/pkg/types"
)

func TestEncryptDecrypt(t *testing.T) {
	fs := useMemFs(t, map[string]string{"game.ini": gameINI})
	quiet = true
	keyFlag = "secret"

	require.NoError(t, runCrypt("game.ini", "game.dat", true))
	raw, err := afero.ReadFile(fs, "game.dat")
	require.NoError(t, err)
	require.True(t, cipher.HasTag(raw))

	require.NoError(t, runCrypt("game.dat", "plain.ini", false))
	plain, err := afero.ReadFile(fs, "plain.ini")
	require.NoError(t, err)
	assert.Equal(t, gameINI, string(plain))
}

func TestEncrypt_NoKey(t *testing.T) {
	useMemFs(t, map[string]string{"game.ini": gameINI})
	noKey = true

	require.Error(t, runCrypt("game.ini", "game.dat", true))
}

func TestDecrypt_NoKeyForEncryptedSource(t *testing.T) {
	fs := useMemFs(t, nil)
	quiet = true

	s := config.New(config.Options{Fs: fs})
	require.NoError(t, s.SelectSection("A"))
	require.NoError(t, s.SetString("X", "1"))
	require.NoError(t, s.Save("enc.ini", true, nil))

	noKey = true
	require.ErrorIs(t, runCrypt("enc.ini", "out.ini", false), types.ErrNoKey)
}

func TestMergeCommand(t *testing.T) {
	fs := useMemFs(t, map[string]string{
		"parts/1.ini": "[A]\nX = 1",
		"parts/2.ini": "[B@A]\nY = 2\n",
	})
	quiet = true
	mergeEncrypt = true

	require.NoError(t, runMerge([]string{"all.dat", "parts/*.ini"}))

	s := config.New(config.Options{Fs: fs})
	require.NoError(t, s.Load("all.dat"))
	require.NoError(t, s.SelectSection("B"))
	assert.Equal(t, int32(1), s.GetS32("X"))
	assert.Equal(t, int32(2), s.GetS32("Y"))
}

func TestMergeCommand_IntoItself(t *testing.T) {
	useMemFs(t, map[string]string{"a.ini": "[A]\n"})
	require.ErrorIs(t, runMerge([]string{"a.ini", "a.ini"}), types.ErrInvalidName)
}
