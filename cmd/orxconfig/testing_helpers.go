package main

import (
	"bytes"
	"os"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

const gameINI = `
[Base]
Speed   = 10
Weapons = Sword # Axe
Range   = 1 ~ 3

[Player@Base]
Name  = "Hero # One"
Alias = @Base.Speed
Pos   = (1, 2, 3)

[Config]
History = false
`

// useMemFs points the commands at an in-memory filesystem holding files.
// Flags are reset before the test and appFs is restored after it.
func useMemFs(t *testing.T, files map[string]string) afero.Fs {
	t.Helper()
	resetFlags()

	fs := afero.NewMemMapFs()
	for name, content := range files {
		require.NoError(t, afero.WriteFile(fs, name, []byte(content), 0o644))
	}
	orig := appFs
	appFs = fs
	t.Cleanup(func() {
		appFs = orig
		resetFlags()
	})
	return fs
}

// resetFlags restores every flag variable to its default.
func resetFlags() {
	verbose, quiet, jsonOut = false, false, false
	noColor = true
	keyFlag, noKey = "", false
	formatArg = "text"
	logDir = ""

	getType, getIndex, getInfo = "string", -1, false
	setBlock, setAppend, setDelete, setParent, setEncrypt = false, false, false, "", false
	dumpSection, dumpKeysOnly, dumpNoFlags, dumpExpand, dumpMaxValLen = "", false, false, false, 0
	mergeEncrypt = false
	watchPrint = false
}

// captureOutput captures stdout while running a function
func captureOutput(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	// Save original stdout
	origStdout := os.Stdout

	// Create a pipe to capture output
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}

	// Redirect stdout to pipe
	os.Stdout = w

	// Drain concurrently so large outputs do not block on the pipe
	var buf bytes.Buffer
	done := make(chan error, 1)
	go func() {
		_, err := buf.ReadFrom(r)
		done <- err
	}()

	// Run function
	fnErr := fn()

	// Close write end and restore stdout
	w.Close()
	os.Stdout = origStdout

	if err := <-done; err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	return buf.String(), fnErr
}
