package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gallows-labs/hangman/internal/cli/config"
)

const computerLine = "00260881 05 n 01 computer 0 002 @ 03082979 n 0000 ~ 02938886 n 0000 |a machine for performing calculations automatically; a device that computes"

func writeDictDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "data.noun"), []byte(computerLine+"\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "data.verb"),
		[]byte("00001740 29 v 01 take_a_breath 0 003 @ 00001741 v 0000 |draw air into, and expel out of, the lungs\n"), 0o644))
	return dir
}

// execute runs the root command with args plus a temp log file, and
// returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	config.Reset()
	root := NewRootCmd()
	out := new(bytes.Buffer)
	root.SetOut(out)
	root.SetErr(new(bytes.Buffer))
	root.SetArgs(append(args, "--log-file", filepath.Join(t.TempDir(), "hangman.log")))
	err := root.Execute()
	return out.String(), err
}

func TestNewRootCmd_Flags(t *testing.T) {
	root := NewRootCmd()

	for _, flag := range []string{"config", "dict-dir", "log-file", "verbose"} {
		assert.NotNil(t, root.PersistentFlags().Lookup(flag), "flag %q should exist", flag)
	}
	assert.Equal(t, "d", root.PersistentFlags().Lookup("dict-dir").Shorthand)
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")

	require.NoError(t, err)
	assert.Contains(t, out, "hangman v")
}

func TestPlay_RequiresDictDir(t *testing.T) {
	_, err := execute(t, "play")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "--dict-dir")
}

func TestPlay_RejectsMissingDirectory(t *testing.T) {
	_, err := execute(t, "play", "-d", filepath.Join(t.TempDir(), "nope"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not exist")
}

func TestWords_SampleTable(t *testing.T) {
	dir := writeDictDir(t)

	out, err := execute(t, "words", "noun", "-d", dir)

	require.NoError(t, err)
	assert.Contains(t, out, "computer")
	assert.Contains(t, out, "a machine for performing calculations automatically")
}

func TestWords_Counts(t *testing.T) {
	dir := writeDictDir(t)

	out, err := execute(t, "words", "-d", dir)

	require.NoError(t, err)
	assert.Contains(t, out, "Noun")
	assert.Contains(t, out, "Verb")
	// adj and adv files are absent; their rows carry the error instead.
	assert.Contains(t, out, "data.adj")
	assert.Contains(t, out, "data.adv")
}

func TestWords_UnknownCategory(t *testing.T) {
	dir := writeDictDir(t)

	_, err := execute(t, "words", "pronoun", "-d", dir)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown category")
}

func TestWords_MultiwordEntries(t *testing.T) {
	dir := writeDictDir(t)

	out, err := execute(t, "words", "verb", "-d", dir)

	require.NoError(t, err)
	assert.Contains(t, out, "take a breath", "underscores become spaces")
}
