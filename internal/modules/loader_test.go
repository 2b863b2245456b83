package modules_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sehnsucht13/zai-pl/internal/modules"
)

func writeModule(t *testing.T, dir, name, source string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name+".zai"), []byte(source), 0644))
}

func TestLoadModule(t *testing.T) {
	dir := t.TempDir()
	writeModule(t, dir, "math", "let answer = 42; func double(x) { return x * 2; }")
	t.Setenv("ZAI_PATH", dir)

	loader := modules.NewLoader()
	scope, path, err := loader.LoadModule("math")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "math.zai"), path)

	val, ok := scope.Get("answer")
	require.True(t, ok)
	assert.Equal(t, "42", val.Inspect())

	_, ok = scope.Get("double")
	assert.True(t, ok)
}

func TestMissingModule(t *testing.T) {
	t.Setenv("ZAI_PATH", t.TempDir())
	loader := modules.NewLoader()
	_, _, err := loader.LoadModule("ghost")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not be found within the interpreter path")
}

func TestModulesAreCachedPerLoader(t *testing.T) {
	dir := t.TempDir()
	writeModule(t, dir, "counter", "let n = 0;")
	t.Setenv("ZAI_PATH", dir)

	loader := modules.NewLoader()
	first, _, err := loader.LoadModule("counter")
	require.NoError(t, err)
	second, _, err := loader.LoadModule("counter")
	require.NoError(t, err)
	assert.Same(t, first, second)
}

func TestCircularImportIsAnError(t *testing.T) {
	dir := t.TempDir()
	writeModule(t, dir, "a", "import b;")
	writeModule(t, dir, "b", "import a;")
	t.Setenv("ZAI_PATH", dir)

	loader := modules.NewLoader()
	_, _, err := loader.LoadModule("a")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Circular import")
}

func TestModuleSearchOrder(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()
	writeModule(t, first, "dup", "let where = \"first\";")
	writeModule(t, second, "dup", "let where = \"second\";")
	t.Setenv("ZAI_PATH", first+":"+second)

	loader := modules.NewLoader()
	scope, _, err := loader.LoadModule("dup")
	require.NoError(t, err)
	val, ok := scope.Get("where")
	require.True(t, ok)
	assert.Equal(t, "first", val.Inspect())
}

func TestBlankPathEntriesAreDropped(t *testing.T) {
	dir := t.TempDir()
	writeModule(t, dir, "mod", "let ok = true;")
	t.Setenv("ZAI_PATH", "::"+dir+":")

	loader := modules.NewLoader()
	_, _, err := loader.LoadModule("mod")
	require.NoError(t, err)
}

func TestExtraConfiguredPaths(t *testing.T) {
	t.Setenv("ZAI_PATH", "")
	dir := t.TempDir()
	writeModule(t, dir, "extra", "let ok = true;")

	loader := modules.NewLoader(dir)
	_, _, err := loader.LoadModule("extra")
	require.NoError(t, err)
}

func TestModuleWithSyntaxErrorFailsToLoad(t *testing.T) {
	dir := t.TempDir()
	writeModule(t, dir, "broken", "let = ;")
	t.Setenv("ZAI_PATH", dir)

	loader := modules.NewLoader()
	_, _, err := loader.LoadModule("broken")
	require.Error(t, err)
}
