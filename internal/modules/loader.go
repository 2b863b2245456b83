// Package modules resolves and evaluates zai modules from the
// filesystem.
package modules

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sehnsucht13/zai-pl/internal/config"
	"github.com/sehnsucht13/zai-pl/internal/evaluator"
	"github.com/sehnsucht13/zai-pl/internal/lexer"
	"github.com/sehnsucht13/zai-pl/internal/parser"
	"github.com/sehnsucht13/zai-pl/internal/pipeline"
)

type loadedModule struct {
	scope *evaluator.Scope
	path  string
}

// Loader finds <name>.zai files on the module path and evaluates each
// one once, in its own isolated environment.
type Loader struct {
	extraPaths []string

	loaded  map[string]*loadedModule
	loading map[string]bool // cycle detection during evaluation
}

func NewLoader(extraPaths ...string) *Loader {
	return &Loader{
		extraPaths: extraPaths,
		loaded:     make(map[string]*loadedModule),
		loading:    make(map[string]bool),
	}
}

// SearchPaths returns the directories consulted for modules: the
// working directory, every non-blank ZAI_PATH entry, then the
// configured extra paths.
func (l *Loader) SearchPaths() []string {
	paths := make([]string, 0, 4)
	if cwd, err := os.Getwd(); err == nil {
		paths = append(paths, cwd)
	}
	for _, entry := range strings.Split(os.Getenv(config.ModulePathEnvVar), ":") {
		if entry != "" {
			paths = append(paths, entry)
		}
	}
	paths = append(paths, l.extraPaths...)
	return paths
}

// resolve finds the first directory on the module path holding
// <name>.zai and returns the full path and file contents.
func (l *Loader) resolve(name string) (string, string, error) {
	fileName := name + config.SourceFileExt
	for _, dir := range l.SearchPaths() {
		fullPath := filepath.Join(dir, fileName)
		info, err := os.Stat(fullPath)
		if err != nil || info.IsDir() {
			continue
		}
		data, err := os.ReadFile(fullPath)
		if err != nil {
			return "", "", fmt.Errorf("reading module %s: %w", fullPath, err)
		}
		return fullPath, string(data), nil
	}
	return "", "", fmt.Errorf("Module %s could not be found within the interpreter path.", name)
}

// LoadModule implements evaluator.ModuleLoader. The module is lexed,
// parsed and evaluated in a fresh environment stack whose global scope
// becomes the module's namespace. Results are cached per loader, so
// two imports of the same module share state.
func (l *Loader) LoadModule(name string) (*evaluator.Scope, string, error) {
	if mod, ok := l.loaded[name]; ok {
		return mod.scope, mod.path, nil
	}
	if l.loading[name] {
		return nil, "", fmt.Errorf("Circular import of module %s detected!", name)
	}

	path, source, err := l.resolve(name)
	if err != nil {
		return nil, "", err
	}

	l.loading[name] = true
	defer delete(l.loading, name)

	ctx := pipeline.New(&lexer.LexerProcessor{}, &parser.ParserProcessor{}).
		Run(&pipeline.PipelineContext{SourceCode: source, FilePath: path})
	if ctx.Err != nil {
		return nil, "", fmt.Errorf("module %s: %w", name, ctx.Err)
	}

	env := evaluator.NewEnvironmentStack()
	evaluator.RegisterBuiltins(env.Global())
	eval := evaluator.New(env)
	eval.Loader = l

	if result := eval.Eval(ctx.AstRoot); result != nil {
		if errObj, ok := result.(*evaluator.Error); ok {
			return nil, "", fmt.Errorf("module %s: %s", name, errObj.Inspect())
		}
	}

	mod := &loadedModule{scope: env.Peek(), path: path}
	l.loaded[name] = mod
	return mod.scope, mod.path, nil
}
