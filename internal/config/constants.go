package config

// Version is the current zai interpreter version.
var Version = "0.2.0"

// SourceFileExt is the extension of zai module files.
const SourceFileExt = ".zai"

// ModulePathEnvVar names the colon-separated list of extra module
// search directories.
const ModulePathEnvVar = "ZAI_PATH"

// ProjectConfigFile is the optional per-directory configuration file.
const ProjectConfigFile = "zai.yaml"

// REPL defaults.
const (
	ReplPrompt          = ">> "
	DefaultHistoryFile  = ".zai_history"
	DefaultHistoryLimit = 2000
)

// Built-in function names registered in every global scope.
const (
	LenFuncName  = "len"
	TypeFuncName = "type"
	PowFuncName  = "pow"
	ModFuncName  = "mod"
)
