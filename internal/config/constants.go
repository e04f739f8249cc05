package config

// Version of the ppl toolchain
const Version = "0.1.0"

const SourceFileExt = ".pps"

// ExecutableFileExt is the extension of compiled scripts
const ExecutableFileExt = ".ppe"

// SourceFileExtensions are all recognized source file extensions
var SourceFileExtensions = []string{".pps", ".ppl"}

// Language versions. The version gates grammar (lexer keywords, brackets) as well as
// the statements and functions a compiled script may use.
const (
	Version100 = 100
	Version200 = 200
	Version300 = 300
	Version310 = 310
	Version320 = 320
	Version330 = 330
	Version340 = 340
	Version350 = 350
	Version400 = 400

	// LastPPLC is the newest format the compiler writes and the loader accepts
	LastPPLC = Version400
)

// DefaultLanguageVersion is used when neither a workspace nor a flag picks one
const DefaultLanguageVersion = LastPPLC

// SupportedVersions lists every runtime a workspace may target
var SupportedVersions = []int{Version100, Version200, Version300, Version310, Version320, Version330, Version340, Version350, Version400}

// Runtime limits
const (
	MaxCallDepth    = 4096
	MaxGosubDepth   = 4096
	MaxPushStack    = 1024
	MaxFileChannels = 8
)

// Workspace file names, probed in this order
const (
	WorkspaceTomlFile = "ppl.toml"
	WorkspaceYamlFile = "ppl.yaml"
)
