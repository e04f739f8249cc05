package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Workspace is a PPL project described by ppl.toml (or ppl.yaml).
type Workspace struct {
	Package  Package  `toml:"package" yaml:"package"`
	Compiler Compiler `toml:"compiler" yaml:"compiler"`
	Data     Data     `toml:"data" yaml:"data"`

	// File is the workspace file that was loaded (set at load time)
	File string `toml:"-" yaml:"-"`
}

type Package struct {
	Name            string   `toml:"name" yaml:"name"`
	Version         string   `toml:"version" yaml:"version"`
	LanguageVersion int      `toml:"language_version" yaml:"language_version"`
	Runtime         int      `toml:"runtime" yaml:"runtime"`
	Authors         []string `toml:"authors" yaml:"authors"`
}

type Compiler struct {
	// Defines are preprocessor symbols set before lexing, NAME or NAME=value
	Defines []string `toml:"defines" yaml:"defines"`
	// UserVariables forces the user variable block into the table
	UserVariables bool `toml:"user_variables" yaml:"user_variables"`
}

type Data struct {
	TextFiles []string `toml:"text_files" yaml:"text_files"`
	ArtFiles  []string `toml:"art_files" yaml:"art_files"`
}

// NewWorkspace returns a workspace with defaults applied
func NewWorkspace(name string) *Workspace {
	ws := &Workspace{Package: Package{Name: name, Version: "0.1.0"}}
	ws.applyDefaults()
	return ws
}

func (w *Workspace) applyDefaults() {
	if w.Package.LanguageVersion == 0 {
		w.Package.LanguageVersion = DefaultLanguageVersion
	}
	if w.Package.Runtime == 0 {
		w.Package.Runtime = w.Package.LanguageVersion
	}
}

// Load parses a workspace file. The format follows the extension.
func Load(path string) (*Workspace, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}

	var ws Workspace
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &ws); err != nil {
			return nil, fmt.Errorf("parse error in %s: %w", path, err)
		}
	default:
		if err := toml.Unmarshal(data, &ws); err != nil {
			return nil, fmt.Errorf("parse error in %s: %w", path, err)
		}
	}

	ws.File, err = filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("cannot resolve path %s: %w", path, err)
	}
	ws.applyDefaults()
	if err := ws.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &ws, nil
}

// FindAndLoad walks up from startDir to find a workspace file.
// Returns nil without error if there is none.
func FindAndLoad(startDir string) (*Workspace, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return nil, err
	}

	for {
		for _, name := range []string{WorkspaceTomlFile, WorkspaceYamlFile} {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				return Load(path)
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return nil, nil
		}
		dir = parent
	}
}

func (w *Workspace) Validate() error {
	if !IsSupportedVersion(w.Package.LanguageVersion) {
		return fmt.Errorf("unsupported language_version %d", w.Package.LanguageVersion)
	}
	if !IsSupportedVersion(w.Package.Runtime) {
		return fmt.Errorf("unsupported runtime %d", w.Package.Runtime)
	}
	return nil
}

// Save writes the workspace as TOML
func (w *Workspace) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := toml.NewEncoder(f).Encode(w); err != nil {
		return fmt.Errorf("cannot write %s: %w", path, err)
	}
	return nil
}

// Dir is the directory that holds the workspace file
func (w *Workspace) Dir() string {
	if w.File == "" {
		return "."
	}
	return filepath.Dir(w.File)
}

// TargetPath is where build output for the given runtime goes
func (w *Workspace) TargetPath(runtime int) string {
	return filepath.Join(w.Dir(), "target", TargetDir(runtime))
}

// TargetDir maps a runtime to the distribution it was shipped with
func TargetDir(runtime int) string {
	switch runtime {
	case Version100:
		return "pcboard_15.0"
	case Version200:
		return "pcboard_15.10"
	case Version300:
		return "pcboard_15.20"
	case Version310:
		return "pcboard_15.21"
	case Version320:
		return "pcboard_15.22"
	case Version330:
		return "pcboard_15.30"
	case Version340:
		return "pcboard_15.40"
	}
	return "icboard"
}

// SourceFiles lists src/**/*.pps with main.pps first
func (w *Workspace) SourceFiles() ([]string, error) {
	var files []string
	root := filepath.Join(w.Dir(), "src")
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.EqualFold(filepath.Ext(path), SourceFileExt) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(files, func(i, j int) bool {
		mi, mj := isMain(files[i]), isMain(files[j])
		if mi != mj {
			return mi
		}
		return files[i] < files[j]
	})
	return files, nil
}

func isMain(path string) bool {
	base := filepath.Base(path)
	return strings.EqualFold(strings.TrimSuffix(base, filepath.Ext(base)), "main")
}

func IsSupportedVersion(v int) bool {
	for _, s := range SupportedVersions {
		if s == v {
			return true
		}
	}
	return false
}
