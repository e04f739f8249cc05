package host

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"github.com/funvibe/ppl/internal/compiler"
	"github.com/funvibe/ppl/internal/config"
	"github.com/funvibe/ppl/internal/diagnostics"
	"github.com/funvibe/ppl/internal/executable"
	"github.com/funvibe/ppl/internal/lexer"
	"github.com/funvibe/ppl/internal/parser"
	"github.com/funvibe/ppl/internal/pipeline"
)

// DecodeSource returns the text of a source file. Files that are not valid
// UTF-8 are read as CP437, the encoding DOS editors saved them in.
func DecodeSource(data []byte) string {
	if utf8.Valid(data) {
		return string(data)
	}
	s, err := charmap.CodePage437.NewDecoder().Bytes(data)
	if err != nil {
		return string(data)
	}
	return string(s)
}

// NewContext reads a source file into a pipeline context
func NewContext(path string, registry *executable.TypeRegistry) (*pipeline.PipelineContext, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return &pipeline.PipelineContext{
		SourceCode:      DecodeSource(data),
		FilePath:        path,
		LanguageVersion: config.DefaultLanguageVersion,
		Registry:        registry,
	}, nil
}

// Compile runs the compile stages on ctx
func Compile(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	return pipeline.New(&lexer.LexerProcessor{}, &parser.ParserProcessor{}, &compiler.CompilerProcessor{}).Run(ctx)
}

// LoadScript returns the executable of a .ppe file, or compiles any other file.
// Compile errors come back as diagnostics, warnings are dropped.
func LoadScript(path string, registry *executable.TypeRegistry) (*executable.Executable, []*diagnostics.DiagnosticError, error) {
	if strings.EqualFold(filepath.Ext(path), config.ExecutableFileExt) {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, nil, err
		}
		exe, err := executable.Unmarshal(data)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", path, err)
		}
		return exe, nil, nil
	}

	ctx, err := NewContext(path, registry)
	if err != nil {
		return nil, nil, err
	}
	ctx = Compile(ctx)
	var errs []*diagnostics.DiagnosticError
	for _, d := range ctx.Errors {
		if !d.IsWarning() {
			errs = append(errs, d)
		}
	}
	return ctx.Executable, errs, nil
}
