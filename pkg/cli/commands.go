package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/funvibe/ppl/internal/backend"
	"github.com/funvibe/ppl/internal/compiler"
	"github.com/funvibe/ppl/internal/config"
	"github.com/funvibe/ppl/internal/diagnostics"
	"github.com/funvibe/ppl/internal/executable"
	"github.com/funvibe/ppl/internal/lexer"
	"github.com/funvibe/ppl/internal/parser"
	"github.com/funvibe/ppl/internal/pipeline"
	"github.com/funvibe/ppl/internal/prettyprinter"
	"github.com/funvibe/ppl/pkg/host"
)

const mainTemplate = `; %s
STRING name
INPUT "What is your name", name
NEWLINE
PRINTLN "Hello, ", name, "!"
`

// newWorkspace creates the directory name with a ppl.toml and src/main.pps
func newWorkspace(name string) error {
	if _, err := os.Stat(name); err == nil {
		return fmt.Errorf("%s already exists", name)
	}
	if err := os.MkdirAll(filepath.Join(name, "src"), 0o755); err != nil {
		return err
	}
	ws := config.NewWorkspace(filepath.Base(name))
	if err := ws.Save(filepath.Join(name, config.WorkspaceTomlFile)); err != nil {
		return err
	}
	main := fmt.Sprintf(mainTemplate, ws.Package.Name)
	if err := os.WriteFile(filepath.Join(name, "src", "main"+config.SourceFileExt), []byte(main), 0o644); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Created workspace %s\n", name)
	return nil
}

// workspaceFor finds the workspace a file or directory belongs to, nil if none
func workspaceFor(path string) (*config.Workspace, error) {
	dir := path
	if fi, err := os.Stat(path); err == nil && !fi.IsDir() {
		dir = filepath.Dir(path)
	}
	ws, err := config.FindAndLoad(dir)
	if err != nil {
		return nil, err
	}
	if ws != nil {
		if err := ws.Validate(); err != nil {
			return nil, fmt.Errorf("%s: %w", ws.File, err)
		}
		log.Infof("workspace %s", ws.File)
	}
	return ws, nil
}

// compileFile runs the compile stages on one source file with the settings of
// the workspace, overridden by flags
func compileFile(path string, ws *config.Workspace, opts *options) (*pipeline.PipelineContext, error) {
	ctx, err := host.NewContext(path, newRegistry())
	if err != nil {
		return nil, err
	}
	applyWorkspace(ctx, ws, opts)
	return host.Compile(ctx), nil
}

func applyWorkspace(ctx *pipeline.PipelineContext, ws *config.Workspace, opts *options) {
	if ws != nil {
		ctx.LanguageVersion = ws.Package.LanguageVersion
		ctx.Runtime = ws.Package.Runtime
		ctx.PackageVersion = ws.Package.Version
		ctx.Defines = append(ctx.Defines, ws.Compiler.Defines...)
		ctx.UserVariables = ws.Compiler.UserVariables
	}
	if opts.language != 0 {
		ctx.LanguageVersion = opts.language
	}
	if opts.runtime != 0 {
		ctx.Runtime = opts.runtime
	}
	ctx.Defines = append(ctx.Defines, opts.defines...)
}

// report prints warnings and turns errors into a diagnosticsError
func report(ctx *pipeline.PipelineContext) error {
	if ctx.HasErrors() {
		return diagnosticsError(ctx.Errors)
	}
	for _, w := range ctx.Errors {
		fmt.Fprintln(stderr, w.Error())
	}
	return nil
}

func writeExecutable(exe *executable.Executable, path string) (int, error) {
	data, err := exe.Marshal()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", path, err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return 0, err
	}
	return len(data), os.WriteFile(path, data, 0o644)
}

// build compiles one file next to itself (or to -o), or a whole workspace into its target directory
func build(args []string, opts *options) error {
	start := "."
	if len(args) > 0 {
		start = args[0]
	}
	fi, err := os.Stat(start)
	if err != nil {
		return err
	}
	ws, err := workspaceFor(start)
	if err != nil {
		return err
	}

	if !fi.IsDir() {
		ctx, err := compileFile(start, ws, opts)
		if err != nil {
			return err
		}
		if err := report(ctx); err != nil {
			return err
		}
		out := opts.output
		if out == "" {
			out = strings.TrimSuffix(start, filepath.Ext(start)) + config.ExecutableFileExt
		}
		n, err := writeExecutable(ctx.Executable, out)
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "Compiled %s -> %s (%d bytes)\n", start, out, n)
		return nil
	}

	if ws == nil {
		return fmt.Errorf("no %s found in %s or its parents", config.WorkspaceTomlFile, start)
	}
	files, err := ws.SourceFiles()
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("%s: no %s files under src", ws.Dir(), config.SourceFileExt)
	}
	runtime := ws.Package.Runtime
	if opts.runtime != 0 {
		runtime = opts.runtime
	}
	target := ws.TargetPath(runtime)

	var failed diagnosticsError
	for _, file := range files {
		ctx, err := compileFile(file, ws, opts)
		if err != nil {
			return err
		}
		if ctx.HasErrors() {
			failed = append(failed, ctx.Errors...)
			continue
		}
		_ = report(ctx)
		base := strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
		out := filepath.Join(target, base+config.ExecutableFileExt)
		if _, err := writeExecutable(ctx.Executable, out); err != nil {
			return err
		}
		log.Infof("compiled %s -> %s", file, out)
	}
	if len(failed) > 0 {
		return failed
	}

	data := append(append([]string{}, ws.Data.TextFiles...), ws.Data.ArtFiles...)
	for _, name := range data {
		if err := copyFile(filepath.Join(ws.Dir(), name), filepath.Join(target, filepath.Base(name))); err != nil {
			return err
		}
	}
	fmt.Fprintf(stdout, "Built %d scripts into %s\n", len(files), target)
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// check compiles the named files, or the workspace sources, and reports what it finds
func check(args []string, opts *options) error {
	files := args
	if len(files) == 0 {
		ws, err := workspaceFor(".")
		if err != nil {
			return err
		}
		if ws == nil {
			return errors.New("nothing to check: name files or run inside a workspace")
		}
		if files, err = ws.SourceFiles(); err != nil {
			return err
		}
	}

	var all diagnosticsError
	for _, file := range files {
		ws, err := workspaceFor(file)
		if err != nil {
			return err
		}
		ctx, err := compileFile(file, ws, opts)
		if err != nil {
			return err
		}
		all = append(all, ctx.Errors...)
	}
	if diagnostics.HasErrors(all) {
		return all
	}
	for _, w := range all {
		fmt.Fprintln(stderr, w.Error())
	}
	fmt.Fprintf(stdout, "%d files ok\n", len(files))
	return nil
}

// format pretty prints sources. With -w changed files are rewritten in place.
func format(args []string, opts *options) error {
	if len(args) == 0 {
		return errors.New("usage: ppl fmt [-w] <files>")
	}
	for _, file := range args {
		ctx, err := host.NewContext(file, newRegistry())
		if err != nil {
			return err
		}
		if opts.language != 0 {
			ctx.LanguageVersion = opts.language
		}
		ctx = pipeline.New(&lexer.LexerProcessor{}, &parser.ParserProcessor{}).Run(ctx)
		if ctx.HasErrors() {
			return diagnosticsError(ctx.Errors)
		}
		out := prettyprinter.Format(ctx.AstRoot)
		if !opts.write {
			fmt.Fprint(stdout, out)
			continue
		}
		if out == ctx.SourceCode {
			continue
		}
		if err := os.WriteFile(file, []byte(out), 0o644); err != nil {
			return err
		}
		fmt.Fprintln(stdout, file)
	}
	return nil
}

// loadExecutable reads a .ppe or compiles a source file
func loadExecutable(path string, opts *options) (*executable.Executable, error) {
	if isExecutableFile(path) {
		exe, _, err := host.LoadScript(path, nil)
		return exe, err
	}
	ws, err := workspaceFor(path)
	if err != nil {
		return nil, err
	}
	ctx, err := compileFile(path, ws, opts)
	if err != nil {
		return nil, err
	}
	if err := report(ctx); err != nil {
		return nil, err
	}
	return ctx.Executable, nil
}

func disassemble(path string, opts *options) error {
	exe, err := loadExecutable(path, opts)
	if err != nil {
		return err
	}
	dopts := executable.DefaultDisasmOptions(stdout)
	dopts.Color = dopts.Color && !opts.noColor
	dopts.Variables = opts.vars || opts.yaml
	dopts.YAML = opts.yaml
	return executable.Disassemble(stdout, exe, dopts)
}

// run executes a script on the console. Sources go through the whole pipeline,
// executables start at the execution stage.
func run(ctx context.Context, path string, opts *options) error {
	registry := newRegistry()
	hostOpts := []host.Option{
		host.WithStreams(stdin, stdout),
		host.WithDir(filepath.Dir(path)),
		host.WithRegistry(registry),
	}
	if opts.noColor {
		hostOpts = append(hostOpts, host.WithColor(false))
	}
	if opts.userDB != "" {
		store, err := host.OpenUserStore(opts.userDB, opts.user)
		if err != nil {
			return err
		}
		defer store.Close()
		hostOpts = append(hostOpts, host.WithUserStore(store))
	}
	console := host.NewConsole(ctx, hostOpts...)
	exec := backend.NewExecutionProcessor(backend.NewVMBackend(ctx, console))

	var pctx *pipeline.PipelineContext
	if isExecutableFile(path) {
		exe, _, err := host.LoadScript(path, registry)
		if err != nil {
			return err
		}
		pctx = exec.Process(&pipeline.PipelineContext{FilePath: path, Executable: exe, Registry: registry})
	} else {
		ws, err := workspaceFor(path)
		if err != nil {
			return err
		}
		pctx, err = host.NewContext(path, registry)
		if err != nil {
			return err
		}
		applyWorkspace(pctx, ws, opts)
		pctx = pipeline.New(
			&lexer.LexerProcessor{},
			&parser.ParserProcessor{},
			&compiler.CompilerProcessor{},
			exec,
		).Run(pctx)
	}

	if pctx.HasErrors() {
		return diagnosticsError(pctx.Errors)
	}
	for _, w := range pctx.Errors {
		fmt.Fprintln(stderr, w.Error())
	}
	return nil
}
