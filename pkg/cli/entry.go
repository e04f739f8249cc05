package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"github.com/funvibe/ppl/internal/config"
	"github.com/funvibe/ppl/internal/diagnostics"
	"github.com/funvibe/ppl/internal/executable"
	"github.com/funvibe/ppl/pkg/host"
)

var log = commonlog.GetLogger("ppl.cli")

// Streams of the commands, replaced in tests
var (
	stdin  io.Reader = os.Stdin
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// DefaultUser is the record GETUSER reads when --user is not given
const DefaultUser = "SYSOP"

type options struct {
	verbosity int
	logPath   *string

	language int
	runtime  int
	defines  []string
	output   string

	vars    bool
	yaml    bool
	write   bool
	noColor bool

	user   string
	userDB string
}

// parseOptions separates flags from positional arguments. Flags may appear anywhere.
func parseOptions(args []string) (*options, []string, error) {
	opts := &options{user: DefaultUser, userDB: os.Getenv("PPL_USERDB")}
	var rest []string

	value := func(i *int, name string) (string, error) {
		if *i+1 >= len(args) {
			return "", fmt.Errorf("%s needs a value", name)
		}
		*i++
		return args[*i], nil
	}
	number := func(i *int, name string) (int, error) {
		s, err := value(i, name)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(s)
		if err != nil || !config.IsSupportedVersion(n) {
			return 0, fmt.Errorf("%s: unsupported version %q", name, s)
		}
		return n, nil
	}

	for i := 0; i < len(args); i++ {
		arg := args[i]
		var err error
		switch {
		case arg == "-v" || arg == "-vv" || arg == "-vvv":
			opts.verbosity = len(arg) - 1
		case arg == "--log":
			var path string
			path, err = value(&i, arg)
			opts.logPath = &path
		case arg == "--lang":
			opts.language, err = number(&i, arg)
		case arg == "--runtime":
			opts.runtime, err = number(&i, arg)
		case arg == "-D":
			var def string
			def, err = value(&i, arg)
			opts.defines = append(opts.defines, strings.ToUpper(def))
		case strings.HasPrefix(arg, "-D") && len(arg) > 2:
			opts.defines = append(opts.defines, strings.ToUpper(arg[2:]))
		case arg == "-o":
			opts.output, err = value(&i, arg)
		case arg == "--vars":
			opts.vars = true
		case arg == "--yaml":
			opts.yaml = true
		case arg == "-w":
			opts.write = true
		case arg == "--no-color":
			opts.noColor = true
		case arg == "--user":
			opts.user, err = value(&i, arg)
		case arg == "--userdb":
			opts.userDB, err = value(&i, arg)
		case arg == "-h" || arg == "-help" || arg == "--help" || arg == "-version" || arg == "--version":
			rest = append(rest, arg)
		case strings.HasPrefix(arg, "-") && arg != "-":
			err = fmt.Errorf("unknown flag %s", arg)
		default:
			rest = append(rest, arg)
		}
		if err != nil {
			return nil, nil, err
		}
	}
	return opts, rest, nil
}

// diagnosticsError is a failed compile. Its text is the list the pipeline produced.
type diagnosticsError []*diagnostics.DiagnosticError

func (d diagnosticsError) Error() string {
	var b strings.Builder
	b.WriteString("Processing failed with errors:")
	for _, err := range d {
		b.WriteString("\n- ")
		b.WriteString(err.Error())
	}
	return b.String()
}

// exitOnError reports err and ends the process
func exitOnError(err error) {
	if err == nil {
		return
	}
	var diags diagnosticsError
	if errors.As(err, &diags) {
		fmt.Fprintln(stderr, diags.Error())
	} else {
		fmt.Fprintf(stderr, "Error: %s\n", err)
	}
	os.Exit(1)
}

func isSourceFile(path string) bool {
	for _, ext := range config.SourceFileExtensions {
		if strings.EqualFold(filepath.Ext(path), ext) {
			return true
		}
	}
	return false
}

func isExecutableFile(path string) bool {
	return strings.EqualFold(filepath.Ext(path), config.ExecutableFileExt)
}

// newRegistry returns the host object types every command compiles against
func newRegistry() *executable.TypeRegistry {
	r := executable.NewTypeRegistry()
	if err := host.RegisterTypes(r); err != nil {
		log.Errorf("register host types: %s", err)
	}
	return r
}

func handleVersion(cmd string) bool {
	switch cmd {
	case "version", "-version", "--version":
		fmt.Fprintf(stdout, "ppl %s (PPL %d.%02d)\n", config.Version, config.LastPPLC/100, config.LastPPLC%100)
		return true
	}
	return false
}

func handleHelp(cmd string) bool {
	switch cmd {
	case "help", "-help", "--help", "-h":
		fmt.Fprint(stdout, usage)
		return true
	}
	return false
}

func handleNew(cmd string, args []string) bool {
	if cmd != "new" {
		return false
	}
	if len(args) != 1 {
		exitOnError(errors.New("usage: ppl new <name>"))
	}
	exitOnError(newWorkspace(args[0]))
	return true
}

func handleBuild(cmd string, args []string, opts *options) bool {
	if cmd != "build" {
		return false
	}
	exitOnError(build(args, opts))
	return true
}

func handleCheck(cmd string, args []string, opts *options) bool {
	if cmd != "check" {
		return false
	}
	exitOnError(check(args, opts))
	return true
}

func handleFmt(cmd string, args []string, opts *options) bool {
	if cmd != "fmt" {
		return false
	}
	exitOnError(format(args, opts))
	return true
}

func handleDisasm(cmd string, args []string, opts *options) bool {
	if cmd != "disasm" {
		return false
	}
	if len(args) != 1 {
		exitOnError(errors.New("usage: ppl disasm <file> [--vars] [--yaml]"))
	}
	exitOnError(disassemble(args[0], opts))
	return true
}

func handleRun(cmd string, args []string, opts *options) bool {
	switch {
	case cmd == "run":
		if len(args) < 1 {
			exitOnError(errors.New("usage: ppl run <file>"))
		}
	case isSourceFile(cmd) || isExecutableFile(cmd):
		// ppl file.pps
		args = append([]string{cmd}, args...)
	default:
		return false
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	exitOnError(run(ctx, args[0], opts))
	return true
}

func Run() {
	// Catch panics and show user-friendly error
	defer func() {
		if r := recover(); r != nil {
			if os.Getenv("DEBUG") == "1" {
				panic(r)
			}
			fmt.Fprintf(os.Stderr, "Internal error: %v\n", r)
			fmt.Fprintln(os.Stderr, "This is a bug. Please report it.")
			os.Exit(1)
		}
	}()

	opts, args, err := parseOptions(os.Args[1:])
	exitOnError(err)
	commonlog.Configure(opts.verbosity, opts.logPath)

	if len(args) == 0 {
		fmt.Fprint(stderr, usage)
		os.Exit(1)
	}
	cmd, args := args[0], args[1:]
	log.Debugf("command %s %v", cmd, args)

	if handleVersion(cmd) || handleHelp(cmd) || handleNew(cmd, args) {
		return
	}
	if handleBuild(cmd, args, opts) || handleCheck(cmd, args, opts) || handleFmt(cmd, args, opts) {
		return
	}
	if handleDisasm(cmd, args, opts) || handleRun(cmd, args, opts) {
		return
	}

	fmt.Fprintf(stderr, "Unknown command: %s\n\n%s", cmd, usage)
	os.Exit(1)
}

const usage = `Usage: ppl <command> [flags] [arguments]

Commands:
  new <name>          create a workspace with ppl.toml and src/main.pps
  build [file|dir]    compile a file to .ppe, or the workspace into target/
  run <file>          run a .pps or .ppe script (also: ppl <file>)
  check [files]       report diagnostics without writing anything
  fmt [-w] <files>    print (or rewrite) sources in canonical layout
  disasm <file>       list the statements of a .ppe or .pps file
  version             print the toolchain version
  help                show this text

Flags:
  -v, -vv, -vvv       log verbosity
  --log <file>        write the log to a file
  --lang <n>          language version (100 ... 400)
  --runtime <n>       runtime the executable targets
  -D <name>           define a preprocessor symbol
  -o <file>           output of build for a single file
  --vars, --yaml      disasm: dump the variable table (as YAML)
  --no-color          no ANSI colours
  --user <name>       user record for GETUSER/PUTUSER and USER (default SYSOP)
  --userdb <file>     sqlite user database (default $PPL_USERDB)
`
