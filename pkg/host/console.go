// Package host provides the console environment the ppl command runs scripts in.
package host

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/tliron/commonlog"

	"github.com/funvibe/ppl/internal/executable"
	"github.com/funvibe/ppl/internal/vm"
)

var log = commonlog.GetLogger("ppl.host")

// Console runs scripts on a terminal or on plain streams. It implements
// vm.Host, vm.UserStore and vm.UserDataProvider.
type Console struct {
	ctx      context.Context
	out      io.Writer
	in       *bufio.Reader
	dir      string
	color    bool
	pipedIn  bool
	registry *executable.TypeRegistry
	store    *UserStore
	depth    int
}

// Option configures a Console
type Option func(*Console)

// WithStreams replaces stdin and stdout
func WithStreams(in io.Reader, out io.Writer) Option {
	return func(c *Console) {
		c.in = bufio.NewReader(in)
		c.out = out
		c.color = isTerminal(out)
		c.pipedIn = !isTerminal(in)
	}
}

// WithDir sets the directory script paths are relative to
func WithDir(dir string) Option {
	return func(c *Console) { c.dir = dir }
}

// WithColor forces @X colour codes to be rendered or stripped
func WithColor(on bool) Option {
	return func(c *Console) { c.color = on }
}

// WithUserStore enables GETUSER, PUTUSER and the USER object
func WithUserStore(s *UserStore) Option {
	return func(c *Console) { c.store = s }
}

// WithRegistry sets the host object types nested scripts are compiled and run with
func WithRegistry(r *executable.TypeRegistry) Option {
	return func(c *Console) { c.registry = r }
}

// NewConsole creates a console on stdin and stdout. CALL runs until ctx is canceled.
func NewConsole(ctx context.Context, opts ...Option) *Console {
	c := &Console{
		ctx:     ctx,
		out:     os.Stdout,
		in:      bufio.NewReader(os.Stdin),
		dir:     ".",
		color:   isTerminal(os.Stdout),
		pipedIn: !isTerminal(os.Stdin),
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		c.color = false
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Display writes text, turning PCBoard @ codes into ANSI sequences on a terminal
func (c *Console) Display(text string) error {
	_, err := io.WriteString(c.out, renderCodes(text, c.color))
	return err
}

// Input shows prompt and reads one line. The answer is limited to opts.Length
// characters out of opts.Valid; an empty answer yields opts.Default.
func (c *Console) Input(prompt string, opts vm.InputOptions) (string, error) {
	if prompt != "" {
		if err := c.Display(prompt); err != nil {
			return "", err
		}
	}
	line, err := c.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		if errors.Is(err, io.EOF) {
			return opts.Default, nil
		}
		return "", err
	}
	line = strings.TrimRight(line, "\r\n")
	if opts.Valid != "" {
		line = strings.Map(func(r rune) rune {
			if strings.ContainsRune(opts.Valid, r) {
				return r
			}
			return -1
		}, line)
	}
	if opts.Length > 0 {
		if r := []rune(line); len(r) > opts.Length {
			line = string(r[:opts.Length])
		}
	}
	if line == "" {
		return opts.Default, nil
	}
	return line, nil
}

// ReadKey returns the next character of piped input. An interactive terminal
// is line buffered, so no key is ever pending there.
func (c *Console) ReadKey() (string, error) {
	if !c.pipedIn {
		return "", nil
	}
	r, _, err := c.in.ReadRune()
	if errors.Is(err, io.EOF) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return string(r), nil
}

// ResolvePath maps a script path to the file system. Relative paths are taken
// from the directory of the running script; DOS separators are accepted.
func (c *Console) ResolvePath(path string) string {
	path = strings.ReplaceAll(path, `\`, string(filepath.Separator))
	if filepath.IsAbs(path) || filepath.VolumeName(path) != "" {
		return path
	}
	return filepath.Join(c.dir, path)
}

// RunScript runs a .ppe or .pps file on this console (CALL). path is a
// host path as ResolvePath returns it.
func (c *Console) RunScript(path string) error {
	if c.depth >= maxCallDepth {
		return fmt.Errorf("%s: scripts nested too deeply", path)
	}
	exe, diags, err := LoadScript(path, c.registry)
	if err != nil {
		return err
	}
	if len(diags) > 0 {
		return fmt.Errorf("%s: %w", path, diags[0])
	}

	c.depth++
	defer func() { c.depth-- }()
	machine := vm.New(exe, c, vm.WithRegistry(c.registry))
	log.Infof("call %s: run %s", path, machine.RunID())
	err = machine.Run(c.ctx)
	if errors.Is(err, vm.ErrStopped) {
		return nil
	}
	return err
}

// GetUser loads the current user record. Without a store there is none.
func (c *Console) GetUser() (map[string]executable.Value, error) {
	if c.store == nil {
		return map[string]executable.Value{}, nil
	}
	return c.store.GetUser()
}

// PutUser saves the current user record. Without a store it is discarded.
func (c *Console) PutUser(fields map[string]executable.Value) error {
	if c.store == nil {
		log.Debug("PUTUSER without a user store")
		return nil
	}
	return c.store.PutUser(fields)
}

// Object returns the USER object for variables of that type
func (c *Console) Object(typeName string) (vm.UserData, error) {
	if strings.EqualFold(typeName, UserTypeName) && c.store != nil {
		return NewUser(c.store), nil
	}
	return nil, nil
}

const maxCallDepth = 16

// dosToANSI maps the DOS palette order to the ANSI one
var dosToANSI = [8]int{0, 4, 2, 6, 1, 5, 3, 7}

// renderCodes replaces @Xbf colour codes and @CLS@. With colour off they are removed.
func renderCodes(text string, color bool) string {
	if !strings.Contains(text, "@") {
		return text
	}
	var b strings.Builder
	for i := 0; i < len(text); i++ {
		if text[i] != '@' {
			b.WriteByte(text[i])
			continue
		}
		rest := text[i:]
		switch {
		case len(rest) >= 4 && (rest[1] == 'X' || rest[1] == 'x') && isHexDigit(rest[2]) && isHexDigit(rest[3]):
			if color {
				b.WriteString(ansiColor(hexValue(rest[2]), hexValue(rest[3])))
			}
			i += 3
		case strings.HasPrefix(strings.ToUpper(rest), "@CLS@"):
			if color {
				b.WriteString("\x1b[2J\x1b[H")
			}
			i += 4
		default:
			b.WriteByte('@')
		}
	}
	return b.String()
}

func ansiColor(bg, fg int) string {
	bold := 22
	if fg >= 8 {
		bold = 1
	}
	return fmt.Sprintf("\x1b[0;%d;%d;%dm", bold, 30+dosToANSI[fg&7], 40+dosToANSI[bg&7])
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'A' && c <= 'F') || (c >= 'a' && c <= 'f')
}

func hexValue(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	}
	return int(c-'A') + 10
}
