package compiler

import (
	"github.com/tliron/commonlog"

	"github.com/funvibe/ppl/internal/ast"
	"github.com/funvibe/ppl/internal/config"
	"github.com/funvibe/ppl/internal/diagnostics"
	"github.com/funvibe/ppl/internal/executable"
	"github.com/funvibe/ppl/internal/token"
)

var log = commonlog.GetLogger("ppl.compiler")

// maxVariables is the largest variable table the PPE header can describe
const maxVariables = 0xFFFF

// Options control code generation
type Options struct {
	// Version is the runtime the executable targets
	Version int
	// Registry resolves members of host object types
	Registry *executable.TypeRegistry
	// UserVariables forces the U_* block into the table
	UserVariables bool
}

// pendingJump is a statement whose Target is a label still to be resolved
type pendingJump struct {
	stmt   *executable.Statement
	label  string
	tok    token.Token
	labels map[string]int
}

// Compiler turns a parsed program into a PPE executable
type Compiler struct {
	opts   Options
	exe    *executable.Executable
	errors []*diagnostics.DiagnosticError

	globals   map[string]*symbol
	callables map[string]*symbol
	constants map[constantKey]int

	// current is nil while compiling the main body
	current *routine
	// labels maps label names of the current body to byte offsets
	labels  map[string]int
	pending []pendingJump

	statements []*executable.Statement
	offset     int // in words
}

func New(opts Options) *Compiler {
	if opts.Version == 0 {
		opts.Version = config.DefaultLanguageVersion
	}
	return &Compiler{
		opts:      opts,
		exe:       executable.New(opts.Version),
		globals:   make(map[string]*symbol),
		callables: make(map[string]*symbol),
		constants: make(map[constantKey]int),
	}
}

// Compile is a convenience wrapper around New and Compiler.Compile
func Compile(prog *ast.Program, opts Options) (*executable.Executable, []*diagnostics.DiagnosticError) {
	return New(opts).Compile(prog)
}

func (c *Compiler) addError(code diagnostics.ErrorCode, tok token.Token, args ...interface{}) {
	c.errors = append(c.errors, diagnostics.NewError(code, tok, args...))
}

// Compile generates the executable. The executable is returned even when
// errors were reported so tools can inspect partial output.
func (c *Compiler) Compile(prog *ast.Program) (*executable.Executable, []*diagnostics.DiagnosticError) {
	low := &lowerer{}
	mainBody := low.lowerAll(prog.Statements())
	c.errors = append(c.errors, low.errors...)

	c.declareCallables(prog)
	if decls := prog.Declarations(); len(decls) > 0 && c.opts.Version < config.Version300 {
		c.addError(diagnostics.ErrC005, decls[0].GetToken())
	}

	if c.wantsUserVariables(prog) {
		c.declareUserVariables()
	}
	c.declareGlobals(mainBody)

	var routines []*routine
	for _, d := range prog.Declarations() {
		var (
			name *ast.Identifier
			body []ast.Statement
		)
		switch d := d.(type) {
		case *ast.FunctionImplementation:
			name, body = d.Name, d.Statements
		case *ast.ProcedureImplementation:
			name, body = d.Name, d.Statements
		default:
			continue
		}
		s := c.callables[key(name.Value)]
		if s.id != 0 {
			// duplicate implementation, already reported
			continue
		}
		fl := &lowerer{labels: low.labels}
		if s.kind == symFunction {
			fl.function = s.name
		}
		lowered := fl.lowerAll(body)
		low.labels = fl.labels
		c.errors = append(c.errors, fl.errors...)
		routines = append(routines, c.declareRoutine(s, lowered))
	}

	c.compileBody(mainBody)
	if n := len(c.statements); n == 0 || c.statements[n-1].Op != executable.OP_END {
		c.emit(&executable.Statement{Op: executable.OP_END}, token.Token{})
	}

	for _, r := range routines {
		c.current = r
		r.sym.info.StartOffset = uint16(c.offset * 2)
		c.compileBody(r.statements)
		end := executable.OP_FPCLR
		if r.function {
			end = executable.OP_FEND
		}
		c.emit(&executable.Statement{Op: end}, token.Token{})
	}
	c.current = nil

	c.resolveJumps()
	if n := c.exe.Variables.Len(); n > maxVariables {
		c.addError(diagnostics.ErrC007, token.Token{}, n)
	}
	c.assemble()

	log.Debugf("compiled %d statements, %d variables, %d words", len(c.statements), c.exe.Variables.Len(), len(c.exe.Script))
	return c.exe, c.errors
}

// compileBody compiles the statements of one body with its own label namespace
func (c *Compiler) compileBody(stmts []ast.Statement) {
	c.labels = make(map[string]int)
	for _, s := range stmts {
		c.compileStatement(s)
	}
}

// emit appends a statement and advances the word offset by its encoded size
func (c *Compiler) emit(s *executable.Statement, tok token.Token) {
	words, err := executable.EncodeStatement(s)
	if err != nil {
		c.addError(diagnostics.ErrC011, tok, err.Error())
		return
	}
	s.Span = executable.Span{Start: c.offset, End: c.offset + len(words)}
	c.offset += len(words)
	c.statements = append(c.statements, s)
}

func (c *Compiler) resolveJumps() {
	for _, p := range c.pending {
		target, ok := p.labels[key(p.label)]
		if !ok {
			c.addError(diagnostics.ErrC003, p.tok, p.label)
			continue
		}
		p.stmt.Target = target
	}
	c.pending = nil
}

func (c *Compiler) assemble() {
	script := make([]int16, 0, c.offset)
	for _, s := range c.statements {
		words, err := executable.EncodeStatement(s)
		if err != nil {
			c.addError(diagnostics.ErrC011, token.Token{}, err.Error())
			continue
		}
		script = append(script, words...)
	}
	c.exe.Script = script
}
