package executable

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"
	"gopkg.in/yaml.v3"
)

// DisasmOptions controls Disassemble output
type DisasmOptions struct {
	// Color enables ANSI colours
	Color bool
	// Variables prints the variable table before the code
	Variables bool
	// YAML prints the variable table as a YAML document instead of a listing
	YAML bool
}

// DefaultDisasmOptions enables colour when w is a terminal
func DefaultDisasmOptions(w io.Writer) DisasmOptions {
	opts := DisasmOptions{}
	if f, ok := w.(*os.File); ok {
		opts.Color = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return opts
}

const (
	ansiReset  = "\x1b[0m"
	ansiRed    = "\x1b[1;31m"
	ansiYellow = "\x1b[33m"
	ansiCyan   = "\x1b[36m"
	ansiGray   = "\x1b[90m"
)

type disassembler struct {
	w    *bufio.Writer
	exe  *Executable
	opts DisasmOptions
}

// Disassemble writes a listing of exe: per statement its byte offset, the raw
// words and the decoded instruction with names from the variable table.
func Disassemble(w io.Writer, exe *Executable, opts DisasmOptions) error {
	d := &disassembler{w: bufio.NewWriter(w), exe: exe, opts: opts}
	fmt.Fprintf(d.w, "; PPE %d.%02d, %d variables, %d code bytes\n", exe.Version/100, exe.Version%100, exe.Variables.Len(), len(exe.Script)*2)

	if opts.Variables {
		if opts.YAML {
			if err := d.variablesYAML(); err != nil {
				return err
			}
		} else {
			d.variables()
		}
		d.w.WriteString("\n")
	}

	script := DecodeScript(exe)
	errs := script.Errors
	for _, stmt := range script.Statements {
		for len(errs) > 0 && errs[0].Span.Start < stmt.Span.Start {
			d.decodeError(errs[0])
			errs = errs[1:]
		}
		d.statement(stmt)
	}
	for _, e := range errs {
		d.decodeError(e)
	}
	return d.w.Flush()
}

func (d *disassembler) color(code, s string) string {
	if !d.opts.Color {
		return s
	}
	return code + s + ansiReset
}

func (d *disassembler) words(span Span) string {
	var sb strings.Builder
	for i := span.Start; i < span.End && i < len(d.exe.Script); i++ {
		if i > span.Start {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%04X", uint16(d.exe.Script[i]))
	}
	return sb.String()
}

func (d *disassembler) statement(s *Statement) {
	fmt.Fprintf(d.w, "%s %s\n", d.color(ansiCyan, fmt.Sprintf("%05X:", s.Offset())), d.color(ansiGray, "["+d.words(s.Span)+"]"))
	fmt.Fprintf(d.w, "       %s\n", d.render(s))
}

func (d *disassembler) decodeError(e *DecodeError) {
	fmt.Fprintf(d.w, "%s %s [%05X..%05X] %s\n", d.color(ansiRed, "ERROR"), e.Kind, e.Span.Start*2, e.Span.End*2, e.Detail)
	fmt.Fprintf(d.w, "       [%s]\n", d.words(e.Span))
}

func (d *disassembler) render(s *Statement) string {
	mnemonic := d.color(ansiYellow, s.Op.String())
	switch s.Op {
	case OP_END, OP_RETURN, OP_FEND, OP_FPCLR, OP_STOP:
		return mnemonic
	case OP_GOTO, OP_GOSUB:
		return fmt.Sprintf("%s %05X", mnemonic, s.Target)
	case OP_IFNOT:
		return fmt.Sprintf("%s %s GOTO %05X", mnemonic, d.expr(s.Args[0]), s.Target)
	case OP_PCALL:
		return fmt.Sprintf("%s %s(%s)", mnemonic, d.exe.Variables.Name(s.Target), d.list(s.Args))
	case OP_LET:
		return fmt.Sprintf("%s %s = %s", mnemonic, d.expr(s.Args[0]), d.expr(s.Args[1]))
	}
	if len(s.Args) == 0 {
		return mnemonic
	}
	return mnemonic + " " + d.list(s.Args)
}

func (d *disassembler) list(args []PPEExpr) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = d.expr(a)
	}
	return strings.Join(parts, ", ")
}

var operatorSymbols = map[FuncOpCode]string{
	FN_UPLUS: "+", FN_UMINUS: "-", FN_NOT: "!",
	FN_EXP: "^", FN_TIMES: "*", FN_DIVIDE: "/", FN_MOD: "%",
	FN_PLUS: "+", FN_MINUS: "-",
	FN_EQ: "=", FN_NE: "<>", FN_LT: "<", FN_LE: "<=", FN_GT: ">", FN_GE: ">=",
	FN_AND: "&", FN_OR: "|",
}

func (d *disassembler) expr(e PPEExpr) string {
	switch e := e.(type) {
	case *ValueExpr:
		return d.value(e.ID)
	case *DimExpr:
		return fmt.Sprintf("%s(%s)", d.exe.Variables.Name(e.ID), d.list(e.Dims))
	case *UnaryExpr:
		return operatorSymbols[e.Op] + d.expr(e.Expr)
	case *BinaryExpr:
		return fmt.Sprintf("(%s %s %s)", d.expr(e.Left), operatorSymbols[e.Op], d.expr(e.Right))
	case *FunctionCallExpr:
		return fmt.Sprintf("%s(%s)", d.exe.Variables.Name(e.ID), d.list(e.Args))
	case *PredefinedCallExpr:
		return fmt.Sprintf("%s(%s)", e.Func, d.list(e.Args))
	case *MemberExpr:
		return fmt.Sprintf("%s.%s", d.expr(e.Expr), d.member(e.ID))
	case *MemberCallExpr:
		return fmt.Sprintf("%s.%s(%s)", d.expr(e.Expr), d.member(e.ID), d.list(e.Args))
	}
	return "?"
}

func (d *disassembler) member(id int) string {
	if id > 0 {
		return d.exe.Variables.Name(id)
	}
	return "#" + strconv.Itoa(id)
}

// value renders constants as literals and variables by name
func (d *disassembler) value(id int) string {
	entry, ok := d.exe.Variables.Entry(id)
	if !ok || entry.Role != RoleConstant || entry.Value.IsArray() {
		return d.exe.Variables.Name(id)
	}
	return literal(entry.Value)
}

func literal(v Value) string {
	switch {
	case v.Type.IsString():
		return strconv.Quote(v.AsString())
	case v.Type == TypeBoolean:
		if v.AsBool() {
			return "TRUE"
		}
		return "FALSE"
	}
	return v.AsString()
}

func (d *disassembler) variables() {
	for _, e := range d.exe.Variables.Entries() {
		line := fmt.Sprintf("%04X %-12s %-14s %s", e.Header.ID, e.Name, e.Role, e.Header)
		switch {
		case e.Function != nil:
			line += " " + e.Function.String()
		case !e.Value.IsArray() && e.Role == RoleConstant:
			line += " = " + literal(e.Value)
		}
		fmt.Fprintln(d.w, line)
	}
}

type yamlEntry struct {
	ID       int      `yaml:"id"`
	Name     string   `yaml:"name,omitempty"`
	Role     string   `yaml:"role"`
	Type     string   `yaml:"type"`
	Flags    uint8    `yaml:"flags,omitempty"`
	Dims     []int    `yaml:"dims,omitempty,flow"`
	Value    string   `yaml:"value,omitempty"`
	Function *yamlFun `yaml:"function,omitempty"`
}

type yamlFun struct {
	Parameters  uint8  `yaml:"parameters"`
	Locals      uint8  `yaml:"locals"`
	StartOffset uint16 `yaml:"start"`
	FirstVarID  int16  `yaml:"first"`
	ReturnVar   int16  `yaml:"return,omitempty"`
	PassFlags   uint16 `yaml:"pass_flags,omitempty"`
}

func (d *disassembler) variablesYAML() error {
	entries := d.exe.Variables.Entries()
	doc := make([]yamlEntry, 0, len(entries))
	for _, e := range entries {
		y := yamlEntry{
			ID:    e.Header.ID,
			Name:  e.Name,
			Role:  e.Role.String(),
			Type:  e.Header.Type.String(),
			Flags: e.Header.Flags,
		}
		if e.Header.Dim > 0 {
			y.Dims = []int{e.Header.Vector, e.Header.Matrix, e.Header.Cube}[:e.Header.Dim]
		}
		if f := e.Function; f != nil {
			y.Function = &yamlFun{f.Parameters, f.Locals, f.StartOffset, f.FirstVarID, f.ReturnVar, f.PassFlags}
		} else if e.Role == RoleConstant && !e.Value.IsArray() {
			y.Value = literal(e.Value)
		}
		doc = append(doc, y)
	}
	enc := yaml.NewEncoder(d.w)
	enc.SetIndent(2)
	if err := enc.Encode(map[string]any{"variables": doc}); err != nil {
		return err
	}
	return enc.Close()
}
