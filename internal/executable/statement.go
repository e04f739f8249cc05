package executable

import (
	"errors"
	"fmt"
)

// Span is a half-open range of word offsets in the code stream
type Span struct {
	Start, End int
}

// Statement is one decoded instruction
type Statement struct {
	Op OpCode
	// Target is the label byte offset for GOTO, GOSUB and IFNOT and the procedure id for PCALL
	Target int
	Args   []PPEExpr
	Span   Span
}

// Offset is the byte offset of the statement, the unit labels are expressed in
func (s *Statement) Offset() int { return s.Span.Start * 2 }

type DecodeErrorKind int

const (
	InvalidStatement DecodeErrorKind = iota
	InvalidExpression
	UnexpectedEnd
)

func (k DecodeErrorKind) String() string {
	switch k {
	case InvalidStatement:
		return "InvalidStatement"
	case InvalidExpression:
		return "InvalidExpression"
	case UnexpectedEnd:
		return "UnexpectedEnd"
	}
	return fmt.Sprintf("DecodeErrorKind(%d)", int(k))
}

// DecodeError reports code that could not be decoded
type DecodeError struct {
	Kind   DecodeErrorKind
	Span   Span
	Detail string
}

func (e *DecodeError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%s [%04X..%04X]", e.Kind, e.Span.Start, e.Span.End)
	}
	return fmt.Sprintf("%s [%04X..%04X]: %s", e.Kind, e.Span.Start, e.Span.End, e.Detail)
}

var (
	ErrNotAVariable   = errors.New("argument must be a variable")
	ErrUnknownOpcode  = errors.New("unknown opcode")
	ErrArgumentCount  = errors.New("wrong number of arguments")
	ErrTooManyIndices = errors.New("more than three array indices")
)

// EncodeStatement encodes a statement. The result decodes back to the same statement.
func EncodeStatement(s *Statement) ([]int16, error) {
	return appendStatement(nil, s)
}

func appendStatement(w []int16, s *Statement) ([]int16, error) {
	w = append(w, int16(s.Op))
	switch s.Op {
	case OP_END, OP_RETURN, OP_FEND, OP_FPCLR, OP_STOP:
		return w, nil
	case OP_GOTO, OP_GOSUB:
		return append(w, int16(s.Target)), nil
	case OP_IFNOT:
		if len(s.Args) != 1 {
			return nil, fmt.Errorf("%w: IF expects a condition", ErrArgumentCount)
		}
		w = append(s.Args[0].appendTo(w), 0)
		return append(w, int16(s.Target)), nil
	case OP_PCALL:
		w = append(w, int16(s.Target), 0)
		for _, a := range s.Args {
			w = append(a.appendTo(w), 0)
		}
		return w, nil
	}

	def := s.Op.Definition()
	if def == nil || def.Sig == SigInvalid {
		return nil, fmt.Errorf("%w: %d", ErrUnknownOpcode, int(s.Op))
	}
	switch def.Sig {
	case SigArgumentsWithVariable:
		if len(s.Args) != def.Args {
			return nil, fmt.Errorf("%w: %s expects %d, got %d", ErrArgumentCount, def.Name, def.Args, len(s.Args))
		}
		for i, a := range s.Args {
			if i+1 == def.VarArg {
				var err error
				if w, err = appendVariable(w, a); err != nil {
					return nil, err
				}
				continue
			}
			w = append(a.appendTo(w), 0)
		}
	case SigVariableArguments:
		w = append(w, int16(len(s.Args)))
		for i, a := range s.Args {
			if i+1 == def.VarArg {
				id, err := bareID(a)
				if err != nil {
					return nil, err
				}
				w = append(w, id)
				continue
			}
			w = append(a.appendTo(w), 0)
		}
	case SigSort:
		if len(s.Args) != 2 {
			return nil, fmt.Errorf("%w: SORT expects 2", ErrArgumentCount)
		}
		for _, a := range s.Args {
			id, err := bareID(a)
			if err != nil {
				return nil, err
			}
			w = append(w, id)
		}
	case SigVarSeg, SigPop:
		if def.Sig == SigVarSeg && len(s.Args) != 2 {
			return nil, fmt.Errorf("%w: %s expects 2", ErrArgumentCount, def.Name)
		}
		if def.Sig == SigPop {
			w = append(w, int16(len(s.Args)))
		}
		for _, a := range s.Args {
			var err error
			if w, err = appendVariable(w, a); err != nil {
				return nil, err
			}
		}
	case SigDcreate:
		if len(s.Args) != 4 {
			return nil, fmt.Errorf("%w: DCREATE expects 4", ErrArgumentCount)
		}
		for _, a := range s.Args[:3] {
			w = append(a.appendTo(w), 0)
		}
		id, err := bareID(s.Args[3])
		if err != nil {
			return nil, err
		}
		w = append(w, id)
	case SigDlockg:
		if len(s.Args) != 3 {
			return nil, fmt.Errorf("%w: DLOCKG expects 3", ErrArgumentCount)
		}
		w = append(s.Args[0].appendTo(w), 0)
		id, err := bareID(s.Args[1])
		if err != nil {
			return nil, err
		}
		w = append(w, id)
		w = append(s.Args[2].appendTo(w), 0)
	}
	return w, nil
}

func appendVariable(w []int16, e PPEExpr) ([]int16, error) {
	switch e := e.(type) {
	case *ValueExpr:
		return e.appendTo(w), nil
	case *DimExpr:
		if len(e.Dims) > 3 {
			return nil, ErrTooManyIndices
		}
		return e.appendTo(w), nil
	}
	return nil, ErrNotAVariable
}

func bareID(e PPEExpr) (int16, error) {
	if v, ok := e.(*ValueExpr); ok {
		return int16(v.ID), nil
	}
	return 0, ErrNotAVariable
}

// Script is the decoded code of an executable
type Script struct {
	Statements []*Statement
	Errors     []*DecodeError
	labels     map[int]int
}

// StatementAt returns the index of the statement starting at a label byte offset
func (s *Script) StatementAt(offset int) (int, bool) {
	if s.labels == nil {
		s.labels = make(map[int]int, len(s.Statements))
		for i, stmt := range s.Statements {
			s.labels[stmt.Offset()] = i
		}
	}
	i, ok := s.labels[offset]
	return i, ok
}

// DecodeScript decodes the whole code stream. Undecodable words are recorded
// as errors and decoding resumes after them.
func DecodeScript(exe *Executable) *Script {
	script := &Script{}
	for offset := 0; offset < len(exe.Script); {
		stmt, next, err := DecodeStatement(exe, offset)
		if err != nil {
			var de *DecodeError
			if errors.As(err, &de) {
				script.Errors = append(script.Errors, de)
			}
			offset = resync(exe, offset+1)
			continue
		}
		if stmt == nil {
			// a zero opcode ends the script; anything after it is data or padding
			break
		}
		script.Statements = append(script.Statements, stmt)
		offset = next
	}
	return script
}

// resync skips the operand words of a broken statement. It returns the first
// offset from which decoding runs on without meeting a zero word before the
// end of the script, or failing that the first offset holding any statement.
func resync(exe *Executable, offset int) int {
	fallback := -1
	for ; offset < len(exe.Script); offset++ {
		if exe.Script[offset] == 0 {
			continue
		}
		if decodesOn(exe, offset) {
			return offset
		}
		if fallback < 0 {
			if stmt, _, err := DecodeStatement(exe, offset); err == nil && stmt != nil {
				fallback = offset
			}
		}
	}
	if fallback >= 0 {
		return fallback
	}
	return offset
}

// decodesOn reports whether the statements from offset decode up to the end of
// the script or up to a later error. A zero word followed by more code fails.
func decodesOn(exe *Executable, offset int) bool {
	start := offset
	for offset < len(exe.Script) {
		stmt, next, err := DecodeStatement(exe, offset)
		if err != nil {
			return offset > start
		}
		if stmt == nil {
			return offset > start && allZero(exe.Script[offset:])
		}
		offset = next
	}
	return true
}

func allZero(words []int16) bool {
	for _, w := range words {
		if w != 0 {
			return false
		}
	}
	return true
}

// DecodeStatement decodes the statement at word offset. It returns a nil statement
// at the end of the script and a *DecodeError for malformed code.
func DecodeStatement(exe *Executable, offset int) (*Statement, int, error) {
	d := &decoder{exe: exe, words: exe.Script, pos: offset, start: offset}
	stmt, err := d.statement()
	if err != nil {
		return nil, d.pos, err
	}
	if stmt != nil {
		stmt.Span = Span{offset, d.pos}
	}
	return stmt, d.pos, nil
}

type decoder struct {
	exe   *Executable
	words []int16
	pos   int
	start int
}

func (d *decoder) fail(kind DecodeErrorKind, format string, args ...any) *DecodeError {
	end := max(d.pos, d.start+1)
	return &DecodeError{Kind: kind, Span: Span{d.start, end}, Detail: fmt.Sprintf(format, args...)}
}

func (d *decoder) word() (int16, error) {
	if d.pos >= len(d.words) {
		return 0, d.fail(UnexpectedEnd, "code ends inside a statement")
	}
	w := d.words[d.pos]
	d.pos++
	return w, nil
}

func (d *decoder) statement() (*Statement, error) {
	if d.pos >= len(d.words) {
		return nil, nil
	}
	w, _ := d.word()
	if w == 0 {
		return nil, nil
	}
	op := OpCode(w)
	if op < 0 || op > LastOpCode {
		return nil, d.fail(InvalidStatement, "opcode %d", w)
	}
	stmt := &Statement{Op: op}

	switch op {
	case OP_END, OP_RETURN, OP_FEND, OP_FPCLR, OP_STOP:
		return stmt, nil
	case OP_GOTO, OP_GOSUB:
		label, err := d.word()
		if err != nil {
			return nil, err
		}
		stmt.Target = int(uint16(label))
		return stmt, nil
	case OP_IFNOT:
		cond, err := d.expression()
		if err != nil {
			return nil, err
		}
		label, err := d.word()
		if err != nil {
			return nil, err
		}
		stmt.Args = []PPEExpr{cond}
		stmt.Target = int(uint16(label))
		return stmt, nil
	case OP_PCALL:
		id, err := d.word()
		if err != nil {
			return nil, err
		}
		if _, err := d.word(); err != nil {
			return nil, err
		}
		entry, ok := d.exe.Variables.Entry(int(id))
		if !ok || entry.Header.Type != TypeProcedure || entry.Function == nil {
			return nil, d.fail(InvalidStatement, "PCALL of non procedure %d", id)
		}
		stmt.Target = int(id)
		for range int(entry.Function.Parameters) {
			arg, err := d.expression()
			if err != nil {
				return nil, err
			}
			stmt.Args = append(stmt.Args, arg)
		}
		return stmt, nil
	}

	def := op.Definition()
	if def == nil || def.Sig == SigInvalid {
		return nil, d.fail(InvalidStatement, "%s has no operand encoding", op)
	}
	var err error
	switch def.Sig {
	case SigArgumentsWithVariable:
		stmt.Args, err = d.arguments(def.Args, def.VarArg, d.variable)
	case SigVariableArguments:
		var count int16
		if count, err = d.word(); err != nil {
			return nil, err
		}
		if count < 0 {
			return nil, d.fail(InvalidStatement, "negative argument count %d", count)
		}
		stmt.Args, err = d.arguments(int(count), def.VarArg, d.bareID)
	case SigSort:
		stmt.Args, err = d.sequence(d.bareID, d.bareID)
	case SigVarSeg:
		stmt.Args, err = d.sequence(d.variable, d.variable)
	case SigDcreate:
		stmt.Args, err = d.sequence(d.expression, d.expression, d.expression, d.bareID)
	case SigDlockg:
		stmt.Args, err = d.sequence(d.expression, d.bareID, d.expression)
	case SigPop:
		var count int16
		if count, err = d.word(); err != nil {
			return nil, err
		}
		if count < 0 {
			return nil, d.fail(InvalidStatement, "negative argument count %d", count)
		}
		stmt.Args, err = d.arguments(int(count), 0, nil)
		if err == nil {
			for i := range stmt.Args {
				if _, ok := VariableID(stmt.Args[i]); !ok {
					return nil, d.fail(InvalidExpression, "POP target is not a variable")
				}
			}
		}
	}
	if err != nil {
		return nil, err
	}
	return stmt, nil
}

// arguments reads count expressions; argument varArg (1-based) is read with readVar
func (d *decoder) arguments(count, varArg int, readVar func() (PPEExpr, error)) ([]PPEExpr, error) {
	var args []PPEExpr
	for i := range count {
		read := d.expression
		if i+1 == varArg {
			read = readVar
		}
		if readVar == nil {
			read = d.variable
		}
		arg, err := read()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}
	return args, nil
}

func (d *decoder) sequence(readers ...func() (PPEExpr, error)) ([]PPEExpr, error) {
	args := make([]PPEExpr, 0, len(readers))
	for _, read := range readers {
		arg, err := read()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}
	return args, nil
}

func (d *decoder) bareID() (PPEExpr, error) {
	id, err := d.word()
	if err != nil {
		return nil, err
	}
	return &ValueExpr{ID: int(id)}, nil
}

// variable reads an id followed by a dimension count and that many index expressions
func (d *decoder) variable() (PPEExpr, error) {
	id, err := d.word()
	if err != nil {
		return nil, err
	}
	dim, err := d.word()
	if err != nil {
		return nil, err
	}
	if dim < 0 || dim > 3 {
		return nil, d.fail(InvalidExpression, "variable %d with %d dimensions", id, dim)
	}
	if dim == 0 {
		return &ValueExpr{ID: int(id)}, nil
	}
	dims := make([]PPEExpr, 0, dim)
	for range int(dim) {
		e, err := d.expression()
		if err != nil {
			return nil, err
		}
		dims = append(dims, e)
	}
	return &DimExpr{ID: int(id), Dims: dims}, nil
}

// expression decodes one RPN expression up to its zero or closing parenthesis word
func (d *decoder) expression() (PPEExpr, error) {
	var stack []PPEExpr
	pop := func() (PPEExpr, bool) {
		if len(stack) == 0 {
			return nil, false
		}
		e := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return e, true
	}

loop:
	for {
		if d.pos >= len(d.words) {
			return nil, d.fail(UnexpectedEnd, "code ends inside an expression")
		}
		w := d.words[d.pos]
		switch {
		case w == 0:
			d.pos++
			break loop
		case w > 0:
			entry, ok := d.exe.Variables.Entry(int(w))
			if !ok {
				return nil, d.fail(InvalidExpression, "no variable table entry for %d", w)
			}
			if entry.Header.Type == TypeFunction && entry.Function != nil {
				d.pos += 2
				call := &FunctionCallExpr{ID: int(w)}
				for range int(entry.Function.Parameters) {
					arg, err := d.expression()
					if err != nil {
						return nil, err
					}
					call.Args = append(call.Args, arg)
				}
				stack = append(stack, call)
				continue
			}
			v, err := d.variable()
			if err != nil {
				return nil, err
			}
			stack = append(stack, v)
		default:
			op := FuncOpCode(-w)
			d.pos++
			switch op {
			case FN_CPAR:
				break loop
			case FN_MEMBERREFERENCE:
				target, ok := pop()
				if !ok {
					return nil, d.fail(InvalidExpression, "member reference without a target")
				}
				id, err := d.word()
				if err != nil {
					return nil, err
				}
				stack = append(stack, &MemberExpr{Expr: target, ID: int(id)})
				continue
			case FN_MEMBERCALL:
				argc, err := d.word()
				if err != nil {
					return nil, err
				}
				id, err := d.word()
				if err != nil {
					return nil, err
				}
				if argc < 0 || int(argc)+1 > len(stack) {
					return nil, d.fail(InvalidExpression, "member call with %d arguments on a stack of %d", argc, len(stack))
				}
				args := append([]PPEExpr(nil), stack[len(stack)-int(argc):]...)
				stack = stack[:len(stack)-int(argc)]
				target, _ := pop()
				stack = append(stack, &MemberCallExpr{Expr: target, Args: args, ID: int(id)})
				continue
			}

			def := op.Definition()
			if def == nil {
				return nil, d.fail(InvalidExpression, "unknown function %d", -int(w))
			}
			switch def.Sig {
			case FuncUnaryOp:
				e, ok := pop()
				if !ok {
					return nil, d.fail(InvalidExpression, "%s without operand", op)
				}
				stack = append(stack, &UnaryExpr{Op: op, Expr: e})
			case FuncBinaryOp:
				right, ok := pop()
				if !ok {
					return nil, d.fail(InvalidExpression, "%s without operands", op)
				}
				left, ok := pop()
				if !ok {
					return nil, d.fail(InvalidExpression, "%s with one operand", op)
				}
				stack = append(stack, &BinaryExpr{Op: op, Left: left, Right: right})
			case FuncFixedParameters:
				if len(stack) < def.Arity {
					return nil, d.fail(InvalidExpression, "%s expects %d arguments, got %d", op, def.Arity, len(stack))
				}
				var args []PPEExpr
				if def.Arity > 0 {
					args = append(args, stack[len(stack)-def.Arity:]...)
				}
				stack = stack[:len(stack)-def.Arity]
				stack = append(stack, &PredefinedCallExpr{Func: op, Args: args})
			default:
				stack = append(stack, &PredefinedCallExpr{Func: op})
			}
		}
	}

	e, ok := pop()
	if !ok {
		return nil, d.fail(InvalidExpression, "empty expression")
	}
	if len(stack) > 0 {
		log.Debugf("expression at %04X leaves %d values on the stack", d.start, len(stack))
	}
	return e, nil
}
