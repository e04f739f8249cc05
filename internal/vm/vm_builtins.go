package vm

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/funvibe/ppl/internal/config"
	"github.com/funvibe/ppl/internal/executable"
)

// args evaluates statement operands on demand. The first evaluation error is
// kept in err and every later accessor returns a zero value.
type args struct {
	vm   *VM
	ctx  context.Context
	list []executable.PPEExpr
	vals []executable.Value
	done []bool
	err  error
}

func newArgs(vm *VM, ctx context.Context, list []executable.PPEExpr) *args {
	return &args{vm: vm, ctx: ctx, list: list, vals: make([]executable.Value, len(list)), done: make([]bool, len(list))}
}

func (a *args) len() int { return len(a.list) }

func (a *args) value(i int) executable.Value {
	if a.err != nil || i >= len(a.list) {
		return executable.ZeroValue(executable.TypeInteger)
	}
	if !a.done[i] {
		v, err := a.vm.eval(a.ctx, a.list[i])
		if err != nil {
			a.err = err
			return executable.ZeroValue(executable.TypeInteger)
		}
		a.vals[i], a.done[i] = v, true
	}
	return a.vals[i]
}

func (a *args) num(i int) int32 { return a.value(i).AsInt() }

func (a *args) str(i int) string { return a.value(i).AsString() }

func (a *args) all() []executable.Value {
	res := make([]executable.Value, len(a.list))
	for i := range a.list {
		res[i] = a.value(i)
	}
	return res
}

// join concatenates the operands from i on
func (a *args) join(from int) string {
	var sb strings.Builder
	for i := from; i < len(a.list); i++ {
		sb.WriteString(a.str(i))
	}
	return sb.String()
}

// set writes v to operand i, which must be a variable
func (a *args) set(i int, v executable.Value) error {
	if a.err != nil {
		return a.err
	}
	if i >= len(a.list) {
		return newError(KindInternal, "", executable.ErrArgumentCount)
	}
	a.done[i] = false
	return a.vm.assign(a.ctx, a.list[i], v)
}

// display writes text to the host and tracks whether the cursor is at a line start
func (vm *VM) display(text string) error {
	if text == "" {
		return nil
	}
	if err := vm.host.Display(text); err != nil {
		return err
	}
	vm.lineStart = strings.HasSuffix(text, "\n")
	return nil
}

func (vm *VM) predefined(ctx context.Context, stmt *executable.Statement) error {
	a := newArgs(vm, ctx, stmt.Args)
	err := vm.statement(ctx, stmt.Op, a)
	if a.err != nil {
		return a.err
	}
	return err
}

func (vm *VM) statement(ctx context.Context, op executable.OpCode, a *args) error {
	if handled, err := vm.fileStatement(op, a); handled {
		return err
	}

	switch op {
	case executable.OP_CLS:
		err := vm.display("\x1b[2J\x1b[H")
		vm.lineStart = true
		return err
	case executable.OP_CLREOL:
		return vm.display("\x1b[K")
	case executable.OP_PRINT, executable.OP_SPRINT, executable.OP_MPRINT:
		return vm.display(a.join(0))
	case executable.OP_PRINTLN, executable.OP_SPRINTLN, executable.OP_MPRINTLN:
		return vm.display(a.join(0) + "\n")
	case executable.OP_NEWLINE:
		return vm.display("\n")
	case executable.OP_NEWLINES:
		return vm.display(strings.Repeat("\n", max(0, int(a.num(0)))))
	case executable.OP_FRESHLINE:
		if vm.lineStart {
			return nil
		}
		return vm.display("\n")
	case executable.OP_BEEP:
		return vm.display("\a")
	case executable.OP_DISPSTR:
		s := a.str(0)
		if name, ok := strings.CutPrefix(s, "%"); ok {
			return vm.displayFile(name)
		}
		return vm.display(s)
	case executable.OP_DISPFILE:
		return vm.displayFile(a.str(0))

	case executable.OP_INPUT:
		return vm.input(a, a.str(0), InputOptions{Length: 60, Valid: MaskAlnum})
	case executable.OP_INPUTSTR:
		return vm.input(a, a.str(0), InputOptions{Color: int(a.num(2)), Length: int(a.num(3)), Valid: a.str(4), Flags: int(a.num(5))})
	case executable.OP_INPUTTEXT:
		return vm.input(a, a.str(0), InputOptions{Color: int(a.num(2)), Length: int(a.num(3)), Valid: MaskAlnum})
	case executable.OP_PROMPTSTR:
		return vm.input(a, a.str(0), InputOptions{Length: int(a.num(2)), Valid: a.str(3), Flags: int(a.num(4))})
	case executable.OP_INPUTYN:
		return vm.input(a, a.str(0), InputOptions{Color: int(a.num(2)), Length: 1, Valid: MaskYesNo})
	case executable.OP_INPUTINT:
		return vm.input(a, a.str(0), InputOptions{Color: int(a.num(2)), Length: 11, Valid: MaskNum})
	case executable.OP_INPUTMONEY:
		return vm.input(a, a.str(0), InputOptions{Color: int(a.num(2)), Length: 13, Valid: MaskNum + "$."})
	case executable.OP_INPUTCC:
		return vm.input(a, a.str(0), InputOptions{Color: int(a.num(2)), Length: 16, Valid: "0123456789"})
	case executable.OP_INPUTDATE:
		return vm.input(a, a.str(0), InputOptions{Color: int(a.num(2)), Length: 8, Valid: "0123456789-/"})
	case executable.OP_INPUTTIME:
		return vm.input(a, a.str(0), InputOptions{Color: int(a.num(2)), Length: 8, Valid: "0123456789:"})

	case executable.OP_INC, executable.OP_DEC:
		delta := executable.FN_PLUS
		if op == executable.OP_DEC {
			delta = executable.FN_MINUS
		}
		v, err := executable.Binary(delta, a.value(0), executable.NewInt(1))
		if err != nil {
			return operatorError(delta, err)
		}
		return a.set(0, v)

	case executable.OP_TOKENIZE:
		vm.tokens = tokenize(a.str(0))
		return nil
	case executable.OP_GETTOKEN:
		return a.set(0, executable.NewString(vm.nextToken()))

	case executable.OP_PUSH:
		for i := 0; i < a.len(); i++ {
			if len(vm.pushPop) >= config.MaxPushStack {
				return newError(KindInternal, "PUSH", errPushStack)
			}
			vm.pushPop = append(vm.pushPop, a.value(i))
		}
		return nil
	case executable.OP_POP:
		for i := 0; i < a.len(); i++ {
			n := len(vm.pushPop)
			if n == 0 {
				return newError(KindPushPopStackEmpty, "", nil)
			}
			v := vm.pushPop[n-1]
			vm.pushPop = vm.pushPop[:n-1]
			if err := a.set(i, v); err != nil {
				return err
			}
		}
		return nil

	case executable.OP_CALL:
		name := a.str(0)
		if err := vm.host.RunScript(vm.host.ResolvePath(name)); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return newError(KindFileNotFound, name, err)
			}
			return newError(KindFunctionCall, "CALL "+name, err)
		}
		return nil

	case executable.OP_DELAY:
		// one tick is 1/18.2 of a second
		d := time.Duration(a.num(0)) * time.Second * 10 / 182
		if d <= 0 {
			return nil
		}
		t := time.NewTimer(d)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			return nil
		}

	case executable.OP_LOG:
		log.Noticef("run %s: %s", vm.runID, a.str(0))
		return nil
	case executable.OP_SHELL:
		log.Warningf("run %s: SHELL %q is not supported", vm.runID, a.str(2))
		return a.set(1, executable.NewInt(-1))
	case executable.OP_DBGLEVEL:
		vm.debugLevel = a.num(0)
		return nil
	case executable.OP_SETENV:
		name, value, _ := strings.Cut(a.str(0), "=")
		if vm.env == nil {
			vm.env = make(map[string]string)
		}
		vm.env[strings.ToUpper(strings.TrimSpace(name))] = value
		return nil

	case executable.OP_DELETE:
		vm.fileOp("DELETE", os.Remove(vm.host.ResolvePath(a.str(0))))
		return nil
	case executable.OP_RENAME:
		vm.fileOp("RENAME", os.Rename(vm.host.ResolvePath(a.str(0)), vm.host.ResolvePath(a.str(1))))
		return nil
	case executable.OP_COPY:
		vm.fileOp("COPY", copyFile(vm.host.ResolvePath(a.str(0)), vm.host.ResolvePath(a.str(1)), false))
		return nil
	case executable.OP_APPEND:
		vm.fileOp("APPEND", copyFile(vm.host.ResolvePath(a.str(0)), vm.host.ResolvePath(a.str(1)), true))
		return nil
	case executable.OP_MKDIR:
		vm.fileOp("MKDIR", os.MkdirAll(vm.host.ResolvePath(a.str(0)), 0o755))
		return nil
	case executable.OP_RMDIR:
		vm.fileOp("RMDIR", os.Remove(vm.host.ResolvePath(a.str(0))))
		return nil

	case executable.OP_REDIM:
		return vm.redim(a)
	case executable.OP_SORT:
		return vm.sort(a)

	case executable.OP_BITSET, executable.OP_BITCLEAR:
		v := a.value(0)
		bit := uint(a.num(1)) & 31
		n := v.AsInt()
		if op == executable.OP_BITSET {
			n |= 1 << bit
		} else {
			n &^= 1 << bit
		}
		return a.set(0, executable.NewInt(n))

	case executable.OP_GETUSER, executable.OP_PUTUSER:
		if vm.users == nil {
			break
		}
		if op == executable.OP_GETUSER {
			return vm.getUser()
		}
		return vm.putUser()
	}
	return vm.extendedStatement(op, a)
}

func (vm *VM) extendedStatement(op executable.OpCode, a *args) error {
	if vm.ext == nil {
		return newError(KindFunctionCall, op.String(), ErrUnsupported)
	}
	vals := a.all()
	if a.err != nil {
		return a.err
	}
	if err := vm.ext.CallStatement(op, vals); err != nil {
		return newError(KindFunctionCall, op.String(), err)
	}
	return nil
}

// fileOp logs failed file system statements; the script continues
func (vm *VM) fileOp(name string, err error) {
	if err != nil {
		log.Infof("run %s: %s: %s", vm.runID, name, err)
	}
}

func copyFile(from, to string, appendTo bool) error {
	src, err := os.Open(from)
	if err != nil {
		return err
	}
	defer src.Close()
	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if appendTo {
		flags = os.O_WRONLY | os.O_CREATE | os.O_APPEND
	}
	dst, err := os.OpenFile(to, flags, 0o644)
	if err != nil {
		return err
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return err
	}
	return dst.Close()
}

func (vm *VM) displayFile(name string) error {
	path := vm.host.ResolvePath(name)
	data, err := os.ReadFile(path)
	if err != nil {
		log.Infof("run %s: display %s: %s", vm.runID, path, err)
		return nil
	}
	return vm.display(decodeText(data))
}

// input asks the host for a value and stores it in operand 1. The current
// value of the variable is offered as the default.
func (vm *VM) input(a *args, prompt string, opts InputOptions) error {
	opts.Default = a.str(1)
	if a.err != nil {
		return a.err
	}
	answer, err := vm.host.Input(prompt, opts)
	if err != nil {
		return err
	}
	if opts.Valid == MaskYesNo {
		answer = strings.ToUpper(answer)
	}
	vm.lineStart = true
	return a.set(1, executable.NewString(answer))
}

// tokenize splits a command line on spaces and semicolons
func tokenize(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool { return r == ' ' || r == ';' })
}

func (vm *VM) nextToken() string {
	if len(vm.tokens) == 0 {
		return ""
	}
	t := vm.tokens[0]
	vm.tokens = vm.tokens[1:]
	return t
}

func (vm *VM) redim(a *args) error {
	id, ok := executable.VariableID(a.list[0])
	if !ok {
		return newError(KindInternal, "REDIM", errNotWritable)
	}
	if err := vm.checkID(id); err != nil {
		return err
	}
	sizes := make([]int, 0, 3)
	for i := 1; i < a.len(); i++ {
		sizes = append(sizes, max(0, int(a.num(i))))
	}
	arr := vm.vars[id].Array()
	if arr == nil {
		log.Warningf("run %s: REDIM of scalar %s", vm.runID, vm.exe.Variables.Name(id))
		return nil
	}
	arr.Redim(sizes...)
	return nil
}

// sort fills the integer array operand 1 with the indices that order array operand 0
func (vm *VM) sort(a *args) error {
	srcID, ok1 := executable.VariableID(a.list[0])
	dstID, ok2 := executable.VariableID(a.list[1])
	if !ok1 || !ok2 {
		return newError(KindInternal, "SORT", errNotWritable)
	}
	if err := vm.checkID(srcID); err != nil {
		return err
	}
	if err := vm.checkID(dstID); err != nil {
		return err
	}
	src, dst := vm.vars[srcID].Array(), vm.vars[dstID].Array()
	if src == nil || dst == nil {
		return newError(KindInvalidCoercion, "SORT", errors.New("SORT needs two arrays"))
	}
	if vm.vars[dstID].Type != executable.TypeInteger {
		return newError(KindInvalidCoercion, "SORT", errors.New("index array must be INTEGER"))
	}

	order := make([]int, len(src.Elems))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(x, y int) int {
		return executable.Compare(src.Elems[x], src.Elems[y])
	})
	for i := range dst.Elems {
		if i < len(order) {
			dst.Elems[i] = executable.NewInt(int32(order[i]))
		}
	}
	return nil
}

func (vm *VM) getUser() error {
	fields, err := vm.users.GetUser()
	if err != nil {
		return newError(KindFunctionCall, "GETUSER", err)
	}
	for i, e := range vm.exe.Variables.Entries() {
		if e.Role != executable.RoleUserVariable {
			continue
		}
		v, ok := fields[e.Name]
		if !ok {
			continue
		}
		id := i + 1
		if arr := vm.vars[id].Array(); arr != nil && !v.IsArray() {
			arr.Set(v, 0)
			continue
		}
		vm.vars[id] = vm.convert(id, v)
	}
	return nil
}

func (vm *VM) putUser() error {
	fields := make(map[string]executable.Value)
	for i, e := range vm.exe.Variables.Entries() {
		if e.Role == executable.RoleUserVariable {
			fields[e.Name] = vm.vars[i+1].Clone()
		}
	}
	if err := vm.users.PutUser(fields); err != nil {
		return newError(KindFunctionCall, "PUTUSER", err)
	}
	return nil
}
