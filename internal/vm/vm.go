package vm

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/google/uuid"
	"github.com/tliron/commonlog"

	"github.com/funvibe/ppl/internal/config"
	"github.com/funvibe/ppl/internal/executable"
)

var log = commonlog.GetLogger("ppl.vm")

// returnAddress is an entry of the return stack. callID is 0 for GOSUB
// and the id of the function or procedure entry for calls.
type returnAddress struct {
	pc     int
	callID int
}

// VM executes one compiled script. A VM is not safe for concurrent use;
// run independent scripts on independent VMs.
type VM struct {
	exe      *executable.Executable
	script   *executable.Script
	host     Host
	ext      ExtendedHost
	users    UserStore
	registry *executable.TypeRegistry
	provider UserDataProvider
	objects  *objects
	runID    uuid.UUID
	rng      *rand.Rand

	// vars is indexed by variable id; vars[0] is unused
	vars []executable.Value

	pc      int
	running bool
	stopped bool
	// fpclear ends the nested loop of a function call once FEND ran
	fpclear bool

	returns   []returnAddress
	saved     []executable.Value
	writeBack []executable.PPEExpr
	pushPop   []executable.Value

	files       [config.MaxFileChannels]*channel
	fdIn, fdOut int
	tokens      []string
	lineStart   bool
	debugLevel  int32
	env         map[string]string
}

// Option configures a VM
type Option func(*VM)

// WithRegistry sets the host object types member accesses are resolved against
func WithRegistry(r *executable.TypeRegistry) Option {
	return func(vm *VM) { vm.registry = r }
}

// WithUserDataProvider sets where variables of registered types get their objects from.
// Without it a host implementing UserDataProvider is used.
func WithUserDataProvider(p UserDataProvider) Option {
	return func(vm *VM) { vm.provider = p }
}

// WithSeed makes RANDOM deterministic
func WithSeed(seed uint64) Option {
	return func(vm *VM) { vm.rng = rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15)) }
}

// New prepares exe for execution. The executable itself is never modified,
// every run works on its own copy of the variable values.
func New(exe *executable.Executable, host Host, opts ...Option) *VM {
	vm := &VM{
		exe:       exe,
		script:    executable.DecodeScript(exe),
		host:      host,
		objects:   newObjects(),
		runID:     uuid.New(),
		lineStart: true,
	}
	if ext, ok := host.(ExtendedHost); ok {
		vm.ext = ext
	}
	if users, ok := host.(UserStore); ok {
		vm.users = users
	}
	if p, ok := host.(UserDataProvider); ok {
		vm.provider = p
	}
	for _, opt := range opts {
		opt(vm)
	}
	if vm.rng == nil {
		vm.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	entries := exe.Variables.Entries()
	vm.vars = make([]executable.Value, len(entries)+1)
	for i := range entries {
		vm.vars[i+1] = entries[i].Value.Clone()
	}
	return vm
}

// RunID identifies this VM in log output
func (vm *VM) RunID() string { return vm.runID.String() }

// Value returns the current value of a variable
func (vm *VM) Value(id int) (executable.Value, bool) {
	if id <= 0 || id >= len(vm.vars) {
		return executable.Value{}, false
	}
	return vm.vars[id], true
}

// Run executes the script from the start until END, STOP, the end of the
// code or a fatal error. STOP yields ErrStopped, cancellation yields ctx.Err().
func (vm *VM) Run(ctx context.Context) error {
	if len(vm.script.Errors) > 0 {
		return newError(KindInternal, "", vm.script.Errors[0])
	}
	if err := vm.bindObjects(); err != nil {
		return err
	}
	defer vm.closeFiles()

	log.Debugf("run %s: %d statements", vm.runID, len(vm.script.Statements))
	vm.pc = 0
	vm.running = true
	if err := vm.run(ctx); err != nil {
		return err
	}
	if vm.stopped {
		return ErrStopped
	}
	return nil
}

// run is the interpreter loop. Function calls re-enter it and leave once
// their FEND sets fpclear.
func (vm *VM) run(ctx context.Context) error {
	stmts := vm.script.Statements
	for vm.running && !vm.fpclear && vm.pc < len(stmts) {
		if err := ctx.Err(); err != nil {
			return err
		}
		stmt := stmts[vm.pc]
		vm.pc++
		if err := vm.execute(ctx, stmt); err != nil {
			return vm.wrap(stmt, err)
		}
	}
	return nil
}

// wrap attaches the statement position to errors that are not already runtime errors
func (vm *VM) wrap(stmt *executable.Statement, err error) error {
	var e *Error
	if errors.As(err, &e) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return newError(KindInternal, fmt.Sprintf("%s at %04X", stmt.Op, stmt.Offset()), err)
}

// jump moves the cursor to the statement starting at a label byte offset
func (vm *VM) jump(offset int) error {
	i, ok := vm.script.StatementAt(offset)
	if !ok {
		return newError(KindLabelNotFound, fmt.Sprintf("%04X", offset), nil)
	}
	vm.pc = i
	return nil
}

// bindObjects gives every variable of a registered type its host object
func (vm *VM) bindObjects() error {
	if vm.provider == nil {
		return nil
	}
	for id := 1; id < len(vm.vars); id++ {
		v := vm.vars[id]
		if !v.Type.IsUserData() || v.IsArray() {
			continue
		}
		ut, ok := vm.registry.ByType(v.Type)
		if !ok {
			continue
		}
		obj, err := vm.provider.Object(ut.Name)
		if err != nil {
			return newError(KindNoObjectFound, ut.Name, err)
		}
		if obj == nil {
			continue
		}
		vm.vars[id] = executable.NewUserData(v.Type, vm.objects.add(obj))
	}
	return nil
}
