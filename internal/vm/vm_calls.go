package vm

import (
	"context"

	"github.com/funvibe/ppl/internal/config"
	"github.com/funvibe/ppl/internal/executable"
)

// frame returns the layout of a function or procedure entry
func (vm *VM) frame(id int) (*executable.TableEntry, error) {
	e, ok := vm.exe.Variables.Entry(id)
	if !ok || e.Function == nil {
		return nil, newError(KindFunctionCall, vm.exe.Variables.Name(id), errNotCallable)
	}
	return e, nil
}

func (vm *VM) isStatic(id int) bool {
	e, ok := vm.exe.Variables.Entry(id)
	return ok && e.Header.Flags&executable.FlagStatic != 0
}

// prepareCall saves the frame slots, binds the arguments to the parameters
// and resets the locals. Arguments of VAR parameters are remembered for the write back.
func (vm *VM) prepareCall(ctx context.Context, info *executable.FunctionInfo, args []executable.PPEExpr) error {
	if len(vm.returns) >= config.MaxCallDepth {
		return newError(KindFunctionCall, "", errCallDepth)
	}
	first := info.FirstLocalID()
	params := int(info.Parameters)
	if len(args) != params {
		return newError(KindFunctionCall, vm.exe.Variables.Name(int(info.FirstVarID)), executable.ErrArgumentCount)
	}

	for i := 0; i < info.FrameSize(); i++ {
		if !vm.isStatic(first + i) {
			vm.saved = append(vm.saved, vm.vars[first+i])
		}
	}

	// all arguments see the caller's parameter values
	values := make([]executable.Value, params)
	for i, a := range args {
		v, err := vm.eval(ctx, a)
		if err != nil {
			return err
		}
		values[i] = v
	}
	for i, v := range values {
		id := first + i
		vm.vars[id] = vm.convert(id, v)
		if info.IsByRef(i) {
			vm.writeBack = append(vm.writeBack, args[i])
		}
	}

	for i := params; i < info.FrameSize(); i++ {
		id := first + i
		if vm.isStatic(id) {
			continue
		}
		if e, ok := vm.exe.Variables.Entry(id); ok {
			vm.vars[id] = e.Header.NewValue()
		}
	}
	return nil
}

func (vm *VM) callProcedure(ctx context.Context, id int, args []executable.PPEExpr) error {
	e, err := vm.frame(id)
	if err != nil {
		return err
	}
	if err := vm.prepareCall(ctx, e.Function, args); err != nil {
		return err
	}
	vm.returns = append(vm.returns, returnAddress{pc: vm.pc, callID: id})
	return vm.jump(int(e.Function.StartOffset))
}

// callFunction runs a user function to its FEND in a nested loop and returns the result
func (vm *VM) callFunction(ctx context.Context, id int, args []executable.PPEExpr) (executable.Value, error) {
	e, err := vm.frame(id)
	if err != nil {
		return executable.Value{}, err
	}
	info := e.Function
	if err := vm.prepareCall(ctx, info, args); err != nil {
		return executable.Value{}, err
	}
	vm.returns = append(vm.returns, returnAddress{pc: vm.pc, callID: id})
	if err := vm.jump(int(info.StartOffset)); err != nil {
		return executable.Value{}, err
	}

	err = vm.run(ctx)
	vm.fpclear = false
	if err != nil {
		return executable.Value{}, err
	}
	return vm.vars[info.ReturnVar], nil
}

// ret pops the return stack. Leaving a call restores the caller's frame
// and writes VAR parameters back to the argument variables.
func (vm *VM) ret(ctx context.Context) error {
	n := len(vm.returns)
	if n == 0 {
		vm.running = false
		return nil
	}
	addr := vm.returns[n-1]
	vm.returns = vm.returns[:n-1]
	vm.pc = addr.pc
	if addr.callID == 0 {
		return nil
	}

	e, err := vm.frame(addr.callID)
	if err != nil {
		return err
	}
	info := e.Function
	first := info.FirstLocalID()
	params := int(info.Parameters)
	isFunction := e.Header.Type == executable.TypeFunction

	var passed []executable.Value
	for i := 0; i < params; i++ {
		if info.IsByRef(i) {
			passed = append(passed, vm.vars[first+i])
		}
	}

	for i := info.FrameSize() - 1; i >= 0; i-- {
		id := first + i
		if vm.isStatic(id) {
			continue
		}
		if len(vm.saved) == 0 {
			return newError(KindStackUnderflow, e.Name, nil)
		}
		v := vm.saved[len(vm.saved)-1]
		vm.saved = vm.saved[:len(vm.saved)-1]
		if isFunction && id == int(info.ReturnVar) {
			continue
		}
		vm.vars[id] = v
	}

	for i := params - 1; i >= 0; i-- {
		if !info.IsByRef(i) {
			continue
		}
		if len(passed) == 0 {
			return newError(KindPassValueStackEmpty, e.Name, nil)
		}
		v := passed[len(passed)-1]
		passed = passed[:len(passed)-1]
		if len(vm.writeBack) == 0 {
			return newError(KindWriteBackStackEmpty, e.Name, nil)
		}
		target := vm.writeBack[len(vm.writeBack)-1]
		vm.writeBack = vm.writeBack[:len(vm.writeBack)-1]
		if err := vm.assign(ctx, target, v); err != nil {
			return err
		}
	}

	if isFunction {
		vm.fpclear = true
	}
	return nil
}
