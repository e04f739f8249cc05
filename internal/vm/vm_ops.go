package vm

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/funvibe/ppl/internal/executable"
)

func (vm *VM) eval(ctx context.Context, e executable.PPEExpr) (executable.Value, error) {
	switch e := e.(type) {
	case *executable.ValueExpr:
		if err := vm.checkID(e.ID); err != nil {
			return executable.Value{}, err
		}
		return vm.vars[e.ID], nil

	case *executable.DimExpr:
		if err := vm.checkID(e.ID); err != nil {
			return executable.Value{}, err
		}
		idx, err := vm.indices(ctx, e.Dims)
		if err != nil {
			return executable.Value{}, err
		}
		v := vm.vars[e.ID]
		if !v.IsArray() {
			return v, nil
		}
		el, ok := v.Array().Get(idx...)
		if !ok {
			log.Debugf("run %s: %s%v out of bounds", vm.runID, vm.exe.Variables.Name(e.ID), idx)
			return executable.ZeroValue(v.Type), nil
		}
		return el, nil

	case *executable.UnaryExpr:
		v, err := vm.eval(ctx, e.Expr)
		if err != nil {
			return executable.Value{}, err
		}
		res, err := executable.Unary(e.Op, v)
		return res, operatorError(e.Op, err)

	case *executable.BinaryExpr:
		left, err := vm.eval(ctx, e.Left)
		if err != nil {
			return executable.Value{}, err
		}
		right, err := vm.eval(ctx, e.Right)
		if err != nil {
			return executable.Value{}, err
		}
		res, err := executable.Binary(e.Op, left, right)
		return res, operatorError(e.Op, err)

	case *executable.FunctionCallExpr:
		return vm.callFunction(ctx, e.ID, e.Args)

	case *executable.PredefinedCallExpr:
		res, err := vm.function(ctx, e.Func, e.Args)
		if err != nil {
			var rt *Error
			if errors.As(err, &rt) {
				return executable.Value{}, err
			}
			return executable.Value{}, newError(KindFunctionCall, e.Func.String(), err)
		}
		return res, nil

	case *executable.MemberExpr:
		return vm.member(ctx, e)

	case *executable.MemberCallExpr:
		return vm.memberCall(ctx, e)
	}
	return executable.Value{}, newError(KindInternal, fmt.Sprintf("%T", e), nil)
}

func operatorError(op executable.FuncOpCode, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, executable.ErrDivisionByZero):
		return newError(KindDivisionByZero, op.String(), err)
	case errors.Is(err, executable.ErrInvalidCoercion):
		return newError(KindInvalidCoercion, op.String(), err)
	}
	return newError(KindInternal, op.String(), err)
}

func (vm *VM) evalAll(ctx context.Context, list []executable.PPEExpr) ([]executable.Value, error) {
	res := make([]executable.Value, len(list))
	for i, e := range list {
		v, err := vm.eval(ctx, e)
		if err != nil {
			return nil, err
		}
		res[i] = v
	}
	return res, nil
}

func (vm *VM) indices(ctx context.Context, dims []executable.PPEExpr) ([]int, error) {
	idx := make([]int, len(dims))
	for i, d := range dims {
		v, err := vm.eval(ctx, d)
		if err != nil {
			return nil, err
		}
		idx[i] = int(v.AsInt())
	}
	return idx, nil
}

func (vm *VM) checkID(id int) error {
	if id <= 0 || id >= len(vm.vars) {
		return newError(KindInternal, "#"+strconv.Itoa(id), errors.New("variable id out of range"))
	}
	return nil
}

// assign stores v in the variable or array element target names,
// converted to the declared type of the variable
func (vm *VM) assign(ctx context.Context, target executable.PPEExpr, v executable.Value) error {
	switch t := target.(type) {
	case *executable.ValueExpr:
		if err := vm.checkID(t.ID); err != nil {
			return err
		}
		vm.vars[t.ID] = vm.convert(t.ID, v)
		return nil

	case *executable.DimExpr:
		if err := vm.checkID(t.ID); err != nil {
			return err
		}
		idx, err := vm.indices(ctx, t.Dims)
		if err != nil {
			return err
		}
		arr := vm.vars[t.ID].Array()
		if arr == nil {
			vm.vars[t.ID] = vm.convert(t.ID, v)
			return nil
		}
		if !arr.Set(v, idx...) {
			log.Debugf("run %s: %s%v out of bounds", vm.runID, vm.exe.Variables.Name(t.ID), idx)
		}
		return nil
	}
	return newError(KindInternal, fmt.Sprintf("%T", target), errNotWritable)
}

// convert adapts v to the declared type of variable id. Arrays are copied
// so a parameter never aliases the caller's storage.
func (vm *VM) convert(id int, v executable.Value) executable.Value {
	if v.IsArray() {
		return v.Clone()
	}
	t := vm.vars[id].Type
	if e, ok := vm.exe.Variables.Entry(id); ok {
		t = e.Header.Type
	}
	if t == v.Type || t == executable.TypeNone || t.IsUserData() || t.IsCallable() {
		return v
	}
	return v.ConvertTo(t)
}

// object resolves the UserData instance an expression evaluates to
func (vm *VM) object(ctx context.Context, e executable.PPEExpr) (UserData, *executable.UserType, error) {
	v, err := vm.eval(ctx, e)
	if err != nil {
		return nil, nil, err
	}
	if !v.Type.IsUserData() {
		return nil, nil, newError(KindNoUserTypeBase, v.Type.String(), nil)
	}
	ut, ok := vm.registry.ByType(v.Type)
	if !ok {
		return nil, nil, newError(KindTypeNotFoundInRegistry, strconv.Itoa(int(v.Type)), nil)
	}
	obj, ok := vm.objects.get(v.Handle())
	if !ok {
		return nil, nil, newError(KindNoObjectFound, ut.Name, nil)
	}
	return obj, ut, nil
}

func (vm *VM) member(ctx context.Context, e *executable.MemberExpr) (executable.Value, error) {
	obj, ut, err := vm.object(ctx, e.Expr)
	if err != nil {
		return executable.Value{}, err
	}
	m, ok := ut.Member(e.ID)
	if !ok {
		return vm.softFailure(ut.Name, "#"+strconv.Itoa(e.ID), ErrUnknownMember)
	}
	if m.Kind != executable.MemberField {
		return vm.invoke(obj, ut, m, nil)
	}
	v, err := obj.GetField(m.Name)
	return vm.memberResult(ut, m, v, err)
}

// memberCall invokes a method. A field called with one argument is assigned.
func (vm *VM) memberCall(ctx context.Context, e *executable.MemberCallExpr) (executable.Value, error) {
	obj, ut, err := vm.object(ctx, e.Expr)
	if err != nil {
		return executable.Value{}, err
	}
	args, err := vm.evalAll(ctx, e.Args)
	if err != nil {
		return executable.Value{}, err
	}
	m, ok := ut.Member(e.ID)
	if !ok {
		return vm.softFailure(ut.Name, "#"+strconv.Itoa(e.ID), ErrUnknownMember)
	}

	switch m.Kind {
	case executable.MemberField:
		switch len(args) {
		case 0:
			v, err := obj.GetField(m.Name)
			return vm.memberResult(ut, m, v, err)
		case 1:
			v := args[0]
			if !m.Type.IsUserData() {
				v = v.ConvertTo(m.Type)
			}
			return vm.memberResult(ut, m, v, obj.SetField(m.Name, v))
		}
		return executable.Value{}, newError(KindFunctionCall, ut.Name+"."+m.Name, executable.ErrArgumentCount)

	case executable.MemberProcedure:
		err := obj.CallMethod(m.Name, args)
		return vm.memberResult(ut, m, executable.NewInt(0), err)
	}
	return vm.invoke(obj, ut, m, args)
}

func (vm *VM) invoke(obj UserData, ut *executable.UserType, m *executable.Member, args []executable.Value) (executable.Value, error) {
	if m.Kind == executable.MemberProcedure {
		return vm.memberResult(ut, m, executable.NewInt(0), obj.CallMethod(m.Name, args))
	}
	if of, ok := obj.(ObjectFunctions); ok && m.Type.IsUserData() {
		res, err := of.CallObjectFunction(m.Name, args)
		if err != nil {
			return vm.memberResult(ut, m, executable.Value{}, err)
		}
		if res == nil {
			return executable.Value{}, newError(KindNoObjectFound, ut.Name+"."+m.Name, nil)
		}
		return executable.NewUserData(m.Type, vm.objects.add(res)), nil
	}
	v, err := obj.CallFunction(m.Name, args)
	return vm.memberResult(ut, m, v, err)
}

func (vm *VM) memberResult(ut *executable.UserType, m *executable.Member, v executable.Value, err error) (executable.Value, error) {
	if err != nil {
		return vm.softFailure(ut.Name, m.Name, err)
	}
	return v, nil
}

// softFailure turns ErrUnknownMember into Integer(-1); other errors are fatal
func (vm *VM) softFailure(typeName, member string, err error) (executable.Value, error) {
	if errors.Is(err, ErrUnknownMember) {
		log.Warningf("run %s: %s.%s: %s", vm.runID, typeName, member, err)
		return executable.NewInt(-1), nil
	}
	return executable.Value{}, newError(KindFunctionCall, typeName+"."+member, err)
}
