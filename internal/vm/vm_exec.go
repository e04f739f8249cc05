package vm

import (
	"context"

	"github.com/funvibe/ppl/internal/config"
	"github.com/funvibe/ppl/internal/executable"
)

func (vm *VM) execute(ctx context.Context, stmt *executable.Statement) error {
	switch stmt.Op {
	case executable.OP_END:
		vm.running = false
		return nil

	case executable.OP_STOP:
		vm.running = false
		vm.stopped = true
		return nil

	case executable.OP_LET:
		val, err := vm.eval(ctx, stmt.Args[1])
		if err != nil {
			return err
		}
		return vm.assign(ctx, stmt.Args[0], val)

	case executable.OP_IFNOT:
		cond, err := vm.eval(ctx, stmt.Args[0])
		if err != nil {
			return err
		}
		if !cond.AsBool() {
			return vm.jump(stmt.Target)
		}
		return nil

	case executable.OP_GOTO:
		return vm.jump(stmt.Target)

	case executable.OP_GOSUB:
		if len(vm.returns) >= config.MaxGosubDepth {
			return newError(KindInternal, "GOSUB", errGosubDepth)
		}
		vm.returns = append(vm.returns, returnAddress{pc: vm.pc})
		return vm.jump(stmt.Target)

	case executable.OP_RETURN, executable.OP_FEND, executable.OP_FPCLR:
		return vm.ret(ctx)

	case executable.OP_PCALL:
		return vm.callProcedure(ctx, stmt.Target, stmt.Args)

	case executable.OP_EVAL:
		_, err := vm.eval(ctx, stmt.Args[0])
		return err
	}
	return vm.predefined(ctx, stmt)
}
