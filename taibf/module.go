package taibf

import (
	"github.com/reusee/dscope"
	"github.com/reusee/taibf/bfconfigs"
	"github.com/reusee/taibf/logs"
)

type Module struct {
	dscope.Module
	Configs bfconfigs.Module
	Logs    logs.Module
}

func (Module) Options(
	arith bfconfigs.Arithmetic,
	output bfconfigs.Output,
	breakpoints bfconfigs.Breakpoints,
	logger logs.Logger,
) Options {
	ret := Options{
		Breakpoints: breakpoints,
		Logger:      logger,
	}
	if arith == bfconfigs.ArithmeticFail {
		ret.Arithmetic = ArithmeticFail
	}
	if output == bfconfigs.OutputByte {
		ret.Output = OutputByte
	}
	return ret
}

type NewVM func(program Program) *VM

func (Module) NewVM(
	options Options,
) NewVM {
	return func(program Program) *VM {
		return New(program, &options)
	}
}
