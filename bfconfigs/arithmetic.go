package bfconfigs

import (
	"fmt"

	"github.com/reusee/taibf/cmds"
	"github.com/reusee/taibf/configs"
	"github.com/reusee/taibf/vars"
)

type Arithmetic string

const (
	ArithmeticWrap Arithmetic = "wrap"
	ArithmeticFail Arithmetic = "fail"
)

var arithmeticFlag Arithmetic

func init() {
	cmds.Define("-arith", cmds.Func(func(s string) error {
		switch v := Arithmetic(s); v {
		case ArithmeticWrap, ArithmeticFail:
			arithmeticFlag = v
			return nil
		}
		return fmt.Errorf("unknown arithmetic policy: %s", s)
	}).Desc("cell arithmetic: wrap (default) or fail"))
}

func (Module) Arithmetic(
	loader configs.Loader,
) Arithmetic {
	return vars.FirstNonZero(
		arithmeticFlag,
		configs.First[Arithmetic](loader, "arithmetic"),
		ArithmeticWrap,
	)
}
