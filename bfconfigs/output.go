package bfconfigs

import (
	"fmt"

	"github.com/reusee/taibf/cmds"
	"github.com/reusee/taibf/configs"
	"github.com/reusee/taibf/vars"
)

type Output string

const (
	OutputChar Output = "char"
	OutputByte Output = "byte"
)

var outputFlag Output

func init() {
	cmds.Define("-output", cmds.Func(func(s string) error {
		switch v := Output(s); v {
		case OutputChar, OutputByte:
			outputFlag = v
			return nil
		}
		return fmt.Errorf("unknown output encoding: %s", s)
	}).Desc("output encoding of cells: char (default) or byte"))
}

func (Module) Output(
	loader configs.Loader,
) Output {
	return vars.FirstNonZero(
		outputFlag,
		configs.First[Output](loader, "output"),
		OutputChar,
	)
}
