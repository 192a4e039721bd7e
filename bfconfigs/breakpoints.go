package bfconfigs

import (
	"slices"

	"github.com/reusee/taibf/cmds"
	"github.com/reusee/taibf/configs"
)

type Breakpoints []int

// stop before executing the instruction at this position, repeatable
var breakFlags = cmds.Collect[uint]("-break")

func (Module) Breakpoints(
	loader configs.Loader,
) Breakpoints {
	var ret []int
	for _, ip := range *breakFlags {
		ret = append(ret, int(ip))
	}
	for list := range configs.All[[]int](loader, "breakpoints") {
		ret = append(ret, list...)
	}
	slices.Sort(ret)
	return slices.Compact(ret)
}
