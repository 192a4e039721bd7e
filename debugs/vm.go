package debugs

import (
	"fmt"

	"github.com/reusee/taibf/taibf"
)

// VMGlobals exposes the registers and tape of vm to a tap
func VMGlobals(vm *taibf.VM) map[string]any {
	var instruction string
	if vm.IP < len(vm.Program) {
		instruction = string(vm.Program[vm.IP])
	}
	return map[string]any{
		"program":     string(vm.Program),
		"ip":          vm.IP,
		"tp":          vm.TP,
		"steps":       vm.Steps,
		"instruction": instruction,
		"jump_stack":  append([]int(nil), vm.JumpStack...),
		"cell": func(i int) (int, error) {
			if i < 0 || i >= taibf.TapeSize {
				return 0, fmt.Errorf("cell %d out of tape", i)
			}
			return int(vm.Tape[i]), nil
		},
		"cells": func(from, to int) ([]int, error) {
			if from < 0 || to > taibf.TapeSize || from > to {
				return nil, fmt.Errorf("bad range %d:%d", from, to)
			}
			ret := make([]int, 0, to-from)
			for _, b := range vm.Tape[from:to] {
				ret = append(ret, int(b))
			}
			return ret, nil
		},
	}
}
