package main

import (
	"context"
	"fmt"
	"os"

	"github.com/reusee/taibf/debugs"
	"github.com/reusee/taibf/logs"
	"github.com/reusee/taibf/taibf"
)

type Job struct {
	ProgramPath  string
	SnapshotPath string
	RestorePath  string
}

type runner struct {
	Logger logs.Logger
	NewVM  taibf.NewVM
	Tap    debugs.Tap // optional
}

func (r *runner) Run(ctx context.Context, job Job) (err error) {
	vm, err := r.load(ctx, job)
	if err != nil {
		return err
	}

	if job.SnapshotPath != "" {
		defer func() {
			if e := writeSnapshot(vm, job.SnapshotPath); e != nil && err == nil {
				err = e
			}
		}()
	}

	for intr, err := range vm.Run {
		if err != nil {
			r.tap(ctx, "failure", vm)
			return err
		}
		if intr == taibf.InterruptBreakpoint {
			r.Logger.InfoContext(ctx, "breakpoint",
				"ip", vm.IP,
				"tp", vm.TP,
				"cell", vm.Cell(),
				"steps", vm.Steps,
			)
			r.tap(ctx, "breakpoint", vm)
		}
	}

	return nil
}

func (r *runner) load(ctx context.Context, job Job) (*taibf.VM, error) {
	if job.RestorePath != "" {
		f, err := os.Open(job.RestorePath)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		vm := r.NewVM("")
		if err := vm.Restore(f); err != nil {
			return nil, fmt.Errorf("restore %s: %w", job.RestorePath, err)
		}
		r.Logger.InfoContext(ctx, "snapshot restored",
			"path", job.RestorePath,
			"ip", vm.IP,
		)
		return vm, nil
	}

	content, err := os.ReadFile(job.ProgramPath)
	if err != nil {
		return nil, err
	}
	r.Logger.InfoContext(ctx, fmt.Sprintf("%dB read", len(content)),
		"path", job.ProgramPath,
	)

	program, err := taibf.Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", job.ProgramPath, taibf.ErrValidation, err)
	}

	return r.NewVM(program), nil
}

func (r *runner) tap(ctx context.Context, what string, vm *taibf.VM) {
	if r.Tap == nil {
		return
	}
	r.Tap(ctx, what, debugs.VMGlobals(vm))
}

func writeSnapshot(vm *taibf.VM, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := vm.Snapshot(f); err != nil {
		f.Close()
		return fmt.Errorf("snapshot: %w", err)
	}
	return f.Close()
}
