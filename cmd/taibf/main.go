package main

import (
	"context"
	"fmt"
	"os"

	"github.com/reusee/dscope"
	"github.com/reusee/taibf/cmds"
	"github.com/reusee/taibf/debugs"
	"github.com/reusee/taibf/logs"
	"github.com/reusee/taibf/modes"
	"github.com/reusee/taibf/taibf"
)

var (
	programPath  = cmds.Arg("program", "path of the program file")
	tapSwitch    = cmds.Switch("-tap")
	snapshotPath = cmds.Var[string]("-snapshot")
	restorePath  = cmds.Var[string]("-restore")
)

func main() {
	cmds.Execute(os.Args[1:])

	if *programPath == "" && *restorePath == "" {
		fmt.Fprintln(os.Stderr, "Error: program file path is required")
		cmds.GlobalExecutor.PrintUsage()
		os.Exit(1)
	}

	scope := dscope.New(
		new(taibf.Module),
		new(debugs.Module),
		modes.ForProduction(),
	)

	scope.Call(func(
		logger logs.Logger,
		newSpan logs.NewSpan,
		newVM taibf.NewVM,
		tap debugs.Tap,
	) {
		ctx, _ := newSpan(context.Background(), "")

		r := &runner{
			Logger: logger,
			NewVM:  newVM,
		}
		if *tapSwitch {
			r.Tap = tap
		}
		err := r.Run(ctx, Job{
			ProgramPath:  *programPath,
			SnapshotPath: *snapshotPath,
			RestorePath:  *restorePath,
		})
		if err != nil {
			logger.DebugContext(ctx, "run failed", "error", logs.WrapSpan(ctx, err))
			fmt.Fprintf(os.Stderr, "Execution halted: %v\n", err)
			os.Exit(1)
		}
	})
}
