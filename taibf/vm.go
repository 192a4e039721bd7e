package taibf

import (
	"bufio"
	"io"
	"log/slog"
	"os"

	"github.com/reusee/taibf/logs"
	"github.com/reusee/taibf/vars"
)

const TapeSize = 30000

type Arithmetic uint8

const (
	// ArithmeticWrap makes cell arithmetic modular
	ArithmeticWrap Arithmetic = iota
	// ArithmeticFail stops the run on 255+1 and 0-1
	ArithmeticFail
)

type Output uint8

const (
	// OutputChar writes the cell value as a character code, UTF-8 encoded
	OutputChar Output = iota
	// OutputByte writes the cell value as is
	OutputByte
)

type Options struct {
	Stdin       io.Reader // if nil, default to os.Stdin
	Stdout      io.Writer // if nil, default to os.Stdout
	Arithmetic  Arithmetic
	Output      Output
	Breakpoints []int
	Logger      logs.Logger
}

// State is everything a run mutates. It is what Snapshot writes.
type State struct {
	Program   Program
	IP        int
	TP        int
	Tape      [TapeSize]byte
	JumpStack []int
	Steps     int
}

type VM struct {
	State

	arithmetic  Arithmetic
	output      Output
	breakpoints map[int]bool
	logger      logs.Logger
	stdin       *bufio.Reader
	stdout      *bufio.Writer
}

func New(program Program, options *Options) *VM {
	opts := vars.DerefOrZero(options)

	var stdin io.Reader = os.Stdin
	if opts.Stdin != nil {
		stdin = opts.Stdin
	}
	var stdout io.Writer = os.Stdout
	if opts.Stdout != nil {
		stdout = opts.Stdout
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	breakpoints := make(map[int]bool, len(opts.Breakpoints))
	for _, ip := range opts.Breakpoints {
		breakpoints[ip] = true
	}

	return &VM{
		State: State{
			Program: program,
		},
		arithmetic:  opts.Arithmetic,
		output:      opts.Output,
		breakpoints: breakpoints,
		logger:      logger,
		stdin:       bufio.NewReader(stdin),
		stdout:      bufio.NewWriter(stdout),
	}
}

func (v *VM) Cell() byte {
	return v.Tape[v.TP]
}

func (v *VM) push(ip int) {
	v.JumpStack = append(v.JumpStack, ip)
}

func (v *VM) top() (int, bool) {
	if len(v.JumpStack) == 0 {
		return 0, false
	}
	return v.JumpStack[len(v.JumpStack)-1], true
}

func (v *VM) pop() {
	if len(v.JumpStack) > 0 {
		v.JumpStack = v.JumpStack[:len(v.JumpStack)-1]
	}
}
