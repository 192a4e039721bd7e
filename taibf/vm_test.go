package taibf

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func run(src string, input string, options *Options) (*VM, string, error) {
	program, err := Parse(src)
	if err != nil {
		return nil, "", err
	}
	var opts Options
	if options != nil {
		opts = *options
	}
	out := new(bytes.Buffer)
	opts.Stdin = strings.NewReader(input)
	opts.Stdout = out
	vm := New(program, &opts)
	for _, err := range vm.Run {
		if err != nil {
			return vm, out.String(), err
		}
	}
	return vm, out.String(), nil
}

func TestVM(t *testing.T) {
	mustRun := func(t *testing.T, src string, input string) (*VM, string) {
		vm, out, err := run(src, input, nil)
		if err != nil {
			t.Helper()
			t.Fatalf("%q: %v", src, err)
		}
		return vm, out
	}

	t.Run("output", func(t *testing.T) {
		_, out := mustRun(t, "++.", "")
		if out != "\x02" {
			t.Fatalf("got %q", out)
		}
	})

	t.Run("loop", func(t *testing.T) {
		vm, out := mustRun(t, "+[-]", "")
		if out != "" {
			t.Fatalf("got %q", out)
		}
		if vm.Tape[0] != 0 {
			t.Fatalf("got %d", vm.Tape[0])
		}
		if len(vm.JumpStack) != 0 {
			t.Fatalf("got %v", vm.JumpStack)
		}
		if vm.IP != 4 {
			t.Fatalf("got %d", vm.IP)
		}
	})

	t.Run("input", func(t *testing.T) {
		_, out := mustRun(t, ",.", "A")
		if out != "A" {
			t.Fatalf("got %q", out)
		}
		_, out = mustRun(t, ",.", "A\n")
		if out != "A" {
			t.Fatalf("got %q", out)
		}
	})

	t.Run("input lines", func(t *testing.T) {
		_, out := mustRun(t, ",.,.,.", "ab\r\ncd\nx")
		if out != "acx" {
			t.Fatalf("got %q", out)
		}
	})

	t.Run("wrap", func(t *testing.T) {
		vm, _ := mustRun(t, strings.Repeat("+", 256), "")
		if vm.Tape[0] != 0 {
			t.Fatalf("got %d", vm.Tape[0])
		}
		vm, _ = mustRun(t, "-", "")
		if vm.Tape[0] != 255 {
			t.Fatalf("got %d", vm.Tape[0])
		}
	})

	t.Run("move", func(t *testing.T) {
		vm, _ := mustRun(t, ">>+>++<", "")
		if vm.TP != 2 {
			t.Fatalf("got %d", vm.TP)
		}
		if vm.Tape[2] != 1 || vm.Tape[3] != 2 {
			t.Fatalf("got %v", vm.Tape[:4])
		}
		if vm.Cell() != 1 {
			t.Fatalf("got %d", vm.Cell())
		}
	})

	t.Run("nested loops", func(t *testing.T) {
		vm, out := mustRun(t, "++[>++[>++<-]<-]>>.", "")
		if out != "\x08" {
			t.Fatalf("got %q", out)
		}
		if vm.Tape[0] != 0 || vm.Tape[1] != 0 {
			t.Fatalf("got %v", vm.Tape[:3])
		}
	})

	t.Run("loop body runs once on zero cell", func(t *testing.T) {
		_, out := mustRun(t, "[.]", "")
		if out != "\x00" {
			t.Fatalf("got %q", out)
		}
	})

	t.Run("hello world", func(t *testing.T) {
		_, out := mustRun(t, "++++++++[>++++[>++>+++>+++>+<<<<-]>+>+>->>+[<]<-]>>.>---.+++++++..+++.>>.<-.<.+++.------.--------.>>+.>++.\n", "")
		if out != "Hello World!\n" {
			t.Fatalf("got %q", out)
		}
	})

	t.Run("echo", func(t *testing.T) {
		_, out := mustRun(t, ",[.,]", "a\nb\n\x00\n")
		if out != "ab" {
			t.Fatalf("got %q", out)
		}
	})

	t.Run("empty program", func(t *testing.T) {
		vm, out := mustRun(t, "", "")
		if out != "" || vm.Steps != 0 {
			t.Fatalf("got %q %d", out, vm.Steps)
		}
	})
}

func TestVMRuntimeErrors(t *testing.T) {
	cases := []struct {
		name    string
		src     string
		input   string
		options *Options
		err     error
		ip      int
		tp      int
	}{
		{"underflow", "<", "", nil, ErrTapeUnderflow, 0, 0},
		{"underflow after move", "+><<", "", nil, ErrTapeUnderflow, 3, 0},
		{"overflow", strings.Repeat(">", TapeSize), "", nil, ErrTapeOverflow, TapeSize - 1, TapeSize - 1},
		{"input exhausted", ",", "", nil, ErrInputExhausted, 0, 0},
		{"input exhausted later", ",>,", "a\n", nil, ErrInputExhausted, 2, 1},
		{"empty line", ",", "\n", nil, ErrEmptyInputLine, 0, 0},
		{"empty crlf line", ",", "\r\n", nil, ErrEmptyInputLine, 0, 0},
		{"cell underflow", "-", "", &Options{Arithmetic: ArithmeticFail}, ErrCellUnderflow, 0, 0},
		{"cell overflow", strings.Repeat("+", 256), "", &Options{Arithmetic: ArithmeticFail}, ErrCellOverflow, 255, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, _, err := run(c.src, c.input, c.options)
			if !errors.Is(err, c.err) {
				t.Fatalf("got %v", err)
			}
			var e *RuntimeError
			if !errors.As(err, &e) {
				t.Fatalf("got %T", err)
			}
			if e.IP != c.ip || e.TapePointer != c.tp {
				t.Fatalf("got ip %d tp %d", e.IP, e.TapePointer)
			}
			if e.Instruction != c.src[c.ip] {
				t.Fatalf("got %q", e.Instruction)
			}
		})
	}
}

func TestVMStrictArithmeticInRange(t *testing.T) {
	vm, _, err := run(strings.Repeat("+", 255)+strings.Repeat("-", 255), "", &Options{
		Arithmetic: ArithmeticFail,
	})
	if err != nil {
		t.Fatal(err)
	}
	if vm.Tape[0] != 0 {
		t.Fatalf("got %d", vm.Tape[0])
	}
}

func TestVMOutputKeepsOutputBeforeFailure(t *testing.T) {
	_, out, err := run("+++.<", "", nil)
	if !errors.Is(err, ErrTapeUnderflow) {
		t.Fatalf("got %v", err)
	}
	if out != "\x03" {
		t.Fatalf("got %q", out)
	}
}

func TestVMOutputEncoding(t *testing.T) {
	src := strings.Repeat("+", 200) + "."
	_, out, err := run(src, "", nil)
	if err != nil {
		t.Fatal(err)
	}
	if out != "È" {
		t.Fatalf("got %q", out)
	}
	_, out, err = run(src, "", &Options{
		Output: OutputByte,
	})
	if err != nil {
		t.Fatal(err)
	}
	if out != "\xc8" {
		t.Fatalf("got %q", out)
	}
}

func TestVMBreakpoints(t *testing.T) {
	program, err := Parse("+++[-.]")
	if err != nil {
		t.Fatal(err)
	}
	out := new(bytes.Buffer)
	vm := New(program, &Options{
		Stdout:      out,
		Breakpoints: []int{4, 0},
	})
	var hits []int
	var cells []byte
	for intr, err := range vm.Run {
		if err != nil {
			t.Fatal(err)
		}
		if intr != InterruptBreakpoint {
			t.Fatalf("got %v", intr)
		}
		hits = append(hits, vm.IP)
		cells = append(cells, vm.Cell())
		// output is flushed at breakpoints
		if vm.IP == 4 && out.Len() != 3-int(vm.Cell()) {
			t.Fatalf("got %q", out.String())
		}
	}
	if str := fmt.Sprintf("%v", hits); str != "[0 4 4 4]" {
		t.Fatalf("got %s", str)
	}
	if !bytes.Equal(cells, []byte{0, 3, 2, 1}) {
		t.Fatalf("got %v", cells)
	}
	if out.String() != "\x02\x01\x00" {
		t.Fatalf("got %q", out.String())
	}
}

func TestVMStop(t *testing.T) {
	program, err := Parse("+++++")
	if err != nil {
		t.Fatal(err)
	}
	vm := New(program, &Options{
		Stdout:      new(bytes.Buffer),
		Breakpoints: []int{2},
	})
	for intr, err := range vm.Run {
		if err != nil {
			t.Fatal(err)
		}
		if intr == InterruptBreakpoint {
			break
		}
	}
	if vm.IP != 2 || vm.Tape[0] != 2 || vm.Steps != 2 {
		t.Fatalf("got ip %d cell %d steps %d", vm.IP, vm.Tape[0], vm.Steps)
	}

	// resume
	for _, err := range vm.Run {
		if err != nil {
			t.Fatal(err)
		}
	}
	if vm.IP != 5 || vm.Tape[0] != 5 {
		t.Fatalf("got ip %d cell %d", vm.IP, vm.Tape[0])
	}
}

func TestVMEmptyJumpStackPanics(t *testing.T) {
	// bypasses validation
	vm := New(Program("]"), &Options{
		Stdout: new(bytes.Buffer),
	})
	defer func() {
		if p := recover(); p == nil {
			t.Fatal("should panic")
		}
	}()
	for range vm.Run {
	}
}
