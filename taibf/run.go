package taibf

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

var errStopped = errors.New("stopped")

func (v *VM) Run(yield func(*Interrupt, error) bool) {
	v.logger.Debug("run", "ip", v.IP, "size", len(v.Program))

	err := v.exec(yield)
	if flushErr := v.stdout.Flush(); flushErr != nil && err == nil {
		err = fmt.Errorf("flush output: %w", flushErr)
	}

	if errors.Is(err, errStopped) {
		v.logger.Debug("run stopped", "ip", v.IP, "steps", v.Steps)
		return
	}
	if err != nil {
		v.logger.Debug("run failed", "error", err, "steps", v.Steps)
		yield(nil, err)
		return
	}
	v.logger.Debug("run completed", "steps", v.Steps)
}

func (v *VM) exec(yield func(*Interrupt, error) bool) error {
	for v.IP < len(v.Program) {
		if v.breakpoints[v.IP] {
			if err := v.stdout.Flush(); err != nil {
				return fmt.Errorf("flush output: %w", err)
			}
			if !yield(InterruptBreakpoint, nil) {
				return errStopped
			}
		}

		v.Steps++
		switch v.Program[v.IP] {

		case '>':
			if v.TP+1 >= TapeSize {
				return v.fail(ErrTapeOverflow)
			}
			v.TP++

		case '<':
			if v.TP == 0 {
				return v.fail(ErrTapeUnderflow)
			}
			v.TP--

		case '+':
			if v.Tape[v.TP] == 255 && v.arithmetic == ArithmeticFail {
				return v.fail(ErrCellOverflow)
			}
			v.Tape[v.TP]++

		case '-':
			if v.Tape[v.TP] == 0 && v.arithmetic == ArithmeticFail {
				return v.fail(ErrCellUnderflow)
			}
			v.Tape[v.TP]--

		case '[':
			// a backward jump from the matching ] lands here with the marker still on top
			if top, ok := v.top(); !ok || top != v.IP {
				v.push(v.IP)
			}

		case ']':
			start, ok := v.top()
			if !ok {
				panic(fmt.Errorf("empty jump stack at %d", v.IP))
			}
			if v.Tape[v.TP] != 0 {
				v.IP = start
				continue
			}
			v.pop()

		case '.':
			var err error
			if v.output == OutputByte {
				err = v.stdout.WriteByte(v.Tape[v.TP])
			} else {
				_, err = v.stdout.WriteRune(rune(v.Tape[v.TP]))
			}
			if err != nil {
				return v.fail(fmt.Errorf("write output: %w", err))
			}

		case ',':
			if err := v.stdout.Flush(); err != nil {
				return v.fail(fmt.Errorf("flush output: %w", err))
			}
			line, err := v.readLine()
			if err != nil {
				return v.fail(err)
			}
			v.Tape[v.TP] = line[0]

		}
		v.IP++
	}
	return nil
}

// readLine returns a non-empty line without its terminator
func (v *VM) readLine() (string, error) {
	line, err := v.stdin.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("read input: %w", err)
		}
		if line == "" {
			return "", ErrInputExhausted
		}
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	if line == "" {
		return "", ErrEmptyInputLine
	}
	return line, nil
}

func (v *VM) fail(err error) error {
	return &RuntimeError{
		Err:         err,
		IP:          v.IP,
		TapePointer: v.TP,
		Instruction: v.Program[v.IP],
	}
}
