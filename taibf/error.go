package taibf

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrValidation = errors.New("validation error")

type InvalidCharacterError struct {
	Char  rune
	Index int
}

func (e *InvalidCharacterError) Error() string {
	return fmt.Sprintf("invalid character %q at index %d", e.Char, e.Index)
}

func (e *InvalidCharacterError) Is(target error) bool {
	return target == ErrValidation
}

type UnmatchedClosingBracketError struct {
	Index int
}

func (e *UnmatchedClosingBracketError) Error() string {
	return fmt.Sprintf("unexpected closing bracket at index %d", e.Index)
}

func (e *UnmatchedClosingBracketError) Is(target error) bool {
	return target == ErrValidation
}

type UnclosedBracketsError struct {
	// in stack order, outermost first
	Indices []int
}

func (e *UnclosedBracketsError) Error() string {
	strs := make([]string, 0, len(e.Indices))
	for _, idx := range e.Indices {
		strs = append(strs, strconv.Itoa(idx))
	}
	if len(e.Indices) > 1 {
		return "unclosed brackets at indexes " + strings.Join(strs, ", ")
	}
	return "unclosed bracket at index " + strings.Join(strs, ", ")
}

func (e *UnclosedBracketsError) Is(target error) bool {
	return target == ErrValidation
}

var (
	ErrTapeOverflow   = errors.New("tape overflow")
	ErrTapeUnderflow  = errors.New("tape underflow")
	ErrInputExhausted = errors.New("input exhausted")
	ErrEmptyInputLine = errors.New("empty input line")
	ErrCellOverflow   = errors.New("cell overflow")
	ErrCellUnderflow  = errors.New("cell underflow")
)

type RuntimeError struct {
	Err         error
	IP          int
	TapePointer int
	Instruction byte
}

func (r *RuntimeError) Error() string {
	return fmt.Sprintf("%s at instruction %d (%q), tape pointer %d",
		r.Err.Error(), r.IP, r.Instruction, r.TapePointer)
}

func (r *RuntimeError) Unwrap() error {
	return r.Err
}
