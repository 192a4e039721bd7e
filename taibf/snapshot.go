package taibf

import (
	"encoding/gob"
	"errors"
	"fmt"
	"io"
)

func (v *VM) Snapshot(w io.Writer) error {
	enc := gob.NewEncoder(w)
	if err := enc.Encode(v.State); err != nil {
		return err
	}
	return nil
}

// Restore replaces the state of v. Options given to New are kept.
// v is left untouched if the decoded state is not one a run could reach.
func (v *VM) Restore(r io.Reader) error {
	var state State
	dec := gob.NewDecoder(r)
	if err := dec.Decode(&state); err != nil {
		return err
	}
	if err := state.check(); err != nil {
		return fmt.Errorf("restore: %w", err)
	}
	v.State = state
	return nil
}

var ErrBadState = errors.New("bad state")

func (s *State) check() error {
	if err := Validate(string(s.Program)); err != nil {
		return fmt.Errorf("%w: program: %w", ErrBadState, err)
	}
	if s.TP < 0 || s.TP >= TapeSize {
		return fmt.Errorf("%w: tape pointer %d out of tape", ErrBadState, s.TP)
	}
	if s.IP < 0 || s.IP > len(s.Program) {
		return fmt.Errorf("%w: instruction pointer %d out of program", ErrBadState, s.IP)
	}
	if s.Steps < 0 {
		return fmt.Errorf("%w: negative steps %d", ErrBadState, s.Steps)
	}
	for i, ip := range s.JumpStack {
		if ip < 0 || ip >= len(s.Program) || s.Program[ip] != '[' {
			return fmt.Errorf("%w: jump stack entry %d is not a loop start", ErrBadState, ip)
		}
		if i > 0 && ip <= s.JumpStack[i-1] {
			return fmt.Errorf("%w: jump stack not nested at %d", ErrBadState, ip)
		}
	}
	return nil
}
