package taibf

const Theory = `
# TaiBF Theory

A program is a string over the alphabet < > + - [ ] . , and runs against a tape of 30000 byte cells.

## Validate, then execute
Parse strips trailing whitespace and validates. Validation checks the character set first, then bracket balance, and reports exactly one problem: the first invalid character, the first unmatched ], or every unclosed [.
A validated Program cannot hit an unbalanced bracket at run time. The only run time failures left are boundaries: the tape edges, the end of input, an empty input line, and cell arithmetic when the fail policy is chosen.

## The machine
All state lives in State: instruction pointer, tape pointer, tape, jump stack and a step counter. Nothing is global, so a State can be written with Snapshot and continued elsewhere with Restore.
[ pushes its own position. ] with a non-zero cell jumps back to the position on top of the stack and re-executes the [, which does not push again. ] with a zero cell pops and falls through. [ never skips its body: a loop body always runs at least once.

## I/O
, consumes one input line and stores its first byte. . writes the cell as a character (UTF-8) or as a raw byte. Output is flushed before reading input, at breakpoints and when a run ends.
`
