package taibf

import (
	"strings"
	"unicode"
)

const Alphabet = "<>+-[].,"

// Program is a validated instruction sequence. Values are produced by Parse.
type Program string

// Parse strips trailing whitespace from src and validates it.
func Parse(src string) (Program, error) {
	src = strings.TrimRightFunc(src, unicode.IsSpace)
	if err := Validate(src); err != nil {
		return "", err
	}
	return Program(src), nil
}

// Validate reports the first problem found in src, checking the character set
// before bracket balance.
func Validate(src string) error {
	for i, r := range src {
		if r > unicode.MaxASCII || !strings.ContainsRune(Alphabet, r) {
			return &InvalidCharacterError{
				Char:  r,
				Index: i,
			}
		}
	}

	var open []int
	for i := 0; i < len(src); i++ {
		switch src[i] {
		case '[':
			open = append(open, i)
		case ']':
			if len(open) == 0 {
				return &UnmatchedClosingBracketError{
					Index: i,
				}
			}
			open = open[:len(open)-1]
		}
	}
	if len(open) > 0 {
		return &UnclosedBracketsError{
			Indices: open,
		}
	}

	return nil
}
