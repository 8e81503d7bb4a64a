package checks

import (
	"fmt"

	"github.com/reusee/tapeopt/ir"
)

type BracketKind uint8

const (
	// StrayClose is a ']' with no open loop.
	StrayClose BracketKind = iota + 1
	// Unterminated is a '[' never closed before the end of source.
	Unterminated
	// TooDeep is a '[' nested deeper than ir.MaxDepth.
	TooDeep
)

func (k BracketKind) String() string {
	switch k {
	case StrayClose:
		return "unmatched ']'"
	case Unterminated:
		return "unterminated '['"
	case TooDeep:
		return "loops nested too deep"
	}
	return fmt.Sprintf("bracket kind %d", k)
}

// BracketError reports the first malformed bracket and its byte offset.
type BracketError struct {
	Offset int
	Kind   BracketKind
}

var _ error = new(BracketError)

func (b *BracketError) Error() string {
	return fmt.Sprintf("%v at byte %d", b.Kind, b.Offset)
}

// Valid reports whether the brackets in src are balanced.
func Valid(src []byte) bool {
	depth := 0
	for _, b := range src {
		switch b {
		case '[':
			depth++
		case ']':
			depth--
			if depth < 0 {
				return false
			}
		}
	}
	return depth == 0
}

// Validate is Valid with a position. For an unterminated loop the offset
// is that of the outermost unclosed '['.
func Validate(src []byte) error {
	var open []int
	for i, b := range src {
		switch b {
		case '[':
			if len(open) == ir.MaxDepth {
				return &BracketError{
					Offset: i,
					Kind:   TooDeep,
				}
			}
			open = append(open, i)
		case ']':
			if len(open) == 0 {
				return &BracketError{
					Offset: i,
					Kind:   StrayClose,
				}
			}
			open = open[:len(open)-1]
		}
	}
	if len(open) > 0 {
		return &BracketError{
			Offset: open[0],
			Kind:   Unterminated,
		}
	}
	return nil
}

// Nesting reports a '[' nested deeper than ir.MaxDepth. Unlike Validate it
// tolerates unbalanced brackets, reading source the way the translator does:
// a stray ']' at the top level ends the program.
func Nesting(src []byte) error {
	depth := 0
	for i, b := range src {
		switch b {
		case '[':
			depth++
			if depth > ir.MaxDepth {
				return &BracketError{
					Offset: i,
					Kind:   TooDeep,
				}
			}
		case ']':
			depth--
			if depth < 0 {
				return nil
			}
		}
	}
	return nil
}
