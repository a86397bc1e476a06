package blc

import (
	"errors"
	"fmt"
)

// ErrInvalidProgram is returned by Run when the program bits do not decode
// to a term, or when the reduced result does not decode to text.
var ErrInvalidProgram = errors.New("blc: invalid program")

// ErrInvalidArgument is returned by Run when an Input of kind Bits does not
// itself decode to a term.
var ErrInvalidArgument = errors.New("blc: invalid argument")

// Input selects how Run supplies an argument to the program: Nothing reduces
// the program alone, Bytes applies it to the lambda-encoding of a byte
// string, and Bits applies it to a term parsed from its own bit-ASCII
// encoding.
type Input interface {
	isInput()
}

// NothingInput reduces the program with no argument applied.
type NothingInput struct{}

// BytesInput applies the program to Encode(Bytes).
type BytesInput struct {
	Bytes []byte
}

// BitsInput applies the program to the term parsed from Bits.
type BitsInput struct {
	Bits []byte
}

func (NothingInput) isInput() {}
func (BytesInput) isInput()   {}
func (BitsInput) isInput()    {}

// Run decodes programBits into a term, builds the term to reduce per the
// input variant, reduces it under normal order with no step limit, and
// decodes the result to text.
func Run(programBits []byte, input Input) (string, error) {
	program, err := FromBits(programBits)
	if err != nil {
		return "", fmt.Errorf("run: %w", ErrInvalidProgram)
	}

	var toReduce Term
	switch in := input.(type) {
	case NothingInput:
		toReduce = program
	case BytesInput:
		toReduce = App{Func: program, Arg: Encode(in.Bytes)}
	case BitsInput:
		arg, err := FromBits(in.Bits)
		if err != nil {
			return "", fmt.Errorf("run: %w", ErrInvalidArgument)
		}
		toReduce = App{Func: program, Arg: arg}
	default:
		return "", fmt.Errorf("run: unknown input variant: %w", ErrInvalidArgument)
	}

	result, _ := Reduce(toReduce, 0)

	text, err := Decode(result)
	if err != nil {
		return "", fmt.Errorf("run: %w", ErrInvalidProgram)
	}
	return text, nil
}
