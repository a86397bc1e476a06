package blc_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	. "github.com/KarpelesLab/blc"
	"github.com/KarpelesLab/blc/internal/churchlib"
)

// fizzbuzzProgram builds a single-number FizzBuzz as a Term: a binder whose
// body selects among the lambda-encodings of "FizzBuzz"/"Fizz"/"Buzz" via
// Church-boolean divisibility checks, falling through to the input itself.
// The string payloads are not expressible in churchlib's named syntax, so
// the term is assembled directly and only the is-zero/remainder/numeral
// pieces come from the combinator registry.
func fizzbuzzProgram(t *testing.T) Term {
	t.Helper()
	isZero := combinator(t, "ISZERO")
	rem := combinator(t, "REM")

	divisibleBy := func(n int) Term {
		return App{Func: isZero, Arg: App{Func: App{Func: rem, Arg: Var(1)}, Arg: churchlib.ChurchNumeral(n)}}
	}

	body := App{
		Func: App{Func: divisibleBy(15), Arg: Encode([]byte("FizzBuzz"))},
		Arg: App{
			Func: App{Func: divisibleBy(3), Arg: Encode([]byte("Fizz"))},
			Arg: App{
				Func: App{Func: divisibleBy(5), Arg: Encode([]byte("Buzz"))},
				Arg:  Var(1),
			},
		},
	}
	return Abs{Body: body}
}

func runFizzbuzz(t *testing.T, n int) string {
	t.Helper()
	program := ToBits(fizzbuzzProgram(t))
	arg := ToBits(churchlib.ChurchNumeral(n))
	got, err := Run(program, BitsInput{Bits: arg})
	require.NoError(t, err)
	return got
}

func TestFizzbuzzMultipleOfThree(t *testing.T) {
	require.Equal(t, "Fizz", runFizzbuzz(t, 3))
}

func TestFizzbuzzMultipleOfFifteen(t *testing.T) {
	require.Equal(t, "FizzBuzz", runFizzbuzz(t, 15))
}

func TestFizzbuzzMultipleOfFive(t *testing.T) {
	require.Equal(t, "Buzz", runFizzbuzz(t, 5))
}

func TestFizzbuzzPassesThroughNonMultiples(t *testing.T) {
	// Neither branch fires, so the program returns the Church numeral
	// itself: a non-string normal form, rendered back as lambda syntax by
	// Decode's display fallback.
	require.Equal(t, "(λλ21)", runFizzbuzz(t, 1))
	require.Equal(t, "(λλ2(21))", runFizzbuzz(t, 2))
	require.Equal(t, "(λλ2(2(2(21))))", runFizzbuzz(t, 4))
}

func TestRunInflateProgram(t *testing.T) {
	// Tromp's inflate.Blc (http://www.ioccc.org/2012/tromp/inflate.Blc),
	// packed; decompressing it and running it against three bytes
	// reproduces the bit-ASCII output of this repo's own Decompress
	// algorithm.
	compressed := []byte{
		0x44, 0x44, 0x68, 0x16, 0x01, 0x79, 0x1a, 0x00, 0x16, 0x7f, 0xfb, 0xcb, 0xcf, 0xdf,
		0x65, 0xfb, 0xed, 0x0f, 0x3c, 0xe7, 0x3c, 0xf3, 0xc2, 0xd8, 0x20, 0x58, 0x2c, 0x0b,
		0x06, 0xc0,
	}
	program := Decompress(compressed)

	got, err := Run(program, BytesInput{Bytes: []byte{0x01, 0x7a, 0x74}})
	require.NoError(t, err)
	require.Equal(t, "000000010111101001110100", got)
}
