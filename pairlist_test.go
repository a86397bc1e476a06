package blc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConsUnconsRoundTrip(t *testing.T) {
	pair := Cons(Var(9), Var(4))
	require.True(t, IsPair(pair))

	h, tl, err := Uncons(pair)
	require.NoError(t, err)
	require.Equal(t, Var(9), h)
	require.Equal(t, Var(4), tl)
}

func TestHeadTailErrorsOnNonPair(t *testing.T) {
	_, err := Head(Var(1))
	require.ErrorIs(t, err, ErrNotAList)

	_, err = Tail(Var(1))
	require.ErrorIs(t, err, ErrNotAList)
}

func TestFromTermsToTermsRoundTrip(t *testing.T) {
	values := []Term{Var(1), Var(2), Var(3)}
	list := FromTerms(values)
	require.True(t, IsList(list))

	got, err := ToTerms(list)
	require.NoError(t, err)
	require.Equal(t, values, got)
}

func TestFromTermsEmptyIsNil(t *testing.T) {
	list := FromTerms(nil)
	require.True(t, termEqual(list, Nil))
}

func TestLastWalksToEndOfList(t *testing.T) {
	list := FromTerms([]Term{Var(1), Var(2)})
	require.True(t, termEqual(Last(list), Fls))
}

func TestIsListRejectsImproperList(t *testing.T) {
	notAList := Cons(Var(1), Var(2))
	require.False(t, IsList(notAList))
}
