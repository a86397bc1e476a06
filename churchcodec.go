package blc

import (
	"fmt"
	"strings"
)

// bitOfByte maps a raw bit to the Church boolean the source convention uses:
// 0 -> tru, 1 -> fls. Inverted relative to the usual reading; preserved
// exactly because decode's byte assembly undoes it with a bitwise
// complement.
func bitOfByte(bit byte) Term {
	if bit == 0 {
		return Tru
	}
	return Fls
}

// encodeByte renders b as its 8-bit big-endian ASCII bit string, mapped
// bit-by-bit through bitOfByte and collected into a length-8 Church list.
func encodeByte(b byte) Term {
	bits := make([]Term, 8)
	for i := 0; i < 8; i++ {
		bit := (b >> uint(7-i)) & 1
		bits[i] = bitOfByte(bit)
	}
	return FromTerms(bits)
}

// Encode maps a byte string to a Church-list-of-Church-list-of-Church-bool
// term: each byte becomes a list of 8 booleans, and the bytes are collected
// into an outer list. The empty byte string encodes to Fls.
func Encode(input []byte) Term {
	if len(input) == 0 {
		return Fls
	}
	terms := make([]Term, len(input))
	for i, b := range input {
		terms[i] = encodeByte(b)
	}
	return FromTerms(terms)
}

// decodeBitElem reads one element of a byte's bit list. Valid elements have
// shape Abs(Abs(Var(k))) with k in {1, 2}; the bit value is k-1, so Fls
// contributes 0 and Tru contributes 1. That is the opposite of bitOfByte,
// which is what decodeByte's final complement undoes.
func decodeBitElem(t Term) (byte, bool) {
	outer, ok := t.(Abs)
	if !ok {
		return 0, false
	}
	inner, ok := outer.Body.(Abs)
	if !ok {
		return 0, false
	}
	v, ok := inner.Body.(Var)
	if !ok {
		return 0, false
	}
	switch int(v) {
	case 1, 2:
		return byte(int(v) - 1), true
	default:
		return 0, false
	}
}

// decodeByte assembles an 8-element bit list into a byte, big-endian, then
// applies the bitwise complement the source decoder performs to invert
// bitOfByte's inverted convention.
func decodeByte(bitList Term) (byte, error) {
	elems, err := ToTerms(bitList)
	if err != nil {
		return 0, fmt.Errorf("decode_byte: %w", ErrNotATerm)
	}
	var b byte
	for _, elem := range elems {
		bit, ok := decodeBitElem(elem)
		if !ok {
			return 0, fmt.Errorf("decode_byte: non-bit element: %w", ErrNotATerm)
		}
		b = (b << 1) | bit
	}
	return ^b, nil
}

// Decode renders a term as text following the lenient byte/bit-echo/fallback
// rules: a list head that is Fls or Tru echoes a raw '1' or '0' bit; a
// non-empty list whose head is itself a non-empty list is an encoded byte;
// anything else, including a term that isn't even pair-shaped, is a
// non-string normal form, rendered back as lambda syntax and terminating
// the walk. The bit-echo cases are checked before the byte case because
// Fls is also the empty list and would otherwise assemble into a spurious
// 0xFF. Only a malformed element inside a byte-shaped list is a hard
// error: everything else this function sees, it renders.
func Decode(t Term) (string, error) {
	var sb strings.Builder
	cur := t
	for {
		if termEqual(cur, Fls) {
			return sb.String(), nil
		}
		h, tail, err := Uncons(cur)
		if err != nil {
			sb.WriteString("(" + Display(cur) + ")")
			return sb.String(), nil
		}
		switch {
		case termEqual(h, Fls):
			sb.WriteByte('1')
			cur = tail
		case termEqual(h, Tru):
			sb.WriteByte('0')
			cur = tail
		case IsList(cur) && IsList(h):
			b, err := decodeByte(h)
			if err != nil {
				return "", err
			}
			sb.WriteByte(b)
			cur = tail
		default:
			sb.WriteString("(" + Display(cur) + ")")
			return sb.String(), nil
		}
	}
}
