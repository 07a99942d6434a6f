/* Apache v2 license
 * Copyright (C) 2020 the gtin-validator authors
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package gtin

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Canonical fill widths. Validation reads prefix digits from a 14-wide form;
// generation anchors the payload at 13 digits so that the appended check
// digit always yields a 14-character result, regardless of the payload's
// length class.
const (
	validationWidth = 14
	generationWidth = 13
)

// ErrInputKind is returned when a dynamically-typed input value is neither
// text nor an integer. Wrapped errors carry it as their cause.
var ErrInputKind = errors.New("input must be a string or integer representation of a code")

type inputKind int

const (
	kindNone inputKind = iota
	kindText
	kindNumber
)

// Code is a GTIN input value: either the textual form of a code, which may
// contain hyphens and surrounding whitespace, or a non-negative integer. The
// two arms are resolved once, at construction, rather than by runtime type
// inspection inside each operation.
//
// The zero Code is valid to use; it behaves as an empty code and never
// validates.
type Code struct {
	raw  string
	kind inputKind
}

// Text returns the Code for the textual form of a GTIN.
func Text(s string) Code {
	return Code{raw: s, kind: kindText}
}

// Number returns the Code for the numeric form of a GTIN. Its textual form
// is the plain decimal rendering of n, so leading zeros of the logical code
// are supplied by normalization, not by the caller.
func Number(n uint64) Code {
	return Code{raw: strconv.FormatUint(n, 10), kind: kindNumber}
}

// New resolves a dynamically-typed value into a Code. It accepts strings and
// any signed or unsigned integer kind; everything else, including negative
// integers, fails with ErrInputKind.
func New(v interface{}) (Code, error) {
	switch c := v.(type) {
	case string:
		return Text(c), nil
	case uint64:
		return Number(c), nil
	case uint:
		return Number(uint64(c)), nil
	case uint32:
		return Number(uint64(c)), nil
	case uint16:
		return Number(uint64(c)), nil
	case uint8:
		return Number(uint64(c)), nil
	case int64:
		return newSigned(c)
	case int:
		return newSigned(int64(c))
	case int32:
		return newSigned(int64(c))
	case int16:
		return newSigned(int64(c))
	case int8:
		return newSigned(int64(c))
	default:
		return Code{}, errors.Wrapf(ErrInputKind, "unsupported input type %T", v)
	}
}

func newSigned(n int64) (Code, error) {
	if n < 0 {
		return Code{}, errors.Wrapf(ErrInputKind, "negative value %d", n)
	}
	return Number(uint64(n)), nil
}

// canonical returns the cleaned, left-zero-padded form of the code: hyphens
// removed and surrounding whitespace trimmed for the text arm, then padded
// with leading '0's to fill characters. Padding only extends; input already
// at or beyond the fill width is returned unchanged.
func (c Code) canonical(fill int) string {
	s := c.raw
	if c.kind == kindText {
		s = strings.TrimSpace(strings.ReplaceAll(s, "-", ""))
	}
	return zfill(s, fill)
}

func zfill(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
}
