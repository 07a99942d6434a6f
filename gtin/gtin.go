/* Apache v2 license
 * Copyright (C) 2020 the gtin-validator authors
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package gtin

import (
	"strconv"

	"github.com/ribeiroti/gtin-validator/gs1"
)

// IsValid reports whether the code is a valid GTIN-8, GTIN-12, GTIN-13, or
// GTIN-14: its prefix must fall outside the reserved GS1 ranges for its
// length class, and its canonical form must consist only of digits and carry
// a correct trailing check digit.
//
// Invalidity of any kind, including non-digit characters and unrecognized
// lengths, is reported as false, never as an error.
func (c Code) IsValid() bool {
	if !c.prefixAllowed() {
		return false
	}
	return isValidCode(c.canonical(validationWidth))
}

// isValidCode performs the structural and checksum checks over a canonical
// digit string. Length 18 (SSCC) passes the structural check, but no GTIN
// prefix class exists for it, so such codes never reach here from IsValid.
func isValidCode(code string) bool {
	if !gs1.IsDigits(code) {
		return false
	}
	switch len(code) {
	case 8, 12, 13, 14, 18:
	default:
		return false
	}
	return gs1.Verify(code)
}

// WithCheckDigit returns the canonical 13-digit form of the code with its
// GS1 check digit appended, a 14-character string.
//
// It performs no validation: a structurally invalid input yields a
// well-formed but meaningless result.
func (c Code) WithCheckDigit() string {
	payload := c.canonical(generationWidth)
	return payload + strconv.Itoa(gs1.CheckDigit(payload))
}

// IsValidGTIN is the dynamically-typed form of Code.IsValid. It accepts a
// string or integer code and fails with ErrInputKind for any other kind of
// value.
func IsValidGTIN(v interface{}) (bool, error) {
	c, err := New(v)
	if err != nil {
		return false, err
	}
	return c.IsValid(), nil
}

// AddCheckDigit is the dynamically-typed form of Code.WithCheckDigit. It
// accepts a string or integer code and fails with ErrInputKind for any other
// kind of value.
func AddCheckDigit(v interface{}) (string, error) {
	c, err := New(v)
	if err != nil {
		return "", err
	}
	return c.WithCheckDigit(), nil
}
