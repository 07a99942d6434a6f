/* Apache v2 license
 * Copyright (C) 2020 the gtin-validator authors
 *
 * SPDX-License-Identifier: Apache-2.0
 */

// Package gs1 implements the GS1 mod-10 check digit algorithm shared by the
// GTIN, GLN, and SSCC identifier families, as defined at
// http://www.gs1.org/barcodes/support/check_digit_calculator.
package gs1

// CheckDigit returns the GS1 check digit for a payload of decimal digit
// characters: the digits of a code without its final check digit.
//
// The payload is weighted left to right with a zero-based index; digits at
// even indexes (including index 0) contribute three times their value, digits
// at odd indexes contribute their value. The check digit is the mod 10
// additive inverse of that total.
//
// Bytes are interpreted as '0'-'9' without validation; gate untrusted input
// with IsDigits first.
func CheckDigit(payload string) int {
	total := 0
	for i := 0; i < len(payload); i++ {
		d := int(payload[i] - '0')
		if i%2 == 1 {
			total += d
		} else {
			total += 3 * d
		}
	}

	// mod 10 additive inverse
	return (10 - (total % 10)) % 10
}

// Verify reports whether the last character of code, interpreted as a digit,
// equals the check digit of the digits preceding it. An empty code is false.
func Verify(code string) bool {
	if code == "" {
		return false
	}
	return int(code[len(code)-1]-'0') == CheckDigit(code[:len(code)-1])
}

// IsDigits reports whether s is non-empty and consists only of the ASCII
// digits '0'-'9'.
func IsDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// PartialSum returns the portion of the GS1 check sum that n contributes,
// given that n's lowest digit is in position d1.
//
// This function allows calculating the checksum of a number in pieces, from
// which the check digit is equal to ((10 - sum(parts)%10) % 10).
//
// d1 is the 1-indexed position of the smallest digit of n. That is, d1 is
// where the "ones place" of n lies within the number containing it, as
// counted from the "ones place" of that number. Do not include the final
// check digit.
//
// Example: if you wanted the check digit C of 01234C, and had the value
// stored in two parts: 01 | 234 | C, you could get the checkSum of the parts
// by considering the "total" number as "01234", in which "234"'s 1's place is
// at d1=1 and "01"'s is at d1=4. Then sum = PartialSum(234, 1) +
// PartialSum(1, 4), and C = ((10-sum%10)%10).
//
// For payloads of odd character length (such as the canonical 13-digit
// generation form), the total of the parts matches the total computed by
// CheckDigit over the equivalent digit string.
func PartialSum(n, d1 int) (sum int) {
	for i := 0; n > 0; i++ {
		sum += (n % 10) * ((((d1 - i) & 1) << 1) | 1)
		n /= 10
	}
	return
}
