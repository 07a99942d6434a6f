/* Apache v2 license
 * Copyright (C) 2020 the gtin-validator authors
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package gtin

import (
	"fmt"
	"testing"

	"github.com/intel/rsp-sw-toolkit-im-suite-expect"
	"github.com/pkg/errors"
)

func TestIsValid(t *testing.T) {
	type validTest struct {
		name  string
		code  Code
		valid bool
	}

	pass := func(n string, c Code) validTest {
		return validTest{name: n, code: c, valid: true}
	}
	fail := func(n string, c Code) validTest {
		return validTest{name: n, code: c, valid: false}
	}

	for i, tt := range []validTest{
		pass("GTIN-13", Text("4006381333931")),
		pass("GTIN-13 ISBN", Text("9780201379624")),
		pass("GTIN-12", Text("036000291452")),
		pass("GTIN-8", Text("96385074")),
		pass("GTIN-14", Text("40063813339314")),
		pass("hyphenated", Text("4-006381333931")),
		pass("leading space", Text(" 4006381333931")),
		pass("integer", Number(4006381333931)),

		fail("wrong check digit", Text("4006381333930")),
		fail("altered payload digit", Text("4906381333931")),
		fail("GTIN-8 reserved prefix 012", Text("01234567")),
		fail("GTIN-8 reserved prefix 201", Text("20123451")),
		fail("GTIN-13 reserved prefix 290", Text("2901234567896")),
		fail("GTIN-13 reserved prefix 381", Text("3811234567897")),
		fail("GTIN-14 n1 over 8", Text("91234567890121")),
		fail("non-digit character", Text("400638133393a")),
		fail("length 7 has no class", Text("0123456")),
		fail("length 9 has no class", Text("123456789")),
		fail("hyphens count toward the raw length", Text("4-006381-33393-1")),
		fail("SSCC length 18 has no class", Text("000000000000000000")),
		fail("empty", Text("")),
		fail("zero value", Code{}),
		fail("integer drops leading zero", Number(36000291452)),
	} {
		t.Run(fmt.Sprintf("%02d_%s", i, tt.name), func(t *testing.T) {
			w := expect.WrapT(t)
			if tt.valid {
				w.As(tt.code.raw).ShouldBeTrue(tt.code.IsValid())
			} else {
				w.As(tt.code.raw).ShouldBeFalse(tt.code.IsValid())
			}
		})
	}
}

func TestIsValid_checkDigitSensitivity(t *testing.T) {
	// substituting any other digit for the check digit breaks validation
	w := expect.WrapT(t)
	const code = "4006381333931"
	for d := byte('0'); d <= '9'; d++ {
		altered := code[:len(code)-1] + string(d)
		if altered == code {
			continue
		}
		w.As(altered).ShouldBeFalse(Text(altered).IsValid())
	}
}

func TestIsValidCode_lengthClasses(t *testing.T) {
	// the structural layer accepts length 18 (SSCC) even though no prefix
	// class exists for it, so IsValid still rejects such codes
	w := expect.WrapT(t)
	w.As("length 8").ShouldBeTrue(isValidCode("96385074"))
	w.As("length 14").ShouldBeTrue(isValidCode("04006381333931"))
	w.As("length 18").ShouldBeTrue(isValidCode("000000000000000000"))
	w.As("length 10").ShouldBeFalse(isValidCode("0123456789"))
	w.As("non-digit").ShouldBeFalse(isValidCode("0400638133393a"))
	w.As("empty").ShouldBeFalse(isValidCode(""))

	w.As("length 18 end to end").ShouldBeFalse(Text("000000000000000000").IsValid())
}

func TestWithCheckDigit(t *testing.T) {
	for i, tt := range []struct {
		name string
		code Code
		want string
	}{
		{"12-digit payload", Text("400638133393"), "04006381333931"},
		{"13-digit payload", Text("4006381333931"), "40063813339314"},
		{"integer payload", Number(400638133393), "04006381333931"},
		{"hyphenated payload", Text("4-0063813-3393"), "04006381333931"},
		{"short payload", Text("123"), "00000000001236"},
		{"zero", Number(0), "00000000000000"},
	} {
		t.Run(fmt.Sprintf("%02d_%s", i, tt.name), func(t *testing.T) {
			w := expect.WrapT(t)
			got := tt.code.WithCheckDigit()
			w.StopOnMismatch().As(tt.name).ShouldBeEqual(len(got), 14)
			w.As(tt.name).ShouldBeEqual(got, tt.want)
		})
	}
}

func TestWithCheckDigit_noTruncation(t *testing.T) {
	// payloads already wider than the generation width are kept whole
	w := expect.WrapT(t)
	got := Text("12345678901234").WithCheckDigit()
	w.ShouldBeEqual(got, "123456789012347")
}

func TestWithCheckDigit_roundTrip(t *testing.T) {
	// a 13-digit payload generates a 14-character code, which is an accepted
	// length class, so the result validates
	w := expect.WrapT(t)
	generated := Text("4006381333931").WithCheckDigit()
	w.As(generated).ShouldBeTrue(Text(generated).IsValid())

	// a 12-digit payload is padded to 13 before generation, so it round-trips
	// through the same 14-character form
	generated = Text("400638133393").WithCheckDigit()
	w.As(generated).ShouldBeTrue(Text(generated).IsValid())
}

func TestIsValidGTIN(t *testing.T) {
	w := expect.WrapT(t)

	for _, v := range []interface{}{
		"4006381333931",
		4006381333931,
		int64(4006381333931),
		uint64(4006381333931),
	} {
		ok, err := IsValidGTIN(v)
		w.As(v).ShouldSucceed(err)
		w.As(v).ShouldBeTrue(ok)
	}

	ok, err := IsValidGTIN("4006381333930")
	w.ShouldSucceed(err)
	w.ShouldBeFalse(ok)

	for _, v := range []interface{}{
		3.14,
		[]string{"4006381333931"},
		nil,
		-4006381333931,
	} {
		ok, err := IsValidGTIN(v)
		w.As(fmt.Sprintf("%T", v)).ShouldFail(err)
		w.ShouldBeEqual(errors.Cause(err), ErrInputKind)
		w.ShouldBeFalse(ok)
	}
}

func TestAddCheckDigit(t *testing.T) {
	w := expect.WrapT(t)

	got, err := AddCheckDigit("400638133393")
	w.ShouldSucceed(err)
	w.ShouldBeEqual(got, "04006381333931")

	got, err = AddCheckDigit(400638133393)
	w.ShouldSucceed(err)
	w.ShouldBeEqual(got, "04006381333931")

	got, err = AddCheckDigit(3.14)
	w.ShouldFail(err)
	w.ShouldBeEqual(errors.Cause(err), ErrInputKind)
	w.ShouldBeEqual(got, "")
}
