/* Apache v2 license
 * Copyright (C) 2020 the gtin-validator authors
 *
 * SPDX-License-Identifier: Apache-2.0
 */

// Package gtin validates GTIN (Global Trade Item Number) codes and computes
// their check digits. It supports GTIN-8, GTIN-12, GTIN-13, and GTIN-14.
//
// A GTIN identifies a trade item within the GS1 system. Its digits break down
// into a GS1 prefix (identifying the issuing member organization or a special
// use, such as restricted circulation or ISBN), a company reference, an item
// reference, and a trailing check digit computed with the GS1 mod-10
// algorithm defined at
// http://www.gs1.org/barcodes/support/check_digit_calculator.
//
// Validation is two-fold. The structural check normalizes the input (strips
// hyphens, trims surrounding whitespace, left-pads with zeros to a fixed
// width) and verifies the check digit. The prefix check rejects codes whose
// leading digits fall in GS1 ranges that are reserved or not assignable,
// based on the GTIN Validation Guide at
// https://www.gs1us.org/resources/standards/gtin-validation-guide.
// Prefixes reserved for future use are allowed.
//
// Invalid codes are an ordinary outcome, reported as false; the only error
// this package produces is ErrInputKind, for input values that are neither
// text nor an integer.
//
// All operations are pure functions over their inputs and are safe for
// concurrent use.
package gtin
