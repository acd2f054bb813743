// Package sequence defines the complex sample sequence consumed by every
// engine and the text grammar used to enter one.
//
// A sequence is written as comma-separated tokens, each either a bare real
// number or a parenthesized complex pair:
//
//	1, 2, -1.5
//	(1,0), (0,-1), (2,3)
//
// Whitespace is insignificant and the empty string is the empty sequence.
// Commas inside parentheses do not split tokens.
package sequence
