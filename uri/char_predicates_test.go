/*
Copyright 2025 Trident Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

//nolint:testpackage // This is a white-box test file for an internal package. It needs to be in the same package to test unexported functions.
package uri

import (
	"testing"
)

// TestAsciiOf tests the narrowing of every code unit width to ASCII.
func TestAsciiOf(t *testing.T) {
	if b, ok := asciiOf(byte('a')); !ok || b != 'a' {
		t.Errorf("asciiOf(byte 'a') = %q, %v", b, ok)
	}
	if _, ok := asciiOf(byte(0xC3)); ok {
		t.Error("asciiOf(byte 0xC3) should not be ASCII")
	}
	if b, ok := asciiOf(uint16('Z')); !ok || b != 'Z' {
		t.Errorf("asciiOf(uint16 'Z') = %q, %v", b, ok)
	}
	// 0x0161 narrows to 'a' as a byte and must still be rejected.
	if _, ok := asciiOf(uint16(0x0161)); ok {
		t.Error("asciiOf(uint16 0x0161) should not be ASCII")
	}
	if _, ok := asciiOf('é'); ok {
		t.Error("asciiOf('é') should not be ASCII")
	}
	if _, ok := asciiOf(rune(-1)); ok {
		t.Error("asciiOf(-1) should not be ASCII")
	}
}

// TestIsASCIILetter tests the isASCIILetter function for compliance with RFC 3986, Appendix A (ALPHA).
func TestIsASCIILetter(t *testing.T) {
	tests := []struct {
		name  string
		input byte
		want  bool
	}{
		// RFC 3986, Appendix A: ALPHA = %x41-5A / %x61-7A
		{"lowercase 'a'", 'a', true},
		{"lowercase 'z'", 'z', true},
		{"uppercase 'A'", 'A', true},
		{"uppercase 'Z'", 'Z', true},
		{"before 'A'", '@', false},
		{"after 'Z'", '[', false},
		{"before 'a'", '`', false},
		{"after 'z'", '{', false},
		{"digit '0'", '0', false},
		{"symbol '-'", '-', false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isASCIILetter(tt.input); got != tt.want {
				t.Errorf("isASCIILetter('%c') = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

// TestIsASCIIHexDigit tests the isASCIIHexDigit and hexValue functions (HEXDIG).
func TestIsASCIIHexDigit(t *testing.T) {
	tests := []struct {
		input byte
		want  bool
		value uint32
	}{
		{'0', true, 0},
		{'9', true, 9},
		{'a', true, 10},
		{'f', true, 15},
		{'A', true, 10},
		{'F', true, 15},
		{'g', false, 0},
		{'G', false, 0},
		{':', false, 0},
		{'/', false, 0},
	}
	for _, tt := range tests {
		if got := isASCIIHexDigit(tt.input); got != tt.want {
			t.Errorf("isASCIIHexDigit('%c') = %v, want %v", tt.input, got, tt.want)
		}
		if tt.want {
			if got := hexValue(tt.input); got != tt.value {
				t.Errorf("hexValue('%c') = %d, want %d", tt.input, got, tt.value)
			}
		}
	}
}

// TestCharacterClasses checks each component predicate against the RFC 3986 ABNF.
func TestCharacterClasses(t *testing.T) {
	tests := []struct {
		name    string
		pred    func(byte) bool
		valid   string
		invalid string
	}{
		{
			name:    "unreserved",
			pred:    isUnreserved,
			valid:   "azAZ09-._~",
			invalid: "!$&'()*+,;=:@/?#[]% \"<>\\^`{|}",
		},
		{
			name:    "sub-delims",
			pred:    isSubDelim,
			valid:   "!$&'()*+,;=",
			invalid: "aZ0-._~:@/?#[]%\x00",
		},
		{
			name:    "scheme",
			pred:    isSchemeChar,
			valid:   "azAZ09+-.",
			invalid: "_~!:/?#@%",
		},
		{
			name:    "userinfo",
			pred:    isUserInfoChar,
			valid:   "aZ0-._~!$&'()*+,;=:",
			invalid: "@/?#[]% ",
		},
		{
			name:    "reg-name",
			pred:    isRegNameChar,
			valid:   "aZ0-._~!$&'()*+,;=",
			invalid: ":@/?#[]% ",
		},
		{
			name:    "path",
			pred:    isPathChar,
			valid:   "aZ0-._~!$&'()*+,;=:@",
			invalid: "/?#[]% ",
		},
		{
			name:    "query and fragment",
			pred:    isQueryChar,
			valid:   "aZ0-._~!$&'()*+,;=:@/?",
			invalid: "#[]% ",
		},
		{
			name:    "IPvFuture",
			pred:    isIPvFutureChar,
			valid:   "aZ0-._~!$&'()*+,;=:",
			invalid: "@/?#[]% ",
		},
		{
			name:    "zone id",
			pred:    isZoneIDChar,
			valid:   "aZ0-._~",
			invalid: "!$&'()*+,;=:@/?#[]% ",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := range len(tt.valid) {
				if !tt.pred(tt.valid[i]) {
					t.Errorf("%s predicate rejects %q", tt.name, tt.valid[i])
				}
			}
			for i := range len(tt.invalid) {
				if tt.pred(tt.invalid[i]) {
					t.Errorf("%s predicate accepts %q", tt.name, tt.invalid[i])
				}
			}
			for b := 0x80; b <= 0xFF; b++ {
				if tt.pred(byte(b)) {
					t.Errorf("%s predicate accepts non-ASCII byte %#x", tt.name, b)
				}
			}
		})
	}
}
