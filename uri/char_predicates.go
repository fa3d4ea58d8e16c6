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

package uri

import "strings"

// asciiOf narrows a code unit to a byte. ok is false for anything outside
// US-ASCII, which no URI production accepts unencoded.
func asciiOf[C Unit](c C) (b byte, ok bool) {
	u := uint32(c)
	return byte(u), u < 0x80
}

// isASCIILetter checks if a byte is an ASCII letter.
func isASCIILetter(b byte) bool {
	return ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z')
}

// isASCIIDigit checks if a byte is an ASCII digit.
func isASCIIDigit(b byte) bool {
	return '0' <= b && b <= '9'
}

// isASCIIHexDigit checks if a byte is an ASCII hexadecimal digit.
func isASCIIHexDigit(b byte) bool {
	return isASCIIDigit(b) || ('a' <= b && b <= 'f') || ('A' <= b && b <= 'F')
}

// hexValue returns the value of a hexadecimal digit. The caller has already
// checked it with isASCIIHexDigit.
func hexValue(b byte) uint32 {
	switch {
	case isASCIIDigit(b):
		return uint32(b - '0')
	case 'a' <= b && b <= 'f':
		return uint32(b-'a') + 10
	default:
		return uint32(b-'A') + 10
	}
}

// isUnreserved checks if a character is in the unreserved set as defined by RFC 3986.
func isUnreserved(b byte) bool {
	return isASCIILetter(b) || isASCIIDigit(b) || b == '-' || b == '.' || b == '_' || b == '~'
}

// isSubDelim checks if a character is in the sub-delims set of RFC 3986, Section 2.2.
func isSubDelim(b byte) bool {
	return b != 0 && strings.IndexByte("!$&'()*+,;=", b) >= 0
}

// isUnreservedOrSubDelims checks if a character is in the unreserved or
// sub-delims sets as defined by RFC 3986.
func isUnreservedOrSubDelims(b byte) bool {
	return isUnreserved(b) || isSubDelim(b)
}

// isSchemeChar is a predicate for the characters after the first letter of a scheme.
func isSchemeChar(b byte) bool {
	return isASCIILetter(b) || isASCIIDigit(b) || b == '+' || b == '-' || b == '.'
}

// isUserInfoChar is a predicate for the unencoded characters of userinfo.
func isUserInfoChar(b byte) bool {
	return isUnreservedOrSubDelims(b) || b == ':'
}

// isRegNameChar is a predicate for the unencoded characters of reg-name.
func isRegNameChar(b byte) bool {
	return isUnreservedOrSubDelims(b)
}

// isPathChar is a predicate for pchar minus pct-encoded: the characters
// allowed inside a path segment.
func isPathChar(b byte) bool {
	return isUnreservedOrSubDelims(b) || b == ':' || b == '@'
}

// isQueryChar is a predicate for characters allowed in a query or fragment.
func isQueryChar(b byte) bool {
	return isPathChar(b) || b == '/' || b == '?'
}

// isIPvFutureChar is a predicate for the address part of an IPvFuture literal.
func isIPvFutureChar(b byte) bool {
	return isUnreservedOrSubDelims(b) || b == ':'
}

// isZoneIDChar is a predicate for the unencoded characters of an IPv6 zone id (RFC 6874).
func isZoneIDChar(b byte) bool {
	return isUnreserved(b)
}
