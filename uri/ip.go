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

import "braces.dev/errtrace"

const (
	ipv6Groups    = 8
	maxH16Digits  = 4
	maxDecOctet   = 255
	ipv4Octets    = 4
	zoneIntroLen  = len("25")
	ipv4TailGroup = 2
)

// decOctet reads one dec-octet at pos: "0", or 1 to 3 digits without a
// leading zero whose value is at most 255. It stops before the digit that
// would break either rule, so the caller rejects that digit.
func decOctet[C Unit](in *parserInput[C], pos, end int) (byte, int, error) {
	b, ok := in.at(pos)
	if pos >= end || !ok || !isASCIIDigit(b) {
		return 0, 0, in.errorAt(pos, "Invalid IPv4 octet")
	}
	if b == '0' {
		return 0, pos + 1, nil
	}
	v := int(b - '0')
	i := pos + 1
	for i < end {
		d, ok := in.at(i)
		if !ok || !isASCIIDigit(d) || v*10+int(d-'0') > maxDecOctet {
			break
		}
		v = v*10 + int(d-'0')
		i++
	}
	return byte(v), i, nil
}

// parseDottedQuad reads dec-octet "." dec-octet "." dec-octet "." dec-octet
// at pos and returns the offset after the last octet.
func parseDottedQuad[C Unit](in *parserInput[C], pos, end int) (IPv4, int, error) {
	var addr IPv4
	i := pos
	for k := range ipv4Octets {
		if k > 0 {
			if b, ok := in.at(i); i >= end || !ok || b != '.' {
				return IPv4{}, 0, in.errorAt(i, "Invalid IPv4 address")
			}
			i++
		}
		octet, next, err := decOctet(in, i, end)
		if err != nil {
			return IPv4{}, 0, err
		}
		addr[k] = octet
		i = next
	}
	return addr, i, nil
}

// isIPv6Stop reports the units that end the address part of an IPv6 literal.
func isIPv6Stop(b byte) bool {
	return b == ']' || b == '%'
}

// parseIPv6 reads an IPv6address with an optional zone id at pos and
// returns the offset after it, where the closing ']' is expected.
func parseIPv6[C Unit](in *parserInput[C], pos, end int) (IPv6[C], int, error) {
	var (
		groups [ipv6Groups]uint16
		n      int
		elide  = -1
		i      = pos
	)

	if b, _ := in.at(i); i < end && b == ':' {
		if c, ok := in.at(i + 1); i+1 >= end || !ok || c != ':' {
			return IPv6[C]{}, 0, in.errorAt(i+1, "Invalid IPv6 address")
		}
		elide = 0
		i += 2
	}

	for i < end {
		if b, ok := in.at(i); ok && isIPv6Stop(b) {
			break
		}
		if elide >= 0 && n == ipv6Groups-1 {
			// "::" must stand for at least one zero group.
			return IPv6[C]{}, 0, in.errorAt(i, "Invalid IPv6 address")
		}

		var v uint32
		j := i
		for j < end && j-i < maxH16Digits {
			b, ok := in.at(j)
			if !ok || !isASCIIHexDigit(b) {
				break
			}
			v = v<<4 | hexValue(b)
			j++
		}
		if j == i {
			return IPv6[C]{}, 0, in.errorAt(i, "Invalid IPv6 address")
		}

		b, ok := in.at(j)
		if j < end && ok && b == '.' {
			// ls32 as an embedded IPv4address.
			if (elide < 0 && n != ipv6Groups-ipv4TailGroup) || (elide >= 0 && n > ipv6Groups-ipv4TailGroup-1) {
				return IPv6[C]{}, 0, in.errorAt(i, "Invalid IPv6 address")
			}
			quad, next, err := parseDottedQuad(in, i, end)
			if err != nil {
				return IPv6[C]{}, 0, err
			}
			groups[n] = uint16(quad[0])<<8 | uint16(quad[1])
			groups[n+1] = uint16(quad[2])<<8 | uint16(quad[3])
			n += ipv4TailGroup
			i = next
			break
		}
		if j < end && ok && isASCIIHexDigit(b) {
			return IPv6[C]{}, 0, in.errorAt(j, "Invalid IPv6 address")
		}

		groups[n] = uint16(v)
		n++
		i = j

		if c, ok := in.at(i); i >= end || !ok || c != ':' {
			break
		}
		if c, ok := in.at(i + 1); i+1 < end && ok && c == ':' {
			if elide >= 0 {
				return IPv6[C]{}, 0, in.errorAt(i+1, "Invalid IPv6 address")
			}
			if n == ipv6Groups {
				return IPv6[C]{}, 0, in.errorAt(i, "Invalid IPv6 address")
			}
			elide = n
			i += 2
			continue
		}
		if n == ipv6Groups || (elide >= 0 && n == ipv6Groups-1) {
			return IPv6[C]{}, 0, in.errorAt(i, "Invalid IPv6 address")
		}
		i++
		if b, ok := in.at(i); i >= end || (ok && isIPv6Stop(b)) {
			return IPv6[C]{}, 0, in.errorAt(i, "Invalid IPv6 address")
		}
	}

	if elide < 0 && n != ipv6Groups {
		return IPv6[C]{}, 0, in.errorAt(i, "Invalid IPv6 address")
	}

	var addr IPv6[C]
	k := 0
	for g := range n {
		if g == elide {
			k += 2 * (ipv6Groups - n)
		}
		addr.Octets[k] = byte(groups[g] >> 8)
		addr.Octets[k+1] = byte(groups[g])
		k += 2
	}

	if b, ok := in.at(i); i < end && ok && b == '%' {
		zone, next, err := parseZoneID(in, i, end)
		if err != nil {
			return IPv6[C]{}, 0, err
		}
		addr.Zone = zone
		i = next
	}
	return addr, i, nil
}

// parseZoneID reads "%" [ "25" ] 1*( unreserved / pct-encoded ) at pos.
func parseZoneID[C Unit](in *parserInput[C], pos, end int) (Span[C], int, error) {
	i := pos + 1
	if d1, ok1 := in.at(i); ok1 && d1 == '2' && i+zoneIntroLen <= end {
		if d2, ok2 := in.at(i + 1); ok2 && d2 == '5' {
			i += zoneIntroLen
		}
	}
	next, err := readClass(in, i, end, isZoneIDChar, func(b byte) bool { return b == ']' }, "Invalid IPv6 zone id")
	if err != nil {
		return Span[C]{}, 0, err
	}
	if next == i {
		return Span[C]{}, 0, in.errorAt(i, "Empty IPv6 zone id")
	}
	return in.span(i, next), next, nil
}

// parseIPvFuture reads "v" 1*HEXDIG "." 1*( unreserved / sub-delims / ":" )
// at pos and returns the offset of the closing ']'.
func parseIPvFuture[C Unit](in *parserInput[C], pos, end int) (int, error) {
	i := pos + 1
	j := scanWhile(in, i, end, isASCIIHexDigit)
	if j == i {
		return 0, in.errorAt(i, "Invalid IPvFuture version")
	}
	if b, ok := in.at(j); j >= end || !ok || b != '.' {
		return 0, in.errorAt(j, "Invalid IPvFuture literal")
	}
	i = j + 1
	j = scanWhile(in, i, end, isIPvFutureChar)
	if j == i {
		return 0, in.errorAt(j, "Invalid IPvFuture address")
	}
	if b, ok := in.at(j); j >= end || !ok || b != ']' {
		return 0, in.errorAt(j, "Unterminated IP literal")
	}
	return j, nil
}

// scanWhile returns the offset of the first unit in [from, to) that is not
// ASCII or not accepted by valid, or to.
func scanWhile[C Unit](in *parserInput[C], from, to int, valid func(byte) bool) int {
	i := from
	for i < to {
		b, ok := in.at(i)
		if !ok || !valid(b) {
			break
		}
		i++
	}
	return i
}

// ParseIPv4 parses text as a complete IPv4address (four dec-octets).
func ParseIPv4[C Unit](text []C) (IPv4, error) {
	in := newParserInput(text, 0, len(text))
	addr, next, err := parseDottedQuad(in, 0, len(text))
	if err != nil {
		return IPv4{}, errtrace.Wrap(err)
	}
	if next != len(text) {
		return IPv4{}, errtrace.Wrap(in.errorAt(next, "Invalid IPv4 address"))
	}
	return addr, nil
}

// ParseIPv6 parses text as a complete IPv6address, without brackets, with an
// optional zone id. The zone span borrows from text.
func ParseIPv6[C Unit](text []C) (IPv6[C], error) {
	in := newParserInput(text, 0, len(text))
	if len(text) == 0 {
		return IPv6[C]{}, errtrace.Wrap(in.errorAt(0, "Invalid IPv6 address"))
	}
	addr, next, err := parseIPv6(in, 0, len(text))
	if err != nil {
		return IPv6[C]{}, errtrace.Wrap(err)
	}
	if next != len(text) {
		return IPv6[C]{}, errtrace.Wrap(in.errorAt(next, "Invalid IPv6 address"))
	}
	return addr, nil
}
