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

import (
	"net/netip"
)

// HostKind discriminates the variants of HostData.
type HostKind uint8

const (
	// HostNone means the host is a registered name (or empty). There is no
	// structured data; the text is in URI.HostText. It is the zero value.
	HostNone HostKind = iota
	// HostIPv4 means the host is a dotted-quad IPv4 address.
	HostIPv4
	// HostIPv6 means the host is a bracketed IPv6 literal.
	HostIPv6
	// HostIPvFuture means the host is a bracketed "v" literal, kept as raw text.
	HostIPvFuture
)

func (k HostKind) String() string {
	switch k {
	case HostNone:
		return "reg-name"
	case HostIPv4:
		return "IPv4"
	case HostIPv6:
		return "IPv6"
	case HostIPvFuture:
		return "IPvFuture"
	default:
		return "unknown"
	}
}

// IPv4 is a parsed IPv4 address in network order.
type IPv4 [4]byte

// Addr converts the address to a netip.Addr.
func (a IPv4) Addr() netip.Addr { return netip.AddrFrom4(a) }

// IPv6 is a parsed IPv6 address in network order with its optional zone id.
// Zone is null when the literal has no zone; it never includes the "%" or
// "%25" introducer.
type IPv6[C Unit] struct {
	Octets [16]byte
	Zone   Span[C]
}

// Addr converts the address to a netip.Addr, zone included.
func (a IPv6[C]) Addr() netip.Addr {
	addr := netip.AddrFrom16(a.Octets)
	if !a.Zone.IsNull() {
		addr = addr.WithZone(a.Zone.String())
	}
	return addr
}

// HostData holds the structured form of the host. Exactly one variant is
// populated and Kind says which; the zero value is HostNone.
type HostData[C Unit] struct {
	kind   HostKind
	ip4    *IPv4
	ip6    *IPv6[C]
	future Span[C]
}

func hostIPv4[C Unit](a IPv4) HostData[C] {
	return HostData[C]{kind: HostIPv4, ip4: &a}
}

func hostIPv6[C Unit](a IPv6[C]) HostData[C] {
	return HostData[C]{kind: HostIPv6, ip6: &a}
}

func hostIPvFuture[C Unit](s Span[C]) HostData[C] {
	return HostData[C]{kind: HostIPvFuture, future: s}
}

// Kind returns the active variant.
func (h *HostData[C]) Kind() HostKind { return h.kind }

// IPv4 returns the IPv4 address if the host is an IPv4 address.
func (h *HostData[C]) IPv4() (*IPv4, bool) {
	if h.kind != HostIPv4 {
		return nil, false
	}
	return h.ip4, true
}

// IPv6 returns the IPv6 address if the host is an IPv6 literal.
func (h *HostData[C]) IPv6() (*IPv6[C], bool) {
	if h.kind != HostIPv6 {
		return nil, false
	}
	return h.ip6, true
}

// IPvFuture returns the raw "v" literal text (without brackets) if the host
// is an IPvFuture literal.
func (h *HostData[C]) IPvFuture() (Span[C], bool) {
	if h.kind != HostIPvFuture {
		return Span[C]{}, false
	}
	return h.future, true
}

// Addr returns the host as a netip.Addr when it is an IPv4 or IPv6 address.
func (h *HostData[C]) Addr() (netip.Addr, bool) {
	switch h.kind {
	case HostIPv4:
		return h.ip4.Addr(), true
	case HostIPv6:
		return h.ip6.Addr(), true
	default:
		return netip.Addr{}, false
	}
}

// parseHost parses the host starting at start and ending no later than end,
// the end of the authority. It sets HostText and HostData and returns the
// offset after the host: after the closing ']' of an IP literal, or at the
// first ':' or end otherwise.
func (p *uriParser[C]) parseHost(start, end int) (int, error) {
	if b, ok := p.input.at(start); ok && b == '[' {
		return p.parseIPLiteral(start, end)
	}

	// reg-name, which also covers every IPv4address.
	i, err := readClass(p.input, start, end, isRegNameChar, func(b byte) bool {
		return b == ':'
	}, "Invalid character in host")
	if err != nil {
		return 0, err
	}

	p.uri.HostText = p.input.span(start, i)
	if addr, next, err := parseDottedQuad(p.input, start, i); err == nil && next == i {
		p.uri.HostData = hostIPv4[C](addr)
	}
	return i, nil
}

// parseIPLiteral parses "[" ( IPv6address / IPvFuture ) "]" at start.
// HostText covers the text inside the brackets.
func (p *uriParser[C]) parseIPLiteral(start, end int) (int, error) {
	inner := start + 1
	if inner >= end {
		return 0, p.input.errorAt(inner, "Unterminated IP literal")
	}
	b, ok := p.input.at(inner)

	switch {
	case ok && (b == 'v' || b == 'V'):
		closing, err := parseIPvFuture(p.input, inner, end)
		if err != nil {
			return 0, err
		}
		text := p.input.span(inner, closing)
		p.uri.HostText = text
		p.uri.HostData = hostIPvFuture(text)
		return closing + 1, nil
	case ok && (isASCIIHexDigit(b) || b == ':'):
		addr, closing, err := parseIPv6(p.input, inner, end)
		if err != nil {
			return 0, err
		}
		if c, ok := p.input.at(closing); closing >= end || !ok || c != ']' {
			return 0, p.input.errorAt(closing, "Unterminated IP literal")
		}
		p.uri.HostText = p.input.span(inner, closing)
		p.uri.HostData = hostIPv6(addr)
		return closing + 1, nil
	default:
		return 0, p.input.errorAt(inner, "Invalid IP literal")
	}
}
