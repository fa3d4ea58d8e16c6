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

const (
	// authorityPrefixLength is the length of the string "//".
	authorityPrefixLength = 2
)

// uriParser holds the state for a single parsing operation. It writes
// straight into the caller's URI and keeps nothing once run returns.
type uriParser[C Unit] struct {
	uri   *URI[C]
	input *parserInput[C]
}

// run is the main entry point for the URI parser. It parses
// text[first:afterLast] as a URI-reference into u, which must be zeroed.
func run[C Unit](u *URI[C], text []C, first, afterLast int) error {
	p := &uriParser[C]{
		uri:   u,
		input: newParserInput(text, first, afterLast),
	}
	return p.parseSchemeStart()
}

// parseSchemeStart is the initial state of the parser. It decides between
// URI and relative-ref by looking ahead for a scheme followed by ':'.
func (p *uriParser[C]) parseSchemeStart() error {
	start := p.input.position()
	if colon, ok := p.scanScheme(); ok {
		p.uri.Scheme = p.input.span(start, colon)
		p.input.seek(colon + 1)
		return p.parseHierPart()
	}
	// No scheme found, treat as a relative reference.
	return p.parseRelativePart()
}

// scanScheme looks for ALPHA *( ALPHA / DIGIT / "+" / "-" / "." ) ":" at the
// current position and returns the offset of the ':'. The lookahead stops at
// the first unit that cannot be part of a scheme, so '/', '?' and '#' all end
// it before any ':' that follows them.
func (p *uriParser[C]) scanScheme() (int, bool) {
	i := p.input.position()
	if b, ok := p.input.at(i); !ok || !isASCIILetter(b) {
		return 0, false
	}
	for i++; ; i++ {
		b, ok := p.input.at(i)
		switch {
		case !ok:
			return 0, false
		case b == ':':
			return i, true
		case !isSchemeChar(b):
			return 0, false
		}
	}
}

// parseHierPart handles the part of the URI after "scheme:".
func (p *uriParser[C]) parseHierPart() error {
	if p.input.startsWith("//") {
		return p.parseAuthorityAndPath()
	}
	return p.parsePathStart(false)
}

// parseRelativePart handles a relative-ref from its first unit.
func (p *uriParser[C]) parseRelativePart() error {
	if p.input.startsWith("//") {
		// This is a network-path reference like "//example.com/path"
		return p.parseAuthorityAndPath()
	}
	return p.parsePathStart(true)
}

// parseAuthorityAndPath consumes "//" authority path-abempty.
func (p *uriParser[C]) parseAuthorityAndPath() error {
	p.input.seek(p.input.position() + authorityPrefixLength)
	if err := p.parseAuthority(); err != nil {
		return err
	}
	if p.input.startsWith("/") {
		p.input.next()
		return p.parsePath(false)
	}
	return p.parsePathTerminator()
}

// parsePathStart begins a path that is not preceded by an authority:
// path-absolute, path-rootless (after a scheme), path-noscheme (in a
// relative reference) or path-empty.
func (p *uriParser[C]) parsePathStart(noScheme bool) error {
	if p.input.startsWith("/") {
		p.uri.AbsolutePath = true
		p.input.next()
		return p.parsePath(false)
	}
	if b, ok := p.input.peek(); !ok || b == '?' || b == '#' {
		return p.parsePathTerminator()
	}
	return p.parsePath(noScheme)
}

// parsePath consumes path segments from the current position, which is just
// after a leading '/' or at the first unit of a rootless path, up to '?', '#'
// or the end of input. A segment is appended only once its closing delimiter
// is reached, so a failure never leaves a half-read segment behind.
//
// RFC 3986, Section 4.2: a path segment that contains a colon cannot be used
// as the first segment of a relative-path reference; noColon enforces that.
func (p *uriParser[C]) parsePath(noColon bool) error {
	segmentStart := p.input.position()
	for {
		b, ok := p.input.peek()
		if !ok || b == '?' || b == '#' {
			break
		}
		pos := p.input.position()
		switch {
		case b == '/':
			p.uri.Path.appendSegment(p.input.span(segmentStart, pos))
			p.input.next()
			segmentStart = pos + 1
			noColon = false
		case b == '%':
			next, err := readPctEncoded(p.input, pos)
			if err != nil {
				return err
			}
			p.input.seek(next)
		case b == ':' && noColon:
			return p.input.errorAt(pos, "Invalid character in first path segment")
		case isPathChar(b):
			p.input.next()
		default:
			return p.input.errorAt(pos, "Invalid character in path")
		}
	}
	p.uri.Path.appendSegment(p.input.span(segmentStart, p.input.position()))
	return p.parsePathTerminator()
}

// parsePathTerminator dispatches on what follows the path: nothing, a query
// or a fragment.
func (p *uriParser[C]) parsePathTerminator() error {
	b, ok := p.input.next()
	switch {
	case !ok:
		return nil
	case b == '?':
		return p.parseQuery()
	case b == '#':
		return p.parseFragment()
	default:
		return p.input.errorAt(p.input.position()-1, "Invalid character")
	}
}

// parseQuery consumes the query component, after its '?'.
func (p *uriParser[C]) parseQuery() error {
	start := p.input.position()
	end, err := readClass(p.input, start, p.input.end, isQueryChar, func(b byte) bool {
		return b == '#'
	}, "Invalid character in query")
	if err != nil {
		return err
	}
	p.uri.Query = p.input.span(start, end)
	p.input.seek(end)
	if _, ok := p.input.next(); !ok {
		return nil
	}
	return p.parseFragment()
}

// parseFragment consumes the fragment component, after its '#', to the end of input.
func (p *uriParser[C]) parseFragment() error {
	start := p.input.position()
	end, err := readClass(p.input, start, p.input.end, isQueryChar, func(byte) bool {
		return false
	}, "Invalid character in fragment")
	if err != nil {
		return err
	}
	p.uri.Fragment = p.input.span(start, end)
	p.input.seek(end)
	return nil
}
