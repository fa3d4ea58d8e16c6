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

// Package uri parses URI references as defined by RFC 3986 without copying
// the input.
//
// A parse fills a URI whose components are Spans: half-open views into the
// caller's buffer. The buffer must stay alive and unmodified for as long as
// the URI or any Span taken from it is in use. The only data a URI owns is
// its path segment list and, for IP hosts, the structured address; both are
// dropped by FreeMembers.
//
// The parser is generic over the code unit type (bytes, UTF-16 units or
// runes) and reports errors as the offset of the first character the grammar
// rejects. It does not normalize, decode or resolve anything.
package uri

//go:generate go tool errtrace -w .

import (
	"log/slog"
	"slices"
	"unsafe"

	"braces.dev/errtrace"
)

// URI is a parsed URI reference. Every Span that does not apply to the
// parsed input is null; a component that is present but empty, such as the
// query of "a?", is a present zero-length Span.
type URI[C Unit] struct {
	// Scheme is the scheme as written, without the ':'.
	Scheme Span[C]
	// UserInfo is the text before '@' in the authority, without the '@'.
	UserInfo Span[C]
	// HostText is set whenever an authority is present, possibly empty.
	// For IP literals it excludes the brackets.
	HostText Span[C]
	// HostData is the structured host; HostNone for registered names.
	HostData HostData[C]
	// PortText is the port after ':', without the ':'.
	PortText Span[C]
	// Path holds the path segments.
	Path Path[C]
	// Query is the query without the leading '?'.
	Query Span[C]
	// Fragment is the fragment without the leading '#'.
	Fragment Span[C]
	// AbsolutePath is set when there is no authority and the path starts
	// with '/'.
	AbsolutePath bool
}

// ParseEx parses text[first:afterLast] as a URI reference into u.
//
// u is reset first. On failure the returned error is a *ParseError (see
// ErrorPos) and u holds whatever components were recognised before the
// offending character; it is always safe to call FreeMembers on it.
// Offsets in spans and errors count code units from the start of text.
func ParseEx[C Unit](u *URI[C], text []C, first, afterLast int) error {
	if u == nil {
		return errtrace.Wrap(newInvalidArgumentError("nil output URI"))
	}
	if first < 0 || afterLast > len(text) || first > afterLast {
		return errtrace.Wrap(newInvalidArgumentError(
			"range [%d, %d) does not fit a buffer of length %d", first, afterLast, len(text)))
	}
	*u = URI[C]{}
	return errtrace.Wrap(run(u, text, first, afterLast))
}

// Parse parses text up to its first zero code unit, or all of it if it has
// none, as a URI reference into u. See ParseEx.
func Parse[C Unit](u *URI[C], text []C) error {
	var terminator C
	end := slices.Index(text, terminator)
	if end < 0 {
		end = len(text)
	}
	return errtrace.Wrap(ParseEx(u, text, 0, end))
}

// ParseString parses s as a URI reference. The returned spans borrow the
// string's bytes directly; they must not be modified through Units.
func ParseString(s string) (*URI[byte], error) {
	u := new(URI[byte])
	if err := ParseEx(u, unsafe.Slice(unsafe.StringData(s), len(s)), 0, len(s)); err != nil {
		return nil, errtrace.Wrap(err)
	}
	return u, nil
}

// FreeMembers drops everything the URI owns (path segments, structured host
// address) and nulls every span, so the source buffer is no longer
// referenced. It does not free u itself, and calling it again or on a zero
// URI is a no-op.
func (u *URI[C]) FreeMembers() {
	if u == nil {
		return
	}
	*u = URI[C]{}
}

// IsAbsolute reports whether the reference has a scheme.
func (u *URI[C]) IsAbsolute() bool {
	return !u.Scheme.IsNull()
}

// HasAuthority reports whether the reference has an authority ("//" part).
func (u *URI[C]) HasAuthority() bool {
	return !u.HostText.IsNull()
}

// LogValue implements slog.LogValuer. The password part of the userinfo is
// redacted.
func (u *URI[C]) LogValue() slog.Value {
	if u == nil {
		return slog.StringValue("<nil>")
	}
	attrs := make([]slog.Attr, 0, 8)
	addSpan := func(key string, s Span[C]) {
		if !s.IsNull() {
			attrs = append(attrs, slog.String(key, s.String()))
		}
	}
	addSpan("scheme", u.Scheme)
	if !u.UserInfo.IsNull() {
		attrs = append(attrs, slog.String("userinfo", redactUserInfo(u.UserInfo.String())))
	}
	if u.HasAuthority() {
		attrs = append(attrs,
			slog.String("host", u.HostText.String()),
			slog.String("host_kind", u.HostData.Kind().String()),
		)
	}
	addSpan("port", u.PortText)
	if u.Path.Len() > 0 {
		attrs = append(attrs, slog.Any("path", u.Path.Strings()))
	}
	addSpan("query", u.Query)
	addSpan("fragment", u.Fragment)
	return slog.GroupValue(attrs...)
}
