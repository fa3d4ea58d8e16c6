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
	"slices"
	"strings"
	"unsafe"
)

// Unit is the set of code unit types the parser accepts: single bytes,
// UTF-16 code units and full runes. All grammar literals are ASCII, so every
// width yields the same structure for the same characters.
type Unit interface {
	~byte | ~uint16 | ~rune
}

// Span is a half-open view [First, AfterLast) into the buffer that was
// parsed. It never owns or copies the units it refers to, so the buffer must
// outlive every Span taken from it.
//
// The zero Span is null: the component it stands for is absent. A present
// Span may still be empty, e.g. the query of "a?".
type Span[C Unit] struct {
	src       []C
	first     int
	afterLast int
	present   bool
}

func newSpan[C Unit](src []C, first, afterLast int) Span[C] {
	return Span[C]{src: src, first: first, afterLast: afterLast, present: true}
}

// IsNull reports whether the component is absent.
func (s Span[C]) IsNull() bool { return !s.present }

// First returns the offset of the first unit, in code units from the start of the buffer.
func (s Span[C]) First() int { return s.first }

// AfterLast returns the offset just past the last unit.
func (s Span[C]) AfterLast() int { return s.afterLast }

// Len returns the number of code units covered by the span.
func (s Span[C]) Len() int { return s.afterLast - s.first }

// Units returns the covered code units as a sub-slice of the parsed buffer.
// The capacity is clipped so appending to the result cannot overwrite the
// rest of the buffer. It returns nil for a null span.
func (s Span[C]) Units() []C {
	if !s.present {
		return nil
	}
	return s.src[s.first:s.afterLast:s.afterLast]
}

// String returns a copy of the covered text. Narrow units are copied as
// bytes, wide units are converted rune by rune.
func (s Span[C]) String() string {
	units := s.Units()
	if len(units) == 0 {
		return ""
	}
	var zero C
	narrow := unsafe.Sizeof(zero) == 1
	var b strings.Builder
	b.Grow(len(units))
	for _, c := range units {
		if narrow {
			b.WriteByte(byte(c))
		} else {
			b.WriteRune(rune(c))
		}
	}
	return b.String()
}

// Equal reports whether both spans are null, or both are present and cover
// the same sequence of code units.
func (s Span[C]) Equal(o Span[C]) bool {
	if s.present != o.present {
		return false
	}
	return slices.Equal(s.Units(), o.Units())
}

// Compare orders spans lexicographically by their code units. A null span
// sorts before any present span, including an empty one.
func (s Span[C]) Compare(o Span[C]) int {
	switch {
	case !s.present && !o.present:
		return 0
	case !s.present:
		return -1
	case !o.present:
		return 1
	}
	return slices.Compare(s.Units(), o.Units())
}
