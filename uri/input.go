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

// parserInput is a cursor over the parsed range of the caller's buffer.
// Positions are absolute offsets into text so they can be stored in spans
// and reported in errors as is.
type parserInput[C Unit] struct {
	text []C
	pos  int
	end  int
}

// newParserInput creates a cursor over text[first:afterLast].
func newParserInput[C Unit](text []C, first, afterLast int) *parserInput[C] {
	return &parserInput[C]{text: text, pos: first, end: afterLast}
}

// at returns the ASCII byte at offset i. ok is false past the end of the
// range or for a non-ASCII unit.
func (p *parserInput[C]) at(i int) (byte, bool) {
	if i >= p.end {
		return 0, false
	}
	return asciiOf(p.text[i])
}

// atEnd reports whether offset i is past the parsed range.
func (p *parserInput[C]) atEnd(i int) bool {
	return i >= p.end
}

// peek returns the next byte without advancing. ok is false at the end of
// input; a non-ASCII unit is returned as 0x80 so that no predicate accepts it.
func (p *parserInput[C]) peek() (byte, bool) {
	if p.pos >= p.end {
		return 0, false
	}
	if b, ok := asciiOf(p.text[p.pos]); ok {
		return b, true
	}
	return 0x80, true
}

// next reads the next byte and advances the position.
func (p *parserInput[C]) next() (byte, bool) {
	b, ok := p.peek()
	if ok {
		p.pos++
	}
	return b, ok
}

// startsWith checks if the remaining input starts with the given ASCII string.
func (p *parserInput[C]) startsWith(s string) bool {
	if p.end-p.pos < len(s) {
		return false
	}
	for i := range len(s) {
		if b, ok := p.at(p.pos + i); !ok || b != s[i] {
			return false
		}
	}
	return true
}

// position returns the current offset.
func (p *parserInput[C]) position() int {
	return p.pos
}

// seek moves the cursor to offset i.
func (p *parserInput[C]) seek(i int) {
	p.pos = i
}

// indexFrom returns the offset of the first unit in [from, to) for which stop
// returns true, or to if there is none.
func (p *parserInput[C]) indexFrom(from, to int, stop func(byte) bool) int {
	for i := from; i < to; i++ {
		if b, ok := p.at(i); ok && stop(b) {
			return i
		}
	}
	return to
}

// span returns a present span over text[first:afterLast].
func (p *parserInput[C]) span(first, afterLast int) Span[C] {
	return newSpan(p.text, first, afterLast)
}
