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

import "iter"

// Path is the ordered list of segments of a parsed path. Segments live in a
// single slice owned by the URI; each one is a Span into the parsed buffer.
//
// Every '/' separates two segments and the leading '/' of an absolute path is
// not part of the first segment, so "/a//b/" holds "a", "", "b" and "".
// An empty path holds no segments.
type Path[C Unit] struct {
	segments []Span[C]
}

// Len returns the number of segments.
func (p *Path[C]) Len() int { return len(p.segments) }

// Head returns the first segment. ok is false for an empty path.
func (p *Path[C]) Head() (Span[C], bool) {
	if len(p.segments) == 0 {
		return Span[C]{}, false
	}
	return p.segments[0], true
}

// Tail returns the last segment. ok is false for an empty path.
func (p *Path[C]) Tail() (Span[C], bool) {
	if len(p.segments) == 0 {
		return Span[C]{}, false
	}
	return p.segments[len(p.segments)-1], true
}

// Segment returns the i-th segment. It panics if i is out of range.
func (p *Path[C]) Segment(i int) Span[C] { return p.segments[i] }

// All iterates over the segments in path order.
func (p *Path[C]) All() iter.Seq2[int, Span[C]] {
	return func(yield func(int, Span[C]) bool) {
		for i, s := range p.segments {
			if !yield(i, s) {
				return
			}
		}
	}
}

// Strings returns a copy of every segment's text.
func (p *Path[C]) Strings() []string {
	if len(p.segments) == 0 {
		return nil
	}
	out := make([]string, len(p.segments))
	for i, s := range p.segments {
		out[i] = s.String()
	}
	return out
}

// appendSegment links a new segment after the current tail.
func (p *Path[C]) appendSegment(s Span[C]) {
	p.segments = append(p.segments, s)
}
