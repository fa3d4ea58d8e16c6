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

// outputBuffer is an interface for building the output string during
// recomposition. This abstraction allows the same walk to either build the
// string (stringOutputBuffer) or only measure it (voidOutputBuffer).
type outputBuffer interface {
	// writeRune appends a single rune to the buffer.
	writeRune(r rune)
	// writeString appends a string to the buffer.
	writeString(s string)
	// len returns the number of bytes currently in the buffer.
	len() int
}

// voidOutputBuffer is an implementation of outputBuffer that discards all
// writes and only tracks the length of the would-be output.
type voidOutputBuffer struct {
	length int
}

// writeRune tracks the length of the rune that would have been written.
func (b *voidOutputBuffer) writeRune(r rune) { b.length += len(string(r)) }

// writeString tracks the length of the string that would have been written.
func (b *voidOutputBuffer) writeString(s string) { b.length += len(s) }

// len returns the number of bytes that would have been written to the buffer.
func (b *voidOutputBuffer) len() int { return b.length }

// stringOutputBuffer is an implementation of outputBuffer that uses a
// strings.Builder to efficiently construct the output string.
type stringOutputBuffer struct {
	builder *strings.Builder
}

// writeRune appends a single rune to the underlying strings.Builder.
func (b *stringOutputBuffer) writeRune(r rune) { b.builder.WriteRune(r) }

// writeString appends a string to the underlying strings.Builder.
func (b *stringOutputBuffer) writeString(s string) { b.builder.WriteString(s) }

// len returns the number of bytes currently in the buffer.
func (b *stringOutputBuffer) len() int { return b.builder.Len() }
