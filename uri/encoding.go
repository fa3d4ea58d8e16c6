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

// readPctEncoded checks the pct-encoded triplet whose '%' is at offset pos
// and returns the offset after it. The error points at the first unit that
// is not a hexadecimal digit.
func readPctEncoded[C Unit](in *parserInput[C], pos int) (int, error) {
	for i := pos + 1; i < pos+3; i++ {
		if b, ok := in.at(i); !ok || !isASCIIHexDigit(b) {
			return 0, in.errorAt(i, "Invalid percent encoding")
		}
	}
	return pos + 3, nil
}

// readClass consumes units from pos while they are either allowed by valid
// or well-formed pct-encoded triplets, stopping before end or before the
// first unit for which stop returns true. Any other unit is an error.
func readClass[C Unit](in *parserInput[C], pos, end int, valid, stop func(byte) bool, message string) (int, error) {
	i := pos
	for i < end {
		b, ok := in.at(i)
		switch {
		case ok && stop(b):
			return i, nil
		case ok && b == '%':
			next, err := readPctEncoded(in, i)
			if err != nil {
				return 0, err
			}
			i = next
		case ok && valid(b):
			i++
		default:
			return 0, in.errorAt(i, message)
		}
	}
	return i, nil
}
