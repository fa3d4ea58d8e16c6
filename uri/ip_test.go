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

//nolint:testpackage // This is a white-box test file for an internal package. It needs to be in the same package to test unexported functions.
package uri

import (
	"errors"
	"net/netip"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// TestParseIPv4 tests the IPv4address and dec-octet rules of RFC 3986, Section 3.2.2.
func TestParseIPv4(t *testing.T) {
	t.Parallel()
	tests := []struct {
		input   string
		want    IPv4
		wantErr bool
		errPos  int
	}{
		{input: "127.0.0.1", want: IPv4{127, 0, 0, 1}},
		{input: "0.0.0.0", want: IPv4{0, 0, 0, 0}},
		{input: "255.255.255.255", want: IPv4{255, 255, 255, 255}},
		{input: "192.0.2.16", want: IPv4{192, 0, 2, 16}},
		{input: "256.0.0.1", wantErr: true, errPos: 2},
		{input: "1.2.3.256", wantErr: true, errPos: 8},
		{input: "01.2.3.4", wantErr: true, errPos: 1},
		{input: "1.2.3.04", wantErr: true, errPos: 7},
		{input: "1.2.3", wantErr: true, errPos: 5},
		{input: "1.2.3.4.5", wantErr: true, errPos: 7},
		{input: "1..2.3", wantErr: true, errPos: 2},
		{input: "a.b.c.d", wantErr: true, errPos: 0},
		{input: "", wantErr: true, errPos: 0},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			got, err := ParseIPv4([]byte(tt.input))
			if tt.wantErr {
				pos, ok := ErrorPos(err)
				if !ok || pos != tt.errPos {
					t.Fatalf("ParseIPv4(%q) error = %v, want error at %d", tt.input, err, tt.errPos)
				}
				if !errors.Is(err, ErrMalformedInput) {
					t.Errorf("ParseIPv4(%q) error does not match ErrMalformedInput", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseIPv4(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseIPv4(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

// TestParseIPv6 tests the IPv6address rule of RFC 3986, Section 3.2.2 and the
// zone ids of RFC 6874. Expected values are cross-checked against net/netip.
func TestParseIPv6(t *testing.T) {
	t.Parallel()
	tests := []struct {
		input string
		want  string // netip form, zone included
	}{
		{"::", "::"},
		{"::1", "::1"},
		{"1::", "1::"},
		{"1:2:3:4:5:6:7:8", "1:2:3:4:5:6:7:8"},
		{"2001:DB8::7", "2001:db8::7"},
		{"2001:db8:0:0:8:800:200c:417a", "2001:db8::8:800:200c:417a"},
		{"::1:2:3:4:5:6:7", "0:1:2:3:4:5:6:7"},
		{"1:2:3:4:5:6:7::", "1:2:3:4:5:6:7:0"},
		{"1:2:3::4:5:6:7", "1:2:3:0:4:5:6:7"},
		{"::ffff:192.0.2.128", "::ffff:192.0.2.128"},
		{"1:2:3:4:5:6:1.2.3.4", "1:2:3:4:5:6:102:304"},
		{"::1.2.3.4", "::102:304"},
		{"fe80::1%eth0", "fe80::1%eth0"},
		{"fe80::1%25eth0", "fe80::1%eth0"},
		{"fe80::%25en1", "fe80::%en1"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			got, err := ParseIPv6([]byte(tt.input))
			if err != nil {
				t.Fatalf("ParseIPv6(%q) unexpected error: %v", tt.input, err)
			}
			want := netip.MustParseAddr(tt.want)
			if diff := cmp.Diff(want.As16(), got.Octets); diff != "" {
				t.Errorf("ParseIPv6(%q) octets mismatch (-want +got):\n%s", tt.input, diff)
			}
			if got.Addr() != want {
				t.Errorf("ParseIPv6(%q).Addr() = %v, want %v", tt.input, got.Addr(), want)
			}
			if want.Zone() == "" && !got.Zone.IsNull() {
				t.Errorf("ParseIPv6(%q) has zone %q, want none", tt.input, got.Zone.String())
			}
		})
	}
}

// TestParseIPv6_Errors checks the offset reported for malformed addresses.
func TestParseIPv6_Errors(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		input  string
		errPos int
	}{
		{"empty", "", 0},
		{"single leading colon", ":1", 1},
		{"too few groups", "1:2:3:4:5:6:7", 13},
		{"too many groups", "1:2:3:4:5:6:7:8:9", 15},
		{"eight groups and elision", "::1:2:3:4:5:6:7:8", 15},
		{"two elisions", "1::2::3", 5},
		{"triple colon", "1:::2", 3},
		{"five hex digits", "12345::", 4},
		{"trailing single colon", "1:2:3:4:5:6:7:", 14},
		{"non-hex group", "1:g::", 2},
		{"quad too early", "1:2:3:4:5:1.2.3.4", 10},
		{"quad too late", "1:2:3:4:5:6:7:1.2.3.4", 14},
		{"bad quad", "::1.2.3", 7},
		{"elision after eight groups", "1:2:3:4:5:6:7:8::", 15},
		{"elision standing for no group", "1:2:3:4:5:6:7::8", 15},
		{"elision plus seven groups", "1::3:4:5:6:7:8:9", 14},
		{"empty zone", "fe80::1%", 8},
		{"empty zone after 25", "fe80::1%25", 10},
		{"bad zone char", "fe80::1%e:th0", 9},
		{"trailing garbage", "::1x", 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := ParseIPv6([]byte(tt.input))
			if pos, ok := ErrorPos(err); !ok || pos != tt.errPos {
				t.Errorf("ParseIPv6(%q) error = %v, want error at %d", tt.input, err, tt.errPos)
			}
		})
	}
}

// TestParseIPv6_ZoneSpan checks that the zone borrows from the input.
func TestParseIPv6_ZoneSpan(t *testing.T) {
	t.Parallel()
	text := []rune("fe80::1%25eth0")
	addr, err := ParseIPv6(text)
	if err != nil {
		t.Fatal(err)
	}
	if addr.Zone.First() != 10 || addr.Zone.AfterLast() != 14 {
		t.Errorf("zone span = [%d, %d), want [10, 14)", addr.Zone.First(), addr.Zone.AfterLast())
	}
	if &addr.Zone.Units()[0] != &text[10] {
		t.Error("zone span does not borrow from the input")
	}
}
