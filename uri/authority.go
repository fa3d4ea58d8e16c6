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

// isAuthorityEnd reports the units that end the authority component.
func isAuthorityEnd(b byte) bool {
	return b == '/' || b == '?' || b == '#'
}

// parseAuthority consumes [ userinfo "@" ] host [ ":" port ] from the
// current position, just after "//".
func (p *uriParser[C]) parseAuthority() error {
	start := p.input.position()
	end := p.input.indexFrom(start, p.input.end, isAuthorityEnd)

	hostStart := start
	if at := p.input.indexFrom(start, end, func(b byte) bool { return b == '@' }); at < end {
		if _, err := readClass(p.input, start, at, isUserInfoChar, func(byte) bool {
			return false
		}, "Invalid character in userinfo"); err != nil {
			// Without userinfo the '@' has to belong to host or port, which
			// cannot hold it either. Report whichever reading got further.
			hostErr := p.parseHostPort(start, end)
			p.uri.HostText, p.uri.HostData, p.uri.PortText = Span[C]{}, HostData[C]{}, Span[C]{}
			return laterError(err, hostErr)
		}
		p.uri.UserInfo = p.input.span(start, at)
		hostStart = at + 1
	}

	if err := p.parseHostPort(hostStart, end); err != nil {
		return err
	}
	p.input.seek(end)
	return nil
}

// parseHostPort consumes host [ ":" port ] in [start, end).
func (p *uriParser[C]) parseHostPort(start, end int) error {
	hostEnd, err := p.parseHost(start, end)
	if err != nil {
		return err
	}
	if hostEnd == end {
		return nil
	}
	if b, ok := p.input.at(hostEnd); !ok || b != ':' {
		return p.input.errorAt(hostEnd, "Invalid character after host")
	}
	portStart := hostEnd + 1
	if i := scanWhile(p.input, portStart, end, isASCIIDigit); i < end {
		return p.input.errorAt(i, "Invalid port character")
	}
	p.uri.PortText = p.input.span(portStart, end)
	return nil
}

// laterError returns the error whose offset is further into the input.
func laterError(a, b error) error {
	if b == nil {
		return a
	}
	posA, _ := ErrorPos(a)
	posB, _ := ErrorPos(b)
	if posB > posA {
		return b
	}
	return a
}
