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

// redactedPassword replaces the password in Redacted and LogValue.
const redactedPassword = "xxxxx"

// recompose writes the reference back out from its components, following
// RFC 3986, Section 5.3.
func recompose[C Unit](u *URI[C], out outputBuffer, redact bool) {
	if !u.Scheme.IsNull() {
		out.writeString(u.Scheme.String())
		out.writeRune(':')
	}

	if u.HasAuthority() {
		out.writeString("//")
		if !u.UserInfo.IsNull() {
			userinfo := u.UserInfo.String()
			if redact {
				userinfo = redactUserInfo(userinfo)
			}
			out.writeString(userinfo)
			out.writeRune('@')
		}
		switch u.HostData.Kind() {
		case HostIPv6, HostIPvFuture:
			out.writeRune('[')
			out.writeString(u.HostText.String())
			out.writeRune(']')
		default:
			out.writeString(u.HostText.String())
		}
		if !u.PortText.IsNull() {
			out.writeRune(':')
			out.writeString(u.PortText.String())
		}
	}

	rooted := u.HasAuthority() || u.AbsolutePath
	for i, segment := range u.Path.All() {
		if i > 0 || rooted {
			out.writeRune('/')
		}
		out.writeString(segment.String())
	}

	if !u.Query.IsNull() {
		out.writeRune('?')
		out.writeString(u.Query.String())
	}
	if !u.Fragment.IsNull() {
		out.writeRune('#')
		out.writeString(u.Fragment.String())
	}
}

// redactUserInfo replaces everything after the first ':' with redactedPassword.
func redactUserInfo(userinfo string) string {
	user, _, hasPassword := strings.Cut(userinfo, ":")
	if !hasPassword {
		return userinfo
	}
	return user + ":" + redactedPassword
}

// String recomposes the reference. For a URI filled by a successful parse
// it returns exactly the parsed text.
func (u *URI[C]) String() string {
	var builder strings.Builder
	builder.Grow(u.CharsRequired())
	recompose(u, &stringOutputBuffer{builder: &builder}, false)
	return builder.String()
}

// CharsRequired returns the length in bytes of String's result without
// building it.
func (u *URI[C]) CharsRequired() int {
	out := &voidOutputBuffer{}
	recompose(u, out, false)
	return out.len()
}

// Redacted is like String but replaces any password in the userinfo with
// "xxxxx".
func (u *URI[C]) Redacted() string {
	var builder strings.Builder
	recompose(u, &stringOutputBuffer{builder: &builder}, true)
	return builder.String()
}
