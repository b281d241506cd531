/*
 *   Copyright 2024 Martin Proffitt <mproffitt@choclab.net>
 *
 *  Licensed under the Apache License, Version 2.0 (the "License");
 *  you may not use this file except in compliance with the License.
 *  You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 *  Unless required by applicable law or agreed to in writing, software
 *  distributed under the License is distributed on an "AS IS" BASIS,
 *  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 *  See the License for the specific language governing permissions and
 *  limitations under the License.
 */
package crypto

import (
	"regexp"
	"strconv"
	"strings"
)

// controlSet lists the bytes that must not appear literally inside a
// delimited text block: NUL, TAB, LF, VT, FF, CR, NBSP, both quotes and
// the exclamation mark used by the escape pattern itself.
var controlSet = [...]byte{0x00, 0x09, 0x0A, 0x0B, 0x0C, 0x0D, 0xA0, '\'', '"', '!'}

var escaped = regexp.MustCompile(`!(\d{1,3})!`)

func isControl(c byte) bool {
	for _, e := range controlSet {
		if c == e {
			return true
		}
	}
	return false
}

// EscapeControl replaces every control set byte of s with the pattern
// `!<decimal>!` so the result can be embedded in a quoted text block.
func EscapeControl(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if c := s[i]; isControl(c) {
			b.WriteByte('!')
			b.WriteString(strconv.Itoa(int(c)))
			b.WriteByte('!')
		} else {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// UnescapeControl reverses EscapeControl by substituting every `!<1-3
// digits>!` with the byte of that value. The substitution is applied to any
// matching substring, escaped or not, which keeps the wire format of
// existing documents even though text that happens to contain the pattern
// cannot round trip.
func UnescapeControl(s string) string {
	return escaped.ReplaceAllStringFunc(s, func(m string) string {
		n, err := strconv.Atoi(m[1 : len(m)-1])
		if err != nil || n > 255 {
			return m
		}
		return string([]byte{byte(n)})
	})
}
