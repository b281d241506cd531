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
	"encoding/hex"
	"strings"
	"unicode"

	"github.com/notapipeline/tidlock/pkg/types"
)

// hexWrap is the column at which encoded blobs are soft wrapped.
const hexWrap = 64

// EncodeHex renders b as lowercase hex pairs, wrapped at 64 characters per
// line with no trailing newline.
func EncodeHex(b []byte) string {
	h := hex.EncodeToString(b)
	if len(h) <= hexWrap {
		return h
	}

	var lines []string
	for len(h) > hexWrap {
		lines = append(lines, h[:hexWrap])
		h = h[hexWrap:]
	}
	if len(h) > 0 {
		lines = append(lines, h)
	}
	return strings.Join(lines, "\n")
}

// DecodeHex parses a soft-wrapped hex blob back into bytes. All whitespace
// is ignored. Unlike the lenient original, which coerced unparseable pairs
// to zero bytes, a malformed payload is rejected with a HexDecodeError.
func DecodeHex(blob string) ([]byte, error) {
	s := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, blob)

	if len(s)%2 != 0 {
		return nil, types.HexDecodeError{Reason: "odd number of hex digits"}
	}

	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, types.HexDecodeError{Reason: err.Error()}
	}
	return b, nil
}
