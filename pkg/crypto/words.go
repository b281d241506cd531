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

// PackWords groups bytes into little-endian 32-bit words, four bytes per
// word. A trailing partial word is zero-padded in its high byte positions.
// The cipher requires at least two words, so shorter results are extended
// with zero words.
func PackWords(b []byte) []uint32 {
	n := (len(b) + 3) / 4
	if n < 2 {
		n = 2
	}

	v := make([]uint32, n)
	for i := 0; i < len(b); i++ {
		v[i>>2] |= uint32(b[i]) << uint((i&3)*8)
	}
	return v
}

// UnpackWords is the inverse of PackWords. Every word expands to exactly
// four bytes, so zero padding introduced by PackWords persists until the
// caller strips it.
func UnpackWords(v []uint32) []byte {
	b := make([]byte, 0, len(v)*4)
	for _, w := range v {
		b = append(b, byte(w), byte(w>>8), byte(w>>16), byte(w>>24))
	}
	return b
}
