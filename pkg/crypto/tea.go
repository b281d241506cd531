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

// delta is the TEA key schedule constant.
const delta uint32 = 0x9E3779B9

// rounds returns the number of full passes over an n word array. Longer
// arrays need fewer passes; the minimum array length of two gives 32.
func rounds(n int) int {
	return 6 + 52/n
}

func mx(sum, y, z, p, e uint32, k [4]uint32) uint32 {
	return ((z>>5 ^ y<<2) + (y>>3 ^ z<<4)) ^ ((sum ^ y) + (k[(p^e)&3] ^ z))
}

// Encrypt applies the corrected block TEA transform to v in place and
// returns it. All arithmetic wraps modulo 2^32. Arrays shorter than two
// words are returned untouched; PackWords never produces one.
func Encrypt(v []uint32, k [4]uint32) []uint32 {
	n := len(v)
	if n < 2 {
		return v
	}

	var sum uint32
	z := v[n-1]
	for q := rounds(n); q > 0; q-- {
		sum += delta
		e := (sum >> 2) & 3
		for p := 0; p < n; p++ {
			y := v[(p+1)%n]
			v[p] += mx(sum, y, z, uint32(p), e, k)
			z = v[p]
		}
	}
	return v
}

// Decrypt is the mirror of Encrypt: the same round structure walked
// backwards, subtracting where Encrypt added.
func Decrypt(v []uint32, k [4]uint32) []uint32 {
	n := len(v)
	if n < 2 {
		return v
	}

	y := v[0]
	for sum := uint32(rounds(n)) * delta; sum != 0; sum -= delta {
		e := (sum >> 2) & 3
		for p := n - 1; p >= 0; p-- {
			var z uint32
			if p > 0 {
				z = v[p-1]
			} else {
				z = v[n-1]
			}
			v[p] -= mx(sum, y, z, uint32(p), e, k)
			y = v[p]
		}
	}
	return v
}
