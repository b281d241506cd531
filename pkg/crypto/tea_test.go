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

import "testing"

func TestEncryptDecryptRoundTrip(t *testing.T) {
	var key [4]uint32 = DeriveKey([]byte("secret"))

	tests := []struct {
		name  string
		words []uint32
	}{
		{name: "minimum two words", words: []uint32{0x12345678, 0x9abcdef0}},
		{name: "three words", words: []uint32{1, 2, 3}},
		{name: "sixteen words", words: []uint32{
			0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15,
		}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			original := make([]uint32, len(test.words))
			copy(original, test.words)

			v := make([]uint32, len(test.words))
			copy(v, test.words)

			Encrypt(v, key)
			changed := false
			for i := range v {
				if v[i] != original[i] {
					changed = true
				}
			}
			if !changed {
				t.Fatal("Expected ciphertext to differ from plaintext")
			}

			Decrypt(v, key)
			for i := range v {
				if v[i] != original[i] {
					t.Errorf("Expected word %d to be %08x but got %08x", i, original[i], v[i])
				}
			}
		})
	}
}

func TestEncryptIsDeterministic(t *testing.T) {
	var (
		key [4]uint32 = DeriveKey([]byte("secret"))
		a   []uint32  = []uint32{10, 20, 30}
		b   []uint32  = []uint32{10, 20, 30}
	)

	Encrypt(a, key)
	Encrypt(b, key)
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("Expected identical ciphertexts but word %d differs: %08x != %08x", i, a[i], b[i])
		}
	}
}

func TestDecryptWithWrongKeyYieldsGarbage(t *testing.T) {
	var (
		right [4]uint32 = DeriveKey([]byte("secret"))
		wrong [4]uint32 = DeriveKey([]byte("wrong"))
		v     []uint32  = []uint32{0xcafebabe, 0xdeadbeef}
	)

	Encrypt(v, right)
	Decrypt(v, wrong)
	if v[0] == 0xcafebabe && v[1] == 0xdeadbeef {
		t.Error("Expected wrong key decryption to corrupt the payload")
	}
}

func TestShortArraysPassThrough(t *testing.T) {
	var key [4]uint32 = DeriveKey([]byte("secret"))

	for _, v := range [][]uint32{nil, {}, {42}} {
		out := Encrypt(v, key)
		for i := range out {
			if out[i] != v[i] {
				t.Errorf("Expected short array to pass through unchanged, got %v", out)
			}
		}
		out = Decrypt(v, key)
		for i := range out {
			if out[i] != v[i] {
				t.Errorf("Expected short array to pass through unchanged, got %v", out)
			}
		}
	}
}

func TestRounds(t *testing.T) {
	tests := []struct {
		n        int
		expected int
	}{
		{n: 2, expected: 32},
		{n: 3, expected: 23},
		{n: 4, expected: 19},
		{n: 52, expected: 7},
		{n: 53, expected: 6},
	}

	for _, test := range tests {
		if q := rounds(test.n); q != test.expected {
			t.Errorf("Expected %d rounds for %d words but got %d", test.expected, test.n, q)
		}
	}
}
