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
	"bytes"
	"testing"
)

func TestPackWords(t *testing.T) {
	tests := []struct {
		name     string
		input    []byte
		expected []uint32
	}{
		{
			name:     "single byte pads to two words",
			input:    []byte{0x41},
			expected: []uint32{0x41, 0},
		},
		{
			name:     "four bytes little endian plus zero word",
			input:    []byte{0x01, 0x02, 0x03, 0x04},
			expected: []uint32{0x04030201, 0},
		},
		{
			name:     "five bytes spill into second word",
			input:    []byte{0x01, 0x02, 0x03, 0x04, 0x05},
			expected: []uint32{0x04030201, 0x05},
		},
		{
			name:     "eight bytes exactly two words",
			input:    []byte{0xff, 0xee, 0xdd, 0xcc, 0xbb, 0xaa, 0x99, 0x88},
			expected: []uint32{0xccddeeff, 0x8899aabb},
		},
		{
			name:     "empty input still yields two words",
			input:    []byte{},
			expected: []uint32{0, 0},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			v := PackWords(test.input)
			if len(v) != len(test.expected) {
				t.Fatalf("Expected %d words but got %d", len(test.expected), len(v))
			}
			for i := range v {
				if v[i] != test.expected[i] {
					t.Errorf("Expected word %d to be %08x but got %08x", i, test.expected[i], v[i])
				}
			}
		})
	}
}

func TestUnpackWordsExpandsEveryWord(t *testing.T) {
	var (
		words    []uint32 = []uint32{0x04030201, 0x05}
		expected []byte   = []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x00, 0x00, 0x00}
	)

	b := UnpackWords(words)
	if !bytes.Equal(b, expected) {
		t.Errorf("Expected %v but got %v", expected, b)
	}
}

func TestPackUnpackRoundTrip(t *testing.T) {
	inputs := [][]byte{
		[]byte("a"),
		[]byte("ab"),
		[]byte("abc"),
		[]byte("abcd"),
		[]byte("abcdefg"),
		[]byte("The quick brown fox jumps over the lazy dog"),
	}

	for _, input := range inputs {
		out := UnpackWords(PackWords(input))
		if !bytes.Equal(out[:len(input)], input) {
			t.Errorf("Expected prefix %q but got %q", input, out[:len(input)])
		}
		for _, c := range out[len(input):] {
			if c != 0 {
				t.Errorf("Expected zero padding after %q but got %v", input, out[len(input):])
				break
			}
		}
	}
}
