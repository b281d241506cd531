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

import "encoding/binary"

// DeriveKey packs a password into the four 32-bit words expected by the
// block cipher. The password bytes are truncated or zero-padded to 16 bytes
// and read little-endian. No key stretching is applied; documents produced
// by this scheme rely on the checksum round trip, not on KDF hardness.
func DeriveKey(password []byte) [4]uint32 {
	var kb [16]byte
	copy(kb[:], password)

	var k [4]uint32
	for i := range k {
		k[i] = binary.LittleEndian.Uint32(kb[i*4:])
	}
	return k
}
