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
	"crypto/sha1"
	"fmt"
)

// Digest computes the uppercase hex SHA-1 of b. It is embedded next to the
// ciphertext at encryption time and recomputed after decryption to detect a
// wrong password or corrupted payload.
func Digest(b []byte) string {
	return fmt.Sprintf("%X", sha1.Sum(b))
}
