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
package cache

import (
	"fmt"
	"sync"

	"github.com/awnumar/memguard"

	"github.com/notapipeline/tidlock/pkg/crypto"
)

// SecretCache holds the password for the lifetime of one invocation.
//
// The password is prompted exactly once and sealed into a memguard enclave
// immediately; the plaintext buffer passed to SetPassword is wiped by the
// seal. Key words for the block cipher are derived from a short-lived open
// of the enclave so the password spends as little time as possible in
// unprotected memory.
type SecretCache struct {
	password *memguard.Enclave
}

var (
	secretCache *SecretCache
	lock        = &sync.Mutex{}
)

// Instance gets the current instance or creates a new secret cache object.
var Instance = instance

func instance() *SecretCache {
	lock.Lock()
	defer lock.Unlock()
	if secretCache == nil {
		secretCache = &SecretCache{}
	}
	return secretCache
}

// Reset the secret cache
func Reset() {
	lock.Lock()
	defer lock.Unlock()
	secretCache = nil
}

// SetPassword seals the password into locked memory. The input slice is
// wiped as a side effect and must not be reused by the caller.
func (c *SecretCache) SetPassword(password []byte) {
	c.password = memguard.NewEnclave(password)
}

// HasPassword reports whether a password has been stored this run.
func (c *SecretCache) HasPassword() bool {
	return c.password != nil
}

// KeyWords derives the four cipher key words from the sealed password.
// The enclave stays intact so the key can be derived again within the
// same run; the opened buffer is destroyed before returning.
func (c *SecretCache) KeyWords() ([4]uint32, error) {
	var k [4]uint32
	if c.password == nil {
		return k, fmt.Errorf("no password has been set")
	}

	buf, err := c.password.Open()
	if err != nil {
		return k, fmt.Errorf("failed to open password enclave: %w", err)
	}
	defer buf.Destroy()

	return crypto.DeriveKey(buf.Bytes()), nil
}
