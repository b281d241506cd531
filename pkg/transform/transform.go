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

// Package transform drives the end to end encrypt and decrypt flows over a
// single tiddler: tag validation, the percent encoding shim, the cipher
// pipeline and the checksum round trip. It never touches the enclosing
// document or the filesystem; callers splice the returned tiddler back in
// only after the whole flow has succeeded.
package transform

import (
	"bytes"
	"regexp"
	"strings"

	"github.com/notapipeline/tidlock/pkg/crypto"
	"github.com/notapipeline/tidlock/pkg/tiddler"
	"github.com/notapipeline/tidlock/pkg/types"
)

// encryptedContent matches the persisted ciphertext shape: the checksum
// header on the first line, the hex blob on the lines after it.
var encryptedContent = regexp.MustCompile(`(?s)^Encrypted\(([0-9A-F]{40})\)\n?(.*)$`)

// TagFor returns the tag an operation requires on the tiddler, e.g.
// `Encrypt(journal)` for an encrypt of the tiddler named journal.
func TagFor(op, name string) (string, error) {
	switch op {
	case types.OpEncrypt:
		return "Encrypt(" + name + ")", nil
	case types.OpDecrypt:
		return "Decrypt(" + name + ")", nil
	}
	return "", types.InvalidOperationError{Operation: op}
}

// Apply dispatches to Encrypt or Decrypt based on the operation selector.
// The key words are derived by the caller (normally from the password
// enclave in pkg/cache) so the password itself never reaches this package.
func Apply(op string, t tiddler.Tiddler, name string, key [4]uint32) (tiddler.Tiddler, error) {
	switch op {
	case types.OpEncrypt:
		return Encrypt(t, name, key)
	case types.OpDecrypt:
		return Decrypt(t, name, key)
	}
	return t, types.InvalidOperationError{Operation: op}
}

// Encrypt replaces the tiddler's content with its encrypted form and swaps
// the Encrypt(name) tag for Decrypt(name). The checksum embedded in the
// header is computed over the trimmed plaintext, not the ciphertext, so a
// later decrypt can prove it recovered the original text.
func Encrypt(t tiddler.Tiddler, name string, key [4]uint32) (tiddler.Tiddler, error) {
	tag := "Encrypt(" + name + ")"
	if !t.HasTag(tag) {
		return t, types.MissingTagError{Tag: tag}
	}

	var (
		plain   string = strings.TrimSpace(t.Content)
		content string = "Encrypted(" + crypto.Digest([]byte(plain)) + ")\n" + EncryptString(plain, key)
	)

	return t.SwapTag(tag, "Decrypt("+name+")").WithContent(content), nil
}

// Decrypt parses the persisted ciphertext shape, reverses the cipher
// pipeline and accepts the result only when the recovered plaintext hashes
// to the embedded checksum. On any failure the input tiddler is returned
// unchanged so the caller never splices a partial result.
func Decrypt(t tiddler.Tiddler, name string, key [4]uint32) (tiddler.Tiddler, error) {
	tag := "Decrypt(" + name + ")"
	if !t.HasTag(tag) {
		return t, types.MissingTagError{Tag: tag}
	}

	content := strings.TrimSpace(t.Content)
	m := encryptedContent.FindStringSubmatch(content)
	if m == nil {
		preview := content
		if len(preview) > 40 {
			preview = preview[:40]
		}
		return t, types.FormatError{Value: preview}
	}

	var checksum string = m[1]

	plain, err := DecryptString(m[2], key)
	if err != nil {
		return t, err
	}

	if actual := crypto.Digest([]byte(plain)); actual != checksum {
		return t, types.ChecksumMismatchError{Expected: checksum, Actual: actual}
	}

	return t.SwapTag(tag, "Encrypt("+name+")").WithContent(plain), nil
}

// EncryptString runs the cipher pipeline over plain text: percent encode,
// pack into words, block cipher, unpack, escape control bytes, hex encode.
// The empty string short-circuits to itself on both paths.
func EncryptString(s string, key [4]uint32) string {
	if s == "" {
		return ""
	}

	v := crypto.PackWords([]byte(percentEncode(s)))
	crypto.Encrypt(v, key)
	escaped := crypto.EscapeControl(string(crypto.UnpackWords(v)))
	return crypto.EncodeHex([]byte(escaped))
}

// DecryptString reverses EncryptString: hex decode, unescape, pack,
// decrypt, strip the zero padding introduced by the word packer, percent
// decode. It does not verify the checksum; Decrypt does that with the
// digest taken from the content header.
func DecryptString(blob string, key [4]uint32) (string, error) {
	if blob == "" {
		return "", nil
	}

	raw, err := crypto.DecodeHex(blob)
	if err != nil {
		return "", err
	}

	v := crypto.PackWords([]byte(crypto.UnescapeControl(string(raw))))
	crypto.Decrypt(v, key)
	b := bytes.TrimRight(crypto.UnpackWords(v), "\x00")
	return percentDecode(string(b)), nil
}
