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
package types

import "fmt"

// StructuralFormatError signals that the document does not contain the
// expected tagged content region.
type StructuralFormatError struct {
	Reason string
}

func (e StructuralFormatError) Error() string {
	return fmt.Sprintf("document is not in the expected format: %s", e.Reason)
}

// MissingTagError signals that the tiddler does not carry the tag required
// for the requested operation.
type MissingTagError struct {
	Tag string
}

func (e MissingTagError) Error() string {
	return fmt.Sprintf("tiddler is not tagged %q", e.Tag)
}

// FormatError signals that encrypted content does not match the
// `Encrypted(<digest>)` header followed by a hex blob.
type FormatError struct {
	Value string
}

func (e FormatError) Error() string {
	return fmt.Sprintf("content does not look like encrypted data: %q", e.Value)
}

// HexDecodeError signals a malformed hex payload.
type HexDecodeError struct {
	Reason string
}

func (e HexDecodeError) Error() string {
	return fmt.Sprintf("invalid hex payload: %s", e.Reason)
}

// ChecksumMismatchError signals that the decrypted plaintext does not match
// the digest embedded at encryption time. In almost every case this means
// the wrong password was supplied.
type ChecksumMismatchError struct {
	Expected, Actual string
}

func (e ChecksumMismatchError) Error() string {
	return fmt.Sprintf("checksum mismatch (wrong password?): expected %s, got %s", e.Expected, e.Actual)
}

// InvalidOperationError signals an operation selector that is neither
// encrypt nor decrypt.
type InvalidOperationError struct {
	Operation string
}

func (e InvalidOperationError) Error() string {
	return fmt.Sprintf("invalid operation: %q", e.Operation)
}
