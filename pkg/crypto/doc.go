/*
Package crypto implements the cipher and encoding primitives used to toggle
a tiddler between plaintext and password-encrypted form.

The cipher is corrected block TEA (XXTEA) operating over the whole payload
as a single array of 32-bit little-endian words, keyed by four words packed
from the password. Around the cipher sit the encodings that make the result
safe to embed in a text document: control character escaping, and lowercase
hex wrapped at 64 columns.

None of the functions in this package retain state between calls. The key
words are derived fresh for every operation; callers that need to hold the
password for longer than a single call should seal it in a
`memguard.Enclave` (see the cache package) and derive the key from a
short-lived open of the enclave.
*/
package crypto
