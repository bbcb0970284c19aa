// Package derive provides the key-derivation collaborators used by the
// credential verifier to turn a per-credential salt and a plaintext password
// into a fixed 32-byte key.
//
// # Design
//
// Every Deriver is deterministic: the same salt and password always yield the
// same key. The verifier treats the derived key as opaque — it only compares
// it against the key embedded in a stored salted hash. [SHA256Deriver] is the
// historical format producer and the only deriver able to verify blobs written
// by older deployments. [PBKDF2Deriver] and [Argon2Deriver] are stronger
// choices for freshly written credentials.
//
// # What this package must NOT do
//
//   - Import credcheck or any sibling package (no import cycles).
//   - Read configuration stores or perform I/O of any kind.
//   - Generate salts; salt generation belongs to the caller.
package derive
