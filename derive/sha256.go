package derive

import "crypto/sha256"

// SHA256Deriver defines a public type used by credcheck APIs.
//
// SHA256Deriver computes sha256(salt || password). This is the derivation
// used by the historical salted-hash format; it is the only deriver that can
// verify credentials written by older deployments. Prefer [PBKDF2Deriver] or
// [Argon2Deriver] when writing fresh credentials that never need to
// interoperate with the historical format.
type SHA256Deriver struct{}

// DeriveKey describes the derivekey operation and its observable behavior.
//
// DeriveKey never fails; the error return exists to satisfy [Deriver].
// DeriveKey does not mutate shared global state and can be used concurrently.
func (SHA256Deriver) DeriveKey(salt, password []byte) ([]byte, error) {
	h := sha256.New()
	h.Write(salt)
	h.Write(password)
	return h.Sum(nil), nil
}
