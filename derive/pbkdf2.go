package derive

import (
	"crypto/sha256"
	"errors"

	"golang.org/x/crypto/pbkdf2"
)

// DefaultPBKDF2Iterations is the iteration count used when
// [PBKDF2Deriver.Iterations] is zero.
const DefaultPBKDF2Iterations = 10000

const minPBKDF2Iterations = 1000

// PBKDF2Deriver defines a public type used by credcheck APIs.
//
// PBKDF2Deriver instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type PBKDF2Deriver struct {
	// Iterations is the PBKDF2 iteration count. Zero selects
	// DefaultPBKDF2Iterations; values below the minimum are rejected.
	Iterations int
}

// DeriveKey describes the derivekey operation and its observable behavior.
//
// DeriveKey may return an error when input validation fails.
// DeriveKey does not mutate shared global state and can be used concurrently.
func (d PBKDF2Deriver) DeriveKey(salt, password []byte) ([]byte, error) {
	iter := d.Iterations
	if iter == 0 {
		iter = DefaultPBKDF2Iterations
	}
	if iter < minPBKDF2Iterations {
		return nil, errors.New("pbkdf2 iteration count below minimum")
	}
	return pbkdf2.Key(password, salt, iter, KeySize, sha256.New), nil
}
