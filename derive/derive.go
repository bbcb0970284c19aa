package derive

// KeySize is the size in bytes of every derived key. Stored salted hashes
// embed exactly this many key bytes after the salt, so all Deriver
// implementations must honor it.
const KeySize = 32

// Deriver defines a public type used by credcheck APIs.
//
// Deriver instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Deriver interface {
	// DeriveKey derives a KeySize-byte key from the salt and the raw
	// password bytes. Implementations must be deterministic and safe for
	// concurrent use.
	DeriveKey(salt, password []byte) ([]byte, error)
}
