package credcheck

import (
	"crypto/rand"
	"encoding/base64"
	"io"

	"github.com/MrEthical07/credcheck/derive"
)

const (
	// SaltLength is the number of random bytes prepended to every stored
	// salted hash.
	SaltLength = 16

	// saltedHashLength is the exact decoded size of a stored salted hash:
	// the salt followed by the derived key. Anything else is corrupt.
	saltedHashLength = SaltLength + derive.KeySize
)

// EncodedCredential pairs a storage key with the encoded value a caller
// should persist under it. This package never writes to the store itself.
type EncodedCredential struct {
	Key   string
	Value string
}

// NewSalt describes the newsalt operation and its observable behavior.
//
// NewSalt returns SaltLength cryptographically random bytes. Each stored
// credential gets a fresh salt; salts are never reused or derived from the
// password.
func NewSalt() ([]byte, error) {
	salt := make([]byte, SaltLength)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, err
	}
	return salt, nil
}

// EncodeObfuscated describes the encodeobfuscated operation and its observable behavior.
//
// EncodeObfuscated returns the base64 obfuscation of the password's UTF-8
// bytes — the value stored under SuffixObfuscated. It is reversible and
// provides no cryptographic protection.
func EncodeObfuscated(password string) string {
	return base64.StdEncoding.EncodeToString([]byte(password))
}

// EncodeSaltedHash describes the encodesaltedhash operation and its observable behavior.
//
// EncodeSaltedHash generates a fresh salt, derives the key through the
// verifier's deriver, and returns base64(salt || key) — the value stored
// under SuffixSaltedHash.
// EncodeSaltedHash may return an error when salt generation or derivation fails.
func (v *Verifier) EncodeSaltedHash(password string) (string, error) {
	salt, err := NewSalt()
	if err != nil {
		return "", err
	}

	key, err := v.deriver.DeriveKey(salt, []byte(password))
	if err != nil {
		return "", err
	}
	if len(key) != derive.KeySize {
		return "", ErrDerivedKeySize
	}

	blob := make([]byte, 0, saltedHashLength)
	blob = append(blob, salt...)
	blob = append(blob, key...)
	return base64.StdEncoding.EncodeToString(blob), nil
}

// NewSaltedCredential describes the newsaltedcredential operation and its observable behavior.
//
// NewSaltedCredential encodes password in the preferred salted-hash form and
// returns it together with the storage key for (realm, user), ready for the
// caller to persist.
func (v *Verifier) NewSaltedCredential(realm, user, password string) (EncodedCredential, error) {
	if realm == "" {
		return EncodedCredential{}, ErrEmptyRealm
	}

	value, err := v.EncodeSaltedHash(password)
	if err != nil {
		return EncodedCredential{}, err
	}

	return EncodedCredential{
		Key:   StorageKey(realm, user) + SuffixSaltedHash,
		Value: value,
	}, nil
}

// NewObfuscatedCredential describes the newobfuscatedcredential operation and its observable behavior.
//
// NewObfuscatedCredential encodes password in the reversible obfuscated form
// and returns it together with the storage key for (realm, user).
func NewObfuscatedCredential(realm, user, password string) (EncodedCredential, error) {
	if realm == "" {
		return EncodedCredential{}, ErrEmptyRealm
	}

	return EncodedCredential{
		Key:   StorageKey(realm, user) + SuffixObfuscated,
		Value: EncodeObfuscated(password),
	}, nil
}
