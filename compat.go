package credcheck

import (
	"crypto"
	_ "crypto/md5"
	"encoding/hex"
	"fmt"

	"golang.org/x/text/encoding/charmap"
)

// MD5Hex describes the md5hex operation and its observable behavior.
//
// MD5Hex returns the unsalted MD5 of "user:subrealm:password" as 32
// lower-case hex characters with leading zeros preserved, over the
// ISO-8859-1 bytes of the string. This matches the HA1 convention of
// RFC 2617 digest authentication (and Jetty's stored form) byte for byte;
// it exists only for interoperability and plays no part in the verification
// cascade.
// MD5Hex may return an error when the input is not representable in
// ISO-8859-1 or the digest is unavailable.
func MD5Hex(user, subrealm, password string) (string, error) {
	return MD5HexOf(user + ":" + subrealm + ":" + password)
}

// MD5HexOf describes the md5hexof operation and its observable behavior.
//
// MD5HexOf is the single-argument form of [MD5Hex] for callers that have
// already assembled the colon-delimited string.
func MD5HexOf(full string) (string, error) {
	data, err := charmap.ISO8859_1.NewEncoder().Bytes([]byte(full))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnencodableInput, err)
	}

	sum, err := MD5Sum(data)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(sum), nil
}

// MD5Sum describes the md5sum operation and its observable behavior.
//
// MD5Sum returns the 16-byte MD5 digest of data, or ErrDigestUnavailable if
// the algorithm is not linked into the running binary.
func MD5Sum(data []byte) ([]byte, error) {
	if !crypto.MD5.Available() {
		return nil, ErrDigestUnavailable
	}

	h := crypto.MD5.New()
	h.Write(data)
	return h.Sum(nil), nil
}
