package credcheck

// Property suffixes understood by the verifier. A credential for a
// (realm, user) pair is stored under StorageKey(realm, user) plus one of
// these suffixes.
const (
	// SuffixPlain marks a value stored as raw plain text.
	SuffixPlain = ".password"
	// SuffixObfuscated marks a value stored as base64 of the UTF-8 password bytes.
	SuffixObfuscated = ".b64"
	// SuffixMD5 marks a legacy value stored as the hex MD5 of the ISO-8859-1
	// "user:realm:password" string. External systems read and write it; the
	// verification cascade never consults it. See [MD5Hex].
	SuffixMD5 = ".md5"
	// SuffixSaltedHash marks a value stored as base64 of the 16-byte salt
	// followed by the 32-byte derived key.
	SuffixSaltedHash = ".shash"
)

// StorageKey describes the storagekey operation and its observable behavior.
//
// StorageKey builds the property-key prefix for a realm and optional user:
// the realm alone when user is empty, otherwise realm + "." + user. An empty
// user and an absent user are deliberately indistinguishable.
// StorageKey does not mutate shared global state and can be used concurrently.
func StorageKey(realm, user string) string {
	if user == "" {
		return realm
	}
	return realm + "." + user
}
