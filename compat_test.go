package credcheck

import (
	"errors"
	"strings"
	"testing"
)

func TestMD5HexKnownAnswers(t *testing.T) {
	cases := []struct {
		user     string
		subrealm string
		password string
		want     string
	}{
		// Reference digests of the exact ISO-8859-1 byte strings
		// "user:subrealm:password".
		{"alice", "admin-realm", "secret", "3e58c381e863ffa99ad80d8b7a5cb95a"},
		{"user", "realm", "password", "ebbc0ff9a121dbb6789bbe5f82174fa0"},
		// ü is a single 0xFC byte under ISO-8859-1, not two UTF-8 bytes.
		{"müller", "console", "topsecret", "29f1a0754e6fb6c1b182c308acab7074"},
	}

	for _, tc := range cases {
		got, err := MD5Hex(tc.user, tc.subrealm, tc.password)
		if err != nil {
			t.Fatalf("MD5Hex(%q, %q, ...) error: %v", tc.user, tc.subrealm, err)
		}
		if got != tc.want {
			t.Fatalf("MD5Hex(%q, %q, ...) = %s, want %s", tc.user, tc.subrealm, got, tc.want)
		}
	}
}

func TestMD5HexFixedWidthLowerCase(t *testing.T) {
	got, err := MD5HexOf("any input at all")
	if err != nil {
		t.Fatalf("MD5HexOf error: %v", err)
	}
	if len(got) != 32 {
		t.Fatalf("digest length = %d, want 32", len(got))
	}
	if got != strings.ToLower(got) {
		t.Fatalf("digest not lower-case: %s", got)
	}
}

func TestMD5HexMatchesSingleArgumentForm(t *testing.T) {
	a, err := MD5Hex("alice", "admin-realm", "secret")
	if err != nil {
		t.Fatalf("MD5Hex error: %v", err)
	}
	b, err := MD5HexOf("alice:admin-realm:secret")
	if err != nil {
		t.Fatalf("MD5HexOf error: %v", err)
	}
	if a != b {
		t.Fatalf("two-form digests differ: %s vs %s", a, b)
	}
}

func TestMD5HexUnencodableInput(t *testing.T) {
	// € has no ISO-8859-1 code point.
	if _, err := MD5HexOf("alice:realm:€uro"); !errors.Is(err, ErrUnencodableInput) {
		t.Fatalf("expected ErrUnencodableInput, got %v", err)
	}
}

func TestMD5Sum(t *testing.T) {
	sum, err := MD5Sum([]byte("alice:admin-realm:secret"))
	if err != nil {
		t.Fatalf("MD5Sum error: %v", err)
	}
	if len(sum) != 16 {
		t.Fatalf("digest size = %d, want 16", len(sum))
	}
}
