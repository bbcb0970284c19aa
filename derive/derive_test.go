package derive

import (
	"bytes"
	"encoding/hex"
	"testing"
)

func testSalt() []byte {
	salt := make([]byte, 16)
	for i := range salt {
		salt[i] = byte(i)
	}
	return salt
}

func TestSHA256DeriverKnownAnswer(t *testing.T) {
	key, err := SHA256Deriver{}.DeriveKey(testSalt(), []byte("hunter2"))
	if err != nil {
		t.Fatalf("DeriveKey error: %v", err)
	}
	if len(key) != KeySize {
		t.Fatalf("key length = %d, want %d", len(key), KeySize)
	}

	want := "e8d1e18507861757b13674f2e9d0e9149ed6667f432ad5b8220f9c049a29dc54"
	if got := hex.EncodeToString(key); got != want {
		t.Fatalf("derived key = %s, want %s", got, want)
	}
}

func TestPBKDF2DeriverKnownAnswer(t *testing.T) {
	key, err := PBKDF2Deriver{}.DeriveKey(testSalt(), []byte("hunter2"))
	if err != nil {
		t.Fatalf("DeriveKey error: %v", err)
	}

	// 10000 iterations of PBKDF2-HMAC-SHA256 over salt 00..0f.
	want := "cef000bef1c43b047de293e1001f10b2f97e6e5dea7cf4b6719fc559b14912c5"
	if got := hex.EncodeToString(key); got != want {
		t.Fatalf("derived key = %s, want %s", got, want)
	}
}

func TestPBKDF2DeriverCustomIterations(t *testing.T) {
	salt := bytes.Repeat([]byte{0xab}, 16)
	key, err := PBKDF2Deriver{Iterations: 4096}.DeriveKey(salt, []byte("correct horse"))
	if err != nil {
		t.Fatalf("DeriveKey error: %v", err)
	}

	want := "ac41f41bc2ba43987111fb355ac91bd35a5ebd262a835013f9c79a7b3ee88c48"
	if got := hex.EncodeToString(key); got != want {
		t.Fatalf("derived key = %s, want %s", got, want)
	}
}

func TestPBKDF2DeriverRejectsWeakIterations(t *testing.T) {
	if _, err := (PBKDF2Deriver{Iterations: 10}).DeriveKey(testSalt(), []byte("pw")); err == nil {
		t.Fatal("expected error for iteration count below minimum")
	}
}

func TestArgon2DeriverDeterministic(t *testing.T) {
	deriver, err := NewArgon2(Argon2Config{
		Memory:      16 * 1024,
		Time:        1,
		Parallelism: 1,
	})
	if err != nil {
		t.Fatalf("NewArgon2 error: %v", err)
	}

	first, err := deriver.DeriveKey(testSalt(), []byte("P@ssw0rd"))
	if err != nil {
		t.Fatalf("DeriveKey error: %v", err)
	}
	if len(first) != KeySize {
		t.Fatalf("key length = %d, want %d", len(first), KeySize)
	}

	second, err := deriver.DeriveKey(testSalt(), []byte("P@ssw0rd"))
	if err != nil {
		t.Fatalf("DeriveKey error: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Fatal("expected identical keys for identical inputs")
	}

	other, err := deriver.DeriveKey(testSalt(), []byte("P@ssw0rd!"))
	if err != nil {
		t.Fatalf("DeriveKey error: %v", err)
	}
	if bytes.Equal(first, other) {
		t.Fatal("expected different keys for different passwords")
	}
}

func TestNewArgon2RejectsWeakConfig(t *testing.T) {
	cases := []struct {
		name string
		cfg  Argon2Config
	}{
		{"low memory", Argon2Config{Memory: 1024, Time: 1, Parallelism: 1}},
		{"zero time", Argon2Config{Memory: 16 * 1024, Time: 0, Parallelism: 1}},
		{"zero parallelism", Argon2Config{Memory: 16 * 1024, Time: 1, Parallelism: 0}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewArgon2(tc.cfg); err == nil {
				t.Fatalf("expected config rejection for %s", tc.name)
			}
		})
	}
}

func TestSaltChangesDerivedKey(t *testing.T) {
	derivers := []struct {
		name string
		d    Deriver
	}{
		{"sha256", SHA256Deriver{}},
		{"pbkdf2", PBKDF2Deriver{Iterations: 1000}},
	}

	otherSalt := bytes.Repeat([]byte{0xff}, 16)
	for _, tc := range derivers {
		t.Run(tc.name, func(t *testing.T) {
			a, err := tc.d.DeriveKey(testSalt(), []byte("same password"))
			if err != nil {
				t.Fatalf("DeriveKey error: %v", err)
			}
			b, err := tc.d.DeriveKey(otherSalt, []byte("same password"))
			if err != nil {
				t.Fatalf("DeriveKey error: %v", err)
			}
			if bytes.Equal(a, b) {
				t.Fatal("expected different keys under different salts")
			}
		})
	}
}
