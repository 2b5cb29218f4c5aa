package common

import (
	"encoding/base64"
	"os"
	"testing"
)

func TestRsaRoundTrip(t *testing.T) {
	dir := t.TempDir()
	wd, _ := os.Getwd()
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(wd)

	GenerateRsaKey(2048)
	plain := "hunter22"
	cipher := RSAEncrypt([]byte(plain))
	if cipher == nil {
		t.Fatal("encryption produced nothing")
	}
	got := RSADecrypt(base64.StdEncoding.EncodeToString(cipher))
	if string(got) != plain {
		t.Fatalf("round trip got %q, want %q", got, plain)
	}
	if RSADecrypt("not base64 at all!") != nil {
		t.Fatal("garbage ciphertext must decrypt to nil")
	}
}

func TestGetMD5Password(t *testing.T) {
	a := GetMD5Password("hunter22")
	b := GetMD5Password("hunter22")
	if a != b {
		t.Fatal("hashing must be deterministic")
	}
	if len(a) != 32 {
		t.Fatalf("expected 32 hex chars, got %d", len(a))
	}
	if a == GetMD5OfStr("hunter22") {
		t.Fatal("the salt must change the digest")
	}
	if a == GetMD5Password("hunter23") {
		t.Fatal("different passwords must not collide")
	}
}
