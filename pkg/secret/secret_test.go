package secret

import (
	"encoding/hex"
	"regexp"
	"testing"
)

var reHex32 = regexp.MustCompile(`^[a-f0-9]{32}$`)

func TestNewPassword_Format(t *testing.T) {
	got, err := NewPassword()
	if err != nil {
		t.Fatalf("NewPassword: %v", err)
	}
	if !reHex32.MatchString(got) {
		t.Fatalf("not 32-char lowercase hex: %q", got)
	}
	b, err := hex.DecodeString(got)
	if err != nil || len(b) != 16 {
		t.Fatalf("decode = %d bytes, %v", len(b), err)
	}
}

func TestNewHex_Length(t *testing.T) {
	for _, n := range []int{0, 1, 8, 24} {
		got, err := NewHex(n)
		if err != nil {
			t.Fatalf("NewHex(%d): %v", n, err)
		}
		if len(got) != 2*n {
			t.Fatalf("NewHex(%d) length = %d", n, len(got))
		}
	}
}

func TestNewPassword_Unique(t *testing.T) {
	seen := make(map[string]struct{}, 1000)
	for i := 0; i < 1000; i++ {
		p, err := NewPassword()
		if err != nil {
			t.Fatal(err)
		}
		if _, dup := seen[p]; dup {
			t.Fatalf("duplicate password after %d draws", i)
		}
		seen[p] = struct{}{}
	}
}
