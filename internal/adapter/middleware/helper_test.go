package middleware

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"testing"
	"time"
)

func Test_bodyHash(t *testing.T) {
	data := []byte("hello world")
	got := bodyHash(data)

	sum := sha256.Sum256(data)
	want := hex.EncodeToString(sum[:])

	if got != want {
		t.Fatalf("bodyHash mismatch: got %s want %s", got, want)
	}
}

func Test_nowUTC(t *testing.T) {
	u := nowUTC()
	if u.Location() != time.UTC {
		t.Fatalf("nowUTC must be UTC, got %v", u.Location())
	}
	if d := time.Since(u); d < 0 || d > 2*time.Second {
		t.Fatalf("nowUTC too far from now: %v", d)
	}
}

func Test_buildKey(t *testing.T) {
	k := buildKey("POST", "/api/loans", "RAMESH", strings.Repeat("a", 32))
	wantPrefix := "idemp:finbook:post:/api/loans:"
	if !strings.HasPrefix(k, wantPrefix) {
		t.Fatalf("buildKey prefix mismatch: got %q want prefix %q", k, wantPrefix)
	}
	if !strings.Contains(k, ":RAMESH:") || !strings.HasSuffix(k, strings.Repeat("a", 32)) {
		t.Fatalf("buildKey missing user/request segments: %q", k)
	}
}

func Test_validReqID(t *testing.T) {
	valid := []string{
		"3f9a6a1b-3d54-4fbe-8b3a-6b3e8d6b2c88", // UUID v4 (lowercase)
		strings.Repeat("a", 32),                // 32-char lowercase hex
		"3f9a6a1b3d544fbe8b3a6b3e8d6b2c88",     // 32-char lowercase hex (no dashes)
	}
	for _, s := range valid {
		if !validReqID(s) {
			t.Errorf("validReqID should accept %q", s)
		}
	}
	invalid := []string{"", "short", strings.Repeat("g", 32), "not a uuid"}
	for _, s := range invalid {
		if validReqID(s) {
			t.Errorf("validReqID should reject %q", s)
		}
	}
}

func Test_parseRequestAt(t *testing.T) {
	if _, err := parseRequestAt(""); err == nil {
		t.Error("empty accepted")
	}
	if _, err := parseRequestAt("2024-01-05T10:00:00"); err == nil {
		t.Error("naive timestamp accepted")
	}
	if got, err := parseRequestAt("1736123456"); err != nil || got.Unix() != 1736123456 {
		t.Errorf("epoch seconds: %v %v", got, err)
	}
	if got, err := parseRequestAt("1736123456789"); err != nil || got.UnixMilli() != 1736123456789 {
		t.Errorf("epoch ms: %v %v", got, err)
	}
	if got, err := parseRequestAt("2025-09-05T10:00:00+05:30"); err != nil || got.Location() != time.UTC {
		t.Errorf("rfc3339: %v %v", got, err)
	}
}
