package util

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestChunkRunes(t *testing.T) {
	cases := []struct {
		name string
		in   string
		size int
		want int
	}{
		{"empty", "", 120, 0},
		{"shorter than size", "hello", 120, 1},
		{"exact multiple", strings.Repeat("a", 240), 120, 2},
		{"with remainder", strings.Repeat("a", 241), 120, 3},
		{"cjk", strings.Repeat("你好世界", 100), 120, 4},
		{"emoji", strings.Repeat("🙂", 121), 120, 2},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			parts := ChunkRunes(c.in, c.size)
			if len(parts) != c.want {
				t.Fatalf("got %d parts, want %d", len(parts), c.want)
			}
			// 拼接还原, 且每片都是合法utf8
			if got := strings.Join(parts, ""); got != c.in {
				t.Fatalf("join mismatch: %q", got)
			}
			for i, p := range parts {
				if !utf8.ValidString(p) {
					t.Fatalf("part %d not valid utf8", i)
				}
				if i < len(parts)-1 && len([]rune(p)) != c.size {
					t.Fatalf("part %d has %d runes, want %d", i, len([]rune(p)), c.size)
				}
			}
		})
	}
}

func TestChunkRunesBadSize(t *testing.T) {
	parts := ChunkRunes("abc", 0)
	if len(parts) != 1 || parts[0] != "abc" {
		t.Fatalf("got %v", parts)
	}
}

func TestTruncateRunes(t *testing.T) {
	if got := TruncateRunes("hello", 40); got != "hello" {
		t.Fatalf("got %q", got)
	}
	long := strings.Repeat("标", 41)
	if got := TruncateRunes(long, 40); len([]rune(got)) != 40 {
		t.Fatalf("got %d runes", len([]rune(got)))
	}
	if got := TruncateRunes("abc", 0); got != "" {
		t.Fatalf("got %q", got)
	}
}
