package ui

import (
	"reflect"
	"testing"
)

func TestTruncate(t *testing.T) {
	cases := []struct {
		in    string
		limit int
		want  string
	}{
		{"  Vase  ", 10, "Vase"},
		{"Armor for Field and Tilt", 10, "Armor f..."},
		{"abcdef", 3, "abc"},
		{"abc", 0, "abc"},
	}
	for _, tc := range cases {
		if got := truncate(tc.in, tc.limit); got != tc.want {
			t.Fatalf("truncate(%q, %d) = %q, want %q", tc.in, tc.limit, got, tc.want)
		}
	}
}

func TestTruncateMiddle(t *testing.T) {
	if got := truncateMiddle("  ", 10); got != "" {
		t.Fatalf("truncateMiddle blank = %q, want empty", got)
	}
	if got := truncateMiddle("abcd", 2); got != "ab" {
		t.Fatalf("truncateMiddle limit<=3 = %q, want ab", got)
	}
	src := "https://images.metmuseum.org/CRDImages/ep/web-large/DT1567.jpg"
	got := truncateMiddle(src, 21)
	if len([]rune(got)) != 21 {
		t.Fatalf("got %q (%d runes), want 21", got, len([]rune(got)))
	}
	if got[:10] != "https://im" {
		t.Fatalf("truncateMiddle lost the prefix: %q", got)
	}
	if got[len(got)-10:] != "DT1567.jpg" {
		t.Fatalf("truncateMiddle lost the suffix: %q", got)
	}
}

func TestWrap(t *testing.T) {
	if got := wrap("  ", 10); got != nil {
		t.Fatalf("wrap blank = %#v, want nil", got)
	}
	got := wrap("American, Philadelphia, Pennsylvania 1820-1890", 20)
	want := []string{"American,", "Philadelphia,", "Pennsylvania", "1820-1890"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("wrap = %#v, want %#v", got, want)
	}
	got = wrap("abcdefghij kl", 4)
	want = []string{"abcd", "efgh", "ij", "kl"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("wrap long word = %#v, want %#v", got, want)
	}
}

func TestPadRight(t *testing.T) {
	if got := padRight("ab", 4); got != "ab  " {
		t.Fatalf("padRight = %q, want %q", got, "ab  ")
	}
	if got := padRight("abcdef", 4); got != "abcdef" {
		t.Fatalf("padRight longer = %q, want unchanged", got)
	}
}
