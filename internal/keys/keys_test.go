package keys

import "testing"

func TestChapterKey(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Forest", "forest"},
		{"  Magic Forest  ", "magic_forest"},
		{"waterfall", "waterfall"},
		{"SUMMONING Circle", "summoning_circle"},
	}
	for _, c := range cases {
		if got := ChapterKey(c.in); got != c.want {
			t.Errorf("ChapterKey(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
