package common

import "testing"

func TestExtractYoutubeID(t *testing.T) {
	cases := []struct {
		url  string
		want string
	}{
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"https://youtu.be/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"https://www.youtube.com/embed/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"https://www.youtube.com/v/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=42s", "dQw4w9WgXcQ"},
		{"https://example.com/writeup", ""},
		{"https://youtube.com/watch?v=short", ""},
		{"", ""},
	}
	for _, tc := range cases {
		if got := ExtractYoutubeID(tc.url); got != tc.want {
			t.Fatalf("ExtractYoutubeID(%q) = %q, want %q", tc.url, got, tc.want)
		}
	}
}
