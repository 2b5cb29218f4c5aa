package app

import (
	"Samplepedia/model"
	"testing"
)

func TestCanSetHidingWindow(t *testing.T) {
	const taskAuthorID = 5
	cases := []struct {
		name string
		v    model.Viewer
		want bool
	}{
		{"anonymous", model.Viewer{}, false},
		{"unrelated user", model.Viewer{ID: 9}, false},
		{"solution author only", model.Viewer{ID: 2}, false},
		{"task author", model.Viewer{ID: taskAuthorID}, true},
		{"staff", model.Viewer{ID: 9, IsStaff: true}, true},
	}
	for _, tc := range cases {
		if got := canSetHidingWindow(tc.v, taskAuthorID); got != tc.want {
			t.Fatalf("%s: got %v, want %v", tc.name, got, tc.want)
		}
	}
}
