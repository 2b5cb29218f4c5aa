package model

import (
	"sort"
	"testing"
	"time"
)

var baseTime = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func solutionHiddenUntil(t time.Time) *Solution {
	return &Solution{ID: 1, AuthorID: 10, CreatedAt: baseTime.Add(-time.Hour), HiddenUntil: &t}
}

func TestIsCurrentlyHiddenNil(t *testing.T) {
	s := &Solution{CreatedAt: baseTime}
	for _, now := range []time.Time{baseTime.Add(-time.Hour), baseTime, baseTime.Add(100 * time.Hour)} {
		if s.IsCurrentlyHidden(now) {
			t.Fatalf("solution without hidden_until reported hidden at %v", now)
		}
	}
}

func TestIsCurrentlyHiddenBoundary(t *testing.T) {
	until := baseTime.Add(time.Hour)
	s := solutionHiddenUntil(until)
	if !s.IsCurrentlyHidden(until.Add(-time.Nanosecond)) {
		t.Fatal("expected hidden just before the deadline")
	}
	if s.IsCurrentlyHidden(until) {
		t.Fatal("boundary instant must already be visible")
	}
	if s.IsCurrentlyHidden(until.Add(time.Nanosecond)) {
		t.Fatal("expected visible just after the deadline")
	}
}

//once the deadline passes the solution never hides again
func TestHiddenMonotonicity(t *testing.T) {
	until := baseTime
	s := solutionHiddenUntil(until)
	wasVisible := false
	for i := -3; i <= 3; i++ {
		now := until.Add(time.Duration(i) * time.Minute)
		visible := !s.IsCurrentlyHidden(now)
		if wasVisible && !visible {
			t.Fatalf("solution re-hid at offset %d minutes", i)
		}
		if visible {
			wasVisible = true
		}
	}
}

func TestShouldIncludeRoles(t *testing.T) {
	until := baseTime.Add(time.Hour)
	s := solutionHiddenUntil(until)
	taskAuthorID := int64(20)
	now := baseTime

	cases := []struct {
		name string
		v    Viewer
		want bool
	}{
		{"anonymous", Viewer{}, false},
		{"unrelated user", Viewer{ID: 99}, false},
		{"solution author", Viewer{ID: 10}, true},
		{"task author", Viewer{ID: 20}, true},
		{"staff", Viewer{ID: 99, IsStaff: true}, true},
	}
	for _, tc := range cases {
		if got := s.ShouldInclude(taskAuthorID, tc.v, now); got != tc.want {
			t.Fatalf("%s: ShouldInclude = %v, want %v", tc.name, got, tc.want)
		}
	}

	//after the deadline everyone sees it
	later := until.Add(time.Second)
	for _, tc := range cases {
		if !s.ShouldInclude(taskAuthorID, tc.v, later) {
			t.Fatalf("%s: expected visible after deadline", tc.name)
		}
	}
}

//the badge is never shown to a viewer who cannot see the content
func TestBadgeNeverExceedsInclusion(t *testing.T) {
	until := baseTime.Add(time.Hour)
	s := solutionHiddenUntil(until)
	taskAuthorID := int64(20)
	viewers := []Viewer{
		{}, {ID: 99}, {ID: 10}, {ID: 20}, {ID: 99, IsStaff: true},
	}
	for _, v := range viewers {
		if s.CanSeeHiddenStatus(taskAuthorID, v) && !s.ShouldInclude(taskAuthorID, v, baseTime) {
			t.Fatalf("viewer %+v sees the badge but not the content", v)
		}
	}
}

func TestVisibleDate(t *testing.T) {
	s := &Solution{CreatedAt: baseTime}
	if !s.VisibleDate().Equal(baseTime) {
		t.Fatal("expected created_at as visible date when never hidden")
	}
	until := baseTime.Add(48 * time.Hour)
	s.HiddenUntil = &until
	if !s.VisibleDate().Equal(until) {
		t.Fatal("expected hidden_until as visible date")
	}
}

//an old solution that recently unhid outranks a newer, never-hidden one
func TestShowcaseOrderingByVisibleDate(t *testing.T) {
	now := baseTime
	unhideA := now.Add(-2 * 24 * time.Hour)
	a := &Solution{ID: 1, CreatedAt: now.Add(-365 * 24 * time.Hour), HiddenUntil: &unhideA}
	b := &Solution{ID: 2, CreatedAt: now.Add(-7 * 24 * time.Hour)}

	sols := []*Solution{b, a}
	sort.Slice(sols, func(i, j int) bool {
		di, dj := sols[i].VisibleDate(), sols[j].VisibleDate()
		if !di.Equal(dj) {
			return di.After(dj)
		}
		return sols[i].ID > sols[j].ID
	})
	if sols[0].ID != 1 || sols[1].ID != 2 {
		t.Fatalf("expected order [1 2], got [%d %d]", sols[0].ID, sols[1].ID)
	}
}

func TestSolutionTypeIcon(t *testing.T) {
	if !IsSolutionType(Onsite) || IsSolutionType("podcast") {
		t.Fatal("solution type whitelist broken")
	}
	if SolutionTypeIcon(Video) != "youtube" {
		t.Fatal("wrong icon for video solutions")
	}
	if SolutionTypeIcon("podcast") != "link" {
		t.Fatal("unknown types fall back to the link icon")
	}
}
