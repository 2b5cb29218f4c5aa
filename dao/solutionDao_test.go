package dao

import (
	"Samplepedia/model"
	"testing"
	"time"
)

func TestToggleSolutionLikeRoundTrip(t *testing.T) {
	openTestEngine(t)
	task := &Task{Sha256: "aa", Difficulty: "easy", AuthorID: 1}
	mustInsert(t, task)
	sol := &Solution{TaskID: task.ID, Title: "walkthrough", Kind: model.Onsite, AuthorID: 1}
	mustInsert(t, sol)

	liked, count := ToggleSolutionLike(7, sol.ID)
	if !liked || count != 1 {
		t.Fatalf("first toggle: got (%v, %d), want (true, 1)", liked, count)
	}
	if !IsSolutionLiked(sol.ID, 7) {
		t.Fatalf("IsSolutionLiked after like: got false, want true")
	}
	if set := LikedSolutionIDSet(7); !set[sol.ID] {
		t.Fatalf("LikedSolutionIDSet after like: id %d missing", sol.ID)
	}

	liked, count = ToggleSolutionLike(7, sol.ID)
	if liked || count != 0 {
		t.Fatalf("second toggle: got (%v, %d), want (false, 0)", liked, count)
	}
	if IsSolutionLiked(sol.ID, 7) {
		t.Fatalf("IsSolutionLiked after unlike: got true, want false")
	}

	liked, count = ToggleSolutionLike(7, sol.ID)
	if !liked || count != 1 {
		t.Fatalf("replayed like: got (%v, %d), want (true, 1)", liked, count)
	}
}

func TestLastReferenceSolutionUndeletable(t *testing.T) {
	openTestEngine(t)
	task := &Task{Sha256: "aa", Difficulty: "easy", AuthorID: 1}
	mustInsert(t, task)
	ref := &Solution{TaskID: task.ID, Title: "walkthrough", Kind: model.Onsite, AuthorID: 1}
	mustInsert(t, ref)
	guest := &Solution{TaskID: task.ID, Title: "community notes", Kind: model.Blog, AuthorID: 2}
	mustInsert(t, guest)

	sd := &SolutionDao{ID: ref.ID, Solution: ref}
	if err := DeleteSolution(sd, task.AuthorID); err == nil {
		t.Fatalf("deleting the only author-owned solution: got nil, want error")
	}
	if exist, _ := engine.ID(ref.ID).Exist(&Solution{}); !exist {
		t.Fatalf("guarded solution was removed from the database")
	}

	//a guest solution never trips the guard, even when it is the only one
	//its author wrote
	if err := checkSolutionDeletable(guest, task.AuthorID); err != nil {
		t.Fatalf("guest solution deletable: got %v, want nil", err)
	}

	//a second author-owned solution lifts the guard from the first
	ref2 := &Solution{TaskID: task.ID, Title: "video session", Kind: model.Video, AuthorID: 1}
	mustInsert(t, ref2)
	if err := checkSolutionDeletable(ref, task.AuthorID); err != nil {
		t.Fatalf("author solution with a sibling: got %v, want nil", err)
	}
}

func TestSearchSolutionsViewerVisibility(t *testing.T) {
	openTestEngine(t)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	task := &Task{Sha256: "aa", Difficulty: "easy", AuthorID: 1}
	mustInsert(t, task)
	mustInsert(t, &Solution{TaskID: task.ID, Title: "walkthrough", Kind: model.Onsite, AuthorID: 1})
	mustInsert(t, &Solution{TaskID: task.ID, Title: "early access", Kind: model.Blog, AuthorID: 2, HiddenUntil: &future})
	mustInsert(t, &Solution{TaskID: task.ID, Title: "published", Kind: model.Paper, AuthorID: 2, HiddenUntil: &past})

	cases := []struct {
		name string
		v    model.Viewer
		want int64
	}{
		{"anonymous", model.Viewer{}, 2},
		{"unrelated user", model.Viewer{ID: 9}, 2},
		{"solution author", model.Viewer{ID: 2}, 3},
		{"task author", model.Viewer{ID: 1}, 3},
		{"staff", model.Viewer{ID: 9, IsStaff: true}, 3},
	}
	for _, tc := range cases {
		total, rows := SearchSolutions(&SolutionFilter{}, 1, tc.v, now)
		if total != tc.want {
			t.Fatalf("%s: total got %d, want %d", tc.name, total, tc.want)
		}
		//the page must hold exactly the counted rows, no post-hoc gaps
		if int64(len(rows)) != tc.want {
			t.Fatalf("%s: page rows got %d, want %d", tc.name, len(rows), tc.want)
		}
	}
}

func TestBumpSolutionViewsAccumulates(t *testing.T) {
	openTestEngine(t)
	task := &Task{Sha256: "aa", Difficulty: "easy", AuthorID: 1}
	mustInsert(t, task)
	sol := &Solution{TaskID: task.ID, Title: "walkthrough", Kind: model.Onsite, AuthorID: 1}
	mustInsert(t, sol)

	sd := &SolutionDao{ID: sol.ID}
	BumpSolutionViews(sd)
	BumpSolutionViews(sd)

	var reloaded Solution
	if exist, err := engine.ID(sol.ID).Get(&reloaded); !exist || err != nil {
		t.Fatalf("reload solution: exist=%v err=%v", exist, err)
	}
	if reloaded.ViewCount != 2 {
		t.Fatalf("view count after two bumps: got %d, want 2", reloaded.ViewCount)
	}
}
