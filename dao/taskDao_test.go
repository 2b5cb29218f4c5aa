package dao

import "testing"

func TestToggleTaskLikeRoundTrip(t *testing.T) {
	openTestEngine(t)
	task := &Task{Sha256: "aa", Difficulty: "easy", AuthorID: 1}
	mustInsert(t, task)

	liked, count := ToggleTaskLike(7, task.ID)
	if !liked || count != 1 {
		t.Fatalf("first toggle: got (%v, %d), want (true, 1)", liked, count)
	}
	if !IsTaskLiked(task.ID, 7) {
		t.Fatalf("IsTaskLiked after like: got false, want true")
	}
	if set := LikedTaskIDSet(7); !set[task.ID] {
		t.Fatalf("LikedTaskIDSet after like: id %d missing", task.ID)
	}

	liked, count = ToggleTaskLike(7, task.ID)
	if liked || count != 0 {
		t.Fatalf("second toggle: got (%v, %d), want (false, 0)", liked, count)
	}
	if IsTaskLiked(task.ID, 7) {
		t.Fatalf("IsTaskLiked after unlike: got true, want false")
	}

	//the round trip must leave the relation exactly as it started, so a
	//replayed like lands on count 1 again
	liked, count = ToggleTaskLike(7, task.ID)
	if !liked || count != 1 {
		t.Fatalf("replayed like: got (%v, %d), want (true, 1)", liked, count)
	}
}

func TestTaskLikeCountIsPerTask(t *testing.T) {
	openTestEngine(t)
	a := &Task{Sha256: "aa", Difficulty: "easy", AuthorID: 1}
	b := &Task{Sha256: "bb", Difficulty: "medium", AuthorID: 1}
	mustInsert(t, a)
	mustInsert(t, b)

	ToggleTaskLike(7, a.ID)
	ToggleTaskLike(8, a.ID)
	ToggleTaskLike(7, b.ID)

	if got := TaskLikeCount(a.ID); got != 2 {
		t.Fatalf("TaskLikeCount(a): got %d, want 2", got)
	}
	if got := TaskLikeCount(b.ID); got != 1 {
		t.Fatalf("TaskLikeCount(b): got %d, want 1", got)
	}
}

func TestBumpTaskViewsAccumulates(t *testing.T) {
	openTestEngine(t)
	task := &Task{Sha256: "aa", Difficulty: "easy", AuthorID: 1}
	mustInsert(t, task)

	td := &TaskDao{ID: task.ID}
	BumpTaskViews(td)
	BumpTaskViews(td)
	BumpTaskViews(td)

	var reloaded Task
	if exist, err := engine.ID(task.ID).Get(&reloaded); !exist || err != nil {
		t.Fatalf("reload task: exist=%v err=%v", exist, err)
	}
	if reloaded.ViewCount != 3 {
		t.Fatalf("view count after three bumps: got %d, want 3", reloaded.ViewCount)
	}
}
