package model

import "testing"

func TestNormalizeSha256(t *testing.T) {
	if NormalizeSha256("ABCDEF0123") != "abcdef0123" {
		t.Fatal("hashes must be lowercased")
	}
}

func TestTaskUserCanEdit(t *testing.T) {
	task := &Task{ID: 1, AuthorID: 10}
	if task.UserCanEdit(Viewer{}) {
		t.Fatal("anonymous viewer must not edit")
	}
	if task.UserCanEdit(Viewer{ID: 99}) {
		t.Fatal("unrelated user must not edit")
	}
	if !task.UserCanEdit(Viewer{ID: 10}) {
		t.Fatal("author must edit")
	}
	if !task.UserCanEdit(Viewer{ID: 99, IsStaff: true}) {
		t.Fatal("staff must edit")
	}
}

func TestCommentUserCanDelete(t *testing.T) {
	cm := &Comment{ID: 1, AuthorID: 5, TaskID: 2}
	taskAuthorID := int64(10)
	if cm.UserCanDelete(taskAuthorID, Viewer{}) {
		t.Fatal("anonymous viewer must not delete")
	}
	if cm.UserCanDelete(taskAuthorID, Viewer{ID: 99}) {
		t.Fatal("unrelated user must not delete")
	}
	for _, v := range []Viewer{{ID: 5}, {ID: 10}, {ID: 99, IsStaff: true}} {
		if !cm.UserCanDelete(taskAuthorID, v) {
			t.Fatalf("viewer %+v must be allowed to delete", v)
		}
	}
}
