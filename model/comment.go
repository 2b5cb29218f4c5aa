package model

import "time"

//Comment on a task's detail page. Deleting only flags the row.
type Comment struct {
	ID        int64     `json:"id" xorm:"pk autoincr"`
	CreatedAt time.Time `json:"created_at" xorm:"created"`
	Content   string    `json:"content" xorm:"text"`

	AuthorID  int64 `json:"author_id" xorm:"index"`
	TaskID    int64 `json:"task_id" xorm:"index"`
	IsRemoved bool  `json:"is_removed" xorm:"default 0"`
}

//UserCanDelete: the comment author, staff, or the author of the task being
//commented on may remove a comment
func (c *Comment) UserCanDelete(taskAuthorID int64, v Viewer) bool {
	if !v.IsAuthenticated() {
		return false
	}
	return v.ID == c.AuthorID || v.IsStaff || v.ID == taskAuthorID
}
