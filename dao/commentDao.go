package dao

import (
	"Samplepedia/model"
)

type Comment = model.Comment

//GetTaskComments lists the live comments of a task, oldest first
func GetTaskComments(taskID int64) []Comment {
	cs := make([]Comment, 0)
	engine.Where("task_id = ? and is_removed = ?", taskID, false).Asc("created_at").Asc("id").Find(&cs)
	return cs
}

func GetComment(id int64) *Comment {
	c := &Comment{}
	exist, err := engine.ID(id).Get(c)
	if !exist || err != nil {
		return nil
	}
	return c
}

//NewComment inserts a comment and notifies the task author
func NewComment(task *Task, authorID int64, authorName, content string) *Comment {
	c := &Comment{
		TaskID:   task.ID,
		AuthorID: authorID,
		Content:  content,
	}
	if num, err := engine.InsertOne(c); num != 1 || err != nil {
		return nil
	}
	NotifyCommented(task, authorName, authorID)
	return c
}

func UpdateComment(id int64, content string) error {
	_, err := engine.Exec("update comment set content=? where id=?", content, id)
	return err
}

//RemoveComment soft deletes; the row stays for moderation
func RemoveComment(id int64) error {
	_, err := engine.Exec("update comment set is_removed=1 where id=?", id)
	return err
}
