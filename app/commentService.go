package app

import (
	"Samplepedia/common"
	"Samplepedia/dao"
	"github.com/gin-gonic/gin"
	"strings"
)

func addComment(c *gin.Context) {
	td := &dao.TaskDao{ID: common.StrToInt64(c.DefaultQuery("task_id", "0"))}
	if err := dao.GetSelfAll(td); err != nil {
		setError(c, 403, "no such task")
		return
	}
	content := strings.TrimSpace(c.DefaultPostForm("content", ""))
	if content == "" {
		setError(c, 403, "empty comment")
		return
	}
	cm := dao.NewComment(td.Task, getUserID(c), getUserName(c), content)
	if cm == nil {
		setError(c, 500, "could not save comment")
		return
	}
	c.Set("id", cm.ID)
}

func updateComment(c *gin.Context) {
	cm := dao.GetComment(common.StrToInt64(c.DefaultQuery("id", "0")))
	if cm == nil || cm.IsRemoved {
		setError(c, 403, "no such comment")
		return
	}
	//only the author rewrites their own words
	if cm.AuthorID != getUserID(c) {
		setError(c, 403, "no permission")
		return
	}
	content := strings.TrimSpace(c.DefaultPostForm("content", ""))
	if content == "" {
		setError(c, 403, "empty comment")
		return
	}
	if err := dao.UpdateComment(cm.ID, content); err != nil {
		setError(c, 500, err.Error())
		return
	}
	c.Set("result", "ok")
}

func deleteComment(c *gin.Context) {
	cm := dao.GetComment(common.StrToInt64(c.DefaultQuery("id", "0")))
	if cm == nil || cm.IsRemoved {
		setError(c, 403, "no such comment")
		return
	}
	td := &dao.TaskDao{ID: cm.TaskID}
	taskAuthorID := dao.OneCol(td, "author_id").ToInt64()
	if !cm.UserCanDelete(taskAuthorID, viewer(c)) {
		setError(c, 403, "no permission")
		return
	}
	if err := dao.RemoveComment(cm.ID); err != nil {
		setError(c, 500, err.Error())
		return
	}
	c.Set("result", "ok")
}
