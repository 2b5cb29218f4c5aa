package dao

import (
	"Samplepedia/model"
)

type Notification = model.Notification

const NOTIFICATION_DROPDOWN_LIMIT = 5

//notify inserts one notification unless the actor is the recipient; users
//never hear about their own actions
func notify(recipientID, actorID int64, verb string, target model.TargetRef, description, sha256 string) {
	if recipientID == 0 || recipientID == actorID {
		return
	}
	n := &Notification{
		RecipientID: recipientID,
		ActorID:     actorID,
		Verb:        verb,
		Description: description,
		Sha256:      sha256,
		Unread:      true,
	}
	n.SetTarget(target)
	engine.InsertOne(n)
}

func NotifyTaskLiked(task *Task, actorName string, actorID int64) {
	notify(task.AuthorID, actorID, model.VerbLikedTask, model.TaskRef(task.ID),
		actorName+" liked your task", task.Sha256)
}

func NotifySolutionLiked(sol *Solution, sha256, actorName string, actorID int64) {
	notify(sol.AuthorID, actorID, model.VerbLikedSolution, model.SolutionRef(sol.ID),
		actorName+" liked your solution '"+sol.Title+"'", sha256)
}

func NotifySolutionAdded(task *Task, sol *Solution, actorName string, actorID int64) {
	notify(task.AuthorID, actorID, model.VerbAddedSolution, model.SolutionRef(sol.ID),
		actorName+" added a solution to your task", task.Sha256)
}

func NotifyCommented(task *Task, actorName string, actorID int64) {
	notify(task.AuthorID, actorID, model.VerbCommented, model.TaskRef(task.ID),
		actorName+" commented on your task", task.Sha256)
}

//GetNotifications lists a user's notifications, newest first
func GetNotifications(recipientID int64) []Notification {
	ns := make([]Notification, 0)
	engine.Where("recipient_id = ?", recipientID).Desc("created_at").Desc("id").Find(&ns)
	return ns
}

//GetUnreadNotifications returns the newest n unread entries for the dropdown
func GetUnreadNotifications(recipientID int64, n int) []Notification {
	ns := make([]Notification, 0)
	engine.Where("recipient_id = ? and unread = ?", recipientID, true).
		Desc("created_at").Desc("id").Limit(n).Find(&ns)
	return ns
}

func UnreadNotificationCount(recipientID int64) int64 {
	n, _ := engine.Where("recipient_id = ? and unread = ?", recipientID, true).Count(new(Notification))
	return n
}

//MarkNotificationRead flips one entry, scoped to its recipient
func MarkNotificationRead(id, recipientID int64) *Notification {
	n := &Notification{}
	exist, err := engine.Where("id = ? and recipient_id = ?", id, recipientID).Get(n)
	if !exist || err != nil {
		return nil
	}
	if n.Unread {
		engine.Exec("update notification set unread=0 where id=?", n.ID)
		n.Unread = false
	}
	return n
}

func MarkAllNotificationsRead(recipientID int64) {
	engine.Exec("update notification set unread=0 where recipient_id=?", recipientID)
}

func DeleteNotification(id, recipientID int64) {
	engine.Exec("delete from notification where id=? and recipient_id=?", id, recipientID)
}
