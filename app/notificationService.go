package app

import (
	"Samplepedia/common"
	"Samplepedia/dao"
	"github.com/gin-gonic/gin"
)

func notificationItem(n *dao.Notification) common.H {
	item := common.H{
		"id":          n.ID,
		"verb":        n.Verb,
		"actor":       (&dao.UserDao{ID: n.ActorID}).GetName(),
		"description": n.Description,
		"sha256":      n.Sha256,
		"unread":      n.Unread,
		"created_at":  n.CreatedAt.Format(common.TIME_FORMAT),
	}
	target := n.Target()
	if target.IsTask() {
		item["task_id"] = target.ID
	} else if target.IsSolution() {
		item["solution_id"] = target.ID
	}
	return item
}

func getNotifications(c *gin.Context) {
	ns := dao.GetNotifications(getUserID(c))
	data := make([]common.H, len(ns))
	for i := range ns {
		data[i] = notificationItem(&ns[i])
	}
	c.Set("data", data)
}

//getNotificationDropdown feeds the navbar bell with the newest unread few
func getNotificationDropdown(c *gin.Context) {
	ns := dao.GetUnreadNotifications(getUserID(c), dao.NOTIFICATION_DROPDOWN_LIMIT)
	data := make([]common.H, len(ns))
	for i := range ns {
		data[i] = notificationItem(&ns[i])
	}
	c.Set("data", data)
}

//readNotification marks one entry read and hands back its target so the
//client can jump there
func readNotification(c *gin.Context) {
	id := common.StrToInt64(c.DefaultQuery("id", "0"))
	n := dao.MarkNotificationRead(id, getUserID(c))
	if n == nil {
		setError(c, 403, "no such notification")
		return
	}
	c.Set("notification", notificationItem(n))
}

func readAllNotifications(c *gin.Context) {
	dao.MarkAllNotificationsRead(getUserID(c))
	c.Set("result", "ok")
}

func deleteNotification(c *gin.Context) {
	id := common.StrToInt64(c.DefaultQuery("id", "0"))
	dao.DeleteNotification(id, getUserID(c))
	c.Set("result", "ok")
}
