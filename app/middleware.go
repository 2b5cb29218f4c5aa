package app

import (
	"Samplepedia/dao"
	"Samplepedia/model"
	"github.com/gin-gonic/gin"
)

//viewer loads the identity descriptor for the current request
func viewer(c *gin.Context) model.Viewer {
	id := getUserID(c)
	if id == 0 {
		return model.Viewer{}
	}
	ud := &dao.UserDao{ID: id}
	return ud.Viewer()
}

func AuthLogin(c *gin.Context) {
	if !isLogin(c) {
		setError(c, 401, "login required")
		c.Abort()
	}
}

func AuthStaff(c *gin.Context) {
	id := getUserID(c)
	if id == 0 {
		setError(c, 401, "login required")
		c.Abort()
		return
	}
	ud := &dao.UserDao{ID: id}
	if !dao.OneCol(ud, "is_staff").ToBool() {
		setError(c, 403, "no permission")
		c.Abort()
	}
}

func AuthSuperAdmin(c *gin.Context) {
	id := getUserID(c)
	if id == 0 {
		setError(c, 401, "login required")
		c.Abort()
		return
	}
	ud := &dao.UserDao{ID: id}
	if !dao.OneCol(ud, "is_super_admin").ToBool() {
		setError(c, 403, "no permission")
		c.Abort()
	}
}

//jsonResponse packs whatever the handler put into c.Keys into the reply and
//piggybacks the viewer's unread notification count
func jsonResponse(c *gin.Context) {
	c.Next()
	statusCode := c.Writer.Status()
	if statusCode == 404 {
		c.JSON(404, gin.H{"errmsg": "Not Found"})
	} else if _, exist := c.Get("noPack"); !exist {
		if id := getUserID(c); id != 0 {
			c.Set("unread_count", dao.UnreadNotificationCount(id))
		}
		delete(c.Keys, "github.com/gin-contrib/sessions")
		c.JSON(200, c.Keys)
	}
}
