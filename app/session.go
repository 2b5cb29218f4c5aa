package app

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const (
	USERNAME_KEY   = "who"
	ID_KEY         = "which"
	SESSION_EXPIRE = 3600 * 24 * 3
)

func isLogin(c *gin.Context) bool {
	return getUserID(c) != 0
}

func getUserID(c *gin.Context) int64 {
	session := sessions.Default(c)
	id := session.Get(ID_KEY)
	if id == nil {
		return 0
	}
	return id.(int64)
}

func getUserName(c *gin.Context) string {
	session := sessions.Default(c)
	username := session.Get(USERNAME_KEY)
	if username == nil {
		return ""
	}
	return username.(string)
}

func setSession(c *gin.Context, val string, id int64) {
	session := sessions.Default(c)
	session.Set(USERNAME_KEY, val)
	session.Set(ID_KEY, id)
	session.Save()
}

func deleteSession(c *gin.Context) {
	session := sessions.Default(c)
	session.Delete(USERNAME_KEY)
	session.Delete(ID_KEY)
	session.Save()
}
