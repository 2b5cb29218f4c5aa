package app

import (
	"Samplepedia/common"
	"fmt"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"net/http"
)

func InitRouters() {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	r.LoadHTMLFiles("./dist/spa/index.html")
	r.StaticFS("/statics", http.Dir("./dist/spa/statics"))
	r.StaticFS("/js", http.Dir("./dist/spa/js"))
	r.StaticFS("/css", http.Dir("./dist/spa/css"))
	r.StaticFS("/fonts", http.Dir("./dist/spa/fonts"))
	r.StaticFS("/img", http.Dir("./dist/spa/img"))

	r.GET("/", func(c *gin.Context) {
		c.HTML(200, "index.html", nil)
	})

	store := cookie.NewStore([]byte(common.SessionSecret))
	store.Options(sessions.Options{
		MaxAge: int(SESSION_EXPIRE),
	})

	r.Use(jsonResponse)
	r.Use(sessions.Sessions("ginSession", store))

	initPublicRouters(r)
	initUserRouters(r)
	initStaffRouters(r)
	if err := r.Run(common.Listen); err != nil {
		fmt.Println("server startup failed\n", err.Error())
	}
}

//requests anyone may issue, logged in or not
func initPublicRouters(r *gin.Engine) {
	g := r.Group("/api")
	{
		g.GET("ping", ping)
		g.POST("login", login)
		g.POST("register", register)
		g.GET("autologin", autologin)
		g.GET("showAvatars", showAvatars)
		g.GET("getUserProfile", getUserProfile)
		g.GET("getLeaderboard", getLeaderboard)

		//tasks
		g.GET("getTasks", getTasks)
		g.GET("getTask", getTask)

		//solutions
		g.GET("getSolutions", getSolutions)
		g.GET("getSolution", getSolution)
		g.GET("getShowcase", getShowcase)

		//courses
		g.GET("getCourses", getCourses)
		g.GET("getCourseSamples", getCourseSamples)
	}
}

//requests that need a session
func initUserRouters(r *gin.Engine) {
	g := r.Group("/api")
	g.Use(AuthLogin)
	{
		g.GET("logout", logout)
		g.POST("update", update)
		g.POST("addImg", addImg)
		g.GET("changeAvatar", changeAvatar)

		//tasks
		g.POST("submitTask", submitTask)
		g.POST("updateTask", updateTask)
		g.GET("deleteTask", deleteTask)
		g.GET("toggleTaskLike", toggleTaskLike)

		//solutions
		g.POST("addSolution", addSolution)
		g.POST("updateSolution", updateSolution)
		g.GET("deleteSolution", deleteSolution)
		g.GET("toggleSolutionLike", toggleSolutionLike)

		//comments
		g.POST("addComment", addComment)
		g.POST("updateComment", updateComment)
		g.GET("deleteComment", deleteComment)

		//notifications
		g.GET("getNotifications", getNotifications)
		g.GET("getNotificationDropdown", getNotificationDropdown)
		g.GET("readNotification", readNotification)
		g.GET("readAllNotifications", readAllNotifications)
		g.GET("deleteNotification", deleteNotification)
	}
}

//course curation is staff work, staff flags are the super admin's
func initStaffRouters(r *gin.Engine) {
	g := r.Group("/api")
	g.Use(AuthStaff)
	{
		g.POST("newCourse", newCourse)
		g.POST("newCourseReference", newCourseReference)
		g.POST("linkTaskToCourse", linkTaskToCourse)
	}
	sa := r.Group("/api")
	sa.Use(AuthSuperAdmin)
	{
		sa.GET("setStaff", setStaff)
	}
}
