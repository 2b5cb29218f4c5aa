package app

import (
	"Samplepedia/common"
	"Samplepedia/dao"
	"github.com/gin-gonic/gin"
	"math/rand"
	"os"
	"path"
	"strconv"
	"time"
)

func ping(c *gin.Context) {
	c.Set("ping", "pong")
}

func autologin(c *gin.Context) {
	id := getUserID(c)
	if id != 0 {
		ud := &dao.UserDao{ID: id}
		cols := dao.Cols(ud, "avatar", "is_staff", "is_super_admin")
		setMap(c, common.H{
			"username":       getUserName(c),
			"avatar":         cols[0].ToString(),
			"is_staff":       cols[1].ToBool(),
			"is_super_admin": cols[2].ToBool(),
		})
		return
	}
	setError(c, 401, "not logged in")
}

func login(c *gin.Context) {
	if isLogin(c) {
		deleteSession(c)
	}
	form := new(loginValidator)
	if err := c.ShouldBind(form); err != nil {
		setError(c, 403, err.Error())
		return
	}
	form.Password = common.PassWordHandle(form.Password)
	ud := &dao.UserDao{Username: form.Username}
	id := ud.GetID()
	if id <= 0 {
		setError(c, 403, "unknown username")
		return
	}
	if pwd := dao.OneCol(ud, "password").ToString(); pwd != form.Password {
		setError(c, 403, "wrong password")
		return
	}
	if !dao.IsInRedis(ud) {
		dao.GetSelfAll(ud)
		dao.PutToRedis(ud)
	}
	setSession(c, ud.Username, ud.GetID())
	autologin(c)
}

func logout(c *gin.Context) {
	deleteSession(c)
	c.Set("msg", "logged out")
}

func register(c *gin.Context) {
	if isLogin(c) {
		setError(c, 403, "log out of the current account first")
		return
	}
	form := new(registerValidator)
	if err := c.ShouldBind(form); err != nil {
		setError(c, 403, err.Error())
		return
	}
	form.Password = string(common.RSADecrypt(form.Password))
	if ok, errInfo := form.isOk(); !ok {
		setError(c, 403, errInfo)
		return
	}
	if dao.CountOneCol(new(dao.UsersData), "username", form.Username) > 0 {
		setError(c, 403, "username already taken")
		return
	}
	if dao.CountOneCol(new(dao.UsersData), "email", form.Email) > 0 {
		setError(c, 403, "email already registered")
		return
	}
	form.Password = common.GetMD5Password(form.Password)
	ud := &dao.UserDao{
		User: &dao.User{
			Username:    form.Username,
			Password:    form.Password,
			Email:       form.Email,
			Description: form.Desc,
			Avatar:      common.Avatars[rand.Intn(len(common.Avatars))],
		},
	}
	if err := ud.Create(); err != nil {
		setError(c, 500, err.Error())
		return
	}
	setSession(c, form.Username, ud.GetID())
	autologin(c)
}

func update(c *gin.Context) {
	form := new(updateValidator)
	if err := c.ShouldBind(form); err != nil {
		setError(c, 403, err.Error())
		return
	}
	if form.NewPassword != "" {
		form.NewPassword = string(common.RSADecrypt(form.NewPassword))
	}
	if form.OldPassword != "" {
		form.OldPassword = string(common.RSADecrypt(form.OldPassword))
	}
	if ok, errInfo := form.isOk(); !ok {
		setError(c, 403, errInfo)
		return
	}
	if form.NewPassword != "" {
		form.NewPassword = common.GetMD5Password(form.NewPassword)
	}
	if form.OldPassword != "" {
		form.OldPassword = common.GetMD5Password(form.OldPassword)
	}
	name := getUserName(c)
	mp := make(map[string]interface{})
	ud := &dao.UserDao{ID: getUserID(c)}
	if form.Username != "" && form.Username != name {
		if dao.CountOneCol(new(dao.UsersData), "username", form.Username) > 0 {
			setError(c, 403, "username already taken")
			return
		}
		mp["username"] = form.Username
	}
	cols := dao.Cols(ud, "password", "email")
	if form.NewPassword != "" {
		if form.OldPassword != cols[0].ToString() {
			setError(c, 403, "wrong password")
			return
		}
		mp["password"] = form.NewPassword
	}
	if form.Email != "" && form.Email != cols[1].ToString() {
		if dao.CountOneCol(new(dao.UsersData), "email", form.Email) > 0 {
			setError(c, 403, "email already registered")
			return
		}
		mp["email"] = form.Email
	}
	if form.Desc != "" {
		mp["description"] = form.Desc
	}
	if len(mp) > 0 {
		if err := ud.Update(mp); err != nil {
			setError(c, 500, err.Error())
			return
		}
	}
	if _, ok := mp["username"]; ok {
		setSession(c, mp["username"].(string), ud.GetID())
	}
	c.Set("msg", "updated")
}

func addImg(c *gin.Context) {
	file, _ := c.FormFile("file")
	fileName := common.RandString(6) + "_" + file.Filename //dodge name collisions
	dir := path.Join("./statics", strconv.FormatInt(getUserID(c), 10))
	os.MkdirAll(dir, os.ModePerm)
	url := common.WebHttp + "/statics/" + strconv.FormatInt(getUserID(c), 10) + "/" + fileName
	if err := c.SaveUploadedFile(file, path.Join(dir, fileName)); err != nil {
		setError(c, 403, "upload failed")
		return
	}
	c.Set("url", url)
}

func showAvatars(c *gin.Context) {
	c.Set("avatars", common.Avatars)
}

func changeAvatar(c *gin.Context) {
	avatar := c.DefaultQuery("avatar", "")
	if avatar == "" {
		setError(c, 403, "bad parameters")
		return
	}
	ud := &dao.UserDao{ID: getUserID(c)}
	dao.UpdateCols(ud, common.H{"avatar": avatar})
	c.Set("result", "ok")
}

//getUserProfile shows a user page: identity, score, rank, the per-tier like
//breakdown, authored tasks and the solutions the requesting viewer may see
func getUserProfile(c *gin.Context) {
	ud := &dao.UserDao{Username: c.Query("username")}
	if !dao.Exists(ud) {
		setError(c, 403, "no such user")
		return
	}
	uid := ud.GetID()
	cols := dao.Cols(ud, "username", "created_at", "description", "avatar", "is_staff")
	rank := dao.RankOf(uid)
	info := common.H{
		"username":    cols[0].ToString(),
		"created_at":  cols[1].ToTime().Format(common.TIME_FORMAT),
		"description": cols[2].ToString(),
		"avatar":      cols[3].ToString(),
		"is_staff":    cols[4].ToBool(),
		"score":       dao.Score(uid),
		"breakdown":   dao.DifficultyBreakdown(uid),
	}
	if rank != 0 {
		info["rank"] = rank
	} else {
		info["rank"] = nil //score 0 means unranked, not rank 0
	}
	c.Set("info", info)

	tasks := dao.GetUserTasks(uid)
	taskData := make([]common.H, len(tasks))
	for i := range tasks {
		taskData[i] = taskListItem(&tasks[i], nil)
	}
	c.Set("tasks", taskData)

	v := viewer(c)
	now := time.Now().UTC()
	sols := dao.GetUserSolutions(uid)
	solData := make([]common.H, 0, len(sols))
	for i := range sols {
		s := &sols[i]
		td := &dao.TaskDao{ID: s.TaskID}
		taskAuthorID := dao.OneCol(td, "author_id").ToInt64()
		if !s.ShouldInclude(taskAuthorID, v, now) {
			continue
		}
		item := solutionListItem(s, taskAuthorID, v, now)
		item["sha256"] = dao.OneCol(td, "sha256").ToString()
		solData = append(solData, item)
	}
	c.Set("solutions", solData)
}

//getLeaderboard streams the full recomputed ranking
func getLeaderboard(c *gin.Context) {
	ranking := dao.RankAll()
	data := make([]common.H, len(ranking))
	for i, e := range ranking {
		ud := &dao.UserDao{ID: e.UserID}
		data[i] = common.H{
			"rank":     e.Rank,
			"score":    e.Score,
			"username": ud.GetName(),
			"avatar":   dao.OneCol(ud, "avatar").ToString(),
		}
	}
	c.Set("data", data)
	c.Set("total", len(data))
}

//setStaff lets the super admin grant or revoke the staff flag
func setStaff(c *gin.Context) {
	ud := &dao.UserDao{Username: c.Query("username")}
	if !dao.Exists(ud) {
		setError(c, 403, "no such user")
		return
	}
	isStaff := common.StrToBool(c.DefaultQuery("is_staff", "false"))
	if err := ud.Update(common.H{"is_staff": isStaff}); err != nil {
		setError(c, 500, err.Error())
		return
	}
	c.Set("result", "ok")
}
