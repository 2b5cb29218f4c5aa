package app

import (
	"Samplepedia/common"
	"Samplepedia/dao"
	"Samplepedia/model"
	"encoding/json"
	"github.com/gin-gonic/gin"
	"strings"
	"time"
)

//youtubeIDFromForm accepts either a full youtube url or a bare video id
func youtubeIDFromForm(raw string) string {
	raw = strings.TrimSpace(raw)
	if id := common.ExtractYoutubeID(raw); id != "" {
		return id
	}
	return raw
}

//normalizeList turns a comma separated form value into the stored json
//array: trimmed, lowercased, deduplicated, order preserved
func normalizeList(raw string) string {
	seen := make(map[string]bool)
	items := make([]string, 0)
	for _, part := range strings.Split(raw, ",") {
		item := strings.ToLower(strings.TrimSpace(part))
		if item == "" || seen[item] {
			continue
		}
		seen[item] = true
		items = append(items, item)
	}
	data, _ := json.Marshal(items)
	return string(data)
}

func taskListItem(t *dao.Task, likedSet map[int64]bool) common.H {
	item := common.H{
		"id":         t.ID,
		"sha256":     t.Sha256,
		"difficulty": t.Difficulty,
		"goal":       t.Goal,
		"tags":       dao.StrCol(t.Tags).ToStringSlice(),
		"has_video":  t.YoutubeID != "",
		"created_at": t.CreatedAt.Format(common.TIME_FORMAT),
		"author":     (&dao.UserDao{ID: t.AuthorID}).GetName(),
		"like_count": dao.TaskLikeCount(t.ID),
		"image":      t.Image,
	}
	if likedSet != nil {
		item["liked"] = likedSet[t.ID]
	}
	return item
}

func getTasks(c *gin.Context) {
	f := &dao.TaskFilter{
		Query:      c.DefaultQuery("query", ""),
		Tag:        c.DefaultQuery("tag", ""),
		Difficulty: c.DefaultQuery("difficulty", ""),
		Sort:       c.DefaultQuery("sort", "-created"),
	}
	uid := getUserID(c)
	if common.StrToBool(c.DefaultQuery("favorites", "false")) && uid != 0 {
		f.FavoritesOf = uid
	}
	page := common.StrToInt(c.DefaultQuery("page", "1"))
	total, tasks := dao.SearchTasks(f, page)

	var likedSet map[int64]bool
	if uid != 0 {
		likedSet = dao.LikedTaskIDSet(uid)
	}
	data := make([]common.H, len(tasks))
	for i := range tasks {
		data[i] = taskListItem(&tasks[i], likedSet)
	}
	c.Set("data", data)
	c.Set("total", total)
	c.Set("page_size", dao.TASK_PAGE_SIZE)
	c.Set("tags", dao.AllTaskTags())
}

//getTask is the detail view: the task itself, its solutions as the viewer
//may see them, and the live comments
func getTask(c *gin.Context) {
	td := &dao.TaskDao{ID: common.StrToInt64(c.DefaultQuery("id", "0"))}
	if err := dao.GetSelfAll(td); err != nil {
		setError(c, 403, "no such task")
		return
	}
	t := td.Task
	v := viewer(c)
	now := time.Now().UTC()
	dao.BumpTaskViews(td)

	sols := dao.GetTaskSolutions(t.ID)
	var likedSet map[int64]bool
	if v.IsAuthenticated() {
		likedSet = dao.LikedSolutionIDSet(v.ID)
	}
	solData := make([]common.H, 0, len(sols))
	youtubeID := t.YoutubeID
	for i := range sols {
		s := &sols[i]
		if !s.ShouldInclude(t.AuthorID, v, now) {
			continue
		}
		item := solutionListItem(s, t.AuthorID, v, now)
		if likedSet != nil {
			item["liked"] = likedSet[s.ID]
		}
		solData = append(solData, item)
		//tasks without their own tutorial video borrow the first visible
		//video solution
		if youtubeID == "" && s.Kind == model.Video {
			youtubeID = common.ExtractYoutubeID(s.Url)
		}
	}

	comments := dao.GetTaskComments(t.ID)
	commentData := make([]common.H, len(comments))
	for i := range comments {
		cm := &comments[i]
		commentData[i] = common.H{
			"id":         cm.ID,
			"content":    cm.Content,
			"author":     (&dao.UserDao{ID: cm.AuthorID}).GetName(),
			"created_at": cm.CreatedAt.Format(common.TIME_FORMAT),
			"can_delete": cm.UserCanDelete(t.AuthorID, v),
		}
	}

	c.Set("task", common.H{
		"id":            t.ID,
		"sha256":        t.Sha256,
		"download_link": t.DownloadLink,
		"description":   t.Description,
		"goal":          t.Goal,
		"difficulty":    t.Difficulty,
		"youtube_id":    youtubeID,
		"image":         t.Image,
		"tags":          dao.StrCol(t.Tags).ToStringSlice(),
		"tools":         dao.StrCol(t.Tools).ToStringSlice(),
		"author":        (&dao.UserDao{ID: t.AuthorID}).GetName(),
		"created_at":    t.CreatedAt.Format(common.TIME_FORMAT),
		"like_count":    dao.TaskLikeCount(t.ID),
		"liked":         dao.IsTaskLiked(t.ID, v.ID),
		"view_count":    t.ViewCount + 1,
		"can_edit":      t.UserCanEdit(v),
	})
	c.Set("solutions", solData)
	c.Set("comments", commentData)
}

//submitTask creates a task and its reference solution together
func submitTask(c *gin.Context) {
	tv := new(taskValidator)
	if err := c.ShouldBind(tv); err != nil {
		setError(c, 403, err.Error())
		return
	}
	if ok, errInfo := tv.isOk(); !ok {
		setError(c, 403, errInfo)
		return
	}
	sv := new(solutionValidator)
	if err := c.ShouldBind(sv); err != nil {
		setError(c, 403, err.Error())
		return
	}
	if ok, errInfo := sv.isOk(); !ok {
		setError(c, 403, errInfo)
		return
	}
	uid := getUserID(c)
	task := &dao.Task{
		Sha256:                  model.NormalizeSha256(tv.Sha256),
		DownloadLink:            tv.DownloadLink,
		Description:             tv.Description,
		Goal:                    tv.Goal,
		Difficulty:              tv.Difficulty,
		YoutubeID:               youtubeIDFromForm(tv.YoutubeID),
		Image:                   c.DefaultPostForm("image", ""),
		Tags:                    normalizeList(c.DefaultPostForm("tags", "")),
		Tools:                   normalizeList(c.DefaultPostForm("tools", "")),
		AuthorID:                uid,
		SendDiscordNotification: common.StrToBool(c.DefaultPostForm("send_discord_notification", "true")),
	}
	sol := &dao.Solution{
		Title:       sv.Title,
		Kind:        sv.Kind,
		Url:         sv.Url,
		Content:     sv.Content,
		HtmlContent: c.DefaultPostForm("html_content", ""),
		AuthorID:    uid,
	}
	if raw := c.DefaultPostForm("hidden_until", ""); raw != "" {
		t := common.StrToTime(raw)
		sol.HiddenUntil = &t
	}
	if err := dao.CreateTaskWithSolution(task, sol); err != nil {
		setError(c, 500, err.Error())
		return
	}
	if task.SendDiscordNotification {
		go announceTask(task)
	}
	c.Set("id", task.ID)
}

func updateTask(c *gin.Context) {
	td := &dao.TaskDao{ID: common.StrToInt64(c.DefaultQuery("id", "0"))}
	if err := dao.GetSelfAll(td); err != nil {
		setError(c, 403, "no such task")
		return
	}
	if !td.Task.UserCanEdit(viewer(c)) {
		setError(c, 403, "no permission")
		return
	}
	tv := new(taskValidator)
	if err := c.ShouldBind(tv); err != nil {
		setError(c, 403, err.Error())
		return
	}
	if ok, errInfo := tv.isOk(); !ok {
		setError(c, 403, errInfo)
		return
	}
	mp := common.H{
		"sha256":        model.NormalizeSha256(tv.Sha256),
		"download_link": tv.DownloadLink,
		"description":   tv.Description,
		"goal":          tv.Goal,
		"difficulty":    tv.Difficulty,
		"youtube_id":    youtubeIDFromForm(tv.YoutubeID),
		"tags":          normalizeList(c.DefaultPostForm("tags", "")),
		"tools":         normalizeList(c.DefaultPostForm("tools", "")),
	}
	if img := c.DefaultPostForm("image", ""); img != "" {
		mp["image"] = img
	}
	if err := dao.UpdateCols(td, mp); err != nil {
		setError(c, 500, err.Error())
		return
	}
	c.Set("result", "ok")
}

func deleteTask(c *gin.Context) {
	td := &dao.TaskDao{ID: common.StrToInt64(c.DefaultQuery("id", "0"))}
	if err := dao.GetSelfAll(td); err != nil {
		setError(c, 403, "no such task")
		return
	}
	if !td.Task.UserCanEdit(viewer(c)) {
		setError(c, 403, "no permission")
		return
	}
	if err := dao.Delete(td); err != nil {
		setError(c, 500, err.Error())
		return
	}
	c.Set("result", "ok")
}

func toggleTaskLike(c *gin.Context) {
	td := &dao.TaskDao{ID: common.StrToInt64(c.DefaultQuery("id", "0"))}
	if err := dao.GetSelfAll(td); err != nil {
		setError(c, 403, "no such task")
		return
	}
	uid := getUserID(c)
	liked, count := dao.ToggleTaskLike(uid, td.GetID())
	if liked {
		dao.NotifyTaskLiked(td.Task, getUserName(c), uid)
	}
	c.Set("liked", liked)
	c.Set("like_count", count)
}
