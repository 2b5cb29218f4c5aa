package app

import (
	"Samplepedia/common"
	"Samplepedia/dao"
	"Samplepedia/model"
	"github.com/gin-gonic/gin"
	"time"
)

const SHOWCASE_SIZE = 6

//canSetHidingWindow gates hidden_until on create and edit forms alike
func canSetHidingWindow(v model.Viewer, taskAuthorID int64) bool {
	return v.IsStaff || v.ID == taskAuthorID
}

func solutionListItem(s *dao.Solution, taskAuthorID int64, v model.Viewer, now time.Time) common.H {
	item := common.H{
		"id":         s.ID,
		"task_id":    s.TaskID,
		"title":      s.Title,
		"kind":       s.Kind,
		"icon":       model.SolutionTypeIcon(s.Kind),
		"url":        s.Url,
		"author":     (&dao.UserDao{ID: s.AuthorID}).GetName(),
		"created_at": s.CreatedAt.Format(common.TIME_FORMAT),
		"like_count": dao.SolutionLikeCount(s.ID),
		"can_edit":   s.UserCanEdit(v),
	}
	//the hidden badge is only rendered for viewers already allowed to see
	//the content
	if s.CanSeeHiddenStatus(taskAuthorID, v) && s.IsCurrentlyHidden(now) {
		item["hidden"] = true
		item["hidden_until"] = s.HiddenUntil.Format(common.TIME_FORMAT)
	}
	return item
}

//getSolutions is the global listing, joined with the owning tasks and
//filtered down to what the viewer may see
func getSolutions(c *gin.Context) {
	f := &dao.SolutionFilter{
		Kind:  c.DefaultQuery("kind", ""),
		Query: c.DefaultQuery("query", ""),
	}
	page := common.StrToInt(c.DefaultQuery("page", "1"))
	v := viewer(c)
	now := time.Now().UTC()
	total, rows := dao.SearchSolutions(f, page, v, now)
	data := make([]common.H, 0, len(rows))
	for i := range rows {
		r := &rows[i]
		item := solutionListItem(&r.Solution, r.Task.AuthorID, v, now)
		item["sha256"] = r.Task.Sha256
		item["difficulty"] = r.Task.Difficulty
		data = append(data, item)
	}
	c.Set("data", data)
	c.Set("total", total)
	c.Set("page_size", dao.SOLUTION_PAGE_SIZE)
}

//getShowcase returns the most recently visible solutions for the front page.
//Hidden rows never appear here, staff included.
func getShowcase(c *gin.Context) {
	rows := dao.Showcase(SHOWCASE_SIZE, time.Now().UTC())
	data := make([]common.H, len(rows))
	for i := range rows {
		r := &rows[i]
		data[i] = common.H{
			"id":         r.Solution.ID,
			"task_id":    r.Task.ID,
			"title":      r.Solution.Title,
			"kind":       r.Solution.Kind,
			"icon":       model.SolutionTypeIcon(r.Solution.Kind),
			"sha256":     r.Task.Sha256,
			"difficulty": r.Task.Difficulty,
			"author":     (&dao.UserDao{ID: r.Solution.AuthorID}).GetName(),
			"date":       r.Solution.VisibleDate().Format(common.TIME_FORMAT),
		}
	}
	c.Set("data", data)
}

//getSolution serves an on-site article. Hidden articles answer 403 with a
//message, never 404, so the existence of the solution is not leaked wrongly.
func getSolution(c *gin.Context) {
	sd := &dao.SolutionDao{ID: common.StrToInt64(c.DefaultQuery("id", "0"))}
	if err := dao.GetSelfAll(sd); err != nil {
		setError(c, 403, "no such solution")
		return
	}
	s := sd.Solution
	td := &dao.TaskDao{ID: s.TaskID}
	if err := dao.GetSelfAll(td); err != nil {
		setError(c, 403, "no such task")
		return
	}
	v := viewer(c)
	now := time.Now().UTC()
	if !s.ShouldInclude(td.Task.AuthorID, v, now) {
		setError(c, 403, "this solution is not yet visible")
		return
	}
	dao.BumpSolutionViews(sd)
	item := solutionListItem(s, td.Task.AuthorID, v, now)
	item["content"] = s.Content
	item["html_content"] = s.HtmlContent
	item["sha256"] = td.Task.Sha256
	item["liked"] = dao.IsSolutionLiked(s.ID, v.ID)
	item["view_count"] = s.ViewCount + 1
	c.Set("solution", item)
}

//addSolution attaches a new solution to an existing task
func addSolution(c *gin.Context) {
	td := &dao.TaskDao{ID: common.StrToInt64(c.DefaultQuery("task_id", "0"))}
	if err := dao.GetSelfAll(td); err != nil {
		setError(c, 403, "no such task")
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
	if dao.TitleTaken(td.GetID(), sv.Title) {
		setError(c, 403, "a solution with this title already exists for this task")
		return
	}
	uid := getUserID(c)
	sol := &dao.Solution{
		TaskID:      td.GetID(),
		Title:       sv.Title,
		Kind:        sv.Kind,
		Url:         sv.Url,
		Content:     sv.Content,
		HtmlContent: c.DefaultPostForm("html_content", ""),
		AuthorID:    uid,
	}
	//only the task author or staff may schedule a hiding window
	if raw := c.DefaultPostForm("hidden_until", ""); raw != "" {
		if canSetHidingWindow(viewer(c), td.Task.AuthorID) {
			t := common.StrToTime(raw)
			sol.HiddenUntil = &t
		}
	}
	sd := &dao.SolutionDao{Solution: sol}
	if err := dao.Create(sd); err != nil {
		setError(c, 500, err.Error())
		return
	}
	dao.NotifySolutionAdded(td.Task, sol, getUserName(c), uid)
	c.Set("id", sol.ID)
}

func updateSolution(c *gin.Context) {
	sd := &dao.SolutionDao{ID: common.StrToInt64(c.DefaultQuery("id", "0"))}
	if err := dao.GetSelfAll(sd); err != nil {
		setError(c, 403, "no such solution")
		return
	}
	v := viewer(c)
	if !sd.Solution.UserCanEdit(v) {
		setError(c, 403, "no permission")
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
	if sv.Title != sd.Solution.Title && dao.TitleTaken(sd.Solution.TaskID, sv.Title) {
		setError(c, 403, "a solution with this title already exists for this task")
		return
	}
	mp := common.H{
		"title":        sv.Title,
		"kind":         sv.Kind,
		"url":          sv.Url,
		"content":      sv.Content,
		"html_content": c.DefaultPostForm("html_content", ""),
	}
	if raw := c.DefaultPostForm("hidden_until", ""); raw != "" {
		td := &dao.TaskDao{ID: sd.Solution.TaskID}
		if canSetHidingWindow(v, dao.OneCol(td, "author_id").ToInt64()) {
			mp["hidden_until"] = common.StrToTime(raw)
		}
	}
	if err := dao.UpdateCols(sd, mp); err != nil {
		setError(c, 500, err.Error())
		return
	}
	c.Set("result", "ok")
}

func deleteSolution(c *gin.Context) {
	sd := &dao.SolutionDao{ID: common.StrToInt64(c.DefaultQuery("id", "0"))}
	if err := dao.GetSelfAll(sd); err != nil {
		setError(c, 403, "no such solution")
		return
	}
	if !sd.Solution.UserCanEdit(viewer(c)) {
		setError(c, 403, "no permission")
		return
	}
	td := &dao.TaskDao{ID: sd.Solution.TaskID}
	taskAuthorID := dao.OneCol(td, "author_id").ToInt64()
	if err := dao.DeleteSolution(sd, taskAuthorID); err != nil {
		setError(c, 403, err.Error())
		return
	}
	c.Set("result", "ok")
}

func toggleSolutionLike(c *gin.Context) {
	sd := &dao.SolutionDao{ID: common.StrToInt64(c.DefaultQuery("id", "0"))}
	if err := dao.GetSelfAll(sd); err != nil {
		setError(c, 403, "no such solution")
		return
	}
	uid := getUserID(c)
	liked, count := dao.ToggleSolutionLike(uid, sd.GetID())
	if liked {
		td := &dao.TaskDao{ID: sd.Solution.TaskID}
		sha256 := dao.OneCol(td, "sha256").ToString()
		dao.NotifySolutionLiked(sd.Solution, sha256, getUserName(c), uid)
	}
	c.Set("liked", liked)
	c.Set("like_count", count)
}
