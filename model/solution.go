package model

import (
	"time"
)

//solution types
const (
	Blog   = "blog"
	Paper  = "paper"
	Video  = "video"
	Onsite = "onsite" //markdown article hosted here
)

var solutionTypeIcons = map[string]string{
	Blog:   "book",
	Paper:  "file-text",
	Video:  "youtube",
	Onsite: "edit",
}

func IsSolutionType(t string) bool {
	_, ok := solutionTypeIcons[t]
	return ok
}

func SolutionTypeIcon(t string) string {
	if icon, ok := solutionTypeIcons[t]; ok {
		return icon
	}
	return "link"
}

//Solution is a contribution answering a Task. Title is unique per task, not
//globally. External types carry a url, onsite articles carry markdown content.
type Solution struct {
	ID        int64     `json:"id" xorm:"pk autoincr"`
	CreatedAt time.Time `json:"created_at" xorm:"created"`

	TaskID int64  `json:"task_id" xorm:"unique(task_title) index"`
	Title  string `json:"title" xorm:"varchar(200) unique(task_title) notnull"`
	Kind   string `json:"kind" xorm:"varchar(10) index"`

	Url         string `json:"url" xorm:"varchar(500)"`
	Content     string `json:"content" xorm:"text"`      //raw markdown for onsite articles
	HtmlContent string `json:"html_content" xorm:"text"` //rendered by the client editor

	AuthorID  int64 `json:"author_id" xorm:"index"`
	ViewCount int64 `json:"view_count" xorm:"default 0"`

	//when set, the solution stays hidden from ordinary viewers until this
	//instant passes; once passed it is permanently visible, there is no re-hide
	HiddenUntil *time.Time `json:"hidden_until"`
}

//SolutionLike is one user liking one solution
type SolutionLike struct {
	ID         int64 `json:"id" xorm:"pk autoincr"`
	SolutionID int64 `json:"solution_id" xorm:"unique(solution_user) index"`
	UserID     int64 `json:"user_id" xorm:"unique(solution_user) index"`
}

//IsCurrentlyHidden reports whether the solution is inside its hiding window
//at the given instant. The boundary belongs to the visible side.
func (s *Solution) IsCurrentlyHidden(now time.Time) bool {
	if s.HiddenUntil == nil {
		return false
	}
	return now.Before(*s.HiddenUntil)
}

//VisibleDate is the recency key for showcase ordering: the moment the
//solution became (or becomes) visible, falling back to its creation time.
func (s *Solution) VisibleDate() time.Time {
	if s.HiddenUntil != nil {
		return *s.HiddenUntil
	}
	return s.CreatedAt
}

//ShouldInclude decides whether a listing or detail view shows this solution
//to the viewer. Hidden content is only shown to staff, the solution author,
//or the owning task's author.
func (s *Solution) ShouldInclude(taskAuthorID int64, v Viewer, now time.Time) bool {
	if !s.IsCurrentlyHidden(now) {
		return true
	}
	if !v.IsAuthenticated() {
		return false
	}
	return v.IsStaff || v.ID == s.AuthorID || v.ID == taskAuthorID
}

//CanSeeHiddenStatus decides whether the viewer gets the "hidden" badge.
//Never true for a viewer who would fail ShouldInclude.
func (s *Solution) CanSeeHiddenStatus(taskAuthorID int64, v Viewer) bool {
	if !v.IsAuthenticated() {
		return false
	}
	return v.IsStaff || v.ID == s.AuthorID || v.ID == taskAuthorID
}

//UserCanEdit reports whether a viewer may edit or delete the solution
func (s *Solution) UserCanEdit(v Viewer) bool {
	if !v.IsAuthenticated() {
		return false
	}
	return v.ID == s.AuthorID || v.IsStaff
}
