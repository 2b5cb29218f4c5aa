package dao

import (
	"Samplepedia/model"
	"errors"
	"github.com/go-xorm/xorm"
	"strconv"
	"time"
)

const (
	SOLUTION_REDIS_EXPIRE = time.Hour * 24
	SOLUTION_PAGE_SIZE    = 25
)

type (
	Solution     = model.Solution
	SolutionLike = model.SolutionLike
)

type SolutionDao struct {
	ID       int64
	Solution *Solution
}

func (sd *SolutionDao) GetTableName() string {
	return "solution"
}

func (sd *SolutionDao) GetRedisExpire() time.Duration {
	return SOLUTION_REDIS_EXPIRE
}

func (sd *SolutionDao) GetSelf() interface{} {
	if sd.Solution == nil {
		sd.Solution = &Solution{}
	}
	return sd.Solution
}

func (sd *SolutionDao) GetID() int64 {
	if sd.ID == 0 {
		if sd.Solution != nil {
			sd.ID = sd.Solution.ID
		}
	}
	return sd.ID
}

func (sd *SolutionDao) GetRedisKey() string {
	return sd.GetTableName() + "_" + strconv.FormatInt(sd.GetID(), 10)
}

func (sd *SolutionDao) BeforePutToRedis() error {
	return nil
}

func (sd *SolutionDao) BeforeDelete() error {
	engine.Exec("delete from solution_like where solution_id=?", sd.GetID())
	return nil
}

//TitleTaken enforces the per-task title uniqueness before insert
func TitleTaken(taskID int64, title string) bool {
	exist, _ := engine.Exist(&Solution{TaskID: taskID, Title: title})
	return exist
}

//GetTaskSolutions loads every solution of a task, newest first. Visibility
//filtering happens in the caller, which knows the viewer.
func GetTaskSolutions(taskID int64) []Solution {
	sols := make([]Solution, 0)
	engine.Where("task_id = ?", taskID).Desc("created_at").Desc("id").Find(&sols)
	return sols
}

func GetUserSolutions(uid int64) []Solution {
	sols := make([]Solution, 0)
	engine.Where("author_id = ?", uid).Desc("created_at").Desc("id").Find(&sols)
	return sols
}

//ReferenceSolutionCount counts solutions owned by the task author; the last
//one of those may not be deleted
func ReferenceSolutionCount(taskID, taskAuthorID int64) int64 {
	n, _ := engine.Count(&Solution{TaskID: taskID, AuthorID: taskAuthorID})
	return n
}

func checkSolutionDeletable(s *Solution, taskAuthorID int64) error {
	if s.AuthorID == taskAuthorID && ReferenceSolutionCount(s.TaskID, taskAuthorID) <= 1 {
		return errors.New("the last reference solution of a task cannot be deleted")
	}
	return nil
}

//DeleteSolution removes a solution unless it is the last reference solution
//of its task
func DeleteSolution(sd *SolutionDao, taskAuthorID int64) error {
	if sd.Solution == nil {
		if err := GetSelfAll(sd); err != nil {
			return err
		}
	}
	if err := checkSolutionDeletable(sd.Solution, taskAuthorID); err != nil {
		return err
	}
	return Delete(sd)
}

//BumpSolutionViews counts one detail page access with an in-database
//increment, mirroring the new value into the cache when present.
func BumpSolutionViews(sd *SolutionDao) {
	engine.Exec("update solution set view_count = view_count + 1 where id=?", sd.GetID())
	if key := sd.GetRedisKey(); rdb.Exists(ctx, key).Val() > 0 {
		rdb.HIncrBy(ctx, key, "view_count", 1)
	}
}

//SolutionFilter narrows the global solution listing
type SolutionFilter struct {
	Kind  string
	Query string //matched against title and the task sha256
}

//SearchSolutions returns one page of the global listing joined with the
//owning task, newest first. Hidden rows the viewer may not see are filtered
//in SQL so the page size and total stay consistent.
type SolutionWithTask struct {
	Solution `xorm:"extends"`
	Task     `xorm:"extends"`
}

func SearchSolutions(f *SolutionFilter, page int, v model.Viewer, now time.Time) (int64, []SolutionWithTask) {
	if page < 1 {
		page = 1
	}
	build := func() *xorm.Session {
		s := engine.Table("solution").Join("INNER", "task", "solution.task_id = task.id")
		if f.Kind != "" {
			s = s.And("solution.kind = ?", f.Kind)
		}
		if f.Query != "" {
			s = s.And("(solution.title like ? or task.sha256 like ?)", "%"+f.Query+"%", "%"+model.NormalizeSha256(f.Query)+"%")
		}
		if !v.IsStaff {
			if v.IsAuthenticated() {
				s = s.And("(solution.hidden_until is null or solution.hidden_until <= ? or solution.author_id = ? or task.author_id = ?)", now, v.ID, v.ID)
			} else {
				s = s.And("(solution.hidden_until is null or solution.hidden_until <= ?)", now)
			}
		}
		return s
	}
	total, _ := build().Count(new(Solution))
	rows := make([]SolutionWithTask, 0)
	build().
		OrderBy("solution.created_at desc, solution.id desc").
		Limit(SOLUTION_PAGE_SIZE, (page-1)*SOLUTION_PAGE_SIZE).
		Find(&rows)
	return total, rows
}

//Showcase returns the n most recently visible solutions. Currently hidden
//rows are excluded for every viewer, staff included, and recency is the
//moment the solution became visible, not its creation time.
func Showcase(n int, now time.Time) []SolutionWithTask {
	rows := make([]SolutionWithTask, 0)
	engine.Table("solution").
		Join("INNER", "task", "solution.task_id = task.id").
		Where("solution.hidden_until is null or solution.hidden_until <= ?", now).
		OrderBy("coalesce(solution.hidden_until, solution.created_at) desc, solution.id desc").
		Limit(n).
		Find(&rows)
	return rows
}

func SolutionLikeCount(solutionID int64) int64 {
	n, _ := engine.Count(&SolutionLike{SolutionID: solutionID})
	return n
}

func IsSolutionLiked(solutionID, uid int64) bool {
	if uid == 0 {
		return false
	}
	exist, _ := engine.Exist(&SolutionLike{SolutionID: solutionID, UserID: uid})
	return exist
}

//LikedSolutionIDSet loads every solution id the user has liked
func LikedSolutionIDSet(uid int64) map[int64]bool {
	ids := make([]int64, 0)
	engine.Table("solution_like").Where("user_id = ?", uid).Cols("solution_id").Find(&ids)
	set := make(map[int64]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}

//ToggleSolutionLike flips the like relation for one (user, solution) pair
func ToggleSolutionLike(uid, solutionID int64) (bool, int64) {
	like := &SolutionLike{SolutionID: solutionID, UserID: uid}
	if exist, _ := engine.Exist(like); exist {
		engine.Delete(like)
		return false, SolutionLikeCount(solutionID)
	}
	engine.InsertOne(like)
	return true, SolutionLikeCount(solutionID)
}
