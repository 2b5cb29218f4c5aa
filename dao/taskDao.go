package dao

import (
	"Samplepedia/model"
	"github.com/go-xorm/xorm"
	"strconv"
	"time"
)

const (
	TASK_REDIS_EXPIRE = time.Hour * 24
	TASK_PAGE_SIZE    = 25
)

type (
	Task     = model.Task
	TaskLike = model.TaskLike
)

type TaskDao struct {
	ID   int64
	Task *Task
}

func (td *TaskDao) GetTableName() string {
	return "task"
}

func (td *TaskDao) GetRedisExpire() time.Duration {
	return TASK_REDIS_EXPIRE
}

func (td *TaskDao) GetSelf() interface{} {
	if td.Task == nil {
		td.Task = &Task{}
	}
	return td.Task
}

func (td *TaskDao) GetID() int64 {
	if td.ID == 0 {
		if td.Task != nil {
			td.ID = td.Task.ID
		}
	}
	return td.ID
}

func (td *TaskDao) GetRedisKey() string {
	return td.GetTableName() + "_" + strconv.FormatInt(td.GetID(), 10)
}

func (td *TaskDao) BeforePutToRedis() error {
	return nil
}

func (td *TaskDao) BeforeDelete() error {
	//likes, solutions and comments hang off the task row
	engine.Exec("delete from task_like where task_id=?", td.GetID())
	engine.Exec("delete from solution_like where solution_id in (select id from solution where task_id=?)", td.GetID())
	solutionIDs := make([]int64, 0)
	engine.Table("solution").Where("task_id = ?", td.GetID()).Cols("id").Find(&solutionIDs)
	for _, id := range solutionIDs {
		DeleteFromRedis(&SolutionDao{ID: id})
	}
	engine.Exec("delete from solution where task_id=?", td.GetID())
	engine.Exec("delete from comment where task_id=?", td.GetID())
	engine.Exec("delete from task_course_ref where task_id=?", td.GetID())
	return nil
}

//BumpTaskViews counts one detail page access. The increment runs in SQL so
//concurrent views never lose a count, and the cached copy is kept in step.
func BumpTaskViews(td *TaskDao) {
	engine.Exec("update task set view_count = view_count + 1 where id=?", td.GetID())
	if key := td.GetRedisKey(); rdb.Exists(ctx, key).Val() > 0 {
		rdb.HIncrBy(ctx, key, "view_count", 1)
	}
}

//CreateTaskWithSolution inserts a task together with its reference solution
//in one transaction, so a failed solution insert never leaves a bare task
func CreateTaskWithSolution(task *Task, sol *Solution) error {
	session := engine.NewSession()
	defer session.Close()
	if err := session.Begin(); err != nil {
		return err
	}
	if _, err := session.InsertOne(task); err != nil {
		session.Rollback()
		return err
	}
	sol.TaskID = task.ID
	if _, err := session.InsertOne(sol); err != nil {
		session.Rollback()
		return err
	}
	return session.Commit()
}

//TaskFilter is everything the list view can narrow or order by
type TaskFilter struct {
	Query         string //sha256 substring
	Tag           string
	Difficulty    string
	FavoritesOf   int64 //user id, 0 disables
	Sort          string
	IncludeCourse bool //course tasks only show up in the course view
}

//whitelisted sort keys; everything else falls back to -id. The like count
//and difficulty rank are computed per row, id desc breaks ties for a stable
//page order.
var taskSorts = map[string]string{
	"sha256":      "sha256 asc",
	"-sha256":     "sha256 desc",
	"difficulty":  difficultyRankSql + " asc",
	"-difficulty": difficultyRankSql + " desc",
	"goal":        "goal asc",
	"-goal":       "goal desc",
	"video":       "(youtube_id != '') asc",
	"-video":      "(youtube_id != '') desc",
	"likes":       likeCountSql + " asc",
	"-likes":      likeCountSql + " desc",
	"created":     "created_at asc",
	"-created":    "created_at desc",
	"-id":         "id desc",
}

const (
	difficultyRankSql = "case difficulty when 'easy' then 1 when 'medium' then 2 when 'advanced' then 3 when 'expert' then 4 else 0 end"
	likeCountSql      = "(select count(*) from task_like where task_like.task_id = task.id)"
)

func taskFilterSession(f *TaskFilter) *xorm.Session {
	s := engine.Table("task")
	if !f.IncludeCourse {
		s = s.Where("id not in (select task_id from task_course_ref)")
	}
	if f.Query != "" {
		s = s.And("sha256 like ?", "%"+model.NormalizeSha256(f.Query)+"%")
	}
	if f.Tag != "" {
		s = s.And("tags like ?", `%"`+f.Tag+`"%`)
	}
	if f.Difficulty != "" {
		s = s.And("difficulty = ?", f.Difficulty)
	}
	if f.FavoritesOf != 0 {
		s = s.And("id in (select task_id from task_like where user_id = ?)", f.FavoritesOf)
	}
	return s
}

//SearchTasks returns one page of the filtered listing plus the filtered total
func SearchTasks(f *TaskFilter, page int) (int64, []Task) {
	if page < 1 {
		page = 1
	}
	total, _ := taskFilterSession(f).Count(new(Task))
	order, ok := taskSorts[f.Sort]
	if !ok {
		order = taskSorts["-id"]
	}
	tasks := make([]Task, 0)
	taskFilterSession(f).
		OrderBy(order + ", id desc").
		Limit(TASK_PAGE_SIZE, (page-1)*TASK_PAGE_SIZE).
		Find(&tasks)
	return total, tasks
}

//AllTaskTags collects the distinct lowercase tags in use
func AllTaskTags() []string {
	rows := make([]Task, 0)
	engine.Cols("tags").Find(&rows)
	seen := make(map[string]bool)
	ret := make([]string, 0)
	for i := range rows {
		td := &TaskDao{Task: &rows[i]}
		for _, tag := range (&Col{data: td.Task.Tags}).ToStringSlice() {
			if !seen[tag] {
				seen[tag] = true
				ret = append(ret, tag)
			}
		}
	}
	return ret
}

func GetUserTasks(uid int64) []Task {
	tasks := make([]Task, 0)
	engine.Where("author_id = ?", uid).Desc("created_at").Desc("id").Find(&tasks)
	return tasks
}

func TaskLikeCount(taskID int64) int64 {
	n, _ := engine.Count(&TaskLike{TaskID: taskID})
	return n
}

//IsTaskLiked checks one (task, viewer) pair
func IsTaskLiked(taskID, uid int64) bool {
	if uid == 0 {
		return false
	}
	exist, _ := engine.Exist(&TaskLike{TaskID: taskID, UserID: uid})
	return exist
}

//LikedTaskIDSet loads every task id the user has liked, for list rendering
func LikedTaskIDSet(uid int64) map[int64]bool {
	ids := make([]int64, 0)
	engine.Table("task_like").Where("user_id = ?", uid).Cols("task_id").Find(&ids)
	set := make(map[int64]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}

//ToggleTaskLike flips the like relation for one (user, task) pair and
//returns the new state plus the derived count. The unique index makes a
//replayed toggle a no-op rather than a double count.
func ToggleTaskLike(uid, taskID int64) (bool, int64) {
	like := &TaskLike{TaskID: taskID, UserID: uid}
	if exist, _ := engine.Exist(like); exist {
		engine.Delete(like)
		return false, TaskLikeCount(taskID)
	}
	engine.InsertOne(like)
	return true, TaskLikeCount(taskID)
}
