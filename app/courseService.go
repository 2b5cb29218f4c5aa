package app

import (
	"Samplepedia/common"
	"Samplepedia/dao"
	"github.com/gin-gonic/gin"
	"strings"
)

func getCourses(c *gin.Context) {
	courses := dao.GetCourses()
	data := make([]common.H, len(courses))
	for i, course := range courses {
		data[i] = common.H{
			"id":           course.ID,
			"name":         course.Name,
			"url":          course.Url,
			"image":        course.Image,
			"sample_count": course.SampleCount,
		}
	}
	c.Set("data", data)
}

//getCourseSamples lists a course's tasks in lecture order
func getCourseSamples(c *gin.Context) {
	course := dao.GetCourse(common.StrToInt64(c.DefaultQuery("id", "0")))
	if course == nil {
		setError(c, 403, "no such course")
		return
	}
	samples := dao.GetCourseSamples(course.ID)
	uid := getUserID(c)
	var likedSet map[int64]bool
	if uid != 0 {
		likedSet = dao.LikedTaskIDSet(uid)
	}
	data := make([]common.H, len(samples))
	for i := range samples {
		item := taskListItem(&samples[i].Task, likedSet)
		item["section"] = samples[i].Section
		item["lecture_number"] = samples[i].LectureNumber
		item["lecture_title"] = samples[i].LectureTitle
		data[i] = item
	}
	c.Set("course", common.H{
		"id":    course.ID,
		"name":  course.Name,
		"url":   course.Url,
		"image": course.Image,
	})
	c.Set("data", data)
}

func newCourse(c *gin.Context) {
	name := strings.TrimSpace(c.DefaultPostForm("name", ""))
	if name == "" {
		setError(c, 403, "course name required")
		return
	}
	course := &dao.Course{
		Name:  name,
		Url:   c.DefaultPostForm("url", ""),
		Image: c.DefaultPostForm("image", ""),
	}
	if err := dao.CreateCourse(course); err != nil {
		setError(c, 403, "could not create course: "+err.Error())
		return
	}
	c.Set("id", course.ID)
}

func newCourseReference(c *gin.Context) {
	course := dao.GetCourse(common.StrToInt64(c.DefaultPostForm("course_id", "0")))
	if course == nil {
		setError(c, 403, "no such course")
		return
	}
	ref := &dao.CourseReference{
		CourseID:      course.ID,
		Section:       common.StrToInt(c.DefaultPostForm("section", "0")),
		LectureNumber: common.StrToInt(c.DefaultPostForm("lecture_number", "0")),
		LectureTitle:  c.DefaultPostForm("lecture_title", ""),
	}
	if err := dao.CreateCourseReference(ref); err != nil {
		setError(c, 403, "could not create lecture slot: "+err.Error())
		return
	}
	c.Set("id", ref.ID)
}

func linkTaskToCourse(c *gin.Context) {
	taskID := common.StrToInt64(c.DefaultPostForm("task_id", "0"))
	referenceID := common.StrToInt64(c.DefaultPostForm("reference_id", "0"))
	td := &dao.TaskDao{ID: taskID}
	if !dao.Exists(td) {
		setError(c, 403, "no such task")
		return
	}
	if err := dao.LinkTaskToCourse(taskID, referenceID); err != nil {
		setError(c, 403, "could not link task: "+err.Error())
		return
	}
	c.Set("result", "ok")
}
