package dao

import (
	"Samplepedia/model"
	"sort"
)

type (
	Course          = model.Course
	CourseReference = model.CourseReference
)

type CourseWithCount struct {
	Course      `xorm:"extends"`
	SampleCount int64 `xorm:"sample_count"`
}

//GetCourses lists courses by name with their distinct task counts
func GetCourses() []CourseWithCount {
	rows := make([]CourseWithCount, 0)
	engine.SQL("select course.*, " +
		"(select count(distinct task_course_ref.task_id) from course_reference " +
		" inner join task_course_ref on task_course_ref.reference_id = course_reference.id " +
		" where course_reference.course_id = course.id) as sample_count " +
		"from course order by course.name").Find(&rows)
	return rows
}

func GetCourse(id int64) *Course {
	c := &Course{}
	exist, err := engine.ID(id).Get(c)
	if !exist || err != nil {
		return nil
	}
	return c
}

func CreateCourse(c *Course) error {
	_, err := engine.InsertOne(c)
	return err
}

//CreateCourseReference registers one lecture slot; the unique index rejects
//a duplicate (course, section, lecture) triple
func CreateCourseReference(ref *CourseReference) error {
	_, err := engine.InsertOne(ref)
	return err
}

//LinkTaskToCourse attaches a task to a lecture slot, which also removes the
//task from the main listing
func LinkTaskToCourse(taskID, referenceID int64) error {
	_, err := engine.InsertOne(&model.TaskCourseRef{TaskID: taskID, ReferenceID: referenceID})
	return err
}

//CourseSample is one lecture slot of a course and the task attached to it
type CourseSample struct {
	Task          Task
	Section       int
	LectureNumber int
	LectureTitle  string
}

//GetCourseSamples resolves a course's tasks ordered by (section, lecture)
func GetCourseSamples(courseID int64) []CourseSample {
	refs := make([]CourseReference, 0)
	engine.Where("course_id = ?", courseID).Find(&refs)
	ret := make([]CourseSample, 0)
	for _, ref := range refs {
		links := make([]model.TaskCourseRef, 0)
		engine.Where("reference_id = ?", ref.ID).Find(&links)
		for _, link := range links {
			td := &TaskDao{ID: link.TaskID}
			if err := GetSelfAll(td); err != nil {
				continue
			}
			ret = append(ret, CourseSample{
				Task:          *td.Task,
				Section:       ref.Section,
				LectureNumber: ref.LectureNumber,
				LectureTitle:  ref.LectureTitle,
			})
		}
	}
	sort.Slice(ret, func(i, j int) bool {
		if ret[i].Section != ret[j].Section {
			return ret[i].Section < ret[j].Section
		}
		return ret[i].LectureNumber < ret[j].LectureNumber
	})
	return ret
}
