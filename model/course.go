package model

//Course groups tasks that belong to an external training course. Course
//tasks are only listed in the course view, never in the main listing.
type Course struct {
	ID    int64  `json:"id" xorm:"pk autoincr"`
	Name  string `json:"name" xorm:"varchar(200) unique notnull"`
	Url   string `json:"url" xorm:"varchar(500)"`
	Image string `json:"image"`
}

type CourseReference struct {
	ID            int64  `json:"id" xorm:"pk autoincr"`
	CourseID      int64  `json:"course_id" xorm:"unique(course_slot) index"`
	Section       int    `json:"section" xorm:"unique(course_slot)"`
	LectureNumber int    `json:"lecture_number" xorm:"unique(course_slot)"`
	LectureTitle  string `json:"lecture_title" xorm:"varchar(500)"`
}

//TaskCourseRef links a task to a course lecture
type TaskCourseRef struct {
	ID          int64 `json:"id" xorm:"pk autoincr"`
	TaskID      int64 `json:"task_id" xorm:"unique(task_ref) index"`
	ReferenceID int64 `json:"reference_id" xorm:"unique(task_ref) index"`
}
