package model

import "time"

//notification verbs
const (
	VerbLikedTask     = "liked_task"
	VerbLikedSolution = "liked_solution"
	VerbCommented     = "commented"
	VerbAddedSolution = "added_solution"
)

//target kinds
const (
	TargetTask = iota + 1
	TargetSolution
)

//TargetRef points a notification at either a task or a solution. Use the
//TaskRef/SolutionRef constructors, never a raw (kind, id) pair.
type TargetRef struct {
	Kind int   `json:"kind"`
	ID   int64 `json:"id"`
}

func TaskRef(id int64) TargetRef {
	return TargetRef{Kind: TargetTask, ID: id}
}

func SolutionRef(id int64) TargetRef {
	return TargetRef{Kind: TargetSolution, ID: id}
}

func (r TargetRef) IsTask() bool {
	return r.Kind == TargetTask
}

func (r TargetRef) IsSolution() bool {
	return r.Kind == TargetSolution
}

type Notification struct {
	ID        int64     `json:"id" xorm:"pk autoincr"`
	CreatedAt time.Time `json:"created_at" xorm:"created"`

	RecipientID int64  `json:"recipient_id" xorm:"index"`
	ActorID     int64  `json:"actor_id" xorm:"index"`
	Verb        string `json:"verb" xorm:"varchar(50)"`

	TargetKind int   `json:"target_kind"`
	TargetID   int64 `json:"target_id"`

	Description string `json:"description" xorm:"text"`
	Sha256      string `json:"sha256" xorm:"char(64)"` //hash of the related task, for display
	Unread      bool   `json:"unread" xorm:"index default 1"`
}

func (n *Notification) Target() TargetRef {
	return TargetRef{Kind: n.TargetKind, ID: n.TargetID}
}

func (n *Notification) SetTarget(r TargetRef) {
	n.TargetKind = r.Kind
	n.TargetID = r.ID
}
