package model

import (
	"time"
)

type User struct {
	ID        int64     `json:"id" xorm:"pk autoincr"`
	CreatedAt time.Time `json:"created_at" xorm:"created"`
	Username  string    `json:"username" xorm:"VARBINARY(64) unique index notnull"`
	Password  string    `json:"password" xorm:"VARBINARY(32) notnull"`
	Email     string    `json:"email" xorm:"varchar(64) unique index notnull"`

	Description string `json:"description" xorm:"text"` //profile text
	Avatar      string `json:"avatar"`

	//staff can edit or delete any task/solution and always sees hidden
	//solutions, super admin additionally manages staff flags
	IsStaff      bool `json:"is_staff"`
	IsSuperAdmin bool `json:"is_super_admin"`
}

//Viewer is the identity a request acts as. ID 0 means unauthenticated.
type Viewer struct {
	ID      int64
	IsStaff bool
}

func (v Viewer) IsAuthenticated() bool {
	return v.ID != 0
}
