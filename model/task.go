package model

import (
	"strings"
	"time"
)

//difficulty tiers
const (
	Easy     = "easy"
	Medium   = "medium"
	Advanced = "advanced"
	Expert   = "expert"
)

//fixed lookup tables, built once, never mutated after init
var (
	//points one like is worth, per difficulty of the underlying task
	difficultyPoints = map[string]uint{
		Easy:     10,
		Medium:   20,
		Advanced: 40,
		Expert:   80,
	}

	//ordering weight for difficulty sorts in listings
	difficultyOrder = map[string]int{
		Easy:     1,
		Medium:   2,
		Advanced: 3,
		Expert:   4,
	}

	//badge colors, also used for discord embeds
	difficultyColors = map[string]int{
		Easy:     0x28a745,
		Medium:   0xffc107,
		Advanced: 0xdc3545,
		Expert:   0x343a40,
	}
)

func IsDifficulty(d string) bool {
	_, ok := difficultyPoints[d]
	return ok
}

func DifficultyOrder(d string) int {
	return difficultyOrder[d]
}

func DifficultyColor(d string) int {
	if c, ok := difficultyColors[d]; ok {
		return c
	}
	return 0x007bff
}

//Task is a submitted analysis challenge, identified by the sample's sha256.
type Task struct {
	ID        int64     `json:"id" xorm:"pk autoincr"`
	CreatedAt time.Time `json:"created_at" xorm:"created"`

	Sha256       string `json:"sha256" xorm:"char(64) index notnull"` //always stored lowercase
	DownloadLink string `json:"download_link" xorm:"varchar(500)"`
	Description  string `json:"description" xorm:"text"`
	Goal         string `json:"goal" xorm:"text"`
	Difficulty   string `json:"difficulty" xorm:"varchar(10) index"`
	YoutubeID    string `json:"youtube_id" xorm:"varchar(32)"`
	Image        string `json:"image"`

	Tags  string `json:"tags" xorm:"default '[]'"`  //json array, lowercased
	Tools string `json:"tools" xorm:"default '[]'"` //json array, lowercased

	AuthorID  int64 `json:"author_id" xorm:"index"`
	ViewCount int64 `json:"view_count" xorm:"default 0"`

	SendDiscordNotification bool `json:"send_discord_notification" xorm:"default 1"`
}

//NormalizeSha256 lowercases a hash before storage or lookup
func NormalizeSha256(h string) string {
	return strings.ToLower(h)
}

//UserCanEdit reports whether a viewer may edit or delete the task
func (t *Task) UserCanEdit(v Viewer) bool {
	if !v.IsAuthenticated() {
		return false
	}
	return v.ID == t.AuthorID || v.IsStaff
}

//TaskLike is one user liking one task; presence of the row is the only state
type TaskLike struct {
	ID     int64 `json:"id" xorm:"pk autoincr"`
	TaskID int64 `json:"task_id" xorm:"unique(task_user) index"`
	UserID int64 `json:"user_id" xorm:"unique(task_user) index"`
}
