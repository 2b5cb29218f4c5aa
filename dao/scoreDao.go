package dao

import (
	"Samplepedia/model"
)

/*
Score aggregation. Nothing is persisted: every call derives points from the
like relations, so a like granted while a solution was hidden still counts
once the rows exist. Ranking is a full scan over both authored tables,
acceptable at this site's traffic.
*/

type authorTierLikes struct {
	AuthorID   int64  `xorm:"author_id"`
	Difficulty string `xorm:"difficulty"`
	Likes      uint   `xorm:"likes"`
}

//grouped like counts per (author, difficulty) over authored tasks
func taskLikesByTier(uid int64) []authorTierLikes {
	rows := make([]authorTierLikes, 0)
	sql := "select task.author_id as author_id, task.difficulty as difficulty, count(task_like.id) as likes " +
		"from task left join task_like on task_like.task_id = task.id "
	if uid != 0 {
		sql += "where task.author_id = ? "
	}
	sql += "group by task.author_id, task.difficulty"
	if uid != 0 {
		engine.SQL(sql, uid).Find(&rows)
	} else {
		engine.SQL(sql).Find(&rows)
	}
	return rows
}

//grouped like counts per (author, difficulty) over authored solutions; the
//tier comes from the parent task, not the solution
func solutionLikesByTier(uid int64) []authorTierLikes {
	rows := make([]authorTierLikes, 0)
	sql := "select solution.author_id as author_id, task.difficulty as difficulty, count(solution_like.id) as likes " +
		"from solution inner join task on solution.task_id = task.id " +
		"left join solution_like on solution_like.solution_id = solution.id "
	if uid != 0 {
		sql += "where solution.author_id = ? "
	}
	sql += "group by solution.author_id, task.difficulty"
	if uid != 0 {
		engine.SQL(sql, uid).Find(&rows)
	} else {
		engine.SQL(sql).Find(&rows)
	}
	return rows
}

//Score computes one user's point total
func Score(uid int64) uint {
	likes := make(map[string]uint)
	for _, r := range taskLikesByTier(uid) {
		likes[r.Difficulty] += r.Likes
	}
	for _, r := range solutionLikesByTier(uid) {
		likes[r.Difficulty] += r.Likes
	}
	return model.ScorePoints(likes)
}

//DifficultyBreakdown exposes the eight raw per-tier like counters for a
//profile page, unweighted
func DifficultyBreakdown(uid int64) model.Breakdown {
	var b model.Breakdown
	for _, r := range taskLikesByTier(uid) {
		b.TaskLikes.Add(r.Difficulty, r.Likes)
	}
	for _, r := range solutionLikesByTier(uid) {
		b.SolutionLikes.Add(r.Difficulty, r.Likes)
	}
	return b
}

//RankAll recomputes the global ranking: every authoring user scored, zero
//scores dropped, ordered by score with ascending id as the tie break
func RankAll() []model.RankEntry {
	perUser := make(map[int64]map[string]uint)
	add := func(rows []authorTierLikes) {
		for _, r := range rows {
			mp, ok := perUser[r.AuthorID]
			if !ok {
				mp = make(map[string]uint)
				perUser[r.AuthorID] = mp
			}
			mp[r.Difficulty] += r.Likes
		}
	}
	add(taskLikesByTier(0))
	add(solutionLikesByTier(0))
	scores := make([]model.UserScore, 0, len(perUser))
	for uid, likes := range perUser {
		scores = append(scores, model.UserScore{UserID: uid, Score: model.ScorePoints(likes)})
	}
	return model.BuildRanking(scores)
}

//RankOf is the user's position in RankAll, 0 when unranked
func RankOf(uid int64) int {
	return model.RankOf(RankAll(), uid)
}
