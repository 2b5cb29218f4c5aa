package model

import "sort"

//PointsFor is the scoring weight of one like on an item whose underlying
//task has the given difficulty. Unknown difficulty weighs 1 so totals stay
//computable on malformed data.
func PointsFor(difficulty string) uint {
	if p, ok := difficultyPoints[difficulty]; ok {
		return p
	}
	return 1
}

//TierLikes is raw like counts grouped by difficulty tier, one set for
//authored tasks and one for authored solutions. Display only, not weighted.
type TierLikes struct {
	Easy     uint `json:"easy"`
	Medium   uint `json:"medium"`
	Advanced uint `json:"advanced"`
	Expert   uint `json:"expert"`
}

func (t *TierLikes) Add(difficulty string, n uint) {
	switch difficulty {
	case Easy:
		t.Easy += n
	case Medium:
		t.Medium += n
	case Advanced:
		t.Advanced += n
	case Expert:
		t.Expert += n
	}
}

type Breakdown struct {
	TaskLikes     TierLikes `json:"task_likes"`
	SolutionLikes TierLikes `json:"solution_likes"`
}

//ScorePoints folds grouped like counts into a point total. Likes are counted
//regardless of any hiding window on the liked solution.
func ScorePoints(likesByDifficulty map[string]uint) uint {
	total := uint(0)
	for d, likes := range likesByDifficulty {
		total += PointsFor(d) * likes
	}
	return total
}

type UserScore struct {
	UserID int64
	Score  uint
}

type RankEntry struct {
	UserID int64 `json:"user_id"`
	Score  uint  `json:"score"`
	Rank   int   `json:"rank"`
}

//BuildRanking turns per-user scores into the global ranking. Users with a
//zero score are dropped entirely, the rest are ordered by score descending
//with ascending user id breaking ties, and ranks are 1-based positions.
func BuildRanking(scores []UserScore) []RankEntry {
	candidates := make([]UserScore, 0, len(scores))
	for _, s := range scores {
		if s.Score > 0 {
			candidates = append(candidates, s)
		}
	}
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Score != candidates[j].Score {
			return candidates[i].Score > candidates[j].Score
		}
		return candidates[i].UserID < candidates[j].UserID
	})
	ranking := make([]RankEntry, len(candidates))
	for i, s := range candidates {
		ranking[i] = RankEntry{UserID: s.UserID, Score: s.Score, Rank: i + 1}
	}
	return ranking
}

//RankOf is the 1-based rank of the user inside a ranking built by
//BuildRanking, 0 when the user is unranked
func RankOf(ranking []RankEntry, userID int64) int {
	for _, e := range ranking {
		if e.UserID == userID {
			return e.Rank
		}
	}
	return 0
}
