package model

import "testing"

func TestPointsFor(t *testing.T) {
	cases := map[string]uint{
		Easy:     10,
		Medium:   20,
		Advanced: 40,
		Expert:   80,
		"":       1,
		"insane": 1,
	}
	for difficulty, want := range cases {
		if got := PointsFor(difficulty); got != want {
			t.Fatalf("PointsFor(%q) = %d, want %d", difficulty, got, want)
		}
	}
}

func TestScorePoints(t *testing.T) {
	//3 likes on an easy task and 2 on an advanced solution
	got := ScorePoints(map[string]uint{Easy: 3, Advanced: 2})
	if got != 10*3+40*2 {
		t.Fatalf("ScorePoints = %d, want %d", got, 10*3+40*2)
	}
	if ScorePoints(nil) != 0 {
		t.Fatal("empty input must score zero")
	}
	//unknown tiers weigh 1 per like
	if ScorePoints(map[string]uint{"weird": 5}) != 5 {
		t.Fatal("unknown difficulty must weigh 1")
	}
}

func TestBuildRankingDropsZeroScores(t *testing.T) {
	ranking := BuildRanking([]UserScore{
		{UserID: 1, Score: 0},
		{UserID: 2, Score: 30},
		{UserID: 3, Score: 0},
	})
	if len(ranking) != 1 || ranking[0].UserID != 2 || ranking[0].Rank != 1 {
		t.Fatalf("unexpected ranking %+v", ranking)
	}
}

func TestBuildRankingOrderAndTieBreak(t *testing.T) {
	ranking := BuildRanking([]UserScore{
		{UserID: 7, Score: 80},
		{UserID: 3, Score: 120},
		{UserID: 5, Score: 80},
		{UserID: 9, Score: 10},
	})
	wantOrder := []int64{3, 5, 7, 9}
	if len(ranking) != len(wantOrder) {
		t.Fatalf("expected %d entries, got %d", len(wantOrder), len(ranking))
	}
	for i, uid := range wantOrder {
		if ranking[i].UserID != uid {
			t.Fatalf("position %d: got user %d, want %d", i, ranking[i].UserID, uid)
		}
		if ranking[i].Rank != i+1 {
			t.Fatalf("position %d: got rank %d, want %d", i, ranking[i].Rank, i+1)
		}
	}
}

func TestRankOf(t *testing.T) {
	ranking := BuildRanking([]UserScore{
		{UserID: 1, Score: 50},
		{UserID: 2, Score: 100},
	})
	if RankOf(ranking, 2) != 1 || RankOf(ranking, 1) != 2 {
		t.Fatalf("unexpected ranks in %+v", ranking)
	}
	if RankOf(ranking, 42) != 0 {
		t.Fatal("unknown user must be unranked")
	}
}

func TestTierLikesAdd(t *testing.T) {
	var tl TierLikes
	tl.Add(Easy, 2)
	tl.Add(Expert, 1)
	tl.Add("weird", 9)
	if tl.Easy != 2 || tl.Expert != 1 || tl.Medium != 0 || tl.Advanced != 0 {
		t.Fatalf("unexpected tier counts %+v", tl)
	}
}

func TestDifficultyTables(t *testing.T) {
	if !IsDifficulty(Expert) || IsDifficulty("nightmare") {
		t.Fatal("difficulty whitelist broken")
	}
	if DifficultyOrder(Easy) >= DifficultyOrder(Medium) ||
		DifficultyOrder(Medium) >= DifficultyOrder(Advanced) ||
		DifficultyOrder(Advanced) >= DifficultyOrder(Expert) {
		t.Fatal("difficulty order must be strictly increasing")
	}
	if DifficultyColor(Easy) != 0x28a745 {
		t.Fatal("wrong badge color for easy")
	}
	if DifficultyColor("nightmare") != 0x007bff {
		t.Fatal("unknown difficulty must use the fallback color")
	}
}
