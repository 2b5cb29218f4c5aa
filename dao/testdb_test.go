package dao

import (
	"context"
	"testing"

	"github.com/go-redis/redis/v8"
	"github.com/go-xorm/xorm"
	_ "github.com/mattn/go-sqlite3"
	"xorm.io/core"
)

//openTestEngine points the package globals at an in-memory sqlite database.
//The cache client targets a closed port so every cache lookup misses and the
//code under test runs against the database alone.
func openTestEngine(t *testing.T) {
	t.Helper()
	e, err := xorm.NewEngine("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	e.SetMapper(core.GonicMapper{})
	beans := []interface{}{new(Task), new(TaskLike), new(Solution), new(SolutionLike)}
	for _, bean := range beans {
		if err := e.Sync2(bean); err != nil {
			t.Fatalf("sync %T: %v", bean, err)
		}
	}
	engine = e
	rdb = redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})
	ctx = context.TODO()
	t.Cleanup(func() { e.Close() })
}

func mustInsert(t *testing.T, bean interface{}) {
	t.Helper()
	if _, err := engine.InsertOne(bean); err != nil {
		t.Fatalf("insert %T: %v", bean, err)
	}
}
