package dao

import (
	"Samplepedia/common"
	"Samplepedia/model"
	"context"
	"errors"
	"github.com/go-redis/redis/v8"
	_ "github.com/go-sql-driver/mysql"
	"github.com/go-xorm/xorm"
	"xorm.io/core"
)

type H = map[string]interface{}

var (
	engine *xorm.Engine  //mysql
	rdb    *redis.Client //object cache
	ctx    context.Context
)

func connect(cfg H) error {
	var err error
	mysql, ok := cfg["mysql"].(H)
	if !ok {
		return errors.New("missing mysql config")
	}
	dataSourceName := mysql["name"].(string) + ":" + mysql["password"].(string) + "@tcp(" + mysql["host"].(string) + ")/" + mysql["database"].(string) + "?charset=utf8"
	engine, err = xorm.NewEngine("mysql", dataSourceName)
	if err != nil {
		return err
	}
	if err = engine.Ping(); err != nil {
		return err
	}
	engine.SetMapper(core.GonicMapper{})

	rds, ok := cfg["redis"].(H)
	if !ok {
		return errors.New("missing redis config")
	}
	rdb = redis.NewClient(&redis.Options{
		Addr:     rds["addr"].(string),
		Password: rds["password"].(string),
		DB:       0,
	})
	ctx = context.TODO()
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		return err
	}
	return nil
}

func sync(cfg H) error {
	beans := []interface{}{
		new(model.User),
		new(model.Task),
		new(model.TaskLike),
		new(model.Solution),
		new(model.SolutionLike),
		new(model.Comment),
		new(model.Notification),
		new(model.Course),
		new(model.CourseReference),
		new(model.TaskCourseRef),
	}
	for _, bean := range beans {
		if err := engine.Sync2(bean); err != nil {
			return err
		}
	}

	userInitRedis()

	//seed the staff super admin on first start
	superAdmin, ok := cfg["super_admin"].(H)
	if !ok {
		return errors.New("missing super_admin config")
	}
	ud := &UserDao{Username: superAdmin["name"].(string)}
	if ud.GetID() == 0 {
		ud.User = &User{
			Username:     superAdmin["name"].(string),
			Password:     common.GetMD5Password(superAdmin["password"].(string)),
			Email:        superAdmin["email"].(string),
			Avatar:       superAdmin["avatar"].(string),
			IsStaff:      true,
			IsSuperAdmin: true,
		}
		if err := ud.Create(); err != nil {
			return err
		}
	}
	return nil
}

func Init(cfg H) error {
	if err := connect(cfg); err != nil {
		return err
	}
	return sync(cfg)
}
