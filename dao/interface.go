package dao

import (
	"errors"
	"time"
)

//SingleData is one cacheable database object. Per-entity Dao structs
//implement it, the generic helpers below do the rest.
type SingleData interface {
	GetRedisKey() string
	GetID() int64
	GetTableName() string
	GetRedisExpire() time.Duration
	GetSelf() interface{}

	BeforePutToRedis() error
	BeforeDelete() error
}

func PutToRedis(sd SingleData) error {
	sd.BeforePutToRedis()
	self := sd.GetSelf()
	if err := putObjToRedis(sd.GetRedisKey(), self, sd.GetRedisExpire()); err != nil {
		return err
	}
	return nil
}

func IsInRedis(sd SingleData) bool {
	return rdb.Exists(ctx, sd.GetRedisKey()).Val() > 0
}

//refresh the expire when cached, insert otherwise
func PutToRedisIfNotIn(sd SingleData) error {
	key := sd.GetRedisKey()
	if rdb.Exists(ctx, key).Val() > 0 {
		sd.BeforePutToRedis()
		if sd.GetRedisExpire() != 0 {
			rdb.Expire(ctx, key, sd.GetRedisExpire())
		}
		return nil
	}
	return PutToRedis(sd)
}

func DeleteFromRedis(sd SingleData) error {
	return rdb.Del(ctx, sd.GetRedisKey()).Err()
}

func Create(sd SingleData) error {
	self := sd.GetSelf()
	if num, err := engine.InsertOne(self); err != nil || num != 1 {
		return err
	}
	return PutToRedis(sd)
}

func Exists(sd SingleData) bool {
	if IsInRedis(sd) {
		return true
	}
	exist, err := engine.Table(sd.GetTableName()).Where("id = ?", sd.GetID()).Exist()
	if err != nil || !exist {
		return false
	}
	return true
}

func Delete(sd SingleData) error {
	id := sd.GetID()
	if id == 0 {
		return errors.New("not found")
	}
	if err := sd.BeforeDelete(); err != nil {
		return err
	}
	if err := DeleteFromRedis(sd); err != nil {
		return err
	}
	sql := "delete from " + sd.GetTableName() + " where id=?"
	if _, err := engine.Exec(sql, id); err != nil {
		return err
	}
	return nil
}

func GetSelfAll(sd SingleData) error {
	if !Exists(sd) {
		return errors.New("not found")
	}
	key := sd.GetRedisKey()
	self := sd.GetSelf()
	if rdb.Exists(ctx, key).Val() > 0 {
		if err := GetObjFromRedis(key, self); err != nil {
			return err
		}
	} else {
		if exist, err := engine.ID(sd.GetID()).Get(self); !exist || err != nil {
			return nil
		}
		if err := PutToRedis(sd); err != nil {
			return err
		}
	}
	return nil
}

//one column of one object, served from the cache when possible
func OneCol(sd SingleData, want string) *Col {
	x := new(Col)
	key := sd.GetRedisKey()
	if rdb.Exists(ctx, key).Val() > 0 {
		x.data = rdb.HGet(ctx, key, want).Val()
	} else {
		if GetSelfAll(sd) != nil {
			return nil
		}
		return OneCol(sd, want)
	}
	return x
}

func Cols(sd SingleData, wants ...string) []Col {
	n := len(wants)
	ret := make([]Col, n)
	x := make([]interface{}, n)
	key := sd.GetRedisKey()
	if rdb.Exists(ctx, key).Val() > 0 {
		x = rdb.HMGet(ctx, key, wants...).Val()
	} else {
		if GetSelfAll(sd) != nil {
			return nil
		}
		return Cols(sd, wants...)
	}
	for i := 0; i < n; i++ {
		ret[i].data = x[i]
	}
	return ret
}

//update columns in mysql and mirror them into the cache; never change the
//columns the redis key is derived from
func UpdateCols(sd SingleData, mp map[string]interface{}) error {
	args := make([]interface{}, 0)
	sql := "update `" + sd.GetTableName() + "` set "
	first := true
	for k, v := range mp {
		t := typeAnalyzed(v)
		args = append(args, k, t)
		if first {
			sql += "`" + k + "`=?"
			first = false
		} else {
			sql += ",`" + k + "`=?"
		}
	}
	sql += " where id=?"
	n := len(mp)
	sqlArgs := make([]interface{}, 2+n)
	sqlArgs[0] = sql
	for i := 0; i < n; i++ {
		sqlArgs[i+1] = args[2*i+1]
	}
	sqlArgs[n+1] = sd.GetID()
	if _, err := engine.Exec(sqlArgs...); err != nil {
		return err
	}
	if key := sd.GetRedisKey(); rdb.Exists(ctx, key).Val() > 0 {
		if _, err := rdb.HMSet(ctx, key, args...).Result(); err != nil {
			return err
		}
		if sd.GetRedisExpire() != 0 {
			rdb.Expire(ctx, key, sd.GetRedisExpire())
		}
	} else {
		if err := GetSelfAll(sd); err != nil {
			return err
		}
		PutToRedis(sd)
	}
	return nil
}

//ManyData queries ids of rows matching equality conditions, a[0]/a[1] are
//limit and offset when given
type ManyData interface {
	GetIDs(cols []string, values []interface{}, a ...int) []int64
}

func Count(md ManyData, cols []string, values []interface{}, a ...int) int {
	return len(md.GetIDs(cols, values, a...))
}

func CountOneCol(md ManyData, col string, value interface{}) int {
	return Count(md, []string{col}, []interface{}{value})
}
