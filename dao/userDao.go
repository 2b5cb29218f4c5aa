package dao

import (
	"Samplepedia/model"
	"strconv"
	"time"
)

const (
	USER_REDIS_EXPIRE = 0 //users never expire from the cache
	USER_HASH_KEY     = "user_hash(name:id)"
)

type User = model.User

type UserDao struct {
	ID       int64
	Username string
	User     *User
}

func userInitRedis() {
	users := make([]User, 0)
	engine.Find(&users)
	for i := range users {
		ud := &UserDao{User: &users[i]}
		PutToRedisIfNotIn(ud)
	}
}

func (ud *UserDao) GetRedisExpire() time.Duration {
	return USER_REDIS_EXPIRE
}

func (ud *UserDao) GetTableName() string {
	return "user"
}

func (ud *UserDao) GetSelf() interface{} {
	if ud.User == nil {
		ud.User = &User{}
	}
	return ud.User
}

func (ud *UserDao) GetName() string {
	if ud.Username == "" {
		if ud.User != nil && ud.User.Username != "" {
			ud.Username = ud.User.Username
		} else {
			ud.Username = OneCol(ud, "username").ToString()
		}
	}
	return ud.Username
}

func (ud *UserDao) GetRedisKey() string {
	return ud.GetTableName() + "_" + strconv.FormatInt(ud.GetID(), 10)
}

func (ud *UserDao) GetID() int64 {
	if ud.ID == 0 {
		if ud.User != nil && ud.User.ID != 0 {
			ud.ID = ud.User.ID
		} else {
			name := ud.Username
			if name == "" && ud.User != nil {
				name = ud.User.Username
			}
			if name != "" {
				if rdb.HExists(ctx, USER_HASH_KEY, name).Val() {
					ud.ID = StrCol(rdb.HGet(ctx, USER_HASH_KEY, name).Val()).ToInt64()
				} else {
					x := new(Col)
					if ok, err := engine.SQL("select id from user where username = ?", name).Get(&x.data); err == nil && ok {
						ud.ID = x.ToInt64()
					}
				}
			}
		}
	}
	return ud.ID
}

func (ud *UserDao) BeforePutToRedis() error {
	rdb.HSet(ctx, USER_HASH_KEY, ud.GetName(), ud.GetID())
	return nil
}

func (ud *UserDao) BeforeDelete() error {
	rdb.HDel(ctx, USER_HASH_KEY, ud.GetName())
	return nil
}

func (ud *UserDao) Create() error {
	return Create(ud)
}

func (ud *UserDao) Update(mp map[string]interface{}) error {
	oldName := ud.GetName()
	if err := UpdateCols(ud, mp); err != nil {
		return err
	}
	if newName, ok := mp["username"]; ok {
		rdb.HDel(ctx, USER_HASH_KEY, oldName)
		ud.Username = newName.(string)
		ud.BeforePutToRedis()
	}
	return nil
}

//Viewer builds the identity descriptor permission checks run against
func (ud *UserDao) Viewer() model.Viewer {
	if ud.GetID() == 0 {
		return model.Viewer{}
	}
	return model.Viewer{ID: ud.ID, IsStaff: OneCol(ud, "is_staff").ToBool()}
}

//StrCol wraps a redis string into a Col
func StrCol(s string) *Col {
	return &Col{data: s}
}

type UsersData struct {
	IDs []int64
}

func (us *UsersData) GetIDs(cols []string, values []interface{}, a ...int) []int64 {
	if len(a) == 0 {
		engine.Table("user").Where(ToSqlConditions(cols), values...).Cols("id").Find(&us.IDs)
	} else {
		engine.Table("user").Where(ToSqlConditions(cols), values...).Cols("id").Limit(a[0], a[1]).Find(&us.IDs)
	}
	return us.IDs
}
