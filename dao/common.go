package dao

import (
	"Samplepedia/common"
	"encoding/json"
	"reflect"
	"time"
)

//Col wraps one column pulled from mysql or redis. Redis returns strings, so
//every converter special-cases that.
type Col struct {
	data interface{}
}

func (c *Col) ToString() string {
	if s, ok := c.data.(string); ok {
		return s
	}
	return string(c.data.([]byte))
}

func (c *Col) ToInt64() int64 {
	if s, ok := c.data.(string); ok {
		return common.StrToInt64(s)
	}
	return c.data.(int64)
}

func (c *Col) ToInt() int {
	if s, ok := c.data.(string); ok {
		return common.StrToInt(s)
	}
	return int(c.ToInt64())
}

func (c *Col) ToBool() bool {
	if s, ok := c.data.(string); ok {
		return common.StrToBool(s)
	}
	return c.data.(int64) == 1
}

func (c *Col) ToUint() uint {
	if s, ok := c.data.(string); ok {
		return common.StrToUint(s)
	}
	return uint(c.ToInt64())
}

func (c *Col) ToUint64() uint64 {
	if s, ok := c.data.(string); ok {
		return common.StrToUint64(s)
	}
	return uint64(c.ToInt64())
}

func (c *Col) ToTime() time.Time {
	return common.StrToTime(c.ToString())
}

//ToTimePtr reads a nullable timestamp column, nil when unset
func (c *Col) ToTimePtr() *time.Time {
	if c.data == nil {
		return nil
	}
	s := c.ToString()
	if s == "" {
		return nil
	}
	t := common.StrToTime(s)
	return &t
}

func (c *Col) GetByteSlice() []byte {
	if reflect.TypeOf(c.data).Kind() == reflect.String {
		return []byte(c.data.(string))
	}
	return c.data.([]byte)
}

func (c *Col) ToStringSlice() []string {
	var res []string
	json.Unmarshal(c.GetByteSlice(), &res)
	if res == nil {
		return make([]string, 0)
	}
	return res
}

//raw sql fragments
func ToSqlConditions(cols []string) string {
	n := len(cols)
	sql := cols[0] + " = ?"
	for i := 1; i < n; i++ {
		sql += " and " + cols[i] + " = ?"
	}
	return sql
}

func ToSqlSelect(wants ...string) string {
	n := len(wants)
	sql := "select " + wants[0]
	for i := 1; i < n; i++ {
		sql += "," + wants[i]
	}
	return sql
}
