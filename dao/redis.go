package dao

import (
	"Samplepedia/common"
	"encoding/json"
	"errors"
	"reflect"
	"strconv"
	"time"
)

//serialize one field value for a redis hash
func typeAnalyzed(x interface{}) interface{} {
	switch v := x.(type) {
	case string, int64, int, uint, uint64, bool, float32, float64, []byte:
		return x
	case time.Time:
		return common.TimeToStr(v)
	case *time.Time:
		if v == nil {
			return ""
		}
		return common.TimeToStr(*v)
	default:
		jsonValue, _ := json.Marshal(x)
		return jsonValue
	}
}

//store a struct into a redis hash keyed by json tags, expire 0 keeps forever
func putObjToRedis(key string, obj interface{}, expire time.Duration) error {
	objType := reflect.TypeOf(obj)
	objVal := reflect.ValueOf(obj)
	if objType.Kind() == reflect.Ptr {
		if objVal.IsNil() {
			return errors.New("nil object")
		}
		objType = objType.Elem()
		objVal = objVal.Elem()
		if objType.Kind() != reflect.Struct {
			return errors.New("not a struct")
		}
	} else {
		return errors.New("need a struct pointer")
	}
	var args []interface{}
	num := objType.NumField()
	for i := 0; i < num; i++ {
		t := objType.Field(i)
		v := objVal.Field(i)
		tag := t.Tag.Get("json")
		if tag == "" || tag == "-" {
			continue
		}
		args = append(args, tag, typeAnalyzed(v.Interface()))
	}
	if _, err := rdb.HMSet(ctx, key, args...).Result(); err != nil {
		return err
	}
	if expire != 0 {
		rdb.Expire(ctx, key, expire)
	}
	return nil
}

//read a struct back from a redis hash by json tags
func GetObjFromRedis(key string, obj interface{}) error {
	objType := reflect.TypeOf(obj)
	objVal := reflect.ValueOf(obj)
	if objType.Kind() == reflect.Ptr {
		if objVal.IsNil() {
			return errors.New("nil object")
		}
		objType = objType.Elem()
		if objType.Kind() != reflect.Struct {
			return errors.New("not a struct")
		}
	} else {
		return errors.New("need a struct pointer")
	}
	mp, err := rdb.HGetAll(ctx, key).Result()
	if err != nil {
		return err
	}
	v := reflect.Indirect(objVal)
	num := v.NumField()
	for i := 0; i < num; i++ {
		valueInterface := v.Field(i).Interface()
		tag := objType.Field(i).Tag.Get("json")
		if tag == "" || tag == "-" {
			continue
		}
		rawValue, ok := mp[tag]
		if !ok {
			continue
		}
		switch valueInterface.(type) {
		case string:
			v.Field(i).SetString(rawValue)
		case int64, int:
			v.Field(i).SetInt(common.StrToInt64(rawValue))
		case uint64, uint:
			v.Field(i).SetUint(common.StrToUint64(rawValue))
		case bool:
			v.Field(i).SetBool(common.StrToBool(rawValue))
		case float64, float32:
			num, _ := strconv.ParseFloat(rawValue, 64)
			v.Field(i).SetFloat(num)
		case time.Time:
			v.Field(i).Set(reflect.ValueOf(common.StrToTime(rawValue)))
		case *time.Time:
			if rawValue == "" {
				v.Field(i).Set(reflect.Zero(v.Field(i).Type()))
			} else {
				t := common.StrToTime(rawValue)
				v.Field(i).Set(reflect.ValueOf(&t))
			}
		case []string:
			var x []string
			if err := json.Unmarshal([]byte(rawValue), &x); err != nil {
				return err
			}
			v.Field(i).Set(reflect.ValueOf(x))
		default:
			return errors.New("unhandled redis field type")
		}
	}
	return nil
}
