package dao

import (
	"testing"
	"time"
)

//redis hands every column back as a string, mysql as typed values; both
//shapes must convert the same way
func TestColConversions(t *testing.T) {
	if StrCol("42").ToInt64() != 42 || (&Col{data: int64(42)}).ToInt64() != 42 {
		t.Fatal("ToInt64 broken")
	}
	if StrCol("7").ToInt() != 7 {
		t.Fatal("ToInt broken")
	}
	if StrCol("9").ToUint() != 9 || StrCol("9").ToUint64() != 9 {
		t.Fatal("unsigned conversions broken")
	}
	if !StrCol("true").ToBool() || StrCol("false").ToBool() {
		t.Fatal("ToBool broken on redis strings")
	}
	if !(&Col{data: int64(1)}).ToBool() || (&Col{data: int64(0)}).ToBool() {
		t.Fatal("ToBool broken on mysql ints")
	}
	if (&Col{data: []byte("abc")}).ToString() != "abc" {
		t.Fatal("ToString broken on byte slices")
	}
}

func TestColToTime(t *testing.T) {
	want := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	if !StrCol("2026-05-01 09:00:00").ToTime().Equal(want) {
		t.Fatal("ToTime broken")
	}
}

//hidden_until is nullable, an unset column must come back as nil
func TestColToTimePtr(t *testing.T) {
	if StrCol("").ToTimePtr() != nil {
		t.Fatal("empty column must be nil")
	}
	if (&Col{data: nil}).ToTimePtr() != nil {
		t.Fatal("missing column must be nil")
	}
	got := StrCol("2026-05-01 09:00:00").ToTimePtr()
	if got == nil || !got.Equal(time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected value %v", got)
	}
}

func TestColToStringSlice(t *testing.T) {
	got := StrCol(`["packer","upx"]`).ToStringSlice()
	if len(got) != 2 || got[0] != "packer" || got[1] != "upx" {
		t.Fatalf("unexpected slice %v", got)
	}
	if len(StrCol("not json").ToStringSlice()) != 0 {
		t.Fatal("bad json must give an empty slice")
	}
}

func TestSqlBuilders(t *testing.T) {
	if got := ToSqlConditions([]string{"a", "b"}); got != "a = ? and b = ?" {
		t.Fatalf("ToSqlConditions = %q", got)
	}
	if got := ToSqlSelect("id", "name"); got != "select id,name" {
		t.Fatalf("ToSqlSelect = %q", got)
	}
}
