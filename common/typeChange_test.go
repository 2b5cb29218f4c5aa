package common

import (
	"testing"
	"time"
)

func TestStrConversions(t *testing.T) {
	if StrToInt("42") != 42 || StrToInt("junk") != 0 {
		t.Fatal("StrToInt broken")
	}
	if StrToInt64("-7") != -7 {
		t.Fatal("StrToInt64 broken")
	}
	if StrToUint("12") != 12 || StrToUint("-1") != 0 {
		t.Fatal("StrToUint broken")
	}
	if !StrToBool("true") || StrToBool("no") {
		t.Fatal("StrToBool broken")
	}
	if StrToFloat64("2.5") != 2.5 {
		t.Fatal("StrToFloat64 broken")
	}
}

func TestTimeRoundTrip(t *testing.T) {
	want := time.Date(2026, 2, 14, 8, 30, 0, 0, time.UTC)
	s := TimeToStr(want)
	if s != "2026-02-14 08:30:00" {
		t.Fatalf("TimeToStr = %q", s)
	}
	got := StrToTime(s)
	if !got.Equal(want) {
		t.Fatalf("round trip got %v, want %v", got, want)
	}
	if got.Location() != time.UTC {
		t.Fatal("parsed time must be in UTC")
	}
}

func TestStructToMapByJsonTag(t *testing.T) {
	type row struct {
		Name    string    `json:"name"`
		At      time.Time `json:"at"`
		Skipped string    `json:"-"`
	}
	mp := StructToMapByJsonTag(&row{
		Name: "demo",
		At:   time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	})
	if mp["name"] != "demo" {
		t.Fatalf("name = %v", mp["name"])
	}
	if mp["at"] != "2026-01-02 03:04:05" {
		t.Fatalf("at = %v", mp["at"])
	}
	if _, ok := mp["-"]; ok {
		t.Fatal("ignored field leaked into the map")
	}
}
