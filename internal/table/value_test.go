package table_test

import (
	"encoding/json"
	"math"
	"testing"

	"hixminer/internal/table"
)

func TestValueString(t *testing.T) {
	cases := []struct {
		v    table.Value
		want string
	}{
		{table.Null(), ""},
		{table.Text("pijn"), "pijn"},
		{table.Number(3), "3"},
		{table.Number(2.5), "2.5"},
		{table.Bool(true), "TRUE"},
	}
	for _, tc := range cases {
		if got := tc.v.String(); got != tc.want {
			t.Fatalf("%v.String() = %q, want %q", tc.v.Kind(), got, tc.want)
		}
	}
}

func TestValueAny(t *testing.T) {
	if got := table.Number(4).Any(); got != int64(4) {
		t.Fatalf("whole numbers should become int64, got %T", got)
	}
	if got := table.Number(4.25).Any(); got != 4.25 {
		t.Fatalf("unexpected float: %v", got)
	}
	if got := table.Null().Any(); got != nil {
		t.Fatalf("null should be nil, got %v", got)
	}
}

func TestValueMarshalJSON(t *testing.T) {
	row := []table.Value{table.Text(`a "b"`), table.Number(1), table.Bool(false), table.Null(), table.Number(math.NaN())}
	data, err := json.Marshal(row)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `["a \"b\"",1,false,null,null]` {
		t.Fatalf("unexpected json: %s", data)
	}
}

func TestFromAny(t *testing.T) {
	cases := []struct {
		raw  any
		want table.Value
	}{
		{nil, table.Null()},
		{"x", table.Text("x")},
		{[]byte("y"), table.Text("y")},
		{int64(7), table.Number(7)},
		{1.5, table.Number(1.5)},
		{true, table.Bool(true)},
	}
	for _, tc := range cases {
		if got := table.FromAny(tc.raw); got != tc.want {
			t.Fatalf("FromAny(%v) = %v, want %v", tc.raw, got, tc.want)
		}
	}
}
