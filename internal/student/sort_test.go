package student

import (
	"reflect"
	"testing"
)

func ids(records []Record) []int {
	out := make([]int, len(records))
	for i, r := range records {
		out[i] = r.ID
	}
	return out
}

func TestSortBy(t *testing.T) {
	base := []Record{
		{ID: 3, Name: "Cara", Grade: 70},
		{ID: 1, Name: "alice", Grade: 95.5},
		{ID: 4, Name: "Bob", Grade: 88},
		{ID: 2, Name: "Alice", Grade: 60},
	}

	tests := []struct {
		name      string
		key       Key
		ascending bool
		want      []int
	}{
		{"id ascending", KeyID, true, []int{1, 2, 3, 4}},
		{"id descending", KeyID, false, []int{4, 3, 2, 1}},
		{"grade ascending", KeyGrade, true, []int{2, 3, 4, 1}},
		{"grade descending", KeyGrade, false, []int{1, 4, 3, 2}},
		// Byte-wise: uppercase sorts before lowercase.
		{"name ascending", KeyName, true, []int{2, 4, 3, 1}},
		{"name descending", KeyName, false, []int{1, 3, 4, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records := append([]Record(nil), base...)
			SortBy(records, tt.key, tt.ascending)
			if got := ids(records); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SortBy(%s, %v) = %v, want %v", tt.key, tt.ascending, got, tt.want)
			}
		})
	}
}

func TestSortBy_TiesKeepInsertionOrder(t *testing.T) {
	records := []Record{
		{ID: 1, Name: "B", Grade: 80},
		{ID: 2, Name: "A", Grade: 90},
		{ID: 3, Name: "A", Grade: 70},
	}

	SortBy(records, KeyName, true)

	want := []Record{
		{ID: 2, Name: "A", Grade: 90},
		{ID: 3, Name: "A", Grade: 70},
		{ID: 1, Name: "B", Grade: 80},
	}
	if !reflect.DeepEqual(records, want) {
		t.Errorf("SortBy = %v, want %v", records, want)
	}
}

func TestSortBy_DescendingTiesKeepInsertionOrder(t *testing.T) {
	records := []Record{
		{ID: 5, Grade: 50},
		{ID: 6, Grade: 90},
		{ID: 7, Grade: 50},
		{ID: 8, Grade: 90},
	}

	SortBy(records, KeyGrade, false)

	if got, want := ids(records), []int{6, 8, 5, 7}; !reflect.DeepEqual(got, want) {
		t.Errorf("SortBy = %v, want %v", got, want)
	}
}

func TestSortBy_Idempotent(t *testing.T) {
	for _, key := range Keys {
		for _, asc := range []bool{true, false} {
			records := []Record{
				{ID: 9, Name: "Zed", Grade: 10},
				{ID: 2, Name: "Amy", Grade: 10},
				{ID: 5, Name: "Amy", Grade: 75},
				{ID: 1, Name: "Kim", Grade: -3},
			}
			SortBy(records, key, asc)
			once := append([]Record(nil), records...)
			SortBy(records, key, asc)
			if !reflect.DeepEqual(records, once) {
				t.Errorf("key=%s asc=%v: second sort changed order: %v -> %v", key, asc, ids(once), ids(records))
			}
			if !IsSorted(records, key, asc) {
				t.Errorf("key=%s asc=%v: IsSorted = false after sort", key, asc)
			}
		}
	}
}

func TestSortBy_AscendingThenDescendingReversesKeys(t *testing.T) {
	records := []Record{
		{ID: 1, Grade: 70},
		{ID: 2, Grade: 90},
		{ID: 3, Grade: 70},
		{ID: 4, Grade: 80},
	}

	SortBy(records, KeyGrade, true)
	if got, want := ids(records), []int{1, 3, 4, 2}; !reflect.DeepEqual(got, want) {
		t.Fatalf("ascending = %v, want %v", got, want)
	}

	SortBy(records, KeyGrade, false)
	// Key groups reverse; the 70 tie group keeps 1 before 3.
	if got, want := ids(records), []int{2, 4, 1, 3}; !reflect.DeepEqual(got, want) {
		t.Errorf("descending = %v, want %v", got, want)
	}
}

func TestSortBy_SmallAndUnknown(t *testing.T) {
	SortBy(nil, KeyID, true)

	one := []Record{{ID: 1}}
	SortBy(one, KeyID, false)
	if one[0].ID != 1 {
		t.Errorf("single record changed: %v", one)
	}

	records := []Record{{ID: 2}, {ID: 1}}
	SortBy(records, Key("age"), true)
	if got, want := ids(records), []int{2, 1}; !reflect.DeepEqual(got, want) {
		t.Errorf("unknown key reordered records: %v", got)
	}
	if IsSorted(records, Key("age"), true) {
		t.Error("IsSorted with unknown key = true, want false")
	}
}
