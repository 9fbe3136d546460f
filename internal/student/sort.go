package student

import "cmp"

// SortBy reorders records in place by key using insertion sort.
//
// Each element is shifted left past every predecessor that orders strictly
// after it, so records with equal keys keep their relative order. Descending
// is the exact reverse comparison of ascending. Names compare byte-wise.
// Unknown keys leave records untouched.
func SortBy(records []Record, key Key, ascending bool) {
	compare := comparator(key)
	if compare == nil || len(records) < 2 {
		return
	}

	for i := 1; i < len(records); i++ {
		current := records[i]
		j := i - 1
		for j >= 0 && after(compare(records[j], current), ascending) {
			records[j+1] = records[j]
			j--
		}
		records[j+1] = current
	}
}

// IsSorted reports whether records are already ordered by key.
func IsSorted(records []Record, key Key, ascending bool) bool {
	compare := comparator(key)
	if compare == nil {
		return false
	}
	for i := 1; i < len(records); i++ {
		if after(compare(records[i-1], records[i]), ascending) {
			return false
		}
	}
	return true
}

// after reports whether a comparison result places the left record after the right one.
func after(c int, ascending bool) bool {
	if ascending {
		return c > 0
	}
	return c < 0
}

func comparator(key Key) func(a, b Record) int {
	switch key {
	case KeyID:
		return func(a, b Record) int { return cmp.Compare(a.ID, b.ID) }
	case KeyName:
		return func(a, b Record) int { return cmp.Compare(a.Name, b.Name) }
	case KeyGrade:
		return func(a, b Record) int { return cmp.Compare(a.Grade, b.Grade) }
	}
	return nil
}
