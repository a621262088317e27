package utils

import "strconv"

func StrPtr(s string) *string {
	return &s
}

func PtrString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func ToInt(id string) (int, error) {
	n, err := strconv.ParseInt(id, 10, 64)
	return int(n), err
}
