package utils

import (
	"regexp"
	"strconv"
	"strings"
)

var reNum = regexp.MustCompile(`([0-9]+(?:\.[0-9]+)?)`)

func ParseFloatSafe(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	v, _ := strconv.ParseFloat(s, 64)
	return v
}

func ParseIntSafe(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	v, _ := strconv.Atoi(s)
	return v
}

// ParseOptionalFloat различает "параметр не передан" и "параметр равен нулю":
// пустая строка или мусор -> nil, иначе указатель на значение
func ParseOptionalFloat(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

// ExtractFirstFloat достаёт первое число из текста вида "$ 85.00 / ночь"
func ExtractFirstFloat(s string) float64 {
	m := reNum.FindStringSubmatch(strings.ReplaceAll(s, ",", "."))
	if len(m) > 1 {
		v, _ := strconv.ParseFloat(m[1], 64)
		return v
	}
	return 0
}
