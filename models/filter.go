package models

import "strings"

// SortKey - ключ сортировки выдачи
type SortKey string

const (
	SortPriceAsc   SortKey = "price-asc"
	SortPriceDesc  SortKey = "price-desc"
	SortRatingDesc SortKey = "rating-desc"
)

// ParseSortKey возвращает ключ сортировки; пустой ключ = порядок релевантности
func ParseSortKey(s string) SortKey {
	switch SortKey(strings.TrimSpace(s)) {
	case SortPriceAsc:
		return SortPriceAsc
	case SortPriceDesc:
		return SortPriceDesc
	case SortRatingDesc:
		return SortRatingDesc
	}
	return ""
}

// FilterState - настройки фильтрации и сортировки выдачи.
// Границы цены включительные; nil = граница не задана (ноль - валидная граница).
// Пустой Kinds означает "все категории", никогда не "ничего".
type FilterState struct {
	Kinds     []ServiceKind `json:"kinds,omitempty"`
	PriceMin  *float64      `json:"priceMin,omitempty"`
	PriceMax  *float64      `json:"priceMax,omitempty"`
	RatingMin float64       `json:"ratingMin,omitempty"` // 0 = без ограничения
	City      string        `json:"city,omitempty"`
	Sort      SortKey       `json:"sort,omitempty"`
}

// EffectiveKinds - категории к показу; пустой выбор расширяется до всех четырёх
func (f FilterState) EffectiveKinds() []ServiceKind {
	if len(f.Kinds) == 0 {
		return AllKinds()
	}
	return f.Kinds
}

// CityQuery - нормализованный фильтр по городу; пустая строка и пробелы = фильтра нет
func (f FilterState) CityQuery() string {
	return strings.TrimSpace(f.City)
}
