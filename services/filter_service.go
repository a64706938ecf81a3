package services

import (
	"sort"
	"strings"

	"github.com/Martin-Valle/booking-mvc/models"
)

// ApplyFilters - чистая функция фильтрации и сортировки выдачи.
// Этапы идут строго по порядку: категория -> цена -> город -> рейтинг -> сортировка.
// Сортировка стабильная: элементы с равным ключом сохраняют исходный порядок.
// Повторное применение того же фильтра ничего не меняет
func ApplyFilters(results []models.SearchResult, f models.FilterState) []models.SearchResult {
	out := make([]models.SearchResult, 0, len(results))

	// 1. Категории. Пустой выбор означает "все", никогда "ничего"
	kinds := map[models.ServiceKind]bool{}
	for _, k := range f.EffectiveKinds() {
		kinds[k] = true
	}
	for _, r := range results {
		if kinds[r.Kind] {
			out = append(out, r)
		}
	}

	// 2. Цена единицы по категории, границы включительные.
	// Ноль - валидная граница, отсутствие границы = nil
	if f.PriceMin != nil || f.PriceMax != nil {
		filtered := out[:0]
		for _, r := range out {
			p := r.UnitPrice()
			if f.PriceMin != nil && p < *f.PriceMin {
				continue
			}
			if f.PriceMax != nil && p > *f.PriceMax {
				continue
			}
			filtered = append(filtered, r)
		}
		out = filtered
	}

	// 3. Город: подстрока без учёта регистра по городу+стране.
	// Рейсы городом не фильтруются - их маршрут задаёт сам запрос
	if city := f.CityQuery(); city != "" {
		needle := strings.ToLower(city)
		filtered := out[:0]
		for _, r := range out {
			if r.Kind == models.KindFlight {
				filtered = append(filtered, r)
				continue
			}
			if strings.Contains(strings.ToLower(r.LocationText()), needle) {
				filtered = append(filtered, r)
			}
		}
		out = filtered
	}

	// 4. Минимальный рейтинг - только для отелей и ресторанов.
	// Авто и рейсы рейтинга не имеют и проходят всегда
	if f.RatingMin > 0 {
		filtered := out[:0]
		for _, r := range out {
			rating, ok := r.RatingValue()
			if !ok || rating >= f.RatingMin {
				filtered = append(filtered, r)
			}
		}
		out = filtered
	}

	// 5. Сортировка. Пустой ключ = порядок релевантности от каталога
	switch f.Sort {
	case models.SortPriceAsc:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].UnitPrice() < out[j].UnitPrice()
		})
	case models.SortPriceDesc:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].UnitPrice() > out[j].UnitPrice()
		})
	case models.SortRatingDesc:
		// Безрейтинговые категории уходят в конец, стабильно между собой
		sort.SliceStable(out, func(i, j int) bool {
			return sortRating(out[i]) > sortRating(out[j])
		})
	}

	return out
}

func sortRating(r models.SearchResult) float64 {
	rating, ok := r.RatingValue()
	if !ok {
		return -1
	}
	return rating
}
