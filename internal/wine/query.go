package wine

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// 过滤与排序是对已加载快照的纯变换，无任何持久化副作用。

// 过滤模式。除这两个特殊值外，任何酒类值都可以作为模式。
const (
	FilterAll      = "all"
	FilterFavorite = "favorite"
)

// 排序键。
const (
	SortDateDesc   = "date-desc"
	SortDateAsc    = "date-asc"
	SortRatingDesc = "rating-desc"
	SortRatingAsc  = "rating-asc"
	SortNameAsc    = "name-asc"
	SortNameDesc   = "name-desc"
)

// Filter 按模式筛选记录：
// all 原样透传；favorite 只保留收藏；
// 其余任何值按 Tasting.WineType 精确匹配，没有品鉴子记录的条目被排除。
func Filter(records []Wine, mode string) []Wine {
	if mode == FilterAll {
		return records
	}

	filtered := make([]Wine, 0, len(records))
	if mode == FilterFavorite {
		for _, w := range records {
			if w.Favorite {
				filtered = append(filtered, w)
			}
		}
		return filtered
	}

	for _, w := range records {
		if w.Tasting != nil && w.Tasting.WineType == WineType(mode) {
			filtered = append(filtered, w)
		}
	}
	return filtered
}

// Sort 按指定键返回新的有序序列；稳定排序，相等元素保持原有相对顺序，
// 且绝不修改输入序列。未知的键原样返回副本。
// 名称比较使用应用展示语言（日语）的区域感知排序规则。
func Sort(records []Wine, key string) []Wine {
	sorted := make([]Wine, len(records))
	copy(sorted, records)

	switch key {
	case SortDateDesc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].EffectiveDate().After(sorted[j].EffectiveDate())
		})
	case SortDateAsc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].EffectiveDate().Before(sorted[j].EffectiveDate())
		})
	case SortRatingDesc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Rating > sorted[j].Rating
		})
	case SortRatingAsc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Rating < sorted[j].Rating
		})
	case SortNameAsc:
		c := collate.New(language.Japanese)
		sort.SliceStable(sorted, func(i, j int) bool {
			return c.CompareString(sorted[i].Name, sorted[j].Name) < 0
		})
	case SortNameDesc:
		c := collate.New(language.Japanese)
		sort.SliceStable(sorted, func(i, j int) bool {
			return c.CompareString(sorted[i].Name, sorted[j].Name) > 0
		})
	}

	return sorted
}
