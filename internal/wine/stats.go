package wine

import (
	"math"
	"sort"
)

// Stats 是对一次集合快照的汇总指标。
type Stats struct {
	Total               int              `json:"total"`
	AvgRating           float64          `json:"avgRating"`
	RatingDistribution  map[int]int      `json:"ratingDistribution"`
	TypeDistribution    map[WineType]int `json:"typeDistribution"`
	RegionDistribution  map[string]int   `json:"regionDistribution"`
	VarietyDistribution map[string]int   `json:"varietyDistribution"`
	FavoriteCount       int              `json:"favoriteCount"`
}

// Aggregate 是纯归约器：每次调用都从输入完整重算，调用之间没有共享状态。
// 空输入返回全零结果与空映射，不会触发除零。
func Aggregate(records []Wine) Stats {
	stats := Stats{
		RatingDistribution:  map[int]int{},
		TypeDistribution:    map[WineType]int{},
		RegionDistribution:  map[string]int{},
		VarietyDistribution: map[string]int{},
	}

	stats.Total = len(records)
	if stats.Total == 0 {
		return stats
	}

	// 平均评分，保留一位小数
	sum := 0
	for _, w := range records {
		sum += w.Rating
	}
	stats.AvgRating = math.Round(float64(sum)/float64(stats.Total)*10) / 10

	// 评分分布：0~5每一档都有计数
	for i := 0; i <= 5; i++ {
		stats.RatingDistribution[i] = 0
	}
	for _, w := range records {
		if w.Rating >= 0 && w.Rating <= 5 {
			stats.RatingDistribution[w.Rating]++
		}
	}

	// 酒类分布：只统计携带品鉴子记录的条目，缺失的类型不出现
	for _, w := range records {
		if w.Tasting != nil && w.Tasting.WineType != "" {
			stats.TypeDistribution[w.Tasting.WineType]++
		}
	}

	stats.RegionDistribution = topCounts(records, func(w *Wine) string { return w.Region })
	stats.VarietyDistribution = topCounts(records, func(w *Wine) string { return w.Variety })

	for _, w := range records {
		if w.Favorite {
			stats.FavoriteCount++
		}
	}

	return stats
}

// topCounts 统计某字段非空取值的出现次数并取前5名；
// 计数相同的取值按在输入序列中首次出现的先后决胜。
func topCounts(records []Wine, field func(*Wine) string) map[string]int {
	counts := map[string]int{}
	firstSeen := map[string]int{}
	for i, w := range records {
		v := field(&w)
		if v == "" {
			continue
		}
		if _, ok := counts[v]; !ok {
			firstSeen[v] = i
		}
		counts[v]++
	}

	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if counts[keys[i]] != counts[keys[j]] {
			return counts[keys[i]] > counts[keys[j]]
		}
		return firstSeen[keys[i]] < firstSeen[keys[j]]
	})

	top := map[string]int{}
	for i, k := range keys {
		if i >= 5 {
			break
		}
		top[k] = counts[k]
	}
	return top
}
