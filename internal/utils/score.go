package utils

import (
	"math"
)

// ScoreConfig 排名分数配置
type ScoreConfig struct {
	RatingWeight float64 // 均分权重 (5.0)
}

var DefaultScoreConfig = ScoreConfig{
	RatingWeight: 5.0,
}

// Round1 四舍五入到一位小数
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// AverageRating 评分均值（一位小数），无评价时为 0
func AverageRating(ratings []int) float64 {
	if len(ratings) == 0 {
		return 0
	}
	sum := 0
	for _, r := range ratings {
		sum += r
	}
	return Round1(float64(sum) / float64(len(ratings)))
}

// CalculateScore 排名分 = (净赞) + 均分×权重，一位小数。
// 对固定输入是纯函数，排序结果必须可复现。
func CalculateScore(upvotes, downvotes int, averageRating float64) float64 {
	score := float64(upvotes-downvotes) + averageRating*DefaultScoreConfig.RatingWeight
	return Round1(score)
}
