package service

import (
	"math"

	"ProductLobby/internal/api/dto"
	"ProductLobby/internal/model"
)

// 各分项得分的饱和目标值：计数达到目标值时分项得分封顶 100
// 原型实现中 power-users 等分群得分为写死常量，这里统一换成可验证的饱和公式
const (
	LobbyScoreTarget       = 500
	CommentScoreTarget     = 200
	ContributorScoreTarget = 100
	ActivityScoreTarget    = 20
)

// 奖励等级阈值，单调递增互不重叠
const (
	TierSilverThreshold   = 100
	TierGoldThreshold     = 500
	TierPlatinumThreshold = 1000
	TierMaxThreshold      = 2000
)

// Clamp100 将数值截断到 [0, 100]
func Clamp100(v float64) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return int(math.Round(v))
}

// SaturatingScore 计数型指标归一化：count/target*100，封顶 100
func SaturatingScore(count int64, target int) int {
	if target <= 0 {
		return 0
	}
	return Clamp100(float64(count) / float64(target) * 100)
}

// GrowthRate 计算 7 天环比增长率（百分比）
// prev == 0 时定义为 0（而不是 Infinity / NaN），新活动通过 isNew 单独标记
func GrowthRate(last7, prev7 int64) (rate float64, isNew bool) {
	if prev7 == 0 {
		return 0, last7 > 0
	}
	return float64(last7-prev7) / float64(prev7) * 100, false
}

// GrowthScore 增长率映射到 [0,100]：0% 增长 → 50 分，±100% → 100/0 分
func GrowthScore(rate float64) int {
	return Clamp100(50 + rate/2)
}

// ComputeComponentScores 计算四个分项得分
// 活动完全没有事件时所有分项为 0，保证空活动的 demandScore 恒为 0
func ComputeComponentScores(totalLobbies, last7, prev7, commentCount, contributorCount int64) dto.ComponentScores {
	if totalLobbies == 0 && commentCount == 0 && contributorCount == 0 {
		return dto.ComponentScores{}
	}

	rate, _ := GrowthRate(last7, prev7)
	return dto.ComponentScores{
		Lobbies:      SaturatingScore(totalLobbies, LobbyScoreTarget),
		Growth:       GrowthScore(rate),
		Comments:     SaturatingScore(commentCount, CommentScoreTarget),
		Contributors: SaturatingScore(contributorCount, ContributorScoreTarget),
	}
}

// ComposeDemandScore 四个分项等权合成，结果恒在 [0,100]
func ComposeDemandScore(scores dto.ComponentScores) int {
	sum := scores.Lobbies + scores.Growth + scores.Comments + scores.Contributors
	return Clamp100(float64(sum) / 4)
}

// TierForPoints 积分到奖励等级的纯函数映射
func TierForPoints(points int) string {
	switch {
	case points < TierSilverThreshold:
		return model.TierBronze
	case points < TierGoldThreshold:
		return model.TierSilver
	case points < TierPlatinumThreshold:
		return model.TierGold
	default:
		return model.TierPlatinum
	}
}

// NextTierPoints 返回晋级下一等级所需的积分阈值，已是最高等级时返回 0
func NextTierPoints(points int) int {
	switch {
	case points < TierSilverThreshold:
		return TierSilverThreshold
	case points < TierGoldThreshold:
		return TierGoldThreshold
	case points < TierPlatinumThreshold:
		return TierPlatinumThreshold
	case points < TierMaxThreshold:
		return TierMaxThreshold
	default:
		return 0
	}
}
