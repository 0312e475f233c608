package service

import (
	"testing"

	"ProductLobby/internal/api/dto"
	"ProductLobby/internal/model"

	"github.com/stretchr/testify/require"
)

func TestClamp100(t *testing.T) {
	require.Equal(t, 0, Clamp100(-5))
	require.Equal(t, 0, Clamp100(0))
	require.Equal(t, 50, Clamp100(50.4))
	require.Equal(t, 51, Clamp100(50.5))
	require.Equal(t, 100, Clamp100(100))
	require.Equal(t, 100, Clamp100(250))
}

func TestSaturatingScore(t *testing.T) {
	require.Equal(t, 0, SaturatingScore(0, LobbyScoreTarget))
	require.Equal(t, 50, SaturatingScore(250, LobbyScoreTarget))
	require.Equal(t, 100, SaturatingScore(500, LobbyScoreTarget))
	// 超过目标值后封顶
	require.Equal(t, 100, SaturatingScore(9999, LobbyScoreTarget))
	// 非法目标值不产生除零
	require.Equal(t, 0, SaturatingScore(100, 0))
}

func TestGrowthRate(t *testing.T) {
	rate, isNew := GrowthRate(0, 0)
	require.Equal(t, 0.0, rate)
	require.False(t, isNew)

	// 前一周无数据、本周有数据：标记为新活动而不是无穷大增长
	rate, isNew = GrowthRate(10, 0)
	require.Equal(t, 0.0, rate)
	require.True(t, isNew)

	rate, isNew = GrowthRate(20, 10)
	require.Equal(t, 100.0, rate)
	require.False(t, isNew)

	rate, isNew = GrowthRate(5, 10)
	require.Equal(t, -50.0, rate)
	require.False(t, isNew)
}

func TestGrowthScore(t *testing.T) {
	require.Equal(t, 50, GrowthScore(0))
	require.Equal(t, 100, GrowthScore(100))
	require.Equal(t, 0, GrowthScore(-100))
	// 超出 ±100% 的增长率仍然落在 [0,100]
	require.Equal(t, 100, GrowthScore(300))
	require.Equal(t, 0, GrowthScore(-300))
}

func TestComputeComponentScores_EmptyCampaign(t *testing.T) {
	scores := ComputeComponentScores(0, 0, 0, 0, 0)
	require.Equal(t, dto.ComponentScores{}, scores)
	require.Equal(t, 0, ComposeDemandScore(scores))
}

func TestComposeDemandScore(t *testing.T) {
	score := ComposeDemandScore(dto.ComponentScores{
		Lobbies:      100,
		Growth:       100,
		Comments:     100,
		Contributors: 100,
	})
	require.Equal(t, 100, score)

	score = ComposeDemandScore(dto.ComponentScores{
		Lobbies:      40,
		Growth:       60,
		Comments:     20,
		Contributors: 80,
	})
	require.Equal(t, 50, score)
}

func TestTierForPoints(t *testing.T) {
	require.Equal(t, model.TierBronze, TierForPoints(0))
	require.Equal(t, model.TierBronze, TierForPoints(99))
	require.Equal(t, model.TierSilver, TierForPoints(100))
	require.Equal(t, model.TierSilver, TierForPoints(499))
	require.Equal(t, model.TierGold, TierForPoints(500))
	require.Equal(t, model.TierGold, TierForPoints(999))
	require.Equal(t, model.TierPlatinum, TierForPoints(1000))
	require.Equal(t, model.TierPlatinum, TierForPoints(5000))
}

func TestNextTierPoints(t *testing.T) {
	require.Equal(t, TierSilverThreshold, NextTierPoints(0))
	require.Equal(t, TierGoldThreshold, NextTierPoints(100))
	require.Equal(t, TierPlatinumThreshold, NextTierPoints(500))
	require.Equal(t, TierMaxThreshold, NextTierPoints(1000))
	// 已达最高等级
	require.Equal(t, 0, NextTierPoints(2000))
}
