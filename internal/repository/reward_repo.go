package repository

import (
	"ProductLobby/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RewardRepo interface {
	CreateReward(ctx context.Context, reward *model.Reward) error
	GetReward(ctx context.Context, id uint64) (*model.Reward, error)
	ListRewardsByCampaign(ctx context.Context, campaignID uint64) ([]*model.Reward, error)
	// IncrementClaimed 原子自增已兑换数量，库存不足时返回 false
	IncrementClaimed(ctx context.Context, rewardID uint64) (bool, error)
	CreateClaim(ctx context.Context, claim *model.RewardClaim) error
	ListClaimsByUser(ctx context.Context, userID uint64, rewardIDs []uint64) ([]*model.RewardClaim, error)
	GetAccount(ctx context.Context, userID uint64) (*model.RewardAccount, error)
	AddPoints(ctx context.Context, userID uint64, points int) error
	// SpendPoints 原子扣减可用积分，余额不足时返回 false
	SpendPoints(ctx context.Context, userID uint64, points int) (bool, error)
	// RefundPoints 兑换失败时回退已扣积分
	RefundPoints(ctx context.Context, userID uint64, points int) error
}

type rewardRepoImpl struct {
	db *gorm.DB
}

func NewRewardRepo(db *gorm.DB) RewardRepo {
	return &rewardRepoImpl{db: db}
}

func (r *rewardRepoImpl) CreateReward(ctx context.Context, reward *model.Reward) error {
	return r.db.WithContext(ctx).Create(reward).Error
}

func (r *rewardRepoImpl) GetReward(ctx context.Context, id uint64) (*model.Reward, error) {
	reward := &model.Reward{}
	result := r.db.WithContext(ctx).First(reward, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return reward, nil
}

func (r *rewardRepoImpl) ListRewardsByCampaign(ctx context.Context, campaignID uint64) ([]*model.Reward, error) {
	rewards := make([]*model.Reward, 0)
	result := r.db.WithContext(ctx).
		Where("campaign_id = ?", campaignID).
		Order("point_cost ASC").
		Find(&rewards)
	if result.Error != nil {
		return nil, result.Error
	}
	return rewards, nil
}

func (r *rewardRepoImpl) IncrementClaimed(ctx context.Context, rewardID uint64) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&model.Reward{}).
		Where("id = ?", rewardID).
		Where("stock = 0 OR claimed_count < stock").
		Update("claimed_count", gorm.Expr("claimed_count + 1"))
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *rewardRepoImpl) CreateClaim(ctx context.Context, claim *model.RewardClaim) error {
	return r.db.WithContext(ctx).Create(claim).Error
}

func (r *rewardRepoImpl) ListClaimsByUser(ctx context.Context, userID uint64, rewardIDs []uint64) ([]*model.RewardClaim, error) {
	claims := make([]*model.RewardClaim, 0)
	query := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if len(rewardIDs) > 0 {
		query = query.Where("reward_id IN ?", rewardIDs)
	}
	result := query.Order("created_at DESC").Find(&claims)
	if result.Error != nil {
		return nil, result.Error
	}
	return claims, nil
}

func (r *rewardRepoImpl) GetAccount(ctx context.Context, userID uint64) (*model.RewardAccount, error) {
	account := &model.RewardAccount{}
	result := r.db.WithContext(ctx).Where("user_id = ?", userID).First(account)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return account, nil
}

func (r *rewardRepoImpl) AddPoints(ctx context.Context, userID uint64, points int) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"total_points": gorm.Expr("total_points + ?", points)}),
	}).Create(&model.RewardAccount{UserID: userID, TotalPoints: points}).Error
}

func (r *rewardRepoImpl) SpendPoints(ctx context.Context, userID uint64, points int) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&model.RewardAccount{}).
		Where("user_id = ?", userID).
		Where("total_points - spent_points >= ?", points).
		Update("spent_points", gorm.Expr("spent_points + ?", points))
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *rewardRepoImpl) RefundPoints(ctx context.Context, userID uint64, points int) error {
	return r.db.WithContext(ctx).
		Model(&model.RewardAccount{}).
		Where("user_id = ?", userID).
		Where("spent_points >= ?", points).
		Update("spent_points", gorm.Expr("spent_points - ?", points)).Error
}
