package mongo

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	NotificationKindTierUp        = "tier_up"
	NotificationKindBrandResponse = "brand_response"
	NotificationKindCampaignState = "campaign_state"
	NotificationKindRewardClaimed = "reward_claimed"
)

// NotificationModel 用户通知收件箱模型
type NotificationModel struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ReceiverID uint64             `bson:"receiver_id" json:"receiverId"` // 消息接收者ID
	Kind       string             `bson:"kind" json:"kind"`              // 通知类型
	CampaignID uint64             `bson:"campaign_id" json:"campaignId"` // 关联的活动ID (可为0)
	Title      string             `bson:"title" json:"title"`
	Body       string             `bson:"body" json:"body"`
	Payload    map[string]any     `bson:"payload" json:"payload"` // 额外元数据 (可选，如等级快照)
	IsRead     bool               `bson:"is_read" json:"isRead"`
	CreatedAt  time.Time          `bson:"created_at" json:"createdAt"`
}
