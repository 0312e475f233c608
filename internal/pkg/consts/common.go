package consts

const (
	MimePrefixImage = "image"
)

const (
	// ListeningUserID 社交聆听采集写入事件时使用的系统保留用户
	ListeningUserID uint64 = 1
)

// 积分规则：每类事件入账的积分值
var EventPoints = map[string]int{
	"support":              10,
	"comment":              5,
	"share":                8,
	"preference_submitted": 3,
	"social_share":         8,
	"contribution":         15,
}
