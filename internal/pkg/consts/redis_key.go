package consts

const (
	CampaignDirtyKey         = "campaign:dirty"
	CampaignLeaderboardKey   = "campaign:leaderboard:"
	CampaignMetrics7DaysKey  = "campaign:metrics:7days:"
	CampaignMetrics30DaysKey = "campaign:metrics:30days:"
	ListeningLastPollKey     = "listening:last:poll:"
)

const (
	ListeningPollLock = "listening:poll:lock:"
)
