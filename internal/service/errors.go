package service

import (
	"errors"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	Forbidden           = 403
	NotFound            = 404
	InternalServerError = 500
)

var (
	ErrParamInvalid            = errors.New("参数错误")
	ErrUserNotFound            = errors.New("用户不存在")
	ErrUserBan                 = errors.New("用户已被封禁")
	ErrUserExist               = errors.New("用户名已存在")
	ErrPasswordIncorrect       = errors.New("密码错误")
	ErrMissingLoginCredentials = errors.New("缺少登录凭据")
	ErrCampaignNotFound        = errors.New("活动不存在")
	ErrCampaignNotLive         = errors.New("活动未上线")
	ErrCampaignSlugExist       = errors.New("活动标题重复")
	ErrCampaignStatusInvalid   = errors.New("非法的状态流转")
	ErrNotCampaignCreator      = errors.New("仅活动创建者可操作")
	ErrEventTypeInvalid        = errors.New("不支持的事件类型")
	ErrSupportDuplicate        = errors.New("已支持过该活动")
	ErrSegmentRulesInvalid     = errors.New("分群规则不合法")
	ErrSegmentNotFound         = errors.New("分群不存在")
	ErrRewardNotFound          = errors.New("奖励不存在")
	ErrRewardSoldOut           = errors.New("奖励已兑完")
	ErrPointsInsufficient      = errors.New("积分不足")
	ErrBrandNotFound           = errors.New("品牌不存在")
	ErrBrandExist              = errors.New("品牌已注册")
	ErrNotBrandOwner           = errors.New("仅品牌所有者可操作")
	ErrFileNotSupported        = errors.New("不支持的文件类型")
	ErrNotificationNotFound    = errors.New("通知不存在")
	UnauthorizedError          = errors.New("权限不足")
	UnExpectedError            = errors.New("系统异常，请稍后重试")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:            BadRequest,
	ErrUserNotFound:            NotFound,
	ErrUserBan:                 Unauthorized,
	ErrUserExist:               BadRequest,
	ErrPasswordIncorrect:       Unauthorized,
	ErrMissingLoginCredentials: Unauthorized,
	ErrCampaignNotFound:        NotFound,
	ErrCampaignNotLive:         BadRequest,
	ErrCampaignSlugExist:       BadRequest,
	ErrCampaignStatusInvalid:   BadRequest,
	ErrNotCampaignCreator:      Forbidden,
	ErrEventTypeInvalid:        BadRequest,
	ErrSupportDuplicate:        BadRequest,
	ErrSegmentRulesInvalid:     BadRequest,
	ErrSegmentNotFound:         NotFound,
	ErrRewardNotFound:          NotFound,
	ErrRewardSoldOut:           BadRequest,
	ErrPointsInsufficient:      BadRequest,
	ErrBrandNotFound:           NotFound,
	ErrBrandExist:              BadRequest,
	ErrNotBrandOwner:           Forbidden,
	ErrFileNotSupported:        BadRequest,
	ErrNotificationNotFound:    NotFound,
	UnauthorizedError:          Forbidden,
	UnExpectedError:            InternalServerError,
}
