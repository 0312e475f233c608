package handler

import (
	"ProductLobby/internal/api/dto"
	"ProductLobby/internal/pkg/response"
	"ProductLobby/internal/service"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	notificationSvc service.NotificationService
}

func NewNotificationHandler(notificationSvc service.NotificationService) *NotificationHandler {
	return &NotificationHandler{
		notificationSvc: notificationSvc,
	}
}

// GetNotifications 分页获取通知收件箱
func (s *NotificationHandler) GetNotifications(c *gin.Context) {
	userID := c.GetUint64("user_id")
	var pageQuery dto.PageQuery
	if err := c.ShouldBindQuery(&pageQuery); err != nil {
		response.Error(c, err)
		return
	}

	notifications, err := s.notificationSvc.GetNotifications(c.Request.Context(), userID, pageQuery.Page, pageQuery.PageSize)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, notifications)
}

// MarkAsRead 标记通知已读
func (s *NotificationHandler) MarkAsRead(c *gin.Context) {
	userID := c.GetUint64("user_id")
	var req dto.NotificationMarkReadDTO
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, err)
		return
	}

	err := s.notificationSvc.MarkAsRead(c.Request.Context(), userID, req.IDs)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// MarkAllAsRead 一键清除未读
func (s *NotificationHandler) MarkAllAsRead(c *gin.Context) {
	userID := c.GetUint64("user_id")
	err := s.notificationSvc.MarkAllAsRead(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// GetUnreadCount 获取未读通知数
func (s *NotificationHandler) GetUnreadCount(c *gin.Context) {
	userID := c.GetUint64("user_id")
	count, err := s.notificationSvc.GetUnreadCount(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, map[string]int64{"unread_count": count})
}
