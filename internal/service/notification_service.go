package service

import (
	"ProductLobby/internal/api/dto"
	"ProductLobby/internal/pkg/mongo"
	"context"
	"errors"

	mongodriver "go.mongodb.org/mongo-driver/mongo"
)

type NotificationService interface {
	// GetNotifications 分页获取用户通知收件箱
	GetNotifications(ctx context.Context, userID uint64, page, pageSize int) ([]*dto.NotificationDTO, error)
	MarkAsRead(ctx context.Context, userID uint64, ids []string) error
	MarkAllAsRead(ctx context.Context, userID uint64) error
	GetUnreadCount(ctx context.Context, userID uint64) (int64, error)
}

type notificationServiceImpl struct {
	notificationRepo mongo.NotificationRepo
}

func NewNotificationService(notificationRepo mongo.NotificationRepo) NotificationService {
	return &notificationServiceImpl{notificationRepo: notificationRepo}
}

func (s *notificationServiceImpl) GetNotifications(ctx context.Context, userID uint64, page, pageSize int) ([]*dto.NotificationDTO, error) {
	offset := int64((page - 1) * pageSize)
	list, err := s.notificationRepo.GetNotificationList(ctx, userID, int64(pageSize), offset)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.NotificationDTO, 0, len(list))
	for _, msg := range list {
		result = append(result, &dto.NotificationDTO{
			ID:         msg.ID.Hex(),
			Kind:       msg.Kind,
			Title:      msg.Title,
			Body:       msg.Body,
			CampaignID: msg.CampaignID,
			IsRead:     msg.IsRead,
			CreatedAt:  msg.CreatedAt,
		})
	}
	return result, nil
}

func (s *notificationServiceImpl) MarkAsRead(ctx context.Context, userID uint64, ids []string) error {
	for _, id := range ids {
		err := s.notificationRepo.MarkAsRead(ctx, userID, id)
		if err != nil {
			if errors.Is(err, mongodriver.ErrNoDocuments) || errors.Is(err, mongodriver.ErrInvalidIndexValue) {
				return ErrNotificationNotFound
			}
			return err
		}
	}
	return nil
}

func (s *notificationServiceImpl) MarkAllAsRead(ctx context.Context, userID uint64) error {
	return s.notificationRepo.MarkAllAsRead(ctx, userID)
}

func (s *notificationServiceImpl) GetUnreadCount(ctx context.Context, userID uint64) (int64, error) {
	return s.notificationRepo.GetUnreadCount(ctx, userID)
}
