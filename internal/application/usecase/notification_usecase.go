// internal/application/usecase/notification_usecase.go
package usecase

import (
	"context"
	"strings"

	notifdom "travelia/internal/domain/notification"
	userdom "travelia/internal/domain/user"
)

type NotificationUsecase struct {
	notifications notifdom.Repository
}

func NewNotificationUsecase(notifications notifdom.Repository) *NotificationUsecase {
	return &NotificationUsecase{notifications: notifications}
}

func (u *NotificationUsecase) ListForUser(ctx context.Context, uid string) ([]notifdom.Notification, error) {
	uid = strings.TrimSpace(uid)
	if uid == "" {
		return nil, userdom.ErrInvalidUID
	}
	return u.notifications.ListByUser(ctx, uid)
}

func (u *NotificationUsecase) MarkRead(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return notifdom.ErrNotFound
	}
	return u.notifications.MarkRead(ctx, id)
}
