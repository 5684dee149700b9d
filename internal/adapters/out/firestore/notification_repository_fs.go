// internal/adapters/out/firestore/notification_repository_fs.go
package firestore

import (
	"context"
	"errors"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	notifdom "travelia/internal/domain/notification"
)

// NotificationRepositoryFS is the Firestore implementation of
// notification.Repository.
type NotificationRepositoryFS struct {
	Client *firestore.Client
}

func NewNotificationRepositoryFS(client *firestore.Client) *NotificationRepositoryFS {
	return &NotificationRepositoryFS{Client: client}
}

func (r *NotificationRepositoryFS) col() *firestore.CollectionRef {
	return r.Client.Collection("notifications")
}

// Compile-time check
var _ notifdom.Repository = (*NotificationRepositoryFS)(nil)

func (r *NotificationRepositoryFS) ListByUser(ctx context.Context, userID string) ([]notifdom.Notification, error) {
	if r.Client == nil {
		return nil, errors.New("firestore client is nil")
	}

	it := r.col().
		Where("userId", "==", userID).
		OrderBy("createdAt", firestore.Desc).
		Documents(ctx)
	defer it.Stop()

	var out []notifdom.Notification
	for {
		doc, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}

		var n notifdom.Notification
		if err := doc.DataTo(&n); err != nil {
			return nil, err
		}
		n.ID = doc.Ref.ID
		out = append(out, n)
	}
	return out, nil
}

func (r *NotificationRepositoryFS) MarkRead(ctx context.Context, id string) error {
	if r.Client == nil {
		return errors.New("firestore client is nil")
	}

	_, err := r.col().Doc(id).Update(ctx, []firestore.Update{
		{Path: "read", Value: true},
	})
	if status.Code(err) == codes.NotFound {
		return notifdom.ErrNotFound
	}
	return err
}
