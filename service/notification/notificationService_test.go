package notification_test

import (
	"context"
	"testing"
	"time"

	"bookstore/model"
	notifsvc "bookstore/service/notification"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type repoMock struct {
	user *model.User
}

func (m *repoMock) ByID(ctx context.Context, id primitive.ObjectID) (*model.User, error) {
	if m.user == nil || id != m.user.ID {
		return nil, mongo.ErrNoDocuments
	}
	return m.user, nil
}

func (m *repoMock) MarkNotificationRead(ctx context.Context, userID, notificationID primitive.ObjectID) error {
	if m.user == nil || userID != m.user.ID {
		return mongo.ErrNoDocuments
	}
	for i, n := range m.user.Notifications {
		if n.ID == notificationID {
			m.user.Notifications[i].Read = true
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

func seedUser(t *testing.T, count int) *model.User {
	t.Helper()
	u := &model.User{ID: primitive.NewObjectID()}
	base := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < count; i++ {
		u.Notifications = append(u.Notifications, model.Notification{
			ID:      primitive.NewObjectID(),
			BookID:  primitive.NewObjectID(),
			Kind:    model.NotifExpiringSoon,
			Message: "rental expiring",
			Date:    base.Add(time.Duration(i) * time.Hour),
		})
	}
	return u
}

func TestList_NewestFirst(t *testing.T) {
	u := seedUser(t, 3)
	svc := notifsvc.New(&repoMock{user: u})

	list, err := svc.List(context.Background(), u.ID)
	require.NoError(t, err)
	require.Len(t, list, 3)
	require.Equal(t, u.Notifications[2].ID, list[0].ID)
	require.Equal(t, u.Notifications[0].ID, list[2].ID)
}

func TestMarkRead(t *testing.T) {
	u := seedUser(t, 2)
	svc := notifsvc.New(&repoMock{user: u})
	ctx := context.Background()

	require.NoError(t, svc.MarkRead(ctx, u.ID, u.Notifications[0].ID))
	require.True(t, u.Notifications[0].Read)
	require.False(t, u.Notifications[1].Read)

	// id from someone else's log
	err := svc.MarkRead(ctx, u.ID, primitive.NewObjectID())
	require.ErrorIs(t, err, notifsvc.ErrNotFound)
}

func TestUnreadCount(t *testing.T) {
	u := seedUser(t, 3)
	u.Notifications[1].Read = true
	svc := notifsvc.New(&repoMock{user: u})

	n, err := svc.UnreadCount(context.Background(), u.ID)
	require.NoError(t, err)
	require.Equal(t, 2, n)
}

func TestUnreadCount_UserMissing(t *testing.T) {
	svc := notifsvc.New(&repoMock{})

	_, err := svc.UnreadCount(context.Background(), primitive.NewObjectID())
	require.ErrorIs(t, err, notifsvc.ErrNotFound)
}
