package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LyKhaiNghiep/MSWT-Mobile-sub000/internal/models"
)

func TestSessionCell_RejectsPartialSession(t *testing.T) {
	cell := NewSessionCell()

	err := cell.Set(Session{Token: "tok"})
	assert.ErrorIs(t, err, ErrPartialSession)

	err = cell.Set(Session{Token: "tok", UserID: "U1"})
	assert.ErrorIs(t, err, ErrPartialSession)

	_, ok := cell.Get()
	assert.False(t, ok)

	err = cell.Set(Session{Token: "tok", UserID: "U1", Role: models.RoleWorker})
	require.NoError(t, err)
	sess, ok := cell.Get()
	require.True(t, ok)
	assert.True(t, sess.Authenticated())
}

func TestSessionCell_SubscribeAndClear(t *testing.T) {
	cell := NewSessionCell()

	var notifications []*Session
	unsubscribe := cell.Subscribe(func(s *Session) {
		notifications = append(notifications, s)
	})

	require.NoError(t, cell.Set(Session{Token: "tok", UserID: "U1", Role: models.RoleWorker}))
	cell.Clear()

	require.Len(t, notifications, 2)
	require.NotNil(t, notifications[0])
	assert.Equal(t, "U1", notifications[0].UserID)
	assert.Nil(t, notifications[1], "clear notifies with nil")

	unsubscribe()
	require.NoError(t, cell.Set(Session{Token: "tok2", UserID: "U2", Role: models.RoleLeader}))
	assert.Len(t, notifications, 2, "no notification after unsubscribe")
}
