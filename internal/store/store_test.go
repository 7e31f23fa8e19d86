package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"f2computers/site/internal/models"
)

func TestSeedDemoData(t *testing.T) {
	t.Parallel()

	s := New()
	s.SeedDemoData()

	users, messages, sessions := s.Counts()
	require.Equal(t, 2, users)
	require.Equal(t, 1, messages)
	require.Equal(t, 0, sessions)
}

func TestCreateUser(t *testing.T) {
	t.Parallel()

	s := New()

	user, err := s.CreateUser("Ann", "ann@x.com", "pw")
	require.NoError(t, err)
	require.NotEmpty(t, user.ID)
	require.Equal(t, "ann@x.com", user.Email)
	require.Nil(t, user.LastLogin)

	t.Run("duplicate email rejected", func(t *testing.T) {
		_, err := s.CreateUser("Other Ann", "ann@x.com", "pw2")
		require.ErrorIs(t, err, ErrEmailTaken)

		users, _, _ := s.Counts()
		require.Equal(t, 1, users)
	})
}

func TestLoginLogout(t *testing.T) {
	t.Parallel()

	s := New()
	created, err := s.CreateUser("Ann", "ann@x.com", "pw")
	require.NoError(t, err)

	t.Run("wrong password rejected", func(t *testing.T) {
		_, _, err := s.Login("ann@x.com", "nope")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email rejected with the same error", func(t *testing.T) {
		_, _, err := s.Login("nobody@x.com", "pw")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	user, sessionID, err := s.Login("ann@x.com", "pw")
	require.NoError(t, err)
	require.NotEmpty(t, sessionID)
	require.Equal(t, created.ID, user.ID)
	require.NotNil(t, user.LastLogin)

	summaries := s.UserSummaries()
	require.Len(t, summaries, 1)
	require.True(t, summaries[0].IsOnline)

	s.Logout(sessionID)
	summaries = s.UserSummaries()
	require.False(t, summaries[0].IsOnline)

	// Logging out an already removed session is a silent no-op.
	_, ok := s.Logout(sessionID)
	require.False(t, ok)
}

func TestCreateMessageDefaults(t *testing.T) {
	t.Parallel()

	s := New()
	msg := s.CreateMessage(MessageInput{
		FullName: "Ann",
		Email:    "ann@x.com",
		Body:     "hello",
	})

	require.NotEmpty(t, msg.ID)
	require.Equal(t, models.StatusNew, msg.Status)
	require.Empty(t, msg.Street)
	require.Empty(t, msg.City)
	require.Empty(t, msg.Postcode)
	require.Empty(t, msg.PhoneNo)
	require.WithinDuration(t, time.Now(), msg.CreatedAt, time.Second)
}

func TestMessagesNewestFirst(t *testing.T) {
	t.Parallel()

	s := New()
	a := s.CreateMessage(MessageInput{FullName: "A", Email: "a@x.com", Body: "first"})
	b := s.CreateMessage(MessageInput{FullName: "B", Email: "b@x.com", Body: "second"})

	list := s.Messages()
	require.Len(t, list, 2)
	require.Equal(t, b.ID, list[0].ID)
	require.Equal(t, a.ID, list[1].ID)

	t.Run("order survives status updates", func(t *testing.T) {
		require.NoError(t, s.UpdateMessageStatus(a.ID, models.StatusRead))

		list := s.Messages()
		require.Equal(t, b.ID, list[0].ID)
		require.Equal(t, a.ID, list[1].ID)
	})
}

func TestUpdateMessageStatus(t *testing.T) {
	t.Parallel()

	s := New()
	msg := s.CreateMessage(MessageInput{FullName: "A", Email: "a@x.com", Body: "hi"})

	require.NoError(t, s.UpdateMessageStatus(msg.ID, models.StatusReplied))
	require.Equal(t, models.StatusReplied, s.Messages()[0].Status)

	t.Run("arbitrary status strings accepted", func(t *testing.T) {
		require.NoError(t, s.UpdateMessageStatus(msg.ID, "archived"))
		require.Equal(t, "archived", s.Messages()[0].Status)
	})

	t.Run("unknown id leaves collection unchanged", func(t *testing.T) {
		err := s.UpdateMessageStatus("missing-id", models.StatusRead)
		require.ErrorIs(t, err, ErrMessageNotFound)
		require.Equal(t, "archived", s.Messages()[0].Status)
	})
}

func TestStats(t *testing.T) {
	t.Parallel()

	s := New()
	_, err := s.CreateUser("Ann", "ann@x.com", "pw")
	require.NoError(t, err)
	_, _, err = s.Login("ann@x.com", "pw")
	require.NoError(t, err)

	msg := s.CreateMessage(MessageInput{FullName: "A", Email: "a@x.com", Body: "hi"})
	s.CreateMessage(MessageInput{FullName: "B", Email: "b@x.com", Body: "hey"})
	require.NoError(t, s.UpdateMessageStatus(msg.ID, models.StatusRead))

	st := s.Stats()
	require.Equal(t, 2, st.TotalMessages)
	require.Equal(t, 1, st.NewMessages)
	require.Equal(t, 2, st.TodayMessages)
	require.Equal(t, 1, st.TotalUsers)
	require.Equal(t, 1, st.TodayUsers)
	require.Equal(t, 1, st.OnlineUsers)
}
