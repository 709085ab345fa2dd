package services

import (
	"testing"
	"time"

	"hunter-fitness-system/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newUserService(t *testing.T) *UserService {
	t.Helper()
	return NewUserService(newTestDB(t), 7*24*time.Hour)
}

func TestRegister(t *testing.T) {
	svc := newUserService(t)

	user, err := svc.Register("shadow", "arise123", false)
	require.NoError(t, err)

	assert.Equal(t, "E", user.Rank)
	assert.Equal(t, "Novice Hunter", user.Job)
	assert.Equal(t, 1, user.Level)
	assert.Equal(t, 100, user.Coins)
	assert.Equal(t, models.DefaultStats(), user.Stats)

	// The stored credential is a bcrypt hash, never the plaintext.
	assert.NotEqual(t, "arise123", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("arise123")))

	t.Run("duplicate username is rejected case-insensitively", func(t *testing.T) {
		_, err := svc.Register("Shadow", "other456", false)
		assert.ErrorIs(t, err, ErrUsernameTaken)
	})
}

func TestAuthenticate(t *testing.T) {
	svc := newUserService(t)
	_, err := svc.Register("hunter", "secret99", false)
	require.NoError(t, err)

	t.Run("valid credentials", func(t *testing.T) {
		user, err := svc.Authenticate("hunter", "secret99")
		require.NoError(t, err)
		assert.Equal(t, "hunter", user.Username)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Authenticate("hunter", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown username", func(t *testing.T) {
		_, err := svc.Authenticate("nobody", "secret99")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestSessions(t *testing.T) {
	svc := newUserService(t)
	user, err := svc.Register("sess", "secret99", false)
	require.NoError(t, err)

	session, err := svc.CreateSession(user.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, session.Token)

	resolved, err := svc.UserForSession(session.Token)
	require.NoError(t, err)
	require.NotNil(t, resolved)
	assert.Equal(t, user.ID, resolved.ID)

	t.Run("unknown token resolves to nobody", func(t *testing.T) {
		resolved, err := svc.UserForSession("no-such-token")
		require.NoError(t, err)
		assert.Nil(t, resolved)
	})

	t.Run("expired session resolves to nobody", func(t *testing.T) {
		expired := &models.Session{
			Token:     "expired-token",
			UserID:    user.ID,
			ExpiresAt: time.Now().Add(-time.Minute),
		}
		require.NoError(t, svc.DB.Create(expired).Error)

		resolved, err := svc.UserForSession(expired.Token)
		require.NoError(t, err)
		assert.Nil(t, resolved)
	})

	t.Run("logout drops the session", func(t *testing.T) {
		require.NoError(t, svc.DeleteSession(session.Token))
		resolved, err := svc.UserForSession(session.Token)
		require.NoError(t, err)
		assert.Nil(t, resolved)
	})
}

func TestLeaderboard(t *testing.T) {
	svc := newUserService(t)
	db := svc.DB

	// Lifetime XP is (level-1)*500 + xp, so level dominates raw xp.
	createHunter(t, db, "third", "E", "Novice Hunter", 1, 450, 0, allStats(10))
	createHunter(t, db, "first", "D", "Assassin", 3, 100, 0, allStats(10))
	createHunter(t, db, "second", "E", "Novice Hunter", 2, 0, 0, allStats(10))

	entries, err := svc.Leaderboard()
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, "first", entries[0].Username)
	assert.Equal(t, 1100, entries[0].TotalXP)
	assert.Equal(t, "second", entries[1].Username)
	assert.Equal(t, 500, entries[1].TotalXP)
	assert.Equal(t, "third", entries[2].Username)
	assert.Equal(t, 450, entries[2].TotalXP)
}

func TestDeleteUser(t *testing.T) {
	svc := newUserService(t)
	db := svc.DB

	user, err := svc.Register("doomed", "secret99", false)
	require.NoError(t, err)
	_, err = svc.CreateSession(user.ID)
	require.NoError(t, err)
	require.NoError(t, db.Create(&models.UserQuest{UserID: user.ID, QuestID: 1}).Error)
	require.NoError(t, db.Create(&models.UserItem{UserID: user.ID, ItemID: 1, Quantity: 1}).Error)

	require.NoError(t, svc.Delete(user.ID))

	var count int64
	db.Model(&models.Session{}).Where("user_id = ?", user.ID).Count(&count)
	assert.Zero(t, count)
	db.Model(&models.UserQuest{}).Where("user_id = ?", user.ID).Count(&count)
	assert.Zero(t, count)
	db.Model(&models.UserItem{}).Where("user_id = ?", user.ID).Count(&count)
	assert.Zero(t, count)

	fetched, err := svc.GetByUsername("doomed")
	require.NoError(t, err)
	assert.Nil(t, fetched)
}
