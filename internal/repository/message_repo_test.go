package repository

import (
	"testing"

	"gramseva/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedMessage(t *testing.T, repo *MessageRepository, subject string) *models.ContactMessage {
	t.Helper()
	m := &models.ContactMessage{
		Name: "Visitor", Email: "visitor@example.org", Subject: subject, Message: "hello",
	}
	require.NoError(t, repo.Create(m))
	return m
}

func TestMessageDefaults(t *testing.T) {
	repo := NewMessageRepository(testDB(t))
	m := seedMessage(t, repo, "road repair")

	got, err := repo.GetByID(m.ID)
	require.NoError(t, err)
	assert.False(t, got.IsRead)
	assert.False(t, got.IsReplied)
	assert.Empty(t, got.ReplyMessage)
}

func TestMarkReadFlipsOnlyIsRead(t *testing.T) {
	repo := NewMessageRepository(testDB(t))
	m := seedMessage(t, repo, "water supply")

	require.NoError(t, repo.MarkRead(m.ID))

	got, err := repo.GetByID(m.ID)
	require.NoError(t, err)
	assert.True(t, got.IsRead)
	assert.False(t, got.IsReplied)
	assert.Equal(t, m.Name, got.Name)
	assert.Equal(t, m.Message, got.Message)
}

func TestMarkReadMissingIsNotFound(t *testing.T) {
	repo := NewMessageRepository(testDB(t))
	assert.ErrorIs(t, repo.MarkRead(9999), gorm.ErrRecordNotFound)
}

func TestCountUnread(t *testing.T) {
	repo := NewMessageRepository(testDB(t))
	seedMessage(t, repo, "one")
	m := seedMessage(t, repo, "two")
	require.NoError(t, repo.MarkRead(m.ID))

	n, err := repo.CountUnread()
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}
