package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"devlink_backend/internal/appErrors"
	"devlink_backend/internal/models"
)

func newConversationFixture(t *testing.T) (*ConversationService, *fakeConversationRepo, *fakeMessageRepo) {
	t.Helper()

	conversations := newFakeConversationRepo()
	messages := newFakeMessageRepo()

	conversations.add(&models.Conversation{
		BaseModel:     models.BaseModel{ID: "conv-1"},
		ClientID:      testClientID,
		DeveloperID:   testDeveloperID,
		ProjectID:     testProjectID,
		Subject:       "Application for \"Build a storefront\"",
		Status:        models.ConversationStatusActive,
		LastMessageAt: time.Now().Add(-time.Hour),
	})

	return NewConversationService(conversations, messages), conversations, messages
}

func TestGetMessagesDeniedToNonParticipant(t *testing.T) {
	service, _, _ := newConversationFixture(t)

	_, err := service.GetMessages(context.Background(), "stranger", "conv-1")
	assert.ErrorIs(t, err, appErrors.ErrConversationAccessDenied)
}

func TestGetMessagesUnknownConversation(t *testing.T) {
	service, _, _ := newConversationFixture(t)

	_, err := service.GetMessages(context.Background(), testClientID, "missing")
	assert.ErrorIs(t, err, appErrors.ErrConversationNotFound)
}

func TestSendMessageRefreshesConversationActivity(t *testing.T) {
	service, conversations, messages := newConversationFixture(t)
	ctx := context.Background()

	message, err := service.SendMessage(ctx, testClientID, "conv-1", "when can you start?")
	require.NoError(t, err)
	assert.Equal(t, testClientID, message.SenderID)
	assert.False(t, message.IsRead)

	touchedAt, ok := conversations.touched["conv-1"]
	require.True(t, ok)
	assert.Equal(t, message.CreatedAt, touchedAt)

	stored := messages.all()
	require.Len(t, stored, 1)
	assert.Equal(t, "when can you start?", stored[0].Content)
}

func TestSendMessageDeniedToNonParticipant(t *testing.T) {
	service, _, messages := newConversationFixture(t)

	_, err := service.SendMessage(context.Background(), "stranger", "conv-1", "hi")
	assert.ErrorIs(t, err, appErrors.ErrConversationAccessDenied)
	assert.Empty(t, messages.all())
}

func TestMarkReadOnlyAffectsOtherPartysMessages(t *testing.T) {
	service, _, messages := newConversationFixture(t)
	ctx := context.Background()

	require.NoError(t, messages.Create(ctx, &models.Message{
		ID: "m1", ConversationID: "conv-1", SenderID: testDeveloperID, Content: "applied",
	}))
	require.NoError(t, messages.Create(ctx, &models.Message{
		ID: "m2", ConversationID: "conv-1", SenderID: testClientID, Content: "thanks",
	}))

	require.NoError(t, service.MarkRead(ctx, testClientID, "conv-1"))

	for _, m := range messages.all() {
		if m.SenderID == testDeveloperID {
			assert.True(t, m.IsRead, "incoming message is marked read")
		} else {
			assert.False(t, m.IsRead, "own message keeps its flag")
		}
	}
}

func TestInboxReportsUnreadCounts(t *testing.T) {
	service, _, messages := newConversationFixture(t)
	ctx := context.Background()

	require.NoError(t, messages.Create(ctx, &models.Message{
		ID: "m1", ConversationID: "conv-1", SenderID: testDeveloperID, Content: "applied",
	}))
	require.NoError(t, messages.Create(ctx, &models.Message{
		ID: "m2", ConversationID: "conv-1", SenderID: testDeveloperID, Content: "still there?",
	}))

	summaries, err := service.Inbox(ctx, testClientID)
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, int64(2), summaries[0].UnreadCount)

	summaries, err = service.Inbox(ctx, testDeveloperID)
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, int64(0), summaries[0].UnreadCount, "own messages are not unread")
}

func TestInboxDegradesWhenUnreadCountFails(t *testing.T) {
	service, _, messages := newConversationFixture(t)
	messages.countErr = errors.New("timeout")

	summaries, err := service.Inbox(context.Background(), testClientID)
	require.NoError(t, err, "a failed count never fails the inbox")
	require.Len(t, summaries, 1)
	assert.Equal(t, int64(0), summaries[0].UnreadCount)
}
