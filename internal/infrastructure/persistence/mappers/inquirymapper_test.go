package mappers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"courtside/internal/domain/inquiry"
	"courtside/internal/infrastructure/persistence/models"
)

func TestInquiryMapper_RoundTrip(t *testing.T) {
	mapper := NewInquiryMapper()

	created := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	inq, err := inquiry.ReconstructInquiry(7, "inq_abc123", 2, "broken scoreboard", 10, false, created, created, created.Add(time.Hour))
	require.NoError(t, err)

	model := mapper.ToModel(inq)
	assert.Equal(t, uint(7), model.ID)
	assert.Equal(t, "inq_abc123", model.SID)
	assert.Equal(t, created.UnixMilli(), model.CreatedAt)

	back, err := mapper.ToDomain(model)
	require.NoError(t, err)
	assert.Equal(t, inq.SID(), back.SID())
	assert.Equal(t, inq.OwnerID(), back.OwnerID())
	assert.True(t, inq.UpdatedAt().Equal(back.UpdatedAt()))
}

func TestInquiryMapper_ToDomainRejectsZeroID(t *testing.T) {
	mapper := NewInquiryMapper()

	_, err := mapper.ToDomain(&models.InquiryModel{SID: "inq_abc123", CategoryID: 1, Title: "t", OwnerID: 1})

	assert.Error(t, err)
}

func TestInquiryMapper_AssignmentMessageCarriesModerator(t *testing.T) {
	mapper := NewInquiryMapper()

	msg, err := mapper.AssignmentMessageToDomain(&models.AssignmentMessageModel{
		ID: 3, AssignmentID: 5, ModeratorID: 20, Body: "on it",
		CreatedAt: time.Now().UnixMilli(), UpdatedAt: time.Now().UnixMilli(),
	})

	require.NoError(t, err)
	assert.Equal(t, uint(20), msg.ModeratorID())
}

func TestUserMapper_NilAvatar(t *testing.T) {
	mapper := NewUserMapper()

	u, err := mapper.ToDomain(&models.UserModel{ID: 10, SID: "usr_abc", Username: "sam", Moderator: true})

	require.NoError(t, err)
	assert.Equal(t, "", u.AvatarURL())
	assert.True(t, u.IsModerator())
}
