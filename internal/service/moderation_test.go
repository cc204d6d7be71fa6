package service

import (
	"testing"

	"supportbot/internal/domain"
	"supportbot/internal/testutil"

	"github.com/stretchr/testify/assert"
)

const primaryAdminID = int64(1000)

func newModerationService(
	admins *testutil.MockAdminRepository,
	bans *testutil.MockBanRepository,
	config *testutil.MockConfigRepository,
	channels *testutil.MockChannelRepository,
	users *testutil.MockUserRepository,
) *ModerationService {
	return NewModerationService(admins, bans, config, channels, users, primaryAdminID)
}

func TestModerationService_RemoveAdmin_PrimaryRejected(t *testing.T) {
	admins := new(testutil.MockAdminRepository)
	svc := newModerationService(admins, nil, nil, nil, nil)

	err := svc.RemoveAdmin(primaryAdminID)

	assert.ErrorIs(t, err, domain.ErrPrimaryAdmin)
	admins.AssertNotCalled(t, "RemoveAdmin", primaryAdminID)
}

func TestModerationService_RemoveAdmin(t *testing.T) {
	admins := new(testutil.MockAdminRepository)
	admins.On("RemoveAdmin", int64(555)).Return(true, nil)

	svc := newModerationService(admins, nil, nil, nil, nil)

	err := svc.RemoveAdmin(555)

	assert.NoError(t, err)
	admins.AssertExpectations(t)
}

func TestModerationService_AddChannel(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		stored      string
		expectErr   bool
		expectStore bool
	}{
		{
			name:        "valid handle",
			input:       "@news",
			stored:      "@news",
			expectStore: true,
		},
		{
			name:        "handle with surrounding whitespace",
			input:       "  @news  ",
			stored:      "@news",
			expectStore: true,
		},
		{
			name:      "missing sigil",
			input:     "news",
			expectErr: true,
		},
		{
			name:      "bare sigil",
			input:     "@",
			expectErr: true,
		},
		{
			name:      "empty input",
			input:     "",
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			channels := new(testutil.MockChannelRepository)
			if tt.expectStore {
				channels.On("AddChannel", tt.stored).Return(nil)
			}

			svc := newModerationService(nil, nil, nil, channels, nil)

			err := svc.AddChannel(tt.input)

			if tt.expectErr {
				assert.ErrorIs(t, err, domain.ErrInvalidChannel)
			} else {
				assert.NoError(t, err)
			}
			channels.AssertExpectations(t)
		})
	}
}

func TestModerationService_SetEnabled(t *testing.T) {
	config := new(testutil.MockConfigRepository)
	config.On("Set", StatusKey, StatusOff).Return(nil)
	config.On("Set", StatusKey, StatusOn).Return(nil)

	svc := newModerationService(nil, nil, config, nil, nil)

	assert.NoError(t, svc.SetEnabled(false))
	assert.NoError(t, svc.SetEnabled(true))
	config.AssertExpectations(t)
}

func TestModerationService_Stats(t *testing.T) {
	admins := new(testutil.MockAdminRepository)
	config := new(testutil.MockConfigRepository)
	channels := new(testutil.MockChannelRepository)
	users := new(testutil.MockUserRepository)

	users.On("CountUsers").Return(42, nil)
	channels.On("ListChannels").Return([]string{"@a", "@b"}, nil)
	config.On("Get", StatusKey).Return(StatusOff, nil)

	svc := newModerationService(admins, nil, config, channels, users)

	stats, err := svc.Stats()

	assert.NoError(t, err)
	assert.Equal(t, domain.Stats{Users: 42, Channels: 2, Enabled: false}, stats)
}

func TestModerationService_EnsurePrimaryAdmin(t *testing.T) {
	admins := new(testutil.MockAdminRepository)
	admins.On("AddAdmin", primaryAdminID).Return(nil)

	svc := newModerationService(admins, nil, nil, nil, nil)

	assert.NoError(t, svc.EnsurePrimaryAdmin())
	admins.AssertExpectations(t)
}
