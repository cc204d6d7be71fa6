package service

import (
	"strings"

	"supportbot/internal/domain"
	"supportbot/internal/repository"
)

// ModerationService owns the admin set, ban set, forced channels and the
// global on/off switch
type ModerationService struct {
	admins       repository.AdminRepository
	bans         repository.BanRepository
	config       repository.ConfigRepository
	channels     repository.ChannelRepository
	users        repository.UserRepository
	primaryAdmin int64
}

// NewModerationService creates a new moderation service. primaryAdmin is the
// admin fixed at startup that can never be removed.
func NewModerationService(
	admins repository.AdminRepository,
	bans repository.BanRepository,
	config repository.ConfigRepository,
	channels repository.ChannelRepository,
	users repository.UserRepository,
	primaryAdmin int64,
) *ModerationService {
	return &ModerationService{
		admins:       admins,
		bans:         bans,
		config:       config,
		channels:     channels,
		users:        users,
		primaryAdmin: primaryAdmin,
	}
}

// EnsurePrimaryAdmin seeds the primary admin into the admin set
func (s *ModerationService) EnsurePrimaryAdmin() error {
	return s.admins.AddAdmin(s.primaryAdmin)
}

// IsAdmin checks admin membership
func (s *ModerationService) IsAdmin(userID int64) (bool, error) {
	return s.admins.IsAdmin(userID)
}

// AddAdmin adds a user to the admin set
func (s *ModerationService) AddAdmin(userID int64) error {
	return s.admins.AddAdmin(userID)
}

// RemoveAdmin removes a user from the admin set. Removing the primary admin
// is rejected with domain.ErrPrimaryAdmin.
func (s *ModerationService) RemoveAdmin(userID int64) error {
	if userID == s.primaryAdmin {
		return domain.ErrPrimaryAdmin
	}
	_, err := s.admins.RemoveAdmin(userID)
	return err
}

// BanUser marks a user banned
func (s *ModerationService) BanUser(userID int64) error {
	return s.bans.Ban(userID)
}

// UnbanUser lifts a user's ban
func (s *ModerationService) UnbanUser(userID int64) error {
	return s.bans.Unban(userID)
}

// AddChannel registers a forced-subscription channel. The handle must start
// with '@'; adding an existing channel is a no-op.
func (s *ModerationService) AddChannel(name string) error {
	name = strings.TrimSpace(name)
	if !strings.HasPrefix(name, "@") || len(name) < 2 {
		return domain.ErrInvalidChannel
	}
	return s.channels.AddChannel(name)
}

// RemoveChannel drops a forced-subscription channel
func (s *ModerationService) RemoveChannel(name string) error {
	return s.channels.RemoveChannel(name)
}

// ListChannels returns forced channels in display order
func (s *ModerationService) ListChannels() ([]string, error) {
	return s.channels.ListChannels()
}

// SetEnabled flips the global availability switch
func (s *ModerationService) SetEnabled(enabled bool) error {
	value := StatusOff
	if enabled {
		value = StatusOn
	}
	return s.config.Set(StatusKey, value)
}

// Stats collects the numbers for the admin stats panel
func (s *ModerationService) Stats() (domain.Stats, error) {
	users, err := s.users.CountUsers()
	if err != nil {
		return domain.Stats{}, err
	}
	channels, err := s.channels.ListChannels()
	if err != nil {
		return domain.Stats{}, err
	}
	status, err := s.config.Get(StatusKey)
	if err != nil {
		return domain.Stats{}, err
	}
	return domain.Stats{
		Users:    users,
		Channels: len(channels),
		Enabled:  status != StatusOff,
	}, nil
}
