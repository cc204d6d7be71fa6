package service

import (
	"supportbot/internal/domain"
	"supportbot/internal/repository"

	"go.uber.org/zap"
)

// StatusKey is the config key controlling global availability
const StatusKey = "bot_status"

// Status values stored under StatusKey
const (
	StatusOn  = "on"
	StatusOff = "off"
)

// MembershipChecker reports a user's membership status in a channel.
// Implemented by the Telegram transport.
type MembershipChecker interface {
	MemberStatus(channel string, userID int64) (string, error)
}

// AccessService decides whether a user may use the bot
type AccessService struct {
	admins   repository.AdminRepository
	bans     repository.BanRepository
	config   repository.ConfigRepository
	channels repository.ChannelRepository
	checker  MembershipChecker
	logger   *zap.Logger
}

// NewAccessService creates a new access service
func NewAccessService(
	admins repository.AdminRepository,
	bans repository.BanRepository,
	config repository.ConfigRepository,
	channels repository.ChannelRepository,
	checker MembershipChecker,
	logger *zap.Logger,
) *AccessService {
	return &AccessService{
		admins:   admins,
		bans:     bans,
		config:   config,
		channels: channels,
		checker:  checker,
		logger:   logger,
	}
}

// Evaluate runs the gate checks in fixed order: ban first, then global
// status, then forced subscriptions. First match wins.
func (s *AccessService) Evaluate(userID int64) (domain.Decision, error) {
	banned, err := s.bans.IsBanned(userID)
	if err != nil {
		return domain.Decision{}, err
	}
	if banned {
		return domain.Decision{Access: domain.AccessBanned}, nil
	}

	status, err := s.config.Get(StatusKey)
	if err != nil {
		return domain.Decision{}, err
	}
	if status == StatusOff {
		isAdmin, err := s.admins.IsAdmin(userID)
		if err != nil {
			return domain.Decision{}, err
		}
		if !isAdmin {
			return domain.Decision{Access: domain.AccessServiceOff}, nil
		}
	}

	missing, err := s.MissingChannels(userID)
	if err != nil {
		return domain.Decision{}, err
	}
	if len(missing) > 0 {
		return domain.Decision{
			Access:          domain.AccessNeedsSubscription,
			MissingChannels: missing,
		}, nil
	}

	return domain.Decision{Access: domain.AccessAllowed}, nil
}

// MissingChannels returns the forced channels the user is not a member of.
// A failed membership lookup counts as not subscribed.
func (s *AccessService) MissingChannels(userID int64) ([]string, error) {
	channels, err := s.channels.ListChannels()
	if err != nil {
		return nil, err
	}

	var missing []string
	for _, ch := range channels {
		status, err := s.checker.MemberStatus(ch, userID)
		if err != nil {
			s.logger.Debug("Membership lookup failed, treating as not subscribed",
				zap.String("channel", ch),
				zap.Int64("user_id", userID),
				zap.Error(err),
			)
			missing = append(missing, ch)
			continue
		}
		if !domain.Subscribed(status) {
			missing = append(missing, ch)
		}
	}
	return missing, nil
}
