package service

import (
	"supportbot/internal/repository"

	"go.uber.org/zap"
)

// broadcastBatchSize bounds how many user IDs are held in memory at once
const broadcastBatchSize = 200

// BroadcastSender delivers a broadcast message to one user.
// Implemented by the Telegram transport.
type BroadcastSender interface {
	SendText(userID int64, text string) error
}

// BroadcastService fans a message out to every known user
type BroadcastService struct {
	users  repository.UserRepository
	sender BroadcastSender
	logger *zap.Logger
}

// NewBroadcastService creates a new broadcast service
func NewBroadcastService(users repository.UserRepository, sender BroadcastSender, logger *zap.Logger) *BroadcastService {
	return &BroadcastService{
		users:  users,
		sender: sender,
		logger: logger,
	}
}

// Broadcast sends text to all known users in bounded batches. Each delivery
// is attempted independently; failures are counted, never retried.
func (s *BroadcastService) Broadcast(text string) (sent, failed int, err error) {
	offset := 0
	for {
		ids, err := s.users.ListUserIDs(broadcastBatchSize, offset)
		if err != nil {
			return sent, failed, err
		}
		if len(ids) == 0 {
			break
		}

		for _, id := range ids {
			if sendErr := s.sender.SendText(id, text); sendErr != nil {
				s.logger.Debug("Broadcast delivery failed",
					zap.Int64("user_id", id),
					zap.Error(sendErr),
				)
				failed++
				continue
			}
			sent++
		}

		offset += broadcastBatchSize
	}

	s.logger.Info("Broadcast finished",
		zap.Int("sent", sent),
		zap.Int("failed", failed),
	)
	return sent, failed, nil
}
