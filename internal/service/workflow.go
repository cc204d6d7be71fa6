package service

import (
	"fmt"
	"strconv"
	"strings"

	"supportbot/internal/domain"
)

// StepResult is the outcome of consuming one admin workflow message
type StepResult struct {
	// Reply is the confirmation sent back to the admin
	Reply string
	// Notice is an optional best-effort notification to another user
	Notice *domain.Notice
}

// WorkflowService consumes the single freeform message that completes an
// admin workflow step. The caller clears the admin's state after every call,
// success or failure; invalid input means re-opening the panel.
type WorkflowService struct {
	moderation *ModerationService
	broadcast  *BroadcastService
}

// NewWorkflowService creates a new workflow service
func NewWorkflowService(moderation *ModerationService, broadcast *BroadcastService) *WorkflowService {
	return &WorkflowService{
		moderation: moderation,
		broadcast:  broadcast,
	}
}

// Consume applies the admin's message as input to the given workflow state
func (s *WorkflowService) Consume(state domain.AdminState, text string) (StepResult, error) {
	text = strings.TrimSpace(text)

	switch state {
	case domain.StateAwaitingBroadcast:
		return s.consumeBroadcast(text)
	case domain.StateAwaitingChannel:
		return s.consumeChannel(text)
	case domain.StateAwaitingBan:
		return s.consumeBan(text)
	case domain.StateAwaitingUnban:
		return s.consumeUnban(text)
	case domain.StateAwaitingAdminAdd:
		return s.consumeAdminAdd(text)
	case domain.StateAwaitingAdminDel:
		return s.consumeAdminDel(text)
	}

	return StepResult{}, fmt.Errorf("no workflow step for state %q", state)
}

func (s *WorkflowService) consumeBroadcast(text string) (StepResult, error) {
	if text == "" {
		return StepResult{}, domain.ErrEmptyBroadcast
	}
	sent, failed, err := s.broadcast.Broadcast(text)
	if err != nil {
		return StepResult{}, err
	}
	return StepResult{
		Reply: fmt.Sprintf("Broadcast finished.\nDelivered: %d\nFailed: %d", sent, failed),
	}, nil
}

func (s *WorkflowService) consumeChannel(text string) (StepResult, error) {
	if err := s.moderation.AddChannel(text); err != nil {
		return StepResult{}, err
	}
	return StepResult{
		Reply: fmt.Sprintf("Channel %s added.", strings.TrimSpace(text)),
	}, nil
}

func (s *WorkflowService) consumeBan(text string) (StepResult, error) {
	uid, err := parseUserID(text)
	if err != nil {
		return StepResult{}, err
	}
	if err := s.moderation.BanUser(uid); err != nil {
		return StepResult{}, err
	}
	return StepResult{
		Reply: fmt.Sprintf("User %d banned.", uid),
		Notice: &domain.Notice{
			UserID: uid,
			Text:   "You have been banned from using this bot.",
		},
	}, nil
}

func (s *WorkflowService) consumeUnban(text string) (StepResult, error) {
	uid, err := parseUserID(text)
	if err != nil {
		return StepResult{}, err
	}
	if err := s.moderation.UnbanUser(uid); err != nil {
		return StepResult{}, err
	}
	return StepResult{
		Reply: fmt.Sprintf("User %d unbanned.", uid),
	}, nil
}

func (s *WorkflowService) consumeAdminAdd(text string) (StepResult, error) {
	uid, err := parseUserID(text)
	if err != nil {
		return StepResult{}, err
	}
	if err := s.moderation.AddAdmin(uid); err != nil {
		return StepResult{}, err
	}
	return StepResult{
		Reply: fmt.Sprintf("Admin %d added.", uid),
	}, nil
}

func (s *WorkflowService) consumeAdminDel(text string) (StepResult, error) {
	uid, err := parseUserID(text)
	if err != nil {
		return StepResult{}, err
	}
	if err := s.moderation.RemoveAdmin(uid); err != nil {
		return StepResult{}, err
	}
	return StepResult{
		Reply: fmt.Sprintf("Admin %d removed.", uid),
	}, nil
}

func parseUserID(text string) (int64, error) {
	uid, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return 0, domain.ErrInvalidUserID
	}
	return uid, nil
}
