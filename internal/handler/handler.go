package handler

import (
	"sync"

	"supportbot/internal/domain"
	"supportbot/internal/repository"
	"supportbot/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// telegramAPI is the slice of the bot API the routes use to reach chats
// other than the one the update came from. *tele.Bot satisfies it.
type telegramAPI interface {
	Send(to tele.Recipient, what interface{}, opts ...interface{}) (*tele.Message, error)
	Copy(to tele.Recipient, msg tele.Editable, opts ...interface{}) (*tele.Message, error)
}

// Handler routes every inbound update: user messages are relayed to the
// primary admin, admin messages complete pending replies or workflow steps,
// and button presses drive the admin panel.
type Handler struct {
	bot        *tele.Bot
	api        telegramAPI
	access     *service.AccessService
	moderation *service.ModerationService
	workflow   *service.WorkflowService
	pending    *service.PendingReplies
	users      repository.UserRepository
	adminID    int64
	logger     *zap.Logger

	// Admin workflow states (in-memory state machine)
	states   map[int64]domain.AdminState
	stateMux sync.RWMutex
}

// NewHandler creates a new handler instance. adminID is the primary admin
// that receives relayed user messages.
func NewHandler(
	bot *tele.Bot,
	access *service.AccessService,
	moderation *service.ModerationService,
	workflow *service.WorkflowService,
	pending *service.PendingReplies,
	users repository.UserRepository,
	adminID int64,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:        bot,
		api:        bot,
		access:     access,
		moderation: moderation,
		workflow:   workflow,
		pending:    pending,
		users:      users,
		adminID:    adminID,
		logger:     logger,
		states:     make(map[int64]domain.AdminState),
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers(adminOnly tele.MiddlewareFunc) {
	// Commands
	h.bot.Handle("/start", h.handleStart)
	h.bot.Handle("/admin", h.handleAdminPanel, adminOnly)

	// Any relayable message kind goes through the same route so media is
	// copied verbatim, not just text
	for _, endpoint := range []string{
		tele.OnText,
		tele.OnPhoto,
		tele.OnVideo,
		tele.OnVoice,
		tele.OnAudio,
		tele.OnDocument,
		tele.OnSticker,
		tele.OnAnimation,
		tele.OnVideoNote,
	} {
		h.bot.Handle(endpoint, h.handleMessage)
	}

	// Callback queries (inline buttons)
	h.bot.Handle(tele.OnCallback, h.handleCallback)
}

// GetState returns an admin's current workflow state
func (h *Handler) GetState(adminID int64) domain.AdminState {
	h.stateMux.RLock()
	defer h.stateMux.RUnlock()

	state, exists := h.states[adminID]
	if !exists {
		return domain.StateIdle
	}
	return state
}

// SetState sets an admin's workflow state
func (h *Handler) SetState(adminID int64, state domain.AdminState) {
	h.stateMux.Lock()
	defer h.stateMux.Unlock()
	h.states[adminID] = state
}

// ResetState returns an admin to the idle state
func (h *Handler) ResetState(adminID int64) {
	h.SetState(adminID, domain.StateIdle)
}
