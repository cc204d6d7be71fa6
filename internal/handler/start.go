package handler

import (
	"fmt"

	"supportbot/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleStart handles /start command
func (h *Handler) handleStart(c tele.Context) error {
	userID := c.Sender().ID

	h.logger.Info("User started bot",
		zap.Int64("user_id", userID),
		zap.String("username", c.Sender().Username),
	)

	if err := h.recordUser(userID); err != nil {
		h.logger.Error("Failed to record user", zap.Error(err))
		return c.Send("Something went wrong. Please try again later.")
	}

	decision, err := h.access.Evaluate(userID)
	if err != nil {
		h.logger.Error("Failed to evaluate access", zap.Error(err))
		return c.Send("Something went wrong. Please try again later.")
	}

	switch decision.Access {
	case domain.AccessBanned:
		return c.Send("🚫 You are banned from using this bot.")
	case domain.AccessServiceOff:
		return c.Send("🚫 The bot is currently unavailable.")
	case domain.AccessNeedsSubscription:
		return c.Send(
			"🔒 Join the following channels to use the bot:",
			subscribeMarkup(decision.MissingChannels),
		)
	}

	name := c.Sender().FirstName
	if name == "" {
		name = "friend"
	}
	return c.Send(fmt.Sprintf("Hi %s!\nSend your message and it will be forwarded to the support team.", name))
}

// handleAdminPanel handles /admin command; admin access is enforced by
// middleware
func (h *Handler) handleAdminPanel(c tele.Context) error {
	return c.Send("✨ Admin panel ✨", adminPanelMarkup())
}

// recordUser stores the sender as a known user; repeated calls are no-ops.
// Admins are recorded too so they receive broadcasts.
func (h *Handler) recordUser(userID int64) error {
	return h.users.AddUser(userID)
}
