package handler

import (
	"errors"
	"fmt"
	"strings"

	"supportbot/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleMessage routes every non-command message. Admin messages complete a
// pending reply or an open workflow step; user messages run the access gate
// and are relayed to the primary admin.
func (h *Handler) handleMessage(c tele.Context) error {
	userID := c.Sender().ID

	isAdmin, err := h.moderation.IsAdmin(userID)
	if err != nil {
		h.logger.Error("Failed to check admin status", zap.Error(err))
		return c.Send("Something went wrong. Please try again later.")
	}

	if isAdmin {
		// Registered commands never reach this route; an admin's stray
		// slash input must not be consumed as a reply or workflow step
		if strings.HasPrefix(c.Text(), "/") {
			return nil
		}
		return h.handleAdminMessage(c, userID)
	}

	// Unrecognized commands from plain users are relayed like any other text
	return h.handleUserMessage(c, userID)
}

// handleAdminMessage consumes an admin's freeform message. A pending reply
// is checked before workflow state: an admin mid-workflow with a stale
// pending reply gets their text consumed as a reply. Kept this way to match
// observed behavior, even though the ordering is arguably a defect.
func (h *Handler) handleAdminMessage(c tele.Context, adminID int64) error {
	if target, ok := h.pending.Take(adminID); ok {
		if _, err := h.api.Copy(&tele.User{ID: target}, c.Message()); err != nil {
			h.logger.Warn("Failed to deliver admin reply",
				zap.Int64("target_id", target),
				zap.Error(err),
			)
			return c.Send(fmt.Sprintf("❌ Could not deliver the reply: %v", err))
		}
		return c.Send("✅ Reply delivered to the user.")
	}

	state := h.GetState(adminID)
	if state == domain.StateIdle {
		// No pending action; admin text outside a workflow is inert
		return nil
	}

	// One freeform message consumes the state, success or failure
	h.ResetState(adminID)

	result, err := h.workflow.Consume(state, c.Text())
	if err != nil {
		return c.Send(workflowErrorReply(err))
	}

	if result.Notice != nil {
		h.notifyUser(result.Notice.UserID, result.Notice.Text)
	}
	return c.Send(result.Reply)
}

// handleUserMessage relays a plain user's message to the primary admin
func (h *Handler) handleUserMessage(c tele.Context, userID int64) error {
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
		// Banned users are dropped silently
		return nil
	case domain.AccessServiceOff:
		return c.Send("🚫 The bot is currently unavailable.")
	case domain.AccessNeedsSubscription:
		return c.Send(
			"🔒 Join the following channels to use the bot:",
			subscribeMarkup(decision.MissingChannels),
		)
	}

	username := c.Sender().Username
	if username == "" {
		username = "none"
	}
	name := strings.TrimSpace(c.Sender().FirstName + " " + c.Sender().LastName)
	if name == "" {
		name = "unnamed"
	}

	header := fmt.Sprintf(
		"📩 New message\n👤 Name: %s\n🔗 Username: @%s\n🆔 ID: %d\n—\nPress Reply to answer directly.",
		name, username, userID,
	)

	admin := &tele.User{ID: h.adminID}
	if _, err := h.api.Send(admin, header, messageActionsMarkup(userID)); err != nil {
		h.logger.Error("Failed to send relay header to admin", zap.Error(err))
		return c.Send("Something went wrong. Please try again later.")
	}

	// Copy carries any message kind verbatim; fall back to a notice when a
	// kind cannot be copied
	if _, err := h.api.Copy(admin, c.Message()); err != nil {
		h.logger.Warn("Failed to copy user message to admin", zap.Error(err))
		if _, sendErr := h.api.Send(admin, fmt.Sprintf("⚠️ Could not copy the original message: %v", err)); sendErr != nil {
			h.logger.Error("Failed to send copy-failure notice to admin", zap.Error(sendErr))
		}
	}

	return c.Send("✅ Your message was forwarded to the support team. You will get a reply soon.")
}

// notifyUser sends a best-effort notification; failures are logged only
func (h *Handler) notifyUser(userID int64, text string) {
	if _, err := h.api.Send(&tele.User{ID: userID}, text); err != nil {
		h.logger.Debug("Failed to notify user",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
	}
}

// workflowErrorReply maps workflow errors to admin-facing replies
func workflowErrorReply(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidUserID):
		return "❗ Send a numeric user ID. Open the panel again to retry."
	case errors.Is(err, domain.ErrInvalidChannel):
		return "❗ The channel handle must look like @channel. Open the panel again to retry."
	case errors.Is(err, domain.ErrEmptyBroadcast):
		return "❗ The broadcast text must not be empty. Open the panel again to retry."
	case errors.Is(err, domain.ErrPrimaryAdmin):
		return "❌ The primary admin cannot be removed."
	}
	return "❌ The operation failed. Please try again later."
}
