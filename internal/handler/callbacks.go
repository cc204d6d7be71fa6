package handler

import (
	"fmt"
	"strings"
	"unicode"

	"supportbot/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// cleanCallbackData removes all non-printable characters from callback data
func cleanCallbackData(data string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(data))
}

// handleCallback handles ALL callback queries. The raw data is decoded into
// a token exactly once here; unknown tokens are acknowledged and dropped.
func (h *Handler) handleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		h.logger.Warn("handleCallback: callback is nil")
		return nil
	}

	data := cleanCallbackData(callback.Data)
	userID := c.Sender().ID

	token, err := domain.ParseCallbackToken(data)
	if err != nil {
		h.logger.Warn("Unknown callback token",
			zap.String("data", data),
			zap.Int64("user_id", userID),
		)
		return c.Respond()
	}

	h.logger.Info("Processing callback",
		zap.String("token", token.String()),
		zap.Int64("user_id", userID),
	)

	if token.Namespace == domain.TokenNamespaceUser && token.Action == "check_sub" {
		return h.handleCheckSubscription(c, userID)
	}

	// Everything else is admin-only
	isAdmin, err := h.moderation.IsAdmin(userID)
	if err != nil {
		h.logger.Error("Failed to check admin status", zap.Error(err))
		return c.Respond(&tele.CallbackResponse{Text: "Something went wrong."})
	}
	if !isAdmin {
		return c.Respond(&tele.CallbackResponse{
			Text:      "❌ This action is for admins only.",
			ShowAlert: true,
		})
	}

	if token.Namespace == domain.TokenNamespaceUser {
		return h.handleUserActionButton(c, userID, token)
	}
	return h.handleAdminButton(c, userID, token)
}

// handleCheckSubscription re-runs the subscription check for the presser
func (h *Handler) handleCheckSubscription(c tele.Context, userID int64) error {
	missing, err := h.access.MissingChannels(userID)
	if err != nil {
		h.logger.Error("Failed to re-check subscriptions", zap.Error(err))
		return c.Respond(&tele.CallbackResponse{Text: "Something went wrong."})
	}

	if len(missing) > 0 {
		return c.Respond(&tele.CallbackResponse{
			Text:      "❗ You have not joined all channels yet.",
			ShowAlert: true,
		})
	}

	if err := c.Respond(&tele.CallbackResponse{Text: "✅ Verified!", ShowAlert: true}); err != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(err))
	}
	return c.Send("🎉 You can use the bot now.")
}

// handleUserActionButton handles the reply/ban buttons under a relayed
// message; the presser is already known to be an admin
func (h *Handler) handleUserActionButton(c tele.Context, adminID int64, token domain.CallbackToken) error {
	target, err := token.UserID()
	if err != nil {
		h.logger.Warn("Callback token with malformed user ID",
			zap.String("token", token.String()),
		)
		return c.Respond()
	}

	switch token.Action {
	case "reply":
		h.pending.Set(adminID, target)
		return c.Respond(&tele.CallbackResponse{
			Text:      "Type your reply now and it will be sent to the user.",
			ShowAlert: true,
		})

	case "ban":
		if err := h.moderation.BanUser(target); err != nil {
			h.logger.Error("Failed to ban user", zap.Error(err))
			return c.Respond(&tele.CallbackResponse{Text: "Something went wrong."})
		}
		h.notifyUser(target, "You have been banned from using this bot.")
		return c.Respond(&tele.CallbackResponse{
			Text:      "✅ User banned.",
			ShowAlert: true,
		})
	}

	return c.Respond()
}

// handleAdminButton handles the admin panel buttons
func (h *Handler) handleAdminButton(c tele.Context, adminID int64, token domain.CallbackToken) error {
	switch token.Action {
	case "back":
		return h.editPanel(c, "✨ Admin panel ✨", adminPanelMarkup())
	case "users":
		return h.editPanel(c, "👥 User management:", usersMenuMarkup())
	case "force":
		return h.editPanel(c, "🔗 Required channels:", forceMenuMarkup())

	case "stats":
		stats, err := h.moderation.Stats()
		if err != nil {
			h.logger.Error("Failed to collect stats", zap.Error(err))
			return c.Respond(&tele.CallbackResponse{Text: "Something went wrong."})
		}
		status := "✅ on"
		if !stats.Enabled {
			status = "❌ off"
		}
		text := fmt.Sprintf(
			"📊 Stats\n\n👥 Users: %d\n📢 Required channels: %d\n⚙️ Status: %s",
			stats.Users, stats.Channels, status,
		)
		if err := c.Send(text); err != nil {
			return err
		}
		return c.Respond()

	case "on", "off":
		enabled := token.Action == "on"
		if err := h.moderation.SetEnabled(enabled); err != nil {
			h.logger.Error("Failed to toggle bot status", zap.Error(err))
			return c.Respond(&tele.CallbackResponse{Text: "Something went wrong."})
		}
		reply := "✅ The bot is now on."
		if !enabled {
			reply = "❌ The bot is now off."
		}
		if err := c.Send(reply); err != nil {
			return err
		}
		return c.Respond()

	case "list_ch":
		channels, err := h.moderation.ListChannels()
		if err != nil {
			h.logger.Error("Failed to list channels", zap.Error(err))
			return c.Respond(&tele.CallbackResponse{Text: "Something went wrong."})
		}
		if len(channels) == 0 {
			if err := c.Send("📭 No required channels."); err != nil {
				return err
			}
			return c.Respond()
		}
		if err := c.Send("📋 Current channels:", channelListMarkup(channels)); err != nil {
			return err
		}
		return c.Respond()

	case "del_ch":
		if token.Arg == "" {
			return c.Respond()
		}
		if err := h.moderation.RemoveChannel(token.Arg); err != nil {
			h.logger.Error("Failed to remove channel", zap.Error(err))
			return c.Respond(&tele.CallbackResponse{Text: "Something went wrong."})
		}
		return c.Respond(&tele.CallbackResponse{
			Text:      "✅ Channel removed.",
			ShowAlert: true,
		})

	case "broadcast":
		return h.enterState(c, adminID, domain.StateAwaitingBroadcast,
			"📝 Send the broadcast text now:")
	case "add_ch":
		return h.enterState(c, adminID, domain.StateAwaitingChannel,
			"📝 Send the channel handle, e.g. @channel:")
	case "ban":
		return h.enterState(c, adminID, domain.StateAwaitingBan,
			"🔒 Send the ID of the user to ban:")
	case "unban":
		return h.enterState(c, adminID, domain.StateAwaitingUnban,
			"🔓 Send the ID of the user to unban:")
	case "add_admin":
		return h.enterState(c, adminID, domain.StateAwaitingAdminAdd,
			"➕ Send the ID of the user to make admin:")
	case "remove_admin":
		return h.enterState(c, adminID, domain.StateAwaitingAdminDel,
			"🗑 Send the ID of the admin to remove:")
	}

	h.logger.Warn("Unhandled admin callback", zap.String("token", token.String()))
	return c.Respond()
}

// enterState opens a workflow step: the admin's next freeform message is
// consumed as its input
func (h *Handler) enterState(c tele.Context, adminID int64, state domain.AdminState, prompt string) error {
	h.SetState(adminID, state)
	if err := c.Send(prompt); err != nil {
		return err
	}
	return c.Respond()
}

// editPanel edits the pressed message in place, falling back to a new
// message when the edit fails
func (h *Handler) editPanel(c tele.Context, text string, markup *tele.ReplyMarkup) error {
	if err := c.Edit(text, markup); err != nil {
		if strings.Contains(err.Error(), "message is not modified") {
			return c.Respond()
		}
		h.logger.Warn("Failed to edit panel message, sending new", zap.Error(err))
		if err := c.Send(text, markup); err != nil {
			return err
		}
	}
	return c.Respond()
}
