package handler

import (
	tele "gopkg.in/telebot.v3"
)

// BotAdapter exposes the bot API surfaces the services need
// (service.MembershipChecker and service.BroadcastSender)
type BotAdapter struct {
	bot *tele.Bot
}

// NewBotAdapter wraps a bot for use by the services
func NewBotAdapter(bot *tele.Bot) *BotAdapter {
	return &BotAdapter{bot: bot}
}

// MemberStatus reports the user's membership status in a channel
func (a *BotAdapter) MemberStatus(channel string, userID int64) (string, error) {
	chat, err := a.bot.ChatByUsername(channel)
	if err != nil {
		return "", err
	}
	member, err := a.bot.ChatMemberOf(chat, &tele.User{ID: userID})
	if err != nil {
		return "", err
	}
	return string(member.Role), nil
}

// SendText delivers one plain text message to a user
func (a *BotAdapter) SendText(userID int64, text string) error {
	_, err := a.bot.Send(&tele.User{ID: userID}, text)
	return err
}
