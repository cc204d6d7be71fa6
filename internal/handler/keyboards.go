package handler

import (
	"fmt"
	"strings"

	tele "gopkg.in/telebot.v3"
)

// Buttons carry raw colon-delimited tokens in Data so every press lands in
// the generic OnCallback route and is decoded in one place.

func btn(text, data string) tele.InlineButton {
	return tele.InlineButton{Text: text, Data: data}
}

// adminPanelMarkup returns the main admin panel keyboard
func adminPanelMarkup() *tele.ReplyMarkup {
	return &tele.ReplyMarkup{
		InlineKeyboard: [][]tele.InlineButton{
			{
				btn("👥 Users", "adm:users"),
				btn("📢 Broadcast", "adm:broadcast"),
			},
			{
				btn("📊 Stats", "adm:stats"),
				btn("🔗 Required channels", "adm:force"),
			},
			{
				btn("❌ Turn off", "adm:off"),
				btn("✅ Turn on", "adm:on"),
			},
		},
	}
}

// usersMenuMarkup returns the user-management submenu keyboard
func usersMenuMarkup() *tele.ReplyMarkup {
	return &tele.ReplyMarkup{
		InlineKeyboard: [][]tele.InlineButton{
			{
				btn("🔒 Ban", "adm:ban"),
				btn("🔓 Unban", "adm:unban"),
			},
			{
				btn("➕ Add admin", "adm:add_admin"),
				btn("🗑 Remove admin", "adm:remove_admin"),
			},
			{
				btn("↩️ Back", "adm:back"),
			},
		},
	}
}

// forceMenuMarkup returns the forced-subscription submenu keyboard
func forceMenuMarkup() *tele.ReplyMarkup {
	return &tele.ReplyMarkup{
		InlineKeyboard: [][]tele.InlineButton{
			{
				btn("➕ Add channel", "adm:add_ch"),
				btn("📋 List channels", "adm:list_ch"),
			},
			{
				btn("↩️ Back", "adm:back"),
			},
		},
	}
}

// messageActionsMarkup returns the reply/ban keyboard attached to each
// relayed user message
func messageActionsMarkup(targetUserID int64) *tele.ReplyMarkup {
	return &tele.ReplyMarkup{
		InlineKeyboard: [][]tele.InlineButton{
			{
				btn("✉️ Reply", fmt.Sprintf("usr:reply:%d", targetUserID)),
				btn("🔒 Ban", fmt.Sprintf("usr:ban:%d", targetUserID)),
			},
		},
	}
}

// subscribeMarkup returns per-channel join links plus a verify button
func subscribeMarkup(channels []string) *tele.ReplyMarkup {
	rows := make([][]tele.InlineButton, 0, len(channels)+1)
	for _, ch := range channels {
		rows = append(rows, []tele.InlineButton{
			{
				Text: fmt.Sprintf("📢 Join %s", ch),
				URL:  "https://t.me/" + strings.TrimPrefix(ch, "@"),
			},
		})
	}
	rows = append(rows, []tele.InlineButton{btn("✅ Verify", "usr:check_sub")})
	return &tele.ReplyMarkup{InlineKeyboard: rows}
}

// channelListMarkup returns per-channel delete buttons plus a back button
func channelListMarkup(channels []string) *tele.ReplyMarkup {
	rows := make([][]tele.InlineButton, 0, len(channels)+1)
	for _, ch := range channels {
		rows = append(rows, []tele.InlineButton{
			btn(fmt.Sprintf("🗑 Remove %s", ch), "adm:del_ch:"+ch),
		})
	}
	rows = append(rows, []tele.InlineButton{btn("↩️ Back", "adm:force")})
	return &tele.ReplyMarkup{InlineKeyboard: rows}
}
