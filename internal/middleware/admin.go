package middleware

import (
	"supportbot/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// AdminOnly creates middleware that restricts a handler to the admin set
func AdminOnly(moderation *service.ModerationService, logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			userID := c.Sender().ID

			isAdmin, err := moderation.IsAdmin(userID)
			if err != nil {
				logger.Error("Failed to check admin status in middleware", zap.Error(err))
				return c.Send("Something went wrong. Please try again later.")
			}

			if !isAdmin {
				logger.Debug("Non-admin tried an admin command",
					zap.Int64("user_id", userID),
				)
				return c.Send("This command is for admins only.")
			}

			return next(c)
		}
	}
}
