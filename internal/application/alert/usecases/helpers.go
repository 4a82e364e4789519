package usecases

import "strconv"

func formatChatID(chatID int64) string {
	return strconv.FormatInt(chatID, 10)
}
