package record

import (
	"strconv"
	"strings"
	"time"

	"github.com/vuyischool/Airbnb-app/internal/domain"
)

const messageFields = 6

// EncodeMessage renders a message as
// id|senderId|receiverId|content|timestamp|read.
func EncodeMessage(m domain.Message) string {
	return strings.Join([]string{
		m.ID,
		m.SenderID,
		m.ReceiverID,
		sanitize(m.Content),
		formatDateTime(m.Timestamp),
		strconv.FormatBool(m.Read),
	}, Delimiter)
}

// DecodeMessage parses a message line. A malformed timestamp falls back to
// now; anything but the literal "true" reads as unread.
func DecodeMessage(line string) (domain.Message, bool) {
	parts := strings.SplitN(line, Delimiter, messageFields)
	if len(parts) < messageFields {
		return domain.Message{}, false
	}

	read, err := strconv.ParseBool(parts[5])
	if err != nil {
		read = false
	}

	return domain.Message{
		ID:         parts[0],
		SenderID:   parts[1],
		ReceiverID: parts[2],
		Content:    parts[3],
		Timestamp:  parseDateTimeOr(parts[4], time.Now()),
		Read:       read,
	}, true
}
