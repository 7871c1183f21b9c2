package matchhandlers

import (
	"github.com/ThreeDotsLabs/watermill/message"
)

// Handlers defines the methods a set of match handlers should implement.
type Handlers interface {
	HandleMatchCreateRequest(msg *message.Message) ([]*message.Message, error)
	HandleHoleOutcomeRecordRequest(msg *message.Message) ([]*message.Message, error)
}
