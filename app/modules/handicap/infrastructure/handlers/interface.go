package handicaphandlers

import (
	"github.com/ThreeDotsLabs/watermill/message"
)

// Handlers defines the methods a set of handicap handlers should implement.
type Handlers interface {
	HandleRoundScoreRecordRequest(msg *message.Message) ([]*message.Message, error)
	HandleScorecardImportRequest(msg *message.Message) ([]*message.Message, error)
}
