package utils

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
)

// Helpers is the message construction/unmarshalling contract shared by all
// module handlers.
type Helpers interface {
	CreateResultMessage(originalMsg *message.Message, payload any, topic string) (*message.Message, error)
	CreateNewMessage(payload any, topic string) (*message.Message, error)
	UnmarshalPayload(msg *message.Message, target any) error
}

type helpers struct{}

// NewHelpers returns the standard Helpers implementation.
func NewHelpers() Helpers {
	return helpers{}
}

// CreateResultMessage builds a message carrying the handler's result payload,
// propagating the correlation id from the message that triggered it.
func (helpers) CreateResultMessage(originalMsg *message.Message, payload any, topic string) (*message.Message, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result payload: %w", err)
	}

	msg := message.NewMessage(watermill.NewUUID(), data)
	msg.Metadata.Set("topic", topic)
	if originalMsg != nil {
		middleware.SetCorrelationID(middleware.MessageCorrelationID(originalMsg), msg)
	}
	return msg, nil
}

// CreateNewMessage builds a message with a fresh correlation id.
func (h helpers) CreateNewMessage(payload any, topic string) (*message.Message, error) {
	msg, err := h.CreateResultMessage(nil, payload, topic)
	if err != nil {
		return nil, err
	}
	middleware.SetCorrelationID(watermill.NewUUID(), msg)
	return msg, nil
}

func (helpers) UnmarshalPayload(msg *message.Message, target any) error {
	if err := json.Unmarshal(msg.Payload, target); err != nil {
		return fmt.Errorf("failed to unmarshal payload into %T: %w", target, err)
	}
	return nil
}

// MiddlewareHelpers builds the common watermill middleware stack pieces.
type MiddlewareHelpers interface {
	CommonMetadataMiddleware(module string) message.HandlerMiddleware
}

type middlewareHelpers struct{}

func NewMiddlewareHelper() MiddlewareHelpers {
	return middlewareHelpers{}
}

// CommonMetadataMiddleware stamps the handling module and receipt time onto
// every message.
func (middlewareHelpers) CommonMetadataMiddleware(module string) message.HandlerMiddleware {
	return func(h message.HandlerFunc) message.HandlerFunc {
		return func(msg *message.Message) ([]*message.Message, error) {
			msg.Metadata.Set("handled_by", module)
			msg.Metadata.Set("received_at", time.Now().UTC().Format(time.RFC3339))
			return h(msg)
		}
	}
}

// Clock abstracts time.Now for deterministic tests.
type Clock interface {
	Now() time.Time
}

// RealClock is the production Clock.
type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }
