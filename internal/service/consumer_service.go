package service

import (
	"context"
	"encoding/json"

	"survey-interview-be/internal/dto"
	"survey-interview-be/internal/metrics"
	"survey-interview-be/internal/pkg/logger"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// IConsumerService drains session lifecycle events off the internal bus and
// feeds the metrics counters plus the audit log. Runs for the process
// lifetime; started from main.
type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	pubSub    *gochannel.GoChannel
	topicName string
	metrics   *metrics.Metrics
	auditLog  logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	collector *metrics.Metrics,
	auditLog logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:    pubSub,
		topicName: topicName,
		metrics:   collector,
		auditLog:  auditLog,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(msg *message.Message) {
	var event dto.SessionEventMessage
	if err := json.Unmarshal(msg.Payload, &event); err != nil {
		cs.auditLog.Error("consumer", "Failed to unmarshal session event", map[string]interface{}{
			"error": err.Error(),
		})
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	switch event.Type {
	case dto.EventSurveySegmented:
		cs.metrics.IncrementSessionsSegmented()
	case dto.EventConversationStarted:
		cs.metrics.IncrementConversationsStarted()
	case dto.EventInterviewCompleted:
		cs.metrics.IncrementInterviewsCompleted()
	}

	cs.auditLog.Info("consumer", "Session event", map[string]interface{}{
		"type":          event.Type,
		"user_id":       event.UserId,
		"segment":       event.Segment,
		"survey_status": event.SurveyStatus,
		"occurred_at":   event.OccurredAt,
	})

	msg.Ack()
}
