package service

import (
	"context"
	"strings"
	"time"

	"survey-interview-be/internal/dto"
	"survey-interview-be/internal/entity"
	"survey-interview-be/internal/metrics"
	"survey-interview-be/internal/pkg/logger"
	"survey-interview-be/internal/repository/contract"
	"survey-interview-be/pkg/segment"
)

type IWebhookService interface {
	Ingest(ctx context.Context, payload *dto.TypeformWebhookPayload) error
}

type webhookService struct {
	sessionRepo contract.SessionRepository
	surveyCfg   *segment.SurveyConfig
	publisher   IPublisherService
	metrics     *metrics.Metrics
	sysLogger   logger.ILogger
}

func NewWebhookService(
	sessionRepo contract.SessionRepository,
	surveyCfg *segment.SurveyConfig,
	publisher IPublisherService,
	collector *metrics.Metrics,
	sysLogger logger.ILogger,
) IWebhookService {
	return &webhookService{
		sessionRepo: sessionRepo,
		surveyCfg:   surveyCfg,
		publisher:   publisher,
		metrics:     collector,
		sysLogger:   sysLogger,
	}
}

// Ingest processes one inbound survey submission: extracts answers, evaluates
// the segmentation rules, and upserts the user's session. Redelivery of the
// same submission recomputes the same values, so the upsert is a no-op in
// effect and ingestion stays idempotent.
func (s *webhookService) Ingest(ctx context.Context, payload *dto.TypeformWebhookPayload) error {
	userId := strings.TrimSpace(payload.FormResponse.Hidden.UserId)
	if userId == "" {
		s.metrics.IncrementWebhooksIgnored()
		return entity.ErrMalformedPayload
	}

	responses := payload.FormResponse.ResponsesWithQuestions()
	answers := s.buildAnswerSet(responses)

	segmentName, status := segment.Evaluate(answers, s.surveyCfg)

	s.sysLogger.Info("webhook", "Survey submission segmented", map[string]interface{}{
		"user_id": userId,
		"segment": segmentName,
		"status":  status,
		"answers": len(answers),
	})

	result := &entity.SurveyResult{
		UserId:       userId,
		SurveyStatus: entity.SurveyStatus(status),
		Segment:      segmentName,
		FormId:       payload.FormResponse.FormId,
		FormToken:    payload.FormResponse.Token,
		EventId:      payload.EventId,
		SubmittedAt:  parseSubmittedAt(payload.FormResponse.SubmittedAt),
	}

	if err := s.sessionRepo.UpsertSurveyResult(ctx, result); err != nil {
		return err
	}

	s.metrics.IncrementWebhooksProcessed()

	if s.publisher != nil {
		if err := s.publisher.PublishSessionEvent(&dto.SessionEventMessage{
			Type:         dto.EventSurveySegmented,
			UserId:       userId,
			Segment:      segmentName,
			SurveyStatus: status,
			OccurredAt:   time.Now(),
		}); err != nil {
			s.sysLogger.Warn("webhook", "Failed to publish session event", map[string]interface{}{
				"user_id": userId,
				"error":   err.Error(),
			})
		}
	}

	return nil
}

// buildAnswerSet resolves each configured question against the raw responses
// by case-insensitive partial title containment. Raw questions with no mapping
// are discarded; questions with no matching response stay absent from the set.
func (s *webhookService) buildAnswerSet(responses []dto.RawResponse) segment.AnswerSet {
	answers := make(segment.AnswerSet)

	for _, q := range s.surveyCfg.Questions {
		partial := strings.ToLower(q.PartialTitle)

		for _, response := range responses {
			if !strings.Contains(strings.ToLower(response.QuestionTitle), partial) {
				continue
			}

			switch q.Type {
			case segment.AnswerTypeChoice:
				value := response.ChoiceLabel
				if value == "" {
					value = response.Text
				}
				if value != "" {
					answers[q.Key] = segment.ScalarAnswer(value)
				}
			case segment.AnswerTypeChoices:
				labels := response.ChoiceLabels
				if len(labels) == 0 && response.ChoiceLabel != "" {
					labels = []string{response.ChoiceLabel}
				}
				if len(labels) > 0 {
					answers[q.Key] = segment.ListAnswer(labels)
				}
			case segment.AnswerTypeText:
				if response.Text != "" {
					answers[q.Key] = segment.ScalarAnswer(response.Text)
				}
			}
			break
		}
	}

	return answers
}

func parseSubmittedAt(raw string) *time.Time {
	if raw == "" {
		now := time.Now().UTC()
		return &now
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		now := time.Now().UTC()
		return &now
	}
	return &t
}
