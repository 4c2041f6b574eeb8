package service

import (
	"context"
	"time"

	"survey-interview-be/internal/dto"
	"survey-interview-be/internal/entity"
	"survey-interview-be/internal/metrics"
	"survey-interview-be/internal/pkg/logger"
	"survey-interview-be/internal/repository/contract"
	"survey-interview-be/pkg/elevenlabs"
	"survey-interview-be/pkg/transcript"

	"github.com/google/uuid"
)

type IInterviewService interface {
	GetSession(ctx context.Context, userId string) (*dto.SessionInfoResponse, error)
	StartInterview(ctx context.Context, userId string) (*dto.StartInterviewResponse, error)
	BindConversation(ctx context.Context, userId, conversationId string) error
	CompleteInterview(ctx context.Context, userId string) (*dto.CompleteInterviewResponse, error)
	CheckCompletion(ctx context.Context, userId string) (*dto.CheckCompletionResponse, error)
}

type interviewService struct {
	sessionRepo  contract.SessionRepository
	conversation elevenlabs.ConversationProvider
	publisher    IPublisherService
	metrics      *metrics.Metrics
	sysLogger    logger.ILogger
}

func NewInterviewService(
	sessionRepo contract.SessionRepository,
	conversation elevenlabs.ConversationProvider,
	publisher IPublisherService,
	collector *metrics.Metrics,
	sysLogger logger.ILogger,
) IInterviewService {
	return &interviewService{
		sessionRepo:  sessionRepo,
		conversation: conversation,
		publisher:    publisher,
		metrics:      collector,
		sysLogger:    sysLogger,
	}
}

func (s *interviewService) GetSession(ctx context.Context, userId string) (*dto.SessionInfoResponse, error) {
	session, err := s.sessionRepo.FindByUserId(ctx, userId)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, entity.ErrSessionNotFound
	}

	createdAt := session.CreatedAt
	return &dto.SessionInfoResponse{
		UserId:         session.UserId,
		ConversationId: session.ConversationId,
		Segment:        session.Segment,
		SurveyStatus:   string(session.SurveyStatus),
		Transcript:     session.Transcript,
		CreatedAt:      &createdAt,
	}, nil
}

// StartInterview begins a new conversation attempt. The session must already
// exist (the survey stage creates it). If a previous conversation is still
// bound, its transcript is archived first so the new attempt cannot clobber
// it; archiving is best-effort and never blocks the new attempt.
func (s *interviewService) StartInterview(ctx context.Context, userId string) (*dto.StartInterviewResponse, error) {
	session, err := s.sessionRepo.FindByUserId(ctx, userId)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, entity.ErrSessionNotFound
	}

	if session.ConversationId != nil {
		if _, err := s.CompleteInterview(ctx, userId); err != nil {
			s.sysLogger.Warn("interview", "Could not archive previous conversation before restart", map[string]interface{}{
				"user_id": userId,
				"error":   err.Error(),
			})
		}
	}

	// Tracking id for this attempt. The voice widget owns the real external
	// conversation; the client rebinds its id via BindConversation once known.
	conversationId := uuid.New().String()

	if err := s.sessionRepo.BindConversation(ctx, userId, conversationId); err != nil {
		return nil, err
	}

	s.publishEvent(dto.EventConversationStarted, session)

	return &dto.StartInterviewResponse{
		ConversationId: conversationId,
		Status:         "success",
		Message:        "Conversation started successfully",
	}, nil
}

func (s *interviewService) BindConversation(ctx context.Context, userId, conversationId string) error {
	return s.sessionRepo.BindConversation(ctx, userId, conversationId)
}

// CompleteInterview fetches the final transcript for the bound conversation,
// appends it to the accumulated transcript, and clears the binding. The
// external fetch takes multiple seconds while the provider finalizes its
// transcript, so it runs outside any per-user lock; only the append holds the
// row lock. When the fetch fails, prior transcript data is preserved: the
// caller gets the accumulated transcript with a failure status if one exists,
// or ErrTranscriptUnavailable if there is nothing to return.
func (s *interviewService) CompleteInterview(ctx context.Context, userId string) (*dto.CompleteInterviewResponse, error) {
	session, err := s.sessionRepo.FindByUserId(ctx, userId)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, entity.ErrSessionNotFound
	}

	existing := ""
	if session.Transcript != nil {
		existing = *session.Transcript
	}

	// No bound conversation: nothing to fetch, return what is accumulated.
	if session.ConversationId == nil {
		return &dto.CompleteInterviewResponse{
			Status:     "success",
			Transcript: existing,
			Message:    "No active conversation to complete",
		}, nil
	}

	fragment, fetchErr := s.fetchTranscript(ctx, *session.ConversationId)
	if fetchErr != nil || fragment == "" {
		s.metrics.IncrementTranscriptFetchFailures()
		s.sysLogger.Error("interview", "Transcript fetch failed", map[string]interface{}{
			"user_id":         userId,
			"conversation_id": *session.ConversationId,
			"error":           errString(fetchErr),
		})

		if existing != "" {
			return &dto.CompleteInterviewResponse{
				Status:     "failure",
				Transcript: existing,
				Message:    "Could not confirm completion; previous transcript preserved",
			}, nil
		}
		return nil, entity.ErrTranscriptUnavailable
	}

	merged, err := s.sessionRepo.AppendTranscript(ctx, userId, fragment)
	if err != nil {
		return nil, err
	}

	s.publishEvent(dto.EventInterviewCompleted, session)

	return &dto.CompleteInterviewResponse{
		Status:        "success",
		Transcript:    merged,
		NewTranscript: fragment,
		Message:       "Transcript saved successfully",
	}, nil
}

// CheckCompletion is a side-effect-free probe: it never writes to the session
// store. When a conversation is bound it asks the provider for the live state;
// otherwise (or when the provider is unreachable) it falls back to the stored
// transcript. Purely advisory for the client's resume/polling UI.
func (s *interviewService) CheckCompletion(ctx context.Context, userId string) (*dto.CheckCompletionResponse, error) {
	session, err := s.sessionRepo.FindByUserId(ctx, userId)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, entity.ErrSessionNotFound
	}

	stored := ""
	if session.Transcript != nil {
		stored = *session.Transcript
	}

	if session.ConversationId != nil {
		conversation, err := s.conversation.GetConversation(ctx, *session.ConversationId)
		if err == nil {
			fragment := conversation.FormattedTranscript()
			isComplete := conversation.Status == "done" || transcript.LooksComplete(fragment)
			return completionResponse(isComplete, fragment != "" || stored != ""), nil
		}
		s.sysLogger.Warn("interview", "Completion probe fell back to stored transcript", map[string]interface{}{
			"user_id": userId,
			"error":   err.Error(),
		})
	}

	if stored == "" {
		return &dto.CheckCompletionResponse{
			IsComplete:    false,
			HasTranscript: false,
			Message:       "No transcript available",
		}, nil
	}

	res := completionResponse(transcript.LooksComplete(stored), true)
	res.TranscriptLength = len(stored)
	return res, nil
}

func (s *interviewService) fetchTranscript(ctx context.Context, conversationId string) (string, error) {
	conversation, err := s.conversation.GetConversation(ctx, conversationId)
	if err != nil {
		return "", err
	}
	return conversation.FormattedTranscript(), nil
}

func (s *interviewService) publishEvent(eventType string, session *entity.UserSession) {
	if s.publisher == nil {
		return
	}

	event := &dto.SessionEventMessage{
		Type:         eventType,
		UserId:       session.UserId,
		SurveyStatus: string(session.SurveyStatus),
		OccurredAt:   time.Now(),
	}
	if session.Segment != nil {
		event.Segment = *session.Segment
	}

	if err := s.publisher.PublishSessionEvent(event); err != nil {
		s.sysLogger.Warn("interview", "Failed to publish session event", map[string]interface{}{
			"user_id": session.UserId,
			"type":    eventType,
			"error":   err.Error(),
		})
	}
}

func completionResponse(isComplete, hasTranscript bool) *dto.CheckCompletionResponse {
	message := "Incomplete - can resume"
	if isComplete {
		message = "Complete"
	}
	return &dto.CheckCompletionResponse{
		IsComplete:    isComplete,
		HasTranscript: hasTranscript,
		Message:       message,
	}
}

func errString(err error) string {
	if err == nil {
		return "empty transcript"
	}
	return err.Error()
}
