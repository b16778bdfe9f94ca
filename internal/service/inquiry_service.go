package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/vorolab/site/internal/inquiry"
	"github.com/vorolab/site/internal/logging"
	"github.com/vorolab/site/internal/metrics"
)

var tracer = otel.Tracer("github.com/vorolab/site/internal/service")

// RelayConfig holds the notification destination secrets. It is loaded once
// at startup; emptiness is checked on every submission.
type RelayConfig struct {
	BotToken string
	ChatID   string
}

// NotificationSink delivers a formatted notification to a destination chat.
type NotificationSink interface {
	Send(ctx context.Context, chatID, text string) error
}

// InquiryService validates inquiries and relays them to a NotificationSink.
// It holds no per-request state and is safe for concurrent use.
type InquiryService struct {
	cfg    RelayConfig
	sink   NotificationSink
	logger *logging.Logger
	now    func() time.Time
}

// NewInquiryService creates the relay. A nil logger uses the global one.
func NewInquiryService(cfg RelayConfig, sink NotificationSink, logger *logging.Logger) *InquiryService {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &InquiryService{
		cfg:    cfg,
		sink:   sink,
		logger: logger,
		now:    time.Now,
	}
}

// Submit runs one inquiry through the relay: required-field check,
// configuration check, formatting and a single dispatch attempt. The returned
// error wraps exactly one of ErrMissingFields, ErrConfiguration, ErrDispatch
// or ErrInternal.
func (s *InquiryService) Submit(ctx context.Context, in inquiry.Inquiry) (err error) {
	ctx, span := tracer.Start(ctx, "InquiryService.Submit")
	defer func() {
		metrics.RecordInquiry(Outcome(err))
		span.SetAttributes(attribute.String("inquiry.outcome", Outcome(err)))
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, Outcome(err))
		}
		span.End()
	}()

	if missing := inquiry.Validate(in).Missing(); len(missing) > 0 {
		s.logWarn("Rejected inquiry: missing required fields %v", missing)
		return ErrMissingFields
	}

	if s.cfg.BotToken == "" {
		s.logError("TELEGRAM_BOT_TOKEN not found in environment variables")
		return ErrBotNotConfigured
	}
	if s.cfg.ChatID == "" {
		s.logError("TELEGRAM_CHAT_ID not found in environment variables")
		return ErrChatNotConfigured
	}

	text := inquiry.Format(in, s.now())

	start := time.Now()
	err = s.sink.Send(ctx, s.cfg.ChatID, text)
	metrics.RecordDispatch(time.Since(start))

	if err != nil {
		var dispatchErr *DispatchError
		if errors.As(err, &dispatchErr) {
			s.logError("Telegram API error (status %d): %s", dispatchErr.StatusCode, dispatchErr.Body)
			return fmt.Errorf("%w: %w", ErrDispatch, err)
		}
		s.logError("Error processing inquiry: %v", err)
		return fmt.Errorf("%w: %w", ErrInternal, err)
	}

	s.logInfo("Inquiry from %q (%s) relayed to Telegram", in.Name, in.BusinessName)
	return nil
}

// Outcome classifies a Submit result for metrics and tracing.
func Outcome(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeSuccess
	case errors.Is(err, ErrMissingFields):
		return metrics.OutcomeMissingFields
	case errors.Is(err, ErrConfiguration):
		return metrics.OutcomeConfiguration
	case errors.Is(err, ErrDispatch):
		return metrics.OutcomeDispatch
	default:
		return metrics.OutcomeInternal
	}
}

// Logging is best effort and must never take the request down with it.

func (s *InquiryService) logInfo(format string, v ...interface{}) {
	defer func() { _ = recover() }()
	s.logger.Info(format, v...)
}

func (s *InquiryService) logWarn(format string, v ...interface{}) {
	defer func() { _ = recover() }()
	s.logger.Warn(format, v...)
}

func (s *InquiryService) logError(format string, v ...interface{}) {
	defer func() { _ = recover() }()
	s.logger.Error(format, v...)
}
