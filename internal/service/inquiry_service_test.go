package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vorolab/site/internal/inquiry"
	"github.com/vorolab/site/internal/logging"
	"github.com/vorolab/site/internal/metrics"
)

// fakeSink records every Send call and returns err.
type fakeSink struct {
	mu    sync.Mutex
	calls []sentMessage
	err   error
}

type sentMessage struct {
	chatID string
	text   string
}

func (f *fakeSink) Send(ctx context.Context, chatID, text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, sentMessage{chatID: chatID, text: text})
	return f.err
}

func (f *fakeSink) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func testLogger(t *testing.T) *logging.Logger {
	t.Helper()
	l, err := logging.NewLogger(&logging.Config{Level: logging.LevelError})
	require.NoError(t, err)
	return l
}

func newTestService(t *testing.T, cfg RelayConfig, sink NotificationSink) *InquiryService {
	t.Helper()
	svc := NewInquiryService(cfg, sink, testLogger(t))
	svc.now = func() time.Time { return time.Date(2026, time.January, 15, 20, 30, 0, 0, time.UTC) }
	return svc
}

func fullInquiry() inquiry.Inquiry {
	return inquiry.Inquiry{
		Name:            "Jane Doe",
		BusinessName:    "Doe Bakery",
		PhoneNumber:     "+1 (555) 123-4567",
		BusinessAddress: "1 Main St",
		Instagram:       "@doebakery",
		Message:         "We need product photos.",
	}
}

var configured = RelayConfig{BotToken: "123:abc", ChatID: "-100200"}

func TestSubmit_Success(t *testing.T) {
	sink := &fakeSink{}
	svc := newTestService(t, configured, sink)

	require.NoError(t, svc.Submit(context.Background(), fullInquiry()))

	require.Equal(t, 1, sink.count())
	assert.Equal(t, "-100200", sink.calls[0].chatID)
	assert.Equal(t, inquiry.Format(fullInquiry(), svc.now()), sink.calls[0].text)
}

func TestSubmit_MissingFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*inquiry.Inquiry)
	}{
		{"name", func(in *inquiry.Inquiry) { in.Name = "" }},
		{"business name", func(in *inquiry.Inquiry) { in.BusinessName = "" }},
		{"phone", func(in *inquiry.Inquiry) { in.PhoneNumber = "" }},
		{"message", func(in *inquiry.Inquiry) { in.Message = "" }},
		{"whitespace message", func(in *inquiry.Inquiry) { in.Message = "   " }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sink := &fakeSink{}
			svc := newTestService(t, configured, sink)
			in := fullInquiry()
			tt.mutate(&in)

			err := svc.Submit(context.Background(), in)

			assert.ErrorIs(t, err, ErrMissingFields)
			assert.Zero(t, sink.count())
		})
	}
}

func TestSubmit_DoesNotCheckPhoneFormat(t *testing.T) {
	sink := &fakeSink{}
	svc := newTestService(t, configured, sink)
	in := fullInquiry()
	in.PhoneNumber = "call me maybe"

	assert.NoError(t, svc.Submit(context.Background(), in))
	assert.Equal(t, 1, sink.count())
}

func TestSubmit_Configuration(t *testing.T) {
	tests := []struct {
		name string
		cfg  RelayConfig
		want error
	}{
		{"no token", RelayConfig{ChatID: "1"}, ErrBotNotConfigured},
		{"no chat", RelayConfig{BotToken: "t"}, ErrChatNotConfigured},
		{"neither reports token first", RelayConfig{}, ErrBotNotConfigured},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sink := &fakeSink{}
			svc := newTestService(t, tt.cfg, sink)

			err := svc.Submit(context.Background(), fullInquiry())

			assert.ErrorIs(t, err, tt.want)
			assert.ErrorIs(t, err, ErrConfiguration)
			assert.Zero(t, sink.count())
		})
	}
}

func TestSubmit_MissingFieldsCheckedBeforeConfiguration(t *testing.T) {
	svc := newTestService(t, RelayConfig{}, &fakeSink{})

	assert.ErrorIs(t, svc.Submit(context.Background(), inquiry.Inquiry{}), ErrMissingFields)
}

func TestSubmit_SinkRejects(t *testing.T) {
	sink := &fakeSink{err: &DispatchError{StatusCode: 400, Body: `{"ok":false}`}}
	svc := newTestService(t, configured, sink)

	err := svc.Submit(context.Background(), fullInquiry())

	assert.ErrorIs(t, err, ErrDispatch)
	assert.NotErrorIs(t, err, ErrInternal)
	assert.Equal(t, 1, sink.count(), "no retry")
}

func TestSubmit_TransportFailure(t *testing.T) {
	sink := &fakeSink{err: errors.New("connection refused")}
	svc := newTestService(t, configured, sink)

	err := svc.Submit(context.Background(), fullInquiry())

	assert.ErrorIs(t, err, ErrInternal)
	assert.NotErrorIs(t, err, ErrDispatch)
	assert.Equal(t, 1, sink.count(), "no retry")
}

func TestSubmit_NilLoggerNeverPanics(t *testing.T) {
	svc := &InquiryService{cfg: RelayConfig{}, sink: &fakeSink{}, now: time.Now}

	assert.NotPanics(t, func() {
		assert.ErrorIs(t, svc.Submit(context.Background(), fullInquiry()), ErrBotNotConfigured)
	})
}

func TestSubmit_Concurrent(t *testing.T) {
	sink := &fakeSink{}
	svc := newTestService(t, configured, sink)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, svc.Submit(context.Background(), fullInquiry()))
		}()
	}
	wg.Wait()

	assert.Equal(t, 20, sink.count())
	for _, call := range sink.calls {
		assert.True(t, strings.HasPrefix(call.text, "🆕 *"+inquiry.Title+"*"))
	}
}

func TestOutcome(t *testing.T) {
	assert.Equal(t, metrics.OutcomeSuccess, Outcome(nil))
	assert.Equal(t, metrics.OutcomeMissingFields, Outcome(ErrMissingFields))
	assert.Equal(t, metrics.OutcomeConfiguration, Outcome(ErrChatNotConfigured))
	assert.Equal(t, metrics.OutcomeDispatch, Outcome(ErrDispatch))
	assert.Equal(t, metrics.OutcomeInternal, Outcome(errors.New("boom")))
}
