package notify

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEmail struct {
	sent []string
	fail bool
}

func (f *fakeEmail) SendEmail(ctx context.Context, to, subject, body string) error {
	f.sent = append(f.sent, to)
	if f.fail {
		return errors.New("smtp down")
	}
	return nil
}

type fakeSMS struct {
	sent []string
	fail bool
}

func (f *fakeSMS) SendSMS(ctx context.Context, phone, message string) error {
	f.sent = append(f.sent, phone)
	if f.fail {
		return errors.New("gateway down")
	}
	return nil
}

func TestDispatch(t *testing.T) {
	ctx := context.Background()

	t.Run("email and sms attempted once each", func(t *testing.T) {
		email := &fakeEmail{}
		sms := &fakeSMS{}
		d := NewDispatcher(email, sms, zerolog.Nop())

		ok := d.Dispatch(ctx, KindApproval, "Jane Doe", "jane@x.com", "+27831234567")

		assert.True(t, ok)
		assert.Equal(t, []string{"jane@x.com"}, email.sent)
		assert.Equal(t, []string{"+27831234567"}, sms.sent)
	})

	t.Run("sms skipped without a phone number", func(t *testing.T) {
		email := &fakeEmail{}
		sms := &fakeSMS{}
		d := NewDispatcher(email, sms, zerolog.Nop())

		ok := d.Dispatch(ctx, KindRejection, "Jane Doe", "jane@x.com", "")

		assert.True(t, ok)
		assert.Len(t, email.sent, 1)
		assert.Empty(t, sms.sent)
	})

	t.Run("email failure does not stop the sms attempt", func(t *testing.T) {
		email := &fakeEmail{fail: true}
		sms := &fakeSMS{}
		d := NewDispatcher(email, sms, zerolog.Nop())

		ok := d.Dispatch(ctx, KindApproval, "Jane Doe", "jane@x.com", "+27831234567")

		assert.False(t, ok)
		assert.Len(t, sms.sent, 1)
	})

	t.Run("sms failure reported but email already delivered", func(t *testing.T) {
		email := &fakeEmail{}
		sms := &fakeSMS{fail: true}
		d := NewDispatcher(email, sms, zerolog.Nop())

		ok := d.Dispatch(ctx, KindApproval, "Jane Doe", "jane@x.com", "+27831234567")

		assert.False(t, ok)
		assert.Len(t, email.sent, 1)
	})
}

func TestTemplates(t *testing.T) {
	t.Run("approval addresses the applicant", func(t *testing.T) {
		subject, body := emailTemplate(KindApproval, "Jane Doe")
		require.NotEmpty(t, subject)
		assert.Contains(t, body, "Jane Doe")
		assert.Contains(t, subject, "Approved")
	})

	t.Run("rejection addresses the applicant", func(t *testing.T) {
		subject, body := emailTemplate(KindRejection, "Jane Doe")
		assert.Contains(t, subject, "not Approved")
		assert.Contains(t, body, "Jane Doe")
	})

	t.Run("sms templates name the applicant", func(t *testing.T) {
		assert.Contains(t, smsTemplate(KindApproval, "Jane Doe"), "Jane Doe")
		assert.Contains(t, smsTemplate(KindRejection, "Jane Doe"), "Jane Doe")
	})
}
