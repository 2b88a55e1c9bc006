package sahaj_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/sahaj"
	"github.com/aretw0/sahaj/internal/observability"
	"github.com/aretw0/sahaj/pkg/content"
	"github.com/aretw0/sahaj/pkg/domain"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestAssistant_FirstTurnStartsSession(t *testing.T) {
	a := sahaj.New()
	ctx := context.Background()

	reply, err := a.Process(ctx, "s1", "start filing")
	require.NoError(t, err)
	assert.Equal(t, domain.StateCheckAadhaarLink, reply.State)
	assert.NotEmpty(t, reply.Text)
	assert.NotEmpty(t, reply.Options)

	sess, err := a.Session(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, domain.StateCheckAadhaarLink, sess.State)
}

func TestAssistant_UnknownMessageReprompts(t *testing.T) {
	a := sahaj.New()
	ctx := context.Background()

	first, err := a.Process(ctx, "s1", "qwertyuiop")
	require.NoError(t, err)
	assert.Equal(t, domain.StateStart, first.State)

	// The fallback is idempotent: repeating it changes nothing.
	second, err := a.Process(ctx, "s1", "qwertyuiop")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestAssistant_RestartClearsData(t *testing.T) {
	a := sahaj.New()
	ctx := context.Background()

	_, err := a.Process(ctx, "s1", "start filing")
	require.NoError(t, err)
	_, err = a.Process(ctx, "s1", "yes")
	require.NoError(t, err)

	reply, err := a.Process(ctx, "s1", "start over")
	require.NoError(t, err)
	assert.Equal(t, domain.StateStart, reply.State)

	sess, err := a.Session(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, sess.UserData)
	assert.Empty(t, sess.Context)
}

func TestAssistant_HelpKeepsState(t *testing.T) {
	a := sahaj.New()
	ctx := context.Background()

	_, err := a.Process(ctx, "s1", "start filing")
	require.NoError(t, err)

	reply, err := a.Process(ctx, "s1", "help")
	require.NoError(t, err)
	assert.Equal(t, domain.StateCheckAadhaarLink, reply.State)
}

func TestAssistant_SessionsAreIndependent(t *testing.T) {
	a := sahaj.New()
	ctx := context.Background()

	_, err := a.Process(ctx, "alice", "start filing")
	require.NoError(t, err)

	reply, err := a.Process(ctx, "bob", "hello there")
	require.NoError(t, err)
	assert.Equal(t, domain.StateStart, reply.State)

	ids, err := a.Sessions(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"alice", "bob"}, ids)
}

func TestAssistant_ResetSession(t *testing.T) {
	a := sahaj.New()
	ctx := context.Background()

	_, err := a.Process(ctx, "s1", "start filing")
	require.NoError(t, err)
	require.NoError(t, a.ResetSession(ctx, "s1"))

	_, err = a.Session(ctx, "s1")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestAssistant_ConcurrentTurnsSameSession(t *testing.T) {
	a := sahaj.New()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := a.Process(ctx, "s1", "help")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	// Help never moves the state, so whatever the interleaving the
	// session must still be at the entry state.
	sess, err := a.Session(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, domain.StateStart, sess.State)
}

func TestAssistant_MissingContentKeyFailsTurn(t *testing.T) {
	provider := content.NewRegistry() // empty: every key misses
	a := sahaj.New(sahaj.WithContentProvider(provider))
	ctx := context.Background()

	_, err := a.Process(ctx, "s1", "start filing")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnknownContentKey)

	// The failed turn must not have advanced the session.
	_, err = a.Session(ctx, "s1")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestAssistant_Metrics(t *testing.T) {
	m := observability.NewMetrics()
	a := sahaj.New(sahaj.WithMetrics(m))
	ctx := context.Background()

	_, err := a.Process(ctx, "s1", "start filing")
	require.NoError(t, err)
	_, err = a.Process(ctx, "s1", "gibberish input")
	require.NoError(t, err)
	_, err = a.Process(ctx, "s1", "restart")
	require.NoError(t, err)

	assert.Equal(t, float64(3), testutil.ToFloat64(m.Turns))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.Transitions.WithLabelValues("start", "check_aadhaar_link")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.Fallbacks.WithLabelValues("check_aadhaar_link")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.GlobalCommands.WithLabelValues("restart")))
}

func TestAssistant_FullSalariedJourney(t *testing.T) {
	a := sahaj.New()
	ctx := context.Background()

	messages := []string{
		"start filing", "yes", "individual", "salary", "below 50 lakh",
		"only salary", "proceed with ITR-1", "new regime", "ABCDE1234F",
		"resident", "no exempt income", "salary details", "yes have form-16",
		"calculate tax", "no refund due", "complete filing", "download ITR-V",
		"aadhaar OTP",
	}
	for _, msg := range messages {
		_, err := a.Process(ctx, "journey", msg)
		require.NoError(t, err, "message %q", msg)
	}

	reply, err := a.Process(ctx, "journey", "done")
	require.NoError(t, err)
	assert.Equal(t, domain.StateVerificationComplete, reply.State)
	assert.Contains(t, reply.Text, "ITR-1")

	sess, err := a.Session(ctx, "journey")
	require.NoError(t, err)
	assert.Equal(t, "ABCDE1234F", sess.UserData["pan"])
	assert.Equal(t, "aadhaar", sess.UserData["verify_method"])
}
