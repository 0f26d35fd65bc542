package assistant

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andresuchdata/fulfillment-bi/backend-go/internal/domain"
)

type staticCatalog []domain.KPI

func (s staticCatalog) KPIs() []domain.KPI { return s }

func newTestConversation(clock Clock, ctx *domain.ConversationContext) *Conversation {
	return NewConversation(Options{
		Clock:   clock,
		Delay:   time.Second,
		Catalog: staticCatalog(testCatalog()),
		Context: ctx,
	})
}

func TestNewConversationSeedsWelcome(t *testing.T) {
	c := newTestConversation(newManualClock(), nil)

	msgs := c.Messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, domain.SenderBot, msgs[0].Sender)
	assert.Equal(t, welcomeMessage, msgs[0].Content)
	assert.Equal(t, []string{"📊 Market Analysis", "💬 Customer Sentiments", "💰 Financial Performance", "🚚 Inventory & Logistics Health"}, msgs[0].FollowUps)
	assert.NotEmpty(t, c.ID())
	assert.False(t, c.Typing())
}

func TestInsightContextSeed(t *testing.T) {
	c := newTestConversation(newManualClock(), &domain.ConversationContext{
		Type:    domain.ContextTypeInsight,
		Insight: "overselling",
		Context: []string{"one", "two", "three", "four"},
	})

	msgs := c.Messages()
	require.Len(t, msgs, 6)
	assert.Equal(t, "I have detailed information about the overselling issue. Here's what I know:", msgs[1].Content)
	assert.Equal(t, "one", msgs[2].Content)
	assert.Equal(t, "three", msgs[4].Content)
	assert.Equal(t, insightFollowUp, msgs[5].Content)
	assert.Equal(t, insightFollowUps, msgs[5].FollowUps)
}

func TestEmergencySeed(t *testing.T) {
	c := newTestConversation(newManualClock(), &domain.ConversationContext{Type: domain.ContextTypeEmergency})

	msgs := c.Messages()
	require.Len(t, msgs, 2)
	assert.Equal(t, emergencyActionMenu, msgs[1].Content)
	assert.Equal(t, []string{"📞 Call for urgent meeting", "📊 Generate 3-month report", "⏰ Schedule future meeting"}, msgs[1].FollowUps)
}

func TestSubmitRejectsBlankInput(t *testing.T) {
	clock := newManualClock()
	c := newTestConversation(clock, nil)

	for _, in := range []string{"", "   ", "\n\t"} {
		p, err := c.Submit(in)
		assert.ErrorIs(t, err, ErrEmptyMessage)
		assert.Nil(t, p)
	}

	clock.Advance(time.Minute)
	assert.Len(t, c.Messages(), 1)
	assert.False(t, c.Typing())
}

func TestSubmitAppendsReplyAfterDelay(t *testing.T) {
	clock := newManualClock()
	c := newTestConversation(clock, nil)

	_, err := c.Submit("Tell me about overselling")
	require.NoError(t, err)

	msgs := c.Messages()
	require.Len(t, msgs, 2)
	assert.Equal(t, domain.SenderUser, msgs[1].Sender)
	assert.True(t, c.Typing())

	clock.Advance(999 * time.Millisecond)
	assert.Len(t, c.Messages(), 2)

	clock.Advance(time.Millisecond)
	msgs = c.Messages()
	require.Len(t, msgs, 3)
	assert.Equal(t, domain.SenderBot, msgs[2].Sender)
	assert.Equal(t, "Here are the details about the overselling issue:", msgs[2].Content)
	assert.Len(t, msgs[2].Metrics, 3)
	assert.False(t, c.Typing())
}

func TestRepliesWithEqualDelayFollowSubmissionOrder(t *testing.T) {
	clock := newManualClock()
	c := newTestConversation(clock, nil)

	_, err := c.Submit("oversold")
	require.NoError(t, err)
	clock.Advance(400 * time.Millisecond)
	_, err = c.Submit("stockout")
	require.NoError(t, err)

	clock.Advance(600 * time.Millisecond)
	assert.True(t, c.Typing(), "second reply is still pending")

	clock.Advance(400 * time.Millisecond)
	assert.False(t, c.Typing())

	msgs := c.Messages()
	require.Len(t, msgs, 5)
	assert.Equal(t, "oversold", msgs[1].Content)
	assert.Equal(t, "stockout", msgs[2].Content)
	assert.Equal(t, "Here are the details about the overselling issue:", msgs[3].Content)
	assert.Equal(t, "Here are the stockout cancellation details:", msgs[4].Content)
}

func TestRepliesAppendInCompletionOrder(t *testing.T) {
	clock := newManualClock()
	c := newTestConversation(clock, nil)

	first, err := c.Submit("oversold")
	require.NoError(t, err)
	second, err := c.Submit("stockout")
	require.NoError(t, err)

	clock.Fire(second.timer)
	assert.True(t, c.Typing())
	clock.Fire(first.timer)
	assert.False(t, c.Typing())

	msgs := c.Messages()
	require.Len(t, msgs, 5)
	assert.Equal(t, "Here are the stockout cancellation details:", msgs[3].Content)
	assert.Equal(t, "Here are the details about the overselling issue:", msgs[4].Content)

	clock.Advance(time.Minute)
	assert.Len(t, c.Messages(), 5)
}

func TestPendingCancel(t *testing.T) {
	clock := newManualClock()
	c := newTestConversation(clock, nil)

	p, err := c.Submit("sync lag")
	require.NoError(t, err)

	assert.True(t, p.Cancel())
	assert.False(t, p.Cancel())
	assert.False(t, c.Typing())

	clock.Advance(time.Minute)
	assert.Len(t, c.Messages(), 2)
}

func TestCancelAfterReplyIsNoop(t *testing.T) {
	clock := newManualClock()
	c := newTestConversation(clock, nil)

	p, err := c.Submit("sync lag")
	require.NoError(t, err)
	clock.Advance(time.Second)

	assert.False(t, p.Cancel())
	assert.Len(t, c.Messages(), 3)
}

func TestCloseCancelsPendingReplies(t *testing.T) {
	clock := newManualClock()
	c := newTestConversation(clock, nil)

	_, err := c.Submit("hub")
	require.NoError(t, err)
	_, err = c.Submit("delay")
	require.NoError(t, err)

	c.Close()
	clock.Advance(time.Minute)

	assert.Len(t, c.Messages(), 3)
	assert.False(t, c.Typing())

	_, err = c.Submit("more")
	assert.ErrorIs(t, err, ErrConversationClosed)
}

func TestSubmitQuickInsightUsesCatalog(t *testing.T) {
	clock := newManualClock()
	c := newTestConversation(clock, nil)

	_, err := c.SubmitQuickInsight("💰 Financial Performance")
	require.NoError(t, err)
	clock.Advance(time.Second)

	msgs := c.Messages()
	require.Len(t, msgs, 3)
	assert.Equal(t, "How are we performing financially?", msgs[1].Content)
	assert.Equal(t, "Here's a comprehensive view of our financial performance:", msgs[2].Content)
	assert.Len(t, msgs[2].Metrics, 4)
}

func TestMessageIDsAreUniqueAndOrdered(t *testing.T) {
	clock := newManualClock()
	c := newTestConversation(clock, &domain.ConversationContext{Type: domain.ContextTypeEmergency})

	for _, q := range []string{"a", "b", "c"} {
		_, err := c.Submit(q)
		require.NoError(t, err)
	}
	clock.Advance(time.Second)

	seen := map[string]bool{}
	prev := ""
	for _, msg := range c.Messages() {
		assert.False(t, seen[msg.ID], msg.ID)
		seen[msg.ID] = true
		assert.Greater(t, msg.ID, prev)
		prev = msg.ID
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	c := newTestConversation(newManualClock(), nil)

	snap := c.Snapshot()
	snap.Messages[0].Content = "changed"

	assert.Equal(t, c.ID(), snap.ID)
	assert.Equal(t, welcomeMessage, c.Messages()[0].Content)
}

func TestSnapshotDoesNotShareMetrics(t *testing.T) {
	clock := newManualClock()
	c := newTestConversation(clock, nil)

	_, err := c.Submit("oversold")
	require.NoError(t, err)
	clock.Advance(time.Second)

	snap := c.Snapshot()
	require.Len(t, snap.Messages, 3)
	require.NotEmpty(t, snap.Messages[2].Metrics)
	snap.Messages[2].Metrics[0].Label = "changed"
	snap.Messages[2].FollowUps = append(snap.Messages[2].FollowUps[:0], "changed")

	msgs := c.Messages()
	assert.NotEqual(t, "changed", msgs[2].Metrics[0].Label)
	msgs[2].Metrics[0].Label = "changed again"
	assert.NotEqual(t, "changed again", c.Messages()[2].Metrics[0].Label)

	welcome := c.Messages()[0]
	welcome.FollowUps[0] = "changed"
	assert.Equal(t, "📊 Market Analysis", c.Messages()[0].FollowUps[0])
}
