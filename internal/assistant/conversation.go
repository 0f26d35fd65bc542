package assistant

import (
	"errors"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog/log"

	"github.com/andresuchdata/fulfillment-bi/backend-go/internal/domain"
)

var (
	ErrEmptyMessage       = errors.New("message is empty")
	ErrConversationClosed = errors.New("conversation is closed")
)

const (
	welcomeMessage      = "Welcome, Managing Director. I'm your AI assistant for quick insights and decision support. How can I help you today?"
	insightFollowUp     = "What specific information would you like about this issue?"
	emergencyActionMenu = "As Managing Director, here are your immediate action options:"

	// DefaultResponseDelay is how long a bot reply stays pending.
	DefaultResponseDelay = time.Second
)

var (
	insightFollowUps   = []string{"What's causing this issue?", "How can we fix this?", "What's the financial impact?", "Show me action plans"}
	emergencyFollowUps = []string{"📞 Call for urgent meeting", "📊 Generate 3-month report", "⏰ Schedule future meeting"}
)

// Timer is a scheduled callback that can be stopped before it fires.
type Timer interface {
	Stop() bool
}

// Clock schedules deferred replies. Tests swap in a manual clock.
type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) Timer
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

func (systemClock) AfterFunc(d time.Duration, f func()) Timer { return time.AfterFunc(d, f) }

// SystemClock is the wall clock.
var SystemClock Clock = systemClock{}

// Catalog supplies the KPI entries catalog-backed intents read from.
type Catalog interface {
	KPIs() []domain.KPI
}

type Options struct {
	Clock   Clock
	Delay   time.Duration
	Catalog Catalog
	// Context seeds the log with an insight briefing or the emergency menu.
	Context *domain.ConversationContext
}

// Conversation is an append-only chat log. Every accepted user message gets
// exactly one bot reply after the configured delay unless it is cancelled.
type Conversation struct {
	id      string
	clock   Clock
	delay   time.Duration
	catalog Catalog

	mu       sync.Mutex
	entropy  *ulid.MonotonicEntropy
	messages []domain.ChatMessage
	pending  map[*Pending]struct{}
	closed   bool
}

// Pending is a bot reply that has not been appended yet.
type Pending struct {
	conv  *Conversation
	timer Timer
}

func NewConversation(opts Options) *Conversation {
	if opts.Clock == nil {
		opts.Clock = SystemClock
	}
	if opts.Delay < 0 {
		opts.Delay = 0
	}

	now := opts.Clock.Now()
	c := &Conversation{
		id:      ulid.MustNew(ulid.Timestamp(now), ulid.DefaultEntropy()).String(),
		clock:   opts.Clock,
		delay:   opts.Delay,
		catalog: opts.Catalog,
		entropy: ulid.Monotonic(rand.New(rand.NewSource(now.UnixNano())), 0),
		pending: make(map[*Pending]struct{}),
	}
	c.seed(opts.Context)

	return c
}

func (c *Conversation) ID() string { return c.id }

func (c *Conversation) seed(ctx *domain.ConversationContext) {
	c.appendBot(welcomeMessage, nil, WelcomeFollowUps())

	if ctx == nil {
		return
	}

	switch ctx.Type {
	case domain.ContextTypeInsight:
		c.appendBot("I have detailed information about the "+ctx.Insight+" issue. Here's what I know:", nil, nil)
		for i, line := range ctx.Context {
			if i == 3 {
				break
			}
			c.appendBot(line, nil, nil)
		}
		c.appendBot(insightFollowUp, nil, insightFollowUps)
	case domain.ContextTypeEmergency:
		c.appendBot(emergencyActionMenu, nil, emergencyFollowUps)
	}
}

// Submit appends a user message and schedules the bot reply. Blank input is
// rejected with ErrEmptyMessage and leaves the log untouched.
func (c *Conversation) Submit(text string) (*Pending, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyMessage
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil, ErrConversationClosed
	}

	c.append(domain.SenderUser, text, nil, nil)

	p := &Pending{conv: c}
	c.pending[p] = struct{}{}
	p.timer = c.clock.AfterFunc(c.delay, func() { c.reply(p, text) })

	return p, nil
}

// SubmitQuickInsight submits the canned query behind a quick insight label.
func (c *Conversation) SubmitQuickInsight(label string) (*Pending, error) {
	return c.Submit(ExpandQuickInsight(label))
}

func (c *Conversation) reply(p *Pending, text string) {
	var catalog []domain.KPI
	if c.catalog != nil {
		catalog = c.catalog.KPIs()
	}
	r := Respond(text, catalog)

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.pending[p]; !ok {
		return
	}
	delete(c.pending, p)

	c.appendBot(r.Content, r.Metrics, r.FollowUps)
	log.Debug().
		Str("conversation", c.id).
		Str("intent", r.Intent).
		Int("pending", len(c.pending)).
		Msg("assistant reply appended")
}

// Cancel drops the reply if it has not been appended yet and reports whether it did.
func (p *Pending) Cancel() bool {
	c := p.conv
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.pending[p]; !ok {
		return false
	}
	delete(c.pending, p)
	p.timer.Stop()

	return true
}

// Close cancels every pending reply and rejects further submissions.
func (c *Conversation) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for p := range c.pending {
		p.timer.Stop()
		delete(c.pending, p)
	}
	c.closed = true
}

// Typing reports whether a bot reply is still pending.
func (c *Conversation) Typing() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.pending) > 0
}

// Messages returns a copy of the log.
func (c *Conversation) Messages() []domain.ChatMessage {
	c.mu.Lock()
	defer c.mu.Unlock()
	return cloneMessages(c.messages)
}

func (c *Conversation) Snapshot() domain.ConversationSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return domain.ConversationSnapshot{
		ID:       c.id,
		Messages: cloneMessages(c.messages),
		Typing:   len(c.pending) > 0,
	}
}

// cloneMessages copies the log down to each message's metrics and follow-ups.
func cloneMessages(messages []domain.ChatMessage) []domain.ChatMessage {
	out := make([]domain.ChatMessage, len(messages))
	for i, m := range messages {
		if m.Metrics != nil {
			m.Metrics = append([]domain.Metric(nil), m.Metrics...)
		}
		if m.FollowUps != nil {
			m.FollowUps = append([]string(nil), m.FollowUps...)
		}
		out[i] = m
	}
	return out
}

func (c *Conversation) appendBot(content string, metrics []domain.Metric, followUps []string) {
	c.append(domain.SenderBot, content, metrics, followUps)
}

// append must be called with c.mu held, or before c is shared.
func (c *Conversation) append(sender domain.Sender, content string, metrics []domain.Metric, followUps []string) {
	now := c.clock.Now()
	c.messages = append(c.messages, domain.ChatMessage{
		ID:        ulid.MustNew(ulid.Timestamp(now), c.entropy).String(),
		Sender:    sender,
		Content:   content,
		Timestamp: now,
		Metrics:   metrics,
		FollowUps: append([]string(nil), followUps...),
	})
}
