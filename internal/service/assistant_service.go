package service

import (
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/andresuchdata/fulfillment-bi/backend-go/internal/assistant"
	"github.com/andresuchdata/fulfillment-bi/backend-go/internal/domain"
	"github.com/andresuchdata/fulfillment-bi/backend-go/internal/metrics"
)

var ErrConversationNotFound = errors.New("conversation not found")

type AssistantOptions struct {
	Delay time.Duration
	Clock assistant.Clock
	// MaxConversations caps live conversations; the oldest is closed to make room.
	MaxConversations int
}

type AssistantService struct {
	catalog assistant.Catalog
	opts    AssistantOptions

	mu            sync.Mutex
	conversations map[string]*assistant.Conversation
	order         []string
}

func NewAssistantService(catalog assistant.Catalog, opts AssistantOptions) *AssistantService {
	if opts.Clock == nil {
		opts.Clock = assistant.SystemClock
	}
	return &AssistantService{
		catalog:       catalog,
		opts:          opts,
		conversations: make(map[string]*assistant.Conversation),
	}
}

func (s *AssistantService) KPIs() []domain.KPI {
	if s.catalog == nil {
		return []domain.KPI{}
	}
	kpis := s.catalog.KPIs()
	if kpis == nil {
		return []domain.KPI{}
	}
	return kpis
}

// Respond answers one message synchronously. Quick insight labels are expanded first.
func (s *AssistantService) Respond(text string) domain.AssistantReply {
	return assistant.Respond(assistant.ExpandQuickInsight(text), s.KPIs())
}

// StartConversation opens a conversation, seeded from ctx when given. Insight
// contexts without bullets get the executive summary briefing for that insight.
func (s *AssistantService) StartConversation(ctx *domain.ConversationContext) domain.ConversationSnapshot {
	if ctx != nil && ctx.Type == domain.ContextTypeInsight && len(ctx.Context) == 0 {
		seeded := *ctx
		seeded.Context = metrics.InsightContext(ctx.Insight)
		ctx = &seeded
	}

	conv := assistant.NewConversation(assistant.Options{
		Clock:   s.opts.Clock,
		Delay:   s.opts.Delay,
		Catalog: s.catalog,
		Context: ctx,
	})

	s.mu.Lock()
	s.conversations[conv.ID()] = conv
	s.order = append(s.order, conv.ID())
	s.evictLocked()
	s.mu.Unlock()

	log.Debug().Str("conversation", conv.ID()).Msg("assistant: conversation started")

	return conv.Snapshot()
}

func (s *AssistantService) evictLocked() {
	if s.opts.MaxConversations <= 0 {
		return
	}
	for len(s.order) > s.opts.MaxConversations {
		oldest := s.order[0]
		s.order = s.order[1:]
		if conv, ok := s.conversations[oldest]; ok {
			conv.Close()
			delete(s.conversations, oldest)
			log.Info().Str("conversation", oldest).Msg("assistant: evicted oldest conversation")
		}
	}
}

func (s *AssistantService) lookup(id string) (*assistant.Conversation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	conv, ok := s.conversations[id]
	if !ok {
		return nil, ErrConversationNotFound
	}
	return conv, nil
}

func (s *AssistantService) Conversation(id string) (domain.ConversationSnapshot, error) {
	conv, err := s.lookup(id)
	if err != nil {
		return domain.ConversationSnapshot{}, err
	}
	return conv.Snapshot(), nil
}

// Send submits a typed message as-is. The reply is appended after the configured delay.
func (s *AssistantService) Send(id, text string) (domain.ConversationSnapshot, error) {
	return s.submit(id, func(conv *assistant.Conversation) (*assistant.Pending, error) {
		return conv.Submit(text)
	})
}

// SendQuickInsight submits the canned query behind a follow-up button label.
func (s *AssistantService) SendQuickInsight(id, label string) (domain.ConversationSnapshot, error) {
	return s.submit(id, func(conv *assistant.Conversation) (*assistant.Pending, error) {
		return conv.SubmitQuickInsight(label)
	})
}

func (s *AssistantService) submit(id string, send func(*assistant.Conversation) (*assistant.Pending, error)) (domain.ConversationSnapshot, error) {
	conv, err := s.lookup(id)
	if err != nil {
		return domain.ConversationSnapshot{}, err
	}
	if _, err := send(conv); err != nil {
		return domain.ConversationSnapshot{}, err
	}
	return conv.Snapshot(), nil
}

// EndConversation cancels pending replies and forgets the conversation.
func (s *AssistantService) EndConversation(id string) error {
	s.mu.Lock()
	conv, ok := s.conversations[id]
	if ok {
		delete(s.conversations, id)
		for i, v := range s.order {
			if v == id {
				s.order = append(s.order[:i], s.order[i+1:]...)
				break
			}
		}
	}
	s.mu.Unlock()

	if !ok {
		return ErrConversationNotFound
	}
	conv.Close()
	return nil
}

// Shutdown closes every conversation.
func (s *AssistantService) Shutdown() {
	s.mu.Lock()
	convs := s.conversations
	s.conversations = make(map[string]*assistant.Conversation)
	s.order = nil
	s.mu.Unlock()

	for _, conv := range convs {
		conv.Close()
	}
}
