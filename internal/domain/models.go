package domain

import "time"

// KPI is one entry of the KPI metadata catalog.
type KPI struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Unit        string    `json:"unit"`
	Section     string    `json:"section"`
	Description string    `json:"description"`
	Value       float64   `json:"value"`
	Trend       string    `json:"trend,omitempty"`
	Target      *float64  `json:"target,omitempty"`
	Priority    string    `json:"priority,omitempty"`
	Benchmark   string    `json:"benchmark,omitempty"`
	History     []float64 `json:"history,omitempty"`
}

// Catalog sections the assistant filters on.
const (
	SectionFinancialHealth       = "Financial Health"
	SectionStrategicPerformance  = "Strategic Performance"
	SectionSalesMarketInsights   = "Sales, Revenue & Market Insights"
	SectionOperationalEfficiency = "Operational Efficiency"
)

type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

// Metric is a label/value pair attached to a bot reply. Value may be empty.
type Metric struct {
	Label string `json:"label"`
	Value string `json:"value,omitempty"`
}

// ChatMessage is one entry of a conversation log. Messages are never edited once appended.
type ChatMessage struct {
	ID        string    `json:"id"`
	Sender    Sender    `json:"sender"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
	Metrics   []Metric  `json:"metrics,omitempty"`
	FollowUps []string  `json:"follow_ups,omitempty"`
}

// AssistantReply is the responder's output for one user message.
type AssistantReply struct {
	Intent    string   `json:"intent"`
	Content   string   `json:"content"`
	Metrics   []Metric `json:"metrics"`
	FollowUps []string `json:"follow_ups"`
}

// ConversationContext seeds a new conversation, e.g. from an executive summary card.
type ConversationContext struct {
	Type    string   `json:"type"`
	Insight string   `json:"insight,omitempty"`
	Context []string `json:"context,omitempty"`
}

const (
	ContextTypeInsight   = "insight"
	ContextTypeEmergency = "emergency"
)

// ConversationSnapshot is a point-in-time copy of a conversation log.
type ConversationSnapshot struct {
	ID       string        `json:"id"`
	Messages []ChatMessage `json:"messages"`
	Typing   bool          `json:"typing"`
}
