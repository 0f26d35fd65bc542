package metrics

import (
	"strings"

	"github.com/andresuchdata/fulfillment-bi/backend-go/internal/domain"
)

type CarouselAlert struct {
	ID       int             `json:"id"`
	Title    string          `json:"title"`
	Subtitle string          `json:"subtitle"`
	Severity domain.Severity `json:"severity"`
}

type Hub struct {
	Name      string          `json:"name"`
	Status    string          `json:"status"`
	RiskLevel domain.Severity `json:"risk_level"`
	Issues    []string        `json:"issues"`
}

type InsightCard struct {
	ID          string          `json:"id"`
	Type        domain.Severity `json:"type"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Impact      string          `json:"impact"`
	Insight     string          `json:"insight"`
}

type ActionPlan struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// ExecutiveSummary is the static content of the executive summary tab.
type ExecutiveSummary struct {
	Alerts      []CarouselAlert `json:"alerts"`
	Hubs        []Hub           `json:"hubs"`
	Insights    []InsightCard   `json:"insights"`
	ActionPlans []ActionPlan    `json:"action_plans"`
}

func newHub(name string, level domain.Severity, issues ...string) Hub {
	return Hub{Name: name, Status: domain.RiskLabel(level), RiskLevel: level, Issues: issues}
}

// Summary returns a fresh copy of the executive summary content.
func Summary() ExecutiveSummary {
	return ExecutiveSummary{
		Alerts: []CarouselAlert{
			{ID: 1, Title: "Inventory Crisis Alert", Subtitle: "Multiple critical issues detected today", Severity: domain.SeverityCritical},
			{ID: 2, Title: "System Performance Warning", Subtitle: "Database sync delays affecting operations", Severity: domain.SeverityWarning},
			{ID: 3, Title: "Network Connectivity Issues", Subtitle: "Hub communication experiencing delays", Severity: domain.SeverityWarning},
			{ID: 4, Title: "Temperature Monitoring Alert", Subtitle: "Cold chain integrity at risk", Severity: domain.SeverityInfo},
			{ID: 5, Title: "Security Protocol Active", Subtitle: "Enhanced monitoring in place", Severity: domain.SeverityInfo},
		},
		Hubs: []Hub{
			newHub("Bangalore Hub", domain.SeverityCritical,
				"Stockout rate: 52 orders (↑35%)",
				"Hub assignment errors: 41% of total",
				"Order drop-off rate: 9.1% (113 orders)",
			),
			newHub("Hyderabad Hub", domain.SeverityWarning,
				"Oversold inventory: 38 orders",
				"Support ticket share: 25% of total",
				"Delivery delay: 3.2 hours avg.",
			),
			newHub("Ahmedabad Hub", domain.SeverityWarning,
				"Sync lag: 19 mins (↑5 mins)",
				"Oversold inventory: 22 orders",
				"Logistics cost increase: ₹28K",
			),
		},
		Insights: []InsightCard{
			{
				ID: "overselling", Type: domain.SeverityCritical, Insight: "overselling",
				Title:       "₹3.2L Lost to Overselling Today",
				Description: "127 orders placed during inventory lag window were oversold today, resulting in ₹3.2 lakh refunds. Average inventory sync delay: 18 mins.",
				Impact:      "Majority impact: Bangalore, Hyderabad hubs",
			},
			{
				ID: "stockouts", Type: domain.SeverityWarning, Insight: "stockouts",
				Title:       "Stockout Cancellations from Bangalore ↑35%",
				Description: "Order cancellations due to stockouts rose 35% from baseline. Bangalore hub saw the highest spike (52 orders).",
				Impact:      "Potential lost revenue: ₹1.8L",
			},
			{
				ID: "tickets", Type: domain.SeverityWarning, Insight: "tickets",
				Title:       "78 Support Tickets Raised Due to Unavailable Items",
				Description: "Customers flagged 78 orders as undelivered due to real-time inventory mismatch, a 2.2x increase from usual.",
				Impact:      "Customer satisfaction at risk",
			},
			{
				ID: "synclag", Type: domain.SeverityCritical, Insight: "synclag",
				Title:       "Inventory Sync Lag Crossing SLA",
				Description: "Today's average inventory sync lag is 21 minutes, exceeding acceptable SLA by 6 mins.",
				Impact:      "Delays primarily from: Bangalore & Ahmedabad zones",
			},
			{
				ID: "hubmismatch", Type: domain.SeverityWarning, Insight: "hubmismatch",
				Title:       "₹2.1L in Revenue Delays Due to Hub Mismatch",
				Description: "93 orders with hub assignment errors today. 41% came from Bangalore hub, causing cumulative delay of 9.6 hours and estimated ₹2.1L of delayed revenue.",
				Impact:      "Cash flow impact significant",
			},
			{
				ID: "deliverydelay", Type: domain.SeverityWarning, Insight: "deliverydelay",
				Title:       "Avg. Delivery Delay ↑3.2 Hours for Rerouted Orders",
				Description: "Rerouted orders are being delivered 3.2 hours later than baseline SLA. Highest delays: Pune (4.1 hrs) and Bangalore (3.8 hrs) routes.",
				Impact:      "Customer experience deteriorating",
			},
			{
				ID: "logisticscost", Type: domain.SeverityWarning, Insight: "logisticscost",
				Title:       "₹85K Additional Logistics Cost from Rerouting",
				Description: "Mismatch in hub inventory caused extra rerouting cost of ₹85K today. Repeat issue observed in Eastern region (₹32K).",
				Impact:      "Profit margins eroding",
			},
			{
				ID: "dropoff", Type: domain.SeverityCritical, Insight: "dropoff",
				Title:       "9.1% Drop-off Due to Delayed Fulfillment",
				Description: "Delayed fulfillment led to 113 order drop-offs today, a potential ₹4.5L revenue loss. Bangalore had highest impact.",
				Impact:      "Immediate intervention needed",
			},
		},
		ActionPlans: []ActionPlan{
			{Title: "Immediate Sync Interval Reduction", Description: "Reduce sync intervals from 15 mins to 5 mins for all high-velocity SKUs, especially in Bangalore & Hyderabad hubs."},
			{Title: "Implement Safety Stock Buffers", Description: "Add 15% safety stock buffer to all high-demand products in Bangalore hub to prevent stockouts during sync delays."},
			{Title: "Deploy Auto-Response System", Description: "Implement automated customer communication for affected orders with compensation offers to maintain satisfaction."},
			{Title: "Audit Hub Assignment Logic", Description: "Revise routing algorithms to prioritize inventory availability over proximity for high-value orders."},
		},
	}
}

var insightContext = map[string][]string{
	"overselling": {
		"• 127 orders oversold today due to inventory sync delays",
		"• Total refund amount: ₹3.2 lakhs",
		"• Average sync delay: 18 minutes",
	},
	"stockouts": {
		"• Stockout cancellations increased 35% from baseline",
		"• Bangalore hub most affected: 52 cancelled orders",
		"• Estimated revenue loss: ₹1.8 lakhs",
	},
	"tickets": {
		"• 78 customer support tickets raised today",
		"• 2.2x increase from usual daily average",
		"• Primary complaint: Items available but unavailable at checkout",
	},
	"synclag": {
		"• Current average sync lag: 21 minutes",
		"• Exceeding SLA by 6 minutes",
		"• Primary affected zones: Bangalore (24 min) & Ahmedabad (19 min)",
	},
	"hubmismatch": {
		"• 93 orders with hub assignment errors today",
		"• 41% originated from Bangalore hub",
		"• Estimated delayed revenue: ₹2.1 lakhs",
	},
	"deliverydelay": {
		"• Average delivery delay for rerouted orders: 3.2 hours",
		"• Highest delay routes: Pune (4.1 hrs) and Bangalore (3.8 hrs)",
		"• Customer satisfaction impact: 18% increase in negative feedback",
	},
	"logisticscost": {
		"• Extra rerouting cost today: ₹85,000",
		"• Primary cause: Mismatch in hub inventory",
		"• Most affected region: Eastern (₹32,000)",
	},
	"dropoff": {
		"• Current drop-off rate: 9.1%",
		"• Total affected orders: 113",
		"• Potential revenue loss: ₹4.5 lakhs",
	},
}

// InsightContext returns the chat context bullets for an insight card, or nil.
func InsightContext(insight string) []string {
	lines, ok := insightContext[insight]
	if !ok {
		return nil
	}
	return append([]string(nil), lines...)
}

type quickAnswer struct {
	keyword string
	answer  string
}

var quickAnswers = []quickAnswer{
	{"why", "The primary causes are: 1) Inventory system lag during peak hours, 2) Insufficient buffer stock in high-demand hubs, 3) Database query optimization issues, and 4) Outdated hub assignment logic that doesn't account for real-time inventory."},
	{"fix", "Immediate fixes include: 1) Reduce sync intervals to 5 minutes, 2) Implement 15% safety stock buffer, 3) Deploy auto-response system for affected customers, and 4) Revise routing algorithms to prioritize inventory availability."},
	{"impact", "The total financial impact is approximately ₹9.6 lakhs, including ₹3.2L in refunds, ₹1.8L in stockout cancellations, ₹2.1L in delayed revenue, ₹85K in additional logistics costs, and ₹4.5L in potential revenue loss from drop-offs."},
	{"bangalore", "Bangalore hub is experiencing the most severe issues with 52 stockout cancellations, 41% of all hub assignment errors, and the highest order drop-off rate (9.1%). This appears to be due to high order volume combined with insufficient inventory buffers."},
	{"sync", "Current sync lag is 21 minutes (6 minutes above SLA). The lag is primarily affecting Bangalore (24 min) and Ahmedabad (19 min) zones. Root cause appears to be database query optimization issues during peak load periods."},
	{"help", "You can ask about causes, recommended fixes, financial impact, specific hubs like Bangalore, or details about the inventory sync lag. You can also ask for specific action plans to address these issues."},
}

// QuickAnswer returns the canned executive answer for a question. The help text is the fallback.
func QuickAnswer(question string) string {
	q := strings.ToLower(question)
	for _, qa := range quickAnswers {
		if strings.Contains(q, qa.keyword) {
			return qa.answer
		}
	}
	return quickAnswers[len(quickAnswers)-1].answer
}

// NextAlert and PreviousAlert move the carousel index, wrapping at both ends.
func NextAlert(current, total int) int {
	if total <= 0 {
		return 0
	}
	return (current + 1) % total
}

func PreviousAlert(current, total int) int {
	if total <= 0 {
		return 0
	}
	return (current - 1 + total) % total
}
