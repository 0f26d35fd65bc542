package assistant

import "github.com/andresuchdata/fulfillment-bi/backend-go/internal/domain"

// CatalogQuery selects reply metrics from the KPI catalog instead of static values.
type CatalogQuery struct {
	Match func(domain.KPI) bool
	// Limit caps the number of matches; zero means no cap.
	Limit int
}

// Intent is one keyword rule. The first intent with a keyword contained in the
// lower-cased input wins.
type Intent struct {
	Name      string
	Keywords  []string
	Content   string
	Metrics   []domain.Metric
	Catalog   *CatalogQuery
	FollowUps []string
}

const DefaultIntent = "default"

func m(label, value string) domain.Metric { return domain.Metric{Label: label, Value: value} }

func inSections(sections ...string) func(domain.KPI) bool {
	return func(k domain.KPI) bool {
		for _, s := range sections {
			if k.Section == s {
				return true
			}
		}
		return false
	}
}

func anyKPI(domain.KPI) bool { return true }

// insightIntents answer follow-ups raised from executive summary cards and the
// emergency action menu. They are checked before generalIntents.
var insightIntents = []Intent{
	{
		Name:     "urgent-meeting",
		Keywords: []string{"call for urgent meeting", "urgent meeting"},
		Content:  "🚨 URGENT MEETING INITIATED - I've sent immediate notifications to all department heads and key stakeholders. Meeting scheduled for the next available slot.",
		Metrics: []domain.Metric{
			m("Notifications Sent", "12"),
			m("Meeting Status", "Scheduled"),
		},
		FollowUps: []string{"📋 Prepare meeting agenda", "📊 Get latest metrics", "👥 Add specific attendees"},
	},
	{
		Name:     "three-month-report",
		Keywords: []string{"generate 3-month report", "3-month report"},
		Content:  "📊 3-MONTH REPORT GENERATION - I'm compiling comprehensive data including financial impact, trend analysis, and predictive insights.",
		Metrics: []domain.Metric{
			m("Report Sections", "8"),
			m("Data Points", "2,450"),
			m("Generation Time", "3 mins"),
		},
		FollowUps: []string{"📈 Add executive summary", "🎯 Focus on specific metrics", "📤 Send to stakeholders"},
	},
	{
		Name:     "future-meeting",
		Keywords: []string{"schedule future meeting", "future meeting"},
		Content:  "⏰ FUTURE MEETING SCHEDULED - Strategic planning session has been scheduled for next week to address long-term solutions.",
		Metrics: []domain.Metric{
			m("Scheduled Date", "Next Week"),
			m("Duration", "2 hours"),
			m("Attendees", "8"),
		},
		FollowUps: []string{"📋 Prepare strategic agenda", "📊 Include trend analysis", "🎯 Set clear objectives"},
	},
	{
		Name:     "overselling",
		Keywords: []string{"overselling", "oversold"},
		Content:  "Here are the details about the overselling issue:",
		Metrics: []domain.Metric{
			m("Oversold Orders", "127"),
			m("Refund Amount", "₹3.2L"),
			m("Sync Delay", "18 mins"),
		},
		FollowUps: []string{"What's causing the overselling?", "How can we prevent this?", "What's the financial impact?"},
	},
	{
		Name:     "stockout",
		Keywords: []string{"stockout", "stock out"},
		Content:  "Here are the stockout cancellation details:",
		Metrics: []domain.Metric{
			m("Cancellations", "52 orders"),
			m("Revenue Loss", "₹1.8L"),
			m("Bangalore Impact", "Highest"),
		},
		FollowUps: []string{"Why are stockouts increasing?", "How can we improve inventory?", "What's the root cause?"},
	},
	{
		Name:     "support-tickets",
		Keywords: []string{"ticket", "support"},
		Content:  "Here are the support ticket details:",
		Metrics: []domain.Metric{
			m("Tickets Raised", "78"),
			m("Resolution Time", "4.3 hrs"),
			m("Customer Impact", "High"),
		},
		FollowUps: []string{"What's causing the ticket spike?", "How can we reduce tickets?", "What's the customer impact?"},
	},
	{
		Name:     "sync-lag",
		Keywords: []string{"sync", "lag"},
		Content:  "Here are the inventory sync lag details:",
		Metrics: []domain.Metric{
			m("Current Lag", "21 mins"),
			m("SLA Breach", "6 mins"),
			m("Affected Zones", "Bangalore, Ahmedabad"),
		},
		FollowUps: []string{"What's causing the sync delays?", "How can we improve sync?", "What's the technical issue?"},
	},
	{
		Name:     "hub-mismatch",
		Keywords: []string{"hub", "assignment"},
		Content:  "Here are the hub assignment error details:",
		Metrics: []domain.Metric{
			m("Assignment Errors", "93 orders"),
			m("Delivery Delay", "9.6 hrs"),
			m("Revenue Impact", "₹2.1L"),
		},
		FollowUps: []string{"What's causing the assignment errors?", "How can we fix routing?", "What's the logistics impact?"},
	},
	{
		Name:     "delivery-delay",
		Keywords: []string{"delivery", "delay"},
		Content:  "Here are the delivery delay details:",
		Metrics: []domain.Metric{
			m("Avg Delay", "3.2 hrs"),
			m("Customer Impact", "18%"),
			m("Worst Routes", "Pune, Bangalore"),
		},
		FollowUps: []string{"What's causing the delays?", "How can we improve delivery?", "What's the customer impact?"},
	},
	{
		Name:     "logistics-cost",
		Keywords: []string{"logistics", "cost"},
		Content:  "Here are the logistics cost details:",
		Metrics: []domain.Metric{
			m("Additional Cost", "₹85K"),
			m("Rerouting Cost", "62%"),
			m("Eastern Region", "₹32K"),
		},
		FollowUps: []string{"What's causing the cost increase?", "How can we reduce logistics cost?", "What's the cost breakdown?"},
	},
	{
		Name:     "drop-off",
		Keywords: []string{"drop", "dropoff"},
		Content:  "Here are the order drop-off details:",
		Metrics: []domain.Metric{
			m("Drop-off Rate", "9.1%"),
			m("Affected Orders", "113"),
			m("Revenue Loss", "₹4.5L"),
		},
		FollowUps: []string{"What's causing the drop-offs?", "How can we reduce drop-offs?", "What's the customer behavior?"},
	},
}

var generalIntents = []Intent{
	{
		Name:     "financial",
		Keywords: []string{"financial", "finance", "profit", "revenue"},
		Content:  "Here's a comprehensive view of our financial performance:",
		Catalog: &CatalogQuery{
			Match: inSections(domain.SectionFinancialHealth, domain.SectionStrategicPerformance),
			Limit: 4,
		},
		FollowUps: []string{"Show me revenue breakdown", "What's our profit margin trend?", "Where can we improve financially?"},
	},
	{
		Name:     "critical",
		Keywords: []string{"critical", "issues", "problems", "alerts"},
		Content:  "Here are the critical issues requiring immediate attention:",
		Catalog: &CatalogQuery{
			Match: func(k domain.KPI) bool {
				return inSections(domain.SectionSalesMarketInsights, domain.SectionOperationalEfficiency)(k) || k.Priority == "high"
			},
			Limit: 3,
		},
		FollowUps: []string{"What's causing these issues?", "Show me action plans", "How can we resolve these quickly?"},
	},
	{
		Name:      "production",
		Keywords:  []string{"production", "efficiency", "manufacturing"},
		Content:   "Here's our current production efficiency status:",
		Catalog:   &CatalogQuery{Match: inSections(domain.SectionOperationalEfficiency), Limit: 3},
		FollowUps: []string{"Which plants are underperforming?", "Show me capacity utilization", "What's our quality score?"},
	},
	{
		Name:     "customer-sentiment",
		Keywords: []string{"customer", "sentiment", "saying"},
		Content:  "Here's what customers are saying about Amul:",
		Metrics: []domain.Metric{
			m("Customer Satisfaction", "4.6/5"),
			m("Net Promoter Score", "72"),
			m("Social Media Sentiment", "85% Positive"),
		},
		FollowUps: []string{"What are the main complaints?", "Show me positive feedback", "How can we improve satisfaction?"},
	},
	{
		Name:     "complaints",
		Keywords: []string{"complaint", "complaints"},
		Content:  "Here are the main customer complaints we're tracking:",
		Metrics: []domain.Metric{
			m("Delivery Delays", "32%"),
			m("Product Availability", "28%"),
			m("Packaging Issues", "15%"),
		},
		FollowUps: []string{"What's causing delivery delays?", "How can we reduce complaints?", "Show me complaint trends"},
	},
	{
		Name:     "positive-feedback",
		Keywords: []string{"positive", "feedback", "good"},
		Content:  "Here's the positive feedback from our customers:",
		Metrics: []domain.Metric{
			m("Product Quality", "94% Positive"),
			m("Taste & Freshness", "91% Positive"),
			m("Brand Trust", "89% Positive"),
		},
		FollowUps: []string{"What products get most praise?", "Show me customer testimonials", "How can we leverage this?"},
	},
	{
		Name:     "improve-satisfaction",
		Keywords: []string{"improve", "satisfaction", "better"},
		Content:  "Here are the key areas to improve customer satisfaction:",
		Metrics: []domain.Metric{
			{Label: "Faster Delivery"},
			{Label: "Better Communication"},
			{Label: "Product Variety"},
		},
		FollowUps: []string{"How to improve delivery plan?", "Show me communication strategies", "How can we measure improvement?"},
	},
	{
		Name:      "market",
		Keywords:  []string{"market", "competitive", "share"},
		Content:   "Here's our market position and competitive analysis:",
		Catalog:   &CatalogQuery{Match: inSections(domain.SectionSalesMarketInsights), Limit: 3},
		FollowUps: []string{"Who are our main competitors?", "Show me regional performance", "What's our growth potential?"},
	},
	{
		Name:     "supply-chain",
		Keywords: []string{"supply", "logistics", "chain"},
		Content:  "Here's our supply chain and logistics performance:",
		Metrics: []domain.Metric{
			m("On-Time Delivery", "94.2%"),
			m("Inventory Turnover", "8.5x"),
			m("Supplier Performance", "92.8%"),
		},
		FollowUps: []string{"Any cold chain issues?", "Show me delivery delays", "What's our supplier risk?"},
	},
	{
		Name:      "kpi-performance",
		Keywords:  []string{"kpi", "performance", "metrics"},
		Content:   "Here are the KPIs that need attention:",
		Catalog:   &CatalogQuery{Match: anyKPI, Limit: 3},
		FollowUps: []string{"What's causing these declines?", "Show me improvement plans", "Which KPIs are improving?"},
	},
	{
		Name:     "strategic-targets",
		Keywords: []string{"target", "strategic", "goals"},
		Content:  "Here's how we're tracking against our strategic targets:",
		Metrics: []domain.Metric{
			m("Revenue Target", "85%"),
			m("Market Share Goal", "92%"),
			m("Efficiency Target", "78%"),
		},
		FollowUps: []string{"What's our progress timeline?", "Show me target breakdown", "Which targets are at risk?"},
	},
	{
		Name:     "operational-health",
		Keywords: []string{"operational", "health", "overview"},
		Content:  "Here's our overall operational health summary:",
		Metrics: []domain.Metric{
			m("System Uptime", "99.2%"),
			m("Customer Satisfaction", "4.6/5"),
			m("Employee Productivity", "87%"),
		},
		FollowUps: []string{"Show me detailed metrics", "What areas need improvement?", "How do we compare to industry?"},
	},
}

var defaultIntent = Intent{
	Name:      DefaultIntent,
	Content:   "I can help you analyze various aspects of Amul's performance. Try asking about financial metrics, production efficiency, market analysis, or critical issues.",
	FollowUps: []string{"Show me financial performance", "What are our critical issues?", "Analyze market opportunities"},
}

// quickInsights maps the welcome menu labels to the queries they stand for.
var quickInsights = []struct {
	label string
	query string
}{
	{"📊 Market Analysis", "Show me market share and competitive analysis"},
	{"💬 Customer Sentiments", "What are customers saying about us?"},
	{"💰 Financial Performance", "How are we performing financially?"},
	{"🚚 Inventory & Logistics Health", "What's the current status of our inventory and logistics?"},
}

// WelcomeFollowUps are the quick insight labels offered by the welcome message.
func WelcomeFollowUps() []string {
	out := make([]string, len(quickInsights))
	for i, qi := range quickInsights {
		out[i] = qi.label
	}
	return out
}
