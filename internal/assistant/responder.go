// Package assistant implements the keyword-intent responder behind the
// dashboard chat widget and the in-memory conversation logs that use it.
package assistant

import (
	"strconv"
	"strings"

	"github.com/andresuchdata/fulfillment-bi/backend-go/internal/domain"
)

// Respond picks the first matching intent for text and renders its reply.
// Respond is total: unmatched input gets the default reply.
func Respond(text string, catalog []domain.KPI) domain.AssistantReply {
	intent := match(text)

	reply := domain.AssistantReply{
		Intent:    intent.Name,
		Content:   intent.Content,
		Metrics:   []domain.Metric{},
		FollowUps: append([]string{}, intent.FollowUps...),
	}

	if intent.Catalog != nil {
		reply.Metrics = catalogMetrics(catalog, *intent.Catalog)
	} else {
		reply.Metrics = append(reply.Metrics, intent.Metrics...)
	}

	return reply
}

// Classify returns the name of the intent text would be answered with.
func Classify(text string) string {
	return match(text).Name
}

func match(text string) Intent {
	lower := strings.ToLower(text)

	for _, pass := range [][]Intent{insightIntents, generalIntents} {
		for _, intent := range pass {
			for _, kw := range intent.Keywords {
				if strings.Contains(lower, kw) {
					return intent
				}
			}
		}
	}

	return defaultIntent
}

func catalogMetrics(catalog []domain.KPI, q CatalogQuery) []domain.Metric {
	metrics := []domain.Metric{}
	for _, k := range catalog {
		if q.Limit > 0 && len(metrics) == q.Limit {
			break
		}
		if q.Match != nil && !q.Match(k) {
			continue
		}
		metrics = append(metrics, domain.Metric{Label: k.Name, Value: FormatValue(k)})
	}
	return metrics
}

// FormatValue renders a catalog value with its unit, e.g. 12.5% or 8x.
func FormatValue(k domain.KPI) string {
	return strconv.FormatFloat(k.Value, 'f', -1, 64) + k.Unit
}

// ExpandQuickInsight maps a quick insight label to its canned query. Any other
// text is returned unchanged.
func ExpandQuickInsight(text string) string {
	for _, qi := range quickInsights {
		if strings.Contains(text, qi.label) {
			return qi.query
		}
	}
	return text
}
