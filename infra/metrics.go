package infra

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	WebhookEventsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "replyflow",
		Name:      "webhook_events_total",
		Help:      "Incoming Instagram webhook events, by kind.",
	}, []string{"kind"})

	AutomationMatchesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "replyflow",
		Name:      "automation_matches_total",
		Help:      "Webhook events matched to an automation rule.",
	})

	MessagesSentTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "replyflow",
		Name:      "messages_sent_total",
		Help:      "Outbound Graph API sends, by result.",
	}, []string{"result"})
)
