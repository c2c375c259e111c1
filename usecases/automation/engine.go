package automation

import (
	"regexp"
	"strings"
	"sync"

	"github.com/replyflow/replyflow-backend/models"
)

var whitespaceRuns = regexp.MustCompile(`\s+`)

// rule is the matching-ready form of an automation: keywords are already
// split, trimmed and lower-cased, and the response template is resolved.
type rule struct {
	automationId string
	kind         models.AutomationKind
	keywords     []string
	template     string
}

// Match is the result of running an incoming message or comment against
// the loaded rule set.
type Match struct {
	AutomationId string
	Keyword      string
	ReplyText    string
	CommentReply string
}

// Engine matches incoming Instagram messages and comments against one
// user's automations. Rule loading atomically replaces the whole set, so
// matching never observes a partially updated configuration.
type Engine struct {
	mu    sync.RWMutex
	rules []rule
}

func NewEngine() *Engine {
	return &Engine{}
}

// LoadRules replaces the engine's rule set with the active automations in
// the given order. Inactive automations are discarded, trigger
// specifications are split on commas with each token trimmed and
// lower-cased, and empty tokens are dropped. An automation whose keyword
// list ends up empty is kept but can never match.
func (e *Engine) LoadRules(automations []models.Automation) {
	rules := make([]rule, 0, len(automations))
	for _, a := range automations {
		if !a.Active {
			continue
		}
		keywords := make([]string, 0)
		for _, token := range strings.Split(a.Triggers, ",") {
			token = strings.ToLower(strings.TrimSpace(token))
			if token != "" {
				keywords = append(keywords, token)
			}
		}
		template := ""
		if len(a.Responses) > 0 {
			template = a.Responses[0]
		}
		rules = append(rules, rule{
			automationId: a.Id,
			kind:         a.Kind,
			keywords:     keywords,
			template:     template,
		})
	}

	e.mu.Lock()
	e.rules = rules
	e.mu.Unlock()
}

// ProcessMessage matches a direct message against the loaded rules. The
// first rule in load order whose keywords contain a match wins, and within
// a rule the first keyword in configured order wins. Matching is a plain
// substring containment check on the lower-cased message, so "info"
// matches inside "information". Returns nil when nothing matches.
func (e *Engine) ProcessMessage(message, senderName string) *Match {
	return e.match(message, senderName, nil)
}

// ProcessComment matches a public comment the same way as ProcessMessage,
// but only rules of kind comment_reply or keyword_trigger participate. On
// a match the returned Match also carries the fixed public acknowledgment
// posted under the comment.
func (e *Engine) ProcessComment(comment, senderName string) *Match {
	match := e.match(comment, senderName, func(r rule) bool {
		return r.kind == models.AutomationCommentReply ||
			r.kind == models.AutomationKeywordTrigger
	})
	if match != nil {
		match.CommentReply = "Thanks for your interest, @" + senderName + "! 🎉 Check your DM!"
	}
	return match
}

func (e *Engine) match(input, senderName string, accept func(rule) bool) *Match {
	normalized := strings.ToLower(strings.TrimSpace(input))

	e.mu.RLock()
	rules := e.rules
	e.mu.RUnlock()

	for _, r := range rules {
		if accept != nil && !accept(r) {
			continue
		}
		for _, keyword := range r.keywords {
			if strings.Contains(normalized, keyword) || normalized == keyword {
				return &Match{
					AutomationId: r.automationId,
					Keyword:      keyword,
					ReplyText:    RenderTemplate(r.template, senderName),
				}
			}
		}
	}
	return nil
}

// RenderTemplate substitutes the {{name}} and {{username}} placeholders.
// {{name}} becomes the sender display name verbatim; {{username}} becomes
// the name lower-cased with whitespace runs collapsed to a single
// underscore.
func RenderTemplate(template, senderName string) string {
	username := whitespaceRuns.ReplaceAllString(strings.ToLower(senderName), "_")
	rendered := strings.ReplaceAll(template, "{{name}}", senderName)
	return strings.ReplaceAll(rendered, "{{username}}", username)
}
