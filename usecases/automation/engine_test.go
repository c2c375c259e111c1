package automation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/replyflow/replyflow-backend/models"
)

func TestEngineKeywordContainment(t *testing.T) {
	engine := NewEngine()
	engine.LoadRules([]models.Automation{
		{
			Id:        "auto-1",
			Kind:      models.AutomationDmReply,
			Triggers:  "price, info",
			Responses: []string{"Our pricing is on the site."},
			Active:    true,
		},
	})

	match := engine.ProcessMessage("I need more INFOrmation please", "Grace")
	assert.NotNil(t, match)
	assert.Equal(t, "auto-1", match.AutomationId)
	assert.Equal(t, "info", match.Keyword)
}

func TestEngineFirstMatchPrecedence(t *testing.T) {
	engine := NewEngine()
	engine.LoadRules([]models.Automation{
		{Id: "first", Kind: models.AutomationDmReply, Triggers: "hello, price", Responses: []string{"from first"}, Active: true},
		{Id: "second", Kind: models.AutomationDmReply, Triggers: "price", Responses: []string{"from second"}, Active: true},
	})

	match := engine.ProcessMessage("what is the price?", "Grace")
	assert.NotNil(t, match)
	assert.Equal(t, "first", match.AutomationId)
	assert.Equal(t, "price", match.Keyword)
	assert.Equal(t, "from first", match.ReplyText)
}

func TestEngineKeywordOrderWithinRule(t *testing.T) {
	engine := NewEngine()
	engine.LoadRules([]models.Automation{
		{Id: "auto-1", Kind: models.AutomationDmReply, Triggers: "ship, price", Responses: []string{"ok"}, Active: true},
	})

	// Both keywords are present, the first configured one wins.
	match := engine.ProcessMessage("price of shipping?", "Grace")
	assert.NotNil(t, match)
	assert.Equal(t, "ship", match.Keyword)
}

func TestEngineInactiveRulesNeverMatch(t *testing.T) {
	engine := NewEngine()
	engine.LoadRules([]models.Automation{
		{Id: "off", Kind: models.AutomationDmReply, Triggers: "price", Responses: []string{"ok"}, Active: false},
	})

	assert.Nil(t, engine.ProcessMessage("price?", "Grace"))
}

func TestEngineCommentKindRestriction(t *testing.T) {
	engine := NewEngine()
	engine.LoadRules([]models.Automation{
		{Id: "dm-only", Kind: models.AutomationDmReply, Triggers: "price", Responses: []string{"dm"}, Active: true},
		{Id: "comments", Kind: models.AutomationCommentReply, Triggers: "price", Responses: []string{"comment"}, Active: true},
	})

	match := engine.ProcessComment("price please", "Ada Lovelace")
	assert.NotNil(t, match)
	assert.Equal(t, "comments", match.AutomationId)
	assert.Equal(t, "Thanks for your interest, @Ada Lovelace! 🎉 Check your DM!", match.CommentReply)

	// The same rule does participate in DM matching.
	dmMatch := engine.ProcessMessage("price please", "Ada Lovelace")
	assert.NotNil(t, dmMatch)
	assert.Equal(t, "dm-only", dmMatch.AutomationId)
}

func TestEngineNoMatchReturnsNil(t *testing.T) {
	engine := NewEngine()
	engine.LoadRules([]models.Automation{
		{Id: "auto-1", Kind: models.AutomationDmReply, Triggers: "price", Responses: []string{"ok"}, Active: true},
		{Id: "auto-2", Kind: models.AutomationCommentReply, Triggers: "info", Responses: []string{"ok"}, Active: true},
	})

	assert.Nil(t, engine.ProcessMessage("good morning", "Grace"))
	assert.Nil(t, engine.ProcessComment("good morning", "Grace"))
}

func TestEngineEmptyKeywordsNeverMatch(t *testing.T) {
	engine := NewEngine()
	engine.LoadRules([]models.Automation{
		{Id: "auto-1", Kind: models.AutomationDmReply, Triggers: " , ,, ", Responses: []string{"ok"}, Active: true},
	})

	assert.Nil(t, engine.ProcessMessage("anything at all", "Grace"))
	assert.Nil(t, engine.ProcessMessage("", "Grace"))
}

func TestRenderTemplate(t *testing.T) {
	rendered := RenderTemplate("Hey {{name}}, aka {{username}}, hi {{name}}", "Ada   Lovelace")
	assert.Equal(t, "Hey Ada   Lovelace, aka ada_lovelace, hi Ada   Lovelace", rendered)

	// Substitution is idempotent once no placeholders remain.
	assert.Equal(t, rendered, RenderTemplate(rendered, "Ada   Lovelace"))
}

func TestEngineEndToEnd(t *testing.T) {
	engine := NewEngine()
	engine.LoadRules([]models.Automation{
		{
			Id:        "auto-1",
			Kind:      models.AutomationKeywordTrigger,
			Triggers:  "price,info",
			Responses: []string{"Hi {{name}}, it's {{username}}'s plan!"},
			Active:    true,
		},
	})

	match := engine.ProcessMessage("What's the PRICE?", "Ada Lovelace")
	assert.NotNil(t, match)
	assert.Equal(t, "Hi Ada Lovelace, it's ada_lovelace's plan!", match.ReplyText)
}

func TestEngineReloadReplacesRuleSet(t *testing.T) {
	engine := NewEngine()
	engine.LoadRules([]models.Automation{
		{Id: "old", Kind: models.AutomationDmReply, Triggers: "price", Responses: []string{"ok"}, Active: true},
	})
	assert.NotNil(t, engine.ProcessMessage("price?", "Grace"))

	engine.LoadRules([]models.Automation{
		{Id: "new", Kind: models.AutomationDmReply, Triggers: "shipping", Responses: []string{"ok"}, Active: true},
	})

	// The removed rule can never match again.
	assert.Nil(t, engine.ProcessMessage("price?", "Grace"))
	match := engine.ProcessMessage("shipping?", "Grace")
	assert.NotNil(t, match)
	assert.Equal(t, "new", match.AutomationId)
}
