package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"shopping-list-bot/internal/domain"
)

func TestRenderList(t *testing.T) {
	assert.Equal(t, "", RenderList(domain.List{}))
	assert.Equal(t, "1) milk\n2) eggs\n3) milk\n", RenderList(domain.List{"milk", "eggs", "milk"}))
}

func TestRenderReply(t *testing.T) {
	list := domain.List{"milk"}

	created := RenderReply(Result{Outcome: OutcomeCreated, List: domain.List{}}, "anna")
	assert.Equal(t, ReactionCreated, created.Reaction)
	assert.Equal(t, "anna created a new shopping list!", created.Announcement)
	assert.Equal(t, "anna", created.Author)
	assert.Equal(t, ListTitle, created.Title)
	assert.Equal(t, "", created.Text)
	assert.Equal(t, ListFooter, created.Footer)

	added := RenderReply(Result{Outcome: OutcomeAdded, List: list}, "anna")
	assert.Equal(t, ReactionAdded, added.Reaction)
	assert.Empty(t, added.Announcement)
	assert.Empty(t, added.Author)
	assert.Equal(t, "1) milk\n", added.Text)

	bought := RenderReply(Result{Outcome: OutcomeBought, List: list}, "anna")
	assert.Equal(t, ReactionBought, bought.Reaction)
	assert.Equal(t, "1) milk\n", bought.Text)

	help := RenderReply(Result{Outcome: OutcomeHelp}, "anna")
	assert.Empty(t, help.Reaction)
	assert.Contains(t, help.Text, "!shop new")
	assert.Contains(t, help.Text, "-product name")
	assert.Contains(t, help.Text, "!bought <number>")

	assert.True(t, RenderReply(Result{Outcome: OutcomeUnknown}, "anna").IsEmpty())
}

func TestResultHasList(t *testing.T) {
	assert.True(t, Result{Outcome: OutcomeCreated}.HasList())
	assert.True(t, Result{Outcome: OutcomeBought}.HasList())
	assert.False(t, Result{Outcome: OutcomeHelp}.HasList())
	assert.False(t, Result{Outcome: OutcomeUnknown}.HasList())
}
