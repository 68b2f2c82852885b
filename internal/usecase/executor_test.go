package usecase_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopping-list-bot/internal/domain"
	"shopping-list-bot/internal/infra/memory"
	"shopping-list-bot/internal/usecase"
)

func newExecutor() (*usecase.Executor, *memory.ListStore) {
	store := memory.NewListStore()
	return usecase.NewExecutor(store), store
}

func add(item string) usecase.Command {
	return usecase.Command{Kind: usecase.CmdAddItem, Item: item}
}

func bought(idx int) usecase.Command {
	return usecase.Command{Kind: usecase.CmdMarkBought, Position: idx}
}

func TestExecutor_AddAppendsToEnd(t *testing.T) {
	ex, store := newExecutor()
	ex.Execute("g1", add("milk"))

	res := ex.Execute("g1", add("eggs"))

	assert.Equal(t, usecase.OutcomeAdded, res.Outcome)
	assert.Equal(t, domain.List{"milk", "eggs"}, res.List)
	assert.Equal(t, domain.List{"milk", "eggs"}, store.Get("g1"))
}

func TestExecutor_AddKeepsDuplicates(t *testing.T) {
	ex, _ := newExecutor()
	ex.Execute("g1", add("milk"))

	res := ex.Execute("g1", add("milk"))

	assert.Equal(t, domain.List{"milk", "milk"}, res.List)
}

func TestExecutor_AddEmptyItemIsNoop(t *testing.T) {
	ex, store := newExecutor()
	ex.Execute("g1", add("milk"))

	res := ex.Execute("g1", add(""))

	assert.Equal(t, usecase.OutcomeAdded, res.Outcome)
	assert.Equal(t, domain.List{"milk"}, res.List)
	assert.Equal(t, domain.List{"milk"}, store.Get("g1"))
}

func TestExecutor_NewListResets(t *testing.T) {
	ex, store := newExecutor()
	ex.Execute("g1", add("milk"))

	for i := 0; i < 2; i++ {
		res := ex.Execute("g1", usecase.Command{Kind: usecase.CmdNewList})
		assert.Equal(t, usecase.OutcomeCreated, res.Outcome)
		assert.Empty(t, res.List)
		assert.Empty(t, store.Get("g1"))
	}
}

func TestExecutor_BoughtRemovesPosition(t *testing.T) {
	ex, _ := newExecutor()
	for _, item := range []string{"milk", "eggs", "bread"} {
		ex.Execute("g1", add(item))
	}

	res := ex.Execute("g1", usecase.ParseCommand("!bought 2"))

	assert.Equal(t, usecase.OutcomeBought, res.Outcome)
	assert.Equal(t, domain.List{"milk", "bread"}, res.List)
}

func TestExecutor_BoughtOutOfRangeIsNoop(t *testing.T) {
	for _, idx := range []int{-5, -1, 3, 100} {
		t.Run(fmt.Sprint(idx), func(t *testing.T) {
			ex, store := newExecutor()
			for _, item := range []string{"milk", "eggs", "bread"} {
				ex.Execute("g1", add(item))
			}

			res := ex.Execute("g1", bought(idx))

			assert.Equal(t, usecase.OutcomeBought, res.Outcome)
			assert.Equal(t, domain.List{"milk", "eggs", "bread"}, res.List)
			assert.Equal(t, domain.List{"milk", "eggs", "bread"}, store.Get("g1"))
		})
	}
}

func TestExecutor_BoughtOnUnseenTenant(t *testing.T) {
	ex, _ := newExecutor()

	res := ex.Execute("g1", bought(0))

	assert.Equal(t, usecase.OutcomeBought, res.Outcome)
	assert.Empty(t, res.List)
}

func TestExecutor_AddThenBoughtRoundTrip(t *testing.T) {
	ex, store := newExecutor()
	ex.Execute("g1", add("milk"))

	res := ex.Execute("g1", bought(0))

	assert.Empty(t, res.List)
	assert.Empty(t, store.Get("g1"))
}

func TestExecutor_HelpAndUnknownDoNotTouchStore(t *testing.T) {
	ex, store := newExecutor()

	assert.Equal(t, usecase.Result{Outcome: usecase.OutcomeHelp}, ex.Execute("g1", usecase.Command{Kind: usecase.CmdHelp}))
	assert.Equal(t, usecase.Result{Outcome: usecase.OutcomeUnknown}, ex.Execute("g1", usecase.Command{Kind: usecase.CmdUnrecognized}))
	assert.Equal(t, 0, store.Tenants())
}

func TestExecutor_SnapshotDoesNotAliasStore(t *testing.T) {
	ex, store := newExecutor()

	res := ex.Execute("g1", add("milk"))
	res.List[0] = "changed"

	assert.Equal(t, domain.List{"milk"}, store.Get("g1"))
}

func TestExecutor_TenantIsolation(t *testing.T) {
	ex, store := newExecutor()
	ex.Execute("g2", add("tea"))

	ex.Execute("g1", add("milk"))
	ex.Execute("g1", bought(0))
	ex.Execute("g1", usecase.Command{Kind: usecase.CmdNewList})

	assert.Equal(t, domain.List{"tea"}, store.Get("g2"))
}

func TestExecutor_ConcurrentAddsAreNotLost(t *testing.T) {
	ex, store := newExecutor()
	const n = 100

	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			ex.Execute("g1", add(fmt.Sprintf("item-%d", i)))
		}(i)
	}
	wg.Wait()

	got := store.Get("g1")
	require.Len(t, got, n)
	seen := make(map[string]bool, n)
	for _, item := range got {
		seen[item] = true
	}
	for i := 0; i < n; i++ {
		assert.True(t, seen[fmt.Sprintf("item-%d", i)], "missing item-%d", i)
	}
}
