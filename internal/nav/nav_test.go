package nav

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePageFallsBackToHome(t *testing.T) {
	cases := map[string]Page{
		"home":     PageHome,
		"menu":     PageMenu,
		"cart":     PageCart,
		"auth":     PageAuth,
		"orders":   PageOrders,
		"admin":    PageAdmin,
		"":         PageHome,
		"checkout": PageHome,
		"ADMIN":    PageHome,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParsePage(in), "input %q", in)
	}
}

func TestNavigatorStartsAtHome(t *testing.T) {
	n := New(context.Background())
	assert.Equal(t, PageHome, n.Current())
}

func TestGoSwitchesPage(t *testing.T) {
	n := New(context.Background())
	n.Go(PageMenu)
	assert.Equal(t, PageMenu, n.Current())

	// no guard at the navigator level: anonymous users can be routed to admin
	n.Go(PageAdmin)
	assert.Equal(t, PageAdmin, n.Current())
}

func TestGoCancelsPreviousPageContext(t *testing.T) {
	n := New(context.Background())
	n.Go(PageMenu)
	menuCtx := n.Context()
	require.NoError(t, menuCtx.Err())

	n.Go(PageCart)
	assert.ErrorIs(t, menuCtx.Err(), context.Canceled, "leaving a page must cancel its in-flight work")
	assert.NoError(t, n.Context().Err())
}

func TestNavigatorContextInheritsBase(t *testing.T) {
	base, cancel := context.WithCancel(context.Background())
	n := New(base)
	cancel()
	assert.ErrorIs(t, n.Context().Err(), context.Canceled)
}
