// Package nav decides which page is active. It is a flat in-memory state,
// not a router: no deep links, no history. Access control stays with the
// pages themselves; the navigator lets any transition happen.
package nav

import "context"

type Page string

const (
	PageHome   Page = "home"
	PageMenu   Page = "menu"
	PageCart   Page = "cart"
	PageAuth   Page = "auth"
	PageOrders Page = "orders"
	PageAdmin  Page = "admin"
)

// ParsePage maps free-form input to a page, falling back to home for
// anything unknown.
func ParsePage(s string) Page {
	switch Page(s) {
	case PageHome, PageMenu, PageCart, PageAuth, PageOrders, PageAdmin:
		return Page(s)
	default:
		return PageHome
	}
}

// Navigator tracks the current page and hands each page a context that is
// cancelled on the next navigation, so a fetch abandoned by leaving the
// page does not outlive it.
type Navigator struct {
	current Page
	base    context.Context
	ctx     context.Context
	cancel  context.CancelFunc
}

func New(base context.Context) *Navigator {
	ctx, cancel := context.WithCancel(base)
	return &Navigator{current: PageHome, base: base, ctx: ctx, cancel: cancel}
}

func (n *Navigator) Current() Page { return n.current }

// Context is scoped to the current page; it is cancelled by the next Go.
func (n *Navigator) Context() context.Context { return n.ctx }

// Go switches the current page and cancels the previous page's context.
// Unknown pages are impossible by construction; callers pass the enum.
func (n *Navigator) Go(p Page) {
	n.cancel()
	n.ctx, n.cancel = context.WithCancel(n.base)
	n.current = p
}
