// Package app composes the stores, the API client and the page components
// into the interactive storefront. All state mutations happen synchronously
// inside the command loop; backend calls are the only suspension points.
package app

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"cafe-delights/internal/api"
	"cafe-delights/internal/cart"
	"cafe-delights/internal/common/logger"
	"cafe-delights/internal/nav"
	"cafe-delights/internal/session"
)

// Shell is the composition root for the view layer. Both stores are
// long-lived objects injected here; nothing looks them up ambiently.
type Shell struct {
	lg      *logger.Logger
	client  *api.Client
	session *session.Store
	cart    *cart.Cart
	nav     *nav.Navigator
	out     io.Writer

	// checkoutBusy rejects a duplicate checkout submit while one request
	// is outstanding.
	checkoutBusy bool
}

func NewShell(lg *logger.Logger, client *api.Client, sess *session.Store, ct *cart.Cart, nv *nav.Navigator, out io.Writer) *Shell {
	return &Shell{lg: lg, client: client, session: sess, cart: ct, nav: nv, out: out}
}

// Run drives the render/read/dispatch loop until the input ends, the user
// quits or ctx is cancelled.
func (s *Shell) Run(ctx context.Context, in io.Reader) error {
	sc := bufio.NewScanner(in)
	s.render()
	for {
		fmt.Fprintf(s.out, "\n[%s] > ", s.nav.Current())
		if !sc.Scan() {
			return sc.Err()
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if quit := s.dispatch(line); quit {
			return nil
		}
		s.render()
	}
}

// dispatch runs one command. Global commands work on every page; anything
// else goes to the current page component.
func (s *Shell) dispatch(line string) (quit bool) {
	args := strings.Fields(line)
	cmd := args[0]
	rest := args[1:]

	switch cmd {
	case "quit", "exit":
		return true
	case "help":
		s.printHelp()
		return false
	case "go":
		if len(rest) == 0 {
			s.say("usage: go home|menu|cart|auth|orders|admin")
			return false
		}
		s.nav.Go(nav.ParsePage(rest[0]))
		return false
	case "logout":
		s.session.Logout()
		s.say("logged out")
		return false
	}

	switch s.nav.Current() {
	case nav.PageMenu:
		s.execMenu(cmd, rest)
	case nav.PageCart:
		s.execCart(cmd, rest)
	case nav.PageAuth:
		s.execAuth(cmd, rest)
	case nav.PageOrders:
		s.execOrders(cmd, rest)
	case nav.PageAdmin:
		s.execAdmin(cmd, rest)
	default:
		s.execHome(cmd, rest)
	}
	return false
}

func (s *Shell) render() {
	switch s.nav.Current() {
	case nav.PageMenu:
		s.renderMenu()
	case nav.PageCart:
		s.renderCart()
	case nav.PageAuth:
		s.renderAuth()
	case nav.PageOrders:
		s.renderOrders()
	case nav.PageAdmin:
		s.renderAdmin()
	default:
		s.renderHome()
	}
}

func (s *Shell) say(format string, a ...any) {
	fmt.Fprintf(s.out, format+"\n", a...)
}

// fail reports a backend failure to the user with the extracted reason and
// keeps the full error in the log. No call failure is fatal to the loop.
func (s *Shell) fail(action string, err error) {
	s.lg.Error(action, err, nil)
	s.say("error: %s", api.Reason(err))
}

func (s *Shell) printHelp() {
	s.say("global: go <page> | logout | help | quit")
	s.say("pages:  home menu cart auth orders admin")
	switch s.nav.Current() {
	case nav.PageMenu:
		s.say("menu:   list [category] | search <text> | show <id> | add <id> [qty] | review <id> <1-5> <comment>")
	case nav.PageCart:
		s.say("cart:   qty <id> <n> | remove <id> | clear | checkout [instructions]")
	case nav.PageAuth:
		s.say("auth:   login <email> <password> | register <name> <email> <password> [phone] [address]")
	case nav.PageOrders:
		s.say("orders: list | show <id>")
	case nav.PageAdmin:
		s.say("admin:  stats | orders | advance <id> | status <id> <status>")
	}
}
