package app

import (
	"cafe-delights/internal/domain"
	"cafe-delights/internal/nav"
)

func (s *Shell) renderHome() {
	s.say("== Café Delights ==")
	if u := s.session.User(); u != nil {
		s.say("welcome back, %s", u.Name)
	} else {
		s.say("welcome! log in on the auth page to place orders")
	}
	s.say("categories:")
	for _, c := range domain.Categories() {
		s.say("  - %s", c)
	}
	if n := s.cart.ItemCount(); n > 0 {
		s.say("cart: %d item(s), $%.2f", n, s.cart.TotalPrice())
	}
}

func (s *Shell) execHome(cmd string, rest []string) {
	switch cmd {
	case "menu":
		s.nav.Go(nav.PageMenu)
	default:
		s.say("unknown command %q, try help", cmd)
	}
}
