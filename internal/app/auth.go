package app

import (
	"errors"
	"strings"

	"cafe-delights/internal/api"
	"cafe-delights/internal/domain"
	"cafe-delights/internal/nav"
	"cafe-delights/internal/session"
)

func (s *Shell) renderAuth() {
	s.say("== Account ==")
	if u := s.session.User(); u != nil {
		s.say("logged in as %s (%s)", u.Name, u.Role)
		return
	}
	s.say("login <email> <password>")
	s.say("register <name> <email> <password> [phone] [address]")
}

func (s *Shell) execAuth(cmd string, rest []string) {
	ctx := s.nav.Context()
	switch cmd {
	case "login":
		if len(rest) < 2 {
			s.say("usage: login <email> <password>")
			return
		}
		if err := s.session.Login(ctx, rest[0], rest[1]); err != nil {
			s.authFailed(err)
			return
		}
		s.say("welcome, %s!", s.session.User().Name)
		s.nav.Go(nav.PageHome)
	case "register":
		if len(rest) < 3 {
			s.say("usage: register <name> <email> <password> [phone] [address]")
			return
		}
		req := domain.RegisterRequest{Name: rest[0], Email: rest[1], Password: rest[2]}
		if len(rest) > 3 {
			req.Phone = rest[3]
		}
		if len(rest) > 4 {
			req.Address = strings.Join(rest[4:], " ")
		}
		if err := s.session.Register(ctx, req); err != nil {
			s.authFailed(err)
			return
		}
		s.say("account created, welcome %s!", s.session.User().Name)
		s.nav.Go(nav.PageHome)
	default:
		s.say("unknown command %q, try help", cmd)
	}
}

// authFailed surfaces the backend's reason inline on the form; there is no
// retry automation.
func (s *Shell) authFailed(err error) {
	if errors.Is(err, session.ErrAuthInFlight) {
		s.say("hold on, a sign-in is already in progress")
		return
	}
	s.say("sign-in failed: %s", api.Reason(err))
}
