package app

import "cafe-delights/internal/domain"

// The admin page renders a denial instead of blocking navigation; anyone can
// land here, only admins see data.
func (s *Shell) renderAdmin() {
	s.say("== Admin ==")
	if !s.session.IsAdmin() {
		s.say("access denied: admin account required")
		return
	}
	stats, err := s.client.DashboardStats(s.nav.Context())
	if err != nil {
		s.fail("stats_fetch_failed", err)
		return
	}
	s.say("products: %d  orders: %d  customers: %d  pending: %d",
		stats.TotalProducts, stats.TotalOrders, stats.TotalUsers, stats.PendingOrders)
}

func (s *Shell) execAdmin(cmd string, rest []string) {
	if !s.session.IsAdmin() {
		s.say("access denied: admin account required")
		return
	}
	ctx := s.nav.Context()
	switch cmd {
	case "stats":
		s.renderAdmin()
	case "orders":
		s.listOrders()
	case "advance":
		if len(rest) == 0 {
			s.say("usage: advance <id>")
			return
		}
		o, err := s.client.Order(ctx, rest[0])
		if err != nil {
			s.fail("order_fetch_failed", err)
			return
		}
		next := o.Status.Next()
		if next == o.Status {
			s.say("order %s is already %s", o.ID, o.Status)
			return
		}
		if err := s.client.UpdateOrderStatus(ctx, o.ID, next); err != nil {
			s.fail("status_update_failed", err)
			return
		}
		s.say("order %s: %s -> %s", o.ID, o.Status, next)
	case "status":
		if len(rest) < 2 {
			s.say("usage: status <id> <pending|confirmed|preparing|ready|completed|cancelled>")
			return
		}
		status := domain.OrderStatus(rest[1])
		if !status.Valid() {
			s.say("unknown status %q", rest[1])
			return
		}
		if err := s.client.UpdateOrderStatus(ctx, rest[0], status); err != nil {
			s.fail("status_update_failed", err)
			return
		}
		s.say("order %s set to %s", rest[0], status)
	default:
		s.say("unknown command %q, try help", cmd)
	}
}
