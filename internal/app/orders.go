package app

import "cafe-delights/internal/domain"

func (s *Shell) renderOrders() {
	s.say("== Orders ==")
	if !s.session.IsAuthenticated() {
		s.say("log in to see your orders (go auth)")
		return
	}
	s.listOrders()
}

func (s *Shell) execOrders(cmd string, rest []string) {
	if !s.session.IsAuthenticated() {
		s.say("log in to see your orders (go auth)")
		return
	}
	switch cmd {
	case "list":
		s.listOrders()
	case "show":
		if len(rest) == 0 {
			s.say("usage: show <id>")
			return
		}
		o, err := s.client.Order(s.nav.Context(), rest[0])
		if err != nil {
			s.fail("order_fetch_failed", err)
			return
		}
		s.printOrder(o)
	default:
		s.say("unknown command %q, try help", cmd)
	}
}

func (s *Shell) listOrders() {
	orders, err := s.client.Orders(s.nav.Context())
	if err != nil {
		s.fail("orders_fetch_failed", err)
		return
	}
	if len(orders) == 0 {
		s.say("no orders yet")
		return
	}
	for _, o := range orders {
		s.say("%-10s %-10s $%7.2f  %s", o.ID, o.Status, o.TotalAmount, o.CreatedAt.Format("2006-01-02 15:04"))
	}
}

func (s *Shell) printOrder(o domain.Order) {
	s.say("order %s — %s, placed %s", o.ID, o.Status, o.CreatedAt.Format("2006-01-02 15:04"))
	for _, it := range o.Items {
		s.say("  %2d x %-24s @ $%.2f", it.Quantity, it.ProductName, it.Price)
	}
	s.say("  total $%.2f, deliver to: %s", o.TotalAmount, o.DeliveryAddr)
	if o.Instructions != "" {
		s.say("  note: %s", o.Instructions)
	}
}
