package app

import (
	"strconv"
	"strings"

	"cafe-delights/internal/domain"
	"cafe-delights/internal/nav"
)

// pickupSentinel is the delivery address used when the user has none stored.
const pickupSentinel = "Pickup at store"

func (s *Shell) renderCart() {
	s.say("== Cart ==")
	lines := s.cart.Lines()
	if len(lines) == 0 {
		s.say("your cart is empty")
		return
	}
	for _, l := range lines {
		s.say("%-10s %-24s %2d x $%.2f = $%.2f", l.ProductID, l.Name, l.Quantity, l.Price, l.Price*float64(l.Quantity))
	}
	s.say("total: %d item(s), $%.2f", s.cart.ItemCount(), s.cart.TotalPrice())
}

func (s *Shell) execCart(cmd string, rest []string) {
	switch cmd {
	case "qty":
		if len(rest) < 2 {
			s.say("usage: qty <id> <n>")
			return
		}
		n, err := strconv.Atoi(rest[1])
		if err != nil {
			s.say("quantity must be a number")
			return
		}
		s.cart.SetQuantity(rest[0], n)
	case "remove":
		if len(rest) == 0 {
			s.say("usage: remove <id>")
			return
		}
		s.cart.Remove(rest[0])
	case "clear":
		s.cart.Clear()
	case "checkout":
		s.checkout(strings.Join(rest, " "))
	default:
		s.say("unknown command %q, try help", cmd)
	}
}

// checkout turns the basket into an order. The cart is only cleared once the
// backend accepted the order; any failure leaves it untouched so the user
// can retry.
func (s *Shell) checkout(instructions string) {
	if s.checkoutBusy {
		s.say("checkout already in progress")
		return
	}
	user := s.session.User()
	if user == nil {
		s.say("please log in before checking out")
		s.nav.Go(nav.PageAuth)
		return
	}
	if s.cart.Len() == 0 {
		s.say("your cart is empty")
		return
	}

	addr := user.Address
	if addr == "" {
		addr = pickupSentinel
	}
	req := domain.CreateOrderRequest{
		Items:        s.cart.Snapshot(),
		DeliveryAddr: addr,
		Instructions: instructions,
	}

	s.checkoutBusy = true
	order, err := s.client.CreateOrder(s.nav.Context(), req)
	s.checkoutBusy = false
	if err != nil {
		s.fail("order_create_failed", err)
		return
	}

	s.lg.Info("order_created", map[string]any{"order_id": order.ID, "total": order.TotalAmount})
	s.say("order placed! total $%.2f, status %s", order.TotalAmount, order.Status)
	s.cart.Clear()
	s.nav.Go(nav.PageOrders)
}
