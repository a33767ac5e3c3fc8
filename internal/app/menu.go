package app

import (
	"strconv"
	"strings"

	"cafe-delights/internal/domain"
)

func (s *Shell) renderMenu() {
	s.say("== Menu ==")
	s.say("list [category] to browse, search <text> to find something")
}

func (s *Shell) execMenu(cmd string, rest []string) {
	ctx := s.nav.Context()
	switch cmd {
	case "list":
		var category domain.Category
		if len(rest) > 0 {
			category = domain.Category(rest[0])
			if !category.Valid() {
				s.say("unknown category %q", rest[0])
				return
			}
		}
		products, err := s.client.Products(ctx, category)
		if err != nil {
			s.fail("products_fetch_failed", err)
			return
		}
		s.printProducts(products)
	case "search":
		if len(rest) == 0 {
			s.say("usage: search <text>")
			return
		}
		products, err := s.client.SearchProducts(ctx, strings.Join(rest, " "))
		if err != nil {
			s.fail("product_search_failed", err)
			return
		}
		s.printProducts(products)
	case "show":
		if len(rest) == 0 {
			s.say("usage: show <id>")
			return
		}
		s.showProduct(rest[0])
	case "add":
		if len(rest) == 0 {
			s.say("usage: add <id> [qty]")
			return
		}
		qty := 1
		if len(rest) > 1 {
			n, err := strconv.Atoi(rest[1])
			if err != nil || n < 1 {
				s.say("quantity must be a positive number")
				return
			}
			qty = n
		}
		p, err := s.client.Product(ctx, rest[0])
		if err != nil {
			s.fail("product_fetch_failed", err)
			return
		}
		s.cart.Add(p, qty)
		s.say("added %dx %s, cart total $%.2f", qty, p.Name, s.cart.TotalPrice())
	case "review":
		s.leaveReview(rest)
	default:
		s.say("unknown command %q, try help", cmd)
	}
}

func (s *Shell) showProduct(id string) {
	ctx := s.nav.Context()
	p, err := s.client.Product(ctx, id)
	if err != nil {
		s.fail("product_fetch_failed", err)
		return
	}
	s.say("%s — $%.2f (%s)", p.Name, p.Price, p.Category)
	s.say("  %s", p.Description)
	if len(p.Ingredients) > 0 {
		s.say("  ingredients: %s", strings.Join(p.Ingredients, ", "))
	}
	reviews, err := s.client.ProductReviews(ctx, id)
	if err != nil {
		s.fail("reviews_fetch_failed", err)
		return
	}
	for _, r := range reviews {
		s.say("  [%d/5] %s: %s", r.Rating, r.UserName, r.Comment)
	}
}

// leaveReview is login-required; the page checks session state itself, the
// navigator never blocked the way here.
func (s *Shell) leaveReview(rest []string) {
	if !s.session.IsAuthenticated() {
		s.say("log in to leave a review (go auth)")
		return
	}
	if len(rest) < 3 {
		s.say("usage: review <id> <1-5> <comment>")
		return
	}
	rating, err := strconv.Atoi(rest[1])
	if err != nil || rating < 1 || rating > 5 {
		s.say("rating must be 1..5")
		return
	}
	req := domain.CreateReviewRequest{
		ProductID: rest[0],
		Rating:    rating,
		Comment:   strings.Join(rest[2:], " "),
	}
	if _, err := s.client.CreateReview(s.nav.Context(), req); err != nil {
		s.fail("review_create_failed", err)
		return
	}
	s.say("thanks for the review!")
}

func (s *Shell) printProducts(products []domain.Product) {
	if len(products) == 0 {
		s.say("nothing found")
		return
	}
	for _, p := range products {
		s.say("%-10s %-24s $%6.2f  %s", p.ID, p.Name, p.Price, p.Category)
	}
}
