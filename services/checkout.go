package services

import (
	"context"
	"fmt"
	"log"
	"math"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"tip-collect-system/payments"
	"tip-collect-system/storage"
)

// CheckoutService turns a scanned token and an amount into a redirectable
// payment session. The processor is chosen at boot: Stripe when credentials
// are configured, the simulated redirect otherwise.
type CheckoutService struct {
	Store     *storage.Serialized
	Processor payments.Processor
	BaseURL   string
	Currency  string
	NoteLimit int
	Timeout   time.Duration
}

func NewCheckoutService(store *storage.Serialized, processor payments.Processor, baseURL, currency string, noteLimit int, timeout time.Duration) *CheckoutService {
	return &CheckoutService{
		Store:     store,
		Processor: processor,
		BaseURL:   baseURL,
		Currency:  currency,
		NoteLimit: noteLimit,
		Timeout:   timeout,
	}
}

// CreateCheckout opens a payment session for one tip.
func (s *CheckoutService) CreateCheckout(c *fiber.Ctx) error {
	var req struct {
		Token  string   `json:"token"`
		Amount *float64 `json:"amount"`
		Note   string   `json:"note"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if req.Token == "" || req.Amount == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "token and amount are required"})
	}
	amount := *req.Amount
	if amount <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "amount must be positive"})
	}

	snap, err := s.Store.Load()
	if err != nil {
		log.Printf("[CHECKOUT] failed to load snapshot: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to load binding"})
	}
	binding := snap.FindBinding(req.Token)
	if binding == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not found"})
	}

	// The staff record should always exist; if it somehow doesn't, the
	// session still opens with a generic line item.
	name := "staff"
	if member := snap.FindStaff(binding.StaffID); member != nil {
		name = member.Name
	}

	note := req.Note
	if runes := []rune(note); len(runes) > s.NoteLimit {
		note = string(runes[:s.NoteLimit])
	}

	amountStr := strconv.FormatFloat(amount, 'f', -1, 64)
	params := payments.SessionParams{
		Description: fmt.Sprintf("Tip for %s (%s %s)", name, binding.PointType, binding.PointLabel),
		Note:        note,
		Amount:      amount,
		AmountMinor: int64(math.Round(amount * 100)),
		Currency:    s.Currency,
		Token:       binding.Token,
		SuccessURL:  fmt.Sprintf("%s/success?token=%s&amount=%s", s.BaseURL, binding.Token, amountStr),
		CancelURL:   fmt.Sprintf("%s/cancel?token=%s", s.BaseURL, binding.Token),
	}

	ctx, cancel := context.WithTimeout(c.UserContext(), s.Timeout)
	defer cancel()

	sess, err := s.Processor.CreateSession(ctx, params)
	if err != nil {
		// Full detail stays in the server log; the caller gets a generic
		// message so processor internals never leak.
		log.Printf("[CHECKOUT] session creation failed for token %s: %v", binding.Token, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "payment session creation failed"})
	}

	if sess.Simulated {
		return c.JSON(fiber.Map{"url": sess.URL, "simulated": true})
	}
	return c.JSON(fiber.Map{"url": sess.URL})
}
