package services

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"tip-collect-system/models"
	"tip-collect-system/storage"
)

type TipService struct {
	Store *storage.Serialized
}

func NewTipService(store *storage.Serialized) *TipService {
	return &TipService{Store: store}
}

// Record appends one ledger entry for a collected tip. There is no
// idempotency check — the same payment recorded twice appends twice.
func (s *TipService) Record(c *fiber.Ctx) error {
	var req struct {
		Token  string  `json:"token"`
		Amount float64 `json:"amount"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if req.Amount <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "amount must be positive"})
	}

	record := models.TipRecord{
		ID:         uuid.NewString(),
		Token:      req.Token,
		Amount:     req.Amount,
		RecordedAt: time.Now().UTC(),
	}

	if _, err := s.Store.Update(func(snap *models.Snapshot) error {
		if snap.FindBinding(req.Token) == nil {
			return ErrNotFound
		}
		snap.Tips = append(snap.Tips, record)
		return nil
	}); err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not found"})
		}
		log.Printf("[TIPS] failed to persist record %s: %v", record.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to save tip"})
	}

	log.Printf("[TIPS] recorded %.2f for token %s", req.Amount, req.Token)
	return c.JSON(fiber.Map{"ok": true})
}
