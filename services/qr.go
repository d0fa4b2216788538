package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gosimple/slug"

	"tip-collect-system/models"
	"tip-collect-system/storage"
	"tip-collect-system/utils"
)

type QrService struct {
	Store   *storage.Serialized
	Tokens  utils.TokenGenerator
	BaseURL string
}

func NewQrService(store *storage.Serialized, tokens utils.TokenGenerator, baseURL string) *QrService {
	return &QrService{Store: store, Tokens: tokens, BaseURL: baseURL}
}

// Mint binds a new QR token to a staff member at a physical point and
// returns the token plus the URL the printed code should encode.
func (s *QrService) Mint(c *fiber.Ctx) error {
	var req struct {
		StaffID    string `json:"staffId"`
		PointType  string `json:"pointType"`
		PointLabel string `json:"pointLabel"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if req.StaffID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "staffId is required"})
	}
	if req.PointType == "" {
		req.PointType = "Table"
	}
	if req.PointLabel == "" {
		req.PointLabel = "1"
	}

	token, err := s.Tokens.NewToken()
	if err != nil {
		log.Printf("[QR] token generation failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to mint token"})
	}

	binding := models.QrBinding{
		Token:      token,
		StaffID:    req.StaffID,
		PointType:  req.PointType,
		PointLabel: req.PointLabel,
		PointSlug:  slug.Make(req.PointType + " " + req.PointLabel),
		CreatedAt:  time.Now().UTC(),
	}

	if _, err := s.Store.Update(func(snap *models.Snapshot) error {
		if snap.FindStaff(req.StaffID) == nil {
			return ErrNotFound
		}
		snap.Qr = append(snap.Qr, binding)
		return nil
	}); err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not found"})
		}
		log.Printf("[QR] failed to persist binding %s: %v", token, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to save binding"})
	}

	log.Printf("[QR] minted %s for staff %s (%s)", token, req.StaffID, binding.PointSlug)
	return c.JSON(fiber.Map{
		"token":  token,
		"url":    fmt.Sprintf("%s/t/%s", s.BaseURL, token),
		"record": binding,
	})
}

// Resolve turns a scanned token back into its staff/point context. A
// binding whose staff record is gone still resolves, with a null staff.
func (s *QrService) Resolve(c *fiber.Ctx) error {
	snap, err := s.Store.Load()
	if err != nil {
		log.Printf("[QR] failed to load snapshot: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to load binding"})
	}

	binding := snap.FindBinding(c.Params("token"))
	if binding == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not found"})
	}

	return c.JSON(fiber.Map{
		"token":      binding.Token,
		"staff":      snap.FindStaff(binding.StaffID),
		"pointType":  binding.PointType,
		"pointLabel": binding.PointLabel,
		"pointSlug":  binding.PointSlug,
	})
}

// List returns all bindings, for the admin code-management view.
func (s *QrService) List(c *fiber.Ctx) error {
	snap, err := s.Store.Load()
	if err != nil {
		log.Printf("[QR] failed to load snapshot: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to load bindings"})
	}
	return c.JSON(snap.Qr)
}
