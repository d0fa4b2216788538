package services

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"tip-collect-system/models"
	"tip-collect-system/storage"
)

type StaffService struct {
	Store *storage.Serialized
}

func NewStaffService(store *storage.Serialized) *StaffService {
	return &StaffService{Store: store}
}

// Register creates a staff member. Name is required; role defaults to "Staff".
func (s *StaffService) Register(c *fiber.Ctx) error {
	var req struct {
		Name string `json:"name"`
		Role string `json:"role"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "name is required"})
	}
	if req.Role == "" {
		req.Role = "Staff"
	}

	member := models.StaffMember{
		ID:   uuid.NewString(),
		Name: req.Name,
		Role: req.Role,
	}

	if _, err := s.Store.Update(func(snap *models.Snapshot) error {
		snap.Staff = append(snap.Staff, member)
		return nil
	}); err != nil {
		log.Printf("[STAFF] failed to persist %s: %v", member.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to save staff member"})
	}

	log.Printf("[STAFF] registered %s (%s)", member.Name, member.ID)
	return c.JSON(member)
}

// List returns all registered staff members.
func (s *StaffService) List(c *fiber.Ctx) error {
	snap, err := s.Store.Load()
	if err != nil {
		log.Printf("[STAFF] failed to load snapshot: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to load staff"})
	}
	return c.JSON(snap.Staff)
}

// GetByID returns one staff member.
func (s *StaffService) GetByID(c *fiber.Ctx) error {
	snap, err := s.Store.Load()
	if err != nil {
		log.Printf("[STAFF] failed to load snapshot: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to load staff"})
	}
	member := snap.FindStaff(c.Params("id"))
	if member == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not found"})
	}
	return c.JSON(member)
}
