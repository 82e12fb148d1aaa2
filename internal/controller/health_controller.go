package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/kavia-common/personal-notes-manager-24022-24060/internal/repository"
)

type IHealthController interface {
	RegisterRoutes(r fiber.Router)
	Check(ctx *fiber.Ctx) error
	Ready(ctx *fiber.Ctx) error
}

type healthController struct {
	notesRepo   repository.INotesRepository
	environment string
}

func NewHealthController(notesRepo repository.INotesRepository, environment string) IHealthController {
	return &healthController{
		notesRepo:   notesRepo,
		environment: environment,
	}
}

func (c *healthController) RegisterRoutes(r fiber.Router) {
	r.Get("/", c.Check)
	r.Get("/ready", c.Ready)
}

// Check is the liveness probe: 200 whenever the process is up, regardless
// of backend state.
func (c *healthController) Check(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{
		"status":      "ok",
		"message":     "Service is healthy",
		"environment": c.environment,
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
	})
}

// Ready is the readiness probe: 503 until the active provider can reach
// its backend.
func (c *healthController) Ready(ctx *fiber.Ctx) error {
	if !c.notesRepo.IsHealthy(ctx.Context()) {
		return ctx.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status":  "error",
			"message": "DB not ready",
		})
	}
	return ctx.JSON(fiber.Map{
		"status":  "ok",
		"message": "Ready",
	})
}
