package controller

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kavia-common/personal-notes-manager-24022-24060/internal/dto"
	"github.com/kavia-common/personal-notes-manager-24022-24060/internal/pkg/apperr"
	"github.com/kavia-common/personal-notes-manager-24022-24060/internal/pkg/serverutils"
	"github.com/kavia-common/personal-notes-manager-24022-24060/internal/service"
)

type INoteController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type noteController struct {
	noteService service.INoteService
}

func NewNoteController(noteService service.INoteService) INoteController {
	return &noteController{
		noteService: noteService,
	}
}

func (c *noteController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/notes")
	h.Get("", c.List)
	h.Post("", c.Create)
	h.Get(":id", c.Show)
	h.Put(":id", c.Update)
	h.Delete(":id", c.Delete)
}

func (c *noteController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateNoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperr.NewValidation("Invalid JSON body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.noteService.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse(res))
}

func (c *noteController) Show(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	userId := ctx.Query("userId")

	res, err := c.noteService.Show(ctx.Context(), id, userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse(res))
}

func (c *noteController) List(ctx *fiber.Ctx) error {
	userId := ctx.Query("userId")
	search := ctx.Query("search")

	res, err := c.noteService.List(ctx.Context(), userId, search)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse(res))
}

func (c *noteController) Update(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	userId := ctx.Query("userId")

	var req dto.UpdateNoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperr.NewValidation("Invalid JSON body")
	}

	res, err := c.noteService.Update(ctx.Context(), id, userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse(res))
}

func (c *noteController) Delete(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	userId := ctx.Query("userId")

	if err := c.noteService.Delete(ctx.Context(), id, userId); err != nil {
		return err
	}

	return ctx.SendStatus(fiber.StatusNoContent)
}
