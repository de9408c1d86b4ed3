package controller

import (
	"mindwell-be/internal/dto"
	"mindwell-be/internal/pkg/serverutils"
	"mindwell-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

const categoryNotFoundMessage = "Category not found"

type ICategoryController interface {
	RegisterRoutes(r fiber.Router)
	ListPublic(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type categoryController struct {
	service service.ICategoryService
	authMw  fiber.Handler
	adminMw fiber.Handler
}

func NewCategoryController(service service.ICategoryService, authMw, adminMw fiber.Handler) ICategoryController {
	return &categoryController{service: service, authMw: authMw, adminMw: adminMw}
}

func (c *categoryController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/categories", c.authMw)
	// Registered ahead of the admin group so it answers before adminMw runs.
	h.Get("/public", c.ListPublic)

	admin := h.Group("", c.adminMw)
	admin.Get("", c.List)
	admin.Post("", c.Create)
	admin.Get("/:id", c.Show)
	admin.Put("/:id", c.Update)
	admin.Delete("/:id", c.Delete)
}

func (c *categoryController) ListPublic(ctx *fiber.Ctx) error {
	res, err := c.service.ListPublic(ctx.UserContext())
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *categoryController) List(ctx *fiber.Ctx) error {
	res, err := c.service.ListAll(ctx.UserContext())
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *categoryController) Show(ctx *fiber.Ctx) error {
	id, err := serverutils.ParamUUID(ctx, "id", categoryNotFoundMessage)
	if err != nil {
		return err
	}

	res, err := c.service.GetByID(ctx.UserContext(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *categoryController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateCategoryRequest
	if err := serverutils.BindAndValidate(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.Create(ctx.UserContext(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(res)
}

func (c *categoryController) Update(ctx *fiber.Ctx) error {
	id, err := serverutils.ParamUUID(ctx, "id", categoryNotFoundMessage)
	if err != nil {
		return err
	}

	var req dto.UpdateCategoryRequest
	if err := serverutils.BindAndValidate(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.Update(ctx.UserContext(), id, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *categoryController) Delete(ctx *fiber.Ctx) error {
	id, err := serverutils.ParamUUID(ctx, "id", categoryNotFoundMessage)
	if err != nil {
		return err
	}

	if err := c.service.Delete(ctx.UserContext(), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.MessageResponse("Category deleted"))
}
