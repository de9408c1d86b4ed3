package controller

import (
	"mindwell-be/internal/dto"
	"mindwell-be/internal/pkg/serverutils"
	"mindwell-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	SendMessage(ctx *fiber.Ctx) error
	GetForSession(ctx *fiber.Ctx) error
	ListForUser(ctx *fiber.Ctx) error
	ChangeCategory(ctx *fiber.Ctx) error
}

type chatController struct {
	chatService    service.IChatService
	chatLogService service.IChatLogService
	authMw         fiber.Handler
}

func NewChatController(chatService service.IChatService, chatLogService service.IChatLogService, authMw fiber.Handler) IChatController {
	return &chatController{
		chatService:    chatService,
		chatLogService: chatLogService,
		authMw:         authMw,
	}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/chat", c.authMw)
	h.Post("/message", c.SendMessage)
	h.Get("/session/:sessionId", c.GetForSession)
	h.Get("/user/:userId", c.ListForUser)
	h.Post("/change-category", c.ChangeCategory)
}

func (c *chatController) SendMessage(ctx *fiber.Ctx) error {
	userId, err := serverutils.CurrentUserID(ctx)
	if err != nil {
		return err
	}

	var req dto.SendMessageRequest
	if err := serverutils.BindAndValidate(ctx, &req); err != nil {
		return err
	}

	res, err := c.chatService.SendMessage(ctx.UserContext(), userId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *chatController) GetForSession(ctx *fiber.Ctx) error {
	userId, err := serverutils.CurrentUserID(ctx)
	if err != nil {
		return err
	}
	sessionId, err := serverutils.ParamUUID(ctx, "sessionId", "Chat log not found")
	if err != nil {
		return err
	}

	res, err := c.chatLogService.GetForSession(ctx.UserContext(), userId, sessionId)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *chatController) ListForUser(ctx *fiber.Ctx) error {
	callerId, err := serverutils.CurrentUserID(ctx)
	if err != nil {
		return err
	}
	userId, err := serverutils.ParamUUID(ctx, "userId", "Chat logs not found")
	if err != nil {
		return err
	}

	res, err := c.chatLogService.ListForUser(ctx.UserContext(), callerId, userId)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *chatController) ChangeCategory(ctx *fiber.Ctx) error {
	userId, err := serverutils.CurrentUserID(ctx)
	if err != nil {
		return err
	}

	var req dto.ChangeCategoryRequest
	if err := serverutils.BindAndValidate(ctx, &req); err != nil {
		return err
	}

	res, err := c.chatService.ChangeCategory(ctx.UserContext(), userId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}
