package controller

import (
	"survey-interview-be/internal/dto"
	"survey-interview-be/internal/pkg/serverutils"
	"survey-interview-be/internal/service"
	"survey-interview-be/pkg/segment"

	"github.com/gofiber/fiber/v2"
)

type IInterviewController interface {
	RegisterRoutes(r fiber.Router)
	Start(ctx *fiber.Ctx) error
	UpdateConversationId(ctx *fiber.Ctx) error
	GetSession(ctx *fiber.Ctx) error
	Complete(ctx *fiber.Ctx) error
	CheckCompletion(ctx *fiber.Ctx) error
	GetConfig(ctx *fiber.Ctx) error
}

type interviewController struct {
	interviewService service.IInterviewService
	interviewCopy    segment.InterviewCopy
	agentId          string
}

func NewInterviewController(
	interviewService service.IInterviewService,
	interviewCopy segment.InterviewCopy,
	agentId string,
) IInterviewController {
	return &interviewController{
		interviewService: interviewService,
		interviewCopy:    interviewCopy,
		agentId:          agentId,
	}
}

func (c *interviewController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/interview")
	h.Post("/start", c.Start)
	h.Post("/update-id", c.UpdateConversationId)
	h.Get("/config", c.GetConfig)
	h.Get("/session/:user_id", c.GetSession)
	h.Post("/complete/:user_id", c.Complete)
	h.Get("/check-completion/:user_id", c.CheckCompletion)
}

func (c *interviewController) Start(ctx *fiber.Ctx) error {
	var req dto.StartInterviewRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.interviewService.StartInterview(ctx.Context(), req.UserId)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

// UpdateConversationId rebinds the session to the real external conversation
// id once the voice SDK reports it, replacing the tracking id from Start.
func (c *interviewController) UpdateConversationId(ctx *fiber.Ctx) error {
	var req dto.UpdateConversationIdRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.interviewService.BindConversation(ctx.Context(), req.UserId, req.ConversationId); err != nil {
		return err
	}

	return ctx.JSON(fiber.Map{"status": "updated"})
}

// GetSession is the polling target: clients call it repeatedly until the
// survey status leaves "pending". A long-lived "pending" is valid here; the
// polling timeout is the client's concern.
func (c *interviewController) GetSession(ctx *fiber.Ctx) error {
	res, err := c.interviewService.GetSession(ctx.Context(), ctx.Params("user_id"))
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *interviewController) Complete(ctx *fiber.Ctx) error {
	res, err := c.interviewService.CompleteInterview(ctx.Context(), ctx.Params("user_id"))
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *interviewController) CheckCompletion(ctx *fiber.Ctx) error {
	res, err := c.interviewService.CheckCompletion(ctx.Context(), ctx.Params("user_id"))
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *interviewController) GetConfig(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Interview config", &dto.InterviewConfigResponse{
		Title:             c.interviewCopy.Title,
		Description:       c.interviewCopy.Description,
		CompletionMessage: c.interviewCopy.CompletionMessage,
		AgentId:           c.agentId,
	}))
}
