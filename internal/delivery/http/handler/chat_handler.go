package handler

import (
	"webrag-api/internal/delivery/http/dto"
	"webrag-api/internal/usecase/chat"

	"github.com/gofiber/fiber/v2"
)

type ChatHandler struct {
	chatUsecase *chat.ChatUsecase
}

func NewChatHandler(chatUsecase *chat.ChatUsecase) *ChatHandler {
	return &ChatHandler{chatUsecase: chatUsecase}
}

// Chat answers one question from the indexed content. Each turn is
// independent; the conversation id only correlates turns on the client.
func (h *ChatHandler) Chat(c *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request body"})
	}

	result, err := h.chatUsecase.Ask(c.Context(), req.Message, req.ConversationID)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(dto.ChatResponse{
		Response:       result.Response,
		Sources:        result.Sources,
		ConversationID: result.ConversationID,
	})
}
