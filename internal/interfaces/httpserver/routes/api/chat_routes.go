package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"twilio-demo/server/internal/interfaces/httpserver/handlers"
	chatreq "twilio-demo/server/internal/interfaces/httpserver/requests/chat"
	"twilio-demo/server/internal/interfaces/httpserver/responses"
	chatres "twilio-demo/server/internal/interfaces/httpserver/responses/chat"
	"twilio-demo/server/internal/utils/platformerrors"
)

// RegisterChatRoutes registers the chat token and conversation routes.
func RegisterChatRoutes(router gin.IRoutes, handler *handlers.ChatHandler) {
	router.POST("/chat/token", issueChatToken(handler))
	router.POST("/chat/conversations", createConversation(handler))
	router.GET("/chat/conversations", listConversations(handler))
	router.GET("/chat/conversations/:sid", getConversation(handler))
	router.POST("/chat/conversations/join", joinConversation(handler))
	router.POST("/chat/conversations/join-by-name", joinConversationByName(handler))
	router.DELETE("/chat/conversations/:sid", deleteConversation(handler))
	router.GET("/chat/conversations/:sid/participants", listParticipants(handler))
	router.POST("/chat/messages", sendMessage(handler))
	router.GET("/chat/conversations/:sid/messages", listMessages(handler))
}

// issueChatToken godoc
// @Summary      Issue a chat access token
// @Description  Mints a signed access token with a chat grant for the conversations service.
// @Tags         Chat
// @Accept       json
// @Produce      json
// @Param        request body chatreq.TokenRequest true "Token request"
// @Success      200 {object} chatres.TokenResponse
// @Failure      400 {object} responses.ErrorResponse
// @Failure      500 {object} responses.ErrorResponse
// @Router       /chat/token [post]
func issueChatToken(handler *handlers.ChatHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req chatreq.TokenRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			responses.HandleNewError(c, platformerrors.ErrorTypeValidation, "invalid request body")
			return
		}

		token, err := handler.IssueToken(c.Request.Context(), req.Identity)
		if err != nil {
			responses.HandleError(c, err, "failed to issue chat token")
			return
		}

		c.JSON(http.StatusOK, chatres.NewTokenResponse(token))
	}
}

// createConversation godoc
// @Summary      Create a conversation
// @Description  Creates a conversation on the upstream service, optionally with a friendly name.
// @Tags         Chat
// @Accept       json
// @Produce      json
// @Param        request body chatreq.CreateConversationRequest false "Conversation request"
// @Success      201 {object} chatres.ConversationResponse
// @Failure      409 {object} responses.ErrorResponse
// @Failure      502 {object} responses.ErrorResponse
// @Router       /chat/conversations [post]
func createConversation(handler *handlers.ChatHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req chatreq.CreateConversationRequest
		if c.Request.ContentLength > 0 {
			if err := c.ShouldBindJSON(&req); err != nil {
				responses.HandleNewError(c, platformerrors.ErrorTypeValidation, "invalid request body")
				return
			}
		}

		conv, err := handler.CreateConversation(c.Request.Context(), req.FriendlyName)
		if err != nil {
			responses.HandleError(c, err, "failed to create conversation")
			return
		}

		c.JSON(http.StatusCreated, chatres.NewConversationResponse(conv))
	}
}

// listConversations godoc
// @Summary      List conversations
// @Description  Returns the current snapshot of conversations from the upstream service.
// @Tags         Chat
// @Produce      json
// @Success      200 {object} chatres.ListConversationsResponse
// @Failure      502 {object} responses.ErrorResponse
// @Router       /chat/conversations [get]
func listConversations(handler *handlers.ChatHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		conversations, err := handler.ListConversations(c.Request.Context())
		if err != nil {
			responses.HandleError(c, err, "failed to list conversations")
			return
		}

		c.JSON(http.StatusOK, chatres.NewListConversationsResponse(conversations))
	}
}

// getConversation godoc
// @Summary      Get a conversation
// @Description  Retrieves a conversation by SID.
// @Tags         Chat
// @Produce      json
// @Param        sid path string true "Conversation SID"
// @Success      200 {object} chatres.ConversationResponse
// @Failure      404 {object} responses.ErrorResponse
// @Router       /chat/conversations/{sid} [get]
func getConversation(handler *handlers.ChatHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		conv, err := handler.GetConversation(c.Request.Context(), c.Param("sid"))
		if err != nil {
			responses.HandleError(c, err, "failed to get conversation")
			return
		}

		c.JSON(http.StatusOK, chatres.NewConversationResponse(conv))
	}
}

// joinConversation godoc
// @Summary      Join a conversation
// @Description  Adds an identity as a participant of a conversation.
// @Tags         Chat
// @Accept       json
// @Produce      json
// @Param        request body chatreq.JoinConversationRequest true "Join request"
// @Success      200 {object} chatres.JoinResponse
// @Failure      400 {object} responses.ErrorResponse
// @Failure      409 {object} responses.ErrorResponse
// @Router       /chat/conversations/join [post]
func joinConversation(handler *handlers.ChatHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req chatreq.JoinConversationRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			responses.HandleNewError(c, platformerrors.ErrorTypeValidation, "invalid request body")
			return
		}

		participant, err := handler.JoinConversation(c.Request.Context(), req.ConversationSID, req.Identity)
		if err != nil {
			responses.HandleError(c, err, "failed to join conversation")
			return
		}

		c.JSON(http.StatusOK, chatres.NewJoinResponse(participant))
	}
}

// joinConversationByName godoc
// @Summary      Join a conversation by name
// @Description  Resolves a conversation by friendly name, creating it if absent, then adds the identity as a participant.
// @Tags         Chat
// @Accept       json
// @Produce      json
// @Param        request body chatreq.JoinByNameRequest true "Join request"
// @Success      200 {object} chatres.ConversationResponse
// @Failure      400 {object} responses.ErrorResponse
// @Failure      502 {object} responses.ErrorResponse
// @Router       /chat/conversations/join-by-name [post]
func joinConversationByName(handler *handlers.ChatHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req chatreq.JoinByNameRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			responses.HandleNewError(c, platformerrors.ErrorTypeValidation, "invalid request body")
			return
		}

		conv, err := handler.JoinConversationByName(c.Request.Context(), req.ConversationName, req.Identity)
		if err != nil {
			responses.HandleError(c, err, "failed to join conversation by name")
			return
		}

		c.JSON(http.StatusOK, chatres.NewConversationResponse(conv))
	}
}

// deleteConversation godoc
// @Summary      Delete a conversation
// @Description  Removes a conversation. Deleting a conversation that is already gone succeeds.
// @Tags         Chat
// @Produce      json
// @Param        sid path string true "Conversation SID"
// @Success      200 {object} responses.MessageResponse
// @Failure      502 {object} responses.ErrorResponse
// @Router       /chat/conversations/{sid} [delete]
func deleteConversation(handler *handlers.ChatHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := handler.DeleteConversation(c.Request.Context(), c.Param("sid")); err != nil {
			responses.HandleError(c, err, "failed to delete conversation")
			return
		}

		c.JSON(http.StatusOK, responses.MessageResponse{Message: "conversation deleted"})
	}
}

// listParticipants godoc
// @Summary      List conversation participants
// @Tags         Chat
// @Produce      json
// @Param        sid path string true "Conversation SID"
// @Success      200 {object} chatres.ListParticipantsResponse
// @Failure      404 {object} responses.ErrorResponse
// @Router       /chat/conversations/{sid}/participants [get]
func listParticipants(handler *handlers.ChatHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		participants, err := handler.ListParticipants(c.Request.Context(), c.Param("sid"))
		if err != nil {
			responses.HandleError(c, err, "failed to list participants")
			return
		}

		c.JSON(http.StatusOK, chatres.NewListParticipantsResponse(participants))
	}
}

// sendMessage godoc
// @Summary      Send a message
// @Description  Posts a message to a conversation on behalf of an author.
// @Tags         Chat
// @Accept       json
// @Produce      json
// @Param        request body chatreq.SendMessageRequest true "Message request"
// @Success      201 {object} chatres.MessageResponse
// @Failure      400 {object} responses.ErrorResponse
// @Router       /chat/messages [post]
func sendMessage(handler *handlers.ChatHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req chatreq.SendMessageRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			responses.HandleNewError(c, platformerrors.ErrorTypeValidation, "invalid request body")
			return
		}

		msg, err := handler.SendMessage(c.Request.Context(), req.ConversationSID, req.Author, req.Body)
		if err != nil {
			responses.HandleError(c, err, "failed to send message")
			return
		}

		c.JSON(http.StatusCreated, chatres.NewMessageResponse(msg))
	}
}

// listMessages godoc
// @Summary      List conversation messages
// @Tags         Chat
// @Produce      json
// @Param        sid path string true "Conversation SID"
// @Success      200 {object} chatres.ListMessagesResponse
// @Failure      404 {object} responses.ErrorResponse
// @Router       /chat/conversations/{sid}/messages [get]
func listMessages(handler *handlers.ChatHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		messages, err := handler.ListMessages(c.Request.Context(), c.Param("sid"))
		if err != nil {
			responses.HandleError(c, err, "failed to list messages")
			return
		}

		c.JSON(http.StatusOK, chatres.NewListMessagesResponse(messages))
	}
}
