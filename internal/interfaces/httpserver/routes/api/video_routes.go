package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"twilio-demo/server/internal/interfaces/httpserver/handlers"
	videoreq "twilio-demo/server/internal/interfaces/httpserver/requests/video"
	"twilio-demo/server/internal/interfaces/httpserver/responses"
	videores "twilio-demo/server/internal/interfaces/httpserver/responses/video"
	"twilio-demo/server/internal/utils/platformerrors"
)

// RegisterVideoRoutes registers the video token and room routes.
func RegisterVideoRoutes(router gin.IRoutes, handler *handlers.VideoHandler) {
	router.POST("/video/token", issueVideoToken(handler))
	router.POST("/video/rooms", createRoom(handler))
	router.GET("/video/rooms", listRooms(handler))
	router.GET("/video/rooms/:sid", getRoom(handler))
	router.POST("/video/rooms/:sid/end", endRoom(handler))
	router.GET("/video/rooms/:sid/participants", listRoomParticipants(handler))
}

// issueVideoToken godoc
// @Summary      Issue a video access token
// @Description  Mints a signed access token with a video grant bound to a room name.
// @Tags         Video
// @Accept       json
// @Produce      json
// @Param        request body videoreq.TokenRequest true "Token request"
// @Success      200 {object} videores.TokenResponse
// @Failure      400 {object} responses.ErrorResponse
// @Failure      500 {object} responses.ErrorResponse
// @Router       /video/token [post]
func issueVideoToken(handler *handlers.VideoHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req videoreq.TokenRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			responses.HandleNewError(c, platformerrors.ErrorTypeValidation, "invalid request body")
			return
		}

		token, err := handler.IssueToken(c.Request.Context(), req.Identity, req.RoomName)
		if err != nil {
			responses.HandleError(c, err, "failed to issue video token")
			return
		}

		c.JSON(http.StatusOK, videores.NewTokenResponse(token))
	}
}

// createRoom godoc
// @Summary      Create a video room
// @Description  Creates a room with a unique name. Room type defaults to "group".
// @Tags         Video
// @Accept       json
// @Produce      json
// @Param        request body videoreq.CreateRoomRequest true "Room request"
// @Success      201 {object} videores.RoomResponse
// @Failure      400 {object} responses.ErrorResponse
// @Failure      409 {object} responses.ErrorResponse
// @Router       /video/rooms [post]
func createRoom(handler *handlers.VideoHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req videoreq.CreateRoomRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			responses.HandleNewError(c, platformerrors.ErrorTypeValidation, "invalid request body")
			return
		}

		room, err := handler.CreateRoom(c.Request.Context(), req.RoomName, req.RoomType)
		if err != nil {
			responses.HandleError(c, err, "failed to create room")
			return
		}

		c.JSON(http.StatusCreated, videores.NewRoomResponse(room))
	}
}

// listRooms godoc
// @Summary      List video rooms
// @Description  Returns the current snapshot of rooms with the given status (default "in-progress").
// @Tags         Video
// @Produce      json
// @Param        status query string false "Room status filter" Enums(in-progress, completed, failed)
// @Success      200 {object} videores.ListRoomsResponse
// @Failure      400 {object} responses.ErrorResponse
// @Router       /video/rooms [get]
func listRooms(handler *handlers.VideoHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		rooms, err := handler.ListRooms(c.Request.Context(), c.Query("status"))
		if err != nil {
			responses.HandleError(c, err, "failed to list rooms")
			return
		}

		c.JSON(http.StatusOK, videores.NewListRoomsResponse(rooms))
	}
}

// getRoom godoc
// @Summary      Get a video room
// @Description  Retrieves a room by SID.
// @Tags         Video
// @Produce      json
// @Param        sid path string true "Room SID"
// @Success      200 {object} videores.RoomResponse
// @Failure      404 {object} responses.ErrorResponse
// @Router       /video/rooms/{sid} [get]
func getRoom(handler *handlers.VideoHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		room, err := handler.GetRoom(c.Request.Context(), c.Param("sid"))
		if err != nil {
			responses.HandleError(c, err, "failed to get room")
			return
		}

		c.JSON(http.StatusOK, videores.NewRoomResponse(room))
	}
}

// endRoom godoc
// @Summary      End a video room
// @Description  Transitions a room to completed. Ending a room that is already gone succeeds.
// @Tags         Video
// @Produce      json
// @Param        sid path string true "Room SID"
// @Success      200 {object} videores.EndRoomResponse
// @Failure      502 {object} responses.ErrorResponse
// @Router       /video/rooms/{sid}/end [post]
func endRoom(handler *handlers.VideoHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		room, err := handler.EndRoom(c.Request.Context(), c.Param("sid"))
		if err != nil {
			responses.HandleError(c, err, "failed to end room")
			return
		}

		c.JSON(http.StatusOK, videores.NewEndRoomResponse(room))
	}
}

// listRoomParticipants godoc
// @Summary      List video room participants
// @Tags         Video
// @Produce      json
// @Param        sid path string true "Room SID"
// @Success      200 {object} videores.ListParticipantsResponse
// @Failure      404 {object} responses.ErrorResponse
// @Router       /video/rooms/{sid}/participants [get]
func listRoomParticipants(handler *handlers.VideoHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		participants, err := handler.ListParticipants(c.Request.Context(), c.Param("sid"))
		if err != nil {
			responses.HandleError(c, err, "failed to list room participants")
			return
		}

		c.JSON(http.StatusOK, videores.NewListParticipantsResponse(participants))
	}
}
