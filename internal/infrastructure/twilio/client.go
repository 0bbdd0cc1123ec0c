// Package twilio implements the Twilio-facing infrastructure: the access
// token builder and the REST client for the Conversations and Video
// management APIs.
package twilio

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"

	"twilio-demo/server/internal/config"
	"twilio-demo/server/internal/infrastructure/metrics"
	"twilio-demo/server/internal/utils/platformerrors"
)

const (
	apiConversations = "conversations"
	apiVideo         = "video"

	// Upstream error code for creating a room whose unique name is already
	// in progress. Arrives with HTTP 400, surfaced to callers as a conflict.
	codeRoomExists = 53113
)

// apiError is the error payload returned by the Twilio REST APIs.
type apiError struct {
	Code     int    `json:"code"`
	Message  string `json:"message"`
	MoreInfo string `json:"more_info"`
	Status   int    `json:"status"`
}

// Client talks to the Twilio management APIs. Stateless: every call is a
// fresh upstream request, nothing is cached.
type Client struct {
	conversations *resty.Client
	video         *resty.Client
	pageSize      int
	log           zerolog.Logger
}

// NewClient creates a Resty-backed Twilio management API client.
func NewClient(cfg *config.Config, log zerolog.Logger) *Client {
	newRestClient := func(baseURL string) *resty.Client {
		return resty.New().
			SetBaseURL(baseURL).
			SetBasicAuth(cfg.TwilioAccountSID, cfg.TwilioAuthToken).
			SetTimeout(cfg.UpstreamTimeout).
			SetHeader("Accept", "application/json")
	}

	return &Client{
		conversations: newRestClient(cfg.ConversationsBaseURL),
		video:         newRestClient(cfg.VideoBaseURL),
		pageSize:      cfg.ListPageSize,
		log:           log.With().Str("component", "twilio-client").Logger(),
	}
}

// do executes an upstream request and maps failures into the service error
// taxonomy. The exec callback performs the actual resty call.
func (c *Client) do(ctx context.Context, api, operation string, exec func(req *resty.Request) (*resty.Response, error)) error {
	client := c.conversations
	if api == apiVideo {
		client = c.video
	}

	upstreamErr := &apiError{}
	req := client.R().
		SetContext(ctx).
		SetError(upstreamErr)

	start := time.Now()
	resp, err := exec(req)
	elapsed := time.Since(start).Seconds()

	if err != nil {
		metrics.RecordUpstreamRequest(api, operation, "network_error", elapsed)
		c.log.Warn().Err(err).Str("api", api).Str("operation", operation).Msg("upstream request failed")
		return platformerrors.NewError(ctx, platformerrors.LayerInfrastructure,
			platformerrors.ErrorTypeExternal,
			fmt.Sprintf("twilio %s api unreachable", api), err)
	}

	if resp.IsError() {
		metrics.RecordUpstreamRequest(api, operation, fmt.Sprintf("http_%d", resp.StatusCode()), elapsed)
		return c.statusError(ctx, api, operation, resp.StatusCode(), upstreamErr)
	}

	metrics.RecordUpstreamRequest(api, operation, "ok", elapsed)
	return nil
}

func (c *Client) statusError(ctx context.Context, api, operation string, status int, upstreamErr *apiError) error {
	message := upstreamErr.Message
	if message == "" {
		message = fmt.Sprintf("twilio %s api returned status %d", api, status)
	}

	c.log.Warn().
		Str("api", api).
		Str("operation", operation).
		Int("status", status).
		Int("upstream_code", upstreamErr.Code).
		Msg("upstream request rejected")

	errorType := platformerrors.ErrorTypeExternal
	switch {
	case status == http.StatusNotFound:
		errorType = platformerrors.ErrorTypeNotFound
	case status == http.StatusConflict:
		errorType = platformerrors.ErrorTypeConflict
	case upstreamErr.Code == codeRoomExists:
		errorType = platformerrors.ErrorTypeConflict
	case status == http.StatusBadRequest:
		errorType = platformerrors.ErrorTypeValidation
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		// Bad credentials talking to the management API, not a caller fault.
		errorType = platformerrors.ErrorTypeExternal
	}

	return platformerrors.NewErrorWithContext(ctx, platformerrors.LayerInfrastructure,
		errorType, message, nil, map[string]any{
			"upstream_code":   upstreamErr.Code,
			"upstream_status": status,
		})
}
