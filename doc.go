// Package twilioapi implements the backend for the chat/video demo app.
//
// The service provides:
//   - Access token issuance for Twilio Conversations (chat grant) and
//     Twilio Video (video grant)
//   - Conversation administration: create, list, join, join-by-name, delete
//   - Video room administration: create, list, end
//   - Prometheus metrics and optional OpenTelemetry tracing
//
// All conversation and room state lives in the upstream Twilio services;
// this backend holds no state of record and caches nothing.
package twilioapi
