package form

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"
)

// SessionHeader carries the per-session identifier on submission requests.
const SessionHeader = "x-session-id"

// HTTPSubmitter posts finalized payloads to the registration endpoint.
type HTTPSubmitter struct {
	client  *http.Client
	baseURL string
}

// NewHTTPSubmitter builds a submitter against the given API base URL.
// No timeout is applied unless the supplied client carries one.
func NewHTTPSubmitter(client *http.Client, baseURL string) *HTTPSubmitter {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPSubmitter{client: client, baseURL: baseURL}
}

type submitResponse struct {
	Data struct {
		RegistrationID string `json:"registration_id"`
	} `json:"data"`
	Errors []struct {
		Path    []string `json:"path"`
		Message string   `json:"message"`
	} `json:"errors"`
	Message string `json:"message"`
}

// Submit delivers the payload with the session header and decodes the
// server's envelope. A 400 with structured errors becomes *FieldErrors.
func (s *HTTPSubmitter) Submit(ctx context.Context, payload SubmissionPayload, sessionID string) (string, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("encode payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/api/registration", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(SessionHeader, sessionID)

	res, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("submit registration: %w", err)
	}
	defer res.Body.Close()

	var decoded submitResponse
	if err := json.NewDecoder(res.Body).Decode(&decoded); err != nil && err != io.EOF {
		if res.StatusCode >= 200 && res.StatusCode < 300 {
			return "", fmt.Errorf("decode response: %w", err)
		}
		return "", fmt.Errorf("registration endpoint returned %d", res.StatusCode)
	}

	switch {
	case res.StatusCode >= 200 && res.StatusCode < 300:
		return decoded.Data.RegistrationID, nil
	case res.StatusCode == http.StatusBadRequest && len(decoded.Errors) > 0:
		fields := make(map[string]string, len(decoded.Errors))
		for _, fe := range decoded.Errors {
			if len(fe.Path) > 0 {
				fields[fe.Path[0]] = fe.Message
			}
		}
		return "", &FieldErrors{Fields: fields}
	default:
		if decoded.Message != "" {
			return "", fmt.Errorf("registration endpoint returned %d: %s", res.StatusCode, decoded.Message)
		}
		return "", fmt.Errorf("registration endpoint returned %d", res.StatusCode)
	}
}

// HTTPTracker delivers analytics events to the form analytics endpoint.
// Delivery is fire-and-forget: each event goes out on its own goroutine and
// failures are logged, never surfaced.
type HTTPTracker struct {
	client    *http.Client
	baseURL   string
	sessionID string
	logger    *zap.Logger
}

// NewHTTPTracker builds a tracker for the given session.
func NewHTTPTracker(client *http.Client, baseURL, sessionID string, logger *zap.Logger) *HTTPTracker {
	if client == nil {
		client = http.DefaultClient
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HTTPTracker{client: client, baseURL: baseURL, sessionID: sessionID, logger: logger}
}

func (t *HTTPTracker) Track(eventType string, data map[string]interface{}) {
	go func() {
		body, err := json.Marshal(map[string]interface{}{
			"event_type": eventType,
			"event_data": data,
			"session_id": t.sessionID,
		})
		if err != nil {
			t.logger.Debug("encode analytics event failed", zap.Error(err))
			return
		}

		req, err := http.NewRequest(http.MethodPost, t.baseURL+"/api/analytics/form", bytes.NewReader(body))
		if err != nil {
			t.logger.Debug("build analytics request failed", zap.Error(err))
			return
		}
		req.Header.Set("Content-Type", "application/json")

		res, err := t.client.Do(req)
		if err != nil {
			t.logger.Debug("analytics delivery failed", zap.String("event", eventType), zap.Error(err))
			return
		}
		_, _ = io.Copy(io.Discard, res.Body)
		_ = res.Body.Close()
	}()
}
