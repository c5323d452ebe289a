package alertsmanager

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/arkade-os/nftbridge/internal/core/ports"
)

const (
	serviceName = "nftbridged"

	maxRetries = 5
)

type Alert struct {
	Labels      map[string]string `json:"labels"`
	Annotations map[string]string `json:"annotations"`
	StartsAt    time.Time         `json:"startsAt"`
}

type service struct {
	baseUrl    string
	httpClient *http.Client
	baseDelay  time.Duration
}

// NewService returns an Alerts publisher posting to the AlertManager v2 alerts
// endpoint at alertManagerURL.
func NewService(alertManagerURL string) (ports.Alerts, error) {
	if alertManagerURL == "" {
		return nil, fmt.Errorf("missing alert manager url")
	}
	return &service{
		baseUrl: alertManagerURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		baseDelay: 100 * time.Millisecond,
	}, nil
}

func (s *service) Publish(ctx context.Context, topic ports.Topic, message any) error {
	labels := map[string]string{
		"alertname": string(topic),
		"service":   serviceName,
		"severity":  "info",
	}

	desc := ""
	annotations := map[string]string{}
	switch topic {
	case ports.TokenIssued:
		m, ok := message.(ports.TokenIssuedAlert)
		if !ok {
			return fmt.Errorf("invalid message type: %T", message)
		}
		annotations["firing_title"] = "🪙 Token Issued"
		desc = formatTokenIssuedAlert(m)
		labels["token_id"] = m.TokenId
	case ports.TokenSentOut:
		m, ok := message.(ports.TokenSentOutAlert)
		if !ok {
			return fmt.Errorf("invalid message type: %T", message)
		}
		annotations["firing_title"] = "📤 Token Sent Out"
		desc = formatTokenSentOutAlert(m)
		labels["token_id"] = m.TokenId
		labels["submission_id"] = m.SubmissionId
		// the local unit stays spendable until the transfer comes back.
		labels["severity"] = "warning"
	case ports.InboundCallDropped:
		m, ok := message.(ports.InboundCallDroppedAlert)
		if !ok {
			return fmt.Errorf("invalid message type: %T", message)
		}
		annotations["firing_title"] = "⚠️ Inbound Call Dropped"
		desc = formatGenericAlert(map[string]any{
			"message id": m.MessageId,
			"attempts":   m.Attempts,
			"reason":     m.Reason,
		})
		labels["message_id"] = m.MessageId
		labels["severity"] = "critical"
	default:
		annotations["firing_title"] = fmt.Sprintf("🔔 %s", topic)
		desc = formatGenericAlert(map[string]any{"event": message})
	}

	annotations["description"] = desc
	alert := Alert{
		Labels:      labels,
		Annotations: annotations,
		StartsAt:    time.Now(),
	}

	if err := s.sendAlert(ctx, alert); err != nil {
		return fmt.Errorf("failed to send alert to AlertManager: %w", err)
	}

	return nil
}

func (s *service) sendAlert(ctx context.Context, alert Alert) error {
	payload, err := json.Marshal([]Alert{alert})
	if err != nil {
		return fmt.Errorf("failed to marshal alerts: %w", err)
	}

	for attempt := range maxRetries {
		req, err := http.NewRequestWithContext(ctx, "POST", s.baseUrl, bytes.NewReader(payload))
		if err != nil {
			return fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := s.httpClient.Do(req)
		if err != nil {
			if attempt < maxRetries-1 {
				if err := s.backoff(ctx, attempt); err != nil {
					return err
				}
				continue
			}
			return fmt.Errorf("failed to send alert after %d attempts: %w", maxRetries, err)
		}
		_ = resp.Body.Close()

		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			return nil
		}

		// Only server errors are retried.
		if resp.StatusCode >= 500 && attempt < maxRetries-1 {
			if err := s.backoff(ctx, attempt); err != nil {
				return err
			}
			continue
		}

		return fmt.Errorf(
			"failed to send alert to AlertManager with status %d after %d attempts",
			resp.StatusCode, attempt+1,
		)
	}

	return fmt.Errorf("failed to send alert after %d attempts", maxRetries)
}

// backoff waits baseDelay * 2^attempt.
func (s *service) backoff(ctx context.Context, attempt int) error {
	delay := s.baseDelay * time.Duration(1<<uint(attempt))
	select {
	case <-time.After(delay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func formatTokenIssuedAlert(data ports.TokenIssuedAlert) string {
	lines := []string{
		fmt.Sprintf("*Token ID:* `%s`", data.TokenId),
		fmt.Sprintf("*Asset:* `%s`", data.AssetAddress),
		fmt.Sprintf("*Holder:* `%s`", data.Holder),
		"\n*Origin:*",
		fmt.Sprintf("• Creation height: %d", data.CreationHeight),
		fmt.Sprintf("• Nonce: %d", data.Nonce),
	}
	if data.Name != "" || data.Symbol != "" {
		lines = append(lines, fmt.Sprintf("• Metadata: %s (%s)", data.Name, data.Symbol))
	}
	return strings.Join(lines, "\n")
}

func formatTokenSentOutAlert(data ports.TokenSentOutAlert) string {
	return strings.Join([]string{
		fmt.Sprintf("*Submission ID:* `%s`", data.SubmissionId),
		fmt.Sprintf("*Token ID:* `%s`", data.TokenId),
		fmt.Sprintf("• Sender: %s", data.Sender),
		fmt.Sprintf("• Recipient: %s", data.Recipient),
		fmt.Sprintf("• Destination chain: %d", data.DestChainId),
	}, "\n")
}

func formatGenericAlert(data map[string]any) string {
	keys := make([]string, 0, len(data))
	for key := range data {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	lines := make([]string, 0, len(keys))
	for _, key := range keys {
		lines = append(lines, fmt.Sprintf("• %s: %v", key, data[key]))
	}
	return strings.Join(lines, "\n")
}
