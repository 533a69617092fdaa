package classify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/greenroute/carbon-backend-go/internal/models"
)

// systemPrompt pins the response contract and the reference numbers the
// reasoning service should work with.
const systemPrompt = `You are a transport mode classifier for GPS trip segments.
Given a kinematic summary and a sampled trajectory, respond with a single JSON object:
{"transport_mode": one of walking|bicycle|motorcycle|car|bus|mrt|train|unknown,
 "confidence": 0-1,
 "total_distance": km,
 "total_duration": seconds,
 "carbon_emission": kg CO2,
 "suggestions": [strings],
 "journey_segments": optional array}
Emission factors (kg CO2/km): walking 0, bicycle 0, motorcycle 0.095, car 0.21, bus 0.089, mrt 0.033, train 0.041.
Speed guidance (km/h avg): <=6 walking, 6-15 bicycle, 15-35 motorcycle or stop-heavy transit, 35-80 car, >80 rail.
Respond with the JSON object only.`

// AIConfig holds the Tier B classifier settings.
type AIConfig struct {
	Endpoint            string        // OpenAI-compatible chat completions URL
	APIKey              string
	Model               string
	Timeout             time.Duration // bound on the single attempt
	MaxTrajectoryPoints int           // sampled points sent with the request
	CacheTTL            time.Duration
}

// DefaultAIConfig returns the Tier B defaults. The endpoint is empty, which
// disables the tier until configured.
func DefaultAIConfig() AIConfig {
	return AIConfig{
		Model:               "gpt-4o-mini",
		Timeout:             30 * time.Second,
		MaxTrajectoryPoints: 32,
		CacheTTL:            24 * time.Hour,
	}
}

// AIClassifier is the Tier B classifier. It sends the kinematic summary and
// a bounded trajectory sample to an external reasoning service, validates
// the structured response, and caches successful verdicts by content hash.
// It makes exactly one attempt per call; any failure is the caller's cue to
// fall back.
type AIClassifier struct {
	cfg    AIConfig
	client *http.Client
	cache  Cache
}

// NewAIClassifier creates a Tier B classifier. cache may be nil, in which
// case every call hits the service.
func NewAIClassifier(cfg AIConfig, cache Cache) *AIClassifier {
	return &AIClassifier{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
		cache:  cache,
	}
}

// Classify returns the cached verdict for an unchanged point set when
// available, otherwise performs the single service call.
func (c *AIClassifier) Classify(ctx context.Context, summary models.KinematicSummary, points []models.GpsPoint) (*models.Verdict, error) {
	if c.cfg.Endpoint == "" {
		return nil, fmt.Errorf("ai classifier not configured")
	}

	key := ContentHash(points)
	if c.cache != nil {
		if verdict, ok := c.cache.Get(key); ok {
			return verdict, nil
		}
	}

	verdict, err := c.call(ctx, summary, points)
	if err != nil {
		return nil, err
	}

	if c.cache != nil {
		if err := c.cache.Set(key, verdict, c.cfg.CacheTTL); err != nil {
			log.Printf("[AIClassifier] Failed to cache verdict: %v", err)
		}
	}
	return verdict, nil
}

// chat completions wire types
type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// aiPayload is the structured verdict embedded in the completion text.
// json.Number fields reject non-numeric values at decode time.
type aiPayload struct {
	TransportMode   string          `json:"transport_mode"`
	Confidence      json.Number     `json:"confidence"`
	TotalDistance   json.Number     `json:"total_distance"`
	TotalDuration   json.Number     `json:"total_duration"`
	CarbonEmission  json.Number     `json:"carbon_emission"`
	Suggestions     []string        `json:"suggestions"`
	JourneySegments json.RawMessage `json:"journey_segments,omitempty"`
}

func (c *AIClassifier) call(ctx context.Context, summary models.KinematicSummary, points []models.GpsPoint) (*models.Verdict, error) {
	userContent, err := json.Marshal(map[string]interface{}{
		"kinematic_summary":  summary,
		"sampled_trajectory": SampleTrajectory(points, c.cfg.MaxTrajectoryPoints),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request payload: %w", err)
	}

	body, err := json.Marshal(chatRequest{
		Model: c.cfg.Model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: string(userContent)},
		},
		Temperature: 0,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ai request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("ai request returned status %d", resp.StatusCode)
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("failed to read ai response: %w", err)
	}

	var completion chatResponse
	if err := json.Unmarshal(raw, &completion); err != nil {
		return nil, fmt.Errorf("malformed ai response: %w", err)
	}
	if len(completion.Choices) == 0 {
		return nil, fmt.Errorf("ai response contains no choices")
	}

	var payload aiPayload
	if err := json.Unmarshal([]byte(completion.Choices[0].Message.Content), &payload); err != nil {
		return nil, fmt.Errorf("malformed ai verdict: %w", err)
	}

	return validatePayload(payload)
}

// validatePayload enforces the response contract: a recognized mode, numeric
// required fields, and a suggestions list.
func validatePayload(p aiPayload) (*models.Verdict, error) {
	if !models.IsValidTransportMode(p.TransportMode) {
		return nil, fmt.Errorf("unrecognized transport mode %q", p.TransportMode)
	}

	confidence, err := p.Confidence.Float64()
	if err != nil {
		return nil, fmt.Errorf("invalid confidence: %w", err)
	}
	if confidence < 0 || confidence > 1 {
		return nil, fmt.Errorf("confidence %.2f out of range", confidence)
	}

	for name, n := range map[string]json.Number{
		"total_distance":  p.TotalDistance,
		"total_duration":  p.TotalDuration,
		"carbon_emission": p.CarbonEmission,
	} {
		v, err := n.Float64()
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", name, err)
		}
		if v < 0 {
			return nil, fmt.Errorf("negative %s", name)
		}
	}

	if p.Suggestions == nil {
		return nil, fmt.Errorf("missing suggestions list")
	}

	emission, _ := p.CarbonEmission.Float64()
	return &models.Verdict{
		TransportMode:    p.TransportMode,
		Confidence:       confidence,
		CarbonEmissionKg: emission,
		Suggestions:      p.Suggestions,
		Source:           SourceAI,
	}, nil
}
