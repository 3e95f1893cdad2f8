package suggest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/Anhpro1412/Menu-web/internal/menu"
)

const (
	defaultOpenAIBaseURL = "https://api.openai.com/v1"
	systemInstruction    = "Bạn là trợ lý gợi ý món ăn Việt Nam."
	apologyAnswer        = "Xin lỗi, chưa có gợi ý."
)

// OpenAIStrategy delegates generation to the chat-completions API. Any
// failure — transport, non-2xx status, malformed body — propagates as
// ErrRemoteGeneration; there is no per-call fallback to the local strategy.
type OpenAIStrategy struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

func NewOpenAIStrategy(apiKey, model string) *OpenAIStrategy {
	baseURL := os.Getenv("OPENAI_BASE_URL")
	if baseURL == "" {
		baseURL = defaultOpenAIBaseURL
	}
	return &OpenAIStrategy{
		apiKey:  apiKey,
		model:   model,
		baseURL: baseURL,
		client:  &http.Client{Timeout: 60 * time.Second},
	}
}

func (s *OpenAIStrategy) Source() string {
	return SourceRemote
}

func (s *OpenAIStrategy) Generate(ctx context.Context, userMessage string, items []menu.Item) (Result, error) {
	if s.apiKey == "" {
		return Result{}, fmt.Errorf("%w: missing OPENAI_API_KEY", ErrRemoteGeneration)
	}

	payload := map[string]any{
		"model":       s.model,
		"temperature": 0.2,
		"messages": []map[string]string{
			{"role": "system", "content": systemInstruction},
			{"role": "user", "content": BuildSuggestPrompt(userMessage, items)},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrRemoteGeneration, err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		s.baseURL+"/chat/completions",
		bytes.NewBuffer(body),
	)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrRemoteGeneration, err)
	}

	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrRemoteGeneration, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrRemoteGeneration, err)
	}

	if resp.StatusCode != http.StatusOK {
		return Result{}, fmt.Errorf("%w: openai api error: %s", ErrRemoteGeneration, string(raw))
	}

	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &result); err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrRemoteGeneration, err)
	}
	if len(result.Choices) == 0 {
		return Result{}, fmt.Errorf("%w: empty openai response", ErrRemoteGeneration)
	}

	answer := strings.TrimSpace(result.Choices[0].Message.Content)
	if answer == "" {
		answer = apologyAnswer
	}

	return Result{Answer: answer, Source: SourceRemote}, nil
}
