package ai

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/meetpilot-team/meetpilot/internal/domain/entities"
)

// Parser handles parsing and validation of chat-completion responses
type Parser struct{}

// NewParser creates a new Parser instance
func NewParser() *Parser {
	return &Parser{}
}

// ParseAnalysisResponse parses the JSON content of a completion into an
// AnalysisResult, enforcing the three required top-level fields
func (p *Parser) ParseAnalysisResponse(jsonString string) (*entities.AnalysisResult, error) {
	// Extract JSON from response (models might wrap it in markdown code blocks)
	jsonString = extractJSON(jsonString)

	var result entities.AnalysisResult
	if err := json.Unmarshal([]byte(jsonString), &result); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w", err)
	}

	if result.Summary == nil {
		return nil, fmt.Errorf("missing summary in response")
	}
	if result.ActionItems == nil {
		return nil, fmt.Errorf("missing actionItems in response")
	}
	if result.Flowchart == "" {
		return nil, fmt.Errorf("missing flowchart in response")
	}
	return &result, nil
}

// JoinSummary renders the summary bullet array as one display string
func (p *Parser) JoinSummary(bullets []string) string {
	return strings.Join(bullets, "\n• ")
}

// extractJSON extracts JSON content from markdown code blocks or plain text
func extractJSON(content string) string {
	content = strings.TrimSpace(content)

	// Check if wrapped in markdown code block
	if strings.HasPrefix(content, "```json") {
		content = strings.TrimPrefix(content, "```json")
		content = strings.TrimPrefix(content, "```")
		if idx := strings.LastIndex(content, "```"); idx != -1 {
			content = content[:idx]
		}
	} else if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```")
		if idx := strings.LastIndex(content, "```"); idx != -1 {
			content = content[:idx]
		}
	}

	return strings.TrimSpace(content)
}
