package moderation

import (
	"bytes"

	"github.com/NeuralTrust/content-analyzer/pkg/domain"
	"github.com/valyala/fastjson"
)

const contentKey = "content"

// ContentRequest is the decoded stdin payload.
type ContentRequest struct {
	Content string
	// Present is false when content was missing or not a string.
	Present bool
}

// DecodeRequest parses raw stdin. Blank input is EmptyInput, invalid JSON is
// MalformedJSON. Any valid JSON value without a string "content" field
// decodes to empty content.
func DecodeRequest(raw []byte) (ContentRequest, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return ContentRequest{}, domain.NewAnalysisError(domain.EmptyInput, domain.ErrEmptyInput)
	}

	var p fastjson.Parser
	v, err := p.ParseBytes(trimmed)
	if err != nil {
		return ContentRequest{}, domain.NewMalformedJSONError(err)
	}

	if v.Type() != fastjson.TypeObject {
		return ContentRequest{}, nil
	}
	field := v.Get(contentKey)
	if field == nil || field.Type() != fastjson.TypeString {
		return ContentRequest{}, nil
	}
	content, err := field.StringBytes()
	if err != nil {
		return ContentRequest{}, nil
	}
	return ContentRequest{Content: string(content), Present: true}, nil
}
