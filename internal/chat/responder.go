// Package chat answers user questions about an ingested manual through the
// Gemini generation API.
package chat

import (
	"context"
	"fmt"
	"strings"

	"supportagent/internal/genai"
	"supportagent/internal/observability"
)

// systemInstruction scopes the model to the uploaded manual.
const systemInstruction = `You are a specialized ABB Technical Support AI.
You have access to the specific product manual uploaded by the user.
Answer questions strictly based on the provided file content.
If the answer is not in the file, politely state that the information is missing from the manual.
Be concise, accurate, and helpful. Format technical information clearly.`

// Generator is the slice of the Gemini client the responder needs.
type Generator interface {
	GenerateContent(ctx context.Context, req genai.GenerateRequest) (string, error)
}

// Turn is a single chat exchange. FileURI and FileName reference a prior
// successful ingestion; both must be set for the file to be attached.
type Turn struct {
	UserMessage string
	FileURI     string
	FileName    string
}

// Responder produces replies scoped to the support persona.
type Responder struct {
	logger *observability.Logger
	gen    Generator
}

// NewResponder creates a chat responder backed by the given generator.
func NewResponder(logger *observability.Logger, gen Generator) *Responder {
	return &Responder{logger: logger, gen: gen}
}

// Respond asks the generator for a reply to the turn. An unusable file
// reference is dropped rather than failing the turn; the model then answers
// from the user message alone.
func (r *Responder) Respond(ctx context.Context, turn Turn) (string, error) {
	if turn.UserMessage == "" {
		return "", fmt.Errorf("user message is required")
	}

	var parts []genai.Part

	if part, ok := filePart(turn.FileURI, turn.FileName); ok {
		parts = append(parts, part)
	} else if turn.FileURI != "" || turn.FileName != "" {
		r.logger.Warn().
			Str("file_uri", turn.FileURI).
			Str("file_name", turn.FileName).
			Msg("Unusable file reference, answering without manual context")
	}

	parts = append(parts, genai.Part{Text: turn.UserMessage})

	req := genai.GenerateRequest{
		Contents:          []genai.Content{{Role: "user", Parts: parts}},
		SystemInstruction: &genai.Content{Parts: []genai.Part{{Text: systemInstruction}}},
	}

	return r.gen.GenerateContent(ctx, req)
}

// filePart builds a file reference part, or reports that none can be built.
// Both fields must be present and the URI must look like an absolute URL.
func filePart(fileURI, fileName string) (genai.Part, bool) {
	if fileURI == "" || fileName == "" {
		return genai.Part{}, false
	}
	if !strings.HasPrefix(fileURI, "http://") && !strings.HasPrefix(fileURI, "https://") {
		return genai.Part{}, false
	}
	return genai.Part{
		FileData: &genai.FileData{
			MIMEType: "application/pdf",
			FileURI:  fileURI,
		},
	}, true
}
