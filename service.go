package md2wiki

import (
	"context"
	"io"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"

	"github.com/tmatias/go-md2wiki/internal/event"
	"github.com/tmatias/go-md2wiki/internal/wiki"
)

// Service converts Markdown to wiki markup. A Service is safe to reuse
// across conversions.
type Service struct {
	cfg serviceConfig
	md  goldmark.Markdown
}

// New creates a Service with default configuration (Jira flavor).
// Use options to customize behavior (e.g., WithFlavor).
func New(opts ...Option) *Service {
	s := &Service{
		cfg: serviceConfig{flavor: FlavorJira},
		md: goldmark.New(
			goldmark.WithExtensions(
				extension.GFM,      // Tables, strikethrough, autolinks, task lists
				extension.Footnote, // Parsed so they can be cleanly dropped
			),
		),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Convert renders the input and returns the markup as a string.
func (s *Service) Convert(ctx context.Context, input Input) (string, error) {
	var b strings.Builder
	if err := s.ConvertTo(ctx, &b, input); err != nil {
		return "", err
	}
	return b.String(), nil
}

// ConvertTo renders the input, writing markup incrementally to w.
// Rendering is a fast local pass, so the context is only consulted
// between the parse and render stages; a write error aborts the run
// with the sink's error.
func (s *Service) ConvertTo(ctx context.Context, w io.Writer, input Input) error {
	if input.Markdown == "" {
		return ErrEmptyMarkdown
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if input.TOC {
		if err := wiki.WriteTOC(w); err != nil {
			return err
		}
	}

	source := []byte(input.Markdown)
	doc := s.md.Parser().Parse(text.NewReader(source))
	if err := ctx.Err(); err != nil {
		return err
	}

	wr := wiki.NewWriter(w, wiki.Options{
		HeadingShift: input.HeadingShift,
		Flavor:       flavorOf(s.cfg.flavor),
	})
	return wr.Render(event.Stream(doc, source))
}

// WriteTOC writes the table of contents macro to w, independent of any
// conversion state.
func WriteTOC(w io.Writer) error {
	return wiki.WriteTOC(w)
}

// flavorOf maps the public flavor onto the renderer's. A value outside
// the two defined flavors is a defect in the embedding application, not
// bad input, so it aborts rather than surfacing as an error.
func flavorOf(f Flavor) wiki.Flavor {
	switch f {
	case FlavorJira:
		return wiki.Jira
	case FlavorConfluence:
		return wiki.Confluence
	default:
		panic("md2wiki: unknown atlassian markup flavor " + string(f))
	}
}
