package event

import (
	"iter"
	"strings"

	"github.com/yuin/goldmark/ast"
	east "github.com/yuin/goldmark/extension/ast"
)

// Stream adapts a parsed goldmark document into a lazily produced,
// forward-only event sequence. The source slice must be the bytes the
// document was parsed from.
func Stream(doc ast.Node, source []byte) iter.Seq[Event] {
	return func(yield func(Event) bool) {
		emit(doc, source, yield)
	}
}

// emit yields the events for n and its subtree in document order.
// It returns false once the consumer stops.
func emit(n ast.Node, source []byte, yield func(Event) bool) bool {
	switch t := n.(type) {
	case *ast.Document:
		return emitChildren(n, source, yield)

	case *ast.TextBlock:
		// Tight list items wrap their content in a text block that has
		// no paragraph of its own.
		return emitChildren(n, source, yield)

	case *ast.Paragraph:
		return emitContainer(n, source, yield, Paragraph{})

	case *ast.Heading:
		return emitContainer(n, source, yield, Heading{Level: t.Level})

	case *ast.Blockquote:
		return emitContainer(n, source, yield, BlockQuote{})

	case *ast.FencedCodeBlock:
		var lang string
		if l := t.Language(source); l != nil {
			lang = string(l)
		}
		return emitCodeBlock(n, source, yield, CodeBlock{Language: lang, Fenced: true})

	case *ast.CodeBlock:
		return emitCodeBlock(n, source, yield, CodeBlock{})

	case *ast.List:
		return emitContainer(n, source, yield, List{Ordered: t.IsOrdered()})

	case *ast.ListItem:
		return emitContainer(n, source, yield, ListItem{})

	case *east.Table:
		// The wiki renderer derives all table structure from rows and
		// cells; the table node itself carries only alignment, which
		// Jira/Confluence markup cannot express.
		return emitChildren(n, source, yield)

	case *east.TableHeader:
		return emitContainer(n, source, yield, TableHead{})

	case *east.TableRow:
		return emitContainer(n, source, yield, TableRow{})

	case *east.TableCell:
		return emitContainer(n, source, yield, TableCell{})

	case *ast.Emphasis:
		if t.Level >= 2 {
			return emitContainer(n, source, yield, Strong{})
		}
		return emitContainer(n, source, yield, Emphasis{})

	case *east.Strikethrough:
		return emitContainer(n, source, yield, Strikethrough{})

	case *ast.Link:
		return emitContainer(n, source, yield, Link{Destination: string(t.Destination)})

	case *ast.AutoLink:
		url := string(t.URL(source))
		label := string(t.Label(source))
		if t.AutoLinkType == ast.AutoLinkEmail && !strings.HasPrefix(url, "mailto:") {
			url = "mailto:" + url
		}
		if !yield(StartTag{Tag: Link{Destination: url}}) {
			return false
		}
		if !yield(Text(label)) {
			return false
		}
		return yield(EndTag{Kind: KindLink})

	case *ast.Image:
		return emitContainer(n, source, yield, Image{Destination: string(t.Destination)})

	case *ast.CodeSpan:
		return yield(InlineCode(codeSpanText(n, source)))

	case *ast.Text:
		if !yield(Text(t.Segment.Value(source))) {
			return false
		}
		switch {
		case t.HardLineBreak():
			return yield(HardBreak{})
		case t.SoftLineBreak():
			return yield(SoftBreak{})
		}
		return true

	case *ast.String:
		return yield(Text(t.Value))

	case *ast.ThematicBreak:
		return yield(ThematicBreak{})

	case *east.TaskCheckBox:
		return yield(TaskMarker{Checked: t.IsChecked})

	case *ast.RawHTML:
		for i := 0; i < t.Segments.Len(); i++ {
			seg := t.Segments.At(i)
			if !yield(RawHTML(seg.Value(source))) {
				return false
			}
		}
		return true

	case *ast.HTMLBlock:
		for i := 0; i < n.Lines().Len(); i++ {
			line := n.Lines().At(i)
			if !yield(RawHTML(line.Value(source))) {
				return false
			}
		}
		if t.HasClosure() {
			return yield(RawHTML(t.ClosureLine.Value(source)))
		}
		return true

	case *east.FootnoteList, *east.Footnote, *east.FootnoteLink, *east.FootnoteBacklink:
		// Footnotes have no wiki markup counterpart; drop the subtree.
		return true

	default:
		return emitChildren(n, source, yield)
	}
}

// emitContainer wraps the node's children in start and end tag events.
func emitContainer(n ast.Node, source []byte, yield func(Event) bool, tag Tag) bool {
	if !yield(StartTag{Tag: tag}) {
		return false
	}
	if !emitChildren(n, source, yield) {
		return false
	}
	return yield(EndTag{Kind: tag.Kind()})
}

// emitCodeBlock yields the block's raw lines as text between its tags.
func emitCodeBlock(n ast.Node, source []byte, yield func(Event) bool, tag CodeBlock) bool {
	if !yield(StartTag{Tag: tag}) {
		return false
	}
	for i := 0; i < n.Lines().Len(); i++ {
		line := n.Lines().At(i)
		if !yield(Text(line.Value(source))) {
			return false
		}
	}
	return yield(EndTag{Kind: KindCodeBlock})
}

func emitChildren(n ast.Node, source []byte, yield func(Event) bool) bool {
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if !emit(c, source, yield) {
			return false
		}
	}
	return true
}

// codeSpanText concatenates the raw segments of a code span.
func codeSpanText(n ast.Node, source []byte) string {
	var b strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			b.Write(t.Segment.Value(source))
		}
	}
	return b.String()
}
