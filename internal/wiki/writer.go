// Package wiki renders a Markdown event stream as Atlassian wiki markup.
//
// The Writer is a single-pass, stateful transducer: it consumes each
// event exactly once and writes markup text incrementally to its sink.
// A small amount of state (list markers, table position, heading
// suppression, buffered raw HTML) carries context between events.
package wiki

import (
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/tmatias/go-md2wiki/internal/event"
)

// Flavor selects which Atlassian markup dialect code fences use.
type Flavor int

// Supported markup flavors.
const (
	Jira Flavor = iota
	Confluence
)

// Options configures a Writer.
type Options struct {
	// HeadingShift is added to every heading's nominal level. Headings
	// shifted above 6 render as plain text; headings shifted to 0 or
	// below are dropped entirely.
	HeadingShift int
	Flavor       Flavor
}

// Writer translates Markdown events into wiki markup.
// A Writer is good for a single Render run and is not safe for
// concurrent use.
type Writer struct {
	w io.Writer

	// endNewline tracks whether the last write ended in a newline, so
	// list items and headings don't produce doubled blank lines.
	endNewline bool
	// tableHeader is true while rendering the table's header row.
	tableHeader bool
	// bulletStack holds one marker per open list: '#' ordered, '*'
	// unordered. Its concatenation is the current item prefix.
	bulletStack []byte
	// pendingCodeSpace forces a space after inline code's closing
	// braces unless the following text already provides one.
	pendingCodeSpace bool
	headingShift     int
	// suppressed drops all writes while inside a heading whose shifted
	// level is zero or negative.
	suppressed bool
	flavor     Flavor
	// htmlBuf accumulates raw HTML chunks until they form a balanced
	// fragment.
	htmlBuf strings.Builder
	// destURL holds a link destination between its start and end tags;
	// the link text renders first.
	destURL string
}

// NewWriter returns a Writer that renders to w.
func NewWriter(w io.Writer, opts Options) *Writer {
	return &Writer{
		w:            w,
		headingShift: opts.HeadingShift,
		flavor:       opts.Flavor,
	}
}

// WriteTOC emits the table of contents macro. It is independent of any
// renderer state and may be called before a Render run.
func WriteTOC(w io.Writer) error {
	_, err := io.WriteString(w, "{toc}\n\n")
	return err
}

// Render consumes the entire event sequence and writes markup to the
// sink. It returns the first write error encountered; a raw HTML
// fragment still unbalanced when the stream ends is silently dropped.
func (wr *Writer) Render(events iter.Seq[event.Event]) error {
	for ev := range events {
		if err := wr.handle(ev); err != nil {
			return err
		}
	}
	return nil
}

func (wr *Writer) handle(ev event.Event) error {
	switch ev := ev.(type) {
	case event.StartTag:
		return wr.startTag(ev.Tag)
	case event.EndTag:
		return wr.endTag(ev.Kind)
	case event.Text:
		if wr.pendingCodeSpace {
			wr.pendingCodeSpace = false
			if !strings.HasPrefix(string(ev), " ") {
				if err := wr.write(" "); err != nil {
					return err
				}
			}
		}
		return wr.write(string(ev))
	case event.InlineCode:
		if err := wr.write("{{"); err != nil {
			return err
		}
		if err := wr.writeEscaped(string(ev)); err != nil {
			return err
		}
		if err := wr.write("}}"); err != nil {
			return err
		}
		wr.pendingCodeSpace = true
		return nil
	case event.SoftBreak:
		// A Markdown soft break is not a paragraph break; the wiki
		// renderer would treat a newline here as one.
		return wr.write(" ")
	case event.HardBreak:
		return wr.writeNewline()
	case event.ThematicBreak:
		if err := wr.writeNewline(); err != nil {
			return err
		}
		if err := wr.write("----"); err != nil {
			return err
		}
		return wr.writeNewline()
	case event.TaskMarker:
		if err := wr.writeNewline(); err != nil {
			return err
		}
		if ev.Checked {
			return wr.write("[x] ")
		}
		return wr.write("[] ")
	case event.RawHTML:
		return wr.appendRawHTML(string(ev))
	default:
		panic(fmt.Sprintf("wiki: unhandled event %T", ev))
	}
}

func (wr *Writer) startTag(tag event.Tag) error {
	switch t := tag.(type) {
	case event.Paragraph:
		return wr.writeNewline()
	case event.Heading:
		if wr.endNewline {
			if err := wr.writeNewline(); err != nil {
				return err
			}
		}
		shifted := t.Level + wr.headingShift
		switch {
		case shifted <= 0:
			// The whole heading vanishes; drop every write until the
			// matching end tag.
			wr.suppressed = true
			return nil
		case shifted <= 6:
			return wr.write(fmt.Sprintf("h%d. ", shifted))
		default:
			// Past h6 the heading demotes to plain text.
			return nil
		}
	case event.BlockQuote:
		if err := wr.writeNewline(); err != nil {
			return err
		}
		return wr.write("{quote}")
	case event.CodeBlock:
		if err := wr.writeNewline(); err != nil {
			return err
		}
		if err := wr.write("{code"); err != nil {
			return err
		}
		if t.Fenced && t.Language != "" {
			lang := ResolveLang(t.Language)
			switch wr.flavor {
			case Jira:
				if err := wr.write(":" + lang); err != nil {
					return err
				}
			case Confluence:
				if err := wr.write(":language=" + lang); err != nil {
					return err
				}
			default:
				panic("wiki: unknown atlassian markup flavor")
			}
		}
		if err := wr.write("}"); err != nil {
			return err
		}
		return wr.writeNewline()
	case event.List:
		if t.Ordered {
			wr.bulletStack = append(wr.bulletStack, '#')
		} else {
			wr.bulletStack = append(wr.bulletStack, '*')
		}
		return wr.writeNewline()
	case event.ListItem:
		if !wr.endNewline {
			if err := wr.writeNewline(); err != nil {
				return err
			}
		}
		return wr.write(string(wr.bulletStack) + " ")
	case event.TableHead:
		wr.tableHeader = true
		if err := wr.writeNewline(); err != nil {
			return err
		}
		return wr.write("||")
	case event.TableRow:
		if wr.tableHeader {
			return wr.write("||")
		}
		return wr.write("|")
	case event.TableCell:
		// Cells are closed, not opened, by their delimiter; the row
		// start delimiter opens the first cell.
		return nil
	case event.Emphasis:
		return wr.write("_")
	case event.Strong:
		return wr.write("*")
	case event.Strikethrough:
		return wr.write("-")
	case event.Link:
		wr.destURL = t.Destination
		return wr.write("[")
	case event.Image:
		return wr.write(`!` + t.Destination + `|title="`)
	default:
		panic(fmt.Sprintf("wiki: unhandled start tag %T", tag))
	}
}

func (wr *Writer) endTag(kind event.TagKind) error {
	switch kind {
	case event.KindParagraph:
		return wr.writeNewline()
	case event.KindHeading:
		if wr.suppressed {
			wr.suppressed = false
			return nil
		}
		return wr.writeNewline()
	case event.KindBlockQuote:
		if err := wr.write("{quote}"); err != nil {
			return err
		}
		return wr.writeNewline()
	case event.KindCodeBlock:
		if err := wr.write("{code}"); err != nil {
			return err
		}
		return wr.writeNewline()
	case event.KindList:
		wr.bulletStack = wr.bulletStack[:len(wr.bulletStack)-1]
		if len(wr.bulletStack) == 0 {
			return wr.writeNewline()
		}
		return nil
	case event.KindListItem:
		return nil
	case event.KindTableHead:
		wr.tableHeader = false
		return wr.writeNewline()
	case event.KindTableRow:
		return wr.writeNewline()
	case event.KindTableCell:
		if wr.tableHeader {
			return wr.write("||")
		}
		return wr.write("|")
	case event.KindEmphasis:
		return wr.write("_")
	case event.KindStrong:
		return wr.write("*")
	case event.KindStrikethrough:
		return wr.write("-")
	case event.KindLink:
		return wr.write("|" + wr.destURL + "]")
	case event.KindImage:
		return wr.write(`",alt=""!`)
	default:
		panic(fmt.Sprintf("wiki: unhandled end tag kind %d", kind))
	}
}

// write sends s to the sink unless output is suppressed, and records
// whether the write ended in a newline.
func (wr *Writer) write(s string) error {
	if wr.suppressed {
		return nil
	}
	wr.endNewline = strings.HasSuffix(s, "\n")
	_, err := io.WriteString(wr.w, s)
	return err
}

func (wr *Writer) writeNewline() error {
	return wr.write("\n")
}

func (wr *Writer) writeEscaped(s string) error {
	return wr.write(Escape(s))
}
