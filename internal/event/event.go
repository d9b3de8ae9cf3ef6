// Package event defines the Markdown event stream consumed by the wiki
// renderer, and the adapter that produces it from a goldmark syntax tree.
//
// Events form a closed sum: the renderer dispatches with an exhaustive
// type switch so no construct is silently dropped.
package event

// Event is one element of the forward-only stream produced by the parser
// adapter. Implementations are StartTag, EndTag, Text, InlineCode,
// SoftBreak, HardBreak, ThematicBreak, TaskMarker, and RawHTML.
type Event interface {
	isEvent()
}

// StartTag opens a structural or inline construct.
type StartTag struct {
	Tag Tag
}

// EndTag closes the most recently opened construct of the given kind.
type EndTag struct {
	Kind TagKind
}

// Text is literal document text.
type Text string

// InlineCode is the body of a code span.
type InlineCode string

// SoftBreak is an insignificant line break in the source.
type SoftBreak struct{}

// HardBreak is a forced line break.
type HardBreak struct{}

// ThematicBreak is a horizontal rule.
type ThematicBreak struct{}

// TaskMarker is a task list checkbox.
type TaskMarker struct {
	Checked bool
}

// RawHTML is a fragment chunk of raw HTML. Chunks are not guaranteed to
// be structurally balanced on their own; the renderer buffers them.
type RawHTML string

func (StartTag) isEvent()      {}
func (EndTag) isEvent()        {}
func (Text) isEvent()          {}
func (InlineCode) isEvent()    {}
func (SoftBreak) isEvent()     {}
func (HardBreak) isEvent()     {}
func (ThematicBreak) isEvent() {}
func (TaskMarker) isEvent()    {}
func (RawHTML) isEvent()       {}

// TagKind identifies a tag variant without its payload.
type TagKind int

// Tag kinds, one per Tag implementation.
const (
	KindParagraph TagKind = iota
	KindHeading
	KindBlockQuote
	KindCodeBlock
	KindList
	KindListItem
	KindTableHead
	KindTableRow
	KindTableCell
	KindEmphasis
	KindStrong
	KindStrikethrough
	KindLink
	KindImage
)

// Tag is the payload of a StartTag event.
type Tag interface {
	Kind() TagKind
}

// Paragraph is a paragraph block.
type Paragraph struct{}

// Heading is a heading block with its nominal level (1..6).
type Heading struct {
	Level int
}

// BlockQuote is a block quote.
type BlockQuote struct{}

// CodeBlock is a code block. Language is the fence's language token, or
// empty for indented blocks and bare fences.
type CodeBlock struct {
	Language string
	Fenced   bool
}

// List is an ordered or unordered list.
type List struct {
	Ordered bool
}

// ListItem is a single list item.
type ListItem struct{}

// TableHead is a table's header row.
type TableHead struct{}

// TableRow is a table body row.
type TableRow struct{}

// TableCell is a single table cell.
type TableCell struct{}

// Emphasis is emphasized (italic) inline content.
type Emphasis struct{}

// Strong is strong (bold) inline content.
type Strong struct{}

// Strikethrough is struck-through inline content.
type Strikethrough struct{}

// Link is a hyperlink; children between start and end are the link text.
type Link struct {
	Destination string
}

// Image is an image; children between start and end are the caption.
type Image struct {
	Destination string
}

func (Paragraph) Kind() TagKind     { return KindParagraph }
func (Heading) Kind() TagKind       { return KindHeading }
func (BlockQuote) Kind() TagKind    { return KindBlockQuote }
func (CodeBlock) Kind() TagKind     { return KindCodeBlock }
func (List) Kind() TagKind          { return KindList }
func (ListItem) Kind() TagKind      { return KindListItem }
func (TableHead) Kind() TagKind     { return KindTableHead }
func (TableRow) Kind() TagKind      { return KindTableRow }
func (TableCell) Kind() TagKind     { return KindTableCell }
func (Emphasis) Kind() TagKind      { return KindEmphasis }
func (Strong) Kind() TagKind        { return KindStrong }
func (Strikethrough) Kind() TagKind { return KindStrikethrough }
func (Link) Kind() TagKind          { return KindLink }
func (Image) Kind() TagKind         { return KindImage }
