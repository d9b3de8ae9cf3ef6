package wiki

import (
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// voidElements never open scope, so they don't count toward fragment
// balance.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"source": true, "track": true, "wbr": true,
}

// appendRawHTML buffers a raw HTML chunk and, once the buffered text
// forms a structurally balanced fragment, translates it to markup and
// clears the buffer. An unbalanced fragment stays buffered; if the
// stream ends before it balances it is dropped without output.
func (wr *Writer) appendRawHTML(chunk string) error {
	wr.htmlBuf.WriteString(chunk)
	fragment := wr.htmlBuf.String()
	if !fragmentBalanced(fragment) {
		return nil
	}
	nodes, err := parseFragment(fragment)
	if err != nil {
		return nil
	}
	wr.htmlBuf.Reset()
	for _, n := range nodes {
		if err := wr.translateHTML(n); err != nil {
			return err
		}
	}
	return nil
}

// fragmentBalanced reports whether every opened element in s is closed.
// x/net/html is error-tolerant and will happily parse a half fragment,
// so balance has to be checked up front with a plain tokenizer scan.
func fragmentBalanced(s string) bool {
	if strings.LastIndexByte(s, '<') > strings.LastIndexByte(s, '>') {
		// Dangling partial tag; more chunks must follow.
		return false
	}
	z := html.NewTokenizer(strings.NewReader(s))
	depth := 0
	for {
		switch z.Next() {
		case html.ErrorToken:
			return z.Err() == io.EOF && depth == 0
		case html.StartTagToken:
			name, _ := z.TagName()
			if !voidElements[string(name)] {
				depth++
			}
		case html.EndTagToken:
			depth--
			if depth < 0 {
				return false
			}
		}
	}
}

// parseFragment parses s as body content and returns its top level
// nodes.
func parseFragment(s string) ([]*html.Node, error) {
	ctx := &html.Node{
		Type:     html.ElementNode,
		Data:     "body",
		DataAtom: atom.Body,
	}
	return html.ParseFragment(strings.NewReader(s), ctx)
}

// htmlWork is one step of the iterative fragment walk. enter steps
// visit a node; exit steps run after the node's subtree and write the
// construct's closing text.
type htmlWork struct {
	node *html.Node
	exit bool
}

// translateHTML walks a balanced fragment depth-first in document order
// and writes the markup for the constructs it recognizes. details
// becomes an expand macro, summary its title; every other element is a
// transparent container.
func (wr *Writer) translateHTML(root *html.Node) error {
	stack := []htmlWork{{node: root}}
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := it.node

		if it.exit {
			switch n.Data {
			case "details":
				if err := wr.write("\n{expand}\n"); err != nil {
					return err
				}
			case "summary":
				if err := wr.write("}\n"); err != nil {
					return err
				}
			}
			continue
		}

		switch n.Type {
		case html.ElementNode:
			switch n.Data {
			case "details":
				if err := wr.write("{expand"); err != nil {
					return err
				}
				// With a summary child the title handler writes the
				// closing brace; without one it closes here.
				if !hasSummaryChild(n) {
					if err := wr.write("}\n"); err != nil {
						return err
					}
				}
				stack = append(stack, htmlWork{node: n, exit: true})
				pushChildren(&stack, n)
			case "summary":
				if err := wr.write("|title="); err != nil {
					return err
				}
				stack = append(stack, htmlWork{node: n, exit: true})
				pushChildren(&stack, n)
			default:
				pushChildren(&stack, n)
			}
		case html.TextNode:
			// Indented HTML carries layout noise the macro must not.
			text := strings.TrimLeft(n.Data, "\n")
			text = strings.TrimLeft(text, " ")
			if err := wr.writeEscaped(text); err != nil {
				return err
			}
		case html.DocumentNode:
			pushChildren(&stack, n)
		default:
			// Comments and doctypes produce no output.
		}
	}
	return nil
}

func hasSummaryChild(n *html.Node) bool {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.Data == "summary" {
			return true
		}
	}
	return false
}

// pushChildren schedules n's children so they pop in document order.
func pushChildren(stack *[]htmlWork, n *html.Node) {
	var children []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		children = append(children, c)
	}
	for i := len(children) - 1; i >= 0; i-- {
		*stack = append(*stack, htmlWork{node: children[i]})
	}
}
