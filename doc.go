// Package md2wiki converts Markdown documents to Atlassian wiki markup.
//
// # Quick Start
//
// Create a service and convert:
//
//	svc := md2wiki.New(md2wiki.WithFlavor(md2wiki.FlavorConfluence))
//	out, err := svc.Convert(ctx, md2wiki.Input{
//	    Markdown: "# Hello\n\nWorld",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Print(out)
//
// # Conversion Pipeline
//
// The conversion process follows these stages:
//
//  1. Markdown parsing via Goldmark (GFM tables, strikethrough, task
//     lists, plus footnotes, which have no wiki counterpart and are
//     dropped)
//  2. A forward-only event stream derived from the syntax tree
//  3. A single-pass renderer that turns events into markup, including
//     an incremental translator for raw <details>/<summary> HTML
//
// # Flavors
//
// Jira and Confluence differ only in code fence syntax: {code:bash}
// versus {code:language=bash}. Language tokens unknown to Atlassian's
// highlighter fall back to "text".
//
// # Heading Shift
//
// Input.HeadingShift moves every heading by a fixed amount. Headings
// shifted past h6 render as plain text; headings shifted to zero or
// below are removed from the output together with their text.
package md2wiki
