package md2wiki

import (
	"context"
	"errors"
	"strings"
	"testing"
)

// convert runs a full Markdown-to-markup conversion.
func convert(t *testing.T, input Input, opts ...Option) string {
	t.Helper()
	svc := New(opts...)
	out, err := svc.Convert(context.Background(), input)
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	return out
}

func TestConvert(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input Input
		opts  []Option
		want  string
	}{
		{
			name:  "heading level one",
			input: Input{Markdown: "# hello world"},
			want:  "h1. hello world\n",
		},
		{
			name:  "heading level two",
			input: Input{Markdown: "## hello world"},
			want:  "h2. hello world\n",
		},
		{
			name:  "blockquote",
			input: Input{Markdown: "> hello blockquote"},
			want:  "\n{quote}\nhello blockquote\n{quote}\n",
		},
		{
			name:  "codeblock jira",
			input: Input{Markdown: "```java\nSystem.out.println(\"hello world\")\n```"},
			want:  "\n{code:java}\nSystem.out.println(\"hello world\")\n{code}\n",
		},
		{
			name:  "codeblock confluence",
			input: Input{Markdown: "```java\nSystem.out.println(\"hello world\")\n```"},
			opts:  []Option{WithFlavor(FlavorConfluence)},
			want:  "\n{code:language=java}\nSystem.out.println(\"hello world\")\n{code}\n",
		},
		{
			name:  "console codeblock maps to bash",
			input: Input{Markdown: "```console\n$ ./console-test.sh\nshould be bash\n```"},
			want:  "\n{code:bash}\n$ ./console-test.sh\nshould be bash\n{code}\n",
		},
		{
			name:  "unknown codeblock maps to text",
			input: Input{Markdown: "```unknown\nshould be text\n```"},
			want:  "\n{code:text}\nshould be text\n{code}\n",
		},
		{
			name:  "inline code escapes markup",
			input: Input{Markdown: "`inline code with an asterisk *` like `rm -rf ./*.extension`"},
			want:  "\n{{inline code with an asterisk \\*}} like {{rm -rf ./\\*.extension}}\n",
		},
		{
			name:  "inline code leading hyphen",
			input: Input{Markdown: "a flag like `-r`"},
			want:  "\na flag like {{\\-r}}\n",
		},
		{
			name:  "unordered list",
			input: Input{Markdown: "* item one\n* item two\n* item three"},
			want:  "\n* item one\n* item two\n* item three\n",
		},
		{
			name:  "nested unordered list",
			input: Input{Markdown: "* item one\n* item two\n\t* nested item one\n\t* nested item two\n* item three"},
			want:  "\n* item one\n* item two\n** nested item one\n** nested item two\n* item three\n",
		},
		{
			name:  "ordered nested in unordered list",
			input: Input{Markdown: "* item one\n* item two\n\t1. nested item one\n\t2. nested item two\n* item three"},
			want:  "\n* item one\n* item two\n*# nested item one\n*# nested item two\n* item three\n",
		},
		{
			name:  "ordered list",
			input: Input{Markdown: "1. item one\n2. item two\n3. item three"},
			want:  "\n# item one\n# item two\n# item three\n",
		},
		{
			name:  "table",
			input: Input{Markdown: "| header 1 | header 2 |\n|----------|----------|\n| item 1   | item 2   |"},
			want:  "\n||header 1||header 2||\n|item 1|item 2|\n",
		},
		{
			name:  "emphasis",
			input: Input{Markdown: "this is _italics_ in a string"},
			want:  "\nthis is _italics_ in a string\n",
		},
		{
			name:  "bold",
			input: Input{Markdown: "this is **bold** in a string"},
			want:  "\nthis is *bold* in a string\n",
		},
		{
			name:  "bold italics",
			input: Input{Markdown: "this is _**bold italics**_ in a string"},
			want:  "\nthis is _*bold italics*_ in a string\n",
		},
		{
			name:  "strikethrough",
			input: Input{Markdown: "this is ~~strikethrough~~ in a string"},
			want:  "\nthis is -strikethrough- in a string\n",
		},
		{
			name:  "link",
			input: Input{Markdown: "[link](https://example.com)"},
			want:  "\n[link|https://example.com]\n",
		},
		{
			name:  "image",
			input: Input{Markdown: "![img title](https://example.com/image.jpg)"},
			want:  "\n!https://example.com/image.jpg|title=\"img title\",alt=\"\"!\n",
		},
		{
			name:  "inline code",
			input: Input{Markdown: "some `inline code` here"},
			want:  "\nsome {{inline code}} here\n",
		},
		{
			name:  "inline code trailing char gets a space",
			input: Input{Markdown: "`inline`s content"},
			want:  "\n{{inline}} s content\n",
		},
		{
			name:  "horizontal rule",
			input: Input{Markdown: "---"},
			want:  "\n----\n",
		},
		{
			name:  "softbreak is a space",
			input: Input{Markdown: "new\nline"},
			want:  "\nnew line\n",
		},
		{
			name:  "hardbreak is a newline",
			input: Input{Markdown: "new  \nline"},
			want:  "\nnew\nline\n",
		},
		{
			name:  "heading shifted up",
			input: Input{Markdown: "# hello world", HeadingShift: 1},
			want:  "h2. hello world\n",
		},
		{
			name:  "heading shifted down",
			input: Input{Markdown: "## hello world", HeadingShift: -1},
			want:  "h1. hello world\n",
		},
		{
			name:  "heading shifted to zero disappears",
			input: Input{Markdown: "# hello world", HeadingShift: -1},
			want:  "",
		},
		{
			name:  "heading shifted past six demotes to text",
			input: Input{Markdown: "###### hello world", HeadingShift: 1},
			want:  "hello world\n",
		},
		{
			name:  "suppressed heading with inline code",
			input: Input{Markdown: "# hello world `inline code`", HeadingShift: -1},
			want:  "",
		},
		{
			name:  "details without summary",
			input: Input{Markdown: "<details>Content</details>"},
			opts:  []Option{WithFlavor(FlavorConfluence)},
			want:  "{expand}\nContent\n{expand}\n",
		},
		{
			name:  "details with summary",
			input: Input{Markdown: "<details><summary>Summary</summary>Content</details>"},
			opts:  []Option{WithFlavor(FlavorConfluence)},
			want:  "{expand|title=Summary}\nContent\n{expand}\n",
		},
		{
			name:  "toc macro prepended",
			input: Input{Markdown: "# hello world", TOC: true},
			want:  "{toc}\n\nh1. hello world\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := convert(t, tt.input, tt.opts...); got != tt.want {
				t.Errorf("Convert() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestConvert_EmptyMarkdown(t *testing.T) {
	t.Parallel()

	svc := New()
	_, err := svc.Convert(context.Background(), Input{})
	if !errors.Is(err, ErrEmptyMarkdown) {
		t.Fatalf("Convert() error = %v, want %v", err, ErrEmptyMarkdown)
	}
}

func TestConvert_CanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	svc := New()
	_, err := svc.Convert(ctx, Input{Markdown: "# hi"})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Convert() error = %v, want %v", err, context.Canceled)
	}
}

func TestConvert_Determinism(t *testing.T) {
	t.Parallel()

	input := Input{Markdown: "# title\n\npara with `code`s\n\n* a\n* b", TOC: true}
	first := convert(t, input)
	for i := 0; i < 5; i++ {
		if got := convert(t, input); got != first {
			t.Fatalf("run %d produced %q, first run produced %q", i, got, first)
		}
	}
}

func TestWriteTOC(t *testing.T) {
	t.Parallel()

	var b strings.Builder
	if err := WriteTOC(&b); err != nil {
		t.Fatalf("WriteTOC() error = %v", err)
	}
	if got := b.String(); got != "{toc}\n\n" {
		t.Errorf("WriteTOC() wrote %q, want %q", got, "{toc}\n\n")
	}
}

func TestParseFlavor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    Flavor
		wantErr bool
	}{
		{"jira", FlavorJira, false},
		{"j", FlavorJira, false},
		{"JIRA", FlavorJira, false},
		{"confluence", FlavorConfluence, false},
		{"c", FlavorConfluence, false},
		{"wiki", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := ParseFlavor(tt.input)
		if tt.wantErr {
			if !errors.Is(err, ErrUnknownFlavor) {
				t.Errorf("ParseFlavor(%q) error = %v, want %v", tt.input, err, ErrUnknownFlavor)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseFlavor(%q) error = %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseFlavor(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestFlavorOf_UnknownPanics(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for invalid flavor")
		}
	}()
	flavorOf(Flavor("wiki"))
}
