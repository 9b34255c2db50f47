package inline

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/cockroachdb/datadriven"
)

// TestEditor runs the datadriven editor scenarios in testdata. Each file
// drives a single editor through interactive sessions:
//
//	new [width=N] [prompt=P] [multiline] [complete=(w,...)] [history=(h,...)]
//	    creates a fresh editor
//	read
//	    feeds the input block (with <Key> placeholders) through a full
//	    interactive session and reports the committed line, the cursor, and
//	    the history
func TestEditor(t *testing.T) {
	inputRE := regexp.MustCompile(`<[^>]*>`)
	inputReplacements := map[string]string{
		"<Backspace>":   "\x7f",
		"<Control-c>":   "\x03",
		"<Control-g>":   "\x07",
		"<Control-k>":   "\x0b",
		"<Control-l>":   "\x0c",
		"<Control-n>":   "\x0e",
		"<Control-p>":   "\x10",
		"<Control-t>":   "\x14",
		"<Control-u>":   "\x15",
		"<Control-v>":   "\x16",
		"<Control-x>":   "\x18",
		"<Control-y>":   "\x19",
		"<Down>":        "\x1b[B",
		"<End>":         "\x1b[F",
		"<Enter>":       "\r",
		"<Home>":        "\x1b[H",
		"<Left>":        "\x1b[D",
		"<Meta-w>":      "\x1bw",
		"<Right>":       "\x1b[C",
		"<Shift-Left>":  "\x1b[1;2D",
		"<Shift-Right>": "\x1b[1;2C",
		"<Shift-Tab>":   "\x1b[Z",
		"<Tab>":         "\t",
		"<Up>":          "\x1b[A",
	}
	inputReplacementFunc := func(src string) string {
		if r, ok := inputReplacements[src]; ok {
			return r
		}
		return src
	}

	datadriven.Walk(t, "testdata", func(t *testing.T, path string) {
		var e *Editor
		datadriven.RunTest(t, path,
			func(t *testing.T, td *datadriven.TestData) string {
				switch td.Cmd {
				case "new":
					prompt := "> "
					width := 40
					multiline := false
					var completions, history []string
					for _, arg := range td.CmdArgs {
						switch arg.Key {
						case "prompt":
							prompt = arg.Vals[0]
						case "width":
							n, err := strconv.Atoi(arg.Vals[0])
							if err != nil {
								td.Fatalf(t, "width: %v", err)
							}
							width = n
						case "multiline":
							multiline = true
						case "complete":
							completions = arg.Vals
						case "history":
							history = arg.Vals
						default:
							td.Fatalf(t, "unknown argument %q", arg.Key)
						}
					}
					e = New(prompt,
						WithInput(strings.NewReader("")),
						WithOutput(io.Discard),
						WithSize(width))
					if multiline {
						e.Multiline(unbalancedParens, "..> ")
					}
					if len(completions) > 0 {
						e.Autocomplete(wordCompleter(completions))
					}
					for _, h := range history {
						e.AddHistory(h)
					}
					return ""

				case "read":
					if e == nil {
						td.Fatalf(t, "no editor; use new first")
					}
					input := inputRE.ReplaceAllStringFunc(td.Input, inputReplacementFunc)
					line, err := run(t, e, input)

					var sb strings.Builder
					fmt.Fprintf(&sb, "line: %q\n", line)
					if err != nil {
						fmt.Fprintf(&sb, "err: %v\n", err)
					}
					fmt.Fprintf(&sb, "cursor: %d\n", e.text.cursor)
					fmt.Fprintf(&sb, "history: %q\n", e.history.items)
					return sb.String()
				}
				td.Fatalf(t, "unknown command %q", td.Cmd)
				return ""
			})
	})
}
