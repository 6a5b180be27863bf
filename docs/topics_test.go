package docs

import (
	"bufio"
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/etnz/paydown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

func TestTopics(t *testing.T) {
	// Every topic listed in readme.md loads, and every topic file is listed.
	file, err := os.Open("readme.md")
	require.NoError(t, err)
	defer file.Close()

	var listed []string
	topicRegex := regexp.MustCompile(`^\*\s+([^:]+):.*$`)
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if m := topicRegex.FindStringSubmatch(scanner.Text()); len(m) > 1 {
			listed = append(listed, strings.TrimSpace(m[1]))
		}
	}
	require.NoError(t, scanner.Err())

	for _, topic := range listed {
		_, err := GetTopic(topic)
		assert.NoError(t, err, "topic %q", topic)
	}

	all, err := GetAllTopics()
	require.NoError(t, err)
	assert.ElementsMatch(t, all, listed)
}

func TestGetTopics(t *testing.T) {
	all, err := GetTopic("*")
	require.NoError(t, err)
	assert.Contains(t, all, "# Loan file")
	assert.Contains(t, all, "# Conventions")
	assert.NotContains(t, all, "Available topics")

	_, err = GetTopic("nope")
	assert.Error(t, err)
}

func TestLoanFileExamples(t *testing.T) {
	files, err := filepath.Glob("*.md")
	require.NoError(t, err)

	n := 0
	for _, file := range files {
		for _, b := range jsonBlocks(t, file) {
			n++
			terms, events, err := paydown.DecodeLoan(bytes.NewReader(b.content))
			require.NoError(t, err, "%s:%d", file, b.line)
			_, err = paydown.Calculate(terms, events)
			assert.NoError(t, err, "%s:%d", file, b.line)
		}
	}
	assert.NotZero(t, n, "no json example found")
}

// block is a fenced code block of a markdown file.
type block struct {
	content []byte
	line    int
}

// jsonBlocks parses a markdown file and returns its json code blocks.
func jsonBlocks(t *testing.T, file string) []block {
	t.Helper()
	content, err := os.ReadFile(file)
	require.NoError(t, err)

	root := goldmark.DefaultParser().Parse(text.NewReader(content))
	var blocks []block
	ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		fcb, ok := n.(*ast.FencedCodeBlock)
		if !entering || !ok || fcb.Info == nil {
			return ast.WalkContinue, nil
		}
		if string(fcb.Language(content)) != "json" {
			return ast.WalkContinue, nil
		}
		var b bytes.Buffer
		for i := 0; i < fcb.Lines().Len(); i++ {
			line := fcb.Lines().At(i)
			b.Write(line.Value(content))
		}
		blocks = append(blocks, block{content: b.Bytes(), line: lineNumber(content, fcb.Info.Segment.Start)})
		return ast.WalkContinue, nil
	})
	return blocks
}

// lineNumber computes the line number of an offset in source.
func lineNumber(source []byte, offset int) int {
	return bytes.Count(source[:offset], []byte{'\n'}) + 1
}
