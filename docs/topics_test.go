package docs

import (
	"bufio"
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"testing"

	"github.com/etnz/ledger"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

func TestTopics(t *testing.T) {
	// Every topic listed in readme.md can be loaded, and every .md file is listed in readme.md.
	file, err := os.Open("readme.md")
	if err != nil {
		t.Fatalf("failed to open readme.md: %v", err)
	}
	defer file.Close()

	var topicsInReadme []string
	scanner := bufio.NewScanner(file)
	topicRegex := regexp.MustCompile(`^\*\s+([^:]+):.*$`)
	for scanner.Scan() {
		if matches := topicRegex.FindStringSubmatch(scanner.Text()); len(matches) > 1 {
			topicsInReadme = append(topicsInReadme, strings.TrimSpace(matches[1]))
		}
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("error scanning readme.md: %v", err)
	}

	for _, topic := range topicsInReadme {
		t.Run("load_"+topic, func(t *testing.T) {
			if _, err := GetTopic(topic); err != nil {
				t.Errorf("failed to get topic %q: %v", topic, err)
			}
		})
	}

	all, err := GetAllTopics()
	if err != nil {
		t.Fatalf("GetAllTopics() failed: %v", err)
	}
	for _, topic := range all {
		if !slices.Contains(topicsInReadme, topic) {
			t.Errorf("topic %q is not listed in docs/readme.md", topic)
		}
	}
}

func TestGetTopics(t *testing.T) {
	all, err := GetAllTopics()
	if err != nil {
		t.Fatalf("GetAllTopics() failed: %v", err)
	}
	if !slices.IsSorted(all) || slices.Contains(all, "readme") {
		t.Errorf("GetAllTopics() = %q, want sorted topics without readme", all)
	}

	content, err := GetTopics("*")
	if err != nil {
		t.Fatalf("GetTopics(*) failed: %v", err)
	}
	for _, topic := range all {
		want, _ := GetTopic(topic)
		if !strings.Contains(content, want) {
			t.Errorf("GetTopics(*) does not contain topic %q", topic)
		}
	}

	if _, err := GetTopics("readme", "no-such-topic"); err == nil {
		t.Errorf("GetTopics() with an unknown topic succeeded")
	}
}

// jsonlBlocks returns the content of the fenced code blocks tagged "jsonl" in a markdown file.
func jsonlBlocks(t *testing.T, file string) []string {
	t.Helper()
	content, err := os.ReadFile(file)
	if err != nil {
		t.Fatalf("failed to read %s: %v", file, err)
	}
	root := goldmark.DefaultParser().Parse(text.NewReader(content))

	var blocks []string
	ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		fcb, ok := n.(*ast.FencedCodeBlock)
		if !entering || !ok || string(fcb.Language(content)) != "jsonl" {
			return ast.WalkContinue, nil
		}
		var b bytes.Buffer
		for i := 0; i < fcb.Lines().Len(); i++ {
			line := fcb.Lines().At(i)
			b.Write(line.Value(content))
		}
		blocks = append(blocks, b.String())
		return ast.WalkContinue, nil
	})
	return blocks
}

func TestLedgerExamples(t *testing.T) {
	// Ledger examples in the documentation are valid ledgers.
	files, err := filepath.Glob("*.md")
	if err != nil {
		t.Fatal(err)
	}
	count := 0
	for _, file := range files {
		for i, block := range jsonlBlocks(t, file) {
			count++
			events, err := ledger.DecodeEvents(strings.NewReader(block))
			if err != nil {
				t.Errorf("%s: block %d: %v", file, i, err)
				continue
			}
			if _, err := ledger.TryFromSequence(events); err != nil {
				t.Errorf("%s: block %d: %v", file, i, err)
			}
		}
	}
	if count == 0 {
		t.Errorf("no ledger example found")
	}
}
