package docs

import (
	"bufio"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"testing"

	"github.com/etnz/ladder/config"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

func TestTopics(t *testing.T) {
	// Every topic listed in readme.md can be loaded, and every topic is listed.
	file, err := os.Open("readme.md")
	if err != nil {
		t.Fatalf("failed to open readme.md: %v", err)
	}
	defer file.Close()

	var listed []string
	scanner := bufio.NewScanner(file)
	topicRegex := regexp.MustCompile(`^\*\s+([^:]+):.*$`)
	for scanner.Scan() {
		if matches := topicRegex.FindStringSubmatch(scanner.Text()); len(matches) > 1 {
			listed = append(listed, strings.TrimSpace(matches[1]))
		}
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("error scanning readme.md: %v", err)
	}

	for _, topic := range listed {
		if _, err := Topic(topic); err != nil {
			t.Errorf("failed to get topic %q: %v", topic, err)
		}
	}

	all, err := AllTopics()
	if err != nil {
		t.Fatalf("AllTopics() failed: %v", err)
	}
	for _, topic := range all {
		if !slices.Contains(listed, topic) {
			t.Errorf("topic %q is not listed in readme.md", topic)
		}
	}

	content, err := Topics("*")
	if err != nil {
		t.Fatalf("Topics(*) failed: %v", err)
	}
	if !strings.Contains(content, "# Strategies") || strings.Contains(content, "pld topic <topic>") {
		t.Errorf("Topics(*) should concatenate every topic but the readme")
	}
	if _, err := Topic("nope"); err == nil {
		t.Error("Topic(nope) succeeded, want an error")
	}
}

// fencedBlocks returns the content of the fenced code blocks of a markdown
// file written in lang.
func fencedBlocks(t *testing.T, file, lang string) []string {
	t.Helper()
	content, err := os.ReadFile(file)
	if err != nil {
		t.Fatalf("failed to read %s: %v", file, err)
	}
	root := goldmark.DefaultParser().Parse(text.NewReader(content))

	var blocks []string
	ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		fcb, ok := n.(*ast.FencedCodeBlock)
		if !entering || !ok || fcb.Info == nil {
			return ast.WalkContinue, nil
		}
		if string(fcb.Language(content)) != lang {
			return ast.WalkContinue, nil
		}
		var b strings.Builder
		for i := 0; i < fcb.Lines().Len(); i++ {
			line := fcb.Lines().At(i)
			b.Write(line.Value(content))
		}
		blocks = append(blocks, b.String())
		return ast.WalkContinue, nil
	})
	return blocks
}

// TestConfigBlocks loads every yaml example of the manual.
func TestConfigBlocks(t *testing.T) {
	files, err := filepath.Glob("*.md")
	if err != nil {
		t.Fatal(err)
	}
	var count int
	for _, file := range files {
		for i, block := range fencedBlocks(t, file, "yaml") {
			count++
			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte(block), 0o644); err != nil {
				t.Fatal(err)
			}
			if _, err := config.Load(path); err != nil {
				t.Errorf("%s block %d: %v", file, i+1, err)
			}
		}
	}
	if count == 0 {
		t.Error("no yaml example found")
	}
}

// TestConsoleBlocks checks that the documented commands exist.
func TestConsoleBlocks(t *testing.T) {
	commands := []string{"run", "search", "costs", "ltv", "convert", "let", "topic"}
	for _, block := range fencedBlocks(t, "strategies.md", "console") {
		fields := strings.Fields(strings.TrimPrefix(block, "$ "))
		if len(fields) < 2 || fields[0] != "pld" {
			t.Errorf("invalid command %q", block)
			continue
		}
		if !slices.Contains(commands, fields[1]) {
			t.Errorf("unknown subcommand %q", fields[1])
		}
	}
}
