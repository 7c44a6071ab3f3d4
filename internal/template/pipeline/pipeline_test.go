package pipeline

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sprout-cli/sprout/internal/template/engine"
	"github.com/sprout-cli/sprout/internal/template/model"
)

// stubAsker records the questions it is asked and returns canned answers.
type stubAsker struct {
	answers   model.AnswerMap
	err       error
	callCount int
	questions []model.QuestionSpec
}

func (s *stubAsker) Ask(questions []model.QuestionSpec) (model.AnswerMap, error) {
	s.callCount++
	s.questions = questions
	if s.err != nil {
		return nil, s.err
	}
	return s.answers.Clone(), nil
}

func setupStaging(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("Failed to create staging subdir: %v", err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("Failed to write staging file %s: %v", name, err)
		}
	}
	return dir
}

func TestRunRendersAndWrites(t *testing.T) {
	staging := setupStaging(t, map[string]string{
		"README.md":    "Hello, <%= projectName %>",
		"src/app.conf": "name=<%= projectName %>",
		"static.txt":   "no markers here",
	})
	dest := filepath.Join(t.TempDir(), "out")

	p := New(&stubAsker{}, engine.NewEngine())
	result, err := p.Run(context.Background(), RunOptions{
		StagingDir: staging,
		Config:     &model.TemplateConfig{},
		Options: &model.ProjectOptions{
			DestinationPath: dest,
			Answers:         model.AnswerMap{"projectName": "World"},
		},
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if result.FilesWritten != 3 {
		t.Errorf("Expected 3 files written, got %d", result.FilesWritten)
	}

	content, err := os.ReadFile(filepath.Join(dest, "README.md"))
	if err != nil {
		t.Fatalf("Expected README.md at destination: %v", err)
	}
	if string(content) != "Hello, World" {
		t.Errorf("Expected rendered content, got %q", content)
	}

	content, err = os.ReadFile(filepath.Join(dest, "src", "app.conf"))
	if err != nil {
		t.Fatalf("Expected nested file at destination: %v", err)
	}
	if string(content) != "name=World" {
		t.Errorf("Expected rendered nested content, got %q", content)
	}

	content, _ = os.ReadFile(filepath.Join(dest, "static.txt"))
	if string(content) != "no markers here" {
		t.Errorf("Expected marker-free file unchanged, got %q", content)
	}
}

func TestRunNoDeclaredQuestionsYieldsEmptyAnswersBeforeMerge(t *testing.T) {
	staging := setupStaging(t, map[string]string{"a.txt": "plain"})
	dest := filepath.Join(t.TempDir(), "out")
	asker := &stubAsker{answers: model.AnswerMap{"unused": "x"}}

	p := New(asker, engine.NewEngine())
	result, err := p.Run(context.Background(), RunOptions{
		StagingDir: staging,
		Config:     &model.TemplateConfig{},
		Options:    &model.ProjectOptions{DestinationPath: dest},
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if asker.callCount != 0 {
		t.Errorf("Expected no prompt calls for a template without questions, got %d", asker.callCount)
	}
	if len(result.Meta.Answers) != 0 {
		t.Errorf("Expected empty merged answers, got %v", result.Meta.Answers)
	}
}

func TestRunBuildLevelAnswersWinOverTemplateAnswers(t *testing.T) {
	staging := setupStaging(t, map[string]string{
		"out.txt": "<%= projectName %>/<%= license %>",
	})
	dest := filepath.Join(t.TempDir(), "out")
	asker := &stubAsker{answers: model.AnswerMap{
		"projectName": "from-template",
		"license":     "MIT",
	}}

	p := New(asker, engine.NewEngine())
	result, err := p.Run(context.Background(), RunOptions{
		StagingDir: staging,
		Config: &model.TemplateConfig{
			Questions: []model.QuestionSpec{
				{Name: "projectName"},
				{Name: "license", Kind: model.QuestionSelect, Choices: []string{"MIT"}},
			},
		},
		Options: &model.ProjectOptions{
			DestinationPath: dest,
			Answers:         model.AnswerMap{"projectName": "from-build"},
		},
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if asker.callCount != 1 {
		t.Fatalf("Expected one prompt call, got %d", asker.callCount)
	}
	if len(asker.questions) != 2 {
		t.Fatalf("Expected both declared questions to be asked, got %d", len(asker.questions))
	}
	if result.Meta.Answers["projectName"] != "from-build" {
		t.Errorf("Expected build-level answer to win, got %v", result.Meta.Answers["projectName"])
	}

	content, _ := os.ReadFile(filepath.Join(dest, "out.txt"))
	if string(content) != "from-build/MIT" {
		t.Errorf("Expected merged rendering, got %q", content)
	}
}

func TestRunRenderErrorAnnotatedAndNothingWritten(t *testing.T) {
	staging := setupStaging(t, map[string]string{
		"a.tpl": "bad <%= missing %>",
		"b.txt": "fine",
	})
	dest := filepath.Join(t.TempDir(), "out")

	p := New(&stubAsker{}, engine.NewEngine())
	_, err := p.Run(context.Background(), RunOptions{
		StagingDir: staging,
		Config:     &model.TemplateConfig{},
		Options:    &model.ProjectOptions{DestinationPath: dest},
	})
	if err == nil {
		t.Fatal("Expected render error, got nil")
	}

	var renderErr *RenderError
	if !errors.As(err, &renderErr) {
		t.Fatalf("Expected RenderError, got %T", err)
	}
	if !strings.HasPrefix(err.Error(), "[a.tpl] ") {
		t.Errorf("Expected error message prefixed with file path, got %q", err.Error())
	}

	if _, statErr := os.Stat(dest); !os.IsNotExist(statErr) {
		t.Error("Expected nothing written to destination after render failure")
	}
}

func TestRunNonDestructiveWrite(t *testing.T) {
	staging := setupStaging(t, map[string]string{
		"colliding.txt": "from template",
	})
	dest := t.TempDir()
	if err := os.WriteFile(filepath.Join(dest, "keep.txt"), []byte("pre-existing"), 0644); err != nil {
		t.Fatalf("Failed to seed destination: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dest, "colliding.txt"), []byte("old"), 0644); err != nil {
		t.Fatalf("Failed to seed destination: %v", err)
	}

	p := New(&stubAsker{}, engine.NewEngine())
	_, err := p.Run(context.Background(), RunOptions{
		StagingDir: staging,
		Config:     &model.TemplateConfig{},
		Options:    &model.ProjectOptions{DestinationPath: dest},
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	kept, _ := os.ReadFile(filepath.Join(dest, "keep.txt"))
	if string(kept) != "pre-existing" {
		t.Errorf("Expected pre-existing file untouched, got %q", kept)
	}
	collided, _ := os.ReadFile(filepath.Join(dest, "colliding.txt"))
	if string(collided) != "from template" {
		t.Errorf("Expected colliding file overwritten, got %q", collided)
	}
}

func TestRunDestinationDefaultsToCwdAndProjectName(t *testing.T) {
	staging := setupStaging(t, map[string]string{"a.txt": "x"})
	workDir := t.TempDir()
	origWd, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get working directory: %v", err)
	}
	if err := os.Chdir(workDir); err != nil {
		t.Fatalf("failed to change directory: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(origWd) })

	p := New(&stubAsker{}, engine.NewEngine())
	result, err := p.Run(context.Background(), RunOptions{
		StagingDir: staging,
		Config:     &model.TemplateConfig{},
		Options: &model.ProjectOptions{
			Answers: model.AnswerMap{"projectName": "foo"},
		},
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	want := filepath.Join(workDir, "foo")
	// macOS tempdirs may resolve through symlinks; compare the suffix.
	if filepath.Base(result.Meta.DestinationPath) != "foo" {
		t.Fatalf("Expected destination ending in 'foo', got %q", result.Meta.DestinationPath)
	}
	if _, statErr := os.Stat(filepath.Join(result.Meta.DestinationPath, "a.txt")); statErr != nil {
		t.Errorf("Expected file under %s: %v", want, statErr)
	}
}

func TestRunExplicitDestinationIgnoresProjectName(t *testing.T) {
	staging := setupStaging(t, map[string]string{"a.txt": "x"})
	dest := filepath.Join(t.TempDir(), "explicit")

	p := New(&stubAsker{}, engine.NewEngine())
	result, err := p.Run(context.Background(), RunOptions{
		StagingDir: staging,
		Config:     &model.TemplateConfig{},
		Options: &model.ProjectOptions{
			DestinationPath: dest,
			Answers:         model.AnswerMap{"projectName": "ignored"},
		},
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if result.Meta.DestinationPath != dest {
		t.Errorf("Expected explicit destination %q, got %q", dest, result.Meta.DestinationPath)
	}
}

func TestRunBinaryFilePassesThroughUnrendered(t *testing.T) {
	staging := t.TempDir()
	binary := []byte{0x89, 'P', 'N', 'G', 0x00, '<', '%', '=', ' ', 'x', ' ', '%', '>'}
	if err := os.WriteFile(filepath.Join(staging, "logo.png"), binary, 0644); err != nil {
		t.Fatalf("Failed to write binary file: %v", err)
	}
	dest := filepath.Join(t.TempDir(), "out")

	p := New(&stubAsker{}, engine.NewEngine())
	_, err := p.Run(context.Background(), RunOptions{
		StagingDir: staging,
		Config:     &model.TemplateConfig{},
		Options:    &model.ProjectOptions{DestinationPath: dest},
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	got, readErr := os.ReadFile(filepath.Join(dest, "logo.png"))
	if readErr != nil {
		t.Fatalf("Expected binary file at destination: %v", readErr)
	}
	if string(got) != string(binary) {
		t.Error("Expected binary content to pass through byte-for-byte")
	}
}

func TestRunPromptFailurePropagates(t *testing.T) {
	staging := setupStaging(t, map[string]string{"a.txt": "x"})
	asker := &stubAsker{err: errors.New("terminal closed")}

	p := New(asker, engine.NewEngine())
	_, err := p.Run(context.Background(), RunOptions{
		StagingDir: staging,
		Config: &model.TemplateConfig{
			Questions: []model.QuestionSpec{{Name: "q"}},
		},
		Options: &model.ProjectOptions{DestinationPath: filepath.Join(t.TempDir(), "out")},
	})
	if err == nil {
		t.Fatal("Expected prompt error, got nil")
	}
	var promptErr *PromptError
	if !errors.As(err, &promptErr) {
		t.Fatalf("Expected PromptError, got %T", err)
	}
}

func TestCollectTreeSkipsGitAndConfigArtifacts(t *testing.T) {
	staging := setupStaging(t, map[string]string{
		"a.txt":              "x",
		".git/HEAD":          "ref: refs/heads/main",
		"sprout.config.json": `{"questions": []}`,
		"nested/.sproutrc":   "kept, convention applies at the root only",
	})

	tree, err := CollectTree(staging)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	paths := make(map[string]bool, len(tree))
	for _, f := range tree {
		paths[f.Path] = true
	}

	if !paths["a.txt"] {
		t.Error("Expected a.txt in tree")
	}
	if paths[filepath.Join(".git", "HEAD")] {
		t.Error("Expected .git contents to be excluded")
	}
	if paths["sprout.config.json"] {
		t.Error("Expected root config artifact to be excluded")
	}
	if !paths[filepath.Join("nested", ".sproutrc")] {
		t.Error("Expected non-root config-named file to be kept")
	}
}
