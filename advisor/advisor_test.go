package advisor

import (
	"context"
	"errors"
	"strings"
	"testing"
)

// echo answers by repeating the question.
type echo struct{ questions []string }

func (e *echo) Ask(_ context.Context, q string) (string, error) {
	e.questions = append(e.questions, q)
	return "answer to " + q, nil
}

func TestRun(t *testing.T) {
	var out strings.Builder
	e := new(echo)
	in := strings.NewReader("how am I doing?\n\nbye\nnever asked\n")

	if err := Run(context.Background(), &out, in, e, "first", "  "); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if got := strings.Join(e.questions, "|"); got != "first|how am I doing?" {
		t.Errorf("questions = %q want %q", got, "first|how am I doing?")
	}
	if !strings.Contains(out.String(), "answer to how am I doing?") {
		t.Errorf("output does not contain the answer:\n%s", out.String())
	}
}

func TestRun_EOF(t *testing.T) {
	e := new(echo)
	// the last line has no newline.
	if err := Run(context.Background(), new(strings.Builder), strings.NewReader("last"), e); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if len(e.questions) != 1 || e.questions[0] != "last" {
		t.Errorf("questions = %q want [last]", e.questions)
	}
}

type failing struct{}

func (failing) Ask(context.Context, string) (string, error) { return "", errors.New("quota") }

func TestRun_Error(t *testing.T) {
	err := Run(context.Background(), new(strings.Builder), strings.NewReader("q\n"), failing{})
	if err == nil || err.Error() != "quota" {
		t.Errorf("Run() error = %v want quota", err)
	}
}

func TestNewPlanner(t *testing.T) {
	p := NewPlanner("# Goal from 2024-01-01")
	text := p.Config.SystemInstruction.Parts[0].Text
	if !strings.Contains(text, "# Goal from 2024-01-01") {
		t.Errorf("system instruction does not embed the report")
	}
	if _, err := p.Ask(context.Background(), "q"); err == nil {
		t.Error("Ask() before Start() must fail")
	}
}
