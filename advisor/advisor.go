// Package advisor discusses a goal projection with a Gemini model.
package advisor

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"google.golang.org/genai"
)

const model = "gemini-2.5-flash"

const instruction = `
You are a personal finance planner. The user shares the analysis of their
net worth history and a one year goal projection, in markdown, below.

Amounts in the "Achieved" column are the closing net worth of each month,
empty cells mean there is no data yet for that month: never read them as zero.
The annual rate is the Brazilian Selic target used as the reference return.

Answer concisely, in markdown, and ground every figure you quote on the report.
`

// NewPlanner returns an expert that knows about the given report.
func NewPlanner(report string) *Expert {
	return &Expert{
		Name:      "Planner",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: instruction + "\n" + report}}},
		},
	}
}

// Asker answers a question.
type Asker interface {
	Ask(ctx context.Context, question string) (string, error)
}

const prompt = "assist> "

// Run starts an interactive session: prompts are asked first, then questions
// are read from r, one per line, until EOF or "bye".
func Run(ctx context.Context, w io.Writer, r io.Reader, expert Asker, prompts ...string) error {
	reader := bufio.NewReader(r)
	fmt.Fprintln(w, "Ask anything about your goal. Type 'bye' to exit.")
	for {
		// Print the prompt
		fmt.Fprint(w, prompt)
		var input string

		// Flush prompts from the list and then ask for the user.
		if len(prompts) > 0 {
			input, prompts = strings.TrimSpace(prompts[0]), prompts[1:]
			if input == "" {
				continue
			}
			fmt.Fprintln(w, input)
		} else {
			line, err := reader.ReadString('\n')
			if err != nil && (err != io.EOF || line == "") {
				if err == io.EOF {
					fmt.Fprintln(w)
					return nil // Clean exit on Ctrl+D
				}
				return err
			}
			input = strings.TrimSpace(line)
		}

		if input == "bye" {
			return nil
		}
		if input == "" {
			continue
		}

		answer, err := expert.Ask(ctx, input)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, answer)
	}
}
