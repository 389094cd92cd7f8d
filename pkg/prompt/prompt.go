package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=prompt.go -destination=mocks/prompt.gen.go -package=mocks

// Choice is a selectable workspace file.
type Choice struct {
	Name        string
	Description string
	Path        string
}

// Prompter interface provides user interaction functionality.
type Prompter interface {
	// PromptForBaseFolder lets the user pick a single directory, starting at start.
	// It returns ErrCancelled when the user quits without choosing.
	PromptForBaseFolder(start string) (string, error)

	// PromptSelectWorkspace lets the user pick one of choices.
	// It returns ErrCancelled when the user quits without choosing.
	PromptSelectWorkspace(choices []Choice) (Choice, error)

	// PromptForConfirmation asks a yes/no question. An empty answer returns defaultYes.
	PromptForConfirmation(message string, defaultYes bool) (bool, error)
}

type realPrompt struct {
	input  io.Reader
	output io.Writer
}

// NewPrompt creates a new Prompter on the process terminal.
func NewPrompt() Prompter {
	return &realPrompt{}
}

// NewPromptWithIO creates a new Prompter reading keys from input and drawing to output.
func NewPromptWithIO(input io.Reader, output io.Writer) Prompter {
	return &realPrompt{input: input, output: output}
}

// PromptForBaseFolder runs the directory picker.
func (p *realPrompt) PromptForBaseFolder(start string) (string, error) {
	finalModel, err := p.run(NewFolderPicker(start))
	if err != nil {
		return "", err
	}

	picker, ok := finalModel.(FolderPicker)
	if !ok {
		return "", ErrUnexpectedModel
	}

	path, selected := picker.Selected()
	if !selected {
		return "", ErrCancelled
	}

	return path, nil
}

// PromptSelectWorkspace runs the workspace selector.
func (p *realPrompt) PromptSelectWorkspace(choices []Choice) (Choice, error) {
	if len(choices) == 0 {
		return Choice{}, ErrNoChoices
	}

	finalModel, err := p.run(initialSelectModel(choices))
	if err != nil {
		return Choice{}, err
	}

	model, ok := finalModel.(selectModel)
	if !ok {
		return Choice{}, ErrUnexpectedModel
	}

	if model.selected == nil {
		return Choice{}, ErrCancelled
	}

	return *model.selected, nil
}

// PromptForConfirmation prompts the user for confirmation.
func (p *realPrompt) PromptForConfirmation(message string, defaultYes bool) (bool, error) {
	input := p.input
	if input == nil {
		input = os.Stdin
	}
	output := p.output
	if output == nil {
		output = os.Stdout
	}

	hint := "y/N"
	if defaultYes {
		hint = "Y/n"
	}

	reader := bufio.NewReader(input)
	for {
		fmt.Fprintf(output, "%s [%s]: ", message, hint)

		line, err := reader.ReadString('\n')
		if err != nil && (err != io.EOF || line == "") {
			if err == io.EOF {
				return false, ErrCancelled
			}
			return false, fmt.Errorf("failed to read input: %w", err)
		}

		switch strings.ToLower(strings.TrimSpace(line)) {
		case "":
			return defaultYes, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		default:
			fmt.Fprintln(output, "Please enter 'y' or 'n'.")
		}
	}
}

func (p *realPrompt) run(model tea.Model) (tea.Model, error) {
	var opts []tea.ProgramOption
	if p.input != nil {
		opts = append(opts, tea.WithInput(p.input))
	}
	if p.output != nil {
		opts = append(opts, tea.WithOutput(p.output))
	}

	finalModel, err := tea.NewProgram(model, opts...).Run()
	if err != nil {
		return nil, fmt.Errorf("failed to run selection program: %w", err)
	}

	return finalModel, nil
}
