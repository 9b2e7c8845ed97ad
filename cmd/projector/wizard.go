package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"projector/internal/config"
	"projector/internal/document"
	"projector/internal/llm"
	"projector/internal/question"
	"projector/internal/session"
	"projector/internal/storage"

	"go.uber.org/zap"
)

// Control words recognized in place of an answer.
const (
	answerBack    = "back"
	answerForward = "forward"
	answerQuit    = "quit"
)

// prompter reads wizard answers line by line from the terminal.
type prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func newPrompter() *prompter {
	return &prompter{in: bufio.NewReader(os.Stdin), out: os.Stdout}
}

func (p *prompter) readLine(label string) (string, error) {
	fmt.Fprintf(p.out, "%s: ", label)
	line, err := p.in.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// readLineDefault reads a line, substituting def when the user just hits
// enter.
func (p *prompter) readLineDefault(label, def string) (string, error) {
	answer, err := p.readLine(fmt.Sprintf("%s [%s]", label, def))
	if err != nil {
		return "", err
	}
	if answer == "" {
		return def, nil
	}
	return answer, nil
}

func (p *prompter) confirm(label string, def bool) (bool, error) {
	suffix := "Y/n"
	if !def {
		suffix = "y/N"
	}
	for {
		answer, err := p.readLine(fmt.Sprintf("%s (%s)", label, suffix))
		if err != nil {
			return false, err
		}
		switch strings.ToLower(answer) {
		case "":
			return def, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		fmt.Fprintln(p.out, "Please answer y or n")
	}
}

// isControlWord reports whether the input is one of the wizard's control
// words rather than an answer.
func isControlWord(input string) bool {
	switch strings.ToLower(input) {
	case answerBack, answerForward, answerQuit:
		return true
	}
	return false
}

// askAnswer prompts for an answer appropriate to the question kind. The
// returned string is either the answer or a lowercased control word.
func (p *prompter) askAnswer(q *question.Question) (string, error) {
	switch q.Kind {
	case question.MultipleChoice, question.YesNo:
		if len(q.Options) == 0 {
			return p.readLine("Your answer")
		}
		return p.selectAnswer(q.Options)
	case question.RatingScale:
		min, max := 1, 5
		if q.Scale != nil {
			min, max = q.Scale.Min, q.Scale.Max
		}
		if min > max {
			min, max = max, min
		}
		return p.rateAnswer(min, max)
	default:
		return p.readLine("Your answer")
	}
}

func (p *prompter) selectAnswer(options []string) (string, error) {
	for i, option := range options {
		fmt.Fprintf(p.out, "  %d. %s\n", i+1, option)
	}
	for {
		answer, err := p.readLine(fmt.Sprintf("Choose an option [1-%d]", len(options)))
		if err != nil {
			return "", err
		}
		if isControlWord(answer) {
			return strings.ToLower(answer), nil
		}
		if n, convErr := strconv.Atoi(answer); convErr == nil && n >= 1 && n <= len(options) {
			return options[n-1], nil
		}
		fmt.Fprintln(p.out, "Please enter a number from the list")
	}
}

func (p *prompter) rateAnswer(min, max int) (string, error) {
	for {
		answer, err := p.readLine(fmt.Sprintf("Rate from %d to %d", min, max))
		if err != nil {
			return "", err
		}
		if isControlWord(answer) {
			return strings.ToLower(answer), nil
		}
		if n, convErr := strconv.Atoi(answer); convErr == nil && n >= min && n <= max {
			return strconv.Itoa(n), nil
		}
		fmt.Fprintf(p.out, "Please enter a number between %d and %d\n", min, max)
	}
}

// runWizard drives the interview loop: ask, answer, navigate, and finally
// generate and deliver the project definition.
func runWizard(ctx context.Context, s *session.Session, client llm.Client, cfg *config.Config, outputPath string) error {
	m := session.NewManager(s, client, logger)
	m.Start()

	p := newPrompter()

	fmt.Printf("Starting wizard session with %d questions\n", m.MaxQuestions())
	fmt.Println("Type 'back' to go back to a previous question")
	fmt.Println("Type 'forward' to return to a later question")
	fmt.Println("Type 'quit' to exit the wizard")
	fmt.Println()

	for {
		// A pending question is left over from back/forward navigation;
		// re-present it instead of generating a new one.
		q := m.Session().CurrentQuestion
		if q == nil {
			var err error
			q, err = m.NextQuestion(ctx)
			if errors.Is(err, session.ErrBudgetExhausted) {
				fmt.Println("Maximum number of questions reached")
				break
			}
			if err != nil {
				fmt.Printf("Error generating question: %v\n", err)
				break
			}
		}

		fmt.Printf("Question %d/%d: %s\n", m.QuestionCount()+1, m.MaxQuestions(), q.Text)
		if q.HelpText != "" {
			fmt.Printf("Hint: %s\n", q.HelpText)
		}

		response, err := p.askAnswer(q)
		if err != nil {
			return fmt.Errorf("failed to read answer: %w", err)
		}

		switch response {
		case answerBack:
			if _, err := m.Back(); err != nil {
				fmt.Printf("Cannot go back: %v\n", err)
			} else {
				fmt.Println("Going back to previous question")
			}
			continue
		case answerForward:
			if _, err := m.Forward(); err != nil {
				fmt.Printf("Cannot go forward: %v\n", err)
			} else {
				fmt.Println("Going forward to next question")
			}
			continue
		case answerQuit:
			fmt.Println("Exiting wizard")
			return nil
		}

		if err := m.Answer(response); err != nil {
			fmt.Printf("Error answering question: %v\n", err)
			break
		}
		fmt.Println()
	}

	fmt.Println("Generating project definition...")
	markdown, err := m.Finalize(ctx)
	if err != nil {
		return fmt.Errorf("failed to generate project definition: %w", err)
	}

	fmt.Printf("\n%s\n", markdown)

	if outputPath != "" {
		fmt.Printf("Saving project definition to %s\n", outputPath)
		if err := m.ExportOutput(outputPath); err != nil {
			return fmt.Errorf("failed to save project definition: %w", err)
		}
	}

	archiveSession(ctx, m, cfg)

	saveSession, err := p.confirm("Do you want to save this session for later?", false)
	if err != nil {
		return err
	}
	if saveSession {
		sessionFile := cfg.Wizard.SessionFile
		if sessionFile == "" {
			sessionFile = "wizard_session.json"
		}
		path, err := p.readLineDefault("Enter path to save session", sessionFile)
		if err != nil {
			return err
		}
		fmt.Printf("Saving session to %s\n", path)
		if err := m.Session().Save(path); err != nil {
			return fmt.Errorf("failed to save session: %w", err)
		}
	}

	fmt.Println("Wizard completed successfully!")
	return nil
}

// archiveSession records the completed session and its definition in the
// sqlite archive when one is configured. Failures are logged, never fatal.
func archiveSession(ctx context.Context, m *session.Manager, cfg *config.Config) {
	if cfg.Storage.Path == "" || !m.IsCompleted() {
		return
	}

	store, err := storage.NewArchiveStore(cfg.Storage.Path)
	if err != nil {
		logger.Warn("failed to open session archive", zap.Error(err))
		return
	}
	defer store.Close()

	name := document.ParseDefinition(m.Session().Output).Name
	rec, err := storage.NewSessionRecord(m.Session(), name)
	if err != nil {
		logger.Warn("failed to archive session", zap.Error(err))
		return
	}

	if err := store.SaveSession(ctx, rec); err != nil {
		logger.Warn("failed to archive session", zap.Error(err))
		return
	}
	if err := store.SaveDefinition(ctx, storage.NewDefinitionRecord(rec.ID, name, m.Session().Output)); err != nil {
		logger.Warn("failed to archive definition", zap.Error(err))
		return
	}

	logger.Debug("session archived", zap.String("id", rec.ID), zap.String("archive", cfg.Storage.Path))
}
