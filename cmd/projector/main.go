package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"projector/internal/config"
	"projector/internal/interview"
	"projector/internal/llm"
	"projector/internal/session"
	"projector/internal/storage"
	"projector/internal/template"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	rootCmd = &cobra.Command{
		Use:   "projector",
		Short: "LLM-powered dynamic project definition wizard",
		Long: `projector interviews you about the LLM project you want to build and
turns your answers into a structured project definition document.

An AI interviewer asks one question at a time, adapting each question to
your previous answers, then writes up the project definition with a
confidence score per section.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			zapCfg := zap.NewProductionConfig()
			if verbose {
				zapCfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			var err error
			logger, err = zapCfg.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}

	// Global flags
	verbose    bool
	configPath string

	// new flags
	hints        string
	domain       string
	maxQuestions int
	templateName string
	personaName  string
	outputPath   string

	// continue flags
	sessionPath string

	logger *zap.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.yaml", "Path to the configuration file")

	newCmd.Flags().StringVarP(&hints, "hints", "i", "", "Starting hints for the wizard")
	newCmd.Flags().StringVarP(&domain, "domain", "d", "", "Domain for the project")
	newCmd.Flags().IntVarP(&maxQuestions, "questions", "q", session.DefaultMaxQuestions, "Maximum number of questions")
	newCmd.Flags().StringVarP(&templateName, "template", "t", "", "Start from a template")
	newCmd.Flags().StringVarP(&personaName, "persona", "p", "", "Interviewer persona (pm, architect, ux, compliance)")
	newCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file for the project definition")

	continueCmd.Flags().StringVarP(&sessionPath, "session", "s", "", "Path to the session file")
	continueCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file for the project definition")
	_ = continueCmd.MarkFlagRequired("session")

	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(continueCmd)
	rootCmd.AddCommand(templatesCmd)
	rootCmd.AddCommand(sessionsCmd)
	rootCmd.AddCommand(domainsCmd)
}

// loadConfigOrDie loads the configuration file, falling back to defaults
// when it does not exist.
func loadConfigOrDie() *config.Config {
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	return cfg
}

// newClient builds the generation client from the AI section of the config.
func newClient(ctx context.Context, cfg *config.Config) llm.Client {
	client, err := llm.New(ctx, llm.Config{
		Provider:    cfg.AI.Provider,
		Model:       cfg.AI.Model,
		Temperature: cfg.AI.Temperature,
		MaxTokens:   cfg.AI.MaxTokens,
		APIKey:      cfg.AI.APIKey,
		BaseURL:     cfg.AI.BaseURL,
	}, logger)
	if err != nil {
		log.Fatalf("Failed to create LLM client: %v", err)
	}
	return client
}

// templateRepository returns the built-in templates plus any loaded from the
// configured template directory.
func templateRepository(cfg *config.Config) *template.Repository {
	repo := template.NewRepository()
	if cfg.Wizard.TemplateDir != "" {
		if err := repo.LoadDir(cfg.Wizard.TemplateDir); err != nil {
			log.Printf("⚠️ Failed to load templates from %s: %v", cfg.Wizard.TemplateDir, err)
		}
	}
	return repo
}

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Start a new wizard session",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("🧙 Starting LLM-Powered Project Definition Wizard")

		cfg := loadConfigOrDie()
		ctx := context.Background()
		client := newClient(ctx, cfg)

		// 1. Build the session, from a template or from the flags
		var s *session.Session
		if templateName != "" {
			repo := templateRepository(cfg)
			tpl, ok := repo.Get(templateName)
			if !ok {
				log.Fatalf("Template '%s' not found", templateName)
			}
			fmt.Printf("Using template: %s\n", tpl.Name)
			fmt.Printf("Description: %s\n", tpl.Description)
			s = session.FromTemplate(tpl)
		} else {
			s = session.New()
			s.Context.StartingHints = hints
			s.Context.Domain = domain
		}

		if domain != "" && !cfg.KnownDomain(domain) {
			logger.Debug("domain not in the configured catalogue", zap.String("domain", domain))
		}

		// 2. Question budget: explicit flag beats the config value
		budget := cfg.Wizard.MaxQuestions
		if cmd.Flags().Changed("questions") {
			budget = maxQuestions
		}
		s.WithMaxQuestions(budget)

		// 3. Persona
		if personaName != "" {
			persona := interview.ParsePersona(personaName)
			fmt.Printf("Using persona: %s\n", persona)
			s.Context.Persona = persona
		}

		if err := runWizard(ctx, s, client, cfg, outputPath); err != nil {
			log.Fatalf("Wizard failed: %v", err)
		}
	},
}

var continueCmd = &cobra.Command{
	Use:   "continue",
	Short: "Continue an existing wizard session",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("🧙 Continuing LLM-Powered Project Definition Wizard")

		cfg := loadConfigOrDie()
		ctx := context.Background()
		client := newClient(ctx, cfg)

		s, err := session.Load(sessionPath)
		if err != nil {
			log.Fatalf("Failed to load session file: %v", err)
		}

		if err := runWizard(ctx, s, client, cfg, outputPath); err != nil {
			log.Fatalf("Wizard failed: %v", err)
		}
	},
}

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List available templates",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("🧙 Available Templates")

		cfg := loadConfigOrDie()
		templates := templateRepository(cfg).All()

		if len(templates) == 0 {
			fmt.Println("No templates available")
			return
		}

		for i, tpl := range templates {
			fmt.Printf("%d. %s (%s)\n", i+1, tpl.Name, tpl.Domain)
			fmt.Printf("   %s\n", tpl.Description)
			fmt.Println()
		}
	},
}

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "List archived sessions and their definitions",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("🗂️  Archived Sessions")

		cfg := loadConfigOrDie()
		if cfg.Storage.Path == "" {
			fmt.Println("No archive configured (set storage.path in config.yaml)")
			return
		}

		store, err := storage.NewArchiveStore(cfg.Storage.Path)
		if err != nil {
			log.Fatalf("Failed to open archive: %v", err)
		}
		defer store.Close()

		ctx := context.Background()
		records, err := store.ListSessions(ctx)
		if err != nil {
			log.Fatalf("Failed to list sessions: %v", err)
		}

		if len(records) == 0 {
			fmt.Println("No archived sessions")
			return
		}

		for i, rec := range records {
			name := rec.Name
			if rec.Domain != "" {
				name = fmt.Sprintf("%s (%s)", rec.Name, rec.Domain)
			}
			fmt.Printf("%d. %s\n", i+1, name)
			fmt.Printf("   %s · %d/%d questions · saved %s\n",
				rec.State, rec.QuestionCount, rec.MaxQuestions,
				rec.SavedAt.Format("2006-01-02 15:04"))
		}

		definitions, err := store.ListDefinitions(ctx)
		if err != nil {
			log.Fatalf("Failed to list definitions: %v", err)
		}
		fmt.Printf("\n%d archived definition(s)\n", len(definitions))
	},
}

var domainsCmd = &cobra.Command{
	Use:   "domains",
	Short: "List the configured project domains",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfigOrDie()

		fmt.Printf("🧭 Available Domains (%d)\n", len(cfg.Domains))
		for _, d := range cfg.Domains {
			fmt.Printf("  - %s\n", d)
		}
	},
}
