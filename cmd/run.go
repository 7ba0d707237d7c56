package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/talentscout/talentscout/internal/ai"
	"github.com/talentscout/talentscout/internal/ai/gemini"
	"github.com/talentscout/talentscout/internal/candidate"
	"github.com/talentscout/talentscout/internal/interview"
	"github.com/talentscout/talentscout/internal/logger"
	"github.com/talentscout/talentscout/internal/questions"
	"github.com/talentscout/talentscout/internal/secrets"
	"github.com/talentscout/talentscout/internal/sentiment"
	"github.com/talentscout/talentscout/internal/store"
	"github.com/talentscout/talentscout/internal/translate"

	"github.com/manifoldco/promptui"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	PromptYes     = "Yes"
	PromptNo      = "No"
	PromptRetry   = "Retry saving"
	PromptDiscard = "Discard the result"

	maxExperienceYears = 50
)

var errExit = errors.New("exit requested")

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the interactive candidate-screening wizard",
	Run: func(cmd *cobra.Command, _ []string) {
		run(cmd)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringP("store", "s", "", "path to the candidate data file. Default is candidate_data.json in current directory.")
}

// run is the main command for the cli.
func run(cmd *cobra.Command) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting talentscout", zap.String("version", version))

	// do not bother error since there is a valid parseable config
	pretty, _ := json.MarshalIndent(config, "", "  ")
	logger.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	assistant := buildAssistant(ctx, config, logger)
	translator := buildTranslator(config, logger)

	runner := &interview.Runner{
		Questions:   questions.NewGenerator(assistant, translator, config.TechKeywords, logger, geminiMaxLogLength(config)),
		Translator:  translator,
		Classifier:  sentiment.NewAnalyzer(assistant, logger, geminiMaxLogLength(config)),
		Logger:      logger,
		CallTimeout: config.CallTimeout,
	}

	st := store.New(storePath(cmd, config))
	logger.Info("candidate store ready", zap.String("path", st.Path()))

	for {
		if err := runWizard(ctx, runner, translator, st, config, logger); err != nil {
			if errors.Is(err, errExit) {
				return
			}
			logger.Fatal("exiting", zap.Error(err))
		}
	}
}

func buildAssistant(ctx context.Context, config *Config, logger *zap.Logger) ai.Assistant {
	if config.AI == nil || config.AI.Gemini == nil {
		logger.Fatal("gemini configuration is required",
			zap.String("hint", "set ai.gemini.api-key-file in the configuration file or the GEMINI_API_KEY_FILE environment variable"),
		)
	}

	apiKey, err := secrets.Load(secrets.Source{
		Name: "gemini api key",
		File: config.AI.Gemini.APIKeyFile,
	})
	if err != nil {
		logger.Fatal("loading gemini api key", zap.Error(err))
	}

	genLogger := logger.With(assistantLogFields(config)...)

	assistant, err := gemini.NewGenerator(ctx, apiKey, config.AI.Gemini.Model, config.AI.Gemini.MaxRetries, genLogger)
	if err != nil {
		logger.Fatal("creating gemini client", zap.Error(err))
	}

	logger.Info("ai assistant ready", zap.String("model", assistant.Model()))

	return assistant
}

func assistantLogFields(config *Config) []zap.Field {
	return logger.StringFields(
		logger.StringField{Key: logger.FieldModel, Value: config.AI.Gemini.Model},
	)
}

func sessionLogFields(sessionID, lang string) []zap.Field {
	return logger.StringFields(
		logger.StringField{Key: logger.FieldSession, Value: sessionID},
		logger.StringField{Key: logger.FieldLanguage, Value: lang},
	)
}

func geminiMaxLogLength(config *Config) int {
	if config.AI == nil || config.AI.Gemini == nil {
		return 0
	}
	return config.AI.Gemini.MaxLogLength
}

func buildTranslator(config *Config, logger *zap.Logger) translate.Translator {
	if config.Translator == nil || strings.TrimSpace(config.Translator.Endpoint) == "" {
		logger.Info("translation endpoint is not configured, display stays in the base language")
		return translate.Noop{}
	}

	apiKey := ""
	if config.Translator.APIKeyFile != "" {
		loaded, err := secrets.Load(secrets.Source{
			Name: "translation api key",
			File: config.Translator.APIKeyFile,
		})
		if err != nil {
			logger.Warn("loading translation api key, continuing without it", zap.Error(err))
		} else {
			apiKey = loaded
		}
	}

	logger.Info("translation client ready", zap.String("endpoint", config.Translator.Endpoint))

	return translate.NewClient(config.Translator.Endpoint, apiKey, config.BaseLanguage, logger)
}

// runWizard drives one full candidate session: language pick, intake,
// question loop, summary, save, restart prompt. Returning errExit ends the
// program.
func runWizard(ctx context.Context, runner *interview.Runner, translator translate.Translator, st *store.Store, config *Config, logger *zap.Logger) error {
	lang, err := selectLanguage(config.Languages)
	if err != nil {
		return errExit
	}

	loc := &localizer{ctx: ctx, translator: translator, lang: lang}

	fmt.Println()
	fmt.Println(loc.say("Welcome! I'll help screen candidates based on their tech stack."))

	session, err := intakeLoop(ctx, runner, loc, logger)
	if err != nil {
		return err
	}

	if err := questionLoop(ctx, runner, session, loc); err != nil {
		return err
	}

	record, err := session.Snapshot()
	if err != nil {
		return fmt.Errorf("taking session snapshot: %w", err)
	}

	printSummary(record, loc)

	if err := saveWithRetry(st, record, loc, logger); err != nil {
		return err
	}

	again, err := confirm(loc.say("Start New Interview?"))
	if err != nil || !again {
		return errExit
	}

	return nil
}

func selectLanguage(languages []translate.Language) (string, error) {
	names := make([]string, 0, len(languages))
	for _, language := range languages {
		names = append(names, language.Name)
	}

	prompt := promptui.Select{
		Label: "Select your preferred language",
		Items: names,
	}

	idx, _, err := prompt.Run()
	if err != nil {
		return "", err
	}

	return languages[idx].Code, nil
}

// intakeLoop collects the candidate profile until a session starts. Missing
// fields, an unknown tech stack or an unusable generator reply come back as
// validation errors and re-open the form; a generator transport failure is
// fatal to the run.
func intakeLoop(ctx context.Context, runner *interview.Runner, loc *localizer, logger *zap.Logger) (*interview.Session, error) {
	for {
		profile, err := collectIntake(loc)
		if err != nil {
			return nil, errExit
		}

		session, err := runner.Start(ctx, profile, loc.lang)
		if err != nil {
			var vErr *interview.ValidationError
			if errors.As(err, &vErr) {
				fmt.Println(loc.say(vErr.Reason))
				continue
			}
			return nil, err
		}

		logger.Info("session started", sessionLogFields(session.ID(), loc.lang)...)

		fmt.Println(loc.say(fmt.Sprintf("Thank you, %s! Let's start your interview.", profile.Name)))

		return session, nil
	}
}

func collectIntake(loc *localizer) (candidate.Profile, error) {
	fmt.Println()
	fmt.Println(loc.say("Candidate Information"))

	fields := map[string]string{}

	intakeFields := []struct {
		key      string
		label    string
		required bool
		validate promptui.ValidateFunc
	}{
		{key: "name", label: "Full Name", required: true},
		{key: "email", label: "Email", required: true},
		{key: "phone", label: "Phone Number", required: true},
		{key: "experience", label: "Years of Experience", validate: validateExperience},
		{key: "position", label: "Desired Position"},
		{key: "location", label: "Current Location"},
		{key: "tech_stack", label: "Tech Stack (e.g., Python, TensorFlow, PostgreSQL)", required: true},
	}

	for _, field := range intakeFields {
		validate := field.validate
		if validate == nil && field.required {
			validate = requiredField(loc)
		}

		prompt := promptui.Prompt{
			Label:    loc.say(field.label),
			Validate: validate,
		}

		value, err := prompt.Run()
		if err != nil {
			return candidate.Profile{}, err
		}

		fields[field.key] = strings.TrimSpace(value)
	}

	if fields["experience"] == "" {
		fields["experience"] = "0"
	}

	var profile candidate.Profile
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &profile,
	})
	if err != nil {
		return candidate.Profile{}, fmt.Errorf("building intake decoder: %w", err)
	}

	if err := decoder.Decode(fields); err != nil {
		return candidate.Profile{}, fmt.Errorf("decoding intake form: %w", err)
	}

	return profile, nil
}

func requiredField(loc *localizer) promptui.ValidateFunc {
	return func(input string) error {
		if strings.TrimSpace(input) == "" {
			return errors.New(loc.say("Please fill in all required fields."))
		}
		return nil
	}
}

func validateExperience(input string) error {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil
	}

	years, err := strconv.Atoi(input)
	if err != nil || years < 0 || years > maxExperienceYears {
		return fmt.Errorf("enter a whole number between 0 and %d", maxExperienceYears)
	}

	return nil
}

func questionLoop(ctx context.Context, runner *interview.Runner, session *interview.Session, loc *localizer) error {
	total := len(session.Questions())

	for {
		display, ok := runner.DisplayQuestion(ctx, session, loc.lang)
		if !ok {
			return nil
		}

		fmt.Println()
		fmt.Printf("%s %d/%d: %s\n", loc.say("Question"), session.Index()+1, total, display)

		prompt := promptui.Prompt{
			Label:    loc.say("Your Answer"),
			Validate: requiredField(loc),
		}

		answer, err := prompt.Run()
		if err != nil {
			return errExit
		}

		if err := runner.Submit(ctx, session, answer); err != nil {
			var vErr *interview.ValidationError
			if errors.As(err, &vErr) {
				fmt.Println(loc.say(vErr.Reason))
				continue
			}
			return err
		}
	}
}

func printSummary(record candidate.Record, loc *localizer) {
	fmt.Println()
	fmt.Println(loc.say("Interview completed! Your responses have been saved. We will contact you for further steps."))
	fmt.Println(loc.say("Your Responses:"))

	for idx, qa := range record.Interview {
		fmt.Printf("Q%d: %s\n", idx+1, loc.say(qa.Question))
		fmt.Printf("A%d: %s\n", idx+1, loc.say(qa.Answer))
		fmt.Printf("%s: %s\n", loc.say("Sentiment"), string(qa.Sentiment))
		fmt.Println("---")
	}
}

// saveWithRetry persists the snapshot, offering a retry when the store is
// unavailable so a completed interview is never dropped silently.
func saveWithRetry(st *store.Store, record candidate.Record, loc *localizer, logger *zap.Logger) error {
	for {
		err := st.Upsert(record)
		if err == nil {
			logger.Info("interview saved", append(sessionLogFields(record.SessionID, ""),
				zap.String("candidate_email", record.Info.Email),
				zap.String("path", st.Path()),
			)...)
			return nil
		}

		logger.Warn("saving the interview failed", zap.Error(err))
		fmt.Println(loc.say("Saving your interview failed."))

		prompt := promptui.Select{
			Label: loc.say("What should happen with the result?"),
			Items: []string{PromptRetry, PromptDiscard},
		}

		_, action, promptErr := prompt.Run()
		if promptErr != nil || action == PromptDiscard {
			logger.Error("interview result discarded by user", append(sessionLogFields(record.SessionID, ""),
				zap.Error(err),
			)...)
			return errExit
		}
	}
}

func confirm(label string) (bool, error) {
	prompt := promptui.Select{
		Label: label,
		Items: []string{PromptYes, PromptNo},
	}

	_, action, err := prompt.Run()
	if err != nil {
		return false, err
	}

	return action == PromptYes, nil
}

// localizer translates UI strings into the chosen display language. Degrades
// to the original text through the translator's fallback policy.
type localizer struct {
	ctx        context.Context
	translator translate.Translator
	lang       string
}

func (l *localizer) say(text string) string {
	return l.translator.Translate(l.ctx, text, l.lang)
}
