// Package cli implements the recall CLI commands.
package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/dpratt/recall/internal/classify"
	"github.com/dpratt/recall/internal/config"
	"github.com/dpratt/recall/internal/memory"
	"github.com/dpratt/recall/internal/store"
)

var (
	dbFlag     string
	userFlag   string
	configFlag string
	debugFlag  bool
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "recall",
	Short: "Semantic memory for AI agents",
	Long:  "Deduplicated, topic-tagged memory for AI agents. Text in, ranked text out. SQLite-backed, single binary.",
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&dbFlag, "db", "d", "", "Database path (default: $RECALL_DB or ~/.recall/memory.db)")
	RootCmd.PersistentFlags().StringVarP(&userFlag, "user", "u", "", "User id owning the memories (default from config)")
	RootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Config file (default: ~/.recall/config.yaml)")
	RootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "Verbose diagnostic logging")
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configFlag)
	if err != nil {
		return nil, err
	}
	if dbFlag != "" {
		cfg.DBPath = dbFlag
	}
	if debugFlag {
		cfg.Debug = true
	}
	return cfg, nil
}

func newLogger(cfg *config.Config) zerolog.Logger {
	level := zerolog.InfoLevel
	if cfg.Debug {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).With().Timestamp().Logger()
}

func newClassifier(cfg *config.Config, log zerolog.Logger) *classify.Classifier {
	topicCfg := classify.DefaultConfig()
	if cfg.TopicsFile != "" {
		loaded, err := classify.LoadConfig(cfg.TopicsFile)
		if err != nil {
			// Malformed dictionaries degrade to the built-in one.
			log.Warn().Err(err).Str("path", cfg.TopicsFile).
				Msg("topics config unusable, using built-in categories")
		} else {
			topicCfg = loaded
		}
	}
	return classify.New(topicCfg, classify.DefaultOptions())
}

// session bundles the manager stack for one command invocation.
type session struct {
	mgr  *memory.Manager
	st   *store.SQLiteStore
	user string
}

func (s *session) close() { s.st.Close() }

// openSession builds the manager stack from config and flags.
func openSession() (*session, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	log := newLogger(cfg)

	st, err := store.NewSQLiteStore(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	mgr, err := memory.New(st, newClassifier(cfg, log), memory.Config{
		SimilarityThreshold: cfg.SimilarityThreshold,
		TopicBoost:          cfg.TopicBoost,
		Debug:               cfg.Debug,
	}, log)
	if err != nil {
		st.Close()
		return nil, err
	}

	user := userFlag
	if user == "" {
		user = cfg.DefaultUser
	}
	return &session{mgr: mgr, st: st, user: user}, nil
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}
