package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// ConvColumns maps the conversation-level roles the toolkit depends on to the
// column names actually used by a dataset.
type ConvColumns struct {
	ConvID       string `toml:"conv_id"`
	UserID       string `toml:"user_id"`
	UserFreq     string `toml:"user_freq"`
	Conversation string `toml:"conversation"`
	Source       string `toml:"source"`
	Model        string `toml:"model"`
	Country      string `toml:"country"`
	State        string `toml:"state"`
	Turns        string `toml:"turns"`
	NCode        string `toml:"n_code"`
	NToxic       string `toml:"n_toxic"`
	NRedacted    string `toml:"n_redacted"`
	Start        string `toml:"start"`
	End          string `toml:"end"`
	NWords       string `toml:"n_words"`
	NWordsUser   string `toml:"n_words_user"`
	NWordsGPT    string `toml:"n_words_gpt"`
	Language     string `toml:"language"`
}

// TurnColumns maps turn-level roles to dataset field names.
type TurnColumns struct {
	ConvID     string `toml:"conv_id"`
	Role       string `toml:"role"`
	TurnNumber string `toml:"turn_number"`
	Message    string `toml:"message"`
	Language   string `toml:"language"`
	NWords     string `toml:"n_words"`
	CodeBlock  string `toml:"code_block"`
	Toxic      string `toml:"toxic"`
	Redacted   string `toml:"redacted"`
	Timestamp  string `toml:"timestamp"`
}

type Columns struct {
	Conv ConvColumns `toml:"conv"`
	Turn TurnColumns `toml:"turn"`
}

type Config struct {
	Columns Columns `toml:"columns"`
	OutDir  string  `toml:"out_dir"`
	Theme   string  `toml:"theme"`
}

// DefaultColumns returns the column names assumed when no config file
// overrides them.
func DefaultColumns() Columns {
	return Columns{
		Conv: ConvColumns{
			ConvID:       "conv_id",
			UserID:       "user_id",
			UserFreq:     "user_freq",
			Conversation: "conversation",
			Source:       "source",
			Model:        "model",
			Country:      "country",
			State:        "state",
			Turns:        "turns",
			NCode:        "n_code",
			NToxic:       "n_toxic",
			NRedacted:    "n_redacted",
			Start:        "time_first",
			End:          "time_last",
			NWords:       "n_words",
			NWordsUser:   "n_words_user",
			NWordsGPT:    "n_words_gpt",
			Language:     "language",
		},
		Turn: TurnColumns{
			ConvID:     "conv_id",
			Role:       "role",
			TurnNumber: "turn_num",
			Message:    "content",
			Language:   "language",
			NWords:     "n_words",
			CodeBlock:  "code_block",
			Toxic:      "toxic",
			Redacted:   "redacted",
			Timestamp:  "timestamp",
		},
	}
}

func Load() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Columns: DefaultColumns(),
		OutDir:  ".",
		Theme:   "light",
	}

	cfgPath := filepath.Join(home, ".config", "chatlens", "config.toml")
	if _, err := os.Stat(cfgPath); err == nil {
		if _, err := toml.DecodeFile(cfgPath, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", cfgPath, err)
		}
	}

	cfg.OutDir = expandHome(cfg.OutDir, home)

	return cfg, nil
}

func expandHome(path, home string) string {
	if len(path) > 1 && path[0] == '~' && path[1] == '/' {
		return filepath.Join(home, path[2:])
	}
	return path
}
