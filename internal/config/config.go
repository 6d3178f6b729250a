package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	LogLevel string         `mapstructure:"log_level"`
	Paths    PathsConfig    `mapstructure:"paths"`
	TTS      TTSConfig      `mapstructure:"tts"`
	Workflow WorkflowConfig `mapstructure:"workflow"`
}

type PathsConfig struct {
	// InputDir holds the learning-path JSON files, one file per path.
	InputDir string `mapstructure:"input_dir"`
	// AssetRoot is the directory audio assets and manifests live under.
	AssetRoot string `mapstructure:"asset_root"`
}

type TTSConfig struct {
	// Language is the target language code (es, en, ...).
	Language string `mapstructure:"language"`
	// RequestTimeout bounds one synthesis call, in seconds.
	RequestTimeout int `mapstructure:"request_timeout"`
}

type WorkflowConfig struct {
	// MaxSlugLength rejects degenerate slugs above this byte length.
	MaxSlugLength int `mapstructure:"max_slug_length"`
}

type LoadOptions struct {
	Cmd        flagBinder
	ConfigFile string
	Defaults   Config
}

type flagBinder interface {
	Flags() *pflag.FlagSet
}

func DefaultConfig() Config {
	return Config{
		LogLevel: "info",
		Paths: PathsConfig{
			InputDir:  "public/learning-paths/spanisch",
			AssetRoot: "public/audio",
		},
		TTS: TTSConfig{
			Language:       "es",
			RequestTimeout: 30,
		},
		Workflow: WorkflowConfig{
			MaxSlugLength: 120,
		},
	}
}

func RegisterFlags(fs *pflag.FlagSet, defaults Config) {
	fs.String("log-level", defaults.LogLevel, "Log level (debug|info|warn|error)")
	fs.String("paths-input-dir", defaults.Paths.InputDir, "Directory containing learning-path JSON files")
	fs.String("paths-asset-root", defaults.Paths.AssetRoot, "Root directory for audio assets and manifests")
	fs.String("tts-language", defaults.TTS.Language, "Target language code for synthesis")
	fs.Int("tts-request-timeout", defaults.TTS.RequestTimeout, "Per-utterance synthesis timeout in seconds")
	fs.Int("workflow-max-slug-length", defaults.Workflow.MaxSlugLength, "Maximum slug length before a candidate is rejected")
}

func Load(opts LoadOptions) (Config, error) {
	v := viper.New()

	setDefaults(v, opts.Defaults)
	if opts.Cmd != nil {
		if err := v.BindPFlags(opts.Cmd.Flags()); err != nil {
			return Config{}, fmt.Errorf("bind flags: %w", err)
		}
	}
	registerAliases(v)

	v.SetEnvPrefix("PATHAUDIO")
	replacer := strings.NewReplacer("-", "_", ".", "_", "__", "_")
	v.SetEnvKeyReplacer(replacer)
	v.AutomaticEnv()

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	} else {
		v.SetConfigName("pathaudio")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return Config{}, fmt.Errorf("read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper, c Config) {
	v.SetDefault("log_level", c.LogLevel)
	v.SetDefault("paths.input_dir", c.Paths.InputDir)
	v.SetDefault("paths.asset_root", c.Paths.AssetRoot)
	v.SetDefault("tts.language", c.TTS.Language)
	v.SetDefault("tts.request_timeout", c.TTS.RequestTimeout)
	v.SetDefault("workflow.max_slug_length", c.Workflow.MaxSlugLength)
}

func registerAliases(v *viper.Viper) {
	v.RegisterAlias("log_level", "log-level")
	v.RegisterAlias("paths.input_dir", "paths-input-dir")
	v.RegisterAlias("paths.asset_root", "paths-asset-root")
	v.RegisterAlias("tts.language", "tts-language")
	v.RegisterAlias("tts.request_timeout", "tts-request-timeout")
	v.RegisterAlias("workflow.max_slug_length", "workflow-max-slug-length")
}
