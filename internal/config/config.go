// Package config loads cmd/jiebacut's CLI configuration from a layered
// YAML/env source via viper: dictionary file paths, the separator rune
// set, and the user-word weight policy.
package config

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/oceanbase/jieba-go/internal/dict"
	"github.com/oceanbase/jieba-go/internal/errs"
)

// Config is the typed CLI configuration jiebacut's commands share.
type Config struct {
	// BaseDictPath is the 3-column "word freq tag" dictionary file.
	BaseDictPath string
	// ModelPath is the 9-line HMM model file.
	ModelPath string
	// UserDictPath is an optional 1-3 column user dictionary file.
	// Empty means no user dictionary is loaded.
	UserDictPath string
	// IdfPath and StopWordsPath feed keyword extraction; either may be
	// empty, in which case Keywords is unavailable.
	IdfPath       string
	StopWordsPath string
	// Separators overrides the default PreFilter separator rune set.
	// Empty keeps the built-in default.
	Separators string
	// WeightPolicy selects the default frequency assigned to a user
	// word inserted without an explicit frequency: "min", "median", or
	// "max". Defaults to "median".
	WeightPolicy string
}

// Load builds a Config from defaults, an optional config file at path
// (if non-empty), and environment variables prefixed JIEBACUT_, the
// way viper layers configuration sources across the retrieval pack's
// CLI tools.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("weight_policy", "median")
	v.SetDefault("separators", "")
	v.SetEnvPrefix("jiebacut")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "config: read %s", path)
		}
	}

	cfg := &Config{
		BaseDictPath:  v.GetString("base_dict"),
		ModelPath:     v.GetString("model"),
		UserDictPath:  v.GetString("user_dict"),
		IdfPath:       v.GetString("idf"),
		StopWordsPath: v.GetString("stop_words"),
		Separators:    v.GetString("separators"),
		WeightPolicy:  v.GetString("weight_policy"),
	}
	if cfg.BaseDictPath == "" {
		return nil, errors.Wrap(errs.ErrInvalidInput, "config: base_dict is required")
	}
	if cfg.ModelPath == "" {
		return nil, errors.Wrap(errs.ErrInvalidInput, "config: model is required")
	}
	return cfg, nil
}

// ParseWeightPolicy converts the config's WeightPolicy string into a
// dict.WeightPolicy. An empty value yields dict.WeightMedian; an
// unrecognized value is rejected with errs.ErrInvalidInput.
func (c *Config) ParseWeightPolicy() (dict.WeightPolicy, error) {
	switch strings.ToLower(c.WeightPolicy) {
	case "", "median":
		return dict.WeightMedian, nil
	case "min":
		return dict.WeightMin, nil
	case "max":
		return dict.WeightMax, nil
	default:
		return dict.WeightMedian, errors.Wrapf(errs.ErrInvalidInput, "config: unknown weight policy %q", c.WeightPolicy)
	}
}
