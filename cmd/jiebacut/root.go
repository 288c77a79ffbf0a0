// Command jiebacut is a CLI front end for the segmentation facade:
// word cutting, search-index cutting, HMM-only cutting, POS tagging,
// and TF-IDF keyword extraction, plus a toy full-text-parser "serve"
// loop exercising the ftparser contract end to end.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/oceanbase/jieba-go/internal/config"
	"github.com/oceanbase/jieba-go/jieba"
)

type rootFlags struct {
	configPath   string
	baseDict     string
	model        string
	userDict     string
	idf          string
	stopWords    string
	separators   string
	weightPolicy string
	verbose      bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	root := &cobra.Command{
		Use:           "jiebacut",
		Short:         "Chinese text segmentation over the jieba facade",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", "path to a jiebacut config file (yaml/toml/json)")
	pf.StringVar(&flags.baseDict, "base-dict", "", "path to the base dictionary file")
	pf.StringVar(&flags.model, "model", "", "path to the HMM model file")
	pf.StringVar(&flags.userDict, "user-dict", "", "path to an optional user dictionary file")
	pf.StringVar(&flags.idf, "idf", "", "path to an idf weight table (enables keywords)")
	pf.StringVar(&flags.stopWords, "stop-words", "", "path to a stop word list (enables keywords)")
	pf.StringVar(&flags.separators, "separators", "", "override the default separator rune set")
	pf.StringVar(&flags.weightPolicy, "weight-policy", "", "user word default weight policy: min/median/max")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newCutCmd(flags),
		newCutAllCmd(flags),
		newCutSearchCmd(flags),
		newCutHMMCmd(flags),
		newTagCmd(flags),
		newKeywordsCmd(flags),
		newServeCmd(flags),
	)
	return root
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// buildJieba resolves flags (optionally layered over a config file,
// with explicitly-set flags winning) into a ready *jieba.Jieba.
func buildJieba(flags *rootFlags) (*jieba.Jieba, *zap.Logger, error) {
	log, err := newLogger(flags.verbose)
	if err != nil {
		return nil, nil, errors.Wrap(err, "jiebacut: build logger")
	}

	cfg := &config.Config{}
	if flags.configPath != "" {
		cfg, err = config.Load(flags.configPath)
		if err != nil {
			return nil, nil, err
		}
	}
	overrideIfSet(&cfg.BaseDictPath, flags.baseDict)
	overrideIfSet(&cfg.ModelPath, flags.model)
	overrideIfSet(&cfg.UserDictPath, flags.userDict)
	overrideIfSet(&cfg.IdfPath, flags.idf)
	overrideIfSet(&cfg.StopWordsPath, flags.stopWords)
	overrideIfSet(&cfg.Separators, flags.separators)
	overrideIfSet(&cfg.WeightPolicy, flags.weightPolicy)

	if cfg.BaseDictPath == "" || cfg.ModelPath == "" {
		return nil, nil, errors.New("jiebacut: --base-dict and --model (or --config) are required")
	}

	baseDict, err := os.Open(cfg.BaseDictPath)
	if err != nil {
		return nil, nil, errors.Wrap(err, "jiebacut: open base dictionary")
	}
	defer baseDict.Close()

	model, err := os.Open(cfg.ModelPath)
	if err != nil {
		return nil, nil, errors.Wrap(err, "jiebacut: open HMM model")
	}
	defer model.Close()

	policy, err := cfg.ParseWeightPolicy()
	if err != nil {
		return nil, nil, err
	}

	opts := []jieba.Option{jieba.WithLogger(log), jieba.WithUserDictWeightPolicy(policy)}
	if cfg.Separators != "" {
		opts = append(opts, jieba.WithSeparators(cfg.Separators))
	}

	var idfFile, stopWordsFile *os.File
	if cfg.IdfPath != "" && cfg.StopWordsPath != "" {
		if idfFile, err = os.Open(cfg.IdfPath); err != nil {
			return nil, nil, errors.Wrap(err, "jiebacut: open idf table")
		}
		defer idfFile.Close()
		if stopWordsFile, err = os.Open(cfg.StopWordsPath); err != nil {
			return nil, nil, errors.Wrap(err, "jiebacut: open stop word list")
		}
		defer stopWordsFile.Close()
		opts = append(opts, jieba.WithKeywordExtraction(idfFile, stopWordsFile))
	}

	j, err := jieba.New(baseDict, model, opts...)
	if err != nil {
		return nil, nil, errors.Wrap(err, "jiebacut: build jieba")
	}

	if cfg.UserDictPath != "" {
		userDict, err := os.Open(cfg.UserDictPath)
		if err != nil {
			return nil, nil, errors.Wrap(err, "jiebacut: open user dictionary")
		}
		defer userDict.Close()
		if err := j.LoadUserDict(userDict); err != nil {
			return nil, nil, errors.Wrap(err, "jiebacut: load user dictionary")
		}
	}

	return j, log, nil
}

func overrideIfSet(dst *string, flagValue string) {
	if flagValue != "" {
		*dst = flagValue
	}
}

func readSentence(args []string) (string, error) {
	if len(args) == 0 {
		return "", errors.New("jiebacut: a sentence argument is required")
	}
	return strings.Join(args, " "), nil
}
