package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func newCutCmd(flags *rootFlags) *cobra.Command {
	var noHMM bool
	cmd := &cobra.Command{
		Use:   "cut <sentence>",
		Short: "Segment a sentence with the Mix strategy",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sentence, err := readSentence(args)
			if err != nil {
				return err
			}
			j, _, err := buildJieba(flags)
			if err != nil {
				return err
			}
			words, err := j.Cut(sentence, !noHMM)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(words, "/"))
			return nil
		},
	}
	cmd.Flags().BoolVar(&noHMM, "no-hmm", false, "disable HMM unknown-word recovery")
	return cmd
}

func newCutAllCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "cutall <sentence>",
		Short: "Enumerate every dictionary match (Full strategy)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sentence, err := readSentence(args)
			if err != nil {
				return err
			}
			j, _, err := buildJieba(flags)
			if err != nil {
				return err
			}
			words, err := j.CutAll(sentence)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(words, "/"))
			return nil
		},
	}
}

func newCutSearchCmd(flags *rootFlags) *cobra.Command {
	var noHMM bool
	cmd := &cobra.Command{
		Use:   "cutsearch <sentence>",
		Short: "Segment for search indexing (Query strategy)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sentence, err := readSentence(args)
			if err != nil {
				return err
			}
			j, _, err := buildJieba(flags)
			if err != nil {
				return err
			}
			words, err := j.CutForSearch(sentence, !noHMM)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(words, "/"))
			return nil
		},
	}
	cmd.Flags().BoolVar(&noHMM, "no-hmm", false, "disable HMM unknown-word recovery")
	return cmd
}

func newCutHMMCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "cuthmm <sentence>",
		Short: "Segment using only the HMM model",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sentence, err := readSentence(args)
			if err != nil {
				return err
			}
			j, _, err := buildJieba(flags)
			if err != nil {
				return err
			}
			words, err := j.CutHMM(sentence)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(words, "/"))
			return nil
		},
	}
}

func newTagCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "tag <sentence>",
		Short: "Segment and assign a part-of-speech tag to each word",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sentence, err := readSentence(args)
			if err != nil {
				return err
			}
			j, _, err := buildJieba(flags)
			if err != nil {
				return err
			}
			words, err := j.Tag(sentence)
			if err != nil {
				return err
			}
			parts := make([]string, len(words))
			for i, w := range words {
				parts[i] = w.Text + "/" + w.Tag
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(parts, " "))
			return nil
		},
	}
}

func newKeywordsCmd(flags *rootFlags) *cobra.Command {
	var topN int
	cmd := &cobra.Command{
		Use:   "keywords <sentence>",
		Short: "Extract the top TF-IDF keywords from a sentence",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sentence, err := readSentence(args)
			if err != nil {
				return err
			}
			j, _, err := buildJieba(flags)
			if err != nil {
				return err
			}
			kws, err := j.Keywords(sentence, topN)
			if err != nil {
				return err
			}
			for _, kw := range kws {
				fmt.Fprintln(cmd.OutOrStdout(), kw.Word+"\t"+strconv.FormatFloat(kw.Weight, 'f', 6, 64))
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&topN, "top", 10, "number of keywords to return")
	return cmd
}
