package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/oceanbase/jieba-go/ftparser"
	"github.com/oceanbase/jieba-go/internal/errs"
)

// newServeCmd runs a toy full-text-parser loop: each stdin line is one
// "document", scanned through an ftparser.Session exactly the way a
// database full-text index would drive the five-callback contract,
// exercising it end to end instead of leaving it merely declared.
func newServeCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Tokenize stdin lines through the ftparser.Session contract",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			j, _, err := buildJieba(flags)
			if err != nil {
				return err
			}
			session := ftparser.NewSession(j)
			if !session.IsCharsetSupported("utf8mb4") {
				return fmt.Errorf("jiebacut: serve requires utf8mb4 support: %w", errs.ErrNotSupported)
			}

			scanner := bufio.NewScanner(cmd.InOrStdin())
			out := cmd.OutOrStdout()
			for scanner.Scan() {
				line := scanner.Text()
				if line == "" {
					continue
				}
				if err := runDocument(session, line, out); err != nil {
					return err
				}
			}
			if err := scanner.Err(); err != nil && !errors.Is(err, io.EOF) {
				return err
			}
			return nil
		},
	}
}

func runDocument(session *ftparser.Session, line string, out io.Writer) error {
	if err := session.ScanBegin(line); err != nil {
		return err
	}
	defer session.ScanEnd()

	var tokens []string
	for {
		word, _, _, err := session.NextToken()
		if errors.Is(err, errs.ErrIterEnd) {
			break
		}
		if err != nil {
			return err
		}
		tokens = append(tokens, word)
	}
	fmt.Fprintln(out, strings.Join(tokens, "/"))
	return nil
}
