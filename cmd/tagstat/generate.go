package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/verte-zerg/tagstat/internal/generator"
	"github.com/verte-zerg/tagstat/internal/wordlist"
)

const (
	defaultGenFiles   = 4
	defaultGenRecords = 1000
	defaultGenCaps    = 0.5
	defaultGenPunct   = 0.5
)

type generateFlags struct {
	dir      string
	files    int
	records  int
	seed     int64
	wordlist string
	caps     float64
	punct    float64
}

func newGenerateCmd() *cobra.Command {
	flags := &generateFlags{}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a synthetic corpus of tagged records",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerateCmd(cmd, flags)
		},
	}
	cmd.Flags().StringVar(&flags.dir, "dir", defaultDir, "output directory")
	cmd.Flags().IntVar(&flags.files, "files", defaultGenFiles, "number of files")
	cmd.Flags().IntVar(&flags.records, "records", defaultGenRecords, "records per file")
	cmd.Flags().Int64Var(&flags.seed, "seed", 0, "random seed (default: current time)")
	cmd.Flags().StringVar(&flags.wordlist, "wordlist", "", "word list file, one word per line")
	cmd.Flags().Float64Var(&flags.caps, "caps", defaultGenCaps, "probability of a capitalized first word (0-1)")
	cmd.Flags().Float64Var(&flags.punct, "punct", defaultGenPunct, "probability of trailing punctuation (0-1)")
	return cmd
}

func runGenerateCmd(cmd *cobra.Command, flags *generateFlags) error {
	if flags.caps < 0 || flags.caps > 1 {
		return fmt.Errorf("--caps must be between 0 and 1")
	}
	if flags.punct < 0 || flags.punct > 1 {
		return fmt.Errorf("--punct must be between 0 and 1")
	}
	seed := flags.seed
	if !cmd.Flags().Changed("seed") {
		seed = time.Now().UnixNano()
	}

	opts := generator.Options{
		Files:    flags.files,
		Records:  flags.records,
		CapsPct:  flags.caps,
		PunctPct: flags.punct,
	}
	if flags.wordlist != "" {
		words, err := wordlist.LoadWords(flags.wordlist)
		if err != nil {
			return err
		}
		opts.Words = wordlist.Filter(words, wordlist.SingleWord)
		if len(opts.Words) == 0 {
			return fmt.Errorf("word list %s has no usable words", flags.wordlist)
		}
	}

	paths, err := generator.New(seed).WriteCorpus(flags.dir, opts)
	if err != nil {
		return err
	}
	logger := newLogger(cmd.ErrOrStderr(), defaultLogLevel, defaultLogFormat)
	logger.Info("corpus generated", "dir", flags.dir, "files", len(paths), "records", flags.records, "seed", seed)
	return nil
}
