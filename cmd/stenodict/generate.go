package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/andrewhess/stenodict/pkg/config"
	"github.com/andrewhess/stenodict/pkg/errs"
	"github.com/andrewhess/stenodict/pkg/ipaindex"
	"github.com/andrewhess/stenodict/pkg/orchestrator"
)

func newGenerateCommand() *cobra.Command {
	var ipaPath, wordsPath, configPath, outputPath string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a phonetic steno dictionary",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, ipaPath, wordsPath, configPath, outputPath)
		},
	}

	cmd.Flags().StringVar(&ipaPath, "ipa-notation", "", "CSV file containing phonetic transcriptions for words")
	cmd.Flags().StringVar(&wordsPath, "words", "", "file containing the words to generate entries for, one per line")
	cmd.Flags().StringVar(&configPath, "config", "", "YAML file specifying how to generate entries for words")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "output.json", "file to write the dictionary to")
	for _, name := range []string{"ipa-notation", "words", "config"} {
		_ = cmd.MarkFlagRequired(name)
	}

	return cmd
}

func runGenerate(cmd *cobra.Command, ipaPath, wordsPath, configPath, outputPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fatal(err)
	}

	idx, err := ipaindex.Load(ipaPath)
	if err != nil {
		return fatal(err)
	}

	wordsFile, err := os.Open(wordsPath)
	if err != nil {
		return fatal(err)
	}
	defer wordsFile.Close()

	pipeline, err := orchestrator.NewPipeline(cfg, idx, wordsFile)
	if err != nil {
		return fatal(err)
	}

	dict, _, err := pipeline.Generate(cmd.Context())
	if err != nil {
		return fatal(err)
	}

	out, err := os.Create(outputPath)
	if err != nil {
		return fatal(err)
	}
	defer out.Close()

	numEntries, numStrokes, err := writeDictionary(out, dict)
	if err != nil {
		return fatal(err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Generated translations for %d out of %d words\n",
		len(dict.Entries), len(pipeline.Words))
	fmt.Fprintf(cmd.OutOrStdout(), "Generated %d strokes for %d entries\n", numStrokes, numEntries)

	return nil
}

// fatal logs err at error level and returns it unwrapped, so the
// root's SilenceErrors leaves only the logged line on stderr.
func fatal(err error) error {
	var e *errs.Error
	if errors.As(err, &e) {
		log.Error().Str("kind", e.Kind.String()).Msg(e.Error())
	} else {
		log.Error().Msg(err.Error())
	}
	return err
}
