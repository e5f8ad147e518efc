package main

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var verbosity int

	root := &cobra.Command{
		Use:           "stenodict",
		Short:         "Compile and manage phonetic stenography dictionaries",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			zerolog.SetGlobalLevel(levelForVerbosity(verbosity))
			log.Logger = log.Output(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()})
		},
	}
	root.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "increase log verbosity")

	root.AddCommand(newGenerateCommand())
	root.AddCommand(newMergeCommand())
	root.AddCommand(newSortWordsCommand())

	return root
}

// levelForVerbosity maps an argparse-style -v count to a zerolog
// level: 0 -> warn, 1 -> info, 2+ -> debug.
func levelForVerbosity(v int) zerolog.Level {
	switch {
	case v >= 2:
		return zerolog.DebugLevel
	case v == 1:
		return zerolog.InfoLevel
	default:
		return zerolog.WarnLevel
	}
}
