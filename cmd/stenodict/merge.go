package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newMergeCommand() *cobra.Command {
	var force, recursive bool

	cmd := &cobra.Command{
		Use:   "merge <directory>",
		Short: "Merge dictionary JSON files in a directory into a single file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMerge(cmd, args[0], recursive, force)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite the output file if it already exists")
	cmd.Flags().BoolVarP(&recursive, "recursive", "r", false, "recursively search the directory")

	return cmd
}

func runMerge(cmd *cobra.Command, directory string, recursive, force bool) error {
	info, err := os.Stat(directory)
	if err != nil || !info.IsDir() {
		return fatal(fmt.Errorf("`%s` is not a directory", directory))
	}

	outputName := filepath.Base(filepath.Clean(directory)) + ".json"

	if !force {
		if _, err := os.Stat(outputName); err == nil {
			if !confirmOverwrite(cmd, outputName) {
				fmt.Fprintf(cmd.OutOrStdout(), "`%s` not overwritten\n", outputName)
				return nil
			}
		}
	}

	files, err := sortedJSONFiles(directory, recursive)
	if err != nil {
		return fatal(err)
	}
	if len(files) == 0 {
		log.Warn().Str("directory", directory).Msg("no JSON files found")
		return nil
	}

	combined, err := combineJSONFiles(files)
	if err != nil {
		return fatal(err)
	}

	out, err := os.Create(outputName)
	if err != nil {
		return fatal(err)
	}
	defer out.Close()

	if err := writeOrderedObject(out, combined); err != nil {
		return fatal(err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s written successfully.\n", outputName)
	return nil
}

func confirmOverwrite(cmd *cobra.Command, outputName string) bool {
	fmt.Fprintf(cmd.OutOrStdout(), "Do you want to overwrite the existing %s file? (y/n) ", outputName)
	reader := bufio.NewReader(cmd.InOrStdin())
	response, _ := reader.ReadString('\n')
	return strings.ToLower(strings.TrimSpace(response)) == "y"
}

// sortedJSONFiles returns the .json files under directory, sorted
// the way a human browsing a directory listing would expect (digit
// runs compared numerically), descending into subdirectories only
// when recursive is set.
func sortedJSONFiles(directory string, recursive bool) ([]string, error) {
	entries, err := os.ReadDir(directory)
	if err != nil {
		return nil, err
	}
	sort.Slice(entries, func(i, j int) bool {
		return naturalLess(entries[i].Name(), entries[j].Name())
	})

	var files []string
	for _, e := range entries {
		path := filepath.Join(directory, e.Name())
		if !e.IsDir() {
			if strings.HasSuffix(path, ".json") {
				files = append(files, path)
			}
			continue
		}
		if recursive {
			sub, err := sortedJSONFiles(path, recursive)
			if err != nil {
				return nil, err
			}
			files = append(files, sub...)
		}
	}
	return files, nil
}

// combineJSONFiles merges dictionary JSON files in priority order:
// the first file a key is seen in wins, and later files naming the
// same stroke sequence are ignored (only logged, never an error).
func combineJSONFiles(files []string) ([]orderedPair, error) {
	seen := make(map[string]string)
	var combined []orderedPair

	for _, file := range files {
		log.Info().Str("file", file).Msg("merging")

		f, err := os.Open(file)
		if err != nil {
			return nil, err
		}
		pairs, err := decodeOrderedObject(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", file, err)
		}

		for _, p := range pairs {
			if existing, ok := seen[p.Key]; ok {
				logIgnoredRule(file, p.Key, p.Value, existing)
				continue
			}
			seen[p.Key] = p.Value
			combined = append(combined, p)
		}
	}

	return combined, nil
}

func logIgnoredRule(file, key, value, keptValue string) {
	fields := func(e *zerolog.Event) *zerolog.Event {
		return e.Str("file", file).Str("key", key).Str("value", value).Str("kept_value", keptValue)
	}
	if value == keptValue {
		fields(log.Debug()).Msg("ignoring lower-priority rule")
		return
	}
	fields(log.Warn()).Msg("ignoring lower-priority rule")
}

func writeOrderedObject(w *os.File, pairs []orderedPair) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString("{\n"); err != nil {
		return err
	}
	for i, p := range pairs {
		line := fmt.Sprintf("%q: %q", p.Key, p.Value)
		if i < len(pairs)-1 {
			line += ","
		}
		if _, err := bw.WriteString(line + "\n"); err != nil {
			return err
		}
	}
	if _, err := bw.WriteString("}"); err != nil {
		return err
	}
	return bw.Flush()
}
