package main

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

func newSortWordsCommand() *cobra.Command {
	var wordsPath, canonicalOrderPath, outputPath string
	var ignoreCase, noOutput bool

	cmd := &cobra.Command{
		Use:   "sort-words",
		Short: "Sort words by their order in a canonical word list",
		RunE: func(cmd *cobra.Command, args []string) error {
			if noOutput == (outputPath != "") {
				return fatal(fmt.Errorf("exactly one of --output or --no-output must be given"))
			}
			out := outputPath
			if noOutput {
				out = ""
			}
			return runSortWords(cmd, wordsPath, canonicalOrderPath, ignoreCase, out)
		},
	}

	cmd.Flags().StringVar(&wordsPath, "words", "", "file containing words to reorder")
	cmd.Flags().StringVar(&canonicalOrderPath, "canonical-order", "", "file listing words in the desired order")
	cmd.Flags().BoolVarP(&ignoreCase, "ignore-case", "i", false,
		"ignore capitalization when searching for words in the canonical order file")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "file to write the sorted words to")
	cmd.Flags().BoolVar(&noOutput, "no-output", false, "don't write the sorted words to a file")
	for _, name := range []string{"words", "canonical-order"} {
		_ = cmd.MarkFlagRequired(name)
	}

	return cmd
}

func runSortWords(cmd *cobra.Command, wordsPath, canonicalOrderPath string, ignoreCase bool, outputPath string) error {
	inputWords, err := readLines(wordsPath)
	if err != nil {
		return fatal(err)
	}
	canonicalWords, err := readLines(canonicalOrderPath)
	if err != nil {
		return fatal(err)
	}

	normalize := func(s string) string { return s }
	if ignoreCase {
		normalize = strings.ToLower
	}

	rank := make(map[string]int, len(canonicalWords))
	for i, w := range canonicalWords {
		key := normalize(w)
		if _, exists := rank[key]; !exists {
			rank[key] = i
		}
	}

	// Compute each word's rank once, matching Python's sorted(key=...)
	// decorate-sort-undecorate: a comparator-based sort would call
	// rankOf on every comparison and print "not found" repeatedly.
	ranks := make([]int, len(inputWords))
	for i, w := range inputWords {
		key := normalize(w)
		if r, ok := rank[key]; ok {
			ranks[i] = r
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Not found in %s: `%s`\n", canonicalOrderPath, w)
		ranks[i] = len(rank)
	}

	order := make([]int, len(inputWords))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		i, j := order[a], order[b]
		return ranks[i] < ranks[j]
	})

	sorted := make([]string, len(inputWords))
	for k, i := range order {
		sorted[k] = inputWords[i]
	}

	sortedWords := dedupeAdjacent(sorted)

	if outputPath == "" {
		return nil
	}
	return writeLines(outputPath, sortedWords)
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, strings.TrimSpace(scanner.Text()))
	}
	return lines, scanner.Err()
}

func writeLines(path string, lines []string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = f.WriteString(strings.Join(lines, "\n"))
	return err
}

func dedupeAdjacent(words []string) []string {
	out := make([]string, 0, len(words))
	prev := ""
	first := true
	for _, w := range words {
		if first || w != prev {
			out = append(out, w)
			prev = w
			first = false
		}
	}
	return out
}
