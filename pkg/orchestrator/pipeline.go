// Package orchestrator drives the per-word pipeline — pronunciation
// lookup, syllabification, stroke building, per-sequence
// postprocessing — over a word list, then runs whole-dictionary
// postprocessing once every word has been translated.
package orchestrator

import (
	"bufio"
	"context"
	"errors"
	"io"
	"runtime"
	"sort"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/andrewhess/stenodict/pkg/config"
	"github.com/andrewhess/stenodict/pkg/errs"
	"github.com/andrewhess/stenodict/pkg/ipaindex"
	"github.com/andrewhess/stenodict/pkg/postprocess"
	"github.com/andrewhess/stenodict/pkg/steno"
	"github.com/andrewhess/stenodict/pkg/strokebuilder"
	"github.com/andrewhess/stenodict/pkg/syllabify"
)

// Dictionary is the final output of a Generate run: one entry per
// word that had at least one surviving stroke sequence, in input
// order.
type Dictionary struct {
	Entries []postprocess.Entry
}

// Diagnostic records one recovered, per-word failure. A Generate run
// never aborts because of these; they are logged once every word has
// been processed and also returned so a caller (the CLI) can report a
// summary.
type Diagnostic struct {
	Kind          errs.Kind
	Word          string
	Pronunciation string
	Message       string
}

// Pipeline bundles everything Generate needs to run: validated
// configuration, the IPA pronunciation index, and the words to
// translate.
type Pipeline struct {
	Config *config.Config
	Index  *ipaindex.Index
	Words  []string

	// Concurrency bounds the number of words translated at once. Zero
	// means GOMAXPROCS.
	Concurrency int
}

// NewPipeline builds a Pipeline, reading the word list from r (one
// word per line, blank lines ignored).
func NewPipeline(cfg *config.Config, idx *ipaindex.Index, r io.Reader) (Pipeline, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" {
			continue
		}
		words = append(words, word)
	}
	if err := scanner.Err(); err != nil {
		return Pipeline{}, err
	}
	return Pipeline{Config: cfg, Index: idx, Words: words}, nil
}

type wordResult struct {
	entry       *postprocess.Entry
	diagnostics []Diagnostic
}

// Generate translates every word into its candidate stroke sequences,
// deduplicates and sorts them per word, then runs whole-dictionary
// postprocessing (homophone disambiguation). Per-word failures are
// recovered as Diagnostics; only configuration-level failures abort
// the run, which here means postprocessing rule data the loader does
// not check (a vowel-drop rule's left/right constraint that does not
// parse).
func (p Pipeline) Generate(ctx context.Context) (*Dictionary, []Diagnostic, error) {
	chain, err := postprocess.PerSequence(p.Config.Postprocessing())
	if err != nil {
		return nil, nil, errs.New(errs.ConfigInvalid, err)
	}

	results := make([]wordResult, len(p.Words))

	concurrency := p.Concurrency
	if concurrency <= 0 {
		concurrency = runtime.GOMAXPROCS(0)
	}

	var wg sync.WaitGroup
	sem := make(chan struct{}, concurrency)

	for i, word := range p.Words {
		if ctx.Err() != nil {
			break
		}

		wg.Add(1)
		sem <- struct{}{}
		go func(i int, word string) {
			defer wg.Done()
			defer func() { <-sem }()
			results[i] = p.translateWord(ctx, word, chain)
		}(i, word)
	}
	wg.Wait()

	var diagnostics []Diagnostic
	entries := make([]postprocess.Entry, 0, len(results))
	for _, r := range results {
		diagnostics = append(diagnostics, r.diagnostics...)
		if r.entry != nil {
			entries = append(entries, *r.entry)
		}
	}

	for _, d := range diagnostics {
		logDiagnostic(d)
	}

	entries, err = postprocess.Disambiguate(p.Config.Postprocessing().Disambiguator, entries)
	if err != nil {
		return nil, nil, errs.New(errs.ConfigInvalid, err)
	}

	log.Info().
		Int("words_requested", len(p.Words)).
		Int("words_translated", len(entries)).
		Msg("generated translations")

	return &Dictionary{Entries: entries}, diagnostics, nil
}

// translateWord produces every candidate stroke sequence for word
// across all of its pronunciations, deduplicated and sorted by
// printable form.
func (p Pipeline) translateWord(ctx context.Context, word string, chain postprocess.Chain) wordResult {
	log.Debug().Str("word", word).Msg("translating")

	prons, ok := p.Index.Lookup(word)
	if !ok {
		return wordResult{diagnostics: []Diagnostic{{
			Kind: errs.Untranslatable, Word: word,
			Message: "no translation (missing IPA entry)",
		}}}
	}

	seen := make(map[string]bool)
	var sequences []steno.Sequence
	var diagnostics []Diagnostic

	for _, ipa := range prons {
		syllables, err := syllabify.Syllabify(ipa, p.Config)
		if err != nil {
			diagnostics = append(diagnostics, diagnosticFromError(word, ipa, err))
			continue
		}

		candidateSeqs, err := strokebuilder.BuildCandidates(p.Config, syllables)
		if err != nil {
			diagnostics = append(diagnostics, diagnosticFromError(word, ipa, err))
			continue
		}

		candidates := make([]postprocess.Candidate, len(candidateSeqs))
		for i, seq := range candidateSeqs {
			candidates[i] = postprocess.Candidate{Sequence: seq, Syllables: syllables}
		}

		for _, cand := range chain.Apply(ctx, candidates) {
			key := cand.Sequence.String()
			if seen[key] {
				continue
			}
			seen[key] = true
			sequences = append(sequences, cand.Sequence)
		}
	}

	if len(sequences) == 0 {
		diagnostics = append(diagnostics, Diagnostic{
			Kind: errs.Untranslatable, Word: word, Message: "no translation",
		})
		return wordResult{diagnostics: diagnostics}
	}

	sort.Slice(sequences, func(i, j int) bool {
		return sequences[i].String() < sequences[j].String()
	})

	return wordResult{
		entry:       &postprocess.Entry{Word: word, Sequences: sequences},
		diagnostics: diagnostics,
	}
}

func diagnosticFromError(word, pron string, err error) Diagnostic {
	var e *errs.Error
	if errors.As(err, &e) {
		return Diagnostic{Kind: e.Kind, Word: word, Pronunciation: pron, Message: e.Error()}
	}
	return Diagnostic{Kind: errs.Untranslatable, Word: word, Pronunciation: pron, Message: err.Error()}
}

func logDiagnostic(d Diagnostic) {
	evt := log.Warn()
	if d.Pronunciation != "" {
		evt = evt.Str("pronunciation", d.Pronunciation)
	}
	evt.Str("word", d.Word).Str("kind", d.Kind.String()).Msg(d.Message)
}
