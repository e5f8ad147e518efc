package postprocess

import "context"

// Processor is the streaming building block for the per-sequence
// postprocessing pipeline: it consumes a channel of candidates and
// produces a channel of candidates, respecting ctx cancellation and
// always closing its output channel. A candidate may be dropped
// (disallow-final-s), passed through unchanged, or expanded into
// several variants (a fold or vowel-drop rule with
// KeepOriginalSequence).
type Processor interface {
	StreamApply(ctx context.Context, in <-chan Candidate) <-chan Candidate
}

// transform maps one candidate to zero or more output candidates.
type transform func(Candidate) []Candidate

// transformProcessor adapts a per-candidate transform into a
// Processor: read one input, transform it, forward each result,
// bailing out (and draining upstream) the moment ctx is canceled.
type transformProcessor struct {
	fn transform
}

func (p transformProcessor) StreamApply(ctx context.Context, in <-chan Candidate) <-chan Candidate {
	out := make(chan Candidate)
	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				for range in {
					// drain upstream so a blocked sender doesn't leak.
				}
				return
			case cand, ok := <-in:
				if !ok {
					return
				}
				for _, result := range p.fn(cand) {
					select {
					case <-ctx.Done():
						for range in {
							// drain upstream so a blocked sender doesn't leak.
						}
						return
					case out <- result:
					}
				}
			}
		}
	}()
	return out
}

// Chain composes Processors so each stage's output feeds the next.
type Chain struct {
	stages []Processor
}

// NewChain builds a Chain from an ordered list of stages.
func NewChain(stages ...Processor) Chain { return Chain{stages: stages} }

func (c Chain) StreamApply(ctx context.Context, in <-chan Candidate) <-chan Candidate {
	cur := in
	for _, stage := range c.stages {
		cur = stage.StreamApply(ctx, cur)
	}
	return cur
}

// Apply drains a slice of candidates through the chain synchronously;
// the shape most callers (the orchestrator, tests) actually want.
func (c Chain) Apply(ctx context.Context, in []Candidate) []Candidate {
	src := make(chan Candidate, len(in))
	for _, cand := range in {
		src <- cand
	}
	close(src)

	out := c.StreamApply(ctx, src)
	var result []Candidate
	for cand := range out {
		result = append(result, cand)
	}
	return result
}
