package lexsent

import "golang.org/x/sync/errgroup"

// AnalyzeBatch scores each text independently. Result i always corresponds
// to texts[i]; no element can abort the batch.
func (a *Analyzer) AnalyzeBatch(texts []string) []Result {
	results := make([]Result, len(texts))
	for i, text := range texts {
		results[i] = a.Analyze(text)
	}
	return results
}

// AnalyzeBatchParallel is AnalyzeBatch spread over at most workers
// goroutines. Each goroutine writes only its own slot, so the output order
// matches the input order. workers <= 1 runs sequentially.
func (a *Analyzer) AnalyzeBatchParallel(texts []string, workers int) []Result {
	if workers <= 1 || len(texts) < 2 {
		return a.AnalyzeBatch(texts)
	}

	results := make([]Result, len(texts))

	var g errgroup.Group
	g.SetLimit(workers)
	for i, text := range texts {
		i, text := i, text
		g.Go(func() error {
			results[i] = a.Analyze(text)
			return nil
		})
	}
	_ = g.Wait() // analysis never fails

	return results
}
