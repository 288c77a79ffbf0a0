package jieba

import (
	"sort"
	"strings"
	"sync"
)

type textBlock struct {
	id   int
	text string
}

type resultBlock struct {
	id     int
	tokens []string
}

// CutParallel splits sentence into line blocks and cuts them across
// numWorkers goroutines, following the teacher's worker-pool
// CutParallel/worker/splitText pattern. Every block is cut with Cut
// (the Mix strategy); no other strategy can be selected. Mix handles
// both Han and ASCII content itself, so blocks need no script-based
// split, only a granularity coarse enough to keep workers busy. If ordered is true, the result preserves sentence's original
// block order; this costs roughly the final sort's overhead.
func (j *Jieba) CutParallel(sentence string, hmm bool, numWorkers int, ordered bool) ([]string, error) {
	if numWorkers < 1 {
		numWorkers = 1
	}
	lines := strings.SplitAfter(sentence, "\n")

	blocks := make(chan textBlock, len(lines))
	for i, line := range lines {
		blocks <- textBlock{id: i, text: line}
	}
	close(blocks)

	results := make(chan resultBlock, len(lines))
	errCh := make(chan error, numWorkers)
	var wg sync.WaitGroup
	wg.Add(numWorkers)
	for w := 0; w < numWorkers; w++ {
		go func() {
			defer wg.Done()
			j.cutParallelWorker(blocks, results, errCh, hmm)
		}()
	}
	go func() {
		wg.Wait()
		close(results)
		close(errCh)
	}()

	var rblocks []resultBlock
	for rb := range results {
		rblocks = append(rblocks, rb)
	}
	if err := <-errCh; err != nil {
		return nil, err
	}

	if ordered {
		sort.Slice(rblocks, func(i, k int) bool { return rblocks[i].id < rblocks[k].id })
	}
	var tokens []string
	for _, rb := range rblocks {
		tokens = append(tokens, rb.tokens...)
	}
	return tokens, nil
}

func (j *Jieba) cutParallelWorker(blocks <-chan textBlock, results chan<- resultBlock, errCh chan<- error, hmm bool) {
	for b := range blocks {
		if b.text == "" {
			results <- resultBlock{id: b.id}
			continue
		}
		tokens, err := j.Cut(b.text, hmm)
		if err != nil {
			errCh <- err
			return
		}
		results <- resultBlock{id: b.id, tokens: tokens}
	}
}
