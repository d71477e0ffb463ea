// Package worker provides a worker pool for replaying games in parallel.
// Each game owns its own board, so replays are independent; the pool only
// fans work out and collects results, which the consumer re-orders by index
// for deterministic output.
package worker

import (
	"sort"
	"sync"

	"github.com/texchess/pgn2latex/internal/chess"
	"github.com/texchess/pgn2latex/internal/engine"
)

// WorkItem is one game to replay.
type WorkItem struct {
	Game  *chess.Game
	Index int // Original index for re-ordering
}

// ReplayOutcome is the result of replaying one game.
type ReplayOutcome struct {
	Game   *chess.Game
	Index  int
	Replay *engine.Result
}

// ReplayFunc replays one work item.
type ReplayFunc func(item WorkItem) ReplayOutcome

// Pool manages worker goroutines that replay games in parallel.
type Pool struct {
	numWorkers int
	bufferSize int
	workChan   chan WorkItem
	resultChan chan ReplayOutcome
	replayFunc ReplayFunc
	wg         sync.WaitGroup
}

// NewPool creates a pool with the given number of workers.
func NewPool(numWorkers int, replayFunc ReplayFunc) *Pool {
	if numWorkers < 1 {
		numWorkers = 1
	}
	bufferSize := 2 * numWorkers
	return &Pool{
		numWorkers: numWorkers,
		bufferSize: bufferSize,
		workChan:   make(chan WorkItem, bufferSize),
		resultChan: make(chan ReplayOutcome, bufferSize),
		replayFunc: replayFunc,
	}
}

// Start starts the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			for item := range p.workChan {
				p.resultChan <- p.replayFunc(item)
			}
		}()
	}
	go func() {
		p.wg.Wait()
		close(p.resultChan)
	}()
}

// Submit queues one work item. It must not be called after Close.
func (p *Pool) Submit(item WorkItem) {
	p.workChan <- item
}

// Close signals that no more work will be submitted.
func (p *Pool) Close() {
	close(p.workChan)
}

// Results returns the result channel. It is closed once all workers finish.
func (p *Pool) Results() <-chan ReplayOutcome {
	return p.resultChan
}

// ReplayAll replays all games using the pool's workers and returns the
// outcomes in the original game order.
func ReplayAll(games []*chess.Game, numWorkers int, replayFunc ReplayFunc) []ReplayOutcome {
	pool := NewPool(numWorkers, replayFunc)
	pool.Start()

	go func() {
		for i, game := range games {
			pool.Submit(WorkItem{Game: game, Index: i})
		}
		pool.Close()
	}()

	outcomes := make([]ReplayOutcome, 0, len(games))
	for outcome := range pool.Results() {
		outcomes = append(outcomes, outcome)
	}
	sort.Slice(outcomes, func(i, j int) bool {
		return outcomes[i].Index < outcomes[j].Index
	})
	return outcomes
}
