package service

import (
	"context"
	"sort"

	"github.com/TimonStadelmann/polymarket-analyzer/internal/domain"
)

// CategoryFlow counts how pooled users moved between trade categories. Each
// user's chronological category sequence is reduced to its distinct-in-order
// form; every adjacent pair in that form is one transition. Users with a
// single category contribute nothing. Ordered by transition count
// descending, then from/to ascending, capped at the configured row limit.
func (s *Analytics) CategoryFlow(ctx context.Context) ([]domain.CategoryTransition, error) {
	sequences, err := s.network.CategorySequences(ctx, s.cfg.FlowPool, s.cfg.FlowMinTrades)
	if err != nil {
		return nil, err
	}

	counts := make(map[[2]string]int)
	for _, seq := range sequences {
		path := distinctInOrder(seq.Categories)
		if len(path) < 2 {
			continue
		}
		for i := 0; i < len(path)-1; i++ {
			from, to := path[i], path[i+1]
			if from == to {
				continue
			}
			counts[[2]string{from, to}]++
		}
	}

	transitions := make([]domain.CategoryTransition, 0, len(counts))
	for pair, n := range counts {
		transitions = append(transitions, domain.CategoryTransition{
			From:  pair[0],
			To:    pair[1],
			Value: n,
		})
	}

	sort.Slice(transitions, func(i, j int) bool {
		if transitions[i].Value != transitions[j].Value {
			return transitions[i].Value > transitions[j].Value
		}
		if transitions[i].From != transitions[j].From {
			return transitions[i].From < transitions[j].From
		}
		return transitions[i].To < transitions[j].To
	})

	if s.cfg.FlowMaxRows > 0 && len(transitions) > s.cfg.FlowMaxRows {
		transitions = transitions[:s.cfg.FlowMaxRows]
	}
	return transitions, nil
}

// distinctInOrder keeps the first occurrence of each category, preserving
// chronological order.
func distinctInOrder(categories []string) []string {
	seen := make(map[string]struct{}, len(categories))
	out := make([]string, 0, len(categories))
	for _, c := range categories {
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}
