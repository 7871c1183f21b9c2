package matchservice

import (
	"context"
	"sort"
)

// pairKey is the unordered pair of side identities, stored sorted.
type pairKey struct {
	first, second string
}

func newPairKey(a, b string) pairKey {
	if a <= b {
		return pairKey{first: a, second: b}
	}
	return pairKey{first: b, second: a}
}

// HeadToHead recomputes the full head-to-head table from match history on
// every call. Cost is linear in the number of completed matches; listed
// descending by matches played between the pair.
func (s *MatchService) HeadToHead(ctx context.Context) ([]HeadToHeadRecord, error) {
	history, err := s.repo.ListHistory(ctx, nil)
	if err != nil {
		return nil, err
	}

	byPair := make(map[pairKey]*HeadToHeadRecord)
	for _, record := range history {
		key := newPairKey(record.SideA, record.SideB)
		h2h, ok := byPair[key]
		if !ok {
			h2h = &HeadToHeadRecord{SideA: key.first, SideB: key.second}
			byPair[key] = h2h
		}

		h2h.TotalMatches++
		switch {
		case record.Tied:
			h2h.Ties++
		case record.Winner == key.first:
			h2h.WinsBySideA++
		case record.Winner == key.second:
			h2h.WinsBySideB++
		}
	}

	records := make([]HeadToHeadRecord, 0, len(byPair))
	for _, h2h := range byPair {
		records = append(records, *h2h)
	}

	sort.Slice(records, func(i, j int) bool {
		if records[i].TotalMatches != records[j].TotalMatches {
			return records[i].TotalMatches > records[j].TotalMatches
		}
		if records[i].SideA != records[j].SideA {
			return records[i].SideA < records[j].SideA
		}
		return records[i].SideB < records[j].SideB
	})

	return records, nil
}
