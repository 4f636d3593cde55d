package analytics

import (
	"math"
	"sort"

	"github.com/Cartlytics/cartlytics-insights-backend/models"
)

// ReviewScores counts review scores once per order, ascending by score value.
// A multi-line order contributes a single score: the first non-nil score
// encountered for its order_id wins, which avoids the double counting the
// per-line dataset would otherwise produce. Scores are counted under their
// literal value, so anything outside 1-5 passes through unchanged.
func ReviewScores(rows []models.OrderLine) []models.ReviewScoreCount {
	seen := make(map[string]struct{})
	counts := make(map[int]int)
	for _, r := range rows {
		if r.ReviewScore == nil {
			continue
		}
		if _, ok := seen[r.OrderID]; ok {
			continue
		}
		seen[r.OrderID] = struct{}{}
		counts[*r.ReviewScore]++
	}

	scores := make([]int, 0, len(counts))
	for s := range counts {
		scores = append(scores, s)
	}
	sort.Ints(scores)

	out := make([]models.ReviewScoreCount, 0, len(scores))
	for _, s := range scores {
		out = append(out, models.ReviewScoreCount{Score: s, Count: counts[s]})
	}
	return out
}

// MostCommonScore returns the score with the highest count. When two scores
// share the maximum count the lowest score wins. Returns ErrNoData for an
// empty distribution.
func MostCommonScore(counts []models.ReviewScoreCount) (int, error) {
	if len(counts) == 0 {
		return 0, ErrNoData
	}
	best := counts[0]
	for _, c := range counts[1:] {
		if c.Count > best.Count {
			best = c
		}
	}
	return best.Score, nil
}

// AverageScore returns the mean review score rounded up to the next whole
// number, as the dashboard displays it. Returns ErrNoData for an empty
// distribution.
func AverageScore(counts []models.ReviewScoreCount) (int, error) {
	total := 0
	sum := 0
	for _, c := range counts {
		total += c.Count
		sum += c.Score * c.Count
	}
	if total == 0 {
		return 0, ErrNoData
	}
	return int(math.Ceil(float64(sum) / float64(total))), nil
}
