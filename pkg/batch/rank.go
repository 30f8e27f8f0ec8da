package batch

import "sort"

// Rank returns a copy of results ordered by descending score. Failed lines
// sort last; equal scores keep input order.
func Rank(results []Result) []Result {
	ranked := append([]Result(nil), results...)
	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if (a.Err == nil) != (b.Err == nil) {
			return a.Err == nil
		}
		return a.Guess.Score > b.Guess.Score
	})
	return ranked
}

// Top returns the n best successful results.
func Top(results []Result, n int) []Result {
	var top []Result
	for _, r := range Rank(results) {
		if len(top) >= n || r.Err != nil {
			break
		}
		top = append(top, r)
	}
	return top
}
