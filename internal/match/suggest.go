package match

// MinSimilarity is the folded similarity a candidate needs to be suggested.
const MinSimilarity = 0.6

// Suggest returns the candidate closest to name once both are folded, if any
// is similar enough. Candidates equal to name are skipped; ties go to the
// earlier candidate.
func Suggest(name string, candidates []string) (string, bool) {
	folded := Fold(name)

	var (
		best      string
		bestScore float64
	)

	for _, c := range candidates {
		if c == name {
			continue
		}

		score := Similarity(folded, Fold(c))
		if score >= MinSimilarity && score > bestScore {
			best, bestScore = c, score
		}
	}

	return best, bestScore > 0
}
