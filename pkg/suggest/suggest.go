// Package suggest provides nearest-name lookup for typoed subcommand names.
package suggest

// maxDistance bounds how far a candidate may be from the target to qualify
// as a suggestion. The comparison is strict, so only distances 0, 1 and 2
// qualify.
const maxDistance = 3

// Nearest returns the candidate with the smallest Damerau-Levenshtein
// distance to target, provided that distance is strictly less than 3. Ties
// are won by the earliest candidate. The second return value reports whether
// any candidate qualified.
func Nearest(target string, candidates []string) (string, bool) {
	var nearest string
	found := false
	lowest := maxDistance
	for _, name := range candidates {
		if d := Distance(name, target); d < lowest {
			lowest = d
			nearest = name
			found = true
		}
	}
	return nearest, found
}

// Distance returns the Damerau-Levenshtein edit distance between a and b:
// the minimum number of insertions, deletions, substitutions and
// transpositions of adjacent characters needed to transform one into the
// other. This is the unrestricted metric, so a transposed pair may be edited
// again by later operations ("ca" to "abc" is 2, not 3). The comparison is
// case-sensitive and operates on characters, not bytes.
func Distance(a, b string) int {
	ar, br := []rune(a), []rune(b)
	if len(ar) == 0 {
		return len(br)
	}
	if len(br) == 0 {
		return len(ar)
	}

	// Matrix with a sentinel row and column so the transposition lookup can
	// reach "before the string" without bounds checks.
	inf := len(ar) + len(br)
	matrix := make([][]int, len(ar)+2)
	for i := range matrix {
		matrix[i] = make([]int, len(br)+2)
	}
	matrix[0][0] = inf
	for i := 0; i <= len(ar); i++ {
		matrix[i+1][0] = inf
		matrix[i+1][1] = i
	}
	for j := 0; j <= len(br); j++ {
		matrix[0][j+1] = inf
		matrix[1][j+1] = j
	}

	// lastRow tracks, per character, the last row of a where it occurred.
	lastRow := make(map[rune]int, len(ar))
	for i := 1; i <= len(ar); i++ {
		lastCol := 0
		for j := 1; j <= len(br); j++ {
			k := lastRow[br[j-1]]
			l := lastCol
			cost := 1
			if ar[i-1] == br[j-1] {
				cost = 0
				lastCol = j
			}
			matrix[i+1][j+1] = min(
				matrix[i][j]+cost, // substitution
				matrix[i+1][j]+1, // insertion
				matrix[i][j+1]+1, // deletion
				matrix[k][l]+(i-k-1)+1+(j-l-1)) // transposition
		}
		lastRow[ar[i-1]] = i
	}

	return matrix[len(ar)+1][len(br)+1]
}
