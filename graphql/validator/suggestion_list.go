package validator

import (
	"sort"
	"strings"
)

const maxSuggestions = 5

// SuggestionList returns the options that are close enough to input to be plausible misspellings,
// closest first. Ties keep the order of options.
func SuggestionList(input string, options []string) []string {
	type suggestion struct {
		option   string
		distance int
	}

	inputThreshold := len([]rune(input)) / 2
	var suggestions []suggestion
	for _, option := range options {
		distance := lexicalDistance(input, option)
		threshold := max(inputThreshold, len([]rune(option))/2, 1)
		if distance <= threshold {
			suggestions = append(suggestions, suggestion{
				option:   option,
				distance: distance,
			})
		}
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].distance < suggestions[j].distance
	})

	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}
	ret := make([]string, len(suggestions))
	for i, s := range suggestions {
		ret[i] = s.option
	}
	return ret
}

// lexicalDistance is the optimal string alignment distance between the lower-cased forms of a and
// b. Strings that differ only in case have a distance of 1.
func lexicalDistance(a, b string) int {
	if a == b {
		return 0
	}

	a, b = strings.ToLower(a), strings.ToLower(b)
	if a == b {
		return 1
	}

	ar, br := []rune(a), []rune(b)
	d := make([][]int, len(ar)+1)
	for i := range d {
		d[i] = make([]int, len(br)+1)
		d[i][0] = i
	}
	for j := range d[0] {
		d[0][j] = j
	}

	for i := 1; i <= len(ar); i++ {
		for j := 1; j <= len(br); j++ {
			cost := 1
			if ar[i-1] == br[j-1] {
				cost = 0
			}
			d[i][j] = min(d[i-1][j]+1, d[i][j-1]+1, d[i-1][j-1]+cost)
			if i > 1 && j > 1 && ar[i-1] == br[j-2] && ar[i-2] == br[j-1] {
				d[i][j] = min(d[i][j], d[i-2][j-2]+cost)
			}
		}
	}
	return d[len(ar)][len(br)]
}

// didYouMean formats suggestions as a sentence to append to an error message.
func didYouMean(suggestions []string) string {
	if len(suggestions) == 0 {
		return ""
	}
	return " Did you mean " + quotedOrList(suggestions) + "?"
}

func quotedOrList(items []string) string {
	if len(items) > maxSuggestions {
		items = items[:maxSuggestions]
	}
	quoted := make([]string, len(items))
	for i, item := range items {
		quoted[i] = `"` + item + `"`
	}
	switch len(quoted) {
	case 0:
		return ""
	case 1:
		return quoted[0]
	case 2:
		return quoted[0] + " or " + quoted[1]
	}
	return strings.Join(quoted[:len(quoted)-1], ", ") + ", or " + quoted[len(quoted)-1]
}
