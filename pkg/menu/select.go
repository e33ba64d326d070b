package menu

import "strings"

// FilteredDish replaces any dish that mentions an excluded term.
const FilteredDish = "Блюдо заменено по фильтру: Салат + белок + сложные углеводы"

// Pick returns pool[seed mod len(pool)]; negative seeds wrap around.
// The pool must be non-empty.
func Pick[T any](pool []T, seed int) T {
	i := seed % len(pool)
	if i < 0 {
		i += len(pool)
	}
	return pool[i]
}

// ApplyExclusions returns FilteredDish if any non-empty term occurs in dish,
// ignoring case, and dish otherwise. Matching is by substring, so short terms
// also hit inside longer words: "сыр" also matches "Сырники".
func ApplyExclusions(dish string, exclude []string) string {
	if len(exclude) == 0 {
		return dish
	}
	lower := strings.ToLower(dish)
	for _, term := range exclude {
		if term == "" {
			continue
		}
		if strings.Contains(lower, strings.ToLower(term)) {
			return FilteredDish
		}
	}
	return dish
}
