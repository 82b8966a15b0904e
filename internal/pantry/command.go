package pantry

import (
	"regexp"
	"strconv"
	"strings"
)

var numberWords = map[string]int{
	"one": 1, "two": 2, "three": 3, "four": 4, "five": 5,
	"six": 6, "seven": 7, "eight": 8, "nine": 9, "ten": 10,
}

var leadingCount = regexp.MustCompile(`^(\d+)\s*(.*)`)

// ParseItemCommand splits a spoken or typed add command such as
// "two cartons of milk" or "3 apples" into a quantity and an item name.
// Commands without a leading count mean a single item.
func ParseItemCommand(command string) (int, string) {
	cleaned := strings.ToLower(strings.TrimSpace(command))
	words := strings.Fields(cleaned)
	if len(words) > 0 {
		if quantity, ok := numberWords[words[0]]; ok {
			return quantity, strings.Join(words[1:], " ")
		}
	}

	if m := leadingCount.FindStringSubmatch(cleaned); m != nil {
		if quantity, err := strconv.Atoi(m[1]); err == nil {
			return quantity, strings.TrimSpace(m[2])
		}
	}

	return 1, cleaned
}
