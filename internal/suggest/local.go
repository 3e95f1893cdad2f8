package suggest

import (
	"context"
	"regexp"
	"strconv"
	"strings"

	"github.com/Anhpro1412/Menu-web/internal/menu"
)

const (
	closingQuestion = "Bạn thích vị cay/ít cay/chay không?"
	noMatchAnswer   = "Chưa có món phù hợp. Bạn mô tả rõ hơn sở thích hoặc mức giá nhé!"
)

// One budget per message, first match wins. "k"/"nghìn" mark thousands,
// "đ"/"vnd" are literal amounts.
var budgetPattern = regexp.MustCompile(`(?i)(\d{2,6})\s*(k|nghìn|đ|vnd)`)

// categoryTerms maps literal message substrings to menu categories.
// Matches accumulate: "phở và nước" selects both categories.
var categoryTerms = []struct {
	terms    []string
	category string
}{
	{[]string{"bánh mì"}, menu.CategoryBanhMi},
	{[]string{"phở", "pho"}, menu.CategoryPho},
	{[]string{"uống", "nước", "drink"}, menu.CategoryDrink},
}

// LocalStrategy is the deterministic, dependency-free fallback used when
// no remote credential is configured. It is a pure function of its inputs.
type LocalStrategy struct{}

func NewLocalStrategy() *LocalStrategy {
	return &LocalStrategy{}
}

func (s *LocalStrategy) Source() string {
	return SourceLocal
}

func (s *LocalStrategy) Generate(ctx context.Context, userMessage string, items []menu.Item) (Result, error) {
	text := strings.ToLower(userMessage)

	want := inferCategories(text)
	budget, hasBudget := inferBudget(text)

	// Category stage: a filter that empties the candidate set is void
	// and the full menu is offered instead.
	candidates := items
	if len(want) > 0 {
		if filtered := filterByCategory(items, want); len(filtered) > 0 {
			candidates = filtered
		}
	}

	// Budget stage: same revert rule, back to the unfiltered menu.
	if hasBudget {
		if filtered := filterByBudget(candidates, budget); len(filtered) > 0 {
			candidates = filtered
		} else {
			candidates = items
		}
	}

	if len(candidates) > 3 {
		candidates = candidates[:3]
	}

	return Result{Answer: renderAnswer(candidates), Source: SourceLocal}, nil
}

func inferCategories(text string) map[string]bool {
	want := make(map[string]bool)
	for _, ct := range categoryTerms {
		for _, term := range ct.terms {
			if strings.Contains(text, term) {
				want[ct.category] = true
				break
			}
		}
	}
	return want
}

func inferBudget(text string) (float64, bool) {
	m := budgetPattern.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	amount, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	switch strings.ToLower(m[2]) {
	case "k", "nghìn":
		return float64(amount) * 1000, true
	default:
		return float64(amount), true
	}
}

func filterByCategory(items []menu.Item, want map[string]bool) []menu.Item {
	var out []menu.Item
	for _, it := range items {
		if want[it.Category] {
			out = append(out, it)
		}
	}
	return out
}

func filterByBudget(items []menu.Item, budget float64) []menu.Item {
	var out []menu.Item
	for _, it := range items {
		if it.Price <= budget {
			out = append(out, it)
		}
	}
	return out
}

func renderAnswer(picks []menu.Item) string {
	// Only reachable with an empty menu, which the engine rejects upstream.
	if len(picks) == 0 {
		return noMatchAnswer
	}

	parts := make([]string, len(picks))
	for i, it := range picks {
		parts[i] = it.Name + " (" + menu.FormatVND(it.Price) + ")"
	}
	return "Gợi ý cho bạn: " + strings.Join(parts, ", ") + ". " + closingQuestion
}
