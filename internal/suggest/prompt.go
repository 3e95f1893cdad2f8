package suggest

import (
	"fmt"
	"strings"

	"github.com/Anhpro1412/Menu-web/internal/menu"
)

const noMessageDirective = "Chưa nói gì (hãy gợi ý combo bán chạy)"

// BuildSuggestPrompt composes the instruction sent to the remote model:
// a fixed Vietnamese briefing, the menu as bulleted lines, and the
// customer's message (or a directive to pitch a popular combo).
func BuildSuggestPrompt(userMessage string, items []menu.Item) string {
	asked := strings.TrimSpace(userMessage)
	if asked == "" {
		asked = noMessageDirective
	}

	return fmt.Sprintf(`Bạn là trợ lý gợi ý món cho quán DHA Food (bánh mì & phở).
- Trả lời ngắn gọn, thân thiện bằng tiếng Việt.
- Gợi ý 1–3 món phù hợp từ danh sách.
- Nếu khách không nói rõ, đề xuất combo bán chạy (bánh mì/phở + đồ uống).
- Cuối câu hỏi gợi ý: "Bạn thích vị cay/ít cay/chay không?".

Danh sách:
%s

Khách hỏi: %s`, menuLines(items), asked)
}

func menuLines(items []menu.Item) string {
	lines := make([]string, len(items))
	for i, it := range items {
		cat := it.Category
		if cat == "" {
			cat = menu.CategoryOther
		}
		lines[i] = fmt.Sprintf("- %s (%s) • loại: %s • mô tả: %s",
			it.Name, menu.FormatVND(it.Price), cat, it.Description)
	}
	return strings.Join(lines, "\n")
}
