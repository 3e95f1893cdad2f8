package menu

// Menu categories. Wire values match the persisted document and the
// admin console's select options.
const (
	CategoryBanhMi = "banhmi"
	CategoryPho    = "pho"
	CategoryDrink  = "nuoc"
	CategoryOther  = "khac"
)

// Item is a single dish or drink on the menu. Items are never updated
// or deleted once created.
type Item struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Category    string  `json:"cat"`
	Description string  `json:"desc,omitempty"`
}
