package horse

// ShopItem is one fixed catalog entry. NameKey is the translation key the
// presentation layer resolves; the core never renders it.
type ShopItem struct {
	ID      string `json:"id"`
	NameKey string `json:"name_key"`
	Icon    string `json:"icon"`
	Price   int    `json:"price"`
	Reward  Reward `json:"reward"`
}

var shopCatalog = []ShopItem{
	{ID: "carrot_single", NameKey: "shop.item.carrot", Icon: "🥕", Price: 5, Reward: Reward{Type: RewardCarrots, Amount: 1}},
	{ID: "brush_refill", NameKey: "shop.item.brush", Icon: "🧽", Price: 8, Reward: Reward{Type: RewardBrushUses, Amount: 50}},
	{ID: "carrot_bundle", NameKey: "shop.item.carrot_bundle", Icon: "🥕", Price: 15, Reward: Reward{Type: RewardCarrots, Amount: 5}},
}

// Catalog returns a copy of the fixed shop catalog.
func Catalog() []ShopItem {
	out := make([]ShopItem, len(shopCatalog))
	copy(out, shopCatalog)
	return out
}

// CatalogItem looks up a catalog entry by id.
func CatalogItem(id string) (ShopItem, bool) {
	for _, item := range shopCatalog {
		if item.ID == id {
			return item, true
		}
	}
	return ShopItem{}, false
}
