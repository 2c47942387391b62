package main

// ItemKind is the pickup variant. The first six map onto WeaponKind.
type ItemKind int

const (
	ItemSpread      ItemKind = 0
	ItemLaser       ItemKind = 1
	ItemIce         ItemKind = 2
	ItemFire        ItemKind = 3
	ItemBomb        ItemKind = 4
	ItemMissile     ItemKind = 5
	ItemHeart       ItemKind = 6
	ItemGoldHeart   ItemKind = 7
	ItemRainbowBall ItemKind = 8
)

const (
	ItemSize         = 32.0
	ItemFallSpeed    = 2.0
	ItemScreenMargin = 50.0
)

var itemNames = [...]string{"spread", "laser", "ice", "fire", "bomb", "missile", "heart", "goldHeart", "rainbowBall"}

var itemGlyphs = [...]string{"🔫", "⚡", "❄️", "🔥", "💣", "🚀", "❤️", "💛", "🌈"}

// dropPool is what a non-rainbow enemy can drop
var dropPool = [...]ItemKind{
	ItemSpread, ItemLaser, ItemIce, ItemFire, ItemBomb, ItemMissile, ItemHeart, ItemGoldHeart,
}

func (k ItemKind) String() string {
	if k < 0 || int(k) >= len(itemNames) {
		return "unknown"
	}
	return itemNames[k]
}

// Glyph returns the emoji drawn for the item
func (k ItemKind) Glyph() string {
	if k < 0 || int(k) >= len(itemGlyphs) {
		return "❓"
	}
	return itemGlyphs[k]
}

// Weapon maps a weapon pickup to its loadout slot
func (k ItemKind) Weapon() (WeaponKind, bool) {
	switch k {
	case ItemSpread, ItemLaser, ItemIce, ItemFire, ItemBomb, ItemMissile:
		return WeaponKind(k), true
	}
	return 0, false
}

// Item is a falling pickup
type Item struct {
	Kind      ItemKind `msgpack:"k"`
	X         float64  `msgpack:"x"`
	Y         float64  `msgpack:"y"`
	VY        float64  `msgpack:"vy"`
	Size      float64  `msgpack:"s"`
	Collected bool     `msgpack:"c"`
}

// NewItem drops a pickup at x, y
func NewItem(x, y float64, kind ItemKind) *Item {
	return &Item{
		Kind: kind,
		X:    x,
		Y:    y,
		VY:   ItemFallSpeed,
		Size: ItemSize,
	}
}

// Update lets the item fall one tick
func (it *Item) Update() {
	it.Y += it.VY
}

// IsOffScreen reports whether the item fell past the bottom
func (it *Item) IsOffScreen(height float64) bool {
	return it.Y > height+ItemScreenMargin
}

// CollidesWith reports overlap with a body of the given size
func (it *Item) CollidesWith(x, y, size float64) bool {
	return CheckCollision(it.X, it.Y, it.Size, x, y, size)
}
