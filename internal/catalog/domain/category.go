package domain

// Category is the closed set of construction categories. The column
// stores the slug; display metadata lives here so a new category is a
// one-place change instead of scattered string maps.
type Category string

const (
	CategorySlope       Category = "slope"
	CategoryBridge      Category = "bridge"
	CategoryRepair      Category = "repair"
	CategoryRoad        Category = "road"
	CategoryRiver       Category = "river"
	CategoryTunnel      Category = "tunnel"
	CategoryGround      Category = "ground"
	CategoryDredging    Category = "dredging"
	CategoryLandscape   Category = "landscape"
	CategoryDisaster    Category = "disaster"
	CategoryErosion     Category = "erosion"
	CategoryAgriculture Category = "agriculture"
)

// CategoryAll is the filter sentinel meaning "no category constraint".
// It is not a Category and never appears in storage.
const CategoryAll = "all"

// Categories returns every category in display order.
func Categories() []Category {
	return []Category{
		CategorySlope,
		CategoryBridge,
		CategoryRepair,
		CategoryRoad,
		CategoryRiver,
		CategoryTunnel,
		CategoryGround,
		CategoryDredging,
		CategoryLandscape,
		CategoryDisaster,
		CategoryErosion,
		CategoryAgriculture,
	}
}

func (c Category) Valid() bool {
	switch c {
	case CategorySlope, CategoryBridge, CategoryRepair, CategoryRoad,
		CategoryRiver, CategoryTunnel, CategoryGround, CategoryDredging,
		CategoryLandscape, CategoryDisaster, CategoryErosion, CategoryAgriculture:
		return true
	}
	return false
}

// Label returns the Japanese display name.
func (c Category) Label() string {
	switch c {
	case CategorySlope:
		return "法面工事"
	case CategoryBridge:
		return "橋梁工事"
	case CategoryRepair:
		return "補修工事"
	case CategoryRoad:
		return "道路工事"
	case CategoryRiver:
		return "河川工事"
	case CategoryTunnel:
		return "トンネル工事"
	case CategoryGround:
		return "地盤改良工事"
	case CategoryDredging:
		return "しゅんせつ工事"
	case CategoryLandscape:
		return "造園工事"
	case CategoryDisaster:
		return "災害復旧工事"
	case CategoryErosion:
		return "砂防工事"
	case CategoryAgriculture:
		return "農業土木工事"
	}
	return string(c)
}

// Region is the closed set of municipalities the company serves.
type Region string

const (
	RegionShimonita Region = "shimonita"
	RegionNanmoku   Region = "nanmoku"
)

func Regions() []Region {
	return []Region{RegionShimonita, RegionNanmoku}
}

func (r Region) Valid() bool {
	switch r {
	case RegionShimonita, RegionNanmoku:
		return true
	}
	return false
}

func (r Region) Label() string {
	switch r {
	case RegionShimonita:
		return "下仁田町"
	case RegionNanmoku:
		return "南牧村"
	}
	return string(r)
}
