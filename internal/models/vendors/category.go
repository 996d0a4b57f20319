package vendors

// Category identifies the partition a vendor record lives in. The string
// values double as the namespace identifiers used at ingestion time, so
// they must never change once records exist.
type Category string

const (
	CategoryBus       Category = "bus"
	CategoryCab       Category = "cab"
	CategoryHotel     Category = "hotel"
	CategoryAdventure Category = "adventure"
)

// AllCategories returns every category in the fixed presentation order:
// intercity transport, local transport, lodging, activities.
func AllCategories() []Category {
	return []Category{CategoryBus, CategoryCab, CategoryHotel, CategoryAdventure}
}

func (c Category) Valid() bool {
	switch c {
	case CategoryBus, CategoryCab, CategoryHotel, CategoryAdventure:
		return true
	}
	return false
}

func (c Category) String() string {
	return string(c)
}
