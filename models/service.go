package models

// ServiceCategory is the closed set of category tags used by the app.
type ServiceCategory string

const (
	CategoryCut   ServiceCategory = "cut"
	CategoryBeard ServiceCategory = "beard"
	CategoryKids  ServiceCategory = "kids"
	CategoryOther ServiceCategory = "other"
)

// Valid reports whether the category is one of the known values.
// The empty string is allowed and means uncategorized.
func (c ServiceCategory) Valid() bool {
	switch c {
	case "", CategoryCut, CategoryBeard, CategoryKids, CategoryOther:
		return true
	}
	return false
}

type Service struct {
	ID          string          `json:"id,omitempty"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       float64         `json:"price"`
	Duration    int             `json:"duration"` // in minutes
	Photo       string          `json:"photo,omitempty"`
	Category    ServiceCategory `json:"category,omitempty"`
}
