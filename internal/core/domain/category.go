package domain

import (
	"fmt"

	"github.com/SscSPs/relief_ledger/internal/apperrors"
)

// Category tags a balance with the purpose its funds may be spent on.
type Category struct {
	CategoryID     string `json:"categoryID"`
	Label          string `json:"label"`
	IsUnrestricted bool   `json:"isUnrestricted"`
}

// Default category identifiers.
const (
	CategoryFood    = "cat_food"
	CategoryMedical = "cat_med"
	CategoryShelter = "cat_shelter"
	CategoryGeneral = "cat_gen"
)

// Catalog is the fixed set of categories known to a ledger instance.
// It is immutable after construction and safe for concurrent use.
type Catalog struct {
	categories   []Category
	byID         map[string]int
	unrestricted int
}

// NewCatalog builds a catalog. Identifiers must be unique and exactly one
// category must be unrestricted.
func NewCatalog(categories ...Category) (*Catalog, error) {
	c := &Catalog{
		categories:   make([]Category, 0, len(categories)),
		byID:         make(map[string]int, len(categories)),
		unrestricted: -1,
	}

	for _, cat := range categories {
		if cat.CategoryID == "" {
			return nil, fmt.Errorf("%w: category ID is required", apperrors.ErrValidation)
		}
		if _, exists := c.byID[cat.CategoryID]; exists {
			return nil, fmt.Errorf("%w: category %s", apperrors.ErrDuplicate, cat.CategoryID)
		}
		if cat.IsUnrestricted {
			if c.unrestricted >= 0 {
				return nil, fmt.Errorf("%w: more than one unrestricted category (%s, %s)",
					apperrors.ErrValidation, c.categories[c.unrestricted].CategoryID, cat.CategoryID)
			}
			c.unrestricted = len(c.categories)
		}
		c.byID[cat.CategoryID] = len(c.categories)
		c.categories = append(c.categories, cat)
	}

	if c.unrestricted < 0 {
		return nil, fmt.Errorf("%w: catalog requires exactly one unrestricted category", apperrors.ErrValidation)
	}
	return c, nil
}

// DefaultCatalog returns the relief categories: food, medical, shelter and
// the unrestricted general category.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(
		Category{CategoryID: CategoryFood, Label: "Food & Water"},
		Category{CategoryID: CategoryMedical, Label: "Medical Aid"},
		Category{CategoryID: CategoryShelter, Label: "Shelter & Housing"},
		Category{CategoryID: CategoryGeneral, Label: "Unrestricted", IsUnrestricted: true},
	)
	if err != nil {
		panic(err)
	}
	return c
}

// Contains reports whether categoryID is part of the catalog.
func (c *Catalog) Contains(categoryID string) bool {
	_, ok := c.byID[categoryID]
	return ok
}

// Unrestricted returns the catalog's distinguished unrestricted category.
func (c *Catalog) Unrestricted() Category {
	return c.categories[c.unrestricted]
}

// IsUnrestricted reports whether categoryID is the unrestricted category.
func (c *Catalog) IsUnrestricted(categoryID string) bool {
	return c.Unrestricted().CategoryID == categoryID
}

// List returns a copy of the categories in catalog order.
func (c *Catalog) List() []Category {
	out := make([]Category, len(c.categories))
	copy(out, c.categories)
	return out
}

// IDs returns the category identifiers in catalog order.
func (c *Catalog) IDs() []string {
	ids := make([]string, len(c.categories))
	for i, cat := range c.categories {
		ids[i] = cat.CategoryID
	}
	return ids
}
