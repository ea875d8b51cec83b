package domain

// Get returns the category with the given identifier.
func (c *Catalog) Get(categoryID string) (Category, bool) {
	i, ok := c.byID[categoryID]
	if !ok {
		return Category{}, false
	}
	return c.categories[i], true
}
