package inquiry

import (
	"fmt"
)

// Category classifies an inquiry (billing, conduct, bug report, ...).
// Categories are seeded reference data, not user-editable state.
type Category struct {
	id          uint
	name        string
	description string
}

func NewCategory(name, description string) (*Category, error) {
	if name == "" {
		return nil, fmt.Errorf("category name is required")
	}
	return &Category{name: name, description: description}, nil
}

func ReconstructCategory(id uint, name, description string) (*Category, error) {
	if id == 0 {
		return nil, fmt.Errorf("category ID cannot be zero")
	}
	if name == "" {
		return nil, fmt.Errorf("category name is required")
	}
	return &Category{id: id, name: name, description: description}, nil
}

func (c *Category) ID() uint            { return c.id }
func (c *Category) Name() string        { return c.name }
func (c *Category) Description() string { return c.description }

func (c *Category) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("category ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("category ID cannot be zero")
	}
	c.id = id
	return nil
}

// CategoryDisplayName is a per-language label for one category.
type CategoryDisplayName struct {
	id         uint
	categoryID uint
	language   string
	name       string
}

func NewCategoryDisplayName(categoryID uint, language, name string) (*CategoryDisplayName, error) {
	if categoryID == 0 {
		return nil, fmt.Errorf("category ID is required")
	}
	if language == "" {
		return nil, fmt.Errorf("language tag is required")
	}
	if name == "" {
		return nil, fmt.Errorf("display name is required")
	}
	return &CategoryDisplayName{categoryID: categoryID, language: language, name: name}, nil
}

func ReconstructCategoryDisplayName(id, categoryID uint, language, name string) (*CategoryDisplayName, error) {
	if id == 0 {
		return nil, fmt.Errorf("display name ID cannot be zero")
	}
	return &CategoryDisplayName{id: id, categoryID: categoryID, language: language, name: name}, nil
}

func (d *CategoryDisplayName) ID() uint         { return d.id }
func (d *CategoryDisplayName) CategoryID() uint { return d.categoryID }
func (d *CategoryDisplayName) Language() string { return d.language }
func (d *CategoryDisplayName) Name() string     { return d.name }

func (d *CategoryDisplayName) SetID(id uint) error {
	if d.id != 0 {
		return fmt.Errorf("display name ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("display name ID cannot be zero")
	}
	d.id = id
	return nil
}
