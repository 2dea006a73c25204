package models

type InquiryCategoryModel struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"uniqueIndex;size:50;not null"`
	Description string `gorm:"size:255"`
}

func (InquiryCategoryModel) TableName() string {
	return "inquiry_categories"
}

type InquiryCategoryDisplayNameModel struct {
	ID         uint   `gorm:"primaryKey"`
	CategoryID uint   `gorm:"not null;uniqueIndex:idx_category_language"`
	Language   string `gorm:"size:16;not null;uniqueIndex:idx_category_language"`
	Name       string `gorm:"size:100;not null"`
}

func (InquiryCategoryDisplayNameModel) TableName() string {
	return "inquiry_category_display_names"
}
