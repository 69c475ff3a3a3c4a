package models

// Review is imported Google review data. Rating and text are immutable;
// only visibility is toggled by the admin.
type Review struct {
	ID        string `gorm:"primaryKey;size:36" json:"id"`
	Name      string `gorm:"size:100;not null" json:"name"`
	Rating    int    `json:"rating"` // 1-5
	Text      string `gorm:"size:500" json:"text"`
	Date      string `gorm:"size:50" json:"date"` // display string, e.g. "6 månader sedan"
	IsVisible bool   `gorm:"default:true" json:"is_visible"`
}
