package seed

import (
	"encoding/json"

	"skillswap/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BuiltInSkill is a permanent catalog entry shipped with the platform.
type BuiltInSkill struct {
	Name     string
	Slug     string
	Category string
	Synonyms []string
}

// BuiltInSkills defines the starter skill catalog. Seeding is idempotent:
// re-running refreshes name and category without duplicating rows.
var BuiltInSkills = []BuiltInSkill{
	{Name: "Guitar", Slug: "guitar", Category: "music", Synonyms: []string{"acoustic guitar", "electric guitar"}},
	{Name: "Piano", Slug: "piano", Category: "music", Synonyms: []string{"keyboard"}},
	{Name: "Singing", Slug: "singing", Category: "music", Synonyms: []string{"vocals"}},
	{Name: "Spanish", Slug: "spanish", Category: "languages", Synonyms: []string{"castellano"}},
	{Name: "French", Slug: "french", Category: "languages"},
	{Name: "Japanese", Slug: "japanese", Category: "languages", Synonyms: []string{"nihongo"}},
	{Name: "German", Slug: "german", Category: "languages"},
	{Name: "Go", Slug: "go", Category: "programming", Synonyms: []string{"golang"}},
	{Name: "Python", Slug: "python", Category: "programming"},
	{Name: "JavaScript", Slug: "javascript", Category: "programming", Synonyms: []string{"js", "ecmascript"}},
	{Name: "SQL", Slug: "sql", Category: "programming", Synonyms: []string{"postgres", "databases"}},
	{Name: "Photography", Slug: "photography", Category: "creative"},
	{Name: "Drawing", Slug: "drawing", Category: "creative", Synonyms: []string{"sketching", "illustration"}},
	{Name: "Video Editing", Slug: "video-editing", Category: "creative"},
	{Name: "Cooking", Slug: "cooking", Category: "lifestyle", Synonyms: []string{"culinary"}},
	{Name: "Baking", Slug: "baking", Category: "lifestyle"},
	{Name: "Yoga", Slug: "yoga", Category: "fitness"},
	{Name: "Chess", Slug: "chess", Category: "games"},
	{Name: "Public Speaking", Slug: "public-speaking", Category: "career", Synonyms: []string{"presenting"}},
	{Name: "Woodworking", Slug: "woodworking", Category: "crafts", Synonyms: []string{"carpentry"}},
}

// Catalog seeds the built-in skill catalog.
func Catalog(db *gorm.DB) error {
	for _, item := range BuiltInSkills {
		var synonyms json.RawMessage
		if len(item.Synonyms) > 0 {
			synonyms, _ = json.Marshal(item.Synonyms)
		}

		skill := models.Skill{
			Name:     item.Name,
			Slug:     item.Slug,
			Category: item.Category,
			Synonyms: synonyms,
			IsActive: true,
		}
		if err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "slug"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "category", "is_active"}),
		}).Create(&skill).Error; err != nil {
			return err
		}
	}
	return nil
}
