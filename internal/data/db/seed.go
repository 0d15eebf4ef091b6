package db

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	types "github.com/yungbote/bacprep-backend/internal/domain"
)

//go:embed subjects.yaml
var subjectsYAML []byte

type seedFile struct {
	Subjects []seedSubject `yaml:"subjects"`
}

type seedSubject struct {
	Name     string   `yaml:"name"`
	Stream   string   `yaml:"stream"`
	Chapters []string `yaml:"chapters"`
}

// SeedSubjects upserts the embedded catalog keyed on (name, stream) and
// returns the number of subjects written.
func SeedSubjects(db *gorm.DB) (int, error) {
	subjects, err := ParseSubjects(subjectsYAML)
	if err != nil {
		return 0, err
	}
	for i := range subjects {
		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}, {Name: "stream"}},
			DoUpdates: clause.AssignmentColumns([]string{"chapters"}),
		}).Create(&subjects[i]).Error
		if err != nil {
			return i, fmt.Errorf("seed subject %s/%s: %w", subjects[i].Stream, subjects[i].Name, err)
		}
	}
	return len(subjects), nil
}

func ParseSubjects(raw []byte) ([]types.Subject, error) {
	var f seedFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse subject catalog: %w", err)
	}
	out := make([]types.Subject, 0, len(f.Subjects))
	for _, s := range f.Subjects {
		stream := types.Stream(s.Stream)
		if !stream.Valid() {
			return nil, fmt.Errorf("subject %q: unknown stream %q", s.Name, s.Stream)
		}
		if s.Name == "" || len(s.Chapters) == 0 {
			return nil, fmt.Errorf("subject %q: name and chapters are required", s.Name)
		}
		chapters, err := json.Marshal(s.Chapters)
		if err != nil {
			return nil, err
		}
		out = append(out, types.Subject{
			Name:     s.Name,
			Stream:   stream,
			Chapters: datatypes.JSON(chapters),
		})
	}
	return out, nil
}
