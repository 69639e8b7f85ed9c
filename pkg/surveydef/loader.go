package surveydef

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-surveyflow/pkg/survey"
)

// Store keeps the parsed survey definitions plus the merged option catalogs
// from every loaded document. Treat it as immutable after construction; it
// is then safe for concurrent readers.
type Store struct {
	surveys  map[string]survey.SurveyConfig
	catalogs survey.Catalogs
}

// LoadFS walks the provided filesystem and parses JSON/YAML survey
// definition documents. Each document may define one survey, catalogs, or
// both; catalogs merge across files. When fsys is nil or holds no definition
// files, the returned store is empty.
func LoadFS(fsys fs.FS) (*Store, error) {
	store := &Store{surveys: make(map[string]survey.SurveyConfig)}
	if fsys == nil {
		return store, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isDefinitionFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("surveydef: read %s: %w", path, err)
		}
		return store.addDocument(data, path)
	})
	if err != nil {
		return nil, err
	}
	return store, nil
}

// LoadFile parses a single definition document from disk.
func LoadFile(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("surveydef: read %s: %w", path, err)
	}
	store := &Store{surveys: make(map[string]survey.SurveyConfig)}
	if err := store.addDocument(data, path); err != nil {
		return nil, err
	}
	return store, nil
}

// Survey returns the configuration registered under the given id.
func (s *Store) Survey(id string) (survey.SurveyConfig, bool) {
	if s == nil {
		return survey.SurveyConfig{}, false
	}
	cfg, ok := s.surveys[id]
	return cfg, ok
}

// SurveyIDs returns the registered survey ids in ascending order.
func (s *Store) SurveyIDs() []string {
	if s == nil {
		return nil
	}
	out := make([]string, 0, len(s.surveys))
	for id := range s.surveys {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Catalogs returns the option catalogs merged from every loaded document.
func (s *Store) Catalogs() survey.Catalogs {
	if s == nil {
		return survey.Catalogs{}
	}
	return s.catalogs
}

// Empty reports whether the store holds any surveys.
func (s *Store) Empty() bool {
	return s == nil || len(s.surveys) == 0
}

func (s *Store) addDocument(data []byte, source string) error {
	doc, err := parseDocument(data, source)
	if err != nil {
		return err
	}

	normalizeCatalogs(&doc.Catalogs)
	s.catalogs.Merge(doc.Catalogs)

	if doc.Survey == nil {
		return nil
	}

	cfg := doc.Survey.toConfig()
	sanitizeConfig(&cfg)
	if err := checkConfig(cfg, source); err != nil {
		return err
	}
	if _, exists := s.surveys[cfg.ID]; exists {
		return fmt.Errorf("surveydef: duplicate survey %q (file %s)", cfg.ID, source)
	}
	s.surveys[cfg.ID] = cfg
	return nil
}

type documentFile struct {
	Survey   *surveyFile     `json:"survey" yaml:"survey"`
	Catalogs survey.Catalogs `json:"catalogs" yaml:"catalogs"`
}

// surveyFile mirrors survey.SurveyConfig with a tri-state back-navigation
// flag: documents that omit it get the default (allowed).
type surveyFile struct {
	ID                  string                 `json:"id" yaml:"id"`
	Title               string                 `json:"title" yaml:"title"`
	Description         string                 `json:"description" yaml:"description"`
	AllowBackNavigation *bool                  `json:"allowBackNavigation" yaml:"allowBackNavigation"`
	Sections            []survey.SurveySection `json:"sections" yaml:"sections"`
}

func (f surveyFile) toConfig() survey.SurveyConfig {
	allowBack := true
	if f.AllowBackNavigation != nil {
		allowBack = *f.AllowBackNavigation
	}
	return survey.SurveyConfig{
		ID:                  strings.TrimSpace(f.ID),
		Title:               f.Title,
		Description:         f.Description,
		AllowBackNavigation: allowBack,
		Sections:            f.Sections,
	}
}

func parseDocument(data []byte, source string) (documentFile, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return documentFile{}, fmt.Errorf("surveydef: file %s is empty", source)
	}

	var doc documentFile
	switch strings.ToLower(filepath.Ext(source)) {
	case ".json":
		if err := json.Unmarshal(data, &doc); err != nil {
			return documentFile{}, fmt.Errorf("surveydef: parse %s: %w", source, err)
		}
	default:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return documentFile{}, fmt.Errorf("surveydef: parse %s: %w", source, err)
		}
	}
	return doc, nil
}

func isDefinitionFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}

// normalizeCatalogs backfills catalog ids from their map keys so documents
// do not have to repeat the id inside each entry.
func normalizeCatalogs(catalogs *survey.Catalogs) {
	for id, cat := range catalogs.RatingScales {
		if cat.ID == "" {
			cat.ID = id
			catalogs.RatingScales[id] = cat
		}
	}
	for id, cat := range catalogs.RadioOptionSets {
		if cat.ID == "" {
			cat.ID = id
			catalogs.RadioOptionSets[id] = cat
		}
	}
	for id, cat := range catalogs.SelectOptionSets {
		if cat.ID == "" {
			cat.ID = id
			catalogs.SelectOptionSets[id] = cat
		}
	}
	for id, cat := range catalogs.MultiSelectOptionSets {
		if cat.ID == "" {
			cat.ID = id
			catalogs.MultiSelectOptionSets[id] = cat
		}
	}
}

func sanitizeConfig(cfg *survey.SurveyConfig) {
	cfg.Title = sanitizeText(cfg.Title)
	cfg.Description = sanitizeText(cfg.Description)
	for si := range cfg.Sections {
		section := &cfg.Sections[si]
		section.Title = sanitizeText(section.Title)
		section.Description = sanitizeText(section.Description)
		sanitizeFields(section.Fields)
		for bi := range section.Subsections {
			sub := &section.Subsections[bi]
			sub.Title = sanitizeText(sub.Title)
			sub.Description = sanitizeText(sub.Description)
			sanitizeFields(sub.Fields)
		}
	}
}

func sanitizeFields(fields []survey.FieldDefinition) {
	for fi := range fields {
		field := &fields[fi]
		field.Label = sanitizeText(field.Label)
		field.HelpText = sanitizeText(field.HelpText)
		field.Placeholder = sanitizeText(field.Placeholder)
		for oi := range field.Options {
			field.Options[oi].Label = sanitizeText(field.Options[oi].Label)
		}
	}
}
