package model

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	ErrUnknownSection = errors.New("unknown section")
	ErrUnknownField   = errors.New("unknown field")
	ErrEntryNotFound  = errors.New("entry not found")
	ErrInvalidValue   = errors.New("invalid value")
)

// Section names one of the list collections of a Document.
type Section string

const (
	SectionExperience Section = "experience"
	SectionEducation  Section = "education"
	SectionSkills     Section = "skills"
	SectionProjects   Section = "projects"
)

func ParseSection(s string) (Section, error) {
	switch Section(s) {
	case SectionExperience, SectionEducation, SectionSkills, SectionProjects:
		return Section(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSection, s)
}

// NewID generates entry identities. Tests may replace it.
var NewID = uuid.NewString

// WithPersonalField returns a copy with one personalInfo field replaced.
func (d Document) WithPersonalField(field, value string) (Document, error) {
	p := d.PersonalInfo
	switch field {
	case "fullName":
		p.FullName = value
	case "email":
		p.Email = value
	case "phone":
		p.Phone = value
	case "address":
		p.Address = value
	case "website":
		p.Website = value
	case "linkedin":
		p.LinkedIn = value
	case "github":
		p.GitHub = value
	case "summary":
		p.Summary = value
	default:
		return d, fmt.Errorf("%w: personalInfo.%s", ErrUnknownField, field)
	}
	d.PersonalInfo = p
	return d, nil
}

// WithTemplate switches the template and resets the accent color to the
// template default. A non-nil color overrides the default. For an id outside
// the fixed set the previous color is kept.
func (d Document) WithTemplate(id TemplateID, color *string) Document {
	m := d.Meta
	m.TemplateID = id
	switch {
	case color != nil:
		m.ThemeColor = *color
	case id.Known():
		m.ThemeColor = id.DefaultColor()
	}
	d.Meta = m
	return d
}

func (d Document) WithThemeColor(color string) Document {
	d.Meta.ThemeColor = color
	return d
}

// AddEntry appends a blank entry to section and returns its identity.
func (d Document) AddEntry(section Section) (Document, string, error) {
	switch section {
	case SectionExperience:
		id := freshID(d.Experience, experienceID)
		d.Experience = appendCopy(d.Experience, Experience{ID: id})
		return d, id, nil
	case SectionEducation:
		id := freshID(d.Education, educationID)
		d.Education = appendCopy(d.Education, Education{ID: id})
		return d, id, nil
	case SectionSkills:
		id := freshID(d.Skills, skillID)
		d.Skills = appendCopy(d.Skills, Skill{ID: id, Level: LevelIntermediate})
		return d, id, nil
	case SectionProjects:
		id := freshID(d.Projects, projectID)
		d.Projects = appendCopy(d.Projects, Project{ID: id})
		return d, id, nil
	}
	return d, "", fmt.Errorf("%w: %q", ErrUnknownSection, section)
}

// RemoveEntry drops the entry with the given identity, keeping the order of the rest.
func (d Document) RemoveEntry(section Section, id string) (Document, error) {
	var err error
	switch section {
	case SectionExperience:
		d.Experience, err = removeByID(d.Experience, id, experienceID)
	case SectionEducation:
		d.Education, err = removeByID(d.Education, id, educationID)
	case SectionSkills:
		d.Skills, err = removeByID(d.Skills, id, skillID)
	case SectionProjects:
		d.Projects, err = removeByID(d.Projects, id, projectID)
	default:
		return d, fmt.Errorf("%w: %q", ErrUnknownSection, section)
	}
	return d, err
}

// UpdateEntry replaces a single field on the entry with the given identity.
func (d Document) UpdateEntry(section Section, id, field string, value any) (Document, error) {
	var err error
	switch section {
	case SectionExperience:
		d.Experience, err = updateByID(d.Experience, id, experienceID, func(e *Experience) error { return e.set(field, value) })
	case SectionEducation:
		d.Education, err = updateByID(d.Education, id, educationID, func(e *Education) error { return e.set(field, value) })
	case SectionSkills:
		d.Skills, err = updateByID(d.Skills, id, skillID, func(s *Skill) error { return s.set(field, value) })
	case SectionProjects:
		d.Projects, err = updateByID(d.Projects, id, projectID, func(p *Project) error { return p.set(field, value) })
	default:
		return d, fmt.Errorf("%w: %q", ErrUnknownSection, section)
	}
	return d, err
}

func experienceID(e Experience) string { return e.ID }
func educationID(e Education) string   { return e.ID }
func skillID(s Skill) string           { return s.ID }
func projectID(p Project) string       { return p.ID }

func freshID[T any](items []T, idOf func(T) string) string {
	for {
		id := NewID()
		taken := false
		for _, it := range items {
			if idOf(it) == id {
				taken = true
				break
			}
		}
		if !taken {
			return id
		}
	}
}

func appendCopy[T any](items []T, item T) []T {
	out := make([]T, 0, len(items)+1)
	out = append(out, items...)
	return append(out, item)
}

func removeByID[T any](items []T, id string, idOf func(T) string) ([]T, error) {
	out := make([]T, 0, len(items))
	found := false
	for _, it := range items {
		if idOf(it) == id {
			found = true
			continue
		}
		out = append(out, it)
	}
	if !found {
		return items, fmt.Errorf("%w: %s", ErrEntryNotFound, id)
	}
	return out, nil
}

func updateByID[T any](items []T, id string, idOf func(T) string, set func(*T) error) ([]T, error) {
	for i, it := range items {
		if idOf(it) != id {
			continue
		}
		if err := set(&it); err != nil {
			return items, err
		}
		out := make([]T, len(items))
		copy(out, items)
		out[i] = it
		return out, nil
	}
	return items, fmt.Errorf("%w: %s", ErrEntryNotFound, id)
}

func setString(dst *string, field string, value any) error {
	s, ok := value.(string)
	if !ok {
		return fmt.Errorf("%w: %s expects a string, got %T", ErrInvalidValue, field, value)
	}
	*dst = s
	return nil
}

func (e *Experience) set(field string, value any) error {
	switch field {
	case "jobTitle":
		return setString(&e.JobTitle, field, value)
	case "company":
		return setString(&e.Company, field, value)
	case "location":
		return setString(&e.Location, field, value)
	case "startDate":
		return setString(&e.StartDate, field, value)
	case "endDate":
		return setString(&e.EndDate, field, value)
	case "description":
		return setString(&e.Description, field, value)
	case "isCurrent":
		b, ok := value.(bool)
		if !ok {
			return fmt.Errorf("%w: isCurrent expects a bool, got %T", ErrInvalidValue, value)
		}
		e.IsCurrent = b
		return nil
	}
	return fmt.Errorf("%w: experience.%s", ErrUnknownField, field)
}

func (e *Education) set(field string, value any) error {
	switch field {
	case "degree":
		return setString(&e.Degree, field, value)
	case "institution":
		return setString(&e.Institution, field, value)
	case "location":
		return setString(&e.Location, field, value)
	case "startDate":
		return setString(&e.StartDate, field, value)
	case "endDate":
		return setString(&e.EndDate, field, value)
	case "grade":
		return setString(&e.Grade, field, value)
	}
	return fmt.Errorf("%w: education.%s", ErrUnknownField, field)
}

func (s *Skill) set(field string, value any) error {
	switch field {
	case "name":
		return setString(&s.Name, field, value)
	case "level":
		var raw string
		if err := setString(&raw, field, value); err != nil {
			return err
		}
		lvl := SkillLevel(raw)
		if !lvl.Valid() {
			return fmt.Errorf("%w: level %q", ErrInvalidValue, raw)
		}
		s.Level = lvl
		return nil
	}
	return fmt.Errorf("%w: skills.%s", ErrUnknownField, field)
}

func (p *Project) set(field string, value any) error {
	switch field {
	case "title":
		return setString(&p.Title, field, value)
	case "description":
		return setString(&p.Description, field, value)
	case "link":
		return setString(&p.Link, field, value)
	case "technologies":
		return setString(&p.Technologies, field, value)
	}
	return fmt.Errorf("%w: projects.%s", ErrUnknownField, field)
}
