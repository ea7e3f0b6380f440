package render

import (
	"html/template"
	"strings"
	"unicode/utf8"

	"resume-builder/internal/model"
)

// View is everything a layout template reads. It is derived from a Document
// on every render and never cached.
type View struct {
	Strategy Strategy
	Accent   template.CSS

	Name     string
	Initial  string
	Headline string
	Summary  string

	// ContactLine is the header line of Modern and Classic.
	ContactLine string
	// Contact is the sidebar block of Creative.
	Contact []ContactItem

	Experience []ExperienceView
	Education  []EducationView
	Skills     []SkillView
	SkillLine  string
	Projects   []ProjectView
}

type ContactItem struct {
	Value string
	Link  bool
}

type ExperienceView struct {
	JobTitle    string
	Company     string
	Location    string
	Description string
	Dates       string
}

type EducationView struct {
	Degree      string
	Institution string
	Dates       string
}

type SkillView struct {
	Name    string
	Percent int
}

type ProjectView struct {
	Title        string
	Description  string
	Link         string
	Technologies string
}

func (v View) HasProfile() bool    { return v.Summary != "" }
func (v View) HasExperience() bool { return len(v.Experience) > 0 }
func (v View) HasEducation() bool  { return len(v.Education) > 0 }
func (v View) HasSkills() bool     { return len(v.Skills) > 0 }
func (v View) HasProjects() bool   { return len(v.Projects) > 0 }

// BuildView derives the view of doc for its selected strategy.
func BuildView(doc model.Document) View {
	s := StrategyFor(doc.Meta.TemplateID)
	p := doc.PersonalInfo

	v := View{
		Strategy: s,
		Accent:   accentColor(doc.Meta.ThemeColor, s.DefaultAccent()),
		Name:     p.FullName,
		Initial:  initial(p.FullName),
		Summary:  p.Summary,
	}
	if len(doc.Experience) > 0 {
		v.Headline = doc.Experience[0].JobTitle
	}

	switch s {
	case Classic:
		v.ContactLine = strings.Join([]string{p.Address, p.Phone, p.Email}, " | ")
	case Creative:
		v.Contact = []ContactItem{{Value: p.Email}, {Value: p.Phone}, {Value: p.Address}}
		if p.Website != "" {
			v.Contact = append(v.Contact, ContactItem{Value: p.Website, Link: true})
		}
	default:
		v.ContactLine = joinNonEmpty(" • ", p.Email, p.Phone, p.Address, p.LinkedIn, p.Website)
	}

	for _, e := range doc.Experience {
		v.Experience = append(v.Experience, ExperienceView{
			JobTitle:    e.JobTitle,
			Company:     e.Company,
			Location:    e.Location,
			Description: e.Description,
			Dates:       DateRange(e.StartDate, e.EndDate, e.IsCurrent),
		})
	}
	for _, e := range doc.Education {
		v.Education = append(v.Education, EducationView{
			Degree:      e.Degree,
			Institution: e.Institution,
			Dates:       DateRange(e.StartDate, e.EndDate, false),
		})
	}
	names := make([]string, 0, len(doc.Skills))
	for _, sk := range doc.Skills {
		v.Skills = append(v.Skills, SkillView{Name: sk.Name, Percent: sk.Level.Percent()})
		names = append(names, sk.Name)
	}
	v.SkillLine = strings.Join(names, " • ")
	for _, pr := range doc.Projects {
		v.Projects = append(v.Projects, ProjectView{
			Title:        pr.Title,
			Description:  pr.Description,
			Link:         pr.Link,
			Technologies: pr.Technologies,
		})
	}
	return v
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}

func initial(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	if size == 0 || r == utf8.RuneError {
		return ""
	}
	return string(r)
}
