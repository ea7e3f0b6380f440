package model

// Go models that match document.schema.json used for shape checks and rendering.

type TemplateID string

const (
	TemplateModern   TemplateID = "modern"
	TemplateClassic  TemplateID = "classic"
	TemplateCreative TemplateID = "creative"
)

// TemplateInfo describes one selectable template.
type TemplateInfo struct {
	ID           TemplateID `json:"id"`
	Name         string     `json:"name"`
	DefaultColor string     `json:"color"`
}

var templates = []TemplateInfo{
	{ID: TemplateModern, Name: "Modern", DefaultColor: "#2563eb"},
	{ID: TemplateClassic, Name: "Classic", DefaultColor: "#111827"},
	{ID: TemplateCreative, Name: "Creative", DefaultColor: "#8b5cf6"},
}

// Templates returns the template catalogue in display order.
func Templates() []TemplateInfo {
	out := make([]TemplateInfo, len(templates))
	copy(out, templates)
	return out
}

// Known reports whether id is one of the fixed templates.
func (id TemplateID) Known() bool {
	for _, t := range templates {
		if t.ID == id {
			return true
		}
	}
	return false
}

// DefaultColor returns the documented accent color, or "" for unknown ids.
func (id TemplateID) DefaultColor() string {
	for _, t := range templates {
		if t.ID == id {
			return t.DefaultColor
		}
	}
	return ""
}

type SkillLevel string

const (
	LevelBeginner     SkillLevel = "Beginner"
	LevelIntermediate SkillLevel = "Intermediate"
	LevelAdvanced     SkillLevel = "Advanced"
	LevelExpert       SkillLevel = "Expert"
)

// Levels lists skill levels from lowest to highest.
func Levels() []SkillLevel {
	return []SkillLevel{LevelBeginner, LevelIntermediate, LevelAdvanced, LevelExpert}
}

func (l SkillLevel) Valid() bool {
	switch l {
	case LevelBeginner, LevelIntermediate, LevelAdvanced, LevelExpert:
		return true
	}
	return false
}

// Percent maps a level to its bar fill. Anything outside the set fills like Beginner.
func (l SkillLevel) Percent() int {
	switch l {
	case LevelExpert:
		return 100
	case LevelAdvanced:
		return 75
	case LevelIntermediate:
		return 50
	default:
		return 25
	}
}

type PersonalInfo struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Website  string `json:"website,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	GitHub   string `json:"github,omitempty"`
	Summary  string `json:"summary"`
}

type Experience struct {
	ID          string `json:"id"`
	JobTitle    string `json:"jobTitle"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	IsCurrent   bool   `json:"isCurrent"`
	Description string `json:"description"`
}

type Education struct {
	ID          string `json:"id"`
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Location    string `json:"location"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Grade       string `json:"grade,omitempty"`
}

type Skill struct {
	ID    string     `json:"id"`
	Name  string     `json:"name"`
	Level SkillLevel `json:"level"`
}

type Project struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Link         string `json:"link,omitempty"`
	Technologies string `json:"technologies"`
}

type Meta struct {
	TemplateID TemplateID `json:"templateId"`
	ThemeColor string     `json:"themeColor"`
}

// Document is the whole resume. Values are treated as immutable snapshots:
// the edit helpers in edit.go return a new Document instead of mutating.
type Document struct {
	PersonalInfo PersonalInfo `json:"personalInfo"`
	Experience   []Experience `json:"experience"`
	Education    []Education  `json:"education"`
	Skills       []Skill      `json:"skills"`
	Projects     []Project    `json:"projects"`
	Meta         Meta         `json:"meta"`
}

// New returns the empty document an editing session starts from.
func New() Document {
	return Document{
		Experience: []Experience{},
		Education:  []Education{},
		Skills:     []Skill{},
		Projects:   []Project{},
		Meta: Meta{
			TemplateID: TemplateModern,
			ThemeColor: TemplateModern.DefaultColor(),
		},
	}
}

// Clone returns a deep copy.
func (d Document) Clone() Document {
	out := d
	out.Experience = append([]Experience{}, d.Experience...)
	out.Education = append([]Education{}, d.Education...)
	out.Skills = append([]Skill{}, d.Skills...)
	out.Projects = append([]Project{}, d.Projects...)
	return out
}

// normalize replaces nil collections with empty ones so JSON output is stable.
func (d Document) normalize() Document {
	if d.Experience == nil {
		d.Experience = []Experience{}
	}
	if d.Education == nil {
		d.Education = []Education{}
	}
	if d.Skills == nil {
		d.Skills = []Skill{}
	}
	if d.Projects == nil {
		d.Projects = []Project{}
	}
	return d
}
