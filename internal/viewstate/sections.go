package viewstate

// SectionID names one of the anchorable page regions.
type SectionID string

const (
	SectionHome       SectionID = "home"
	SectionAbout      SectionID = "about"
	SectionSkills     SectionID = "skills"
	SectionProjects   SectionID = "projects"
	SectionExperience SectionID = "experience"
	SectionEducation  SectionID = "education"
	SectionContact    SectionID = "contact"
)

// Section is a named region of the page at a fixed position in document order.
type Section struct {
	ID    SectionID
	Label string
	Order int
}

var sections = [...]Section{
	{ID: SectionHome, Label: "Home", Order: 0},
	{ID: SectionAbout, Label: "About", Order: 1},
	{ID: SectionSkills, Label: "Skills", Order: 2},
	{ID: SectionProjects, Label: "Projects", Order: 3},
	{ID: SectionExperience, Label: "Experience", Order: 4},
	{ID: SectionEducation, Label: "Education", Order: 5},
	{ID: SectionContact, Label: "Contact", Order: 6},
}

// Sections returns the page sections in document order.
func Sections() []Section {
	out := make([]Section, len(sections))
	copy(out, sections[:])
	return out
}

// Valid reports whether id is one of the fixed sections.
func (id SectionID) Valid() bool {
	for _, s := range sections {
		if s.ID == id {
			return true
		}
	}
	return false
}

// Navigator performs smooth scrolls in the host environment.
type Navigator interface {
	ScrollIntoView(id SectionID)
	ScrollToTop()
}

// Navigate scrolls to the section with the given id. Unknown ids are ignored.
func Navigate(nav Navigator, id SectionID) bool {
	if nav == nil || !id.Valid() {
		return false
	}
	nav.ScrollIntoView(id)
	return true
}

// ScrollToTop scrolls the page back to its start.
func ScrollToTop(nav Navigator) {
	if nav != nil {
		nav.ScrollToTop()
	}
}
