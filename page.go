package main

import (
	"strings"
	"time"
)

// Timing holds every delay the page animates with, measured from mount.
type Timing struct {
	Art          time.Duration
	TypeDelay    time.Duration
	About        time.Duration
	Skills       time.Duration
	Projects     time.Duration
	Experience   time.Duration
	Contact      time.Duration
	SkillStagger time.Duration
	CardStagger  time.Duration
}

func DefaultTiming() Timing {
	return Timing{
		Art:          300 * time.Millisecond,
		TypeDelay:    30 * time.Millisecond,
		About:        800 * time.Millisecond,
		Skills:       1000 * time.Millisecond,
		Projects:     1200 * time.Millisecond,
		Experience:   1400 * time.Millisecond,
		Contact:      1600 * time.Millisecond,
		SkillStagger: 50 * time.Millisecond,
		CardStagger:  100 * time.Millisecond,
	}
}

type SectionKind int

const (
	SectionAbout SectionKind = iota
	SectionSkills
	SectionProjects
	SectionExperience
	SectionContact
)

// Section is one titled block of the page.
type Section struct {
	Kind  SectionKind
	ID    string
	Title string
	Fade  Fade
}

// Page is a Profile laid out with its animation timings.
type Page struct {
	Profile
	Timing  Timing
	ArtFade Fade
	Typer   Typewriter
	Year    int
}

func NewPage(p Profile, t Timing) Page {
	return Page{
		Profile: p,
		Timing:  t,
		ArtFade: Fade{Delay: t.Art},
		Typer:   NewTypewriter(p.Tagline, t.TypeDelay),
		Year:    time.Now().Year(),
	}
}

// Sections returns the page sections in display order.
func (p Page) Sections() []Section {
	return []Section{
		{Kind: SectionAbout, ID: "about", Title: "ABOUT", Fade: Fade{Delay: p.Timing.About}},
		{Kind: SectionSkills, ID: "skills", Title: "SKILLS", Fade: Fade{Delay: p.Timing.Skills}},
		{Kind: SectionProjects, ID: "projects", Title: "PROJECTS", Fade: Fade{Delay: p.Timing.Projects}},
		{Kind: SectionExperience, ID: "experience", Title: "EXPERIENCE", Fade: Fade{Delay: p.Timing.Experience}},
		{Kind: SectionContact, ID: "contact", Title: "CONTACT", Fade: Fade{Delay: p.Timing.Contact}},
	}
}

// Section looks up a section by kind.
func (p Page) Section(kind SectionKind) Section {
	for _, s := range p.Sections() {
		if s.Kind == kind {
			return s
		}
	}
	return Section{}
}

// Stagger is the animation offset of the i-th entry in a list.
func Stagger(i int, step time.Duration) time.Duration {
	return time.Duration(i) * step
}

// paragraph collapses the source indentation of a multi-line literal.
func paragraph(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
