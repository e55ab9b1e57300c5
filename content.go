package main

type Skill string

type Project struct {
	Name string
	Desc string
	Tech string
}

type Experience struct {
	Role    string
	Company string
	Period  string
	Desc    string
}

type ContactLink struct {
	Label    string
	Href     string
	External bool
}

type Credit struct {
	Prefix string
	Handle string
	Href   string
}

// Profile is everything the page shows. It is built once from the values
// below and never modified.
type Profile struct {
	Owner   string
	Art     string
	Tagline string
	Prompt  string
	About   []string

	Skills     []Skill
	Projects   []Project
	Experience []Experience
	Contact    []ContactLink
	Credits    []Credit
	Motto      string
}

const AsciiArt = `
    ██╗   ██╗ █████╗ ███████╗██╗   ██╗
    ██║   ██║██╔══██╗██╔════╝██║   ██║
    ██║   ██║███████║███████╗██║   ██║
    ╚██╗ ██╔╝██╔══██║╚════██║██║   ██║
     ╚████╔╝ ██║  ██║███████║╚██████╔╝
      ╚═══╝  ╚═╝  ╚═╝╚══════╝ ╚═════╝
`

const Divider = `═══════════════════════════════════════════════════════════════`

var (
	AboutMe = []string{
		`I craft minimal, efficient software with a focus on developer
		experience and performance. My work spans from low-level systems
		programming to modern web applications.`,
		`Currently exploring the intersection of terminal interfaces and
		modern tooling. Believer in the UNIX philosophy: do one thing well.`,
	}

	Skills = []Skill{
		"TypeScript", "React", "Node.js", "Python",
		"Go", "Rust", "PostgreSQL", "MongoDB",
		"Docker", "Kubernetes", "AWS", "GCP",
	}

	Projects = []Project{
		{Name: "neural-cli", Desc: "A terminal-based neural network visualizer", Tech: "Rust, WASM"},
		{Name: "void-sync", Desc: "Real-time distributed file synchronization", Tech: "Go, gRPC"},
		{Name: "pixel-forge", Desc: "ASCII art generator from images", Tech: "Python, NumPy"},
		{Name: "mono-db", Desc: "Minimalist key-value store", Tech: "Rust, LMDB"},
	}

	Experiences = []Experience{
		{
			Role:    "Senior Software Engineer",
			Company: "Terminal Labs",
			Period:  "2022 — Present",
			Desc:    "Building developer tools and infrastructure",
		},
		{
			Role:    "Full Stack Developer",
			Company: "Void Systems",
			Period:  "2020 — 2022",
			Desc:    "Distributed systems and real-time applications",
		},
		{
			Role:    "Software Engineer",
			Company: "Pixel Inc",
			Period:  "2018 — 2020",
			Desc:    "Frontend architecture and design systems",
		},
	}

	Contacts = []ContactLink{
		{Label: "vasu@example.com", Href: "mailto:vasu@example.com"},
		{Label: "github.com/vasu", Href: "https://github.com", External: true},
		{Label: "@Vasu_Devs", Href: "https://twitter.com/Vasu_Devs", External: true},
	}

	Credits = []Credit{
		{Prefix: "Requested by", Handle: "@Vasu_Devs", Href: "https://twitter.com/Vasu_Devs"},
		{Prefix: "Built by", Handle: "@clonkbot", Href: "https://twitter.com/clonkbot"},
	}
)

// DefaultProfile is the compiled-in portfolio.
func DefaultProfile() Profile {
	return Profile{
		Owner:      "VASU",
		Art:        AsciiArt,
		Tagline:    "Software Engineer & Open Source Enthusiast",
		Prompt:     "Building tools that respect the terminal",
		About:      AboutMe,
		Skills:     Skills,
		Projects:   Projects,
		Experience: Experiences,
		Contact:    Contacts,
		Credits:    Credits,
		Motto:      "All systems nominal",
	}
}
