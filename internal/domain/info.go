package domain

// Info is the display metadata for a domain.
type Info struct {
	Key         Key
	Name        string
	Description string
	Icon        string
	Color       string
	Traits      []string
}

var details = map[Key]Info{
	FullStack: {
		Key:         FullStack,
		Name:        "Full Stack Development",
		Description: "You build complete web applications from frontend to backend.",
		Icon:        "💻",
		Color:       "#6C5CE7",
		Traits:      []string{"Versatile", "Problem Solver", "Integrator"},
	},
	AIML: {
		Key:         AIML,
		Name:        "AI/ML Engineering",
		Description: "You create intelligent systems that learn and adapt.",
		Icon:        "🤖",
		Color:       "#00B894",
		Traits:      []string{"Analytical", "Innovative", "Mathematical"},
	},
	UIUX: {
		Key:         UIUX,
		Name:        "UI/UX Design",
		Description: "You craft intuitive and beautiful user experiences.",
		Icon:        "🎨",
		Color:       "#E17055",
		Traits:      []string{"Creative", "Empathetic", "Detail-oriented"},
	},
	Data: {
		Key:         Data,
		Name:        "Data Science",
		Description: "You extract insights and tell stories with data.",
		Icon:        "📊",
		Color:       "#0984E3",
		Traits:      []string{"Curious", "Analytical", "Storyteller"},
	},
	Cyber: {
		Key:         Cyber,
		Name:        "Cybersecurity",
		Description: "You protect systems and data from digital threats.",
		Icon:        "🔒",
		Color:       "#D63031",
		Traits:      []string{"Vigilant", "Resourceful", "Ethical"},
	},
}

// Lookup returns the metadata for k. The returned Traits slice is a copy.
func Lookup(k Key) (Info, bool) {
	info, ok := details[k]
	if !ok {
		return Info{}, false
	}
	info.Traits = append([]string(nil), info.Traits...)
	return info, true
}

// MustLookup is Lookup for keys already known to be valid.
func MustLookup(k Key) Info {
	info, ok := Lookup(k)
	if !ok {
		panic("domain: unknown key " + string(k))
	}
	return info
}
