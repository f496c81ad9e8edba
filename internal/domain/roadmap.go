package domain

var roadmaps = map[Key][]string{
	FullStack: {
		"HTML/CSS Fundamentals",
		"JavaScript Mastery",
		"React Framework",
		"Node.js Backend",
		"Database Systems",
		"Deployment Strategies",
	},
	AIML: {
		"Python Programming",
		"Linear Algebra Basics",
		"Machine Learning Concepts",
		"Neural Networks",
		"TensorFlow/PyTorch",
		"AI Ethics",
	},
	UIUX: {
		"Design Principles",
		"Figma/Sketch",
		"User Research",
		"Wireframing",
		"Prototyping",
		"Usability Testing",
	},
	Data: {
		"Data Analysis",
		"SQL Fundamentals",
		"Python for Data Science",
		"Data Visualization",
		"Machine Learning Basics",
		"Big Data Concepts",
	},
	Cyber: {
		"Networking Basics",
		"Security Fundamentals",
		"Cryptography",
		"Ethical Hacking",
		"Security Tools",
		"Incident Response",
	},
}

// Roadmap returns the ordered learning milestones for k, or nil for an
// unknown domain.
func Roadmap(k Key) []string {
	items, ok := roadmaps[k]
	if !ok {
		return nil
	}
	return append([]string(nil), items...)
}

// OnRoadmap reports whether item is one of k's milestones.
func OnRoadmap(k Key, item string) bool {
	for _, it := range roadmaps[k] {
		if it == item {
			return true
		}
	}
	return false
}
