package questions

// defaultPool is returned when generation fails outright.
var defaultPool = []string{
	"Tell me about your background in software development.",
	"Explain your experience with Python and related frameworks.",
	"Describe a challenging project you worked on and how you overcame obstacles.",
	"How do you approach debugging a complex issue in a production environment?",
	"What's your experience with database systems and SQL?",
	"How do you stay updated with the latest technological trends?",
	"Explain your understanding of RESTful APIs and microservices.",
	"Describe your experience with version control systems like Git.",
	"How do you approach testing and ensuring code quality?",
	"Where do you see yourself in 5 years in terms of technical expertise?",
	"What development methodologies are you most comfortable with?",
	"How do you handle requirements that change during development?",
	"Tell me about your experience with cloud platforms.",
	"How do you ensure your code is maintainable?",
	"Describe your approach to code reviews.",
	"What strategies do you use for debugging complex issues?",
	"How do you stay current with technology trends?",
	"Describe your experience with performance optimization.",
	"How do you approach learning a new programming language or framework?",
	"What's your experience with containerization and orchestration?",
}

// paddingPool tops up a model answer that came back short.
var paddingPool = []string{
	"Tell me about your background in software development.",
	"Explain a challenging project you worked on and how you overcame obstacles.",
	"How do you approach debugging a complex issue?",
	"How do you stay updated with the latest technological trends?",
	"Where do you see yourself in 5 years in terms of technical expertise?",
	"What development methodologies are you familiar with?",
	"Describe your experience with cloud platforms.",
	"How do you handle code reviews?",
	"What's your approach to continuous learning?",
	"How do you prioritize tasks when working on multiple projects?",
	"Describe your experience with performance optimization.",
	"How do you ensure your code is secure?",
	"What's your experience with containerization technologies?",
	"How do you document your code?",
	"Describe a time when you had to learn a new technology quickly.",
}

// Defaults returns the first count questions of the default pool.
func Defaults(count int) []string {
	if count <= 0 {
		return []string{}
	}
	if count > len(defaultPool) {
		count = len(defaultPool)
	}
	out := make([]string, count)
	copy(out, defaultPool[:count])
	return out
}

// pad appends padding questions in pool order, wrapping around, until
// questions holds count entries.
func pad(questions []string, count int) []string {
	for i := 0; len(questions) < count; i++ {
		questions = append(questions, paddingPool[i%len(paddingPool)])
	}
	return questions
}
