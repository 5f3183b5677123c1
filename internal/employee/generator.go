package employee

import (
	"fmt"
	"math/rand"
	"strings"
)

// Skill, project and availability pools for the fake dataset. The text values
// also drive what semantic queries can find, so they cover a realistic spread
// of engineering roles.
var (
	allSkills = []string{
		"Python", "Java", "JavaScript", "React", "Angular", "Vue.js", "Node.js",
		"AWS", "Azure", "GCP", "Docker", "Kubernetes", "SQL", "NoSQL",
		"Machine Learning", "Deep Learning", "NLP", "Data Science", "Tableau",
		"Power BI", "DevOps", "CI/CD", "Terraform", "Ansible", "C#", ".NET",
		"Unity", "iOS Development", "Android Development", "React Native",
		"Flutter", "PHP", "Ruby on Rails", "Go", "TypeScript", "Kafka",
		"Spark", "Hadoop", "Scrum", "Agile", "Microservices", "REST APIs",
		"GraphQL", "Cybersecurity", "Blockchain", "AR/VR",
	}

	allProjects = []string{
		"E-commerce Platform", "Healthcare Management System", "Fintech Application",
		"Social Media Analytics", "AI-powered Chatbot", "Supply Chain Optimization",
		"Cloud Migration Project", "Mobile Game Development", "CRM System",
		"Data Warehousing Solution", "IoT Dashboard", "Educational Platform",
		"Cybersecurity Audit", "Blockchain Voting System", "Augmented Reality App",
		"Natural Language Processing Engine", "Predictive Maintenance System",
		"Real-time Data Processing", "Customer Loyalty Program", "Fraud Detection System",
	}

	availabilityOptions = []string{
		AvailabilityAvailable, AvailabilityPartial, AvailabilityBooked,
	}

	firstNames = []string{
		"Asha", "Noah", "Mia", "Liam", "Priya", "Omar", "Elena", "Kenji",
		"Fatima", "Lucas", "Ingrid", "Mateo", "Yuki", "Amara", "Viktor",
		"Zara", "Diego", "Hana", "Tomas", "Leila", "Ravi", "Sofia",
		"Emeka", "Nadia", "Jonas",
	}
	lastNames = []string{
		"Patel", "Kim", "Garcia", "Okafor", "Novak", "Tanaka", "Hansen",
		"Silva", "Ivanov", "Hussain", "Moreau", "Schmidt", "Costa", "Ali",
		"Johansson", "Reyes", "Kaur", "Dubois", "Nakamura", "Olsen",
	}
)

// Generate produces n fake employee records using a seeded source so the same
// seed always yields the same dataset. Names are drawn without repetition
// until the pool is exhausted, then a numeric suffix keeps them unique.
func Generate(n int, seed int64) []Record {
	rng := rand.New(rand.NewSource(seed))
	records := make([]Record, 0, n)
	used := make(map[string]int)

	for i := 0; i < n; i++ {
		base := firstNames[rng.Intn(len(firstNames))] + " " + lastNames[rng.Intn(len(lastNames))]
		name := base
		if c := used[base]; c > 0 {
			name = fmt.Sprintf("%s %d", base, c+1)
		}
		used[base]++

		skills := sample(rng, allSkills, 1+rng.Intn(5))
		projects := sample(rng, allProjects, 1+rng.Intn(3))

		records = append(records, Record{
			Name:            name,
			Skills:          strings.Join(skills, ", "),
			ExperienceYears: 1 + rng.Intn(15),
			PastProjects:    strings.Join(projects, ", "),
			Availability:    availabilityOptions[rng.Intn(len(availabilityOptions))],
		})
	}
	return records
}

// sample draws k distinct elements from pool in random order.
func sample(rng *rand.Rand, pool []string, k int) []string {
	idx := rng.Perm(len(pool))
	out := make([]string, 0, k)
	for _, j := range idx[:k] {
		out = append(out, pool[j])
	}
	return out
}
