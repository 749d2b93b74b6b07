package seed

import (
	"fmt"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v7"
)

// DefaultPassword is shared by every generated account.
const DefaultPassword = "password123"

var categories = []string{
	"Technology", "Programming", "Web Development", "Data Science",
	"Machine Learning", "DevOps", "Cybersecurity", "Mobile Development",
	"Database Design", "API Development", "Frontend", "Backend",
	"Cloud Computing", "Docker", "Kubernetes", "Microservices",
	"Testing", "CI/CD", "Agile", "Project Management",
}

var titleTemplates = []string{
	"Getting Started with %s",
	"Best Practices for %s",
	"Advanced %s Techniques",
	"Common Mistakes in %s",
	"How to Optimize %s",
	"Understanding %s Fundamentals",
	"Tips and Tricks for %s",
	"Troubleshooting %s Issues",
	"Modern Approaches to %s",
	"Deep Dive into %s",
	"Building Scalable %s Solutions",
	"Security Considerations in %s",
	"Performance Optimization in %s",
	"Integration Patterns for %s",
	"Testing Strategies for %s",
	"Deployment Best Practices for %s",
	"Monitoring and Logging in %s",
	"Architecture Patterns for %s",
	"Code Quality in %s",
	"Team Collaboration in %s Projects",
}

// UserData is a generated account.
type UserData struct {
	Name     string
	Email    string
	Password string
}

// PostData is a generated post.
type PostData struct {
	Title     string
	Content   string
	CreatedAt time.Time
}

// Generator produces fake users and posts. It is not safe for concurrent use.
type Generator struct {
	faker *gofakeit.Faker
}

// NewGenerator creates a Generator. The same seed yields the same sequence.
func NewGenerator(seed uint64) *Generator {
	return &Generator{faker: gofakeit.New(seed)}
}

// User generates an account with DefaultPassword.
func (g *Generator) User() UserData {
	return UserData{
		Name:     g.faker.Name(),
		Email:    strings.ToLower(g.faker.Email()),
		Password: DefaultPassword,
	}
}

// PostCount picks how many posts a user gets, inclusive of both bounds.
func (g *Generator) PostCount(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return g.faker.IntRange(lo, hi)
}

// Post generates a post dated within the year before now.
func (g *Generator) Post(now time.Time) PostData {
	category := g.faker.RandomString(categories)
	title := fmt.Sprintf(g.faker.RandomString(titleTemplates), category)

	const year = int(365 * 24 * time.Hour / time.Second)
	createdAt := now.Add(-time.Duration(g.faker.IntRange(0, year)) * time.Second)

	return PostData{
		Title:     title,
		Content:   g.content(title, createdAt),
		CreatedAt: createdAt,
	}
}

func (g *Generator) content(title string, date time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", title)
	b.WriteString("## Introduction\n")
	b.WriteString(g.faker.LoremIpsumParagraph(1, 3, 12, "\n"))
	b.WriteString("\n\n## Key Points\n")
	for i, n := 0, g.faker.IntRange(3, 6); i < n; i++ {
		fmt.Fprintf(&b, "- %s\n", g.faker.LoremIpsumSentence(8))
	}
	b.WriteString("\n## Conclusion\n")
	b.WriteString(g.faker.LoremIpsumParagraph(1, 2, 12, "\n"))
	fmt.Fprintf(&b, "\n\n---\n*Posted on %s*\n", date.Format("January 02, 2006"))
	return b.String()
}
