package matching

import (
	"strings"
	"text/template"
)

var enhancedDescription = template.Must(template.New("job").Parse(`🚀 Exciting Opportunity: {{.Title}}

We are seeking a talented {{.Title}} to join our dynamic team. This role offers the perfect blend of challenge and growth opportunities in a collaborative environment.

🎯 What You'll Do:
{{.Description}}

💼 What We Offer:
• Competitive salary and comprehensive benefits package
• Flexible work arrangements and remote-friendly culture
• Professional development opportunities and learning stipend
• Collaborative team environment with growth potential
• Modern tools and technology stack
• Health, dental, and vision insurance
• Generous PTO and work-life balance focus

🌟 Why Join Us:
Be part of a forward-thinking organization that values innovation, diversity, and professional growth. We're committed to creating an inclusive workplace where every team member can thrive and make a meaningful impact.

Ready to take your career to the next level? We'd love to hear from you!`))

// EnhanceJobDescription wraps an employer's description in the standard
// posting template.
func EnhanceJobDescription(title, description string) string {
	var sb strings.Builder

	err := enhancedDescription.Execute(&sb, struct{ Title, Description string }{
		Title:       strings.TrimSpace(title),
		Description: strings.TrimSpace(description),
	})
	if err != nil {
		return description
	}

	return sb.String()
}

// SplitRequirements turns a comma separated requirement list into trimmed,
// non-empty entries.
func SplitRequirements(raw string) []string {
	requirements := []string{}

	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			requirements = append(requirements, part)
		}
	}

	return requirements
}
