package matching

import (
	"regexp"
	"strings"
)

const (
	maxSkills     = 10
	maxExperience = 8

	matchesPerPattern = 5
)

var skillKeywords = []string{
	"JavaScript", "Python", "React", "Node.js", "SQL", "AWS", "Docker",
	"Kubernetes", "TypeScript", "Vue", "Angular", "MongoDB", "PostgreSQL",
	"Machine Learning", "Data Analysis", "Project Management", "Agile",
}

var experiencePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\w+\s+\w+\s+at\s+\w+`),
	regexp.MustCompile(`(?i)\w+\s+\w+\s+-\s+\w+`),
	regexp.MustCompile(`(?i)(?:Senior|Junior|Lead|Principal)\s+\w+`),
}

var (
	defaultSkills     = []string{"Communication", "Problem Solving", "Team Work"}
	defaultExperience = []string{"Professional Experience", "Project Leadership"}
)

type ParsedResume struct {
	Skills     []string
	Experience []string
}

// ParseResume extracts known skill keywords and job-title-like phrases from
// plain resume text. Generic defaults are returned when nothing is found.
func ParseResume(text string) ParsedResume {
	lower := strings.ToLower(text)

	skills := []string{}
	for _, skill := range skillKeywords {
		if strings.Contains(lower, strings.ToLower(skill)) {
			skills = append(skills, skill)
		}
	}

	experience := []string{}
	seen := make(map[string]bool)
	for _, pattern := range experiencePatterns {
		for _, m := range pattern.FindAllString(text, matchesPerPattern) {
			m = strings.Join(strings.Fields(m), " ")
			if seen[m] {
				continue
			}

			seen[m] = true
			experience = append(experience, m)
		}
	}

	if len(skills) == 0 {
		skills = append(skills, defaultSkills...)
	}

	if len(experience) == 0 {
		experience = append(experience, defaultExperience...)
	}

	return ParsedResume{
		Skills:     skills[:min(len(skills), maxSkills)],
		Experience: experience[:min(len(experience), maxExperience)],
	}
}
