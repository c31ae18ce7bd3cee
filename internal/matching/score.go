// Package matching scores jobs against the skills extracted from a resume.
// Scores are keyword heuristics with a random component; callers must not
// rely on exact values.
package matching

import (
	"math"
	"math/rand"
	"sort"
	"strings"

	"github.com/metinatakli/jobmatch/internal/domain"
)

const (
	minScore = 30
	maxScore = 95

	// jobs without requirements score in [70, 99]
	openScoreBase   = 70
	openScoreSpread = 30

	variance = 10
)

// Source supplies the randomness in a score.
type Source interface {
	Intn(n int) int
	Float64() float64
}

type globalSource struct{}

func (globalSource) Intn(n int) int   { return rand.Intn(n) }
func (globalSource) Float64() float64 { return rand.Float64() }

// DefaultSource draws from the math/rand global generator.
var DefaultSource Source = globalSource{}

// MatchingSkills returns the skills that match at least one requirement. A
// skill matches when either string contains the other, ignoring case. Blank
// skills and requirements are skipped, otherwise an empty string would be
// contained in every requirement.
func MatchingSkills(skills, requirements []string) []string {
	matched := []string{}

	for _, skill := range skills {
		s := strings.ToLower(strings.TrimSpace(skill))
		if s == "" {
			continue
		}

		for _, req := range requirements {
			r := strings.ToLower(strings.TrimSpace(req))
			if r == "" {
				continue
			}

			if strings.Contains(r, s) || strings.Contains(s, r) {
				matched = append(matched, skill)
				break
			}
		}
	}

	return matched
}

func Score(skills, requirements []string, src Source) int {
	if len(requirements) == 0 {
		return openScoreBase + src.Intn(openScoreSpread)
	}

	matched := len(MatchingSkills(skills, requirements))
	base := float64(matched) / float64(len(requirements)) * 100
	perturbation := src.Float64()*2*variance - variance

	score := int(math.Round(base + perturbation))

	return min(max(score, minScore), maxScore)
}

type Match struct {
	Job            *domain.Job
	Score          int
	MatchingSkills []string
}

// Rank scores every job and returns the best limit matches, highest score
// first. Ties go to boosted jobs, then to newer ones. A limit of zero or less
// keeps every job.
func Rank(jobs []*domain.Job, skills []string, limit int, src Source) []Match {
	matches := make([]Match, 0, len(jobs))

	for _, job := range jobs {
		matches = append(matches, Match{
			Job:            job,
			Score:          Score(skills, job.Requirements, src),
			MatchingSkills: MatchingSkills(skills, job.Requirements),
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		a, b := matches[i], matches[j]

		if a.Score != b.Score {
			return a.Score > b.Score
		}

		if a.Job.Boosted != b.Job.Boosted {
			return a.Job.Boosted
		}

		return a.Job.CreatedAt.After(b.Job.CreatedAt)
	})

	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}

	return matches
}
