package matching

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestParseResume(t *testing.T) {
	tests := []struct {
		name           string
		text           string
		wantSkills     []string
		wantExperience []string
	}{
		{
			name:           "extracts keywords and titles",
			text:           "Senior Engineer at Google. Built React apps on AWS with PostgreSQL and Docker.",
			wantSkills:     []string{"React", "SQL", "AWS", "Docker", "PostgreSQL"},
			wantExperience: []string{"Senior Engineer at Google", "Senior Engineer"},
		},
		{
			name:           "falls back to defaults",
			text:           "hello",
			wantSkills:     []string{"Communication", "Problem Solving", "Team Work"},
			wantExperience: []string{"Professional Experience", "Project Leadership"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseResume(tt.text)

			if diff := cmp.Diff(tt.wantSkills, got.Skills); diff != "" {
				t.Errorf("skills mismatch (-want +got):\n%s", diff)
			}

			if diff := cmp.Diff(tt.wantExperience, got.Experience); diff != "" {
				t.Errorf("experience mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseResumeCaps(t *testing.T) {
	text := strings.Join(skillKeywords, " ") + "\n" + strings.Repeat("Lead Developer at Acme\n", 3) +
		"Staff Engineer - Remote\nPrincipal Architect\nJunior Analyst\nSenior Designer\nLead Tester\nSenior Writer\n"

	got := ParseResume(text)

	assert.Len(t, got.Skills, 10)
	assert.LessOrEqual(t, len(got.Experience), 8)
	assert.NotEmpty(t, got.Experience)
}

func TestEnhanceJobDescription(t *testing.T) {
	got := EnhanceJobDescription(" Backend Engineer ", "Build payment systems in Go.")

	assert.True(t, strings.HasPrefix(got, "🚀 Exciting Opportunity: Backend Engineer\n"))
	assert.Contains(t, got, "We are seeking a talented Backend Engineer")
	assert.Contains(t, got, "🎯 What You'll Do:\nBuild payment systems in Go.")
	assert.True(t, strings.HasSuffix(got, "We'd love to hear from you!"))
}

func TestSplitRequirements(t *testing.T) {
	got := SplitRequirements(" Go, PostgreSQL ,, 5 years ,")

	if diff := cmp.Diff([]string{"Go", "PostgreSQL", "5 years"}, got); diff != "" {
		t.Errorf("SplitRequirements() mismatch (-want +got):\n%s", diff)
	}
}
