package privacy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel_TableTest(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Resolved
	}{
		{
			name:  "business card",
			input: "business_card",
			want:  Resolved{Base: LevelBusinessCard},
		},
		{
			name:  "professional",
			input: "professional",
			want:  Resolved{Base: LevelProfessional},
		},
		{
			name:  "public full",
			input: "public_full",
			want:  Resolved{Base: LevelPublicFull},
		},
		{
			name:  "ai_safe pairs with business card",
			input: "ai_safe",
			want:  Resolved{Base: LevelBusinessCard, AISafe: true},
		},
		{
			name:  "case insensitive",
			input: "Public_Full",
			want:  Resolved{Base: LevelPublicFull},
		},
		{
			name:  "surrounding whitespace",
			input: "  professional  ",
			want:  Resolved{Base: LevelProfessional},
		},
		{
			name:  "empty degrades to most restrictive",
			input: "",
			want:  Resolved{Base: LevelBusinessCard},
		},
		{
			name:  "unknown token degrades to most restrictive",
			input: "super_secret",
			want:  Resolved{Base: LevelBusinessCard},
		},
		{
			name:  "malformed input does not fail the request",
			input: "public_full; DROP TABLE users",
			want:  Resolved{Base: LevelBusinessCard},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.input))
		})
	}
}

func TestLevelOrdering(t *testing.T) {
	if LevelBusinessCard.Rank() >= LevelProfessional.Rank() {
		t.Fatal("business_card must rank below professional")
	}
	if LevelProfessional.Rank() >= LevelPublicFull.Rank() {
		t.Fatal("professional must rank below public_full")
	}
}

func TestResolvedToken(t *testing.T) {
	assert.Equal(t, "business_card", Resolved{Base: LevelBusinessCard}.Token())
	assert.Equal(t, "professional+ai_safe", Resolved{Base: LevelProfessional, AISafe: true}.Token())
}

func TestParseMinLevel_FailClosed(t *testing.T) {
	if _, ok := parseMinLevel("hide"); ok {
		t.Fatal("hide must not parse as a level")
	}
	if _, ok := parseMinLevel("whatever"); ok {
		t.Fatal("unknown rule token must not parse as a level")
	}

	min, ok := parseMinLevel("PROFESSIONAL")
	assert.True(t, ok)
	assert.Equal(t, LevelProfessional, min)
}
