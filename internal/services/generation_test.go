package services

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseQuestionSetAccepts(t *testing.T) {
	qs, err := ParseQuestionSet(quizJSON("A", "B", "C", "D", "A"), 5)
	require.NoError(t, err)
	require.Len(t, qs, 5)
	for _, q := range qs {
		require.Len(t, q.Options, 4)
		require.Contains(t, []string{"A", "B", "C", "D"}, q.CorrectAnswer)
	}
}

func TestParseQuestionSetStripsCodeFence(t *testing.T) {
	qs, err := ParseQuestionSet("```json\n"+quizJSON("B")+"\n```", 1)
	require.NoError(t, err)
	require.Equal(t, "B", qs[0].CorrectAnswer)
}

func TestParseQuestionSetRejects(t *testing.T) {
	cases := map[string]struct {
		raw  string
		want int
	}{
		"not json":          {raw: "Here are your questions: 1. ...", want: 1},
		"missing questions": {raw: `{"items": []}`, want: 1},
		"count mismatch":    {raw: quizJSON("A", "B"), want: 3},
		"three options": {raw: `{"questions":[{"question":"q","options":["A) 1","B) 2","C) 3"],"correct_answer":"A","explanation":"e"}]}`,
			want: 1},
		"label outside A-D": {raw: `{"questions":[{"question":"q","options":["A) 1","B) 2","C) 3","D) 4"],"correct_answer":"E","explanation":"e"}]}`,
			want: 1},
		"empty question": {raw: `{"questions":[{"question":"","options":["A) 1","B) 2","C) 3","D) 4"],"correct_answer":"A"}]}`,
			want: 1},
		"empty list": {raw: `{"questions":[]}`, want: 0},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseQuestionSet(tc.raw, tc.want)
			require.Error(t, err)
		})
	}
}

func TestLoadGenerationConfigOverlaysDefaults(t *testing.T) {
	cfg, err := LoadGenerationConfig("")
	require.NoError(t, err)
	require.Equal(t, 2000, cfg.Quiz.MaxTokens)
	require.InDelta(t, 0.7, cfg.Quiz.Temperature, 1e-9)
	require.InDelta(t, 0.6, cfg.Summary.Temperature, 1e-9)

	path := filepath.Join(t.TempDir(), "generation.yaml")
	require.NoError(t, os.WriteFile(path, []byte("summary:\n  max_tokens: 3000\n  model: gpt-4o\n"), 0o600))

	cfg, err = LoadGenerationConfig(path)
	require.NoError(t, err)
	require.Equal(t, 3000, cfg.Summary.MaxTokens)
	require.Equal(t, "gpt-4o", cfg.Summary.Model)
	require.InDelta(t, 0.6, cfg.Summary.Temperature, 1e-9)
	require.Equal(t, 2000, cfg.Quiz.MaxTokens)

	_, err = LoadGenerationConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
