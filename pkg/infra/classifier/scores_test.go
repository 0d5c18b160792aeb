package classifier_test

import (
	"testing"

	"github.com/NeuralTrust/toxicity-api/pkg/domain"
	"github.com/NeuralTrust/toxicity-api/pkg/domain/toxicity"
	"github.com/NeuralTrust/toxicity-api/pkg/infra/classifier"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseScores(t *testing.T) {
	t.Run("Detoxify output", func(t *testing.T) {
		scores, err := classifier.ParseScores([]byte(`{
			"toxicity": 0.91,
			"severe_toxicity": 0.04,
			"obscene": 0.32,
			"threat": 0.002,
			"insult": 0.88,
			"identity_attack": 0.01
		}`))

		require.NoError(t, err)
		assert.Len(t, scores, 6)
		assert.Equal(t, 0.91, scores[toxicity.Category])
		assert.Equal(t, 0.88, scores["insult"])
	})

	t.Run("Coerces strings and booleans", func(t *testing.T) {
		scores, err := classifier.ParseScores([]byte(`{"toxicity":" 0.25 ","flagged":true,"safe":false}`))

		require.NoError(t, err)
		assert.Equal(t, 0.25, scores["toxicity"])
		assert.Equal(t, 1.0, scores["flagged"])
		assert.Equal(t, 0.0, scores["safe"])
	})

	t.Run("Drops unusable secondary categories", func(t *testing.T) {
		scores, err := classifier.ParseScores([]byte(`{"toxicity":0.3,"model":"original","extra":null}`))

		require.NoError(t, err)
		assert.Equal(t, toxicity.Scores{"toxicity": 0.3}, scores)
	})

	t.Run("Missing toxicity category", func(t *testing.T) {
		scores, err := classifier.ParseScores([]byte(`{"obscene":0.1}`))

		require.NoError(t, err)
		assert.NotContains(t, scores, toxicity.Category)
	})

	t.Run("Empty object", func(t *testing.T) {
		scores, err := classifier.ParseScores([]byte(`{}`))

		require.NoError(t, err)
		assert.Empty(t, scores)
	})

	t.Run("Non numeric toxicity", func(t *testing.T) {
		_, err := classifier.ParseScores([]byte(`{"toxicity":"high"}`))

		assert.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidClassifierOutput)
		assert.True(t, domain.IsScoreError(err))
	})

	t.Run("Null toxicity", func(t *testing.T) {
		_, err := classifier.ParseScores([]byte(`{"toxicity":null}`))

		assert.ErrorIs(t, err, domain.ErrInvalidClassifierOutput)
	})

	t.Run("Not an object", func(t *testing.T) {
		_, err := classifier.ParseScores([]byte(`[{"toxicity":0.1}]`))

		assert.ErrorIs(t, err, domain.ErrInvalidClassifierOutput)
	})

	t.Run("Invalid JSON", func(t *testing.T) {
		_, err := classifier.ParseScores([]byte(`invalid json`))

		assert.ErrorIs(t, err, domain.ErrInvalidClassifierOutput)
	})
}
