package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDraftDefaults(t *testing.T) {
	d := NewDraft()

	assert.Equal(t, "solo", d.GroupType)
	assert.Equal(t, 3, d.FitnessLevel)
	assert.Equal(t, "day_hikes", d.HikingExperience)
	assert.Equal(t, []string{NoneSentinel}, d.MedicalConditions)
	assert.Equal(t, []string{NoneSentinel}, d.DietaryRequirements)
	assert.True(t, d.Newsletter)
	assert.False(t, d.TermsAccepted)
	assert.Nil(t, d.Age)
}

func TestEnvelopeRoundTrip(t *testing.T) {
	d := NewDraft()
	d.FirstName = "Mehmet"
	d.Age = intPtr(34)
	d.Goals = []string{"adventure"}

	raw, err := encodeEnvelope(d, StepMotivation)
	require.NoError(t, err)

	env, err := decodeEnvelope(raw)
	require.NoError(t, err)
	assert.Equal(t, d, env.Draft)
	assert.Equal(t, StepMotivation, env.LastStep)
	assert.Equal(t, DraftVersion, env.Version)
}

func TestDecodeEnvelopeRejectsVersionMismatch(t *testing.T) {
	_, err := decodeEnvelope(`{"version":2,"draft":{},"lastStep":1}`)
	assert.ErrorContains(t, err, "version")
}

func TestDecodeEnvelopeRejectsGarbage(t *testing.T) {
	_, err := decodeEnvelope("{not json")
	assert.Error(t, err)
}
