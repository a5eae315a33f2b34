package analysis

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckJSON(t *testing.T) {
	c := Check{
		ID:              uuid.MustParse("2b0f6f0e-8c52-4c8f-9a63-2f4f6d7c1a10"),
		JobTitle:        "SRE",
		FileName:        "cv.pdf",
		Score:           50,
		MissingKeywords: []string{"kafka"},
		CreatedAt:       time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC),
	}
	raw, err := json.Marshal(c)
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(raw, &fields))
	assert.Equal(t, "2b0f6f0e-8c52-4c8f-9a63-2f4f6d7c1a10", fields["id"])
	assert.Equal(t, fields["id"], fields["_id"])
	assert.Equal(t, "2026-10-17T12:00:00Z", fields["date"])
	assert.Equal(t, "SRE", fields["jobTitle"])

	var back Check
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.Equal(t, c, back)
}
