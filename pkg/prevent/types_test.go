package prevent

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnumValidity(t *testing.T) {
	assert.True(t, Male.IsValid())
	assert.True(t, Female.IsValid())
	assert.False(t, Sex("M").IsValid())
	assert.False(t, Sex("").IsValid())

	assert.True(t, HF.IsValid())
	assert.False(t, Endpoint("stroke").IsValid())

	assert.True(t, ThirtyYear.IsValid())
	assert.False(t, Horizon(5).IsValid())
}

func TestRiskResult_ScoreRoundTrip(t *testing.T) {
	var r RiskResult
	v := 1.0
	for _, e := range Endpoints {
		for _, h := range Horizons {
			pct := v
			r.setScore(e, h, &pct)
			v++
		}
	}

	assert.Equal(t, 6, r.Computed())
	assert.Equal(t, 1.0, *r.CVD10)
	assert.Equal(t, 2.0, *r.CVD30)
	assert.Equal(t, 6.0, *r.HF30)
	assert.Nil(t, r.Score("stroke", TenYear))
}

func TestRiskResult_JSONNames(t *testing.T) {
	r := RiskResult{ASCVD30: Float(12.5), Model: FullModel}

	b, err := json.Marshal(r)
	require.NoError(t, err)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(b, &got))
	assert.Equal(t, 12.5, got["ascvd_30yr"])
	assert.Nil(t, got["cvd_10yr"])
	assert.Contains(t, got, "hf_30yr")
	assert.Equal(t, "full", got["model"])

	assert.Equal(t, "ascvd_30yr", ScoreName(ASCVD, ThirtyYear))
	assert.Equal(t, "hf_10yr", ScoreName(HF, TenYear))
}
