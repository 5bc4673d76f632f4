package service

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prevent-risk-mcp-server/internal/domain"
	"github.com/prevent-risk-mcp-server/pkg/prevent"
)

func newTestService(t *testing.T, config RiskServiceConfig) *RiskService {
	t.Helper()
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	s, err := NewRiskService(logger, config)
	require.NoError(t, err)
	return s
}

func TestRiskService_Calculate(t *testing.T) {
	s := newTestService(t, RiskServiceConfig{CacheMaxItems: 16})

	resp, err := s.Calculate(context.Background(), femaleDiabeticRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, prevent.BaseModel, resp.Model)
	assert.False(t, resp.Cached)
	assert.Empty(t, resp.Notes)
	require.Len(t, resp.Scores, 6)

	cvd10 := resp.Scores[0]
	assert.Equal(t, "cvd_10yr", cvd10.Name)
	assert.InEpsilon(t, 14.68393721648116, *cvd10.Percent, 1e-6)
	assert.Equal(t, 14.7, *cvd10.Display)
	assert.Equal(t, prevent.CategoryIntermediate, cvd10.Category)
	assert.Equal(t, "Intermediate risk", cvd10.Description)

	cvd30 := resp.Scores[1]
	assert.Equal(t, "cvd_30yr", cvd30.Name)
	assert.Equal(t, prevent.CategoryHigh, cvd30.Category)

	assert.InEpsilon(t, 23.424660075138963, *resp.Risk.HF30, 1e-6)
}

func TestRiskService_CalculateCaches(t *testing.T) {
	s := newTestService(t, RiskServiceConfig{CacheMaxItems: 16})
	ctx := context.Background()

	first, err := s.Calculate(ctx, femaleDiabeticRequest())
	require.NoError(t, err)
	second, err := s.Calculate(ctx, femaleDiabeticRequest())
	require.NoError(t, err)

	assert.False(t, first.Cached)
	assert.True(t, second.Cached)
	assert.Equal(t, first.Risk, second.Risk)
	assert.NotEqual(t, first.ID, second.ID)

	stats := s.GetCacheStats()
	assert.Equal(t, int64(1), stats.Hits)
	assert.Equal(t, int64(1), stats.Misses)
	assert.Equal(t, 1, stats.Entries)

	// Any changed predictor is a different entry.
	req := femaleDiabeticRequest()
	req.SDI = prevent.Int(7)
	third, err := s.Calculate(ctx, req)
	require.NoError(t, err)
	assert.False(t, third.Cached)
	assert.Equal(t, prevent.FullModel, third.Model)
}

func TestRiskService_CacheDisabled(t *testing.T) {
	s := newTestService(t, RiskServiceConfig{})

	for i := 0; i < 2; i++ {
		resp, err := s.Calculate(context.Background(), femaleDiabeticRequest())
		require.NoError(t, err)
		assert.False(t, resp.Cached)
	}
	assert.Equal(t, CacheStats{}, s.GetCacheStats())
}

func TestRiskService_CalculateNotes(t *testing.T) {
	s := newTestService(t, RiskServiceConfig{})

	req := femaleDiabeticRequest()
	req.Age = prevent.Float(65)
	req.BMI = nil

	resp, err := s.Calculate(context.Background(), req)
	require.NoError(t, err)

	var fields []string
	for _, n := range resp.Notes {
		fields = append(fields, n.Field)
	}
	assert.Equal(t, []string{"bmi", "age"}, fields)

	byName := map[string]domain.ScoreSummary{}
	for _, sc := range resp.Scores {
		byName[sc.Name] = sc
	}
	assert.Equal(t, prevent.CategoryNotComputable, byName["hf_10yr"].Category)
	assert.Nil(t, byName["hf_10yr"].Display)
	assert.Equal(t, prevent.CategoryNotComputable, byName["cvd_30yr"].Category)
	assert.NotNil(t, byName["cvd_10yr"].Percent)
}

func TestRiskService_CalculateUnknownSexIsNotAnError(t *testing.T) {
	s := newTestService(t, RiskServiceConfig{})

	req := femaleDiabeticRequest()
	req.Sex = "unknown"

	resp, err := s.Calculate(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, 0, resp.Risk.Computed())
	require.NotEmpty(t, resp.Notes)
	assert.Equal(t, "sex", resp.Notes[0].Field)
}

func TestRiskService_CalculateValidationError(t *testing.T) {
	s := newTestService(t, RiskServiceConfig{})

	req := femaleDiabeticRequest()
	req.EGFR = nil

	_, err := s.Calculate(context.Background(), req)

	var validationErr *domain.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "egfr", validationErr.Field)
}

func TestRiskService_CalculateCancelledContext(t *testing.T) {
	s := newTestService(t, RiskServiceConfig{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Calculate(ctx, femaleDiabeticRequest())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRiskService_CalculateBatch(t *testing.T) {
	s := newTestService(t, RiskServiceConfig{CacheMaxItems: 8, MaxConcurrency: 2})

	bad := femaleDiabeticRequest()
	bad.Age = nil
	older := femaleDiabeticRequest()
	older.Age = prevent.Float(70)

	reqs := []domain.RiskRequest{*femaleDiabeticRequest(), *bad, *older}

	resp, err := s.CalculateBatch(context.Background(), reqs)
	require.NoError(t, err)

	require.Len(t, resp.Items, 3)
	assert.Equal(t, 2, resp.Succeeded)
	assert.Equal(t, 1, resp.Failed)

	for i, item := range resp.Items {
		assert.Equal(t, i, item.Index)
	}
	require.NotNil(t, resp.Items[0].Result)
	assert.InEpsilon(t, 14.68393721648116, *resp.Items[0].Result.Risk.CVD10, 1e-6)

	require.NotNil(t, resp.Items[1].Error)
	assert.Equal(t, domain.ErrValidation, resp.Items[1].Error.Code)
	assert.Nil(t, resp.Items[1].Result)

	require.NotNil(t, resp.Items[2].Result)
	assert.Nil(t, resp.Items[2].Result.Risk.CVD30)
}

func TestRiskService_CalculateBatchLimits(t *testing.T) {
	s := newTestService(t, RiskServiceConfig{BatchLimit: 2})

	_, err := s.CalculateBatch(context.Background(), nil)
	assert.Equal(t, domain.ErrValidation, domain.ErrorCode(err))

	reqs := make([]domain.RiskRequest, 3)
	_, err = s.CalculateBatch(context.Background(), reqs)
	assert.Equal(t, domain.ErrBatchTooLarge, domain.ErrorCode(err))
}

func TestRiskService_Interpret(t *testing.T) {
	s := newTestService(t, RiskServiceConfig{})

	tests := []struct {
		name    string
		req     *domain.InterpretRequest
		want    prevent.Category
		wantErr string
	}{
		{"ten year high", &domain.InterpretRequest{Endpoint: "CVD", Horizon: 10, Percent: prevent.Float(21)}, prevent.CategoryHigh, ""},
		{"thirty year elevated", &domain.InterpretRequest{Endpoint: "hf", Horizon: 30, Percent: prevent.Float(12)}, prevent.CategoryElevated, ""},
		{"null percent", &domain.InterpretRequest{Endpoint: "ascvd", Horizon: 10}, prevent.CategoryNotComputable, ""},
		{"bad endpoint", &domain.InterpretRequest{Endpoint: "stroke", Horizon: 10, Percent: prevent.Float(1)}, "", "endpoint"},
		{"bad horizon", &domain.InterpretRequest{Endpoint: "cvd", Horizon: 5, Percent: prevent.Float(1)}, "", "horizon_years"},
		{"percent above 100", &domain.InterpretRequest{Endpoint: "cvd", Horizon: 10, Percent: prevent.Float(101)}, "", "percent"},
		{"nil request", nil, "", "request"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := s.Interpret(tt.req)
			if tt.wantErr != "" {
				var validationErr *domain.ValidationError
				require.True(t, errors.As(err, &validationErr))
				assert.Equal(t, tt.wantErr, validationErr.Field)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.Category)
			assert.Equal(t, tt.want.Description(), resp.Description)
			assert.NotEmpty(t, resp.Bands)
		})
	}
}

func TestRiskService_ModelInfo(t *testing.T) {
	s := newTestService(t, RiskServiceConfig{})

	info := s.ModelInfo()

	assert.Equal(t, "AHA PREVENT", info.Name)
	assert.Contains(t, info.Reference, "Circulation")
	assert.Len(t, info.Models, 2)
	assert.Len(t, info.Endpoints, 3)
	assert.Len(t, info.Inputs, 9)
	assert.Equal(t, float64(prevent.MaxThirtyYearAge), info.MaxThirtyYearAge)
}

func TestCacheKey(t *testing.T) {
	in, err := ToPatientInputs(femaleDiabeticRequest())
	require.NoError(t, err)

	base := cacheKey(in)
	assert.Equal(t, base, cacheKey(in))

	withZeroUACR := in
	withZeroUACR.UACR = prevent.Float(0)
	assert.NotEqual(t, base, cacheKey(withZeroUACR))

	noStatin := in
	noStatin.Statin = nil
	assert.NotEqual(t, base, cacheKey(noStatin))
}
