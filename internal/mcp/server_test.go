package mcp

import (
	"context"
	"encoding/json"
	"io"
	"path/filepath"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prevent-risk-mcp-server/internal/config"
	"github.com/prevent-risk-mcp-server/internal/domain"
	"github.com/prevent-risk-mcp-server/pkg/prevent"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	cfg := config.DefaultLiteConfig()
	cfg.BatchLimit = 3

	s, err := NewServer(cfg, WithLogger(logger))
	require.NoError(t, err)
	return s
}

func connect(t *testing.T, s *Server) *mcp.ClientSession {
	t.Helper()
	ctx := context.Background()

	clientTransport, serverTransport := mcp.NewInMemoryTransports()
	ss, err := s.Connect(ctx, serverTransport)
	require.NoError(t, err)

	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "v0.0.1"}, nil)
	cs, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)

	t.Cleanup(func() {
		cs.Close()
		ss.Wait()
	})
	return cs
}

func femaleDiabeticArgs() map[string]any {
	return map[string]any{
		"sex": "female", "age": 50, "sbp": 160, "dm": true, "smoking": false,
		"egfr": 90, "bptreat": true, "tc": 200, "hdl": 45, "statin": false, "bmi": 35,
	}
}

func textContent(t *testing.T, res *mcp.CallToolResult, i int) string {
	t.Helper()
	require.Greater(t, len(res.Content), i)
	tc, ok := res.Content[i].(*mcp.TextContent)
	require.True(t, ok)
	return tc.Text
}

func TestNewServer_WithNilCalculator(t *testing.T) {
	_, err := NewServer(config.DefaultLiteConfig(), WithCalculator(nil))
	assert.Error(t, err)
}

func TestNewServer_InvalidRedisURL(t *testing.T) {
	cfg := config.DefaultLiteConfig()
	cfg.RedisURL = "http://not-redis"

	_, err := NewServer(cfg)
	assert.ErrorContains(t, err, "shared cache")
}

func TestServer_CloseWithoutStores(t *testing.T) {
	s := newTestServer(t)
	assert.NoError(t, s.Close())
	assert.NoError(t, s.Close())
}

func TestStart_UnsupportedTransport(t *testing.T) {
	s := newTestServer(t)
	s.config.Transport = "http"

	err := s.Start(context.Background())
	assert.ErrorContains(t, err, "unsupported transport")
}

func TestListTools(t *testing.T) {
	cs := connect(t, newTestServer(t))

	res, err := cs.ListTools(context.Background(), nil)
	require.NoError(t, err)

	var names []string
	for _, tool := range res.Tools {
		names = append(names, tool.Name)
	}
	assert.ElementsMatch(t, []string{
		toolComputeRisk, toolComputeRiskBatch, toolInterpretRisk, toolModelInfo,
		toolGetCalculation, toolListCalculations,
	}, names)
}

func TestComputeRiskTool(t *testing.T) {
	cs := connect(t, newTestServer(t))

	res, err := cs.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      toolComputeRisk,
		Arguments: femaleDiabeticArgs(),
	})
	require.NoError(t, err)
	require.False(t, res.IsError, textContent(t, res, 0))

	summary := textContent(t, res, 0)
	assert.Contains(t, summary, "PREVENT base model")
	assert.Contains(t, summary, "cvd_10yr 14.7% (intermediate)")

	var resp domain.RiskResponse
	require.NoError(t, json.Unmarshal([]byte(textContent(t, res, 1)), &resp))
	require.NotNil(t, resp.Risk.ASCVD10)
	assert.InEpsilon(t, 9.195089753632866, *resp.Risk.ASCVD10, 1e-6)
}

func TestComputeRiskTool_FullModelAndNulls(t *testing.T) {
	cs := connect(t, newTestServer(t))

	args := femaleDiabeticArgs()
	args["age"] = 65
	args["bmi"] = nil
	args["uacr"] = 40

	res, err := cs.CallTool(context.Background(), &mcp.CallToolParams{Name: toolComputeRisk, Arguments: args})
	require.NoError(t, err)
	require.False(t, res.IsError)

	summary := textContent(t, res, 0)
	assert.Contains(t, summary, "PREVENT full model")
	assert.Contains(t, summary, "hf_10yr N/A")
	assert.Contains(t, summary, "cvd_30yr N/A")
}

func TestComputeRiskTool_MissingRequired(t *testing.T) {
	cs := connect(t, newTestServer(t))

	args := femaleDiabeticArgs()
	delete(args, "egfr")

	res, err := cs.CallTool(context.Background(), &mcp.CallToolParams{Name: toolComputeRisk, Arguments: args})
	if err == nil {
		assert.True(t, res.IsError)
	}
}

func TestComputeRiskBatchTool(t *testing.T) {
	cs := connect(t, newTestServer(t))

	res, err := cs.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      toolComputeRiskBatch,
		Arguments: map[string]any{"patients": []any{femaleDiabeticArgs(), femaleDiabeticArgs()}},
	})
	require.NoError(t, err)
	require.False(t, res.IsError)

	assert.Equal(t, "Computed 2 of 2 patients (0 failed).", textContent(t, res, 0))

	var resp domain.BatchResponse
	require.NoError(t, json.Unmarshal([]byte(textContent(t, res, 1)), &resp))
	require.Len(t, resp.Items, 2)
	assert.Equal(t, resp.Items[0].Result.Risk, resp.Items[1].Result.Risk)
}

func TestInterpretRiskTool(t *testing.T) {
	cs := connect(t, newTestServer(t))

	res, err := cs.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      toolInterpretRisk,
		Arguments: map[string]any{"endpoint": "hf", "horizon_years": 30, "percent": 23.4},
	})
	require.NoError(t, err)
	require.False(t, res.IsError)

	assert.Equal(t, "HF 30-year: Elevated risk", textContent(t, res, 0))
}

func TestModelInfoTool(t *testing.T) {
	cs := connect(t, newTestServer(t))

	res, err := cs.CallTool(context.Background(), &mcp.CallToolParams{Name: toolModelInfo})
	require.NoError(t, err)
	require.False(t, res.IsError)

	body := textContent(t, res, 1)
	assert.Contains(t, body, `"field":"egfr"`)
	assert.Contains(t, body, `"max":null`)
}

func TestHandleComputeRisk_ValidationErrorIsToolError(t *testing.T) {
	s := newTestServer(t)

	res, out, err := s.handleComputeRisk(context.Background(), nil, domain.RiskRequest{Sex: "male"})

	require.NoError(t, err)
	assert.Nil(t, out)
	assert.True(t, res.IsError)
	assert.Contains(t, textContent(t, res, 0), domain.ErrValidation)
}

func TestHandleComputeRiskBatch_TooLarge(t *testing.T) {
	s := newTestServer(t)

	res, _, err := s.handleComputeRiskBatch(context.Background(), nil, domain.BatchRequest{
		Patients: make([]domain.RiskRequest, 4),
	})

	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Contains(t, textContent(t, res, 0), domain.ErrBatchTooLarge)
}

func TestHandleInterpretRisk_InvalidHorizon(t *testing.T) {
	s := newTestServer(t)

	res, _, err := s.handleInterpretRisk(context.Background(), nil, domain.InterpretRequest{
		Endpoint: "cvd",
		Horizon:  20,
		Percent:  prevent.Float(5),
	})

	require.NoError(t, err)
	assert.True(t, res.IsError)
}

func TestSummarize(t *testing.T) {
	resp := &domain.RiskResponse{
		Model: prevent.FullModel,
		Scores: []domain.ScoreSummary{
			{Name: "cvd_10yr", Display: prevent.Float(3.2), Category: prevent.CategoryLow},
			{Name: "cvd_30yr"},
		},
	}

	assert.Equal(t, "PREVENT full model: cvd_10yr 3.2% (low), cvd_30yr N/A", summarize(resp))
}

func TestPatientSchema(t *testing.T) {
	schema := patientSchema()

	assert.Equal(t, "object", schema.Type)
	assert.Len(t, schema.Properties, 14)
	assert.Contains(t, schema.Required, "egfr")
	assert.NotContains(t, schema.Required, "bmi")
	assert.Contains(t, schema.Properties["bmi"].Types, "null")
	assert.Contains(t, schema.Properties["age"].Description, "[30, 79]")

	_, err := schema.Resolve(nil)
	assert.NoError(t, err)
}

func TestHistoryTools(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	cfg := config.DefaultLiteConfig()
	cfg.HistoryPath = filepath.Join(t.TempDir(), "history.db")

	s, err := NewServer(cfg, WithLogger(logger))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	cs := connect(t, s)
	ctx := context.Background()

	res, err := cs.CallTool(ctx, &mcp.CallToolParams{Name: toolComputeRisk, Arguments: femaleDiabeticArgs()})
	require.NoError(t, err)
	require.False(t, res.IsError, textContent(t, res, 0))

	var computed domain.RiskResponse
	require.NoError(t, json.Unmarshal([]byte(textContent(t, res, 1)), &computed))

	res, err = cs.CallTool(ctx, &mcp.CallToolParams{
		Name:      toolGetCalculation,
		Arguments: map[string]any{"id": computed.ID},
	})
	require.NoError(t, err)
	require.False(t, res.IsError, textContent(t, res, 0))
	assert.Contains(t, textContent(t, res, 0), computed.ID)

	var rec domain.CalculationRecord
	require.NoError(t, json.Unmarshal([]byte(textContent(t, res, 1)), &rec))
	require.NotNil(t, rec.Risk.CVD10)
	assert.InDelta(t, *computed.Risk.CVD10, *rec.Risk.CVD10, 1e-9)

	res, err = cs.CallTool(ctx, &mcp.CallToolParams{Name: toolListCalculations, Arguments: map[string]any{}})
	require.NoError(t, err)
	require.False(t, res.IsError)
	assert.Equal(t, "Showing 1 of 1 calculations.", textContent(t, res, 0))

	res, err = cs.CallTool(ctx, &mcp.CallToolParams{
		Name:      toolGetCalculation,
		Arguments: map[string]any{"id": "missing"},
	})
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Contains(t, textContent(t, res, 0), domain.ErrNotFound)
}

func TestHistoryTools_Disabled(t *testing.T) {
	s := newTestServer(t)

	res, _, err := s.handleListCalculations(context.Background(), nil, domain.CalculationListRequest{})
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Contains(t, textContent(t, res, 0), domain.ErrHistoryOff)

	res, _, err = s.handleGetCalculation(context.Background(), nil, domain.CalculationLookup{ID: "abc"})
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Contains(t, textContent(t, res, 0), domain.ErrHistoryOff)
}
