package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/sirupsen/logrus"

	"github.com/prevent-risk-mcp-server/internal/domain"
	"github.com/prevent-risk-mcp-server/pkg/prevent"
)

const (
	toolComputeRisk      = "compute_prevent_risk"
	toolComputeRiskBatch = "compute_prevent_risk_batch"
	toolInterpretRisk    = "interpret_risk"
	toolModelInfo        = "get_model_info"
	toolGetCalculation   = "get_risk_calculation"
	toolListCalculations = "list_risk_calculations"
)

// registerTools registers every tool with the MCP SDK.
func (s *Server) registerTools() {
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name: toolComputeRisk,
		Description: "Compute the AHA PREVENT 10- and 30-year risks of total CVD, ASCVD and heart failure " +
			"for one adult aged 30-79. Supplying uacr, hba1c or sdi selects the full model. Scores that " +
			"cannot be computed are null and the notes explain why.",
		InputSchema: patientSchema(),
	}, s.handleComputeRisk)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        toolComputeRiskBatch,
		Description: fmt.Sprintf("Compute PREVENT risks for up to %d patients. Each patient is computed independently.", s.config.BatchLimit),
		InputSchema: batchSchema(s.config.BatchLimit),
	}, s.handleComputeRiskBatch)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        toolInterpretRisk,
		Description: "Map a PREVENT percentage to its risk category for the given endpoint and horizon.",
		InputSchema: interpretSchema(),
	}, s.handleInterpretRisk)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        toolModelInfo,
		Description: "Describe the PREVENT equations, the accepted input ranges and the risk category bands.",
	}, s.handleModelInfo)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        toolGetCalculation,
		Description: "Fetch a previously computed risk result by its id. Requires calculation history to be enabled.",
		InputSchema: lookupSchema(),
	}, s.handleGetCalculation)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        toolListCalculations,
		Description: "List previously computed risk results, newest first. Requires calculation history to be enabled.",
		InputSchema: listSchema(),
	}, s.handleListCalculations)

	s.logger.WithField("tool_count", 6).Info("Successfully registered all tools")
}

// handleComputeRisk handles the compute_prevent_risk tool invocation
func (s *Server) handleComputeRisk(ctx context.Context, req *mcp.CallToolRequest, params domain.RiskRequest) (*mcp.CallToolResult, any, error) {
	s.logger.WithField("tool", toolComputeRisk).Info("Tool invoked")

	resp, err := s.calculator.Calculate(ctx, &params)
	if err != nil {
		return s.createErrorResult("risk calculation failed", err), nil, nil
	}

	return s.createJSONResult(summarize(resp), resp), nil, nil
}

// handleComputeRiskBatch handles the compute_prevent_risk_batch tool invocation
func (s *Server) handleComputeRiskBatch(ctx context.Context, req *mcp.CallToolRequest, params domain.BatchRequest) (*mcp.CallToolResult, any, error) {
	s.logger.WithFields(logrus.Fields{
		"tool":       toolComputeRiskBatch,
		"batch_size": len(params.Patients),
	}).Info("Tool invoked")

	resp, err := s.calculator.CalculateBatch(ctx, params.Patients)
	if err != nil {
		return s.createErrorResult("batch calculation failed", err), nil, nil
	}

	summary := fmt.Sprintf("Computed %d of %d patients (%d failed).", resp.Succeeded, len(resp.Items), resp.Failed)
	return s.createJSONResult(summary, resp), nil, nil
}

// handleInterpretRisk handles the interpret_risk tool invocation
func (s *Server) handleInterpretRisk(ctx context.Context, req *mcp.CallToolRequest, params domain.InterpretRequest) (*mcp.CallToolResult, any, error) {
	s.logger.WithField("tool", toolInterpretRisk).Info("Tool invoked")

	resp, err := s.calculator.Interpret(&params)
	if err != nil {
		return s.createErrorResult("interpretation failed", err), nil, nil
	}

	summary := fmt.Sprintf("%s %d-year: %s", strings.ToUpper(string(resp.Endpoint)), resp.Horizon, resp.Description)
	return s.createJSONResult(summary, resp), nil, nil
}

// handleModelInfo handles the get_model_info tool invocation
func (s *Server) handleModelInfo(ctx context.Context, req *mcp.CallToolRequest, _ any) (*mcp.CallToolResult, any, error) {
	s.logger.WithField("tool", toolModelInfo).Info("Tool invoked")

	info := s.calculator.ModelInfo()
	return s.createJSONResult(info.Reference, info), nil, nil
}

// handleGetCalculation handles the get_risk_calculation tool invocation
func (s *Server) handleGetCalculation(ctx context.Context, req *mcp.CallToolRequest, params domain.CalculationLookup) (*mcp.CallToolResult, any, error) {
	s.logger.WithFields(logrus.Fields{
		"tool": toolGetCalculation,
		"id":   params.ID,
	}).Info("Tool invoked")

	rec, err := s.calculator.GetCalculation(ctx, params.ID)
	if err != nil {
		return s.createErrorResult("lookup failed", err), nil, nil
	}

	summary := fmt.Sprintf("Calculation %s (%s model) from %s", rec.ID, rec.Model, rec.CalculatedAt.Format(time.RFC3339))
	return s.createJSONResult(summary, rec), nil, nil
}

// handleListCalculations handles the list_risk_calculations tool invocation
func (s *Server) handleListCalculations(ctx context.Context, req *mcp.CallToolRequest, params domain.CalculationListRequest) (*mcp.CallToolResult, any, error) {
	s.logger.WithField("tool", toolListCalculations).Info("Tool invoked")

	page, err := s.calculator.ListCalculations(ctx, params.Limit, params.Offset)
	if err != nil {
		return s.createErrorResult("listing failed", err), nil, nil
	}

	summary := fmt.Sprintf("Showing %d of %d calculations.", len(page.Records), page.Total)
	return s.createJSONResult(summary, page), nil, nil
}

// createJSONResult returns a one-line summary followed by the JSON body.
func (s *Server) createJSONResult(summary string, v any) *mcp.CallToolResult {
	body, err := json.Marshal(v)
	if err != nil {
		return s.createErrorResult("failed to encode result", err)
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: summary},
			&mcp.TextContent{Text: string(body)},
		},
		StructuredContent: json.RawMessage(body),
	}
}

// createErrorResult creates a standardized error result for tool calls
func (s *Server) createErrorResult(message string, err error) *mcp.CallToolResult {
	envelope := domain.ToMCPError(err, "")
	s.logger.WithFields(logrus.Fields{
		"code":  envelope.Code,
		"error": err.Error(),
	}).Warn("Tool call failed")

	errorText := fmt.Sprintf("Error: %s - %s: %s", message, envelope.Code, envelope.Message)
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: errorText},
		},
		IsError: true,
	}
}

// summarize renders the six scores on one line, e.g.
// "PREVENT base model: cvd_10yr 14.7% (intermediate), ..., hf_30yr N/A".
func summarize(resp *domain.RiskResponse) string {
	parts := make([]string, 0, len(resp.Scores))
	for _, sc := range resp.Scores {
		if sc.Display == nil {
			parts = append(parts, sc.Name+" N/A")
			continue
		}
		parts = append(parts, fmt.Sprintf("%s %.1f%% (%s)", sc.Name, *sc.Display, sc.Category))
	}
	return fmt.Sprintf("PREVENT %s model: %s", resp.Model, strings.Join(parts, ", "))
}

func patientSchema() *jsonschema.Schema {
	ranges := make(map[string]prevent.FieldRange)
	for _, r := range prevent.InputRanges() {
		ranges[r.Field] = r
	}

	describe := func(field, desc string) string {
		if r, ok := ranges[field]; ok {
			return fmt.Sprintf("%s in %s, valid range %s", desc, r.Unit, r.Range)
		}
		return desc
	}
	typed := func(typ, desc string, nullable bool) *jsonschema.Schema {
		if nullable {
			return &jsonschema.Schema{Types: []string{typ, "null"}, Description: desc}
		}
		return &jsonschema.Schema{Type: typ, Description: desc}
	}

	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"sex": {
				Type:        "string",
				Description: "Biological sex",
				Enum:        []any{"male", "female"},
			},
			"age":     typed("number", describe("age", "Age"), false),
			"sbp":     typed("number", describe("sbp", "Systolic blood pressure"), false),
			"dm":      typed("boolean", "Diabetes mellitus", false),
			"smoking": typed("boolean", "Current smoker", false),
			"egfr":    typed("number", describe("egfr", "Estimated glomerular filtration rate"), false),
			"bptreat": typed("boolean", "On antihypertensive treatment", false),
			"tc":      typed("number", describe("tc", "Total cholesterol"), true),
			"hdl":     typed("number", describe("hdl", "HDL cholesterol"), true),
			"statin":  typed("boolean", "On statin therapy", true),
			"bmi":     typed("number", describe("bmi", "Body mass index"), true),
			"uacr":    typed("number", describe("uacr", "Urine albumin-to-creatinine ratio"), true),
			"hba1c":   typed("number", describe("hba1c", "Hemoglobin A1c"), true),
			"sdi":     typed("integer", describe("sdi", "Social Deprivation Index"), true),
		},
		Required: []string{"sex", "age", "sbp", "dm", "smoking", "egfr", "bptreat"},
	}
}

func batchSchema(limit int) *jsonschema.Schema {
	minItems := 1
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"patients": {
				Type:        "array",
				Description: "Patient records in the compute_prevent_risk format",
				Items:       patientSchema(),
				MinItems:    &minItems,
				MaxItems:    &limit,
			},
		},
		Required: []string{"patients"},
	}
}

func interpretSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"endpoint": {
				Type:        "string",
				Description: "Outcome the score predicts",
				Enum:        []any{string(prevent.CVD), string(prevent.ASCVD), string(prevent.HF)},
			},
			"horizon_years": {
				Type:        "integer",
				Description: "Prediction horizon",
				Enum:        []any{int(prevent.TenYear), int(prevent.ThirtyYear)},
			},
			"percent": {
				Types:       []string{"number", "null"},
				Description: "Risk percentage between 0 and 100; null when the score was not computable",
			},
		},
		Required: []string{"endpoint", "horizon_years"},
	}
}

func lookupSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"id": {Type: "string", Description: "Calculation id returned by compute_prevent_risk"},
		},
		Required: []string{"id"},
	}
}

func listSchema() *jsonschema.Schema {
	minimum, maximum := 1.0, 100.0
	zero := 0.0
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"limit":  {Type: "integer", Description: "Page size (default 20)", Minimum: &minimum, Maximum: &maximum},
			"offset": {Type: "integer", Description: "Number of records to skip", Minimum: &zero},
		},
	}
}
