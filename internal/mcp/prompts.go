package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/prevent-risk-mcp-server/pkg/prevent"
)

const promptRiskAssessment = "prevent_risk_assessment"

// registerPrompts registers the guided risk assessment workflow.
func (s *Server) registerPrompts() {
	s.mcpServer.AddPrompt(&mcp.Prompt{
		Name:        promptRiskAssessment,
		Title:       "PREVENT Risk Assessment",
		Description: "Guide a cardiovascular risk assessment with the PREVENT equations, from collecting inputs to explaining the scores",
		Arguments: []*mcp.PromptArgument{
			{
				Name:        "patient_summary",
				Description: "Free-text description of the patient (age, sex, blood pressure, labs, medications)",
				Required:    true,
			},
			{
				Name:        "horizon",
				Description: "Horizon to emphasise: 10, 30 or both (default both)",
			},
		},
	}, s.handleRiskAssessmentPrompt)

	s.logger.WithField("prompt_count", 1).Info("Successfully registered all prompts")
}

func (s *Server) handleRiskAssessmentPrompt(ctx context.Context, req *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	args := req.Params.Arguments

	summary := strings.TrimSpace(args["patient_summary"])
	if summary == "" {
		return nil, fmt.Errorf("patient_summary is required")
	}

	horizon := strings.TrimSpace(args["horizon"])
	switch horizon {
	case "":
		horizon = "both"
	case "10", "30", "both":
	default:
		return nil, fmt.Errorf("horizon must be 10, 30 or both, got %q", horizon)
	}

	s.logger.WithField("prompt", promptRiskAssessment).Info("Prompt requested")

	return &mcp.GetPromptResult{
		Description: "PREVENT cardiovascular risk assessment",
		Messages: []*mcp.PromptMessage{
			{
				Role:    "user",
				Content: &mcp.TextContent{Text: buildAssessmentText(summary, horizon)},
			},
		},
	}, nil
}

func buildAssessmentText(summary, horizon string) string {
	var b strings.Builder

	b.WriteString("Assess this patient's cardiovascular risk with the AHA PREVENT equations.\n\n")
	fmt.Fprintf(&b, "Patient: %s\n\n", summary)

	b.WriteString("Steps:\n")
	fmt.Fprintf(&b, "1. Extract the inputs for %s. Required: sex, age, sbp, dm, smoking, egfr, bptreat. ", toolComputeRisk)
	b.WriteString("Add tc, hdl and statin for CVD and ASCVD, bmi for heart failure, and uacr, hba1c or sdi when known.\n")
	b.WriteString("2. Check the inputs against these ranges and do not guess missing values:\n")
	for _, r := range prevent.InputRanges() {
		fmt.Fprintf(&b, "   - %s (%s): %s\n", r.Field, r.Unit, r.Range)
	}
	fmt.Fprintf(&b, "3. Call %s and report which model was used.\n", toolComputeRisk)

	switch horizon {
	case "10":
		b.WriteString("4. Focus on the 10-year scores.\n")
	case "30":
		fmt.Fprintf(&b, "4. Focus on the 30-year scores. They are only produced up to age %d.\n", prevent.MaxThirtyYearAge)
	default:
		b.WriteString("4. Report both the 10-year and the 30-year scores.\n")
	}

	b.WriteString("5. Explain every null score using the notes in the response.\n")
	return b.String()
}
