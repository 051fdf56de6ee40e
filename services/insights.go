package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"github.com/rs/zerolog"
	"google.golang.org/api/option"

	"sklyit/models"
)

// InsightsService turns the monthly analytics series into an AI-written
// business summary using the Gemini API.
type InsightsService struct {
	analytics *AnalyticsService
	apiKey    string
	log       zerolog.Logger
}

func NewInsightsService(analytics *AnalyticsService, apiKey string, log zerolog.Logger) *InsightsService {
	return &InsightsService{analytics: analytics, apiKey: apiKey, log: log}
}

// BusinessInsights fetches the monthly customer series and the new/old
// revenue split, asks Gemini for commentary, and returns the parsed result.
func (s *InsightsService) BusinessInsights(ctx context.Context, businessID string) (*models.BusinessInsights, error) {
	if businessID == "" {
		return nil, models.MissingField("business id")
	}
	if s.apiKey == "" {
		return nil, models.Upstream("AI insights are not configured", nil)
	}

	monthly, err := s.analytics.MonthlyCustomerCounts(ctx, businessID)
	if err != nil {
		return nil, err
	}
	split, err := s.analytics.NewOldCustomerRevenue(ctx, businessID)
	if err != nil {
		return nil, err
	}

	prompt := constructInsightsPrompt(monthly, split)

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		s.log.Error().Err(err).Msg("error creating Gemini client")
		return nil, models.Upstream("failed to connect to AI service", err)
	}
	defer client.Close()

	model := client.GenerativeModel("gemini-2.5-flash-lite")
	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		s.log.Error().Err(err).Msg("error from Gemini API")
		return nil, models.Upstream("failed to generate insights", err)
	}

	return parseInsightsResponse(resp)
}

func constructInsightsPrompt(monthly []models.MonthlyCustomers, split models.CustomerTypeRevenue) string {
	series := ""
	for _, m := range monthly {
		series += fmt.Sprintf("In %s, %d distinct customers placed orders.\n",
			m.MonthStart.Format("2006-01"), m.CustomerCount)
	}
	if series == "" {
		series = "No order history is available yet.\n"
	}

	jsonFormat := `{"summary":"string","positive_factors":["string",...],"negative_factors":["string",...]}`

	return fmt.Sprintf(`
        You are an expert retail data analyst. Summarize the health of this business
        and name its main positive and negative factors.

        **Monthly customer counts:**
        %s
        **Revenue split:** new customers %.2f (%.2f%%), returning customers %.2f (%.2f%%).
        Today's date: %s

        **Required Output:**
        You must provide a single, minified JSON object with the following exact structure.
        Do not include any markdown formatting, backticks, or explanatory text before or
        after the JSON object.

        %s
    `, series, split.NewCustomerRevenue, split.NewCustomerRevenuePercentage,
		split.OldCustomerRevenue, split.OldCustomerRevenuePercentage,
		time.Now().Format("2006-01-02"), jsonFormat)
}

func extractJSON(raw string) string {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end == -1 || end < start {
		return ""
	}
	return raw[start : end+1]
}

func parseInsightsResponse(resp *genai.GenerateContentResponse) (*models.BusinessInsights, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, models.Upstream("no content received from AI", nil)
	}

	var text string
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			text += string(txt)
		}
	}

	jsonStr := extractJSON(text)
	if jsonStr == "" {
		return nil, models.Upstream("failed to parse AI response format", nil)
	}

	var parsed struct {
		Summary         string   `json:"summary"`
		PositiveFactors []string `json:"positive_factors"`
		NegativeFactors []string `json:"negative_factors"`
	}
	if err := json.Unmarshal([]byte(jsonStr), &parsed); err != nil {
		return nil, models.Upstream("failed to parse AI insights data", err)
	}

	return &models.BusinessInsights{
		GeneratedAt:     time.Now(),
		Summary:         parsed.Summary,
		PositiveFactors: parsed.PositiveFactors,
		NegativeFactors: parsed.NegativeFactors,
	}, nil
}
