package insights

import (
	"context"
	"fmt"
	"os"
	"strings"

	"cloud.google.com/go/vertexai/genai"
)

const narrativePromptTemplate = `You are a fantasy football draft analyst.
Write a short executive summary (4-6 sentences) of this draft analysis.
Be concrete: name the top must-start and top sleeper, and call out the
biggest bust risk. Do not invent players or numbers.

Players analyzed: %d
Roster corrections: %d
ADP updates: %d
Must-starts: %s
Sleepers: %s
Busts: %s`

// Narrative generates the executive-summary prose for a report. With no
// GOOGLE_CLOUD_PROJECT configured it falls back to a simulated narrative so
// the run still completes, matching the rest of the pipeline's best-effort
// behavior.
func Narrative(ctx context.Context, report *Report) (string, error) {
	projectID := os.Getenv("GOOGLE_CLOUD_PROJECT")
	if projectID == "" {
		return simulatedNarrative(report), nil
	}

	client, err := genai.NewClient(ctx, projectID, "us-central1")
	if err != nil {
		return "", fmt.Errorf("create Gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel("gemini-2.0-flash")
	model.SetTemperature(0.2)

	prompt := fmt.Sprintf(narrativePromptTemplate,
		report.Metadata.PlayersAnalyzed,
		report.Metadata.RosterCorrections,
		report.Metadata.ADPUpdates,
		entryNames(report.MustStarts, 5),
		entryNames(report.Sleepers, 5),
		entryNames(report.Busts, 5),
	)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("Gemini API error: %w", err)
	}

	text := extractText(resp)
	if text == "" {
		return "", fmt.Errorf("empty response from Gemini")
	}
	return text, nil
}

func entryNames(entries []CategoryEntry, limit int) string {
	if len(entries) == 0 {
		return "none"
	}
	if len(entries) > limit {
		entries = entries[:limit]
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, fmt.Sprintf("%s (%s, %s, score %.1f)", e.Name, e.Position, e.Team, e.Score))
	}
	return strings.Join(names, "; ")
}

func extractText(resp *genai.GenerateContentResponse) string {
	var sb strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				sb.WriteString(string(text))
			}
		}
	}
	return strings.TrimSpace(sb.String())
}

func simulatedNarrative(report *Report) string {
	top := "no clear must-start"
	if report.ExecutiveSummary.TopRecommendation != nil {
		t := report.ExecutiveSummary.TopRecommendation
		top = fmt.Sprintf("%s (%s, %s) leads the board at %.1f", t.Name, t.Position, t.Team, t.Score)
	}
	sleeper := "no sleeper stands out"
	if report.ExecutiveSummary.TopSleeper != nil {
		t := report.ExecutiveSummary.TopSleeper
		sleeper = fmt.Sprintf("%s (%s) is the top sleeper", t.Name, t.Position)
	}
	return fmt.Sprintf(
		"Analyzed %d players: %s, %s, and %d potential busts were flagged. (simulated narrative - no AI project configured)",
		report.Metadata.PlayersAnalyzed, top, sleeper, len(report.Busts))
}
