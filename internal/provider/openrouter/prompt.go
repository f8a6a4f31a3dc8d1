package openrouter

import "fmt"

// analysisPrompt instructs the model to answer with a bare JSON object in the
// AISummary shape. This is a best-effort contract with an external model, not
// a guaranteed schema; the parser tolerates deviations.
func analysisPrompt(subject, newsContent string) string {
	return fmt.Sprintf(`You are a financial analyst specializing in stock market analysis. Analyze the following news articles about %[1]s and predict if there's any signal of the stock moving up or down.

IMPORTANT: ONLY analyze information directly related to %[1]s. Do NOT include analysis of other companies or general market trends unless they specifically impact %[1]s.

Respond with ONLY a JSON object in this exact format:
{
  "summary": "A concise 1-2 sentence summary of the key insights specifically about %[1]s",
  "signalType": "The type of signal (e.g. merger, earnings, product launch) for %[1]s",
  "impact": "Up, Down, or Neutral",
  "buyAnalysis": "A brief analysis of whether this is a good time to buy %[1]s and why",
  "sellAnalysis": "A brief analysis of whether this is a good time to sell %[1]s and why",
  "factCheck": {
    "verifiedClaims": ["List of 2-3 key claims about %[1]s that appear factual"],
    "uncertainClaims": ["List of 1-2 claims about %[1]s that may need verification"]
  },
  "relevanceScore": 95
}

Here are the news articles about %[1]s:

%[2]s`, subject, newsContent)
}

// simplifiedPrompt is the fallback re-ask: plain prose, no JSON contract.
func simplifiedPrompt(newsContent string) string {
	return fmt.Sprintf(`Summarize these articles in 2-3 sentences, using only the given information:

%s`, newsContent)
}
