package usecase

import (
	"StockSignal/internal/domain/models"
	"StockSignal/pkg/util"
)

// FilterRelevant keeps articles that textually mention the subject: at least
// one lower-cased subject token must appear as a substring of the title or
// description. The news provider's own relevance ranking is unreliable for
// short subjects, so this second stricter gate runs before any AI spend.
// Pure, deterministic, order-preserving, idempotent.
func FilterRelevant(articles []models.NewsArticle, subject string) []models.NewsArticle {
	tokens := util.Tokenize(subject)
	if len(tokens) == 0 {
		return nil
	}

	kept := make([]models.NewsArticle, 0, len(articles))
	for _, a := range articles {
		for _, tok := range tokens {
			if util.ContainsFold(a.Title, tok) || util.ContainsFold(a.Description, tok) {
				kept = append(kept, a)
				break
			}
		}
	}
	return kept
}
