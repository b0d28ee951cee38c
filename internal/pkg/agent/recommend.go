package agent

import (
	"fmt"
	"strings"
)

// Recommendation points at a better-suited persona for the message at hand.
type Recommendation struct {
	ID string `json:"id"`
}

// minScore is how many specialty keywords another persona must hit before
// we redirect away from the user's chosen one.
const minScore = 2

// Recommend inspects the latest user message for specialty keywords strongly
// associated with a different persona. It returns nil when the current agent
// is already the best fit or no confident signal exists. Pure function.
func (r *Registry) Recommend(currentID string, message string) *Recommendation {
	if message == "" {
		return nil
	}
	text := strings.ToLower(message)

	current, _ := r.Get(currentID)
	currentScore := 0
	if current != nil {
		currentScore = keywordScore(text, current.Keywords)
	}

	bestID := ""
	bestScore := 0
	for _, id := range r.order {
		if id == currentID {
			continue
		}
		score := keywordScore(text, r.agents[id].Keywords)
		if score > bestScore {
			bestID = id
			bestScore = score
		}
	}

	if bestScore < minScore || bestScore <= currentScore {
		return nil
	}
	return &Recommendation{ID: bestID}
}

func keywordScore(text string, keywords []string) int {
	score := 0
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			score++
		}
	}
	return score
}

// RedirectMessage builds the user-facing redirect explanation. Deterministic
// given its inputs.
func (r *Registry) RedirectMessage(current *Agent, rec *Recommendation, message string) string {
	target, ok := r.Get(rec.ID)
	if !ok {
		return ""
	}

	currentName := "asistanımız"
	if current != nil {
		currentName = current.Name
	}

	return fmt.Sprintf(
		"Bu konu %s'in uzmanlık alanının dışında kalıyor. Sorunuz için size en iyi %s (%s) yardımcı olabilir. Sol menüden %s'i seçerek devam edebilirsiniz.",
		currentName, target.Name, target.Role, target.Name,
	)
}
