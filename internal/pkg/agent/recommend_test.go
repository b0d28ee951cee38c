package agent_test

import (
	"strings"
	"testing"

	"mysonai/internal/pkg/agent"
)

func TestRecommendRedirectsToSpecialist(t *testing.T) {
	r := agent.DefaultRegistry()

	rec := r.Recommend("elif", "Bana bir web sitesi kodu yaz")
	if rec == nil || rec.ID != "ayse" {
		t.Fatalf("expected redirect to ayse, got %+v", rec)
	}
}

func TestRecommendNeedsConfidentSignal(t *testing.T) {
	r := agent.DefaultRegistry()

	// a single keyword hit is not enough to redirect
	if rec := r.Recommend("fevzi", "Kod hakkında genel bir sorum var"); rec != nil {
		t.Fatalf("expected no redirect on a weak signal, got %+v", rec)
	}
}

func TestRecommendKeepsCurrentSpecialist(t *testing.T) {
	r := agent.DefaultRegistry()

	if rec := r.Recommend("ayse", "Bana bir web sitesi kodu yaz"); rec != nil {
		t.Fatalf("expected no redirect away from the best fit, got %+v", rec)
	}
}

func TestRecommendEmptyMessage(t *testing.T) {
	r := agent.DefaultRegistry()

	if rec := r.Recommend("fevzi", ""); rec != nil {
		t.Fatalf("expected nil for empty message, got %+v", rec)
	}
}

func TestRecommendLegalQuestions(t *testing.T) {
	r := agent.DefaultRegistry()

	rec := r.Recommend("fevzi", "KVKK kapsamında bir sözleşme hazırlamam gerekiyor")
	if rec == nil || rec.ID != "tacettin" {
		t.Fatalf("expected redirect to tacettin, got %+v", rec)
	}
}

func TestRedirectMessageNamesTarget(t *testing.T) {
	r := agent.DefaultRegistry()

	current, _ := r.Get("elif")
	msg := r.RedirectMessage(current, &agent.Recommendation{ID: "ayse"}, "web sitesi kodu")

	if !strings.Contains(msg, "Ayşe") || !strings.Contains(msg, "Elif") {
		t.Fatalf("redirect message must name both personas: %q", msg)
	}
}

func TestRegistryListStableOrder(t *testing.T) {
	r := agent.DefaultRegistry()

	agents := r.List()
	if len(agents) != 8 {
		t.Fatalf("expected 8 personas, got %d", len(agents))
	}
	for i := 1; i < len(agents); i++ {
		if agents[i-1].ID >= agents[i].ID {
			t.Fatalf("list must be sorted by id: %s before %s", agents[i-1].ID, agents[i].ID)
		}
	}
}

func TestRegistryGetUnknown(t *testing.T) {
	r := agent.DefaultRegistry()

	if _, ok := r.Get("kimse"); ok {
		t.Fatal("unknown id must report ok=false")
	}
}
