package promptguard

import (
	"regexp"
)

// RiskLevel is the coarse classification of a user message.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// ValidationResult is the outcome of checking one message against one agent.
// Violations keep detection order. Slices are always non-nil.
type ValidationResult struct {
	RiskLevel   RiskLevel `json:"riskLevel"`
	Violations  []string  `json:"violations"`
	Suggestions []string  `json:"suggestions"`
}

type rule struct {
	pattern     *regexp.Regexp
	description string
	suggestion  string
	// critical rules escalate straight to RiskHigh.
	critical bool
}

// rules is the ordered injection/policy table. Order matters: violations are
// reported in scan order. Patterns cover English and Turkish phrasings.
var rules = []rule{
	{
		pattern:     regexp.MustCompile(`(?i)(ignore|disregard|forget)\s+(all\s+|any\s+)?(previous|prior|above|your)\s+(instructions|rules|prompts?)`),
		description: "instruction override attempt",
		suggestion:  "Ask your question directly without referencing the assistant's instructions.",
		critical:    true,
	},
	{
		pattern:     regexp.MustCompile(`(?i)(önceki|yukarıdaki|tüm)\s+talimatları\s+(yok\s*say|unut|görmezden\s+gel)`),
		description: "instruction override attempt (tr)",
		suggestion:  "Sorunuzu asistanın talimatlarına atıfta bulunmadan sorun.",
		critical:    true,
	},
	{
		pattern:     regexp.MustCompile(`(?i)(reveal|show|print|repeat|display|output)\s+(me\s+)?(your|the)\s+(system\s+)?(prompt|instructions)`),
		description: "system prompt extraction attempt",
		suggestion:  "The assistant's configuration is not shareable.",
		critical:    true,
	},
	{
		pattern:     regexp.MustCompile(`(?i)sistem\s+(istemini|promptunu|talimatını)\s+(göster|söyle|yaz)`),
		description: "system prompt extraction attempt (tr)",
		suggestion:  "Asistan yapılandırması paylaşılamaz.",
		critical:    true,
	},
	{
		pattern:     regexp.MustCompile(`(?i)(give|show|tell|reveal|leak|print)\s+(me\s+)?(your|the)\s+(api\s*key|secret|password|credentials?|token|environment\s+variables?)`),
		description: "credential exfiltration attempt",
		suggestion:  "Requests for secrets or credentials are not answered.",
		critical:    true,
	},
	{
		pattern:     regexp.MustCompile(`(?i)\b(jailbreak|dan\s+mode|developer\s+mode)\b`),
		description: "jailbreak keyword",
		suggestion:  "Rephrase the request without jailbreak framing.",
		critical:    true,
	},
	{
		pattern:     regexp.MustCompile(`(?i)(you\s+are\s+now|act\s+as|pretend\s+(to\s+be|you\s+are)|roleplay\s+as)\s`),
		description: "role override attempt",
		suggestion:  "The assistant keeps its configured persona; choose a different agent instead.",
	},
	{
		pattern:     regexp.MustCompile(`(?i)(artık\s+sen|şu\s+andan\s+itibaren\s+sen)\s.*(sın|sin)\b`),
		description: "role override attempt (tr)",
		suggestion:  "Asistan yapılandırılmış kimliğini korur; farklı bir uzman seçebilirsiniz.",
	},
	{
		pattern:     regexp.MustCompile(`(?im)^\s*(system|assistant)\s*:`),
		description: "conversation role spoofing",
		suggestion:  "Write your message as plain text without role markers.",
	},
	{
		pattern:     regexp.MustCompile(`(?i)\b(malware|ransomware|keylogger|virüs\s+yaz|zararlı\s+yazılım)\b`),
		description: "harmful software request",
		suggestion:  "Harmful software requests are refused.",
		critical:    true,
	},
}

// Validate scans userMessage against the rule table. Pure function: the
// caller is responsible for logging via Monitor. agentID and basePrompt are
// accepted for context (an unknown agentID does not fail validation).
func Validate(agentID string, basePrompt string, userMessage string) ValidationResult {
	res := ValidationResult{
		RiskLevel:   RiskLow,
		Violations:  []string{},
		Suggestions: []string{},
	}

	for _, r := range rules {
		if !r.pattern.MatchString(userMessage) {
			continue
		}
		res.Violations = append(res.Violations, r.description)
		res.Suggestions = append(res.Suggestions, r.suggestion)
		if r.critical {
			res.RiskLevel = RiskHigh
		} else if res.RiskLevel == RiskLow {
			res.RiskLevel = RiskMedium
		}
	}

	return res
}
