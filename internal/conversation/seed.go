package conversation

import "time"

// Seed returns the demo call history relative to now. The oldest call has no
// analysis so the empty state is visible.
func Seed(now time.Time) []Conversation {
	onboarding := New("Onboarding call with Acme", now.Add(-30*time.Minute))
	onboarding.Transcript = []Entry{
		{Speaker: "Agent", Text: "Thanks for joining. Can you walk me through your current setup?", At: 4 * time.Second},
		{Speaker: "Customer", Text: "We run three regions and the failover is mostly manual right now.", At: 11 * time.Second},
		{Speaker: "Agent", Text: "Understood. How often do you exercise the failover?", At: 19 * time.Second},
		{Speaker: "Customer", Text: "Honestly, not since last spring. That's part of why we're talking.", At: 26 * time.Second},
	}
	onboarding.Analysis = []Entry{
		{Speaker: "Sentiment", Text: "Customer is candid and engaged.", Severity: SeverityInfo, At: 12 * time.Second},
		{Speaker: "Risk", Text: "Failover untested for months; raise a DR review.", Severity: SeverityWarning, At: 27 * time.Second},
		{Speaker: "Next step", Text: "Offer a guided failover drill.", Severity: SeverityInfo, At: 28 * time.Second},
	}
	onboarding.Chat = []Entry{
		{Speaker: "Assistant", Text: "Ask which regions carry production traffic."},
	}

	renewal := New("Renewal: Globex", now.Add(-26*time.Hour))
	renewal.Transcript = []Entry{
		{Speaker: "Customer", Text: "Pricing went up eighteen percent and nobody told us.", At: 3 * time.Second},
		{Speaker: "Agent", Text: "I'm sorry about that. Let me pull up the contract history.", At: 9 * time.Second},
	}
	renewal.Analysis = []Entry{
		{Speaker: "Churn", Text: "Customer threatened to evaluate competitors.", Severity: SeverityCritical, At: 4 * time.Second},
	}

	intro := New("Intro: Initech", now.Add(-72*time.Hour))
	intro.Transcript = []Entry{
		{Speaker: "Agent", Text: "Hi, this is a quick intro call.", At: 2 * time.Second},
	}

	return []Conversation{onboarding, renewal, intro}
}
