package advisor

import "math/rand"

// tips are the built-in financial tips, shown one at a time.
var tips = []string{
	"Follow the 50/30/20 rule: 50% needs, 30% wants, 20% savings",
	"Build an emergency fund covering 3-6 months of expenses",
	"Track every expense to understand your spending patterns",
	"Review and adjust your budget monthly based on actual spending",
	"Automate your savings by setting up automatic transfers",
	"Pay yourself first - save before spending on non-essentials",
	"Avoid impulse purchases by waiting 24 hours before buying",
	"Use cash for discretionary spending to limit overspending",
	"Compare prices and look for deals before major purchases",
	"Reduce subscription services you don't actively use",
	"Cook at home more often to save on food expenses",
	"Set specific, measurable financial goals with deadlines",
	"Review your financial health score monthly",
	"Celebrate small wins to stay motivated on your financial journey",
	"Consider the opportunity cost of every purchase",
	"Invest in yourself through education and skill development",
	"Don't let lifestyle inflation eat your income increases",
	"Build multiple income streams for financial security",
	"Start investing early to benefit from compound interest",
	"Keep debt under control - pay off high-interest debt first",
}

// TipSource picks tips using an injected pseudo-random source so callers
// (and tests) can seed it for deterministic output.
type TipSource struct {
	rng *rand.Rand
}

// NewTipSource creates a tip source backed by the given PRNG.
func NewTipSource(rng *rand.Rand) *TipSource {
	return &TipSource{rng: rng}
}

// Pick returns one tip at random.
func (s *TipSource) Pick() string {
	return tips[s.rng.Intn(len(tips))]
}

// All returns every tip in fixed order.
func (s *TipSource) All() []string {
	out := make([]string, len(tips))
	copy(out, tips)
	return out
}
