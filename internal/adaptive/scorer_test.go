package adaptive

import "testing"

func TestScoreRubric(t *testing.T) {
	scorer := NewScorer(nil) // Use default rubric

	testCases := []struct {
		name          string
		income        float64
		savings       float64
		risk          RiskProfile
		expectedScore int
	}{
		{"20% savings rate moderate", 3000, 600, RiskModerate, 90}, // 50+30+10
		{"low savings rate aggressive", 3000, 200, RiskAggressive, 50},
		{"zero income conservative", 0, 500, RiskConservative, 55},
		{"10% savings rate moderate", 3000, 300, RiskModerate, 75}, // 50+15+10
		{"10% savings rate conservative", 1000, 100, RiskConservative, 70},
		{"just under 10% rate", 1000, 99, RiskAggressive, 50},
		{"savings exceed income", 1000, 5000, RiskModerate, 90}, // rate 500%, still high-rate bonus
		{"zero income zero savings", 0, 0, RiskModerate, 60},
		{"unknown risk profile no bonus", 3000, 600, RiskProfile("yolo"), 80},
		{"empty risk profile no bonus", 3000, 600, RiskProfile(""), 80},
		{"negative income treated as zero", -500, 200, RiskConservative, 55},
		{"negative savings treated as zero", 3000, -200, RiskModerate, 60},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			score := scorer.Score(tc.income, tc.savings, tc.risk)
			if score != tc.expectedScore {
				t.Errorf("Score(%v, %v, %q) = %d, want %d",
					tc.income, tc.savings, tc.risk, score, tc.expectedScore)
			}
		})
	}
}

func TestScoreBounds(t *testing.T) {
	scorer := NewScorer(nil)

	incomes := []float64{0, 1, 100, 999, 1000, 3000, 1e9}
	savings := []float64{0, 1, 99, 100, 500, 3000, 1e12}
	risks := []RiskProfile{RiskConservative, RiskModerate, RiskAggressive, RiskProfile("bogus")}

	for _, income := range incomes {
		for _, saving := range savings {
			for _, risk := range risks {
				score := scorer.Score(income, saving, risk)
				if score < 0 || score > 100 {
					t.Fatalf("Score(%v, %v, %q) = %d outside [0, 100]", income, saving, risk, score)
				}
			}
		}
	}
}

func TestScoreClampAtMax(t *testing.T) {
	// An inflated rubric must still clamp at MaxScore.
	config := DefaultScoringConfig()
	config.HighSavingsBonus = 60
	scorer := NewScorer(config)

	score := scorer.Score(1000, 500, RiskModerate) // 50+60+10 = 120 pre-clamp
	if score != 100 {
		t.Errorf("Expected clamped score 100, got %d", score)
	}
}

func TestScoreDeterministic(t *testing.T) {
	scorer := NewScorer(nil)

	first := scorer.Score(2500, 400, RiskConservative)
	for i := 0; i < 10; i++ {
		if got := scorer.Score(2500, 400, RiskConservative); got != first {
			t.Fatalf("Scoring not deterministic: got %d then %d", first, got)
		}
	}
}

func TestSavingsRate(t *testing.T) {
	scorer := NewScorer(nil)

	testCases := []struct {
		name     string
		income   float64
		savings  float64
		expected float64
	}{
		{"normal rate", 3000, 600, 20},
		{"zero income", 0, 500, 0},
		{"savings above income", 1000, 2000, 200},
		{"negative savings", 1000, -50, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rate := scorer.SavingsRate(tc.income, tc.savings)
			if rate != tc.expected {
				t.Errorf("SavingsRate(%v, %v) = %v, want %v", tc.income, tc.savings, rate, tc.expected)
			}
		})
	}
}

func TestParseAmount(t *testing.T) {
	testCases := []struct {
		name     string
		input    interface{}
		expected float64
	}{
		{"float input", 1234.5, 1234.5},
		{"int input", 1200, 1200},
		{"numeric string", "3000", 3000},
		{"decimal string", "450.75", 450.75},
		{"garbage string", "a lot", 0},
		{"empty string", "", 0},
		{"nil input", nil, 0},
		{"bool input", true, 0},
		{"negative number", -300.0, 0},
		{"negative string", "-300", 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ParseAmount(tc.input); got != tc.expected {
				t.Errorf("ParseAmount(%v) = %v, want %v", tc.input, got, tc.expected)
			}
		})
	}
}
