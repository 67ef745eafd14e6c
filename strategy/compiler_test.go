package strategy

import (
	"strings"
	"testing"

	"github.com/expr-lang/expr"
)

func ruleByName(rules []*Rule, name string) *Rule {
	for _, r := range rules {
		if r.Name == name {
			return r
		}
	}
	return nil
}

func TestCompilePostureBalanced(t *testing.T) {
	rules := CompilePosture(DefaultPosture())
	if len(rules) == 0 {
		t.Fatal("CompilePosture returned no rules")
	}

	for _, r := range rules {
		_, err := expr.Compile(r.ConditionSrc, expr.Env(Env{}), expr.AsBool())
		if err != nil {
			t.Errorf("rule %q failed to compile: %v\ncondition: %s", r.Name, err, r.ConditionSrc)
		}
		if r.Build == nil {
			t.Errorf("rule %q has no build func", r.Name)
		}
	}

	for _, name := range []string{"kickoff", "save", "defend", "strike", "get-boost", "recover", "fallback-retreat"} {
		if ruleByName(rules, name) == nil {
			t.Errorf("rule %q missing from compiled posture", name)
		}
	}
}

func TestCompilePostureAggressive(t *testing.T) {
	aggressive := CompilePosture(Posture{Name: "Pressure", Aggression: 0.9, Defense: 0.1})
	passive := CompilePosture(Posture{Name: "Turtle", Aggression: 0.1, Defense: 0.9})

	aStrike, pStrike := ruleByName(aggressive, "strike"), ruleByName(passive, "strike")
	if aStrike.Order <= pStrike.Order {
		t.Errorf("strike order: aggressive %d, passive %d; want aggressive higher", aStrike.Order, pStrike.Order)
	}
	if !strings.Contains(aStrike.ConditionSrc, "MyInterceptTime() < 3.30") {
		t.Errorf("aggressive strike condition = %q, want intercept window 3.30", aStrike.ConditionSrc)
	}

	aDefend, pDefend := ruleByName(aggressive, "defend"), ruleByName(passive, "defend")
	if aDefend.Order >= pDefend.Order {
		t.Errorf("defend order: aggressive %d, passive %d; want passive higher", aDefend.Order, pDefend.Order)
	}
}

func TestCompilePostureClampsWeights(t *testing.T) {
	rules := CompilePosture(Posture{Aggression: 5, Defense: -2, BoostGreed: 1})
	if got := ruleByName(rules, "strike").Order; got != 700 {
		t.Errorf("strike order = %d, want 700", got)
	}
	if got := ruleByName(rules, "defend").Order; got != 300 {
		t.Errorf("defend order = %d, want 300", got)
	}
	if src := ruleByName(rules, "get-boost").ConditionSrc; !strings.Contains(src, "Boost() < 50") {
		t.Errorf("get-boost condition = %q, want threshold 50", src)
	}
}
