package rewards

// RuleContext is the member state a badge rule is evaluated against,
// captured after the balance update inside the check-in transaction.
type RuleContext struct {
	CheckIns int64
	Balance  int64
}

// BadgeRule grants a named badge once its condition holds. Rules are
// evaluated in declaration order on every check-in; granting an
// already-held badge is a no-op.
type BadgeRule struct {
	Name      string
	Satisfied func(RuleContext) bool
}

// BadgeRules is the fixed, ordered rule table.
func BadgeRules() []BadgeRule {
	return []BadgeRule{
		{
			Name:      "First Event",
			Satisfied: func(rc RuleContext) bool { return rc.CheckIns >= 1 },
		},
		{
			Name:      "Social Butterfly",
			Satisfied: func(rc RuleContext) bool { return rc.CheckIns >= 5 },
		},
		{
			Name:      "Point Collector",
			Satisfied: func(rc RuleContext) bool { return rc.Balance >= 500 },
		},
		{
			Name:      "Campus Legend",
			Satisfied: func(rc RuleContext) bool { return rc.Balance >= 1000 },
		},
	}
}
