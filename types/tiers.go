package types

// Tier descriptors substituted into authored text. Thresholds are inclusive
// on the upper tier: a prosperity of exactly 0.8 reads as "thriving".

// ProsperityDescriptor maps a 0..1 prosperity value to a four-tier word.
func ProsperityDescriptor(p float64) string {
	switch {
	case p >= 0.8:
		return "thriving"
	case p >= 0.5:
		return "stable"
	case p >= 0.3:
		return "struggling"
	default:
		return "desperate"
	}
}

// ControlDescriptor maps a 0..1 control fraction to a four-tier phrase.
// Callers substitute "unclaimed" themselves when the faction holds no
// measurable control at all.
func ControlDescriptor(c float64) string {
	switch {
	case c >= 0.7:
		return "firmly held"
	case c >= 0.4:
		return "contested"
	case c >= 0.2:
		return "slipping"
	default:
		return "lost"
	}
}

// TradeDescriptor maps a bilateral trade status to its spoken form.
func TradeDescriptor(s TradeStatus) string {
	switch s {
	case TradeRestricted:
		return "restricted"
	case TradeEmbargo:
		return "embargoed"
	case TradeExclusive:
		return "exclusive"
	case TradeAlliance:
		return "allied"
	default:
		return "open"
	}
}
