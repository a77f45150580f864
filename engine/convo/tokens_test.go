package convo

import "testing"

func testTokenContext() TokenContext {
	return TokenContext{
		SelfFaction:  "the Ashveil Syndicate",
		OtherFaction: "the Ironward Compact",
		District:     "the Docks",
		Prosperity:   "struggling",
		Control:      "contested",
		TradeStatus:  "embargoed",
	}
}

func TestResolve_AllTokens(t *testing.T) {
	tc := testTokenContext()
	got := Resolve("{SELF_FACTION} holds {DISTRICT} ({CONTROL}, {PROSPERITY}); trade with {OTHER_FACTION} is {TRADE_STATUS}.", tc)
	want := "the Ashveil Syndicate holds the Docks (contested, struggling); trade with the Ironward Compact is embargoed."
	if got != want {
		t.Errorf("Resolve = %q, want %q", got, want)
	}
}

func TestResolve_NoTokens(t *testing.T) {
	text := "Nothing to see here."
	if got := Resolve(text, testTokenContext()); got != text {
		t.Errorf("Resolve = %q, want unchanged", got)
	}
}

func TestResolve_UnknownTokenVerbatim(t *testing.T) {
	got := Resolve("Hail, {STRANGER_NAME}.", testTokenContext())
	if got != "Hail, {STRANGER_NAME}." {
		t.Errorf("Resolve = %q, unknown token should stay verbatim", got)
	}
}

func TestResolve_UnclosedBrace(t *testing.T) {
	got := Resolve("A dangling {DISTRICT brace", testTokenContext())
	if got != "A dangling {DISTRICT brace" {
		t.Errorf("Resolve = %q, unclosed token should stay verbatim", got)
	}
}

func TestResolve_NoRescan(t *testing.T) {
	// A substituted value containing token syntax must not be re-expanded.
	tc := testTokenContext()
	tc.SelfFaction = "{DISTRICT}"
	got := Resolve("{SELF_FACTION} stands.", tc)
	if got != "{DISTRICT} stands." {
		t.Errorf("Resolve = %q, substituted values must not be re-scanned", got)
	}
}

func TestResolve_AdjacentTokens(t *testing.T) {
	got := Resolve("{DISTRICT}{PROSPERITY}", testTokenContext())
	if got != "the Docksstruggling" {
		t.Errorf("Resolve = %q", got)
	}
}
