package convo

import "strings"

// TokenContext carries the values substituted into one line's text, resolved
// for that line's speaker at instance-creation time.
type TokenContext struct {
	SelfFaction  string
	OtherFaction string
	District     string
	Prosperity   string
	Control      string
	TradeStatus  string
}

func (tc TokenContext) value(name string) (string, bool) {
	switch name {
	case "SELF_FACTION":
		return tc.SelfFaction, true
	case "OTHER_FACTION":
		return tc.OtherFaction, true
	case "DISTRICT":
		return tc.District, true
	case "PROSPERITY":
		return tc.Prosperity, true
	case "CONTROL":
		return tc.Control, true
	case "TRADE_STATUS":
		return tc.TradeStatus, true
	default:
		return "", false
	}
}

// Resolve substitutes {NAME} tokens in a single left-to-right scan. Unknown
// tokens are left verbatim, and substituted values are never re-scanned.
func Resolve(text string, tc TokenContext) string {
	if !strings.ContainsRune(text, '{') {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))

	for i := 0; i < len(text); {
		open := strings.IndexByte(text[i:], '{')
		if open < 0 {
			b.WriteString(text[i:])
			break
		}
		open += i
		close := strings.IndexByte(text[open:], '}')
		if close < 0 {
			b.WriteString(text[i:])
			break
		}
		close += open

		b.WriteString(text[i:open])
		name := text[open+1 : close]
		if v, ok := tc.value(name); ok {
			b.WriteString(v)
		} else {
			b.WriteString(text[open : close+1])
		}
		i = close + 1
	}

	return b.String()
}
