package engine

import "github.com/jalvik/palaver/types"

// topicWeight is one entry in an ordered weighted distribution. Order
// matters: the cumulative-weight roll walks entries in build order.
type topicWeight struct {
	topic  types.Topic
	weight int
}

// recentIncidentWindow is how many turns an incident stays "fresh" for the
// escalation overlay, bumping the pair one rung up the ladder.
const recentIncidentWindow = 20

// topicDistribution builds the context-conditioned weighted topic pool for a
// pair. Entries are appended in a fixed order so that a given roll always
// lands in the same bucket.
func (o *Orchestrator) topicDistribution(init, resp types.Member, district *types.District, now int) []topicWeight {
	sameFaction := init.Faction != "" && init.Faction == resp.Faction

	var dist []topicWeight
	add := func(t types.Topic, w int) {
		if w > 0 {
			dist = append(dist, topicWeight{topic: t, weight: w})
		}
	}

	if sameFaction {
		add(types.TopicGreeting, 30)
		add(types.TopicRumor, 25)
		add(types.TopicStatusReport, 20)
		if init.Rank.Outranks(resp.Rank) {
			add(types.TopicOrders, 25)
		}
	} else {
		rep := o.svc.Reputation.Reputation(init.Faction, resp.Faction)
		switch {
		case rep >= o.svc.Reputation.FriendlyThreshold():
			add(types.TopicAllianceAffirm, 30)
			add(types.TopicTradeNegotiation, 20)
		case rep < 0:
			// Hostility rises as reputation falls more negative.
			threat := clampInt(-rep*2, 10, 50)
			add(types.TopicThreat, threat)
			add(types.TopicTaunt, threat/2)
			add(types.TopicWaryEncounter, maxInt(10, 40-threat/2))
		default:
			add(types.TopicWaryEncounter, 30)
			add(types.TopicTradeNegotiation, 15)
		}
		if rel, ok := o.svc.Trade.Relation(init.Faction, resp.Faction); ok && rel.Status == types.TradeEmbargo {
			add(types.TopicTradeEmbargo, 35)
		}
	}

	if district != nil {
		if district.Contested {
			add(types.TopicTerritoryContest, 30)
		}
		if district.Prosperity < 0.5 {
			if sameFaction {
				add(types.TopicProsperityLament, 20)
			} else {
				add(types.TopicProsperityLament, 15)
			}
		}
		if sameFaction && district.Heat[init.Faction] > 0.7 {
			add(types.TopicRaidWarning, 25)
		}
		if !sameFaction {
			if t, ok := o.escalationTopic(init.Faction, resp.Faction, district.ID, now); ok {
				add(t, 20)
			}
		}
	}

	if sameFaction {
		add(types.TopicQuestHint, 5)
	}

	return dist
}

// escalationTopic maps the pair's district tension onto the seven-rung
// escalation ladder: two rungs per stage above calm, plus one for a recent
// incident, capped at the top.
func (o *Orchestrator) escalationTopic(a, b types.FactionID, district types.DistrictID, now int) (types.Topic, bool) {
	st := o.svc.Tension.Escalation(a, b, district)
	if st.Stage < types.StageUneasy {
		return "", false
	}
	rung := int(st.Stage-types.StageUneasy) * 2
	if st.Incidents > 0 && now-st.LastIncidentTurn <= recentIncidentWindow {
		rung++
	}
	if rung > len(types.EscalationLadder)-1 {
		rung = len(types.EscalationLadder) - 1
	}
	return types.EscalationLadder[rung], true
}

// sampleTopic rolls uniform(0, totalWeight) and picks the first entry whose
// running cumulative sum exceeds the roll. An empty pool defaults to a plain
// greeting.
func sampleTopic(rng *RNG, dist []topicWeight) types.Topic {
	total := 0
	for _, tw := range dist {
		total += tw.weight
	}
	if total <= 0 {
		return types.TopicGreeting
	}
	return pickAt(dist, rng.Intn(total))
}

// pickAt maps a roll in [0, totalWeight) onto the distribution.
func pickAt(dist []topicWeight, roll int) types.Topic {
	cum := 0
	for _, tw := range dist {
		cum += tw.weight
		if cum > roll {
			return tw.topic
		}
	}
	return dist[len(dist)-1].topic
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
