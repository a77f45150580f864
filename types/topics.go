package types

// Topic is a closed-set tag classifying what a conversation is about.
type Topic string

const (
	TopicGreeting         Topic = "greeting"
	TopicRumor            Topic = "rumor"
	TopicStatusReport     Topic = "status-report"
	TopicOrders           Topic = "orders"
	TopicTradeNegotiation Topic = "trade-negotiation"
	TopicTradeEmbargo     Topic = "trade-embargo"
	TopicTerritoryContest Topic = "territory-contest"
	TopicThreat           Topic = "threat"
	TopicTaunt            Topic = "taunt"
	TopicWaryEncounter    Topic = "wary-encounter"
	TopicAllianceAffirm   Topic = "alliance-affirm"
	TopicProsperityLament Topic = "prosperity-lament"
	TopicRaidWarning      Topic = "raid-warning"
	TopicQuestHint        Topic = "quest-hint"
)

// EscalationLadder is the ordered run of hostility-escalation topics, from
// the first sign of friction to the brink of open violence.
var EscalationLadder = [7]Topic{
	"escalation-glare",
	"escalation-jeer",
	"escalation-accusation",
	"escalation-warning",
	"escalation-standoff",
	"escalation-ultimatum",
	"escalation-breaking-point",
}

var knownTopics = func() map[Topic]bool {
	m := map[Topic]bool{
		TopicGreeting:         true,
		TopicRumor:            true,
		TopicStatusReport:     true,
		TopicOrders:           true,
		TopicTradeNegotiation: true,
		TopicTradeEmbargo:     true,
		TopicTerritoryContest: true,
		TopicThreat:           true,
		TopicTaunt:            true,
		TopicWaryEncounter:    true,
		TopicAllianceAffirm:   true,
		TopicProsperityLament: true,
		TopicRaidWarning:      true,
		TopicQuestHint:        true,
	}
	for _, t := range EscalationLadder {
		m[t] = true
	}
	return m
}()

// KnownTopic reports whether t belongs to the closed topic set.
func KnownTopic(t Topic) bool {
	return knownTopics[t]
}
