package intent

import (
	"regexp"
	"strings"

	"github.com/asareb/pharmahub/backend/internal/model/bot"
	"github.com/asareb/pharmahub/backend/internal/model/chat"
)

// The responder recognizes conversational patterns that should bypass catalog
// search: positional ones (greeting, thanks), elliptical follow-ups that only
// make sense relative to the previous user turn, and questions common enough
// to deserve a hand-tuned answer (branches, hours).

var (
	greetingRe     = regexp.MustCompile(`\b(hello|hi|hey|akwaaba|good (morning|afternoon|evening))\b`)
	gratitudeRe    = regexp.MustCompile(`\b(thank|thanks|medaase|appreciate)`)
	alternativeRe  = regexp.MustCompile(`\b(alternative|different|other option|something else|instead)\b`)
	whereRe        = regexp.MustCompile(`\b(where|find|located|address|directions)\b`)
	branchRe       = regexp.MustCompile(`\b(branch|branches|location|locations)\b`)
	openingHoursRe = regexp.MustCompile(`\b(hours|open)\b`)
)

// rule pairs a predicate with its response builder. Rules are evaluated in
// order; the first hit wins.
type rule struct {
	matches func(message string, history []chat.Message) bool
	respond func() bot.Response
}

var rules = []rule{
	{
		matches: func(message string, _ []chat.Message) bool {
			return greetingRe.MatchString(message)
		},
		respond: greetingResponse,
	},
	{
		matches: func(message string, _ []chat.Message) bool {
			return gratitudeRe.MatchString(message)
		},
		respond: gratitudeResponse,
	},
	{
		matches: func(message string, history []chat.Message) bool {
			if !alternativeRe.MatchString(message) {
				return false
			}
			return strings.Contains(lastUserMessage(history), "pain")
		},
		respond: painAlternativesResponse,
	},
	{
		matches: func(message string, _ []chat.Message) bool {
			return whereRe.MatchString(message) && branchRe.MatchString(message)
		},
		respond: branchesResponse,
	},
	{
		matches: func(message string, _ []chat.Message) bool {
			return openingHoursRe.MatchString(message)
		},
		respond: hoursResponse,
	},
}

// Match evaluates the context rules against the lowercased message and the
// recent history window (oldest-first). ok is false when no rule applies and
// the caller should fall through to catalog search. Malformed or empty input
// simply matches nothing.
func Match(message string, history []chat.Message) (bot.Response, bool) {
	normalized := strings.ToLower(strings.TrimSpace(message))
	if normalized == "" {
		return bot.Response{}, false
	}

	for _, r := range rules {
		if r.matches(normalized, history) {
			return r.respond(), true
		}
	}
	return bot.Response{}, false
}

// lastUserMessage walks the history backward past bot turns and returns the
// most recent user utterance, lowercased. Empty when the window holds none.
func lastUserMessage(history []chat.Message) string {
	for i := len(history) - 1; i >= 0; i-- {
		if history[i].Sender == chat.SenderUser {
			return strings.ToLower(history[i].Content)
		}
	}
	return ""
}

func greetingResponse() bot.Response {
	return bot.Response{
		Answer: "Akwaaba! Welcome to PharmaHub. I can help you with medication information, " +
			"delivery, payments, branch locations and prescription orders. What do you need today?",
		QuickReplies: bot.DefaultQuickReplies(),
	}
}

func gratitudeResponse() bot.Response {
	return bot.Response{
		Answer: "You're welcome! Is there anything else I can help you with? " +
			"Your health is our priority.",
		QuickReplies: bot.DefaultQuickReplies(),
	}
}

func painAlternativesResponse() bot.Response {
	return bot.Response{
		Answer: "For pain relief, besides paracetamol you could consider:\n" +
			"- Ibuprofen 400mg: better when there is swelling or inflammation, take with food\n" +
			"- Diclofenac 50mg: stronger option for muscle and joint pain, not for ulcer patients\n" +
			"Both are in stock. If pain lasts more than 3 days, please see a doctor.",
		QuickReplies: []bot.QuickReply{
			{ID: "qr-ibuprofen", Text: "Ibuprofen details", Prompt: "Tell me about ibuprofen"},
			{ID: "qr-diclofenac", Text: "Diclofenac details", Prompt: "Tell me about diclofenac"},
			{ID: "qr-pharmacist", Text: "Ask a pharmacist", Prompt: "How do I contact a pharmacist?"},
		},
	}
}

func branchesResponse() bot.Response {
	return bot.Response{
		Answer: "You can find us at three branches:\n" +
			"1. Accra - 14 Oxford Street, Osu (main branch)\n" +
			"2. Kumasi - Prempeh II Street, Adum\n" +
			"3. Takoradi - Market Circle, Harbour Road\n" +
			"Or order online and we deliver to your door.",
		QuickReplies: []bot.QuickReply{
			{ID: "qr-hours", Text: "Opening hours", Prompt: "What are your opening hours?"},
			{ID: "qr-delivery", Text: "Delivery options", Prompt: "How does delivery work?"},
		},
	}
}

func hoursResponse() bot.Response {
	return bot.Response{
		Answer: "All PharmaHub branches open Monday to Saturday 8am-9pm and Sunday 10am-6pm. " +
			"Online orders can be placed 24/7 and are processed from 8am.",
		QuickReplies: []bot.QuickReply{
			{ID: "qr-branches", Text: "Find a branch", Prompt: "Where are your branches located?"},
		},
	}
}
