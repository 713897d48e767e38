package bot

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/asareb/pharmahub/backend/internal/analysis/intent"
	botmodel "github.com/asareb/pharmahub/backend/internal/model/bot"
	"github.com/asareb/pharmahub/backend/internal/model/chat"
	"github.com/asareb/pharmahub/backend/internal/model/knowledge"
)

// fallbackPrefix softens the answer when no catalog entry scored at all and a
// random one is served instead. The bot is never silent.
const fallbackPrefix = "I couldn't find an exact match, but here's something helpful:"

// Config tunes response composition.
type Config struct {
	// SearchLimit caps how many catalog entries one answer may combine.
	SearchLimit int
	// MaxQuickReplies caps the suggestions attached to a multi-entry answer.
	MaxQuickReplies int
	// Pick selects the fallback entry index in [0,n). Defaults to a uniform
	// random draw; tests inject a fixed one.
	Pick func(n int) int
}

// Engine composes one chatbot response per user turn: context rules first,
// then catalog search. It holds no per-conversation state and is safe for
// concurrent use.
type Engine struct {
	store           knowledge.Store
	searchLimit     int
	maxQuickReplies int
	pick            func(n int) int
}

// NewEngine builds an Engine over the given catalog store.
func NewEngine(store knowledge.Store, cfg Config) *Engine {
	if cfg.SearchLimit <= 0 {
		cfg.SearchLimit = 2
	}
	if cfg.MaxQuickReplies <= 0 {
		cfg.MaxQuickReplies = 4
	}
	if cfg.Pick == nil {
		cfg.Pick = rand.IntN
	}
	return &Engine{
		store:           store,
		searchLimit:     cfg.SearchLimit,
		maxQuickReplies: cfg.MaxQuickReplies,
		pick:            cfg.Pick,
	}
}

// Respond produces exactly one response for the user message. The history
// window must be ordered oldest-first; it is only read, never mutated.
// Respond never fails, whatever the input text.
func (e *Engine) Respond(_ context.Context, message string, history []chat.Message) botmodel.Response {
	if response, ok := intent.Match(message, history); ok {
		return response
	}

	entries := e.store.Search(message, e.searchLimit)
	switch len(entries) {
	case 0:
		return e.fallback()
	case 1:
		return singleEntryResponse(entries[0])
	default:
		return e.multiEntryResponse(entries)
	}
}

// fallback serves a random catalog entry rather than admitting defeat.
// Occasional irrelevance is the accepted trade-off.
func (e *Engine) fallback() botmodel.Response {
	entries := e.store.List()
	entry := entries[e.pick(len(entries))]
	return botmodel.Response{
		Answer:       fallbackPrefix + "\n\n" + entry.Answer,
		QuickReplies: botmodel.DefaultQuickReplies(),
	}
}

func singleEntryResponse(entry knowledge.Entry) botmodel.Response {
	quickReplies := followUpReplies(entry)
	if len(quickReplies) == 0 {
		quickReplies = botmodel.DefaultQuickReplies()
	}
	return botmodel.Response{Answer: entry.Answer, QuickReplies: quickReplies}
}

func (e *Engine) multiEntryResponse(entries []knowledge.Entry) botmodel.Response {
	sections := make([]string, 0, len(entries))
	quickReplies := make([]botmodel.QuickReply, 0, e.maxQuickReplies)
	for i, entry := range entries {
		sections = append(sections, fmt.Sprintf("%d. %s\n%s", i+1, entry.Title, entry.Answer))
		quickReplies = append(quickReplies, followUpReplies(entry)...)
	}
	if len(quickReplies) > e.maxQuickReplies {
		quickReplies = quickReplies[:e.maxQuickReplies]
	}
	return botmodel.Response{
		Answer:       strings.Join(sections, "\n\n"),
		QuickReplies: quickReplies,
	}
}

// followUpReplies maps an entry's suggested next questions into quick replies.
func followUpReplies(entry knowledge.Entry) []botmodel.QuickReply {
	if len(entry.FollowUps) == 0 {
		return nil
	}
	replies := make([]botmodel.QuickReply, 0, len(entry.FollowUps))
	for i, followUp := range entry.FollowUps {
		replies = append(replies, botmodel.QuickReply{
			ID:     fmt.Sprintf("%s-f%d", entry.ID, i+1),
			Text:   followUp,
			Prompt: followUp,
		})
	}
	return replies
}
