package intent

import (
	"strings"
	"testing"

	"github.com/asareb/pharmahub/backend/internal/model/chat"
)

func TestMatchGreeting(t *testing.T) {
	response, ok := Match("hello there", nil)
	if !ok {
		t.Fatal("expected greeting rule to fire")
	}
	if !strings.HasPrefix(response.Answer, "Akwaaba!") {
		t.Fatalf("unexpected greeting answer: %q", response.Answer)
	}
	if len(response.QuickReplies) != 4 {
		t.Fatalf("expected 4 default quick replies, got %d", len(response.QuickReplies))
	}
}

func TestMatchGratitude(t *testing.T) {
	for _, message := range []string{"thanks a lot", "medaase", "I really appreciate it"} {
		if _, ok := Match(message, nil); !ok {
			t.Fatalf("expected gratitude rule to fire for %q", message)
		}
	}
}

func TestMatchPainContinuation(t *testing.T) {
	history := []chat.Message{
		{Sender: chat.SenderUser, Content: "what about pain relief"},
		{Sender: chat.SenderBot, Content: "We stock a full range of pain relief medication"},
	}

	response, ok := Match("any alternative?", history)
	if !ok {
		t.Fatal("expected continuation rule to fire")
	}
	if !strings.Contains(response.Answer, "Ibuprofen") || !strings.Contains(response.Answer, "Diclofenac") {
		t.Fatalf("expected pain comparison answer, got %q", response.Answer)
	}
}

func TestContinuationIgnoresBotMessages(t *testing.T) {
	// The topic keyword only counts when the *user* said it.
	history := []chat.Message{
		{Sender: chat.SenderUser, Content: "how do I order?"},
		{Sender: chat.SenderBot, Content: "pain relief is on aisle three"},
	}

	if _, ok := Match("any alternative?", history); ok {
		t.Fatal("continuation rule should not fire on bot-authored topic mention")
	}
}

func TestContinuationNeedsHistory(t *testing.T) {
	if _, ok := Match("any alternative?", nil); ok {
		t.Fatal("continuation rule should not fire without history")
	}
}

func TestMatchBranches(t *testing.T) {
	response, ok := Match("Where is your nearest branch?", nil)
	if !ok {
		t.Fatal("expected branch rule to fire")
	}
	if !strings.Contains(response.Answer, "Osu") {
		t.Fatalf("expected branch listing, got %q", response.Answer)
	}
}

func TestMatchHours(t *testing.T) {
	response, ok := Match("what are your opening hours", nil)
	if !ok {
		t.Fatal("expected hours rule to fire")
	}
	if !strings.Contains(response.Answer, "8am-9pm") {
		t.Fatalf("expected schedule text, got %q", response.Answer)
	}
}

func TestMatchFallsThrough(t *testing.T) {
	for _, message := range []string{"", "   ", "do you stock paracetamol?", "xyzzy"} {
		if _, ok := Match(message, nil); ok {
			t.Fatalf("expected no rule to fire for %q", message)
		}
	}
}
