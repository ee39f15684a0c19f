// Package assistant answers questions about the collection through a text
// generation service. It never returns an error to its caller; failures
// become fixed replies.
package assistant

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/cesargomez89/sonicvault/internal/constants"
	"github.com/cesargomez89/sonicvault/internal/domain"
	"github.com/cesargomez89/sonicvault/internal/llm"
	"github.com/cesargomez89/sonicvault/internal/logger"
)

// Fixed replies.
const (
	MissingKeyReply = "Please configure your LLM_API_KEY to use the AI Assistant."
	ErrorReply      = "Sorry, I encountered an error connecting to the AI service."
	EmptyReply      = "I couldn't process that request right now."
)

const systemInstruction = `You are an expert music librarian named "SonicVault AI".
You have access to the user's music catalog listed in the context.

Rules:
1. Answer the user's question based strictly on their library if they ask about stats, specific albums, or filtering.
2. If they ask for recommendations, suggest items FROM their library that fit the vibe, or suggest similar external artists based on their taste.
3. Be concise, friendly, and enthusiastic about music.
4. If the user asks to count things, count them accurately from the list.
5. Use Markdown for formatting (bolding album titles, lists).`

// Completer is the text generation call.
type Completer interface {
	Complete(ctx context.Context, r llm.Request) (string, error)
}

type Bridge struct {
	llm Completer
	log *logger.Logger
}

func NewBridge(c Completer, log *logger.Logger) *Bridge {
	return &Bridge{llm: c, log: log.WithComponent("assistant")}
}

// Ask answers question with the given albums as context. The model's reply
// is returned trimmed and otherwise verbatim.
func (b *Bridge) Ask(ctx context.Context, question string, albums []domain.Album) string {
	user := fmt.Sprintf("User Query: \"%s\"\n\nContext (User's Music Library):\n%s", question, FormatContext(albums))

	reply, err := b.llm.Complete(ctx, llm.Request{
		System:      systemInstruction,
		User:        user,
		Temperature: constants.AssistantTemperature,
	})
	switch {
	case errors.Is(err, llm.ErrNoAPIKey):
		return MissingKeyReply
	case errors.Is(err, llm.ErrEmptyResponse):
		return EmptyReply
	case err != nil:
		b.log.Error("Assistant request failed", "error", err)
		return ErrorReply
	}

	if reply = strings.TrimSpace(reply); reply == "" {
		return EmptyReply
	}
	return reply
}

// FormatContext renders one line per album:
//
//	- artist - title (year) [4.5/5] [Vinyl] Tags: a, b
func FormatContext(albums []domain.Album) string {
	var sb strings.Builder
	for i := range albums {
		if i > 0 {
			sb.WriteByte('\n')
		}
		writeLine(&sb, &albums[i])
	}
	return sb.String()
}

func writeLine(sb *strings.Builder, a *domain.Album) {
	rating := "Unrated"
	if a.HasRating() {
		rating = strconv.FormatFloat(*a.Rating, 'f', -1, 64) + "/5"
	}
	fmt.Fprintf(sb, "- %s - %s (%s) [%s] [%s] Tags: %s",
		a.Artist, a.Title, a.Year, rating, a.Ownership, strings.Join(a.Tags, ", "))
}
