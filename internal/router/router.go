package router

import (
	"context"
	"fmt"
	"strings"
	"time"

	"task-calendar/pkg/datemath"
	"task-calendar/pkg/llmprovider"
)

// Classify determines the intent of text. Failures degrade to a fallback classification.
func (r *SemanticRouter) Classify(ctx context.Context, text string) ClassifiedIntent {
	out := r.classify(ctx, text)
	if r.counter != nil {
		r.counter.IncClassification(string(out.Intent), string(out.Source))
	}
	return out
}

func (r *SemanticRouter) classify(ctx context.Context, text string) ClassifiedIntent {
	if strings.TrimSpace(text) == "" {
		return ClassifiedIntent{
			Intent:   IntentUnknown,
			Params:   NoParams{},
			Response: ResponseFallbackHelp,
			Source:   SourceEmptyInput,
		}
	}

	now := r.now().In(r.loc)
	req := &llmprovider.Request{
		SystemInstruction: &llmprovider.Message{
			Role:  "system",
			Parts: []llmprovider.Part{{Text: PromptRouterSystem + r.timeContext(now)}},
		},
		Messages:    []llmprovider.Message{llmprovider.TextMessage("user", text)},
		Temperature: RouterTemperature,
	}
	r.l.Debugf(ctx, "%s: request text=%q", LogPrefixClassify, text)

	resp, err := r.llm.GenerateContent(ctx, req)
	if err != nil {
		r.l.Warnf(ctx, "%s: %s: %v", LogPrefixClassify, ErrMsgLLMCallFailed, err)
		return keywordFallback(text, now)
	}

	completion := strings.TrimSpace(resp.Text())
	r.l.Debugf(ctx, "%s: response=%q", LogPrefixClassify, completion)
	if completion == "" {
		r.l.Warnf(ctx, "%s: %s", LogPrefixClassify, ErrMsgEmptyResponse)
		return keywordFallback(text, now)
	}

	out, err := decodeResult(completion)
	if err != nil {
		r.l.Warnf(ctx, "%s: %s: %v", LogPrefixClassify, ErrMsgJSONParseFailed, err)
		return ClassifiedIntent{
			Intent:   IntentUnknown,
			Params:   NoParams{},
			Response: ResponseRephrase,
			Source:   SourceParseFailure,
		}
	}

	r.l.Infof(ctx, "%s: classified as %s (confidence: %.2f)", LogPrefixClassify, out.Intent, out.Confidence)
	return out
}

func (r *SemanticRouter) timeContext(now time.Time) string {
	return fmt.Sprintf(PromptTimeContext, now.Format(datemath.DateLayout), now.Weekday(), r.loc)
}

// keywordFallback classifies by substring. The create date is always today.
func keywordFallback(text string, now time.Time) ClassifiedIntent {
	lower := strings.ToLower(text)

	if containsAny(lower, createKeywords) {
		return ClassifiedIntent{
			Intent:     IntentCreateTask,
			Confidence: FallbackConfidence,
			Params:     CreateParams{Title: text, Date: now.Format(datemath.DateLayout)},
			Response:   ResponseFallbackCreate,
			Source:     SourceKeywordFallback,
		}
	}
	if containsAny(lower, queryKeywords) {
		return ClassifiedIntent{
			Intent:     IntentQueryTasks,
			Confidence: FallbackConfidence,
			Params:     QueryParams{Query: text},
			Response:   ResponseFallbackQuery,
			Source:     SourceKeywordFallback,
		}
	}
	return ClassifiedIntent{
		Intent:   IntentUnknown,
		Params:   NoParams{},
		Response: ResponseFallbackHelp,
		Source:   SourceKeywordFallback,
	}
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
