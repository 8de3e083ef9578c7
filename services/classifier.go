package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
)

const cuisinePrompt = "What cuisine type is shown in this food image? Respond with just the cuisine name."

// ImageModel is the remote image-understanding capability: given a prompt
// and an image, produce a short text answer. It is treated as unreliable --
// it may error or come back empty -- and carries no retry discipline of its
// own.
type ImageModel interface {
	GenerateFromImage(ctx context.Context, prompt, mimeType string, image []byte) (string, error)
}

// Sleeper waits for d or until ctx is done, whichever comes first. Tests
// inject one so backoff runs without real time passing.
type Sleeper func(ctx context.Context, d time.Duration) error

// CuisineClassifier turns a food photo into a clean cuisine label by calling
// an ImageModel with bounded retries and exponential backoff, then
// normalizing whatever free text comes back.
type CuisineClassifier struct {
	Model       ImageModel
	MaxAttempts int
	BaseDelay   time.Duration
	Sleep       Sleeper
}

func NewCuisineClassifier(model ImageModel) *CuisineClassifier {
	return &CuisineClassifier{
		Model:       model,
		MaxAttempts: 3,
		BaseDelay:   time.Second,
		Sleep:       sleepContext,
	}
}

// Classify asks the model for the cuisine shown in the image. Failed or
// empty responses are retried up to the attempt budget, waiting
// BaseDelay*2^i between attempts i and i+1 (1s, 2s for the default budget
// of 3). Exhausting the budget fails with ErrClassificationFailed wrapping
// the last attempt's error. Caller cancellation aborts any remaining
// attempts immediately.
func (cc *CuisineClassifier) Classify(ctx context.Context, image []byte, mimeType string) (string, error) {
	var lastErr error
	for attempt := 0; attempt < cc.MaxAttempts; attempt++ {
		if attempt > 0 {
			delay := cc.BaseDelay * (1 << (attempt - 1))
			if err := cc.Sleep(ctx, delay); err != nil {
				return "", err
			}
		}

		raw, err := cc.Model.GenerateFromImage(ctx, cuisinePrompt, mimeType, image)
		if err != nil {
			lastErr = err
			continue
		}
		if strings.TrimSpace(raw) == "" {
			lastErr = errors.New("empty response from image model")
			continue
		}
		return NormalizeCuisineLabel(raw), nil
	}
	return "", fmt.Errorf("%w after %d attempts: %v", ErrClassificationFailed, cc.MaxAttempts, lastErr)
}

var (
	hedgePrefixRe   = regexp.MustCompile(`(?i)^(this appears to be|this is|i see|looks like)\s+`)
	cuisineSuffixRe = regexp.MustCompile(`(?i)\s+cuisine$`)
)

// NormalizeCuisineLabel strips the conversational padding models wrap around
// an answer ("This appears to be Italian cuisine" -> "Italian") so the label
// can feed straight into cuisine matching.
func NormalizeCuisineLabel(raw string) string {
	label := strings.TrimSpace(raw)
	label = hedgePrefixRe.ReplaceAllString(label, "")
	label = cuisineSuffixRe.ReplaceAllString(label, "")
	return strings.TrimSpace(label)
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
