package signals

import "strings"

// #region producer

// Producer derives a raw emotion scalar from free text using a small
// valence lexicon. It is a demo-grade placeholder with the shape of a real
// affect scorer, so interactive callers can feed text instead of numbers.
// Real deployments swap in their own classifier.
type Producer struct {
	config ProducerConfig
}

// ProducerConfig holds scoring weights for the lexicon producer.
type ProducerConfig struct {
	WordWeight   float64 // contribution per matched valence word
	MaxMagnitude float64 // clamp on |raw| before the pipeline squashes it
}

// DefaultProducerConfig returns weights tuned so a few strong words land in
// the pipeline's expressive band rather than the saturated tails.
func DefaultProducerConfig() ProducerConfig {
	return ProducerConfig{
		WordWeight:   0.5,
		MaxMagnitude: 4.0,
	}
}

// NewProducer creates a Producer.
func NewProducer(config ProducerConfig) *Producer {
	return &Producer{config: config}
}

// #endregion producer

// #region lexicon

// The lexicons are intentionally tiny and approximate. They illustrate the
// shape of a signal source, not a real affect model.
var positiveWords = map[string]struct{}{
	"glad": {}, "happy": {}, "calm": {}, "grateful": {}, "hope": {},
	"hopeful": {}, "warm": {}, "love": {}, "loved": {}, "excited": {},
	"relieved": {}, "proud": {}, "peaceful": {}, "safe": {}, "better": {},
}

var negativeWords = map[string]struct{}{
	"sad": {}, "angry": {}, "afraid": {}, "fear": {}, "hopeless": {},
	"despair": {}, "worthless": {}, "alone": {}, "lonely": {}, "tired": {},
	"hurt": {}, "empty": {}, "numb": {}, "lost": {}, "awful": {},
}

var intensifiers = map[string]struct{}{
	"very": {}, "so": {}, "really": {}, "deeply": {}, "extremely": {},
	"completely": {}, "utterly": {},
}

// #endregion lexicon

// #region produce

// Produce scores text into a raw signal: positive words add, negative words
// subtract, and intensifiers scale the total. The result is clamped to
// ±MaxMagnitude. Empty or valence-free text scores 0.
func (p *Producer) Produce(text string) float64 {
	var pos, neg, boost int
	for _, tok := range tokenize(text) {
		if _, ok := positiveWords[tok]; ok {
			pos++
			continue
		}
		if _, ok := negativeWords[tok]; ok {
			neg++
			continue
		}
		if _, ok := intensifiers[tok]; ok {
			boost++
		}
	}

	score := p.config.WordWeight * float64(pos-neg)
	if score != 0 && boost > 0 {
		score *= 1 + 0.5*float64(boost)
	}

	return clampMagnitude(score, p.config.MaxMagnitude)
}

// #endregion produce

// #region helpers

// tokenize splits text into lowercase tokens, trimming common punctuation.
func tokenize(text string) []string {
	fields := strings.Fields(strings.ToLower(text))
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		tokens = append(tokens, strings.Trim(f, ".,!?;:'\""))
	}
	return tokens
}

// clampMagnitude restricts v to [-max, max].
func clampMagnitude(v, max float64) float64 {
	if v > max {
		return max
	}
	if v < -max {
		return -max
	}
	return v
}

// #endregion helpers
