package signals

import "testing"

func TestProducePositiveText(t *testing.T) {
	p := NewProducer(DefaultProducerConfig())
	if got := p.Produce("I feel calm and hopeful today"); got <= 0 {
		t.Fatalf("positive text scored %v, want > 0", got)
	}
}

func TestProduceNegativeText(t *testing.T) {
	p := NewProducer(DefaultProducerConfig())
	if got := p.Produce("everything feels hopeless and empty"); got >= 0 {
		t.Fatalf("negative text scored %v, want < 0", got)
	}
}

func TestProduceNeutralText(t *testing.T) {
	p := NewProducer(DefaultProducerConfig())
	for _, text := range []string{"", "the meeting is at noon", "   "} {
		if got := p.Produce(text); got != 0 {
			t.Errorf("Produce(%q) = %v, want 0", text, got)
		}
	}
}

func TestProduceWordWeight(t *testing.T) {
	p := NewProducer(DefaultProducerConfig())
	if got := p.Produce("sad"); got != -0.5 {
		t.Fatalf("single negative word scored %v, want -0.5", got)
	}
	if got := p.Produce("sad and hurt"); got != -1.0 {
		t.Fatalf("two negative words scored %v, want -1.0", got)
	}
	if got := p.Produce("sad but hopeful"); got != 0 {
		t.Fatalf("balanced text scored %v, want 0", got)
	}
}

func TestProduceIntensifierScaling(t *testing.T) {
	p := NewProducer(DefaultProducerConfig())
	base := p.Produce("sad")
	boosted := p.Produce("very sad")
	if boosted != base*1.5 {
		t.Fatalf("one intensifier: %v, want %v", boosted, base*1.5)
	}
	double := p.Produce("really very sad")
	if double != base*2 {
		t.Fatalf("two intensifiers: %v, want %v", double, base*2)
	}
}

func TestProduceIntensifiersAloneScoreZero(t *testing.T) {
	p := NewProducer(DefaultProducerConfig())
	if got := p.Produce("very really extremely"); got != 0 {
		t.Fatalf("intensifiers without valence scored %v, want 0", got)
	}
}

func TestProduceClampsMagnitude(t *testing.T) {
	p := NewProducer(DefaultProducerConfig())
	text := "hopeless despair worthless alone lonely hurt empty numb lost awful sad angry"
	if got := p.Produce("utterly completely deeply " + text); got != -4.0 {
		t.Fatalf("extreme text scored %v, want clamp at -4.0", got)
	}
}

func TestProduceTrimsPunctuation(t *testing.T) {
	p := NewProducer(DefaultProducerConfig())
	if got := p.Produce("I'm so sad."); got != p.Produce("I'm so sad") {
		t.Fatalf("trailing punctuation changed the score: %v", got)
	}
	if got := p.Produce("Hopeless!"); got != -0.5 {
		t.Fatalf("Produce(%q) = %v, want -0.5", "Hopeless!", got)
	}
}
