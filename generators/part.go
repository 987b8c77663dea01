package generators

type Part interface {
	isPart()
}

type Text string

func (Text) isPart() {}

// Thought is reasoning text some models stream before the answer.
type Thought string

func (Thought) isPart() {}

type FinishReason string

func (FinishReason) isPart() {}

type Usage struct {
	PromptTokens     int
	CompletionTokens int
	ReasoningTokens  int
}

func (Usage) isPart() {}
