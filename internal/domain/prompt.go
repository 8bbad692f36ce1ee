package domain

import (
	"fmt"
)

// PersonaMode type
type PersonaMode string

const (
	// PersonaModeTraining const - full behavioral prompt, richer replies
	PersonaModeTraining PersonaMode = "training"
	// PersonaModeFast const - short prompt tuned for low latency
	PersonaModeFast PersonaMode = "fast"
)

// trainingPersonaPrompt is the fixed instruction defining the simulated
// customer. The persona never changes at runtime.
const trainingPersonaPrompt = `ROLE: You are a CUSTOMER who just opened your door to a door-to-door salesperson.

CRITICAL INSTRUCTIONS:
- You are the CUSTOMER, NOT the salesperson
- The person talking to you is trying to sell you something
- You respond as a customer would - with questions, objections, or interest
- You NEVER pitch products or act like a salesperson
- You are always the person who opened the door

CUSTOMER RESPONSES (examples):
- "Oh, hi. What is this about?"
- "I'm not really interested right now"
- "How much does it cost?"
- "I need to think about it"
- "Do you have any references?"
- "I'm busy right now, can you come back later?"

FORBIDDEN: Never respond as a salesperson. Never pitch products. Never say "I'm here to tell you about..." or "Would you be interested in...". You are always the customer.`

const fastPersonaPrompt = `You're a customer who opened your door to a salesperson. Respond naturally with short, realistic reactions like:
- "Oh, hi. What's this about?"
- "I'm not interested right now"
- "How much does it cost?"
- "I need to think about it"
Keep responses under 15 words. Be natural, not robotic.`

// messageFraming wraps the new utterance so the model keeps its customer
// role even when system-message priority is lost mid-conversation.
const messageFraming = `[CONTEXT: You are a customer who just opened your door. A salesperson is talking to you. The salesperson said: "%s"]`

// fastHistoryTurns caps history in fast mode; two exchanges keep the
// prompt small enough for sub-second generation.
const fastHistoryTurns = 2

// PromptBuilder builds the bounded instruction sequence for one turn:
// persona system prompt, trimmed history, then the new user message.
// Given identical inputs the produced sequence is identical.
type PromptBuilder struct {
	mode     PersonaMode
	maxTurns int
}

// NewPromptBuilder creates a prompt builder for the configured persona
// strategy. The mode must be selected explicitly; an unknown mode is an
// error rather than a silent default.
func NewPromptBuilder(mode PersonaMode, maxTurns int) (*PromptBuilder, error) {
	switch mode {
	case PersonaModeTraining, PersonaModeFast:
	default:
		return nil, fmt.Errorf("%w: unknown persona mode %q", ErrInvalidInput, mode)
	}
	if maxTurns <= 0 {
		maxTurns = 3
	}
	return &PromptBuilder{mode: mode, maxTurns: maxTurns}, nil
}

// Mode returns the configured persona strategy.
func (b *PromptBuilder) Mode() PersonaMode {
	return b.mode
}

// MaxTurns returns the history bound applied by Build.
func (b *PromptBuilder) MaxTurns() int {
	if b.mode == PersonaModeFast {
		return fastHistoryTurns
	}
	return b.maxTurns
}

// Build produces the ordered instruction sequence for a new user message.
// History is truncated to the most recent MaxTurns turns; each turn maps to
// a user message and an assistant message in chronological order.
func (b *PromptBuilder) Build(history []Turn, message string) []ChatMessage {
	messages := []ChatMessage{{Role: ChatRoleSystem, Content: b.personaPrompt()}}

	for _, turn := range LastTurns(history, b.MaxTurns()) {
		messages = append(messages,
			ChatMessage{Role: ChatRoleUser, Content: turn.Message},
			ChatMessage{Role: ChatRoleAssistant, Content: turn.Response},
		)
	}

	messages = append(messages, ChatMessage{Role: ChatRoleUser, Content: b.frameMessage(message)})
	return messages
}

// MaxTokens returns the reply length cap for the configured strategy.
func (b *PromptBuilder) MaxTokens() int {
	if b.mode == PersonaModeFast {
		return 50
	}
	return 150
}

// Temperature returns the randomness parameter for the configured strategy.
func (b *PromptBuilder) Temperature() float64 {
	if b.mode == PersonaModeFast {
		return 0.7
	}
	return 0.8
}

// FallbackReply returns the utterance substituted when generation yields
// an empty string. The generator never returns an empty reply.
func (b *PromptBuilder) FallbackReply() string {
	if b.mode == PersonaModeFast {
		return "Sorry, what?"
	}
	return "I apologize, I didn't understand that. Could you please repeat?"
}

func (b *PromptBuilder) personaPrompt() string {
	if b.mode == PersonaModeFast {
		return fastPersonaPrompt
	}
	return trainingPersonaPrompt
}

func (b *PromptBuilder) frameMessage(message string) string {
	if b.mode == PersonaModeFast {
		return message
	}
	return fmt.Sprintf(messageFraming, message)
}

// RealtimePersonaInstructions returns the persona instruction used when
// issuing ephemeral realtime session tokens for in-headset conversations.
func RealtimePersonaInstructions() string {
	return trainingPersonaPrompt + "\n\nKeep responses natural, conversational, and under 20 words. Be realistic and human-like."
}
