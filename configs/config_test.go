package configs

import (
	"os"
	"testing"
)

// setupTestEnv sets up required environment variables for config unmarshaling
func setupTestEnv() {
	os.Setenv("APP_DEBUG", "false")
	os.Setenv("APP_ENV", "test")
	os.Setenv("APP_PORT", "8080")
	os.Setenv("POSTGRES_HOST", "localhost")
	os.Setenv("POSTGRES_PORT", "5432")
	os.Setenv("POSTGRES_USERNAME", "test")
	os.Setenv("POSTGRES_PASSWORD", "test")
	os.Setenv("POSTGRES_DATABASE", "test")
	os.Setenv("POSTGRES_SSLMODE", "false")
	os.Setenv("OPENAI_API_KEY", "test-key")
	os.Setenv("SUPABASE_URL", "http://localhost:54321")
	os.Setenv("SUPABASE_ANON_KEY", "test")
	os.Setenv("SUPABASE_SERVICE_KEY", "test")
}

// cleanupTestEnv cleans up environment variables after tests
func cleanupTestEnv() {
	os.Unsetenv("APP_DEBUG")
	os.Unsetenv("APP_ENV")
	os.Unsetenv("APP_PORT")
	os.Unsetenv("POSTGRES_HOST")
	os.Unsetenv("POSTGRES_PORT")
	os.Unsetenv("POSTGRES_USERNAME")
	os.Unsetenv("POSTGRES_PASSWORD")
	os.Unsetenv("POSTGRES_DATABASE")
	os.Unsetenv("POSTGRES_SSLMODE")
	os.Unsetenv("OPENAI_API_KEY")
	os.Unsetenv("SUPABASE_URL")
	os.Unsetenv("SUPABASE_ANON_KEY")
	os.Unsetenv("SUPABASE_SERVICE_KEY")
	os.Unsetenv("CHATBOT_MODE")
	os.Unsetenv("CONVERSATION_STORE")
	os.Unsetenv("CONVERSATION_MAX_TURNS")
	os.Unsetenv("OPENAI_VOICE")
}

// TestChatbotModeUnmarshal tests that the persona strategy is read from config
func TestChatbotModeUnmarshal(t *testing.T) {
	setupTestEnv()
	defer cleanupTestEnv()

	os.Setenv("CHATBOT_MODE", "fast")

	InitViper(".", "test")
	cfg := GetViper()

	if cfg.Chatbot.Mode != "fast" {
		t.Errorf("Expected Chatbot.Mode to be fast, got %q", cfg.Chatbot.Mode)
	}
}

// TestConversationStructFieldsUnmarshal tests the history backend selection fields
func TestConversationStructFieldsUnmarshal(t *testing.T) {
	setupTestEnv()
	defer cleanupTestEnv()

	os.Setenv("CONVERSATION_STORE", "redis")
	os.Setenv("CONVERSATION_MAX_TURNS", "5")

	InitViper(".", "test")
	cfg := GetViper()

	if cfg.Conversation.Store != "redis" {
		t.Errorf("Expected Conversation.Store to be redis, got %q", cfg.Conversation.Store)
	}
	if cfg.Conversation.MaxTurns != 5 {
		t.Errorf("Expected Conversation.MaxTurns to be 5, got %d", cfg.Conversation.MaxTurns)
	}
}

// TestConversationZeroMaxTurnsRequiresApplicationDefault tests that zero
// values pass through; the prompt builder applies the default of 3
func TestConversationZeroMaxTurnsRequiresApplicationDefault(t *testing.T) {
	setupTestEnv()
	defer cleanupTestEnv()

	os.Setenv("CONVERSATION_MAX_TURNS", "0")

	InitViper(".", "test")
	cfg := GetViper()

	if cfg.Conversation.MaxTurns != 0 {
		t.Errorf("Expected Conversation.MaxTurns to be 0, got %d", cfg.Conversation.MaxTurns)
	}
}

// TestOpenAIConfigAccess tests config access via configs.GetViper().OpenAI
func TestOpenAIConfigAccess(t *testing.T) {
	setupTestEnv()
	defer cleanupTestEnv()

	os.Setenv("OPENAI_VOICE", "alloy")

	InitViper(".", "test")
	cfg := GetViper()

	if cfg.OpenAI.APIKey != "test-key" {
		t.Errorf("Expected OpenAI.APIKey to be test-key, got %q", cfg.OpenAI.APIKey)
	}
	if cfg.OpenAI.Voice != "alloy" {
		t.Errorf("Expected OpenAI.Voice to be alloy, got %q", cfg.OpenAI.Voice)
	}
}
