package configs

import (
	"fmt"
	"time"

	"github.com/govseva/govseva/internal/infrastructure/env"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	HTTP      HTTPConfig      `koanf:"http"`
	Store     StoreConfig     `koanf:"store"`
	Chat      ChatConfig      `koanf:"chat"`
	Translate TranslateConfig `koanf:"translate"`
	Speech    SpeechConfig    `koanf:"speech"`
}

type HTTPConfig struct {
	Host           string        `koanf:"host"`
	Port           uint16        `koanf:"port"`
	AllowedOrigins []string      `koanf:"allowed_origins"`
	AllowedHeaders []string      `koanf:"allowed_headers"`
	ReadTimeout    time.Duration `koanf:"read_timeout"`
	WriteTimeout   time.Duration `koanf:"write_timeout"`
}

type StoreConfig struct {
	Path      string `koanf:"path"`
	UploadDir string `koanf:"upload_dir"`
	TTSDir    string `koanf:"tts_dir"`
}

type ChatConfig struct {
	APIKey  string        `koanf:"api_key"`
	BaseURL string        `koanf:"base_url"`
	Model   string        `koanf:"model"`
	Timeout time.Duration `koanf:"timeout"`
}

type TranslateConfig struct {
	APIKey  string        `koanf:"api_key"`
	BaseURL string        `koanf:"base_url"`
	Model   string        `koanf:"model"`
	Timeout time.Duration `koanf:"timeout"`
}

type SpeechConfig struct {
	APIKey        string        `koanf:"api_key"`
	RecognizeURL  string        `koanf:"recognize_url"`
	SynthesizeURL string        `koanf:"synthesize_url"`
	Timeout       time.Duration `koanf:"timeout"`
}

func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Load from YAML file if it exists
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			// Only return error if file was explicitly provided but failed to load
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	// Apply defaults and environment variable overrides
	applyDefaults(k)
	applyEnvOverrides(k)

	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

func applyDefaults(k *koanf.Koanf) {
	// HTTP defaults
	setDefault(k, "http.host", "0.0.0.0")
	setDefault(k, "http.port", 5000)
	setDefault(k, "http.read_timeout", 10*time.Second)
	setDefault(k, "http.write_timeout", 30*time.Second)
	setDefault(k, "http.allowed_origins", []string{"*"})
	setDefault(k, "http.allowed_headers", []string{"Content-Type", "Authorization"})

	// Store defaults
	setDefault(k, "store.path", "./data.db")
	setDefault(k, "store.upload_dir", "./uploads")
	setDefault(k, "store.tts_dir", "./tts")

	// Chat assistant defaults
	setDefault(k, "chat.base_url", "https://generativelanguage.googleapis.com")
	setDefault(k, "chat.model", "gemini-1.5-flash")
	setDefault(k, "chat.timeout", 30*time.Second)

	// Translation defaults
	setDefault(k, "translate.base_url", "https://openrouter.ai/api/v1")
	setDefault(k, "translate.model", "google/gemma-3-27b-it-free")
	setDefault(k, "translate.timeout", 30*time.Second)

	// Speech defaults
	setDefault(k, "speech.recognize_url", "https://www.google.com/speech-api/v2/recognize")
	setDefault(k, "speech.synthesize_url", "https://translate.google.com/translate_tts")
	setDefault(k, "speech.timeout", 30*time.Second)
}

func applyEnvOverrides(k *koanf.Koanf) {
	// HTTP config from env
	if host := env.GetString("HTTP_HOST", ""); host != "" {
		k.Set("http.host", host)
	}
	if port := env.GetInt("HTTP_PORT", 0); port > 0 {
		k.Set("http.port", port)
	}
	if readTimeout := env.GetInt("HTTP_READ_TIMEOUT_SECONDS", 0); readTimeout > 0 {
		k.Set("http.read_timeout", time.Duration(readTimeout)*time.Second)
	}
	if writeTimeout := env.GetInt("HTTP_WRITE_TIMEOUT_SECONDS", 0); writeTimeout > 0 {
		k.Set("http.write_timeout", time.Duration(writeTimeout)*time.Second)
	}

	// Store config from env
	if dbPath := env.GetString("DB_PATH", ""); dbPath != "" {
		k.Set("store.path", dbPath)
	}
	if uploadDir := env.GetString("UPLOAD_DIR", ""); uploadDir != "" {
		k.Set("store.upload_dir", uploadDir)
	}
	if ttsDir := env.GetString("TTS_DIR", ""); ttsDir != "" {
		k.Set("store.tts_dir", ttsDir)
	}

	// Adapter credentials come from env only, never from the config file
	if key := env.GetString("GEMINI_API_KEY", ""); key != "" {
		k.Set("chat.api_key", key)
	}
	if model := env.GetString("GEMINI_MODEL", ""); model != "" {
		k.Set("chat.model", model)
	}
	if key := env.GetString("OPENROUTER_API_KEY", ""); key != "" {
		k.Set("translate.api_key", key)
	}
	if model := env.GetString("OPENROUTER_MODEL", ""); model != "" {
		k.Set("translate.model", model)
	}
	if key := env.GetString("SPEECH_API_KEY", ""); key != "" {
		k.Set("speech.api_key", key)
	}
}

// setDefault only sets the value if the key doesn't already exist
func setDefault(k *koanf.Koanf, key string, value interface{}) {
	if !k.Exists(key) {
		k.Set(key, value)
	}
}
