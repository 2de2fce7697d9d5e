package core

import (
	"crypto/rand"
	"encoding/hex"
	"log"
	"net/mail"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type (
	ServerConfig struct {
		Addr       string
		SessionTTL time.Duration
	}

	Config struct {
		Env      string
		Debug    bool
		TestMode bool
		AppName  string
		WorkDir  string

		// SecretKey signs session cookies. Required outside DEV|TEST.
		SecretKey string

		// AuthUsers maps a username to its secret: either a bcrypt hash
		// ("$2..." prefix) or a plain value compared in constant time.
		AuthUsers map[string]string

		// DirectoryFile is the path of the read-only student directory (JSON array).
		DirectoryFile string

		// GradesBaseURL is the base URL of the external grading service.
		// Empty means the service is unconfigured; grade lookups degrade.
		GradesBaseURL string

		SendgridApiKey   string
		DefaultFromEmail mail.Address
		// NotifyEmail receives the per-visit notification reports. Empty disables them.
		NotifyEmail string

		RollbarToken string

		Server ServerConfig
	}
)

var Conf *Config

// legacy credential pairs from the original deployment; only ever loaded in DEV|TEST.
const devAuthUsers = "bilalab:saymynamehhh,abdou:bouker6666"

func init() {
	v := viper.New()

	// defaults
	v.SetTypeByDefaultValue(true)
	v.SetDefault("debug", true)
	v.SetDefault("appName", "Gradify")
	v.SetDefault("serverAddr", ":8000")
	v.SetDefault("sessionTTL", 24*time.Hour)
	v.SetDefault("directoryFile", filepath.Join("data", "students.json"))
	v.SetDefault("defaultFromEmail", "noreply@localhost")

	env := os.Getenv("ENV") // DEV (local; default), TEST, QA, PROD
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		v.SetDefault("testMode", true)
	}
	v.SetEnvPrefix("gradify")

	// load .env if it exists (ignore if it does not)
	wd := Getwd()
	dotEnvPath := filepath.Join(wd, "config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	v.AutomaticEnv()

	debug := v.GetBool("debug")
	testMode := v.GetBool("testMode")

	Conf = &Config{
		Env:            env,
		Debug:          debug,
		TestMode:       testMode,
		AppName:        v.GetString("appName"),
		WorkDir:        wd,
		SecretKey:      v.GetString("secretKey"),
		AuthUsers:      ParseAuthUsers(v.GetString("authUsers")),
		DirectoryFile:  v.GetString("directoryFile"),
		GradesBaseURL:  v.GetString("gradesBaseURL"),
		SendgridApiKey: v.GetString("sendgridApiKey"),
		DefaultFromEmail: mail.Address{
			Name:    v.GetString("appName"),
			Address: v.GetString("defaultFromEmail"),
		},
		NotifyEmail:  v.GetString("notifyEmail"),
		RollbarToken: v.GetString("rollbarToken"),
		Server: ServerConfig{
			Addr:       v.GetString("serverAddr"),
			SessionTTL: v.GetDuration("sessionTTL"),
		},
	}

	if !filepath.IsAbs(Conf.DirectoryFile) {
		Conf.DirectoryFile = filepath.Join(wd, Conf.DirectoryFile)
	}

	if Conf.SecretKey == "" {
		if !(debug || testMode) {
			log.Fatal("config: GRADIFY_SECRETKEY is required outside DEV|TEST")
		}
		Conf.SecretKey = randomSecret()
	}
	if len(Conf.AuthUsers) == 0 && (debug || testMode) {
		Conf.AuthUsers = ParseAuthUsers(devAuthUsers)
	}
}

// ParseAuthUsers parses a "user:secret,user:secret" string. Malformed entries are skipped.
func ParseAuthUsers(s string) map[string]string {
	users := make(map[string]string)
	for _, pair := range strings.Split(s, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		idx := strings.Index(pair, ":")
		if idx <= 0 || idx == len(pair)-1 {
			continue
		}
		users[pair[:idx]] = pair[idx+1:]
	}
	return users
}

// randomSecret generates a throwaway session secret for DEV|TEST runs;
// sessions do not survive a restart.
func randomSecret() string {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		log.Fatalf("config.randomSecret: %v", err)
	}
	return hex.EncodeToString(buf)
}
