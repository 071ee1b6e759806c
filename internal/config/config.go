package config // package config loads application configuration from environment variables

import (
	"log"     // log is used to report configuration errors and halt execution
	"os"      // os provides access to environment variables
	"strconv" // strconv converts strings to other types
	"time"    // time parses delay and window durations
)

// Config holds all runtime configuration values.  Each field corresponds to
// an environment variable.  Values that shape customer-visible behavior
// (cutoff hour, anti-bot timing, hand-off number) default to the numbers the
// cafe has always used, so the service boots with only APP_ENV and APP_PORT
// set.
type Config struct {
	Env            string        // application environment (e.g. "dev", "prod")
	Port           string        // HTTP port to listen on
	WhatsAppNumber string        // operator number the hand-off deep link targets
	StorePrefix    string        // namespace prefix for store keys
	CutoffHour     int           // local hour after which same-day bookings close
	MinFormAge     time.Duration // submissions faster than this are treated as bots
	ProcessingDelay time.Duration // PROCESSING -> REDIRECTING interval
	RedirectDelay   time.Duration // REDIRECTING -> IDLE interval
	Booking        BookingLimitConfig // sliding-window limit on booking attempts
}

// BookingLimitConfig caps booking attempts per sliding window.  FailOpen
// preserves the availability-over-enforcement policy: when the ledger cannot
// be read, attempts are allowed through.  Flipping it to false makes storage
// faults block submissions instead.
type BookingLimitConfig struct {
	Window   time.Duration // sliding window length
	Limit    int           // attempts allowed inside the window
	FailOpen bool          // allow attempts when the ledger is unreadable
}

// Load reads configuration values from environment variables and returns a
// Config.  Required variables are enforced by must() and missing values
// cause the program to exit with a fatal log message.
func Load() Config {
	return Config{
		Env:            must("APP_ENV"),  // environment (dev/test/prod)
		Port:           must("APP_PORT"), // port to bind the HTTP server
		WhatsAppNumber: getenv("WHATSAPP_NUMBER", "918888237925"),
		StorePrefix:    getenv("STORE_PREFIX", "ggwellplayed"),
		CutoffHour:     envInt("BOOKING_CUTOFF_HOUR", 22),
		MinFormAge:     envDur("BOOKING_MIN_FORM_AGE", 2*time.Second),
		ProcessingDelay: envDur("BOOKING_PROCESSING_DELAY", time.Second),
		RedirectDelay:   envDur("BOOKING_REDIRECT_DELAY", 500*time.Millisecond),
		Booking: BookingLimitConfig{
			Window:   envDur("BOOKING_LIMIT_WINDOW", 5*time.Minute),
			Limit:    envInt("BOOKING_LIMIT", 3),
			FailOpen: envBool("BOOKING_LIMIT_FAIL_OPEN", true),
		},
	}
}

// must retrieves the value of a required environment variable.  If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(k string, d int) int {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	if n, err := strconv.Atoi(v); err == nil {
		return n
	}
	return d
}

func envBool(k string, d bool) bool {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	switch v {
	case "1", "true", "TRUE", "True", "yes", "YES", "on", "ON":
		return true
	case "0", "false", "FALSE", "False", "no", "NO", "off", "OFF":
		return false
	}
	return d
}

func envDur(k string, d time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	if dur, err := time.ParseDuration(v); err == nil {
		return dur
	}
	return d
}
