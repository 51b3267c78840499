package app

// Config holds runtime wiring options for building the app.
type Config struct {
	Home      string // data directory, e.g. $HOME/.wordcalc
	LogLevel  string // debug, info, warn, error
	LogPretty bool   // human-readable log output
	Speech    bool   // wire a real speaker when credentials allow
}
