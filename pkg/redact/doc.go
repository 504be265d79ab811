// Package redact masks sensitive values before they reach log output.
//
// A Redactor decides sensitivity by key name: the key is lower-cased, "-" and
// "_" are stripped, and it matches when it contains any configured marker
// ("password", "secret", "token", "apikey", "authorization", "cookie", "csrf",
// …). Values under matching keys are replaced by the mask.
//
//	r := redact.New(redact.WithKeys("pin"))
//	r.Value("userPassword", "hunter2") // "••••••••"
//	r.String("login user=bob password=hunter2") // "login user=bob password=••••••••"
//
// NewHandler wraps any slog.Handler so every record attribute, nested group
// and message is passed through the Redactor:
//
//	h := redact.NewHandler(slog.NewJSONHandler(os.Stdout, nil), redact.New())
//	slog.New(h).Info("smtp configured", "smtp_password", pw) // smtp_password="••••••••"
//
// The package logger exposes the same behaviour through logger.WithRedaction.
package redact
