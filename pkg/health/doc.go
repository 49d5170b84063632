// Package health serves liveness and readiness probes.
//
// LivenessHandler answers OK while the process runs. ReadinessHandler runs
// named probes in parallel under one deadline and answers 503 when any
// fails, keeping traffic away until dependencies such as the translation
// origin respond.
//
// # Quick Start
//
//	r.Get("/health/live", health.LivenessHandler())
//	r.Get("/health/ready", health.ReadinessHandler(health.Checks{
//		"i18n_origin": func(ctx context.Context) error {
//			_, err := src.Manifest(ctx)
//			return err
//		},
//	}, health.WithTimeout(2*time.Second)))
//
// Responses are plain text by default; ?format=json or an Accept header
// asking for application/json switches to the structured form:
//
//	{"status":"unhealthy","checks":{"i18n_origin":{"status":"unhealthy","error":"health: check timeout"}}}
//
// A probe that exhausts the shared deadline reports ErrCheckTimeout rather
// than a raw context error, so dashboards show a stable message.
package health
