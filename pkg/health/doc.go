// Package health provides liveness and readiness HTTP handlers.
//
// Liveness always answers OK while the process runs. Readiness runs every
// registered [CheckFunc] in parallel under a shared timeout and answers 503
// when any of them fails:
//
//	r.Get("/health/live", health.LivenessHandler())
//	r.Get("/health/ready", health.ReadinessHandler(health.Checks{
//	    "resend_api_key": apiKeyCheck,
//	}, health.WithLogger(log)))
//
// Responses are plain text ("OK" / "Service Unavailable") unless the client
// asks for JSON with an Accept header or ?format=json:
//
//	{"status":"unhealthy","checks":{"resend_api_key":{"status":"unhealthy","error":"secret not found"}}}
package health
